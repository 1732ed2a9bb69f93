// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfig points XMLDIFF_CFG_FILE at a testdata file, resets the global
// Config and runs fn.
func withConfig(t *testing.T, testFile string, fn func(t *testing.T)) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testFile))
	require.NoError(t, err)
	t.Setenv(EnvFile, absPath)

	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	fn(t)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.Equal(t, "report.xlsx", cfg.Data["output"])
				assert.Equal(t, "Diffs", cfg.Data["sheet"])
				assert.Equal(t, 2, cfg.Data["padding"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				compare, ok := cfg.Data["compare"].(map[string]interface{})
				require.True(t, ok, "compare should be a map")
				assert.Equal(t, "Compare Sheet", compare["sheet"])
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Empty(t, cfg.Data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, tt.testFile, func(t *testing.T) {
				cfg, err := Load()
				require.NoError(t, err)
				tt.checkFunc(t, cfg)
			})
		})
	}
}

func TestFile(t *testing.T) {
	t.Run("env points to missing file", func(t *testing.T) {
		t.Setenv(EnvFile, filepath.Join(t.TempDir(), "nope.yaml"))
		_, err := File()
		assert.ErrorContains(t, err, "config file not found")
	})

	t.Run("env points to directory", func(t *testing.T) {
		t.Setenv(EnvFile, t.TempDir())
		_, err := File()
		assert.ErrorContains(t, err, "points to a directory")
	})

	t.Run("nothing in user config dir", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(EnvFile, "")
		t.Setenv("XDG_CONFIG_HOME", dir)
		t.Setenv("HOME", dir)
		t.Setenv("AppData", dir)
		_, err := File()
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetString(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		v, err := GetString("sheet")
		assert.NoError(t, err)
		assert.Equal(t, "Global", v)

		v, err = GetString("colors.title")
		assert.NoError(t, err)
		assert.Equal(t, "#ff0000", v)

		v, err = GetString("missing", "fallback")
		assert.NoError(t, err)
		assert.Equal(t, "fallback", v)

		_, err = GetString("missing")
		assert.Error(t, err)

		_, err = GetString("compare")
		assert.ErrorContains(t, err, "not a string")
	})
}

func TestNamespacePreferred(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		Config.Namespace = "compare"

		v, err := GetString("sheet")
		assert.NoError(t, err)
		assert.Equal(t, "Compare Sheet", v)

		// Falls back to the global key when the namespace lacks it.
		v, err = GetString("colors.title")
		assert.NoError(t, err)
		assert.Equal(t, "#ff0000", v)
	})
}

func TestGetInt(t *testing.T) {
	withConfig(t, "mixed-types.yaml", func(t *testing.T) {
		v, err := GetInt("padding")
		assert.NoError(t, err)
		assert.Equal(t, 3, v)

		v, err = GetInt("missing", 7)
		assert.NoError(t, err)
		assert.Equal(t, 7, v)

		_, err = GetInt("name")
		assert.ErrorContains(t, err, "not an int")
	})
}

func TestGetStringSlice(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		v, err := GetStringSlice("compare.ci")
		assert.NoError(t, err)
		assert.Equal(t, []string{"--output ci.json", "--print"}, v)

		v, err = GetStringSlice("missing", []string{"x"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"x"}, v)

		_, err = GetStringSlice("sheet")
		assert.ErrorContains(t, err, "not a list")
	})

	withConfig(t, "mixed-types.yaml", func(t *testing.T) {
		_, err := GetStringSlice("sets")
		assert.ErrorContains(t, err, "is not a string")
	})
}
