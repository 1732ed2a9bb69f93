// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/xuri/excelize/v2"

	"github.com/tfctl/xmldiff/internal/config"
	"github.com/tfctl/xmldiff/internal/differ"
)

// runApp builds and runs the app with a fresh config and captures stdout.
func runApp(t *testing.T, cfgFile string, args ...string) (string, error) {
	t.Helper()

	if cfgFile == "" {
		cfgFile = filepath.Join(t.TempDir(), "missing.yaml")
	}
	t.Setenv(config.EnvFile, cfgFile)
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })

	args = append([]string{"xmldiff"}, args...)
	app, err := InitApp(context.Background(), args)
	require.NoError(t, err)

	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	err = app.Run(context.Background(), args)
	return out.String(), err
}

func fixture(t *testing.T, name string) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("testdata", name))
	require.NoError(t, err)
	return path
}

func TestInitAppCommands(t *testing.T) {
	t.Setenv(config.EnvFile, filepath.Join(t.TempDir(), "missing.yaml"))
	config.Config = config.Type{}

	app, err := InitApp(context.Background(), []string{"xmldiff", "compare"})
	require.NoError(t, err)

	var names []string
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"compare", "view", "completion"}, names)
	assert.Equal(t, "compare", config.Config.Namespace)

	for _, c := range app.Commands {
		for i := 1; i < len(c.Flags); i++ {
			assert.Less(t, c.Flags[i-1].Names()[0], c.Flags[i].Names()[0], "flags of %s not sorted", c.Name)
		}
	}
}

func TestCompareCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "diff.xlsx")

	stdout, err := runApp(t, "", "compare", fixture(t, "expected.xml"), fixture(t, "actual.xml"), "-o", out, "--print")
	require.NoError(t, err)

	assert.Contains(t, stdout, "/catalog[1]/book[1]/@id")
	assert.Contains(t, stdout, "/catalog[1]/book[1]/price[1]/text()[1]")
	assert.Contains(t, stdout, "2 differences written to "+out)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("XML Differences")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"2", "/catalog[1]/book[1]/@id", "bk101", "bk102"}, rows[1])
	assert.Equal(t, []string{"4", "/catalog[1]/book[1]/price[1]/text()[1]", "44.95", "39.95"}, rows[2])
}

func TestCompareCommandOutputFromEnv(t *testing.T) {
	out := filepath.Join(t.TempDir(), "env.json")
	t.Setenv(EnvOutput, out)

	stdout, err := runApp(t, "", "compare", fixture(t, "expected.xml"), fixture(t, "expected.xml"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "0 differences written to "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, int64(0), gjson.GetBytes(data, "rows.#").Int())
}

func TestCompareCommandSheetFromConfig(t *testing.T) {
	out := filepath.Join(t.TempDir(), "diff.xlsx")

	_, err := runApp(t, fixture(t, "config.yaml"), "compare", fixture(t, "expected.xml"), fixture(t, "actual.xml"), "-o", out)
	require.NoError(t, err)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"FromConfig"}, f.GetSheetList())
}

func TestCompareCommandBaseline(t *testing.T) {
	dir := t.TempDir()
	baseline := filepath.Join(dir, "baseline.json")
	_, err := runApp(t, "", "compare", fixture(t, "expected.xml"), fixture(t, "actual.xml"), "-o", baseline)
	require.NoError(t, err)

	t.Run("match", func(t *testing.T) {
		stdout, err := runApp(t, "", "compare", fixture(t, "expected.xml"), fixture(t, "actual.xml"),
			"-o", filepath.Join(dir, "again.xlsx"), "--baseline", baseline)
		require.NoError(t, err)
		assert.Contains(t, stdout, "matches baseline")
	})

	t.Run("mismatch", func(t *testing.T) {
		_, err := runApp(t, "", "compare", fixture(t, "expected.xml"), fixture(t, "expected.xml"),
			"-o", filepath.Join(dir, "same.xlsx"), "-b", baseline)
		assert.ErrorIs(t, err, ErrBaselineMismatch)
	})

	t.Run("missing baseline", func(t *testing.T) {
		_, err := runApp(t, "", "compare", fixture(t, "expected.xml"), fixture(t, "actual.xml"),
			"-o", filepath.Join(dir, "x.xlsx"), "-b", filepath.Join(dir, "nope.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestCompareCommandErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{name: "bad extension", args: []string{"compare", fixture(t, "expected.xml"), fixture(t, "actual.xml"), "-o", filepath.Join(dir, "out.csv")}},
		{name: "bad highlight", args: []string{"compare", fixture(t, "expected.xml"), fixture(t, "actual.xml"), "--highlight", "yellow"}},
		{name: "too many documents", args: []string{"compare", "a.xml", "b.xml", "c.xml"}},
		{name: "missing document", args: []string{"compare", filepath.Join(dir, "nope.xml"), fixture(t, "actual.xml"), "-o", filepath.Join(dir, "out.xlsx")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runApp(t, "", tt.args...)
			assert.Error(t, err)
		})
	}
	assert.NoFileExists(t, filepath.Join(dir, "out.xlsx"))
}

func TestViewCommand(t *testing.T) {
	restoreTerminal, restoreBrowse := isTerminal, browse
	t.Cleanup(func() { isTerminal, browse = restoreTerminal, restoreBrowse })

	t.Run("no terminal", func(t *testing.T) {
		isTerminal = func(uintptr) bool { return false }
		_, err := runApp(t, "", "view", fixture(t, "expected.xml"), fixture(t, "actual.xml"))
		assert.ErrorIs(t, err, ErrNoTerminal)
	})

	t.Run("browses records", func(t *testing.T) {
		isTerminal = func(uintptr) bool { return true }
		var gotTitle string
		var got []differ.Record
		browse = func(title string, records []differ.Record) error {
			gotTitle, got = title, records
			return nil
		}

		_, err := runApp(t, "", "view", fixture(t, "expected.xml"), fixture(t, "actual.xml"))
		require.NoError(t, err)
		assert.Contains(t, gotTitle, "expected.xml vs ")
		require.Len(t, got, 2)
		assert.Equal(t, differ.AttrValue, got[0].Kind)
	})
}

func TestCompletionCommand(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{shell: "bash", want: "complete -F _xmldiff xmldiff"},
		{shell: "zsh", want: "compdef _xmldiff xmldiff"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			stdout, err := runApp(t, "", "completion", tt.shell)
			require.NoError(t, err)
			assert.Contains(t, stdout, tt.want)
		})
	}

	t.Run("unknown shell", func(t *testing.T) {
		t.Setenv("SHELL", "/bin/fish")
		stdout, err := runApp(t, "", "completion")
		require.NoError(t, err)
		assert.Contains(t, stdout, "usage: xmldiff completion")
	})
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name      string
		validator FlagValidatorType
		value     string
		wantErr   bool
	}{
		{"xlsx output", OutputValidator, "out/differences.xlsx", false},
		{"json output", OutputValidator, "s3://b/k/report.json", false},
		{"yml output", OutputValidator, "report.YML", false},
		{"csv output", OutputValidator, "report.csv", true},
		{"no extension", OutputValidator, "report", true},
		{"sheet", SheetValidator, "XML Differences", false},
		{"empty sheet", SheetValidator, " ", true},
		{"long sheet", SheetValidator, "a sheet name that is far too long", true},
		{"sheet with slash", SheetValidator, "a/b", true},
		{"highlight", HighlightValidator, "ffff00", false},
		{"named highlight", HighlightValidator, "yellow", true},
		{"short highlight", HighlightValidator, "FFF", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FlagValidators(tt.value, tt.validator)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "0 differences", plural(0, "difference"))
	assert.Equal(t, "1 difference", plural(1, "difference"))
	assert.Equal(t, "3 differences", plural(3, "difference"))
}
