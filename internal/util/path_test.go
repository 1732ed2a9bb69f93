// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name     string
		path     string
		expected string
		wantErr  bool
	}{
		{name: "empty", path: "", wantErr: true},
		{name: "relative", path: "expected.xml", expected: filepath.Join(cwd, "expected.xml")},
		{name: "relative nested", path: "a/../b/actual.xml", expected: filepath.Join(cwd, "b", "actual.xml")},
		{name: "absolute", path: "/tmp//x/../out.xlsx", expected: "/tmp/out.xlsx"},
		{name: "s3 uri untouched", path: "s3://bucket/key.xml", expected: "s3://bucket/key.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, os.ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExt(t *testing.T) {
	tests := map[string]string{
		"differences.xlsx":    "xlsx",
		"REPORT.JSON":         "json",
		"s3://b/run/out.yaml": "yaml",
		"noext":               "",
		"dir.d/noext":         "",
	}

	for path, expected := range tests {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, expected, Ext(path))
		})
	}
}
