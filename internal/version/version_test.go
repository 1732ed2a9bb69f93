// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		main     string
		settings []debug.BuildSetting
		expected string
	}{
		{name: "devel", main: "(devel)", expected: "dev"},
		{name: "tagged", main: "v1.2.3", expected: "v1.2.3"},
		{
			name: "revision",
			main: "v1.2.3",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
			},
			expected: "v1.2.3 (0123456)",
		},
		{
			name: "dirty tree",
			main: "(devel)",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.modified", Value: "true"},
			},
			expected: "dev (abc+dirty)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, format(tt.main, tt.settings))
		})
	}
}
