// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath returns an absolute form of a local path. Paths carrying a URI
// scheme (s3://...) are returned unchanged. An empty path is os.ErrInvalid.
func ResolvePath(path string) (string, error) {
	if path == "" {
		return "", os.ErrInvalid
	}

	if strings.Contains(path, "://") {
		return path, nil
	}

	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, path), nil
}

// Ext returns the lower-cased extension of path without the dot, ignoring any
// URI scheme.
func Ext(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}
