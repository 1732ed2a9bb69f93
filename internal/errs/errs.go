// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package errs

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// FileAccessError reports an input document that could not be read.
type FileAccessError struct {
	Role string // "expected" or "actual", empty when unknown
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", describe(e.Role, e.Path), e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// ParseError reports an input document that is not well-formed XML.
type ParseError struct {
	Role string
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", describe(e.Role, e.Path), e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError reports an output artifact that could not be created or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Friendly returns a short user-facing message for err. Well-known causes
// (missing file, permission denied, missing S3 object) get a dedicated text;
// anything else falls back to err.Error().
func Friendly(err error) string {
	if err == nil {
		return ""
	}

	var (
		fa *FileAccessError
		pe *ParseError
		we *WriteError
	)

	switch {
	case errors.As(err, &fa):
		subject := describe(fa.Role, fa.Path)
		switch {
		case isNotFound(err):
			return fmt.Sprintf("%s does not exist", subject)
		case errors.Is(err, fs.ErrPermission):
			return fmt.Sprintf("%s is not readable: permission denied", subject)
		}
	case errors.As(err, &pe):
		return fmt.Sprintf("%s is not well-formed XML: %v", describe(pe.Role, pe.Path), pe.Err)
	case errors.As(err, &we):
		switch {
		case isNotFound(err):
			return fmt.Sprintf("cannot write %s: directory does not exist", we.Path)
		case errors.Is(err, fs.ErrPermission):
			return fmt.Sprintf("cannot write %s: permission denied", we.Path)
		}
	}

	return err.Error()
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	var nsb *types.NoSuchBucket
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &nsk) || errors.As(err, &nsb)
}

func describe(role, path string) string {
	if role == "" {
		return path
	}
	return fmt.Sprintf("%s document %s", role, path)
}
