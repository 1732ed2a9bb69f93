// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"context"
	"os"
	"path/filepath"

	"github.com/apex/log"

	"github.com/tfctl/xmldiff/internal/aws"
	"github.com/tfctl/xmldiff/internal/errs"
	"github.com/tfctl/xmldiff/internal/util"
)

// Save encodes t in the format implied by dest and commits it. Local files are
// replaced atomically; s3:// destinations get a single upload. It returns the
// number of bytes written. Every failure is an *errs.WriteError and leaves an
// existing destination untouched.
func Save(ctx context.Context, t *Table, dest string, opts ...Option) (int, error) {
	o := newOptions(opts)
	fail := func(err error) (int, error) {
		return 0, &errs.WriteError{Path: dest, Err: err}
	}

	format := FormatFor(dest)
	data, err := Encode(t, format, opts...)
	if err != nil {
		return fail(err)
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	resolved, err := util.ResolvePath(dest)
	if err != nil {
		return fail(err)
	}

	if aws.IsURI(resolved) {
		err = upload(ctx, o.client, resolved, data, format.ContentType())
	} else {
		err = writeAtomic(resolved, data)
	}
	if err != nil {
		return fail(err)
	}

	log.Debugf("report saved: dest=%s format=%s bytes=%d", dest, format, len(data))
	return len(data), nil
}

func upload(ctx context.Context, client aws.ClientFunc, uri string, data []byte, contentType string) error {
	loc, err := aws.ParseURI(uri)
	if err != nil {
		return err
	}
	api, err := client(ctx)
	if err != nil {
		return err
	}
	return aws.Upload(ctx, api, loc, data, contentType)
}

// writeAtomic writes data to a temp file next to path and renames it over
// path.
func writeAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
