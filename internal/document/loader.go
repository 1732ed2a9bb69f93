// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/crypto/blake2b"

	"github.com/tfctl/xmldiff/internal/aws"
	"github.com/tfctl/xmldiff/internal/errs"
	"github.com/tfctl/xmldiff/internal/log"
	"github.com/tfctl/xmldiff/internal/util"
)

// Roles of the two documents in a comparison.
const (
	RoleExpected = "expected"
	RoleActual   = "actual"
)

// Document is the raw text of one XML file and where it came from.
type Document struct {
	Path   string
	Text   string
	Digest string // hex BLAKE2b-256 of Text
}

// New builds a Document from in-memory text.
func New(path, text string) Document {
	sum := blake2b.Sum256([]byte(text))
	return Document{
		Path:   path,
		Text:   text,
		Digest: hex.EncodeToString(sum[:]),
	}
}

type options struct {
	client aws.ClientFunc
}

// Option customizes loading.
type Option func(*options)

// WithS3Client sets how the S3 client is obtained for s3:// paths. The
// default loads the shell's AWS configuration.
func WithS3Client(client aws.ClientFunc) Option {
	return func(o *options) { o.client = client }
}

// Load reads the whole document at path. Every failure is an
// *errs.FileAccessError.
func Load(ctx context.Context, path string, opts ...Option) (Document, error) {
	return load(ctx, "", path, opts...)
}

// LoadPair loads the expected and then the actual document. The first failure
// aborts.
func LoadPair(ctx context.Context, expected, actual string, opts ...Option) (Document, Document, error) {
	exp, err := load(ctx, RoleExpected, expected, opts...)
	if err != nil {
		return Document{}, Document{}, err
	}

	act, err := load(ctx, RoleActual, actual, opts...)
	if err != nil {
		return Document{}, Document{}, err
	}

	return exp, act, nil
}

func load(ctx context.Context, role, path string, opts ...Option) (Document, error) {
	o := options{client: aws.DefaultClient()}
	for _, opt := range opts {
		opt(&o)
	}

	fail := func(err error) (Document, error) {
		return Document{}, &errs.FileAccessError{Role: role, Path: path, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	resolved, err := util.ResolvePath(path)
	if err != nil {
		return fail(err)
	}

	var data []byte
	if aws.IsURI(resolved) {
		data, err = fetch(ctx, o.client, resolved)
	} else {
		data, err = readFile(resolved)
	}
	if err != nil {
		return fail(err)
	}

	if !utf8.Valid(data) {
		return fail(errors.New("content is not valid UTF-8 text"))
	}

	doc := New(path, string(data))
	log.Debugf("document loaded: role=%s path=%s bytes=%d digest=%.12s", role, path, len(data), doc.Digest)
	return doc, nil
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return os.ReadFile(path)
}

func fetch(ctx context.Context, client aws.ClientFunc, uri string) ([]byte, error) {
	loc, err := aws.ParseURI(uri)
	if err != nil {
		return nil, err
	}
	api, err := client(ctx)
	if err != nil {
		return nil, err
	}
	return aws.Fetch(ctx, api, loc)
}
