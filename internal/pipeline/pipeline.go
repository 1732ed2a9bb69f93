// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"context"

	"github.com/tfctl/xmldiff/internal/aws"
	"github.com/tfctl/xmldiff/internal/differ"
	"github.com/tfctl/xmldiff/internal/document"
	"github.com/tfctl/xmldiff/internal/log"
	"github.com/tfctl/xmldiff/internal/report"
)

// Default paths of the fixed-path invocation.
const (
	DefaultExpected = "expected.xml"
	DefaultActual   = "actual.xml"
	DefaultOutput   = "differences.xlsx"
)

// Options describes one run. Empty paths take the defaults.
type Options struct {
	Expected string
	Actual   string
	Output   string

	// Sheet and Highlight style the spreadsheet. Empty keeps the report
	// defaults.
	Sheet     string
	Highlight string

	// S3 builds the client used for s3:// paths. Nil loads the shell's AWS
	// configuration on first use.
	S3 aws.ClientFunc

	// Diff is passed through to differ.Compare.
	Diff []differ.Option
}

// Summary describes a completed Run.
type Summary struct {
	Table  *report.Table
	Output string
	Bytes  int
}

func (o Options) withDefaults() Options {
	if o.Expected == "" {
		o.Expected = DefaultExpected
	}
	if o.Actual == "" {
		o.Actual = DefaultActual
	}
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if o.S3 == nil {
		o.S3 = aws.DefaultClient()
	}
	return o
}

// Compare loads both documents, diffs them and collects the records into a
// table. Nothing is written.
func Compare(ctx context.Context, opts Options) (*report.Table, error) {
	o := opts.withDefaults()

	expected, actual, err := document.LoadPair(ctx, o.Expected, o.Actual, document.WithS3Client(o.S3))
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d, err := differ.Compare(expected, actual, o.Diff...)
	if err != nil {
		return nil, err
	}

	t := report.Build(d.Records())
	t.Expected = report.SourceOf(expected)
	t.Actual = report.SourceOf(actual)
	log.Infof("compared %s with %s: %d differences", o.Expected, o.Actual, t.Len())

	return t, nil
}

// Run compares and saves the table to opts.Output. The destination is only
// touched once the comparison has succeeded.
func Run(ctx context.Context, opts Options) (Summary, error) {
	o := opts.withDefaults()

	t, err := Compare(ctx, o)
	if err != nil {
		return Summary{}, err
	}

	n, err := report.Save(ctx, t, o.Output,
		report.WithSheet(o.Sheet),
		report.WithHighlight(o.Highlight),
		report.WithS3Client(o.S3))
	if err != nil {
		return Summary{}, err
	}

	return Summary{Table: t, Output: o.Output, Bytes: n}, nil
}
