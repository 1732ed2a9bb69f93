// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/tfctl/xmldiff/internal/aws"
	"github.com/tfctl/xmldiff/internal/util"
)

// Format is the encoding of a saved report.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from the extension of dest. Anything unknown is
// a spreadsheet.
func FormatFor(dest string) Format {
	switch util.Ext(dest) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	default:
		return FormatXLSX
	}
}

// ContentType is the MIME type used when uploading f.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	default:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
}

type options struct {
	sheet     string
	highlight string
	client    aws.ClientFunc
}

func newOptions(opts []Option) options {
	o := options{
		sheet:     DefaultSheet,
		highlight: DefaultHighlight,
		client:    aws.DefaultClient(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option customizes encoding and saving.
type Option func(*options)

// WithSheet names the spreadsheet's only sheet. Empty keeps the default.
func WithSheet(name string) Option {
	return func(o *options) {
		if name != "" {
			o.sheet = name
		}
	}
}

// WithHighlight sets the RGB hex fill of data rows, e.g. "FFFF00". Empty
// keeps the default.
func WithHighlight(rgb string) Option {
	return func(o *options) {
		if rgb != "" {
			o.highlight = rgb
		}
	}
}

// WithS3Client sets how the S3 client is obtained for s3:// destinations.
func WithS3Client(client aws.ClientFunc) Option {
	return func(o *options) { o.client = client }
}

type row struct {
	Line     int    `json:"line" yaml:"line"`
	XPath    string `json:"xpath" yaml:"xpath"`
	Expected string `json:"expected" yaml:"expected"`
	Actual   string `json:"actual" yaml:"actual"`
	Kind     string `json:"kind" yaml:"kind"`
}

// serialized is the JSON and YAML shape of a table. It holds nothing that
// changes between runs over the same inputs.
type serialized struct {
	Expected Source   `json:"expected" yaml:"expected"`
	Actual   Source   `json:"actual" yaml:"actual"`
	Header   []string `json:"header" yaml:"header"`
	Rows     []row    `json:"rows" yaml:"rows"`
}

func serialize(t *Table) serialized {
	s := serialized{
		Expected: t.Expected,
		Actual:   t.Actual,
		Header:   Header,
		Rows:     make([]row, 0, len(t.records)),
	}
	for _, r := range t.records {
		s.Rows = append(s.Rows, row{
			Line:     r.Line,
			XPath:    r.XPath,
			Expected: r.Expected,
			Actual:   r.Actual,
			Kind:     r.Kind.String(),
		})
	}
	return s
}

// Encode renders t in format entirely in memory.
func Encode(t *Table, format Format, opts ...Option) ([]byte, error) {
	o := newOptions(opts)

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(serialize(t), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json report: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(serialize(t))
		if err != nil {
			return nil, fmt.Errorf("failed to encode yaml report: %w", err)
		}
		return data, nil
	case FormatXLSX:
		return encodeXLSX(t, o)
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}
