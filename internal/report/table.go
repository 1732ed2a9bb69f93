// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"iter"
	"strconv"

	"github.com/tfctl/xmldiff/internal/differ"
	"github.com/tfctl/xmldiff/internal/document"
)

// Header is row 0 of every table.
var Header = []string{"Line", "XPath", "Expected Value", "Actual Value"}

// Source identifies one compared document.
type Source struct {
	Path   string `json:"path" yaml:"path"`
	Digest string `json:"digest" yaml:"digest"`
}

// SourceOf returns the Source of doc.
func SourceOf(doc document.Document) Source {
	return Source{Path: doc.Path, Digest: doc.Digest}
}

// Table is the header plus one row per difference record, in the order the
// records were appended.
type Table struct {
	Expected Source
	Actual   Source

	records []differ.Record
}

// NewTable returns a table holding only the header.
func NewTable() *Table {
	return &Table{}
}

// Build drains seq into a new table.
func Build(seq iter.Seq[differ.Record]) *Table {
	t := NewTable()
	for r := range seq {
		t.Append(r)
	}
	return t
}

// Append adds r as the next data row.
func (t *Table) Append(r differ.Record) {
	t.records = append(t.records, r)
}

// Len is the number of data rows.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns a copy of the data rows as records.
func (t *Table) Records() []differ.Record {
	out := make([]differ.Record, len(t.records))
	copy(out, t.records)
	return out
}

// Rows returns every row as strings, the header first. All rows have
// len(Header) columns.
func (t *Table) Rows() [][]string {
	rows := make([][]string, 0, len(t.records)+1)
	rows = append(rows, append([]string(nil), Header...))
	for _, r := range t.records {
		rows = append(rows, []string{strconv.Itoa(r.Line), r.XPath, r.Expected, r.Actual})
	}
	return rows
}
