// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"unicode/utf8"

	"github.com/apex/log"
	"github.com/xuri/excelize/v2"
)

const (
	// DefaultSheet is the name of the only sheet in the workbook.
	DefaultSheet = "XML Differences"
	// DefaultHighlight is the fill of data rows.
	DefaultHighlight = "FFFF00"

	// maxColWidth is the widest column excelize accepts.
	maxColWidth = 255
)

// headerStyle is registered once per workbook and applied to row 1.
var headerStyle = excelize.Style{Font: &excelize.Font{Bold: true}}

// highlightStyle is the solid fill applied to every data cell.
func highlightStyle(rgb string) *excelize.Style {
	return &excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{rgb}},
	}
}

func encodeXLSX(t *Table, o options) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Warnf("xlsx close: %v", err)
		}
	}()

	sheet := o.sheet
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet %q: %w", sheet, err)
	}

	header, err := f.NewStyle(&headerStyle)
	if err != nil {
		return nil, fmt.Errorf("failed to register header style: %w", err)
	}
	fill, err := f.NewStyle(highlightStyle(o.highlight))
	if err != nil {
		return nil, fmt.Errorf("failed to register highlight style: %w", err)
	}

	// Every cell is a string, as in Table.Rows.
	widths := make([]int, len(Header))
	for i, row := range t.Rows() {
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
			widths[j] = max(widths[j], utf8.RuneCountInString(v))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err == nil {
			err = f.SetSheetRow(sheet, cell, &values)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	last, _ := excelize.ColumnNumberToName(len(Header))
	if err := f.SetCellStyle(sheet, "A1", last+"1", header); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}
	if n := len(t.records); n > 0 {
		if err := f.SetCellStyle(sheet, "A2", fmt.Sprintf("%s%d", last, n+1), fill); err != nil {
			return nil, fmt.Errorf("failed to style rows: %w", err)
		}
	}

	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, float64(min(w+2, maxColWidth))); err != nil {
			return nil, fmt.Errorf("failed to size column %s: %w", col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	log.Debugf("xlsx encoded: sheet=%q rows=%d bytes=%d", sheet, len(t.records)+1, buf.Len())
	return buf.Bytes(), nil
}
