// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"github.com/tfctl/xmldiff/internal/config"
)

type textOptions struct {
	color   bool
	padding int
	colors  func() (header, even, odd color.Color)
}

// TextOption customizes WriteText.
type TextOption func(*textOptions)

// WithColor turns on header and alternating row colors.
func WithColor(enabled bool) TextOption {
	return func(o *textOptions) { o.color = enabled }
}

// WithPadding sets the left padding of every column but the first.
func WithPadding(n int) TextOption {
	return func(o *textOptions) { o.padding = max(n, 0) }
}

// WriteText renders t as a borderless table on w. Nothing but the header is
// printed when t has no rows. Padding defaults to the padding config key.
func WriteText(w io.Writer, t *Table, opts ...TextOption) {
	o := textOptions{padding: defaultPadding(), colors: colors}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if o.color {
		headerColor, evenColor, oddColor := o.colors()

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	rows := t.Rows()
	tbl := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(o.padding)
			}
			return style
		}).
		Headers(rows[0]...).
		BorderHeader(false).
		Rows(rows[1:]...)

	fmt.Fprintln(w, tbl)
}

func defaultPadding() int {
	padding, err := config.GetInt("padding", 2)
	if err != nil {
		return 2
	}
	return max(padding, 0)
}

// colors returns the configured table colors, falling back to defaults that
// read well on the terminal's background.
func colors() (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolve := func(key, light, dark string) color.Color {
		if c, err := config.GetString(key); err == nil {
			return lipgloss.Color(c)
		}
		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolve("colors.title", "#b08800", "#f6be00")
	even = resolve("colors.even", "#333333", "#ffffff")
	odd = resolve("colors.odd", "#0088a0", "#00c8f0")
	return
}
