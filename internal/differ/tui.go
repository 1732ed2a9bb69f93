// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f6be00"))
	detailStyle = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("#00c8f0"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	emptyStyle  = lipgloss.NewStyle().Italic(true)
)

const (
	pageSize      = 20
	browserFooter = "UP/DOWN: move, ENTER: details, /: filter, Q/ESCAPE: quit"
)

// Browse shows records in an interactive list until the user quits.
func Browse(title string, records []Record, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(newBrowser(title, records), opts...)
	_, err := p.Run()
	return err
}

type browser struct {
	title    string
	items    []Record
	visible  []int
	cursor   int
	expanded bool
	filter   textinput.Model
}

func newBrowser(title string, records []Record) browser {
	ti := textinput.New()
	ti.Prompt = "filter: "
	ti.Placeholder = "xpath or value"

	b := browser{title: title, items: records, filter: ti}
	b.applyFilter()
	return b
}

func (b browser) Init() tea.Cmd { return nil }

func (b browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	if b.filter.Focused() {
		switch key.String() {
		case "enter", "esc":
			b.filter.Blur()
			return b, nil
		}
		var cmd tea.Cmd
		b.filter, cmd = b.filter.Update(msg)
		b.applyFilter()
		return b, cmd
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return b, tea.Quit
	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
	case "down", "j":
		if b.cursor < len(b.visible)-1 {
			b.cursor++
		}
	case "enter":
		b.expanded = !b.expanded
	case "/":
		return b, b.filter.Focus()
	}
	return b, nil
}

// applyFilter keeps the records whose XPath or values contain the filter text
// and clamps the cursor.
func (b *browser) applyFilter() {
	needle := strings.ToLower(strings.TrimSpace(b.filter.Value()))

	b.visible = nil
	for i, r := range b.items {
		if needle == "" ||
			strings.Contains(strings.ToLower(r.XPath), needle) ||
			strings.Contains(strings.ToLower(r.Expected), needle) ||
			strings.Contains(strings.ToLower(r.Actual), needle) {
			b.visible = append(b.visible, i)
		}
	}

	if b.cursor >= len(b.visible) {
		b.cursor = max(len(b.visible)-1, 0)
	}
}

// selected returns the record under the cursor.
func (b browser) selected() (Record, bool) {
	if len(b.visible) == 0 {
		return Record{}, false
	}
	return b.items[b.visible[b.cursor]], true
}

func (b browser) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d of %d)", b.title, len(b.visible), len(b.items))))
	s.WriteString("\n\n")

	if len(b.visible) == 0 {
		s.WriteString(emptyStyle.Render("no differences"))
		s.WriteString("\n")
	}

	// Window of pageSize rows around the cursor.
	start := max(b.cursor-pageSize/2, 0)
	end := min(start+pageSize, len(b.visible))
	for i := start; i < end; i++ {
		r := b.items[b.visible[i]]
		line := fmt.Sprintf("%4s %s", lineLabel(r.Line), r.XPath)
		if i == b.cursor {
			s.WriteString(cursorStyle.Render("> " + line))
		} else {
			s.WriteString("  " + line)
		}
		s.WriteString("\n")

		if i == b.cursor && b.expanded {
			s.WriteString(detailStyle.Render(fmt.Sprintf("%s\nexpected: %s\nactual:   %s", r.Kind, r.Expected, r.Actual)))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	if b.filter.Focused() || b.filter.Value() != "" {
		s.WriteString(b.filter.View())
		s.WriteString("\n")
	}
	s.WriteString(helpStyle.Render(browserFooter))
	s.WriteString("\n")
	return s.String()
}

func lineLabel(line int) string {
	if line < 0 {
		return "-"
	}
	return fmt.Sprint(line)
}
