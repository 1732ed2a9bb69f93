// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"regexp"
	"strings"
)

// NotApplicable stands in for a value that one side of a difference does not
// have, such as the actual value of a missing node.
const NotApplicable = "N/A"

// Record is one reported discrepancy as it appears in the report.
type Record struct {
	Line     int
	XPath    string
	Expected string
	Actual   string
	Kind     Kind
}

// FindLineNumber returns the 1-based number of the first line of content that
// contains value verbatim, or -1 when value is NotApplicable or absent. It is a
// heuristic: a value that occurs on several lines is attributed to the first.
func FindLineNumber(content, value string) int {
	if value == NotApplicable {
		return -1
	}
	for i, line := range strings.Split(content, "\n") {
		if strings.Contains(line, value) {
			return i + 1
		}
	}
	return -1
}

// Description holds what could be recovered from a difference description.
type Description struct {
	Label        string
	Expected     string
	Actual       string
	ControlXPath string
	TestXPath    string
}

var (
	descValuesRegex = regexp.MustCompile(`(?s)^Expected (.+?) '(.*)' but was '(.*)' - comparing `)
	descNodesRegex  = regexp.MustCompile(`(?s) - comparing (.*?)(?: at (/\S*))? to (.*?)(?: at (/\S*))?$`)
)

// ParseDescription extracts the values and XPaths from a description produced
// by Difference.Description. "null" values come back as NotApplicable. The
// second result is false when desc does not look like a description.
func ParseDescription(desc string) (Description, bool) {
	values := descValuesRegex.FindStringSubmatch(desc)
	if values == nil {
		return Description{}, false
	}

	d := Description{
		Label:    values[1],
		Expected: nullToNA(values[2]),
		Actual:   nullToNA(values[3]),
	}
	if nodes := descNodesRegex.FindStringSubmatch(desc); nodes != nil {
		d.ControlXPath = nodes[2]
		d.TestXPath = nodes[4]
	}
	return d, true
}

func nullToNA(s string) string {
	if s == "null" {
		return NotApplicable
	}
	return s
}

// NewRecord derives the report record for d. The XPath is the control XPath;
// a difference without a control node takes the location parsed from its
// description. Line is looked up in expectedText.
func NewRecord(d Difference, expectedText string) Record {
	r := Record{
		XPath:    d.Control.XPath,
		Expected: valueString(d.Control.Value),
		Actual:   valueString(d.Test.Value),
		Kind:     d.Kind,
	}

	if r.XPath == "" {
		if desc, ok := ParseDescription(d.Description()); ok {
			r.XPath = desc.ControlXPath
			if r.XPath == "" {
				r.XPath = desc.TestXPath
			}
		}
	}

	r.Line = FindLineNumber(expectedText, r.Expected)
	return r
}

func valueString(v any) string {
	if v == nil {
		return NotApplicable
	}
	return fmt.Sprint(v)
}
