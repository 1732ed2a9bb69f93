// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// Detail is one side of a comparison. Value is nil when that side has nothing
// to compare, e.g. a child that only exists on the other side.
type Detail struct {
	XPath string
	Value any
	node  etree.Token
}

// Comparison is a single check between a control (expected) and a test
// (actual) detail.
type Comparison struct {
	Kind    Kind
	Control Detail
	Test    Detail
}

// Difference is a comparison whose outcome was not Equal.
type Difference struct {
	Comparison
	Result Result
}

// Description renders the difference as
//
//	Expected <label> '<control>' but was '<test>' - comparing <node> at <xpath> to <node> at <xpath>
//
// The " at <xpath>" part is omitted for a side without a node.
func (d Difference) Description() string {
	return fmt.Sprintf("Expected %s '%s' but was '%s' - comparing %s to %s",
		d.Kind.Label(),
		describeValue(d.Control.Value),
		describeValue(d.Test.Value),
		describeSide(d.Control),
		describeSide(d.Test))
}

func describeValue(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprint(v)
}

func describeSide(d Detail) string {
	s := describeNode(d.node)
	if d.XPath != "" {
		s += " at " + d.XPath
	}
	return s
}

func describeNode(tok etree.Token) string {
	switch n := tok.(type) {
	case *etree.Element:
		if n.Tag == "" {
			return "#document"
		}
		return "<" + n.FullTag() + "...>"
	case *etree.CharData:
		if n.IsCData() {
			return fmt.Sprintf("<![CDATA[%s]]>", n.Data)
		}
		return fmt.Sprintf("#text %q", strings.TrimSpace(n.Data))
	case *etree.Comment:
		return "<!--" + n.Data + "-->"
	case *etree.ProcInst:
		return "<?" + n.Target + " " + n.Inst + "?>"
	default:
		return "<NULL>"
	}
}

// nodeClass groups tokens that may be paired with each other.
type nodeClass int

const (
	classOther nodeClass = iota
	classElement
	classText
	classComment
	classProcInst
)

func classOf(tok etree.Token) nodeClass {
	switch tok.(type) {
	case *etree.Element:
		return classElement
	case *etree.CharData:
		return classText
	case *etree.Comment:
		return classComment
	case *etree.ProcInst:
		return classProcInst
	default:
		return classOther
	}
}

func nodeTypeName(tok etree.Token) string {
	switch n := tok.(type) {
	case *etree.Element:
		if n.Tag == "" {
			return "DOCUMENT"
		}
		return "ELEMENT"
	case *etree.CharData:
		if n.IsCData() {
			return "CDATA_SECTION"
		}
		return "TEXT"
	case *etree.Comment:
		return "COMMENT"
	case *etree.ProcInst:
		return "PROCESSING_INSTRUCTION"
	default:
		return "UNKNOWN"
	}
}

// engine walks two trees in pre-order over the control document and hands
// every reportable difference to emit. A false return from emit stops the
// walk.
type engine struct {
	mode             Mode
	ignoreWhitespace bool
	emit             func(Difference) bool
	stopped          bool
}

// check evaluates c and reports it when the mode asks for its outcome. It
// returns the outcome.
func (e *engine) check(c Comparison) Result {
	if e.stopped {
		return Equal
	}

	result := evaluate(c)
	if e.mode.reports(result) {
		if !e.emit(Difference{Comparison: c, Result: result}) {
			e.stopped = true
		}
	}
	return result
}

// evaluate classifies c. Namespace prefixes, child order and text versus CDATA
// only make documents similar.
func evaluate(c Comparison) Result {
	if c.Control.Value == c.Test.Value {
		return Equal
	}

	switch c.Kind {
	case NamespacePrefix, ChildNodeListSequence:
		return Similar
	case NodeType:
		if classOf(c.Control.node) == classText && classOf(c.Test.node) == classText {
			return Similar
		}
	}
	return Different
}

// compareDocuments compares the top-level children of both documents. The
// document itself is addressed as "/".
func (e *engine) compareDocuments(control, test *etree.Document) {
	e.compareChildren(&control.Element, &test.Element, "/", "/")
}

func (e *engine) compareNodes(control, test etree.Token, cPath, tPath string) {
	if e.stopped {
		return
	}

	typ := e.check(Comparison{
		Kind:    NodeType,
		Control: Detail{XPath: cPath, Value: nodeTypeName(control), node: control},
		Test:    Detail{XPath: tPath, Value: nodeTypeName(test), node: test},
	})
	if typ == Different {
		return
	}

	switch c := control.(type) {
	case *etree.Element:
		e.compareElements(c, test.(*etree.Element), cPath, tPath)
	case *etree.CharData:
		t := test.(*etree.CharData)
		e.check(Comparison{
			Kind:    TextValue,
			Control: Detail{XPath: cPath, Value: e.text(c.Data), node: c},
			Test:    Detail{XPath: tPath, Value: e.text(t.Data), node: t},
		})
	case *etree.Comment:
		t := test.(*etree.Comment)
		e.check(Comparison{
			Kind:    CommentValue,
			Control: Detail{XPath: cPath, Value: e.text(c.Data), node: c},
			Test:    Detail{XPath: tPath, Value: e.text(t.Data), node: t},
		})
	case *etree.ProcInst:
		t := test.(*etree.ProcInst)
		e.check(Comparison{
			Kind:    ProcessingInstructionTarget,
			Control: Detail{XPath: cPath, Value: c.Target, node: c},
			Test:    Detail{XPath: tPath, Value: t.Target, node: t},
		})
		e.check(Comparison{
			Kind:    ProcessingInstructionData,
			Control: Detail{XPath: cPath, Value: c.Inst, node: c},
			Test:    Detail{XPath: tPath, Value: t.Inst, node: t},
		})
	}
}

func (e *engine) compareElements(control, test *etree.Element, cPath, tPath string) {
	side := func(el *etree.Element, path string, v any) Detail {
		return Detail{XPath: path, Value: v, node: el}
	}

	e.check(Comparison{
		Kind:    NamespaceURI,
		Control: side(control, cPath, control.NamespaceURI()),
		Test:    side(test, tPath, test.NamespaceURI()),
	})
	e.check(Comparison{
		Kind:    NamespacePrefix,
		Control: side(control, cPath, control.Space),
		Test:    side(test, tPath, test.Space),
	})
	e.check(Comparison{
		Kind:    ElementTagName,
		Control: side(control, cPath, control.Tag),
		Test:    side(test, tPath, test.Tag),
	})

	cAttrs, tAttrs := attributes(control), attributes(test)
	e.check(Comparison{
		Kind:    ElementNumAttributes,
		Control: side(control, cPath, len(cAttrs)),
		Test:    side(test, tPath, len(tAttrs)),
	})
	e.compareAttributes(control, test, cAttrs, tAttrs, cPath, tPath)

	e.compareChildren(control, test, cPath, tPath)
}

func (e *engine) compareAttributes(control, test *etree.Element, cAttrs, tAttrs []etree.Attr, cPath, tPath string) {
	for _, ca := range cAttrs {
		if e.stopped {
			return
		}
		cAttrPath := attrPath(cPath, ca)
		ta, ok := findAttr(tAttrs, ca)
		if !ok {
			e.check(Comparison{
				Kind:    AttrNameLookup,
				Control: Detail{XPath: cAttrPath, Value: ca.FullKey(), node: control},
				Test:    Detail{XPath: tPath, node: test},
			})
			continue
		}
		e.check(Comparison{
			Kind:    AttrValue,
			Control: Detail{XPath: cAttrPath, Value: ca.Value, node: control},
			Test:    Detail{XPath: attrPath(tPath, ta), Value: ta.Value, node: test},
		})
	}

	for _, ta := range tAttrs {
		if e.stopped {
			return
		}
		if _, ok := findAttr(cAttrs, ta); ok {
			continue
		}
		e.check(Comparison{
			Kind:    AttrNameLookup,
			Control: Detail{XPath: cPath, node: control},
			Test:    Detail{XPath: attrPath(tPath, ta), Value: ta.FullKey(), node: test},
		})
	}
}

// compareChildren pairs the children of two parents, compares the pairs in
// control order and reports the leftovers as missing or unexpected.
func (e *engine) compareChildren(control, test *etree.Element, cPath, tPath string) {
	if e.stopped {
		return
	}

	cKids, tKids := e.children(control), e.children(test)
	cPaths, tPaths := childPaths(cPath, cKids), childPaths(tPath, tKids)

	e.check(Comparison{
		Kind:    ChildNodeListLength,
		Control: Detail{XPath: cPath, Value: len(cKids), node: control},
		Test:    Detail{XPath: tPath, Value: len(tKids), node: test},
	})

	pairs, usedTest := matchChildren(cKids, tKids)
	matchedControl := make([]bool, len(cKids))

	for _, p := range pairs {
		if e.stopped {
			return
		}
		matchedControl[p.control] = true
		e.check(Comparison{
			Kind:    ChildNodeListSequence,
			Control: Detail{XPath: cPaths[p.control], Value: p.control, node: cKids[p.control]},
			Test:    Detail{XPath: tPaths[p.test], Value: p.test, node: tKids[p.test]},
		})
		e.compareNodes(cKids[p.control], tKids[p.test], cPaths[p.control], tPaths[p.test])
	}

	for i, kid := range cKids {
		if e.stopped {
			return
		}
		if matchedControl[i] {
			continue
		}
		e.check(Comparison{
			Kind:    ChildLookup,
			Control: Detail{XPath: cPaths[i], Value: nodeName(kid), node: kid},
			Test:    Detail{},
		})
	}

	for i, kid := range tKids {
		if e.stopped {
			return
		}
		if usedTest[i] {
			continue
		}
		e.check(Comparison{
			Kind:    ChildLookup,
			Control: Detail{},
			Test:    Detail{XPath: tPaths[i], Value: nodeName(kid), node: kid},
		})
	}
}

// children returns the comparable children of el. Directives and the XML
// declaration never take part. With whitespace ignored, text that is empty
// after trimming is dropped.
func (e *engine) children(el *etree.Element) []etree.Token {
	var kids []etree.Token
	for _, tok := range el.Child {
		switch n := tok.(type) {
		case *etree.Directive:
			continue
		case *etree.ProcInst:
			if n.Target == "xml" {
				continue
			}
		case *etree.CharData:
			if e.ignoreWhitespace && strings.TrimSpace(n.Data) == "" {
				continue
			}
		}
		kids = append(kids, tok)
	}
	return kids
}

func (e *engine) text(s string) string {
	if e.ignoreWhitespace {
		return strings.TrimSpace(s)
	}
	return s
}

type pair struct{ control, test int }

// matchChildren pairs every control child with the first unused test child of
// the same kind, searching forward from the previous match and wrapping
// around. Elements also need the same namespace URI and local name.
func matchChildren(cKids, tKids []etree.Token) ([]pair, []bool) {
	used := make([]bool, len(tKids))
	var pairs []pair

	last := -1
	for ci, c := range cKids {
		for n := 0; n < len(tKids); n++ {
			ti := (last + 1 + n) % len(tKids)
			if used[ti] || !canPair(c, tKids[ti]) {
				continue
			}
			used[ti] = true
			pairs = append(pairs, pair{control: ci, test: ti})
			last = ti
			break
		}
	}
	return pairs, used
}

func canPair(control, test etree.Token) bool {
	if classOf(control) != classOf(test) {
		return false
	}
	c, ok := control.(*etree.Element)
	if !ok {
		return true
	}
	t := test.(*etree.Element)
	return c.Tag == t.Tag && c.NamespaceURI() == t.NamespaceURI()
}

// attributes returns the attributes of el without namespace declarations.
func attributes(el *etree.Element) []etree.Attr {
	attrs := make([]etree.Attr, 0, len(el.Attr))
	for _, a := range el.Attr {
		if a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") {
			continue
		}
		attrs = append(attrs, a)
	}
	return attrs
}

func findAttr(attrs []etree.Attr, want etree.Attr) (etree.Attr, bool) {
	uri := want.NamespaceURI()
	for _, a := range attrs {
		if a.Key == want.Key && a.NamespaceURI() == uri {
			return a, true
		}
	}
	return etree.Attr{}, false
}

func nodeName(tok etree.Token) string {
	switch n := tok.(type) {
	case *etree.Element:
		return n.FullTag()
	case *etree.CharData:
		if n.IsCData() {
			return "#cdata-section"
		}
		return "#text"
	case *etree.Comment:
		return "#comment"
	case *etree.ProcInst:
		return n.Target
	default:
		return "#unknown"
	}
}
