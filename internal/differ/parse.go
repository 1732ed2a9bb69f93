// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/tfctl/xmldiff/internal/document"
	"github.com/tfctl/xmldiff/internal/errs"
)

// passthrough accepts any declared encoding. Documents are validated as UTF-8
// when loaded.
func passthrough(_ string, r io.Reader) (io.Reader, error) {
	return r, nil
}

// parse builds the tree for doc. Malformed input is an *errs.ParseError.
func parse(doc document.Document, role string) (*etree.Document, error) {
	fail := func(err error) (*etree.Document, error) {
		return nil, &errs.ParseError{Role: role, Path: doc.Path, Err: err}
	}

	if err := wellFormed(doc.Text); err != nil {
		return fail(err)
	}

	tree := etree.NewDocument()
	tree.ReadSettings.CharsetReader = passthrough
	if err := tree.ReadFromString(doc.Text); err != nil {
		return fail(err)
	}
	if tree.Root() == nil {
		return fail(errors.New("no root element"))
	}
	return tree, nil
}

// wellFormed runs the strict decoder over text: tags must nest and close, and
// exactly one root element may appear with nothing but whitespace, comments,
// processing instructions and directives around it.
func wellFormed(text string) error {
	dec := xml.NewDecoder(strings.NewReader(text))
	dec.Strict = true
	dec.CharsetReader = passthrough

	depth, roots := 0, 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
				if roots > 1 {
					return errors.New("more than one root element")
				}
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && strings.TrimSpace(string(t)) != "" {
				return errors.New("text outside the root element")
			}
		}
	}

	if roots == 0 {
		return errors.New("no root element")
	}
	return nil
}
