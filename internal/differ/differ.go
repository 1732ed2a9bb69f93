// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"iter"

	"github.com/apex/log"
	"github.com/beevik/etree"

	"github.com/tfctl/xmldiff/internal/document"
)

type options struct {
	mode             Mode
	ignoreWhitespace bool
}

// Option customizes a comparison.
type Option func(*options)

// WithMode selects which outcomes are reported. The default is ModeSimilar.
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithWhitespace controls whether whitespace-only text is dropped and text is
// trimmed before comparing. The default is true.
func WithWhitespace(ignore bool) Option {
	return func(o *options) { o.ignoreWhitespace = ignore }
}

// Diff is the pending comparison of two parsed documents. The walk happens
// while its sequences are ranged over, and only once.
type Diff struct {
	Expected document.Document
	Actual   document.Document

	control  *etree.Document
	test     *etree.Document
	opts     options
	consumed bool
}

// Compare parses both documents and prepares the comparison. A document that
// is not well-formed XML fails with an *errs.ParseError.
func Compare(expected, actual document.Document, opts ...Option) (*Diff, error) {
	o := options{mode: ModeSimilar, ignoreWhitespace: true}
	for _, opt := range opts {
		opt(&o)
	}

	control, err := parse(expected, document.RoleExpected)
	if err != nil {
		return nil, err
	}
	test, err := parse(actual, document.RoleActual)
	if err != nil {
		return nil, err
	}

	log.Debugf("differ prepared: expected=%s actual=%s mode=%d", expected.Path, actual.Path, o.mode)
	return &Diff{
		Expected: expected,
		Actual:   actual,
		control:  control,
		test:     test,
		opts:     o,
	}, nil
}

// Differences yields every reported difference in pre-order over the expected
// document. A Diff can be walked once; later calls yield nothing.
func (d *Diff) Differences() iter.Seq[Difference] {
	return func(yield func(Difference) bool) {
		if d.consumed {
			log.Debugf("differ: sequence already consumed")
			return
		}
		d.consumed = true

		count := 0
		e := &engine{
			mode:             d.opts.mode,
			ignoreWhitespace: d.opts.ignoreWhitespace,
			emit: func(diff Difference) bool {
				count++
				return yield(diff)
			},
		}
		e.compareDocuments(d.control, d.test)
		log.Debugf("differ walked: differences=%d", count)
	}
}

// Records yields the report record of every difference, in the same order as
// Differences and under the same walk-once rule.
func (d *Diff) Records() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for diff := range d.Differences() {
			if !yield(NewRecord(diff, d.Expected.Text)) {
				return
			}
		}
	}
}
