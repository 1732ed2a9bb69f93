// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// BaselineResult is the outcome of CompareBaseline. Delta is the rendered
// difference and is empty when Equal.
type BaselineResult struct {
	Equal bool
	Delta string
}

// CompareBaseline compares the rows of t with the rows of a JSON report saved
// by an earlier run. Document paths and digests are not compared.
func CompareBaseline(t *Table, baseline []byte) (BaselineResult, error) {
	if !gjson.ValidBytes(baseline) {
		return BaselineResult{}, errors.New("baseline is not valid JSON")
	}
	want := gjson.GetBytes(baseline, "rows")
	if !want.IsArray() {
		return BaselineResult{}, errors.New("baseline has no rows array")
	}

	current, err := Encode(t, FormatJSON)
	if err != nil {
		return BaselineResult{}, err
	}
	got := gjson.GetBytes(current, "rows")

	left := []byte(`{"rows":` + want.Raw + `}`)
	right := []byte(`{"rows":` + got.Raw + `}`)

	delta, err := gojsondiff.New().Compare(left, right)
	if err != nil {
		return BaselineResult{}, fmt.Errorf("failed to compare with baseline: %w", err)
	}
	log.Debugf("baseline compared: baseline_rows=%d rows=%d modified=%t", len(want.Array()), t.Len(), delta.Modified())

	if !delta.Modified() {
		return BaselineResult{Equal: true}, nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(left, &jdoc); err != nil {
		return BaselineResult{}, fmt.Errorf("failed to unmarshal baseline: %w", err)
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       false,
	}
	text, err := formatter.NewAsciiFormatter(jdoc, config).Format(delta)
	if err != nil {
		return BaselineResult{}, err
	}
	return BaselineResult{Delta: text}, nil
}
