// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/tfctl/xmldiff/internal/util"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// OutputValidator accepts destinations whose extension names a report format.
func OutputValidator(value any) error {
	var validExtensions = []string{"xlsx", "json", "yaml", "yml"}
	s, _ := value.(string)
	if !slices.Contains(validExtensions, util.Ext(s)) {
		return fmt.Errorf("must end in one of %v", validExtensions)
	}
	return nil
}

// Sheet names are limited by the spreadsheet format.
var invalidSheetChars = regexp.MustCompile(`[:\\/?*\[\]]`)

// SheetValidator accepts names of 1 to 31 characters without : \ / ? * [ ].
func SheetValidator(value any) error {
	s, _ := value.(string)
	switch {
	case strings.TrimSpace(s) == "":
		return fmt.Errorf("must not be empty")
	case len([]rune(s)) > 31:
		return fmt.Errorf("must be at most 31 characters")
	case invalidSheetChars.MatchString(s):
		return fmt.Errorf("must not contain any of : \\ / ? * [ ]")
	}
	return nil
}

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// HighlightValidator accepts six hex digits, e.g. FFFF00.
func HighlightValidator(value any) error {
	s, _ := value.(string)
	if !hexColor.MatchString(s) {
		return fmt.Errorf("must be six hex digits, e.g. %s", "FFFF00")
	}
	return nil
}
