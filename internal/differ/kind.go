// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

// Kind identifies what a single comparison looked at.
type Kind int

const (
	NodeType Kind = iota
	NamespaceURI
	NamespacePrefix
	ElementTagName
	ElementNumAttributes
	AttrNameLookup
	AttrValue
	ChildNodeListLength
	ChildNodeListSequence
	ChildLookup
	TextValue
	CommentValue
	ProcessingInstructionTarget
	ProcessingInstructionData
)

var kindNames = [...]struct{ name, label string }{
	NodeType:                    {"NODE_TYPE", "node type"},
	NamespaceURI:                {"NAMESPACE_URI", "namespace URI"},
	NamespacePrefix:             {"NAMESPACE_PREFIX", "namespace prefix"},
	ElementTagName:              {"ELEMENT_TAG_NAME", "element tag name"},
	ElementNumAttributes:        {"ELEMENT_NUM_ATTRIBUTES", "number of attributes"},
	AttrNameLookup:              {"ATTR_NAME_LOOKUP", "attribute name"},
	AttrValue:                   {"ATTR_VALUE", "attribute value"},
	ChildNodeListLength:         {"CHILD_NODELIST_LENGTH", "child nodelist length"},
	ChildNodeListSequence:       {"CHILD_NODELIST_SEQUENCE", "child nodelist sequence"},
	ChildLookup:                 {"CHILD_LOOKUP", "child"},
	TextValue:                   {"TEXT_VALUE", "text value"},
	CommentValue:                {"COMMENT_VALUE", "comment value"},
	ProcessingInstructionTarget: {"PROCESSING_INSTRUCTION_TARGET", "processing instruction target"},
	ProcessingInstructionData:   {"PROCESSING_INSTRUCTION_DATA", "processing instruction data"},
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "UNKNOWN"
	}
	return kindNames[k].name
}

// Label is the lower-case phrase used in difference descriptions.
func (k Kind) Label() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k].label
}

// Result classifies the outcome of a comparison.
type Result int

const (
	Equal Result = iota
	Similar
	Different
)

func (r Result) String() string {
	switch r {
	case Equal:
		return "EQUAL"
	case Similar:
		return "SIMILAR"
	default:
		return "DIFFERENT"
	}
}

// Mode selects which outcomes are reported.
type Mode int

const (
	// ModeSimilar reports only Different outcomes.
	ModeSimilar Mode = iota
	// ModeIdentical reports Similar and Different outcomes.
	ModeIdentical
)

func (m Mode) reports(r Result) bool {
	switch r {
	case Different:
		return true
	case Similar:
		return m == ModeIdentical
	default:
		return false
	}
}
