// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"strconv"

	"github.com/beevik/etree"
)

// childPaths returns the XPath of every child in kids. Steps are 1-based and
// count preceding siblings of the same kind, so the second <b> under /a[1] is
// /a[1]/b[2] and its first text node is /a[1]/b[2]/text()[1].
func childPaths(parent string, kids []etree.Token) []string {
	counts := map[string]int{}
	paths := make([]string, len(kids))

	for i, tok := range kids {
		var name string
		switch n := tok.(type) {
		case *etree.Element:
			name = n.FullTag()
		case *etree.CharData:
			name = "text()"
		case *etree.Comment:
			name = "comment()"
		case *etree.ProcInst:
			name = "processing-instruction()"
		default:
			name = "node()"
		}
		counts[name]++
		paths[i] = join(parent, name+"["+strconv.Itoa(counts[name])+"]")
	}
	return paths
}

func attrPath(element string, a etree.Attr) string {
	return join(element, "@"+a.FullKey())
}

func join(parent, step string) string {
	if parent == "/" {
		return "/" + step
	}
	return parent + "/" + step
}
