// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ computes the structural differences between an expected and
// an actual XML document and turns them into report records. Whitespace-only
// variation is ignored and, by default, so are differences that only make the
// documents similar rather than identical (namespace prefixes, child order,
// CDATA versus text).
package differ
