// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package errs defines the fatal error kinds of an xmldiff run: unreadable
// inputs, malformed XML and unwritable outputs.
package errs
