// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package pipeline runs the single load, diff, report sequence shared by the
// fixed-path invocation and the compare command.
package pipeline
