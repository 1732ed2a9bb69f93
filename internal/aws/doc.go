// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws reads and writes whole objects addressed by s3://bucket/key URIs.
// It is used for remote input documents and remote report destinations.
package aws
