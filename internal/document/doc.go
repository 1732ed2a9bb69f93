// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package document loads the expected and actual XML documents of a run into
// memory, from local files or s3:// URIs.
package document
