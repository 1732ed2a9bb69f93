// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package report turns difference records into a table and renders it as a
// spreadsheet, a JSON or YAML document, or a terminal table. Artifacts are
// encoded in memory and then committed in one step, to a local file or to S3.
package report
