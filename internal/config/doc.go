// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for xmldiff's user
// configuration. The configuration is an optional YAML document located by
// XMLDIFF_CFG_FILE or, failing that, in the user's configuration directory:
//   - Linux: $XDG_CONFIG_HOME/xmldiff.yaml or $HOME/.config/xmldiff.yaml
//   - macOS: $HOME/Library/Application Support/xmldiff.yaml
//   - Windows: %AppData%/xmldiff.yaml
//
// A missing file is not an error; every getter accepts a default.
package config
