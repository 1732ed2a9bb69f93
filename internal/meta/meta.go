// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/tfctl/xmldiff/internal/config"
)

// Meta contains runtime metadata shared by commands: the raw CLI arguments,
// the loaded configuration, the context and the working directory at startup.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	StartingDir string
}

// Namespace is the command name following the binary, or "" when args[1] is
// missing or a flag. It doubles as the config namespace.
func (m Meta) Namespace() string {
	if len(m.Args) > 1 && len(m.Args[1]) > 0 && m.Args[1][0] != '-' {
		return m.Args[1]
	}
	return ""
}
