// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/xmldiff/internal/config"
	"github.com/tfctl/xmldiff/internal/log"
	"github.com/tfctl/xmldiff/internal/meta"
)

// InitApp builds the command tree for args. The command following the binary
// is also the config namespace.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	m := meta.Meta{
		Args:        args,
		Context:     ctx,
		StartingDir: sd,
	}

	config.Config.Namespace = m.Namespace()
	cfg, err := config.Load()
	if err != nil {
		log.Debugf("config not loaded: err=%v", err)
	}
	m.Config = cfg

	// Flags read the same file through altsrc. No file, no config sources.
	cfgFile := cfg.Source

	app := &cli.Command{
		Name:  "xmldiff",
		Usage: "XML structural difference reporter",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "xmldiff version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		compareCommandBuilder(m, cfgFile),
		viewCommandBuilder(m),
		completionCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
