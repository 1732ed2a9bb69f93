// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/xmldiff/internal/aws"
	"github.com/tfctl/xmldiff/internal/config"
	"github.com/tfctl/xmldiff/internal/differ"
	"github.com/tfctl/xmldiff/internal/meta"
	"github.com/tfctl/xmldiff/internal/pipeline"
)

// ErrNoTerminal is returned by view when stdin or stdout is not a terminal.
var ErrNoTerminal = errors.New("view needs an interactive terminal")

// browse shows the records. Tests replace it.
var browse = func(title string, records []differ.Record) error {
	return differ.Browse(title, records)
}

// viewCommandAction compares the positional documents and opens the
// interactive difference browser. Nothing is saved.
func viewCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("Executing action for %v", meta.Args[1:])

	config.Config.Namespace = "view"

	if !isTerminal(os.Stdin.Fd()) || !isTerminal(os.Stdout.Fd()) {
		return ErrNoTerminal
	}

	expected, actual, err := documentArgs(cmd)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		Expected: expected,
		Actual:   actual,
		S3:       aws.DefaultClient(awsOptions(cmd)...),
	}
	t, err := pipeline.Compare(ctx, opts)
	if err != nil {
		return err
	}

	return browse(fmt.Sprintf("%s vs %s", t.Expected.Path, t.Actual.Path), t.Records())
}

func viewCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "view",
		Usage:     "browse the differences interactively",
		UsageText: "xmldiff view [EXPECTED [ACTUAL]] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewAWSFlags(),
		Action: viewCommandAction,
	}
}
