// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfctl/xmldiff/internal/aws"
	"github.com/tfctl/xmldiff/internal/config"
	"github.com/tfctl/xmldiff/internal/document"
	"github.com/tfctl/xmldiff/internal/meta"
	"github.com/tfctl/xmldiff/internal/pipeline"
	"github.com/tfctl/xmldiff/internal/report"
)

// ErrBaselineMismatch is returned when --baseline finds changed rows.
var ErrBaselineMismatch = errors.New("differences do not match the baseline")

// isTerminal reports whether fd is a terminal. Tests replace it.
var isTerminal = func(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// compareCommandAction runs the pipeline for the positional documents, saves
// the report and optionally prints it and checks it against a baseline.
func compareCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("Executing action for %v", meta.Args[1:])

	config.Config.Namespace = "compare"

	expected, actual, err := documentArgs(cmd)
	if err != nil {
		return err
	}

	client := aws.DefaultClient(awsOptions(cmd)...)
	sum, err := pipeline.Run(ctx, pipeline.Options{
		Expected:  expected,
		Actual:    actual,
		Output:    cmd.String("output"),
		Sheet:     cmd.String("sheet"),
		Highlight: cmd.String("highlight"),
		S3:        client,
	})
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	if cmd.Bool("print") {
		report.WriteText(w, sum.Table,
			report.WithColor(cmd.Bool("color") && isTerminal(os.Stdout.Fd())),
			report.WithPadding(int(cmd.Int("padding"))))
	}
	fmt.Fprintf(w, "%s written to %s (%s)\n",
		plural(sum.Table.Len(), "difference"), sum.Output, humanize.Bytes(uint64(sum.Bytes)))

	if path := cmd.String("baseline"); path != "" {
		return checkBaseline(ctx, cmd, sum.Table, path, client)
	}
	return nil
}

func checkBaseline(ctx context.Context, cmd *cli.Command, t *report.Table, path string, client aws.ClientFunc) error {
	doc, err := document.Load(ctx, path, document.WithS3Client(client))
	if err != nil {
		return err
	}

	res, err := report.CompareBaseline(t, []byte(doc.Text))
	if err != nil {
		return fmt.Errorf("baseline %s: %w", path, err)
	}
	if !res.Equal {
		fmt.Fprintln(cmd.Root().Writer, res.Delta)
		return ErrBaselineMismatch
	}

	fmt.Fprintf(cmd.Root().Writer, "matches baseline %s\n", path)
	return nil
}

// documentArgs returns the expected and actual paths. Missing ones are left
// empty for the pipeline defaults.
func documentArgs(cmd *cli.Command) (expected, actual string, err error) {
	args := cmd.Args()
	if args.Len() > 2 {
		return "", "", fmt.Errorf("expected at most 2 documents, got %d", args.Len())
	}
	return args.Get(0), args.Get(1), nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func compareCommandBuilder(meta meta.Meta, cfgFile string) *cli.Command {
	flags := append(NewReportFlags("compare", cfgFile), NewTextFlags("compare", cfgFile)...)
	flags = append(flags, NewAWSFlags()...)
	flags = append(flags, &cli.StringFlag{
		Name:    "baseline",
		Aliases: []string{"b"},
		Usage:   "JSON report of an earlier run the differences must match",
	})

	return &cli.Command{
		Name:      "compare",
		Usage:     "compare two XML documents and save the differences",
		UsageText: "xmldiff compare [EXPECTED [ACTUAL]] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  flags,
		Action: compareCommandAction,
	}
}
