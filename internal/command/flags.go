// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/xmldiff/internal/aws"
	"github.com/tfctl/xmldiff/internal/pipeline"
	"github.com/tfctl/xmldiff/internal/report"
)

// EnvOutput overrides the default destination of the compare command.
const EnvOutput = "XMLDIFF_OUTPUT"

// NewReportFlags returns the flags shaping the saved report. ns and cfgFile,
// when cfgFile is not empty, add config file sources for ns.<flag> and <flag>.
func NewReportFlags(ns, cfgFile string) []cli.Flag {
	output := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "destination of the report (.xlsx, .json, .yaml or s3://bucket/key)",
		Value:   pipeline.DefaultOutput,
		Sources: cli.NewValueSourceChain(cli.EnvVar(EnvOutput)),
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}
	sheet := &cli.StringFlag{
		Name:  "sheet",
		Usage: "name of the spreadsheet's sheet",
		Value: report.DefaultSheet,
		Validator: func(value string) error {
			return FlagValidators(value, SheetValidator)
		},
	}
	highlight := &cli.StringFlag{
		Name:  "highlight",
		Usage: "RGB hex fill of difference rows",
		Value: report.DefaultHighlight,
		Validator: func(value string) error {
			return FlagValidators(value, HighlightValidator)
		},
	}

	for _, f := range []*cli.StringFlag{output, sheet, highlight} {
		addConfigSources(&f.Sources, ns, cfgFile, f.Name)
	}

	return []cli.Flag{output, sheet, highlight}
}

// NewTextFlags returns the flags controlling terminal output.
func NewTextFlags(ns, cfgFile string) []cli.Flag {
	padding := &cli.IntFlag{
		Name:  "padding",
		Usage: "spaces between printed columns",
		Value: 2,
	}
	addConfigSources(&padding.Sources, ns, cfgFile, padding.Name)

	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "print",
			Aliases: []string{"p"},
			Usage:   "also print the differences as a table",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		padding,
	}
}

// NewAWSFlags returns the flags overriding the AWS configuration used for
// s3:// paths.
func NewAWSFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "profile",
			Usage: "AWS shared config profile for s3:// paths",
		},
		&cli.StringFlag{
			Name:  "region",
			Usage: "AWS region for s3:// paths",
		},
	}
}

// awsOptions turns the AWS flags of cmd into client options.
func awsOptions(cmd *cli.Command) []aws.Option {
	var opts []aws.Option
	if p := cmd.String("profile"); p != "" {
		opts = append(opts, aws.WithProfile(p))
	}
	if r := cmd.String("region"); r != "" {
		opts = append(opts, aws.WithRegion(r))
	}
	return opts
}

// addConfigSources appends the namespaced and then the global config file key
// for name to chain.
func addConfigSources(chain *cli.ValueSourceChain, ns, path, name string) {
	if path == "" {
		return
	}
	if ns != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)))
	}
	chain.Chain = append(chain.Chain, yaml.YAML(name, altsrc.StringSourcer(path)))
}
