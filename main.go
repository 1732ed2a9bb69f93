// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tfctl/xmldiff/internal/command"
	"github.com/tfctl/xmldiff/internal/config"
	"github.com/tfctl/xmldiff/internal/errs"
	"github.com/tfctl/xmldiff/internal/log"
	"github.com/tfctl/xmldiff/internal/version"
)

var ctx = context.Background()

// boolFlags never take a value, so the token after them is positional.
var boolFlags = map[string]bool{
	"--print": true, "-p": true,
	"--color": true, "-c": true,
	"--help": true, "-h": true,
	"--version": true, "-v": true,
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	log.InitLogger()
	return run(os.Args, os.Stdout, os.Stderr)
}

// run processes args and executes the app, returning the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args, stdout) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args, stdout, stderr)
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string, w io.Writer) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Fprintln(w, version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand turns a bare invocation into the fixed-path compare run:
// expected.xml and actual.xml into differences.xlsx.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "compare")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	if len(args) > 1 && args[1] == "completion" {
		// Short-circuit completion: pass args directly.
		return args
	}

	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	args = deduplicateFlags(args)
	log.Tracef("args after dedup: args=%v", args)

	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string, stdout, stderr io.Writer) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		log.Errorf("app init failed: %v", err)
		return 1
	}
	app.Writer = stdout
	app.ErrWriter = stderr

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(stderr, errs.Friendly(err))
		log.WithField("args", args[1:]).WithError(err).Error("run failed")
		return 2
	}

	return 0
}

// processSetOnly expands the first @set argument into the entries of the
// <command>.<set> list in the config file, at the position of @set.
func processSetOnly(args []string) []string {
	idx := 2
	if len(args) <= idx {
		return args
	}

	set := ""
	removeIdx := -1
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			removeIdx = idx + i
			break
		}
	}
	if removeIdx == -1 {
		return args
	}

	setArgs, err := config.GetStringSlice(args[1] + "." + set)
	if err != nil {
		log.Warnf("argument set %s not found: %v", set, err)
	}

	var expanded []string
	for _, arg := range setArgs {
		expanded = append(expanded, strings.Fields(arg)...)
	}

	out := make([]string, 0, len(args)+len(expanded))
	out = append(out, args[:removeIdx]...)
	out = append(out, expanded...)
	return append(out, args[removeIdx+1:]...)
}

// deduplicateFlags keeps only the last occurrence of every flag after the
// command, together with its value. A flag takes a value when it is written
// as --name=value, or when it is not a known boolean and the next token does
// not start with "-". Positional arguments keep their place. Everything after
// "--" is left alone.
func deduplicateFlags(args []string) []string {
	head := min(len(args), 2)
	out := append([]string{}, args[:head]...)

	type group struct {
		name   string // empty for positional tokens
		tokens []string
	}

	var groups []group
	rest := args[head:]
	for i := 0; i < len(rest); i++ {
		a := rest[i]
		switch {
		case a == "--":
			groups = append(groups, group{tokens: rest[i:]})
			i = len(rest)
		case strings.HasPrefix(a, "-") && len(a) > 1:
			name, _, hasValue := strings.Cut(a, "=")
			g := group{name: name, tokens: []string{a}}
			if !hasValue && !boolFlags[name] && i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
				g.tokens = append(g.tokens, rest[i+1])
				i++
			}
			groups = append(groups, g)
		default:
			groups = append(groups, group{tokens: []string{a}})
		}
	}

	last := map[string]int{}
	for i, g := range groups {
		if g.name != "" {
			last[g.name] = i
		}
	}

	for i, g := range groups {
		if g.name != "" && last[g.name] != i {
			continue
		}
		out = append(out, g.tokens...)
	}
	return out
}
