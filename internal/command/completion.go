// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/xmldiff/internal/meta"
)

const bashCompletionScript = `# bash completion for xmldiff
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_xmldiff()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "compare view completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local aws="--profile --region"

    case "$cmd" in
        compare)
            local opts="$aws --output -o --sheet --highlight --print -p --color -c --padding --baseline -b"
            ;;
        view)
            local opts="$aws"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts=""
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" || "$prev" == "--baseline" || "$prev" == "-b" ]]; then
        COMPREPLY=( $(compgen -f -- "$cur") )
        return 0
    fi

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Positional EXPECTED and ACTUAL documents
    COMPREPLY=( $(compgen -f -X '!*.xml' -- "$cur") $(compgen -d -- "$cur") )
    return 0
}

complete -F _xmldiff xmldiff
`

const zshCompletionScript = `#compdef xmldiff

_xmldiff() {
  local -a cmds
  cmds=(
    'compare:compare two XML documents and save the differences'
    'view:browse the differences interactively'
    'completion:generate shell completion script'
  )

  local -a aws
  aws=(
  '--profile[AWS shared config profile]:profile'
  '--region[AWS region]:region'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'xmldiff commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    compare)
      _arguments -C \
        $aws \
        '(-o --output)'{-o,--output}'[report destination]:file:_files -g "*.(xlsx|json|yaml|yml)"' \
        '--sheet[sheet name]:sheet' \
        '--highlight[row fill]:rgb' \
        '(-p --print)'{-p,--print}'[print the differences]' \
        '(-c --color)'{-c,--color}'[enable colored text]' \
        '--padding[column padding]:padding' \
        '(-b --baseline)'{-b,--baseline}'[baseline JSON report]:file:_files -g "*.json"' \
        '1::EXPECTED:_files -g "*.xml"' \
        '2::ACTUAL:_files -g "*.xml"'
      ;;
    view)
      _arguments -C \
        $aws \
        '1::EXPECTED:_files -g "*.xml"' \
        '2::ACTUAL:_files -g "*.xml"'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _xmldiff xmldiff
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		// Fall back to the login shell.
		switch sh := os.Getenv("SHELL"); {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		fmt.Fprintln(cmd.Root().ErrWriter, "usage: xmldiff completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "xmldiff completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
