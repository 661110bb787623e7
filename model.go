// Package claphelp variable model construction.
// This file turns a command description into the environment templates
// expand against.

package claphelp

import (
	"fmt"
	"strings"

	"github.com/TheBearodactyl/clap-help/internal/expand"
)

// buildEnv makes a single pass over the description and produces the
// variable environment consumed by the templates. Keys that don't apply
// are simply never set; absent variables expand to empty text.
func buildEnv(cmd Command) *expand.Env {
	env := expand.NewEnv()

	name := cmd.BinName
	if name == "" {
		name = cmd.Name
	}
	env.Set("name", name)

	if cmd.Author != "" {
		env.Set("author", cmd.Author)
	}
	if cmd.Version != "" {
		env.Set("version", cmd.Version)
	}
	if cmd.About != "" {
		env.SetMD("about", cmd.About)
	}
	if cmd.AfterHelp != "" {
		env.SetMD("after_help", cmd.AfterHelp)
	}

	for _, arg := range cmd.Args {
		if arg.Hidden || (arg.Short == 0 && arg.Long == "") {
			continue
		}

		setOptionLine(env, arg)
	}

	env.Set("positional-args", buildPositionals(env, cmd.Args))

	for _, sub := range cmd.Subcommands {
		line := env.Sub("subcommand-lines")
		line.Set("sub-name", sub.Name)

		if sub.About != "" {
			line.SetMD("sub-about", sub.About)
		}
	}

	return env
}

// setOptionLine emits one "option-lines" sub-environment for a flag
// argument.
func setOptionLine(env *expand.Env, arg Arg) {
	sub := env.Sub("option-lines")

	sub.Set("flags-compact", flagsCompact(arg))

	if arg.Short != 0 {
		sub.Set("short", "-"+string(arg.Short))
	}
	if arg.Long != "" {
		sub.Set("long", "--"+arg.Long)
	}

	if arg.Help != "" {
		sub.SetMD("help", arg.Help)
	}

	if arg.Action.TakesValue() && len(arg.ValueNames) > 0 {
		value := arg.ValueNames[0]
		braced := "<" + value + ">"
		sub.Set("value", value)
		sub.Set("value-braced", braced)

		if arg.Short != 0 {
			sub.Set("value-short-braced", braced)
			sub.Set("value-short", value)
		}
		if arg.Long != "" {
			sub.Set("value-long-braced", braced)
			sub.Set("value-long", value)
		}
	}

	if arg.Env != "" {
		sub.SetMD("details-env", fmt.Sprintf("\n    * *Environment*: `%s`", arg.Env))
	}

	if len(arg.PossibleValues) > 0 {
		quoted := make([]string, len(arg.PossibleValues))
		for i, v := range arg.PossibleValues {
			quoted[i] = "`" + v + "`"
		}
		joined := strings.Join(quoted, ", ")

		sub.SetMD("possible_values", fmt.Sprintf(" Possible values: [%s]", joined))
		sub.SetMD("details-possible-values", fmt.Sprintf("\n    * *Possible values*: %s", joined))
	}

	// Defaults are suppressed for boolean flags: showing "Default: false"
	// on a switch is noise.
	if len(arg.Defaults) > 0 && arg.Action.TakesValue() {
		def := arg.Defaults[0]
		sub.SetMD("default", fmt.Sprintf(" Default: `%s`", def))
		sub.SetMD("details-default", fmt.Sprintf("\n    * *Default*: `%s`", def))
	}
}

// buildPositionals accumulates the usage fragment for positionals and emits
// their "positional-lines" sub-environments. Positionals without a declared
// value name don't appear in generated help at all.
func buildPositionals(env *expand.Env, args []Arg) string {
	var usage strings.Builder

	for _, arg := range args {
		if !arg.Positional || len(arg.ValueNames) == 0 {
			continue
		}

		key := arg.ValueNames[0]

		usage.WriteByte(' ')
		if !arg.Required {
			usage.WriteByte('[')
		}
		if arg.Last {
			usage.WriteString("-- ")
		}
		usage.WriteString(key)
		if !arg.Required {
			usage.WriteByte(']')
		}

		line := env.Sub("positional-lines")
		line.Set("key", key)

		if arg.Help != "" {
			line.Set("help", arg.Help)
		}
	}

	return usage.String()
}

// flagsCompact renders the combined flag cell. The four-space pad for
// long-only flags keeps long flags vertically aligned with short+long rows.
func flagsCompact(arg Arg) string {
	switch {
	case arg.Short != 0 && arg.Long != "":
		return fmt.Sprintf("-%c, --%s", arg.Short, arg.Long)
	case arg.Long != "":
		return "    --" + arg.Long
	case arg.Short != 0:
		return fmt.Sprintf("-%c", arg.Short)
	default:
		return ""
	}
}
