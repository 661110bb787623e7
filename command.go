// Package claphelp command description structures.
// This file defines the input shape supplied by an argument parser.

package claphelp

// ArgAction describes what parsing an argument does with its input.
type ArgAction int

const (
	// ActionSet stores a single value.
	ActionSet ArgAction = iota

	// ActionAppend accumulates repeated values.
	ActionAppend

	// ActionFlag sets a boolean and consumes no value.
	ActionFlag
)

// TakesValue reports whether the action consumes a value on the command line.
func (a ArgAction) TakesValue() bool {
	return a == ActionSet || a == ActionAppend
}

// Arg describes one command-line argument, flag or positional.
type Arg struct {
	// Short is the single-character flag, 0 when absent.
	Short rune

	// Long is the word flag, empty when absent.
	Long string

	// ValueNames are display names for consumed values; the first one is
	// what help output shows.
	ValueNames []string

	// Help is the argument's help text, markdown-capable.
	Help string

	// Hidden excludes the argument from generated help.
	Hidden bool

	// Positional marks a non-flag argument.
	Positional bool

	// Required marks an argument that must be supplied.
	Required bool

	// Last marks a trailing positional introduced by "--".
	Last bool

	// PossibleValues enumerates accepted value names, in display order.
	PossibleValues []string

	// Defaults are the argument's default values; only the first is shown.
	Defaults []string

	// Action distinguishes value-storing, value-appending and boolean
	// arguments. Default display is suppressed for boolean flags.
	Action ArgAction

	// Env is the environment variable bound to the argument, if any.
	Env string
}

// Subcommand is the one-line summary of a nested command.
type Subcommand struct {
	Name  string
	About string
}

// Command describes the program whose help is being rendered. It is built
// by the argument parser and read-only here.
type Command struct {
	// Name is the command name; BinName, when set, is preferred in output.
	Name    string
	BinName string

	// Author and Version are shown by the title and author sections when
	// present.
	Author  string
	Version string

	// About is the short description; AfterHelp is trailing text shown by
	// the examples section. Both are markdown-capable.
	About     string
	AfterHelp string

	// Args holds flags and positionals in declaration order.
	Args []Arg

	// Subcommands holds direct subcommand summaries in declaration order.
	Subcommands []Subcommand
}
