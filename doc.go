// Package claphelp renders styled, width-adapted help text for a
// command-line program.
//
// The pipeline has three stages: a command description is flattened into a
// variable environment (scalars plus repeating groups for options,
// positionals and subcommands); an ordered set of named markdown templates
// is expanded against that environment; and each expanded section is laid
// out against the live terminal width, with all sections unified to the
// widest section's natural content width so they share a right margin.
//
// Typical use:
//
//	printer := claphelp.NewPrinter(cmd).
//		WithPreset(claphelp.CatppuccinMocha).
//		With("options", claphelp.TemplateOptionsList)
//	if err := printer.PrintHelp(); err != nil {
//		// ...
//	}
//
// Templates may be replaced, removed or reordered before the render call,
// and the environment may be extended with caller variables for custom
// templates. Missing variables expand to empty text and keys without a
// template are skipped, so partial configurations render without errors.
package claphelp
