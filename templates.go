// Package claphelp default templates.
// This file holds the built-in section templates and the default key order.

package claphelp

// TemplateTitle is the default template for the "title" section.
const TemplateTitle = "# **${name}** ${version}"

// TemplateAuthor is the default template for the "author" section.
const TemplateAuthor = `
*by* ${author}
`

// TemplateUsage is the default template for the "usage" section.
const TemplateUsage = "\n**Usage:** `${name} [options]${positional-args}`\n"

// TemplatePositionals is the default template for the "positionals" section.
const TemplatePositionals = `
${positional-lines
* ` + "`${key}`" + ` : ${help}
}
`

// TemplateDescription is the default template for the "description" section.
const TemplateDescription = `
${about}
`

// TemplateSubcommands is the default template for the "subcommands" section.
const TemplateSubcommands = `
**Subcommands:**

${subcommand-lines
* ` + "`${sub-name}`" + `: ${sub-about}
}
`

// TemplateExamples is the default template for the "examples" section.
const TemplateExamples = `
**Examples:**

${after_help}
`

// TemplateOptions is the default template for the "options" section.
const TemplateOptions = `
**Options:**

| short | long | value | description |
|:-:|:-|:-:|:-|
${option-lines
| ${short} | ${long} | ${value} | ${help}${possible_values}${default} |
}
`

// TemplateOptionsMergedValue is an "options" template with the value token
// merged into the short and long columns.
const TemplateOptionsMergedValue = `
**Options:**

| short | long | description |
|:-:|:-|:-|
${option-lines
| ${short} ${value-short} | ${long} ${value-long} | ${help}${possible_values}${default} |
}
`

// TemplateOptionsList is an "options" template rendering one list item per
// option, with annotations as indented detail lines.
const TemplateOptionsList = `
**Options:**

${option-lines
* ` + "`${flags-compact}` `${value-braced}`" + `
    *${help}*${details-default}${details-possible-values}${details-env}
}
`

// TemplateOptionsCompactTable is an "options" template with flags collapsed
// into a single column.
const TemplateOptionsCompactTable = `
**Options:**

| flags | description |
|:-|:-|
${option-lines
| ` + "`${flags-compact}` `${value-braced}`" + ` | ${help}${possible_values}${default} |
}
`

// TemplateOptionsVerbose is an "options" template spending several lines
// per option.
const TemplateOptionsVerbose = `
**Options:**

${option-lines
---

**` + "`${flags-compact}`" + `** ` + "`${value-braced}`" + `

> ${help}
${details-default}${details-possible-values}${details-env}
}
`

// TemplateKeys is the default section order. The "introduction" key has no
// built-in template; it exists as an insertion point for caller content.
var TemplateKeys = []string{
	"title",
	"author",
	"description",
	"introduction",
	"usage",
	"positionals",
	"options",
	"subcommands",
	"examples",
}

// defaultTemplates returns the built-in key-to-template mapping.
func defaultTemplates() map[string]string {
	return map[string]string{
		"title":       TemplateTitle,
		"author":      TemplateAuthor,
		"usage":       TemplateUsage,
		"positionals": TemplatePositionals,
		"options":     TemplateOptions,
		"description": TemplateDescription,
		"subcommands": TemplateSubcommands,
		"examples":    TemplateExamples,
	}
}
