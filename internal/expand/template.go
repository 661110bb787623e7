package expand

import "strings"

// Expand substitutes a template against env and returns the resulting text.
//
// Two constructs are recognized:
//
//   - ${name} is replaced by the variable's text, or by nothing when the
//     variable is absent.
//   - ${group followed by a newline starts a repeating block. The body runs
//     until a line holding only "}", and is expanded once per sub-environment
//     stored under the group name. An absent group expands to zero
//     repetitions.
//
// Markdown-flagged values keep their syntax and are styled by the markdown
// pass. Plain values are inserted literally: markdown metacharacters in them
// are backslash-escaped so the renderer shows them as-is. Inside an inline
// code span escaping is skipped, since code spans are already literal.
//
// Expansion is pure: same template and environment, same output.
func Expand(template string, env *Env) string {
	var x expander

	x.expand(template, env)

	return x.out.String()
}

// Escape backslash-escapes the characters that would otherwise be read as
// markdown syntax, so a plain value renders as literal text.
func Escape(s string) string {
	if !strings.ContainsAny(s, metachars) {
		return s
	}

	var b strings.Builder

	b.Grow(len(s) + 4)

	for _, r := range s {
		if strings.ContainsRune(metachars, r) {
			b.WriteByte('\\')
		}

		b.WriteRune(r)
	}

	return b.String()
}

const metachars = "\\`*_[]<>|~"

// expander accumulates output while tracking whether the write position is
// inside an inline code span, which decides if plain values need escaping.
type expander struct {
	out    strings.Builder
	inCode bool
	last   byte
}

func (x *expander) expand(template string, env *Env) {
	rest := template

	for {
		i := strings.Index(rest, "${")
		if i < 0 {
			x.writeRaw(rest)
			break
		}

		x.writeRaw(rest[:i])
		rest = rest[i+2:]

		j := strings.IndexAny(rest, "}\n")
		if j < 0 {
			// Unterminated reference: emit it literally.
			x.writeRaw("${")
			x.writeRaw(rest)

			break
		}

		name := rest[:j]

		if rest[j] == '}' {
			x.writeValue(env.Get(name))
			rest = rest[j+1:]

			continue
		}

		body, remainder, ok := splitBlock(rest[j+1:])
		if !ok {
			// Unterminated block: emit it literally.
			x.writeRaw("${")
			x.writeRaw(rest)

			break
		}

		for _, sub := range env.Group(name) {
			x.expand(body, sub)
		}

		rest = remainder
	}
}

// writeValue inserts a scalar. Markdown-flagged values pass through to the
// styled-markdown path; plain values are escaped unless the insertion point
// sits inside a code span, where markdown is inert anyway.
func (x *expander) writeValue(v Value) {
	if v.Markdown || x.inCode {
		x.writeRaw(v.Text)
		return
	}

	x.writeRaw(Escape(v.Text))
}

// writeRaw appends text and keeps the code-span state current. Escaped
// backticks don't toggle, and a code span never crosses a line break.
func (x *expander) writeRaw(s string) {
	x.out.WriteString(s)

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch c {
		case '`':
			if x.last != '\\' {
				x.inCode = !x.inCode
			}
		case '\n':
			x.inCode = false
		}

		x.last = c
	}
}

// splitBlock splits a repeating-block tail into the body and the text after
// the closing line. The body ends at the first line consisting solely of "}";
// that line is consumed but not part of either result.
func splitBlock(s string) (body, rest string, ok bool) {
	idx := 0

	for idx <= len(s) {
		lineEnd := strings.IndexByte(s[idx:], '\n')

		var line string

		next := len(s)
		if lineEnd < 0 {
			line = s[idx:]
		} else {
			line = s[idx : idx+lineEnd]
			next = idx + lineEnd + 1
		}

		if strings.TrimSpace(line) == "}" {
			return s[:idx], s[next:], true
		}

		if lineEnd < 0 {
			break
		}

		idx = next
	}

	return "", "", false
}
