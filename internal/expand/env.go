// Package expand implements the variable environment and the template
// expansion used to produce help sections. Templates are plain text with
// ${name} scalar substitutions and one level of ${group ...} repetition.
package expand

// Value is a scalar variable. Markdown records whether the text should be
// styled by the markdown pass or treated as literal content.
type Value struct {
	Text     string
	Markdown bool
}

// Env maps variable names to scalar values and group names to ordered
// sub-environments. Lookups for absent names resolve to the empty value.
// Sub-environments fall back to their parent for names they don't define,
// so a repeating block can reference outer scalars like ${name}.
type Env struct {
	parent  *Env
	scalars map[string]Value
	groups  map[string][]*Env
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{
		scalars: make(map[string]Value),
		groups:  make(map[string][]*Env),
	}
}

// Set stores a plain scalar variable.
func (e *Env) Set(name, text string) {
	e.scalars[name] = Value{Text: text}
}

// SetMD stores a markdown-flagged scalar variable.
func (e *Env) SetMD(name, text string) {
	e.scalars[name] = Value{Text: text, Markdown: true}
}

// Lookup resolves a name in this environment, falling back to the parent
// chain. The second return reports whether the name was found anywhere.
func (e *Env) Lookup(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.scalars[name]; ok {
			return v, true
		}
	}

	return Value{}, false
}

// Get resolves a name like Lookup but returns the empty value for absent
// names. Missing variables render as empty text, never as an error.
func (e *Env) Get(name string) Value {
	v, _ := e.Lookup(name)
	return v
}

// Sub appends a new sub-environment to the named group and returns it.
// The sub-environment inherits this environment as its lookup parent.
func (e *Env) Sub(group string) *Env {
	sub := NewEnv()
	sub.parent = e
	e.groups[group] = append(e.groups[group], sub)

	return sub
}

// Group returns the ordered sub-environments stored under group.
// An absent group is an empty group.
func (e *Env) Group(group string) []*Env {
	return e.groups[group]
}
