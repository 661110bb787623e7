package expand_test

import (
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/TheBearodactyl/clap-help/internal/expand"
)

func TestExpandScalars(t *testing.T) {
	t.Parallel()

	t.Run("SubstitutesPresentVariables", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		env := expand.NewEnv()
		env.Set("name", "rhit")
		env.Set("version", "2.0")

		out := expand.Expand("# **${name}** ${version}", env)

		g.Expect(out).To(Equal("# **rhit** 2.0"))
	})

	t.Run("AbsentVariableExpandsEmpty", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		env := expand.NewEnv()
		env.Set("name", "rhit")

		out := expand.Expand("${name} ${nope} end", env)

		g.Expect(out).To(Equal("rhit  end"))
	})

	t.Run("MarkdownFlagIsRecorded", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		env := expand.NewEnv()
		env.SetMD("about", "a **bold** claim")

		v, ok := env.Lookup("about")
		g.Expect(ok).To(BeTrue())
		g.Expect(v.Markdown).To(BeTrue())
		g.Expect(expand.Expand("${about}", env)).To(Equal("a **bold** claim"))
	})

	t.Run("PlainValueMetacharactersAreEscaped", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		env := expand.NewEnv()
		env.Set("name", "a*b*c")
		env.Set("author", "dys <dys@example.com>")

		g.Expect(expand.Expand("# **${name}**", env)).To(Equal(`# **a\*b\*c**`))
		g.Expect(expand.Expand("*by* ${author}", env)).To(Equal(`*by* dys \<dys@example.com\>`))
	})

	t.Run("MarkdownValuesKeepTheirSyntax", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		env := expand.NewEnv()
		env.SetMD("help", "see **this** `now`")

		g.Expect(expand.Expand("${help}", env)).To(Equal("see **this** `now`"))
	})

	t.Run("PlainValuesInsideCodeSpansStayVerbatim", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		env := expand.NewEnv()
		env.Set("value-braced", "<FILE>")
		env.Set("positional-args", " SRC [DEST]")

		g.Expect(expand.Expand("`${value-braced}`", env)).To(Equal("`<FILE>`"))
		g.Expect(expand.Expand("`cmd [options]${positional-args}`", env)).
			To(Equal("`cmd [options] SRC [DEST]`"))
	})

	t.Run("CodeSpanStateResetsAtLineBreaks", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		env := expand.NewEnv()
		env.Set("name", "a*b")

		// The stray backtick on the first line opens no span on the second.
		g.Expect(expand.Expand("tick `\n${name}", env)).To(Equal("tick `\n" + `a\*b`))
	})

	t.Run("UnterminatedReferencePassesThroughLiterally", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		env := expand.NewEnv()

		g.Expect(expand.Expand("tail ${oops", env)).To(Equal("tail ${oops"))
	})
}

func TestExpandGroups(t *testing.T) {
	t.Parallel()

	t.Run("RepeatsOncePerSubEnvironment", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		env := expand.NewEnv()
		for _, name := range []string{"build", "test", "lint"} {
			sub := env.Sub("subcommand-lines")
			sub.Set("sub-name", name)
		}

		out := expand.Expand("${subcommand-lines\n* ${sub-name}\n}\n", env)

		g.Expect(out).To(Equal("* build\n* test\n* lint\n"))
	})

	t.Run("AbsentGroupExpandsToNothing", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		env := expand.NewEnv()

		out := expand.Expand("before\n${option-lines\n| ${short} |\n}\nafter", env)

		g.Expect(out).To(Equal("before\nafter"))
	})

	t.Run("SubEnvironmentFallsBackToOuterScalars", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		env := expand.NewEnv()
		env.Set("name", "rhit")
		sub := env.Sub("option-lines")
		sub.Set("long", "--silent")

		out := expand.Expand("${option-lines\n${name} has ${long}\n}\n", env)

		g.Expect(out).To(Equal("rhit has --silent\n"))
	})

	t.Run("SubEnvironmentShadowsOuterScalars", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		env := expand.NewEnv()
		env.Set("help", "outer")
		sub := env.Sub("positional-lines")
		sub.Set("help", "inner")

		out := expand.Expand("${positional-lines\n${help}\n}\n", env)

		g.Expect(out).To(Equal("inner\n"))
	})
}

func TestProperty_Expansion(t *testing.T) {
	t.Parallel()

	t.Run("GroupCardinalityMatchesSubEnvCount", func(t *testing.T) {
		t.Parallel()
		rapid.Check(t, func(t *rapid.T) {
			g := NewWithT(t)

			count := rapid.IntRange(0, 20).Draw(t, "count")

			env := expand.NewEnv()
			for range count {
				env.Sub("lines")
			}

			out := expand.Expand("${lines\nrow\n}\n", env)

			g.Expect(strings.Count(out, "row")).To(Equal(count))
		})
	})

	t.Run("AbsentVariableEqualsEmptyReplacement", func(t *testing.T) {
		t.Parallel()
		rapid.Check(t, func(t *rapid.T) {
			g := NewWithT(t)

			name := rapid.StringMatching(`[a-z][a-z-]{0,15}`).Draw(t, "name")
			prefix := rapid.StringMatching(`[a-z ]{0,10}`).Draw(t, "prefix")
			suffix := rapid.StringMatching(`[a-z ]{0,10}`).Draw(t, "suffix")

			env := expand.NewEnv()

			withRef := expand.Expand(prefix+"${"+name+"}"+suffix, env)
			without := expand.Expand(prefix+suffix, env)

			g.Expect(withRef).To(Equal(without))
		})
	})

	t.Run("ExpansionIsDeterministic", func(t *testing.T) {
		t.Parallel()
		rapid.Check(t, func(t *rapid.T) {
			g := NewWithT(t)

			text := rapid.StringMatching(`[a-z ${}\n-]{0,40}`).Draw(t, "text")

			env := expand.NewEnv()
			env.Set("name", "x")

			g.Expect(expand.Expand(text, env)).To(Equal(expand.Expand(text, env)))
		})
	})
}
