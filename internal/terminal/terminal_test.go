package terminal_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/TheBearodactyl/clap-help/internal/terminal"
)

func TestWidth(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	// Whether or not stdout is a terminal here, Width must produce a
	// usable positive column count.
	g.Expect(terminal.Width()).To(BeNumerically(">", 0))
	g.Expect(terminal.DefaultWidth).To(Equal(80))
}

func TestLuma(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	luma, ok := terminal.Luma()
	if !ok {
		// Piped output reports no background; nothing more to check.
		return
	}

	g.Expect(luma).To(BeNumerically(">=", 0.0))
	g.Expect(luma).To(BeNumerically("<=", 1.0))
}
