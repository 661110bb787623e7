// Package terminal answers the two environment questions help rendering
// needs: how wide is the output terminal, and how bright is its background.
package terminal

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultWidth is the fallback width when the terminal size is unavailable,
// e.g. when output is piped or redirected.
const DefaultWidth = 80

// Width returns the current column count of stdout. It queries the terminal
// on every call so a resize between invocations is honored; when the query
// fails it falls back to DefaultWidth rather than erroring, since help must
// still render in non-terminal contexts.
func Width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}

	return w
}

// Luma returns the perceived brightness of the terminal background in
// [0, 1]. The second return is false when stdout is not a terminal, in
// which case no background can be probed.
func Luma() (float64, bool) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 0, false
	}

	output := termenv.NewOutput(os.Stdout)
	rgb := termenv.ConvertToRGB(output.BackgroundColor())

	// Rec. 709 luma coefficients.
	return 0.2126*rgb.R + 0.7152*rgb.G + 0.0722*rgb.B, true
}
