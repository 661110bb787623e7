package claphelp

// SetWidthForTest pins the terminal width seen by the printer, so tests
// don't depend on the real terminal.
func (p *Printer) SetWidthForTest(width int) {
	p.widthFn = func() int { return width }
}

// BuildEnvForTest exposes the variable model builder to package tests.
var BuildEnvForTest = buildEnv

// StyleConfigForLumaForTest exposes the background-to-skin mapping, so the
// luma bands can be checked without a real terminal.
var StyleConfigForLumaForTest = styleConfigForLuma
