// Package claphelp skin construction.
// This file maps each preset's palette onto a glamour style configuration.

package claphelp

import (
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"

	"github.com/TheBearodactyl/clap-help/internal/terminal"
)

// palette holds the seven role colors a preset assigns, as hex strings.
type palette struct {
	headers    string
	bold       string
	italic     string
	codeBlock  string
	inlineCode string
	strikeout  string
	body       string
}

// StyleConfig returns the preset's role-to-color mapping as a glamour
// style configuration. The result is built fresh on every call from the
// preset tag alone, so the mapping is pure and referentially stable.
func (p StylePreset) StyleConfig() ansi.StyleConfig {
	return p.palette().styleConfig()
}

func (p StylePreset) palette() palette {
	switch p {
	case CatppuccinLatte:
		return palette{
			headers:    "#8839ef",
			bold:       "#d20f39",
			italic:     "#ea76cb",
			codeBlock:  "#40a02b",
			inlineCode: "#179299",
			strikeout:  "#6c6f85",
			body:       "#4c4f69",
		}
	case CatppuccinFrappe:
		return palette{
			headers:    "#ca9ee6",
			bold:       "#e78284",
			italic:     "#f4b8e4",
			codeBlock:  "#a6d189",
			inlineCode: "#81c8be",
			strikeout:  "#a5adce",
			body:       "#c6d0f5",
		}
	case CatppuccinMacchiato:
		return palette{
			headers:    "#c6a0f6",
			bold:       "#ed8796",
			italic:     "#f5bde6",
			codeBlock:  "#a6da95",
			inlineCode: "#8bd5ca",
			strikeout:  "#a5adcb",
			body:       "#cad3f5",
		}
	case CatppuccinMocha:
		return palette{
			headers:    "#cba6f7",
			bold:       "#f38ba8",
			italic:     "#f5c2e7",
			codeBlock:  "#a6e3a1",
			inlineCode: "#94e2d5",
			strikeout:  "#a6adc8",
			body:       "#cdd6f4",
		}
	case RosePineMain:
		return palette{
			headers:    "#c4a7e7",
			bold:       "#eb6f92",
			italic:     "#f6c177",
			codeBlock:  "#31748f",
			inlineCode: "#9ccfd8",
			strikeout:  "#6e6a86",
			body:       "#e0def4",
		}
	case RosePineMoon:
		return palette{
			headers:    "#c4a7e7",
			bold:       "#eb6f92",
			italic:     "#f6c177",
			codeBlock:  "#3e8fb0",
			inlineCode: "#9ccfd8",
			strikeout:  "#6e6a86",
			body:       "#e0def4",
		}
	case RosePineDawn:
		return palette{
			headers:    "#907aa9",
			bold:       "#b4637a",
			italic:     "#ea9d34",
			codeBlock:  "#286983",
			inlineCode: "#56949f",
			strikeout:  "#9893a5",
			body:       "#575279",
		}
	case KanagawaWave:
		return palette{
			headers:    "#957fb8",
			bold:       "#c0a36e",
			italic:     "#ffa066",
			codeBlock:  "#76946a",
			inlineCode: "#7aa89f",
			strikeout:  "#54546d",
			body:       "#dcd7ba",
		}
	case KanagawaDragon:
		return palette{
			headers:    "#8ba4b0",
			bold:       "#c4746e",
			italic:     "#c4b28a",
			codeBlock:  "#87a987",
			inlineCode: "#8ea4a2",
			strikeout:  "#625e5a",
			body:       "#c5c9c5",
		}
	case KanagawaLotus:
		return palette{
			headers:    "#6f5c7c",
			bold:       "#c84053",
			italic:     "#cc6d00",
			codeBlock:  "#6f894e",
			inlineCode: "#597b75",
			strikeout:  "#716e61",
			body:       "#545464",
		}
	default:
		return StylePreset(0).palette()
	}
}

func (pal palette) styleConfig() ansi.StyleConfig {
	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color:       stringPtr(pal.body),
				BlockSuffix: "\n",
			},
		},
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: stringPtr(pal.body),
			},
			Indent:      uintPtr(1),
			IndentToken: stringPtr("│ "),
		},
		Paragraph: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: stringPtr(pal.body),
			},
		},
		List: ansi.StyleList{
			LevelIndent: 2,
		},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockSuffix: "\n",
				Color:       stringPtr(pal.headers),
				Bold:        boolPtr(true),
			},
		},
		H2: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Prefix: "## "},
		},
		H3: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Prefix: "### "},
		},
		H4: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Prefix: "#### "},
		},
		H5: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Prefix: "##### "},
		},
		H6: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Prefix: "###### "},
		},
		Strikethrough: ansi.StylePrimitive{
			Color:      stringPtr(pal.strikeout),
			CrossedOut: boolPtr(true),
		},
		Emph: ansi.StylePrimitive{
			Color:  stringPtr(pal.italic),
			Italic: boolPtr(true),
		},
		Strong: ansi.StylePrimitive{
			Color: stringPtr(pal.bold),
			Bold:  boolPtr(true),
		},
		HorizontalRule: ansi.StylePrimitive{
			Color:  stringPtr(pal.strikeout),
			Format: "\n--------\n",
		},
		Item: ansi.StylePrimitive{
			BlockPrefix: "• ",
		},
		Enumeration: ansi.StylePrimitive{
			BlockPrefix: ". ",
		},
		Link: ansi.StylePrimitive{
			Color:     stringPtr(pal.inlineCode),
			Underline: boolPtr(true),
		},
		LinkText: ansi.StylePrimitive{
			Color: stringPtr(pal.bold),
			Bold:  boolPtr(true),
		},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: stringPtr(pal.inlineCode),
			},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{
					Color: stringPtr(pal.codeBlock),
				},
			},
		},
		Table: ansi.StyleTable{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{
					Color: stringPtr(pal.body),
				},
			},
		},
	}
}

// DefaultStyleConfig builds a skin for the detected terminal background,
// matching the thresholds used for dark and light detection: a luma above
// 0.85 selects the light skin, below 0.2 the dark one. Non-terminal output
// gets the uncolored configuration.
func DefaultStyleConfig() ansi.StyleConfig {
	return styleConfigForLuma(terminal.Luma())
}

func styleConfigForLuma(luma float64, ok bool) ansi.StyleConfig {
	switch {
	case !ok:
		return styles.NoTTYStyleConfig
	case luma > 0.85:
		return styles.LightStyleConfig
	case luma < 0.2:
		return styles.DarkStyleConfig
	default:
		// Glamour ships no luma-neutral colored configuration, so the
		// ambiguous middle band resolves to the dark skin.
		return styles.DarkStyleConfig
	}
}

func stringPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func uintPtr(u uint) *uint { return &u }
