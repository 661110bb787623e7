// Package claphelp style preset catalog.
// This file defines the closed set of named color presets and their metadata.

package claphelp

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned by ParsePreset for names outside the catalog.
var ErrUnknownPreset = errors.New("unknown style preset")

// StylePreset identifies one of the built-in color presets. The zero value
// is CatppuccinLatte. Presets are immutable; all metadata is derived from
// the tag.
type StylePreset int

const (
	CatppuccinLatte StylePreset = iota
	CatppuccinFrappe
	CatppuccinMacchiato
	CatppuccinMocha
	RosePineMain
	RosePineMoon
	RosePineDawn
	KanagawaWave
	KanagawaDragon
	KanagawaLotus
)

// presetNames is the single bidirectional name table: index by tag for
// String, scan for ParsePreset. Names are canonical lowercase-hyphenated.
var presetNames = [...]string{
	CatppuccinLatte:     "catppuccin-latte",
	CatppuccinFrappe:    "catppuccin-frappe",
	CatppuccinMacchiato: "catppuccin-macchiato",
	CatppuccinMocha:     "catppuccin-mocha",
	RosePineMain:        "rose-pine-main",
	RosePineMoon:        "rose-pine-moon",
	RosePineDawn:        "rose-pine-dawn",
	KanagawaWave:        "kanagawa-wave",
	KanagawaDragon:      "kanagawa-dragon",
	KanagawaLotus:       "kanagawa-lotus",
}

// PresetNames returns all preset identifiers in catalog order.
func PresetNames() []string {
	names := make([]string, len(presetNames))
	copy(names, presetNames[:])

	return names
}

// ParsePreset resolves a case-insensitive identifier to its preset.
// Unknown names fail with ErrUnknownPreset; no fallback is substituted.
func ParsePreset(name string) (StylePreset, error) {
	folded := strings.ToLower(name)
	for i, n := range presetNames {
		if n == folded {
			return StylePreset(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// String returns the canonical identifier for the preset.
func (p StylePreset) String() string {
	if p < 0 || int(p) >= len(presetNames) {
		return "unknown"
	}

	return presetNames[p]
}

// IsLight reports whether the preset targets light terminal backgrounds.
func (p StylePreset) IsLight() bool {
	switch p {
	case CatppuccinLatte, RosePineDawn, KanagawaLotus:
		return true
	default:
		return false
	}
}

// Family returns the theme family the preset belongs to.
func (p StylePreset) Family() string {
	switch p {
	case CatppuccinLatte, CatppuccinFrappe, CatppuccinMacchiato, CatppuccinMocha:
		return "Catppuccin"
	case RosePineMain, RosePineMoon, RosePineDawn:
		return "Rose Pine"
	case KanagawaWave, KanagawaDragon, KanagawaLotus:
		return "Kanagawa"
	default:
		return "unknown"
	}
}

// Variant returns the preset's name within its family.
func (p StylePreset) Variant() string {
	switch p {
	case CatppuccinLatte:
		return "Latte"
	case CatppuccinFrappe:
		return "Frappé"
	case CatppuccinMacchiato:
		return "Macchiato"
	case CatppuccinMocha:
		return "Mocha"
	case RosePineMain:
		return "Main"
	case RosePineMoon:
		return "Moon"
	case RosePineDawn:
		return "Dawn"
	case KanagawaWave:
		return "Wave"
	case KanagawaDragon:
		return "Dragon"
	case KanagawaLotus:
		return "Lotus"
	default:
		return "unknown"
	}
}
