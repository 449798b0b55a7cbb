// seehuhn.de/go/typeface - a library for resolving font styles
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package typeface

import (
	"seehuhn.de/go/sfnt/os2"
)

// Slant distinguishes upright glyphs from italic ones.
type Slant int

// The possible slant values.
const (
	SlantUpright Slant = iota
	SlantItalic
)

func (s Slant) String() string {
	switch s {
	case SlantUpright:
		return "upright"
	case SlantItalic:
		return "italic"
	default:
		return "invalid slant"
	}
}

// A Style describes the rendered style of a typeface: a numeric weight
// together with a slant.  The weight is always in the range from 1
// (thinnest) to 1000 (heaviest); 400 is conventionally "regular" and 700
// "bold".
//
// Style values are immutable once constructed.
type Style struct {
	Weight os2.Weight
	Slant  Slant
}

// NewStyle returns the style with the given weight and slant.  Weights
// outside the range [1, 1000] are clamped into the range.
func NewStyle(weight int, italic bool) Style {
	slant := SlantUpright
	if italic {
		slant = SlantItalic
	}
	return Style{Weight: clampWeight(weight), Slant: slant}
}

func (s Style) String() string {
	return s.Weight.String() + " " + s.Slant.String()
}

// Valid weights.
const (
	minWeight = 1
	maxWeight = 1000
)

// Weights at or above boldThreshold read as bold in the four-way
// [APIStyle] classification.
const boldThreshold os2.Weight = os2.WeightSemiBold

// relativeBoldWeight is added to the base weight when a bold style is
// requested relative to an existing typeface.
const relativeBoldWeight = 300

// clampWeight forces w into the range [1, 1000].  Out-of-range weights are
// sanitized rather than rejected, so that loosely validated style requests
// still resolve deterministically.
func clampWeight(w int) os2.Weight {
	if w < minWeight {
		return minWeight
	}
	if w > maxWeight {
		return maxWeight
	}
	return os2.Weight(w)
}

// APIStyle is the legacy four-way style classification.  It is a pure
// function of weight and slant, provided for callers which think in four
// discrete buckets rather than in continuous weights.
type APIStyle int

// The four legacy styles.  Bold and Italic are bit flags, so that
// BoldItalic == Bold|Italic.
const (
	Normal     APIStyle = 0
	Bold       APIStyle = 1
	Italic     APIStyle = 2
	BoldItalic APIStyle = Bold | Italic
)

// IsBold reports whether the bold bit is set.
func (s APIStyle) IsBold() bool {
	return s&Bold != 0
}

// IsItalic reports whether the italic bit is set.
func (s APIStyle) IsItalic() bool {
	return s&Italic != 0
}

func (s APIStyle) String() string {
	switch s {
	case Normal:
		return "normal"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case BoldItalic:
		return "bold italic"
	default:
		return "invalid style"
	}
}

// apiStyleOf derives the legacy classification from a style: weights at or
// above 600 contribute the bold bit, an italic slant the italic bit.
func apiStyleOf(style Style) APIStyle {
	res := Normal
	if style.Weight >= boldThreshold {
		res |= Bold
	}
	if style.Slant == SlantItalic {
		res |= Italic
	}
	return res
}
