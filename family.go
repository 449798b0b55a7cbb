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
	"golang.org/x/text/language"

	"seehuhn.de/go/sfnt/os2"
)

// A Font is a single variant within a family: one font program together
// with its declared style and any variation settings applied to it.
//
// The library never inspects the font data itself; Data is carried through
// to the shaping consumer unchanged.
type Font struct {
	Style Style

	// Data is the parsed font program,
	// typically *sfnt.Font or *type1.Font.
	Data interface{}

	// Variations gives positions on variation axes of the font.
	// A nil slice means the font's default instance.
	Variations []Variation
}

// A Variation selects a position on one variation axis of a font.
type Variation struct {
	Tag   Tag
	Value float64
}

// A Tag is a four-byte OpenType axis tag, for example 'wght' or 'ital'.
type Tag uint32

// MakeTag constructs a Tag from four bytes.
func MakeTag(a, b, c, d byte) Tag {
	return Tag(a)<<24 | Tag(b)<<16 | Tag(c)<<8 | Tag(d)
}

func (t Tag) String() string {
	return string([]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)})
}

// A Family is an ordered collection of font variants which together form
// one typographic design across weights and slants.  Families must not be
// empty; the library treats an empty family as a broken setup and panics.
//
// Families are shared, read-only data: a Family reachable from a
// [Typeface] must not be modified.
type Family struct {
	Name string

	// Language is the language the family is intended for, or
	// language.Und if the family is not language specific.  It has no
	// influence on style selection.
	Language language.Tag

	Fonts []Font
}

// first returns the first variant of the family.
func (f *Family) first() Font {
	if len(f.Fonts) == 0 {
		panic("typeface: empty font family " + f.Name)
	}
	return f.Fonts[0]
}

// regularCandidate returns the declared style of the variant closest to
// regular (weight 400, upright).  Within a family, a weight difference
// counts double compared to an italic slant, and the earliest of equally
// close variants wins.
func (f *Family) regularCandidate() Style {
	best := f.first().Style
	bestScore := regularDistance(best)
	for _, font := range f.Fonts[1:] {
		if d := regularDistance(font.Style); d < bestScore {
			best = font.Style
			bestScore = d
		}
	}
	return best
}

func regularDistance(s Style) int {
	d := int(s.Weight) - int(os2.WeightNormal)
	if d < 0 {
		d = -d
	}
	d *= 2
	if s.Slant != SlantUpright {
		d++
	}
	return d
}

// A Selection describes how [Registry.FromFamilies] determines the style
// of a new typeface.  Use [SelectStyle] or [SelectDeclared] to construct
// Selection values.
type Selection struct {
	declared bool
	weight   int
	italic   bool
}

// SelectStyle requests the given weight and slant directly.  The family
// contents are retained for shaping but do not influence the computed
// style.
func SelectStyle(weight int, italic bool) Selection {
	return Selection{weight: weight, italic: italic}
}

// SelectDeclared requests whatever style the font data itself declares,
// using the scan described at [Registry.FromFamilies].
func SelectDeclared() Selection {
	return Selection{declared: true}
}

// resolve computes the style the selection describes for the given family
// list.  The family list must not be empty.
func (sel Selection) resolve(families []*Family) Style {
	if len(families) == 0 {
		panic("typeface: empty family list")
	}
	if !sel.declared {
		return NewStyle(sel.weight, sel.italic)
	}
	return selectDeclared(families)
}

// selectDeclared picks the canonical "regular" anchor from the family
// list: the closest-to-regular candidate among all families which offer a
// variant with weight <= 400, scanning families in order with the earlier
// family winning ties.  A collection without any such variant still needs
// a deterministic default, so in that case the first family's first
// variant is adopted verbatim.
func selectDeclared(families []*Family) Style {
	var best Style
	bestScore := -1
	for _, family := range families {
		c := family.regularCandidate()
		if c.Weight > os2.WeightNormal {
			continue
		}
		if d := regularDistance(c); bestScore < 0 || d < bestScore {
			best = c
			bestScore = d
		}
	}
	if bestScore < 0 {
		return families[0].first().Style
	}
	return best
}
