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

// A Typeface is a resolved font identity: the style to render with, the
// legacy classification derived from it, and the families providing the
// font data.
//
// Typefaces are immutable.  All derivation operations return a new
// Typeface which shares the family list with its base, so deriving a
// style never copies font data.
type Typeface struct {
	style      Style
	baseWeight os2.Weight
	apiStyle   APIStyle
	families   []*Family
}

func newTypeface(style Style, baseWeight os2.Weight, families []*Family) *Typeface {
	return &Typeface{
		style:      style,
		baseWeight: baseWeight,
		apiStyle:   apiStyleOf(style),
		families:   families,
	}
}

// Style returns the style the typeface renders with.
func (t *Typeface) Style() Style {
	return t.style
}

// APIStyle returns the legacy four-way classification of the typeface's
// style.
func (t *Typeface) APIStyle() APIStyle {
	return t.apiStyle
}

// BaseWeight returns the weight the typeface reverts to when the normal
// style is requested relative to it.  Relative requests never change the
// base weight; only [Registry.Absolute], [Registry.RebaseWeight] and
// [FromFamilies] establish a new one.
func (t *Typeface) BaseWeight() os2.Weight {
	return t.baseWeight
}

// Families returns the font families of the typeface.  The returned slice
// and the families it points to are shared, read-only data and must not
// be modified.
func (t *Typeface) Families() []*Family {
	return t.families
}

// FromFamilies returns a typeface over the given families, styled as sel
// describes.  With [SelectDeclared], the style is taken from the font
// data: the family whose declared style is closest to regular (weight
// 400, upright) becomes the anchor, and if no family declares a weight of
// 400 or below, the first family's first variant is adopted verbatim.
//
// The computed weight becomes the new base weight.  The family list must
// not be empty.
func FromFamilies(families []*Family, sel Selection) *Typeface {
	style := sel.resolve(families)
	return newTypeface(style, style.Weight, families)
}

// Absolute returns a typeface with exactly the given weight and slant,
// independent of any style of base.  The weight is clamped into
// [1, 1000] and becomes the new base weight.  Base (or the registry
// default, if base is nil) contributes only its family list.
func (r *Registry) Absolute(base *Typeface, weight int, italic bool) *Typeface {
	base = r.ResolveDefault(base)
	style := NewStyle(weight, italic)
	return newTypeface(style, style.Weight, base.families)
}

// Relative returns a typeface styled relative to base (or to the registry
// default, if base is nil).  A bold request renders at the base weight
// plus 300, clamped; a normal request returns to the base weight exactly.
// The base weight itself is carried over unchanged, so relative requests
// never compound: asking for bold twice gives the same weight as asking
// once, and normal after bold restores the original weight.
func (r *Registry) Relative(base *Typeface, style APIStyle) *Typeface {
	base = r.ResolveDefault(base)

	weight := base.baseWeight
	if style.IsBold() {
		weight = clampWeight(int(weight) + relativeBoldWeight)
	}
	slant := SlantUpright
	if style.IsItalic() {
		slant = SlantItalic
	}

	return &Typeface{
		style:      Style{Weight: weight, Slant: slant},
		baseWeight: base.baseWeight,
		apiStyle:   apiStyleOf(Style{Weight: weight, Slant: slant}),
		families:   base.families,
	}
}

// RebaseWeight returns a typeface with the given base weight (clamped),
// rendering upright at exactly that weight.  The families of base (or of
// the registry default, if base is nil) are carried over unchanged.
//
// The new typeface classifies as [Normal] even for heavy base weights:
// it is the "normal" style of a heavier design, not a bold variant of a
// lighter one.
func (r *Registry) RebaseWeight(base *Typeface, weight int) *Typeface {
	base = r.ResolveDefault(base)
	w := clampWeight(weight)
	return &Typeface{
		style:      Style{Weight: w, Slant: SlantUpright},
		baseWeight: w,
		apiStyle:   Normal,
		families:   base.families,
	}
}

// Declared returns a typeface styled as the font data of base (or of the
// registry default, if base is nil) declares, using the same scan as
// [FromFamilies] with [SelectDeclared].
func (r *Registry) Declared(base *Typeface) *Typeface {
	base = r.ResolveDefault(base)
	return FromFamilies(base.families, SelectDeclared())
}

// WithVariation returns a typeface which renders base (or the registry
// default, if base is nil) at the given variation axis positions.  Style,
// base weight and classification are unchanged; the family list is
// rebuilt with the settings attached to every variant, sharing the
// underlying font data.
func (r *Registry) WithVariation(base *Typeface, variations []Variation) *Typeface {
	base = r.ResolveDefault(base)

	vv := append([]Variation(nil), variations...)
	families := make([]*Family, len(base.families))
	for i, family := range base.families {
		fonts := make([]Font, len(family.Fonts))
		for j, font := range family.Fonts {
			font.Variations = vv
			fonts[j] = font
		}
		families[i] = &Family{
			Name:     family.Name,
			Language: family.Language,
			Fonts:    fonts,
		}
	}

	return &Typeface{
		style:      base.style,
		baseWeight: base.baseWeight,
		apiStyle:   base.apiStyle,
		families:   families,
	}
}
