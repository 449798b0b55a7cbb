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

// Package typeface resolves concrete font identities from font families
// and style requests.
//
// A [Typeface] combines a numeric weight (1 to 1000), an upright/italic
// slant, the legacy four-way Normal/Bold/Italic/BoldItalic
// classification, and the font families providing the glyph data.
// Typefaces are immutable; every derivation operation returns a new
// Typeface which shares the family list with its base.
//
// A [Registry] holds the default typeface which requests without an
// explicit base resolve against:
//
//	reg := typeface.NewRegistry()
//	families, err := gofont.Families(gofont.Go)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reg.SetDefault(typeface.FromFamilies(families, typeface.SelectDeclared()))
//
//	bold := reg.Relative(nil, typeface.Bold)
//	light := reg.RebaseWeight(nil, 300)
//	lightItalic := reg.Relative(light, typeface.Italic)
//
// Styles requested relative to a base are computed from the base's stored
// base weight, not from its displayed weight.  Requesting bold twice
// therefore does not compound, and requesting normal after bold restores
// the original weight exactly.
//
// The package never parses font binary data itself.  Families with
// declared styles come from collaborators such as the loader and gofont
// packages in this module.
package typeface
