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

// Package gofont provides the Go font family as builtin typeface
// families.
package gofont

import (
	"bytes"
	"fmt"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/typeface"
)

// Family identifies the individual families in the Go font collection.
type Family int

// Constants for the available families in the Go font collection.
const (
	Go          Family = iota // Go Regular, Italic, Semi Bold, Semi Bold Italic
	GoMono                    // Go Mono Regular, Italic, Semi Bold, Semi Bold Italic
	GoMedium                  // Go Medium Regular, Italic
	GoSmallcaps               // Go Smallcaps Regular, Italic
)

// All contains all families in the Go font collection.
var All = []Family{Go, GoMono, GoMedium, GoSmallcaps}

var familyNames = map[Family]string{
	Go:          "Go",
	GoMono:      "Go Mono",
	GoMedium:    "Go Medium",
	GoSmallcaps: "Go Smallcaps",
}

var ttf = map[Family][][]byte{
	Go:          {goregular.TTF, goitalic.TTF, gobold.TTF, gobolditalic.TTF},
	GoMono:      {gomono.TTF, gomonoitalic.TTF, gomonobold.TTF, gomonobolditalic.TTF},
	GoMedium:    {gomedium.TTF, gomediumitalic.TTF},
	GoSmallcaps: {gosmallcaps.TTF, gosmallcapsitalic.TTF},
}

// Gopher is the Unicode code point for the gopher symbol in the Go fonts.
const Gopher = ''

// Name returns the name of the family, for example "Go Mono".
func (f Family) Name() string {
	return familyNames[f]
}

// ByName returns the family with the given name, for example "Go Mono".
func ByName(name string) (Family, bool) {
	for f, n := range familyNames {
		if n == name {
			return f, true
		}
	}
	return 0, false
}

// New builds the family, parsing the embedded font data to obtain the
// declared style of each variant.
func (f Family) New() (*typeface.Family, error) {
	data, ok := ttf[f]
	if !ok {
		return nil, fmt.Errorf("gofont: unknown family %d", f)
	}

	fonts := make([]typeface.Font, len(data))
	for i, d := range data {
		font, err := variant(d)
		if err != nil {
			return nil, err
		}
		fonts[i] = font
	}

	return &typeface.Family{
		Name:  familyNames[f],
		Fonts: fonts,
	}, nil
}

// Families builds the given families, in order.  With no arguments, all
// families in the Go font collection are built.
func Families(ff ...Family) ([]*typeface.Family, error) {
	if len(ff) == 0 {
		ff = All
	}
	res := make([]*typeface.Family, len(ff))
	for i, f := range ff {
		family, err := f.New()
		if err != nil {
			return nil, err
		}
		res[i] = family
	}
	return res, nil
}

// Install builds all families in the Go font collection and makes them
// the default typeface of reg, styled as the font data declares.
func Install(reg *typeface.Registry) error {
	families, err := Families()
	if err != nil {
		return err
	}
	reg.SetDefault(typeface.FromFamilies(families, typeface.SelectDeclared()))
	return nil
}

func variant(data []byte) (typeface.Font, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return typeface.Font{}, fmt.Errorf("gofont: %w", err)
	}

	weight := info.Weight
	if weight == 0 {
		weight = os2.WeightNormal
	}

	return typeface.Font{
		Style: typeface.NewStyle(int(weight), info.IsItalic),
		Data:  info,
	}, nil
}
