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

// Package loader discovers font families from font map files.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"

	"seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/typeface"
	"seehuhn.de/go/typeface/gofont"
)

// FontType is the format of a font file.
type FontType int

// Supported font types.
const (
	FontTypeSfnt FontType = iota + 1
	FontTypeType1
)

// A FontLoader maps family names to lists of font files and builds
// typeface families from them.  The families of the Go font collection
// are always available as a fallback, so a FontLoader can resolve the
// family "Go" even before any font map has been added.
//
// It is safe to use a FontLoader concurrently from multiple goroutines.
type FontLoader struct {
	sync.RWMutex
	families map[string][]*entry
	langs    map[string]language.Tag
}

type entry struct {
	fname    string
	fontType FontType
}

// New creates a new font loader.
func New() *FontLoader {
	return &FontLoader{
		families: make(map[string][]*entry),
		langs:    make(map[string]language.Tag),
	}
}

// AddFontMap reads a font map from r and adds it to the loader.  A font
// map consists of lines of the form
//
//	<family> <type> <path> [<lang>]
//
// where <family> is the name of the font family, <type> is either "sfnt"
// or "type1", <path> is the path to the font file, and the optional
// <lang> is a BCP 47 language tag for the family.  The fields must be
// separated by single spaces; family names containing spaces must be
// quoted with double quotes.  Lines starting with '#' or '%' are ignored.
//
// Variants accumulate in file order, so listing the regular cut first
// makes it the family's leading variant.
func (l *FontLoader) AddFontMap(r io.Reader) error {
	lines := bufio.NewScanner(r)
	for lines.Scan() {
		line := strings.TrimSpace(lines.Text())
		if len(line) == 0 || line[0] == '#' || line[0] == '%' {
			continue
		}

		name, rest, err := splitName(line)
		if err != nil {
			return err
		}
		parts := strings.SplitN(rest, " ", 3)
		if len(parts) < 2 {
			return fmt.Errorf("loader: invalid font map line: %q", line)
		}

		var fontType FontType
		switch parts[0] {
		case "sfnt":
			fontType = FontTypeSfnt
		case "type1":
			fontType = FontTypeType1
		default:
			return fmt.Errorf("loader: invalid font type %q", parts[0])
		}

		l.AddFont(name, fontType, parts[1])

		if len(parts) == 3 {
			tag, err := language.Parse(parts[2])
			if err != nil {
				return fmt.Errorf("loader: invalid language %q: %w", parts[2], err)
			}
			l.Lock()
			l.langs[name] = tag
			l.Unlock()
		}
	}
	return lines.Err()
}

// splitName splits the family name off a font map line, honouring double
// quotes around names with spaces.
func splitName(line string) (name, rest string, err error) {
	if line[0] == '"' {
		end := strings.IndexByte(line[1:], '"')
		if end < 0 || end+2 >= len(line) || line[end+2] != ' ' {
			return "", "", fmt.Errorf("loader: invalid font map line: %q", line)
		}
		return line[1 : end+1], line[end+3:], nil
	}
	name, rest, ok := strings.Cut(line, " ")
	if !ok {
		return "", "", fmt.Errorf("loader: invalid font map line: %q", line)
	}
	return name, rest, nil
}

// AddFont appends a font file to the named family, creating the family if
// needed.
func (l *FontLoader) AddFont(family string, tp FontType, fname string) {
	l.Lock()
	l.families[family] = append(l.families[family], &entry{fname: fname, fontType: tp})
	l.Unlock()
}

// Families returns the names of all known families, including the builtin
// Go families, in sorted order.
func (l *FontLoader) Families() []string {
	l.RLock()
	names := maps.Keys(l.families)
	l.RUnlock()

	for _, f := range gofont.All {
		names = append(names, f.Name())
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Load builds the family with the given name, parsing each of its font
// files to obtain the declared style of the variant.  If the name is not
// in the loader's font maps but names one of the builtin Go families,
// that family is returned instead.  For unknown names the error wraps
// [fs.ErrNotExist].
func (l *FontLoader) Load(name string) (*typeface.Family, error) {
	l.RLock()
	entries := l.families[name]
	lang := l.langs[name]
	l.RUnlock()

	if len(entries) == 0 {
		if f, ok := gofont.ByName(name); ok {
			return f.New()
		}
		return nil, fmt.Errorf("loader: family %q: %w", name, fs.ErrNotExist)
	}

	fonts := make([]typeface.Font, len(entries))
	for i, e := range entries {
		font, err := readFont(e.fname, e.fontType)
		if err != nil {
			return nil, err
		}
		fonts[i] = font
	}

	return &typeface.Family{
		Name:     name,
		Language: lang,
		Fonts:    fonts,
	}, nil
}

// LoadList builds the families with the given names, in order, for use
// with [typeface.FromFamilies].
func (l *FontLoader) LoadList(names ...string) ([]*typeface.Family, error) {
	res := make([]*typeface.Family, len(names))
	for i, name := range names {
		family, err := l.Load(name)
		if err != nil {
			return nil, err
		}
		res[i] = family
	}
	return res, nil
}

// readFont parses the font file to obtain its declared style.  The parsed
// font program is retained as the variant's data.
func readFont(fname string, tp FontType) (typeface.Font, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return typeface.Font{}, fmt.Errorf("loader: %w", err)
	}
	defer fd.Close()

	switch tp {
	case FontTypeSfnt:
		info, err := sfnt.Read(fd)
		if err != nil {
			return typeface.Font{}, fmt.Errorf("loader: %s: %w", fname, err)
		}
		weight := info.Weight
		if weight == 0 {
			weight = os2.WeightNormal
		}
		return typeface.Font{
			Style: typeface.NewStyle(int(weight), info.IsItalic),
			Data:  info,
		}, nil

	case FontTypeType1:
		f, err := type1.Read(fd)
		if err != nil {
			return typeface.Font{}, fmt.Errorf("loader: %s: %w", fname, err)
		}
		weight := os2.WeightFromString(f.Weight)
		if weight == 0 {
			weight = os2.WeightNormal
		}
		return typeface.Font{
			Style: typeface.NewStyle(int(weight), f.ItalicAngle != 0),
			Data:  f,
		}, nil

	default:
		return typeface.Font{}, fmt.Errorf("loader: %s: unknown font type %d", fname, tp)
	}
}
