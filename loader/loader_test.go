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

package loader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/exp/slices"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"

	"seehuhn.de/go/typeface"
)

// writeFonts writes the given font blobs to a temporary directory and
// returns their file names.
func writeFonts(t *testing.T, blobs ...[]byte) []string {
	t.Helper()
	dir := t.TempDir()
	names := make([]string, len(blobs))
	for i, blob := range blobs {
		names[i] = filepath.Join(dir, "font"+string(rune('a'+i))+".ttf")
		if err := os.WriteFile(names[i], blob, 0o666); err != nil {
			t.Fatal(err)
		}
	}
	return names
}

func TestLoadSfnt(t *testing.T) {
	names := writeFonts(t, goregular.TTF, goitalic.TTF)

	l := New()
	l.AddFont("Test", FontTypeSfnt, names[0])
	l.AddFont("Test", FontTypeSfnt, names[1])

	family, err := l.Load("Test")
	if err != nil {
		t.Fatal(err)
	}
	if family.Name != "Test" {
		t.Errorf("family name = %q", family.Name)
	}
	if len(family.Fonts) != 2 {
		t.Fatalf("got %d variants, want 2", len(family.Fonts))
	}
	if got := family.Fonts[0].Style; got != typeface.NewStyle(400, false) {
		t.Errorf("regular declares %v", got)
	}
	if got := family.Fonts[1].Style; got.Slant != typeface.SlantItalic {
		t.Errorf("italic declares %v", got)
	}
}

func TestAddFontMap(t *testing.T) {
	names := writeFonts(t, goregular.TTF, goitalic.TTF)

	fontMap := strings.Join([]string{
		"# test font map",
		"% another comment",
		"",
		"Test sfnt " + names[0] + " de",
		"Test sfnt " + names[1],
		`"Test Two" sfnt ` + names[0],
	}, "\n")

	l := New()
	if err := l.AddFontMap(strings.NewReader(fontMap)); err != nil {
		t.Fatal(err)
	}

	family, err := l.Load("Test")
	if err != nil {
		t.Fatal(err)
	}
	if len(family.Fonts) != 2 {
		t.Errorf("got %d variants, want 2", len(family.Fonts))
	}
	if family.Language != language.German {
		t.Errorf("language = %v, want %v", family.Language, language.German)
	}

	two, err := l.Load("Test Two")
	if err != nil {
		t.Fatal(err)
	}
	if len(two.Fonts) != 1 {
		t.Errorf("got %d variants, want 1", len(two.Fonts))
	}
	if two.Language != language.Und {
		t.Errorf("language = %v, want Und", two.Language)
	}
}

func TestAddFontMapErrors(t *testing.T) {
	cases := []string{
		"Test",
		"Test sfnt",
		"Test woff2 /tmp/x.woff2",
		"Test sfnt /tmp/x.ttf not-a-language-tag!",
		`"Test /tmp/x.ttf`,
	}
	for _, line := range cases {
		l := New()
		if err := l.AddFontMap(strings.NewReader(line)); err == nil {
			t.Errorf("no error for %q", line)
		}
	}
}

func TestAddFontMapType1(t *testing.T) {
	l := New()
	err := l.AddFontMap(strings.NewReader("Nimbus type1 /tmp/nimbus.pfb"))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(l.Families(), "Nimbus") {
		t.Error("family was not added")
	}
}

func TestLoadUnknown(t *testing.T) {
	l := New()
	_, err := l.Load("No Such Family")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestBuiltinFallback(t *testing.T) {
	l := New()
	family, err := l.Load("Go")
	if err != nil {
		t.Fatal(err)
	}
	if family.Name != "Go" || len(family.Fonts) != 4 {
		t.Errorf("builtin Go family has %d variants", len(family.Fonts))
	}
}

func TestFamilies(t *testing.T) {
	l := New()
	names := l.Families()
	if !slices.IsSorted(names) {
		t.Error("family names are not sorted")
	}
	if !slices.Contains(names, "Go Mono") {
		t.Error("builtin families missing")
	}

	l.AddFont("Aardvark", FontTypeSfnt, "/tmp/a.ttf")
	names = l.Families()
	if !slices.IsSorted(names) || names[0] != "Aardvark" {
		t.Errorf("unexpected listing %v", names)
	}
}

func TestLoadList(t *testing.T) {
	names := writeFonts(t, goregular.TTF)

	l := New()
	l.AddFont("Test", FontTypeSfnt, names[0])

	families, err := l.LoadList("Test", "Go")
	if err != nil {
		t.Fatal(err)
	}
	if len(families) != 2 || families[0].Name != "Test" || families[1].Name != "Go" {
		t.Errorf("unexpected families %v", families)
	}

	// the loaded list plugs into style resolution
	tf := typeface.FromFamilies(families, typeface.SelectDeclared())
	if tf.Style() != typeface.NewStyle(400, false) {
		t.Errorf("declared style = %v", tf.Style())
	}
}
