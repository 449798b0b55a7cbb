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
	"testing"

	"seehuhn.de/go/sfnt/os2"
)

func TestClampWeight(t *testing.T) {
	cases := []struct {
		in   int
		want os2.Weight
	}{
		{-100, 1},
		{0, 1},
		{1, 1},
		{400, 400},
		{999, 999},
		{1000, 1000},
		{1100, 1000},
		{1 << 20, 1000},
	}
	for _, test := range cases {
		got := clampWeight(test.in)
		if got != test.want {
			t.Errorf("clampWeight(%d) = %d, want %d", test.in, got, test.want)
		}
		if got < minWeight || got > maxWeight {
			t.Errorf("clampWeight(%d) = %d is out of range", test.in, got)
		}

		// clamping is idempotent
		if again := clampWeight(int(got)); again != got {
			t.Errorf("clampWeight(%d) = %d, want %d", got, again, got)
		}
	}
}

func TestNewStyle(t *testing.T) {
	s := NewStyle(-5, true)
	if s.Weight != 1 || s.Slant != SlantItalic {
		t.Errorf("unexpected style %v", s)
	}
	s = NewStyle(700, false)
	if s.Weight != 700 || s.Slant != SlantUpright {
		t.Errorf("unexpected style %v", s)
	}
}

func TestAPIStyleOf(t *testing.T) {
	cases := []struct {
		weight int
		italic bool
		want   APIStyle
	}{
		{400, false, Normal},
		{599, false, Normal},
		{600, false, Bold},
		{700, false, Bold},
		{1000, false, Bold},
		{400, true, Italic},
		{599, true, Italic},
		{600, true, BoldItalic},
		{700, true, BoldItalic},
	}
	for _, test := range cases {
		got := apiStyleOf(NewStyle(test.weight, test.italic))
		if got != test.want {
			t.Errorf("apiStyleOf(%d, %v) = %v, want %v",
				test.weight, test.italic, got, test.want)
		}
	}
}

func TestAPIStyleBits(t *testing.T) {
	if BoldItalic != Bold|Italic {
		t.Error("BoldItalic is not Bold|Italic")
	}
	if Normal.IsBold() || Normal.IsItalic() {
		t.Error("Normal has style bits set")
	}
	if !BoldItalic.IsBold() || !BoldItalic.IsItalic() {
		t.Error("BoldItalic is missing style bits")
	}
	if Bold.IsItalic() || Italic.IsBold() {
		t.Error("crossed style bits")
	}
}

func TestTag(t *testing.T) {
	wght := MakeTag('w', 'g', 'h', 't')
	if wght.String() != "wght" {
		t.Errorf("Tag.String() = %q, want %q", wght.String(), "wght")
	}
}
