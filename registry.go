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
	"sync"
)

// A Registry holds the default typeface of a rendering stack.  Style
// requests which pass no explicit base resolve against the registry's
// default.
//
// A Registry is safe for use from multiple goroutines: readers always
// observe one fully formed typeface which was set atomically at some
// prior point.  Concurrent writers are last-writer-wins; callers needing
// a deterministic set/restore pair must serialize it themselves.
type Registry struct {
	sync.RWMutex
	def *Typeface
}

// NewRegistry creates a new, empty registry.  The default typeface must
// be set with [Registry.SetDefault] before any style request without an
// explicit base is made.
func NewRegistry() *Registry {
	return &Registry{}
}

// Default returns the current default typeface.
//
// Default panics if no default has been set.  This indicates that the
// surrounding system was never initialized, which is a programming error
// rather than a runtime condition.
func (r *Registry) Default() *Typeface {
	r.RLock()
	def := r.def
	r.RUnlock()
	if def == nil {
		panic("typeface: no default typeface set")
	}
	return def
}

// SetDefault replaces the default typeface and returns the previous one,
// or nil if none was set.  Returning the old value supports the pattern
// of swapping the default, running some code, and restoring the original
// afterwards.
func (r *Registry) SetDefault(t *Typeface) *Typeface {
	r.Lock()
	old := r.def
	r.def = t
	r.Unlock()
	return old
}

// ResolveDefault returns t if t is non-nil, and the registry's default
// typeface otherwise.  Like [Registry.Default], this panics if t is nil
// and no default has been set.
func (r *Registry) ResolveDefault(t *Typeface) *Typeface {
	if t != nil {
		return t
	}
	return r.Default()
}
