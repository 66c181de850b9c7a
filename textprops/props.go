// Copyright ©2012 Dan Kortschak <dan.kortschak@adelaide.edu.au>
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package textprops is a worked consumer of package rangetree: a
// buffer text-property store keyed by half-open character ranges, in
// the shape of an editor's plist-valued property map.
package textprops

// Props is an ordered property bag, mirroring elisp's plist semantics
// where insertion order is preserved and a later Set of an existing
// key overwrites it in place rather than appending a duplicate.
type Props struct {
	keys   []string
	values map[string]any
}

// NewProps returns an empty property bag.
func NewProps() Props {
	return Props{values: map[string]any{}}
}

// Set assigns key to value, preserving key's original position if it
// was already present.
func (p *Props) Set(key string, value any) {
	if p.values == nil {
		p.values = map[string]any{}
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Delete removes key, if present.
func (p *Props) Delete(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Get returns the value stored under key, and whether it was present.
func (p Props) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Len reports the number of keys in the bag.
func (p Props) Len() int { return len(p.keys) }

// Empty reports whether the bag has no keys at all; an empty Props is
// what Store.Normalize treats as "no properties here", eligible for
// dropping.
func (p Props) Empty() bool { return len(p.keys) == 0 }

// Keys returns the keys in insertion order. The returned slice must
// not be mutated.
func (p Props) Keys() []string { return p.keys }

// Clone deep copies the bag, the way a Tree split requires: the
// cloned map must not alias the original's, or narrowing one half of a
// split range would silently mutate the other. Grounded on the pack's
// debug-dump convention of never handing out a live reference to
// internal state.
func (p Props) Clone() Props {
	out := Props{
		keys:   append([]string(nil), p.keys...),
		values: make(map[string]any, len(p.values)),
	}
	for k, v := range p.values {
		out.values[k] = v
	}
	return out
}

// mergePut folds incoming's keys over existing, last-writer-wins per
// key, the way elisp's plist-put treats a plist: existing keys not
// present in incoming survive untouched.
func mergePut(incoming, existing Props) Props {
	out := existing.Clone()
	for _, k := range incoming.keys {
		v, _ := incoming.Get(k)
		out.Set(k, v)
	}
	return out
}
