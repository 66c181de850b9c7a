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

package rangetree

// Node is a read-only view onto a stored range/value pair, returned by
// query methods. It must not be retained across any call that mutates
// the Tree it came from.
type Node[V Cloner[V]] struct {
	Range Range
	Value V
}

// Tree is a non-overlapping interval tree over half-open integer
// ranges, backed by a left-leaning red-black tree. The zero Tree is
// ready to use.
type Tree[V Cloner[V]] struct {
	root *node[V]
}

// New returns an empty Tree. Using the zero value directly works
// equally well; New exists for symmetry with the rest of the API.
func New[V Cloner[V]]() *Tree[V] {
	return &Tree[V]{}
}

// Len returns the number of ranges currently stored.
func (t *Tree[V]) Len() int {
	return sizeOf(t.root)
}

// blacken primes the root for a delete descent: moveRedLeft/moveRedRight
// require starting from a red node, so a black root with two black
// children is turned red before the walk and restored to black
// afterwards.
func (t *Tree[V]) blacken() {
	if t.root != nil && colorOf(t.root.left) == black && colorOf(t.root.right) == black {
		t.root.color = red
	}
}

func (t *Tree[V]) settle() {
	if t.root != nil {
		t.root.color = black
	}
}

// Insert adds key/val to the tree. Wherever key overlaps one or more
// existing ranges, both are split at their common boundaries; the
// surviving intersection's value is resolved by merge(incoming,
// existing), whose result replaces both. Insert panics if key is
// degenerate (key.Empty()).
func (t *Tree[V]) Insert(key Range, val V, merge func(incoming, existing V) V) {
	if key.Empty() {
		panic("rangetree: cannot insert an empty range")
	}
	t.root = insert(t.root, key, val, merge)
	t.settle()
}

// Get returns the value stored under exactly key, and whether it was
// found.
func (t *Tree[V]) Get(key Range) (V, bool) {
	n := find(t.root, key)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.val, true
}

// DeleteExact removes the range stored under exactly key, returning its
// former value and whether it was present.
func (t *Tree[V]) DeleteExact(key Range) (V, bool) {
	if t.root == nil {
		var zero V
		return zero, false
	}
	t.blacken()
	newRoot, removed := deleteExact(t.root, key)
	t.root = newRoot
	t.settle()
	if removed == nil {
		var zero V
		return zero, false
	}
	return removed.val, true
}

// DeleteMin removes and returns the left-most range in the tree.
func (t *Tree[V]) DeleteMin() (Node[V], bool) {
	if t.root == nil {
		return Node[V]{}, false
	}
	t.blacken()
	newRoot, removed := deleteMin(t.root)
	t.root = newRoot
	t.settle()
	return Node[V]{Range: removed.key, Value: removed.val}, true
}

// DeleteMax removes and returns the right-most range in the tree.
func (t *Tree[V]) DeleteMax() (Node[V], bool) {
	if t.root == nil {
		return Node[V]{}, false
	}
	t.blacken()
	newRoot, removed := deleteMax(t.root)
	t.root = newRoot
	t.settle()
	return Node[V]{Range: removed.key, Value: removed.val}, true
}

// Delete removes every stored range intersecting target. When
// delExtend is false, a range only partially covered by target is
// truncated to what falls outside target rather than removed outright;
// when delExtend is true any intersecting range is removed in full.
func (t *Tree[V]) Delete(target Range, delExtend bool) {
	hits := collectIntersecting(t.root, target)
	for _, hit := range hits {
		t.blacken()
		newRoot, _ := deleteExact(t.root, hit.key)
		t.root = newRoot
		t.settle()

		if delExtend {
			continue
		}
		if hit.key.Start < target.Start {
			leftRem := Range{Start: hit.key.Start, End: target.Start}
			t.root = insert(t.root, leftRem, hit.val.Clone(), neverMerge[V])
			t.settle()
		}
		if hit.key.End > target.End {
			rightRem := Range{Start: target.End, End: hit.key.End}
			t.root = insert(t.root, rightRem, hit.val.Clone(), neverMerge[V])
			t.settle()
		}
	}
}

// Advance reflects a text edit of length delta at position: ranges
// starting after position shift by delta, a range straddling position
// (Start <= position < End, so also one starting exactly at position)
// only has its End moved to absorb it, and ranges ending at or before
// position are untouched. delta may be negative
// to reflect a deletion, provided no stored range would invert.
func (t *Tree[V]) Advance(position, delta int) {
	advance(t.root, position, delta)
}

// Find returns the range stored under exactly key, as a Node, and
// whether it was found.
func (t *Tree[V]) Find(key Range) (Node[V], bool) {
	n := find(t.root, key)
	if n == nil {
		return Node[V]{}, false
	}
	return Node[V]{Range: n.key, Value: n.val}, true
}

// FindIntersects returns every stored range intersecting target, in
// ascending order.
func (t *Tree[V]) FindIntersects(target Range) []Node[V] {
	hits := collectIntersecting(t.root, target)
	out := make([]Node[V], len(hits))
	for i, h := range hits {
		out[i] = Node[V]{Range: h.key, Value: h.val}
	}
	return out
}

// FindIntersectMin returns the left-most stored range intersecting
// target.
func (t *Tree[V]) FindIntersectMin(target Range) (Node[V], bool) {
	n := findIntersectMin(t.root, target)
	if n == nil {
		return Node[V]{}, false
	}
	return Node[V]{Range: n.key, Value: n.val}, true
}

// FindIntersectMax returns the right-most stored range intersecting
// target.
func (t *Tree[V]) FindIntersectMax(target Range) (Node[V], bool) {
	n := findIntersectMax(t.root, target)
	if n == nil {
		return Node[V]{}, false
	}
	return Node[V]{Range: n.key, Value: n.val}, true
}

// Min returns the left-most stored range.
func (t *Tree[V]) Min() (Node[V], bool) {
	n := min(t.root)
	if n == nil {
		return Node[V]{}, false
	}
	return Node[V]{Range: n.key, Value: n.val}, true
}

// ApplyWithSplit carves out the portion of every range intersecting
// target and hands it to f, which returns the replacement value and
// whether to keep it (false deletes the range). Any part of an
// intersecting range lying outside target is left behind unchanged.
func (t *Tree[V]) ApplyWithSplit(target Range, f func(Range, V) (V, bool)) {
	t.root = applyWithSplit(t.root, target, f)
}

// Clean drops every empty-valued or degenerate range and coalesces
// adjacent equal-valued ranges, using eq to compare values and empty to
// decide whether a value counts as absent.
func (t *Tree[V]) Clean(eq func(a, b V) bool, empty func(V) bool) {
	t.root = clean(t.root, eq, empty)
}

// CleanFrom is Clean restricted to ranges at or after start; ranges
// entirely before start are left untouched.
func (t *Tree[V]) CleanFrom(start int, eq func(a, b V) bool, empty func(V) bool) {
	t.root = cleanFrom(t.root, start, eq, empty)
}

// Merge coalesces adjacent, equal-valued ranges without dropping any.
func (t *Tree[V]) Merge(eq func(a, b V) bool) {
	t.root = merge(t.root, eq)
}

// Apply replaces every stored value with f(key, value), left to right.
func (t *Tree[V]) Apply(f func(Range, V) V) {
	apply(t.root, f)
}

// ApplyMut is Apply by mutation-in-place rather than replacement.
func (t *Tree[V]) ApplyMut(f func(Range, *V)) {
	applyMut(t.root, f)
}

// Do calls f on every stored range, in ascending order, stopping early
// if f returns true.
func (t *Tree[V]) Do(f func(Node[V]) bool) {
	var walk func(*node[V]) bool
	walk = func(n *node[V]) bool {
		if n == nil {
			return false
		}
		if walk(n.left) {
			return true
		}
		if f(Node[V]{Range: n.key, Value: n.val}) {
			return true
		}
		return walk(n.right)
	}
	walk(t.root)
}
