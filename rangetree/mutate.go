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

import "math"

const minInt = math.MinInt

// shiftAll adds delta to every key in the subtree rooted at n. A
// uniform shift never changes the relative order of the keys it's
// applied to, so this never needs to rebalance or re-insert anything.
func shiftAll[V Cloner[V]](n *node[V], delta int) {
	if n == nil {
		return
	}
	n.key.Advance(delta)
	shiftAll(n.left, delta)
	shiftAll(n.right, delta)
}

// advance reflects a text edit of length delta at position into every
// stored range: a range starting strictly after position shifts
// wholesale, a range straddling position (Start <= position < End) has
// only its End pushed out, and a range entirely before position is
// untouched.
//
// Because the tree is ordered on Start, once a node's Start is found to
// be strictly past position, its entire right subtree is too (BST
// invariant plus non-overlap), so that side is shifted in one bulk
// traversal rather than walked node by node; the node itself still
// needs the discriminating walk on its left subtree, since a left
// descendant can have any Start up to n.key.Start.
func advance[V Cloner[V]](n *node[V], position, delta int) {
	if n == nil {
		return
	}
	switch {
	case n.key.Start > position:
		n.key.Advance(delta)
		shiftAll(n.right, delta)
		advance(n.left, position, delta)
	case n.key.End > position:
		n.key.End += delta
		advance(n.right, position, delta)
	default:
		advance(n.right, position, delta)
	}
}

// collectIntersecting returns, in ascending order, the key/value pairs
// of every node intersecting target. Snapshotting up front rather than
// walking live via next() sidesteps a real hazard: deleting a node with
// a right child splices its in-order successor into its place and
// detaches that successor node, so a live-captured "next" pointer can
// be invalidated by the very deletion meant to precede it.
func collectIntersecting[V Cloner[V]](n *node[V], target Range) []struct {
	key Range
	val V
} {
	var out []struct {
		key Range
		val V
	}
	if target.Empty() {
		return out
	}
	var walk func(*node[V])
	walk = func(n *node[V]) {
		if n == nil {
			return
		}
		switch target.StrictOrder(n.key) {
		case Less:
			walk(n.left)
		case Greater:
			walk(n.right)
		default:
			walk(n.left)
			out = append(out, struct {
				key Range
				val V
			}{n.key, n.val})
			walk(n.right)
		}
	}
	walk(n)
	return out
}

// applyWithSplit carves out the portion of every range intersecting
// target, leaving any non-overlapping remainder behind under the
// original value, and hands the carved overlap to f. f returns the
// replacement value and whether to keep the range at all; returning
// false deletes it.
func applyWithSplit[V Cloner[V]](root *node[V], target Range, f func(Range, V) (V, bool)) *node[V] {
	hits := collectIntersecting(root, target)
	for _, hit := range hits {
		// Prime the root before the delete descent and paint it black
		// after every step, as Tree's blacken/settle pair does.
		if colorOf(root.left) == black && colorOf(root.right) == black {
			root.color = red
		}
		root, _ = deleteExact(root, hit.key)
		if root != nil {
			root.color = black
		}

		if hit.key.Start < target.Start {
			leftRem := Range{Start: hit.key.Start, End: target.Start}
			root = insert(root, leftRem, hit.val.Clone(), neverMerge[V])
			root.color = black
		}
		if hit.key.End > target.End {
			rightRem := Range{Start: target.End, End: hit.key.End}
			root = insert(root, rightRem, hit.val.Clone(), neverMerge[V])
			root.color = black
		}

		overlap, ok := hit.key.Intersection(target)
		if !ok {
			continue
		}
		if newVal, keep := f(overlap, hit.val); keep {
			root = insert(root, overlap, newVal, neverMerge[V])
			root.color = black
		}
	}
	return root
}

// collectFrom is collectIntersecting specialised to the half-open
// interval [start, +inf): every node whose range reaches at or past
// start.
func collectFrom[V Cloner[V]](n *node[V], start int) []struct {
	key Range
	val V
} {
	var out []struct {
		key Range
		val V
	}
	var walk func(*node[V])
	walk = func(n *node[V]) {
		if n == nil {
			return
		}
		walk(n.left)
		if n.key.End > start {
			out = append(out, struct {
				key Range
				val V
			}{n.key, n.val})
		}
		walk(n.right)
	}
	walk(n)
	return out
}

// cleanFrom drops every empty-valued or degenerate range at or after
// start and coalesces runs of adjacent, equal-valued ranges into one.
// Ranges entirely before start are left untouched.
func cleanFrom[V Cloner[V]](root *node[V], start int, eq func(a, b V) bool, empty func(V) bool) *node[V] {
	victims := collectFrom(root, start)
	for _, v := range victims {
		if colorOf(root.left) == black && colorOf(root.right) == black {
			root.color = red
		}
		root, _ = deleteExact(root, v.key)
		if root != nil {
			root.color = black
		}
	}

	type piece struct {
		key Range
		val V
	}
	var pieces []piece
	for _, v := range victims {
		if v.key.Empty() || empty(v.val) {
			continue
		}
		if n := len(pieces); n > 0 && pieces[n-1].key.End == v.key.Start && eq(pieces[n-1].val, v.val) {
			pieces[n-1].key.End = v.key.End
			continue
		}
		pieces = append(pieces, piece{key: v.key, val: v.val})
	}
	for _, p := range pieces {
		root = insert(root, p.key, p.val, neverMerge[V])
		root.color = black
	}
	return root
}

// clean is cleanFrom over the whole tree.
func clean[V Cloner[V]](root *node[V], eq func(a, b V) bool, empty func(V) bool) *node[V] {
	return cleanFrom(root, minInt, eq, empty)
}

// merge coalesces adjacent, equal-valued ranges without dropping
// anything; it is clean with the empty predicate disabled.
func merge[V Cloner[V]](root *node[V], eq func(a, b V) bool) *node[V] {
	return cleanFrom(root, minInt, eq, func(V) bool { return false })
}

// apply replaces every stored value with f(key, value), left to right.
// Unlike applyWithSplit it never changes the shape of the tree.
func apply[V Cloner[V]](n *node[V], f func(Range, V) V) {
	if n == nil {
		return
	}
	apply(n.left, f)
	n.val = f(n.key, n.val)
	apply(n.right, f)
}

// applyMut is apply by mutation-in-place rather than replacement,
// letting f avoid a Clone when it only needs to tweak the existing
// value.
func applyMut[V Cloner[V]](n *node[V], f func(Range, *V)) {
	if n == nil {
		return
	}
	applyMut(n.left, f)
	f(n.key, &n.val)
	applyMut(n.right, f)
}
