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

// mergeFunc combines an incoming value with the value already stored at
// an identical key. The caller decides which side wins, or how to
// combine them.
type mergeFunc[V any] func(incoming, existing V) V

// neverMerge is handed to insertions the tree performs on its own
// behalf (range-delete's truncated-tail reinsertion, apply-with-split's
// carved-off remainders) where the reinserted piece is guaranteed by
// construction not to overlap anything already in the tree. If it ever
// runs, an invariant has been broken elsewhere.
func neverMerge[V any](_, _ V) V {
	panic("rangetree: merge invoked on a reinsertion that should never overlap")
}

// insert implements the overlap-splitting insert described in spec
// section 4.3: key is assumed non-degenerate. Wherever key intersects
// n.key, both are carved at their common boundaries so that the
// portions lying outside the overlap keep their own value and are
// recursed into the appropriate child; only the surviving intersection
// is compared against n.key and merged.
func insert[V Cloner[V]](n *node[V], key Range, val V, merge mergeFunc[V]) *node[V] {
	if n == nil {
		return newNode(key, val)
	}

	if key.Intersects(n.key) {
		if key.Start < n.key.Start {
			leftTail := Range{Start: key.Start, End: n.key.Start}
			key.Start = n.key.Start
			n.setLeft(insert(n.left, leftTail, val.Clone(), merge))
		} else if key.Start > n.key.Start {
			leftTail := Range{Start: n.key.Start, End: key.Start}
			n.key.Start = key.Start
			n.setLeft(insert(n.left, leftTail, n.val.Clone(), merge))
		}

		switch {
		case key.End < n.key.End:
			rightTail := Range{Start: key.End, End: n.key.End}
			n.key.End = key.End
			n.setRight(insert(n.right, rightTail, n.val.Clone(), merge))
		case key.End > n.key.End:
			rightTail := Range{Start: n.key.End, End: key.End}
			key.End = n.key.End
			n.setRight(insert(n.right, rightTail, val.Clone(), merge))
		}
		// key and n.key now denote the same intersection range.
	}

	switch key.Compare(n.key) {
	case -1:
		n.setLeft(insert(n.left, key, val, merge))
	case 0:
		n.val = merge(val, n.val)
	case 1:
		n.setRight(insert(n.right, key, val, merge))
	}

	return fixUp(n)
}
