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

import "errors"

// ErrInvertedRange is returned by NewRange when start is greater than end.
var ErrInvertedRange = errors.New("rangetree: inverted range")

// Order describes the relationship between two ranges under strict
// ordering: two ranges are Less/Greater only when they don't overlap at
// all, Equal when identical, and Unordered when they overlap but are
// not identical.
type Order int

const (
	Less Order = -1
	Equal Order = 0
	Greater Order = 1
	Unordered Order = 2
)

// Range is a half-open interval [Start, End) over the non-negative
// integers. The zero Range is degenerate ([0,0)).
type Range struct {
	Start, End int
}

// NewRange builds a Range, requiring start <= end. Degenerate ranges
// (start == end) are legal to construct here; it is tree insertion and
// range queries that reject them.
func NewRange(start, end int) (Range, error) {
	if start > end {
		return Range{}, ErrInvertedRange
	}
	return Range{Start: start, End: end}, nil
}

// MustNewRange is NewRange but panics on an inverted range. Useful for
// literal ranges known at the call site to be well formed.
func MustNewRange(start, end int) Range {
	r, err := NewRange(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// Empty reports whether r is degenerate (Start == End).
func (r Range) Empty() bool {
	return r.Start == r.End
}

// Len returns the number of integer positions covered by r.
func (r Range) Len() int {
	return r.End - r.Start
}

// Intersects reports whether r and other overlap on their open
// interiors. Adjacent ranges (r.End == other.Start) do not intersect.
func (r Range) Intersects(other Range) bool {
	return !r.Empty() && !other.Empty() && r.Start < other.End && other.Start < r.End
}

// Intersection returns the overlap between r and other, and whether one
// exists.
func (r Range) Intersection(other Range) (Range, bool) {
	if !r.Intersects(other) {
		return Range{}, false
	}
	start := r.Start
	if other.Start > start {
		start = other.Start
	}
	end := r.End
	if other.End < end {
		end = other.End
	}
	return Range{Start: start, End: end}, true
}

// Compare gives the lexicographic order of r and other on (Start, End),
// matching the BST ordering the tree sorts stored ranges by.
func (r Range) Compare(other Range) int {
	switch {
	case r.Start < other.Start:
		return -1
	case r.Start > other.Start:
		return 1
	case r.End < other.End:
		return -1
	case r.End > other.End:
		return 1
	default:
		return 0
	}
}

// StrictOrder classifies r against other: Less/Greater when they lie
// entirely to one side of each other with no overlap, Equal when
// identical, Unordered when they overlap without being identical.
func (r Range) StrictOrder(other Range) Order {
	if r == other {
		return Equal
	}
	if r.End <= other.Start {
		return Less
	}
	if other.End <= r.Start {
		return Greater
	}
	return Unordered
}

// SplitAt divides r at p, which must satisfy r.Start < p < r.End.
//
// If keepLeft, r is narrowed to [Start, p) and the discarded [p, End)
// is returned; otherwise r is narrowed to [p, End) and the discarded
// [Start, p) is returned. Together the receiver (after the call) and
// the returned Range partition the original r.
func (r *Range) SplitAt(p int, keepLeft bool) Range {
	if p <= r.Start || p >= r.End {
		panic("rangetree: SplitAt point not strictly inside range")
	}
	if keepLeft {
		discarded := Range{Start: p, End: r.End}
		r.End = p
		return discarded
	}
	discarded := Range{Start: r.Start, End: p}
	r.Start = p
	return discarded
}

// Advance shifts both endpoints of r by delta, reflecting a text
// insertion or deletion entirely before r.
func (r *Range) Advance(delta int) {
	r.Start += delta
	r.End += delta
}

// Contains reports whether position falls inside the half-open range.
func (r Range) Contains(position int) bool {
	return r.Start <= position && position < r.End
}

// Subset reports whether r lies entirely within other.
func (r Range) Subset(other Range) bool {
	return other.Start <= r.Start && r.End <= other.End
}
