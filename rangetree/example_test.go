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

package rangetree_test

import (
	"fmt"

	"github.com/dwuggh/rangetree/rangetree"
)

// tag is a minimal Cloner: an immutable label copies by value.
type tag string

func (t tag) Clone() tag { return t }

func Example() {
	var t rangetree.Tree[tag]

	incomingWins := func(incoming, existing tag) tag { return incoming }

	t.Insert(rangetree.MustNewRange(0, 10), "a", incomingWins)
	t.Insert(rangetree.MustNewRange(5, 15), "b", incomingWins)

	t.Do(func(n rangetree.Node[tag]) bool {
		fmt.Printf("[%d,%d) = %s\n", n.Range.Start, n.Range.End, n.Value)
		return false
	})

	// Output:
	// [0,5) = a
	// [5,10) = b
	// [10,15) = b
}

func Example_advance() {
	var t rangetree.Tree[tag]
	lastWins := func(incoming, existing tag) tag { return incoming }

	t.Insert(rangetree.MustNewRange(0, 5), "word", lastWins)
	t.Insert(rangetree.MustNewRange(5, 10), "rest", lastWins)

	// Simulate inserting 3 characters at position 5: the first range ends
	// at 5 and is untouched; the second starts at 5, so the edit falls
	// inside it and only its end moves out by 3.
	t.Advance(5, 3)

	t.Do(func(n rangetree.Node[tag]) bool {
		fmt.Printf("[%d,%d) = %s\n", n.Range.Start, n.Range.End, n.Value)
		return false
	})

	// Output:
	// [0,5) = word
	// [5,13) = rest
}
