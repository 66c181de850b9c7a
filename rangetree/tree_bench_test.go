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

import (
	"math/rand"
	"testing"
)

func BenchmarkInsertDisjoint(b *testing.B) {
	var tr Tree[ival]
	for i := 0; i < b.N; i++ {
		tr.Insert(Range{Start: i * 2, End: i*2 + 1}, ival(i), lastWins)
	}
}

func BenchmarkInsertOverlapping(b *testing.B) {
	var tr Tree[ival]
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < b.N; i++ {
		start := rng.Intn(1 << 20)
		tr.Insert(Range{Start: start, End: start + 16}, ival(i), lastWins)
	}
}

func BenchmarkFindIntersects(b *testing.B) {
	var tr Tree[ival]
	for i := 0; i < 100000; i++ {
		tr.Insert(Range{Start: i * 4, End: i*4 + 4}, ival(i), lastWins)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.FindIntersects(Range{Start: i % 400000, End: i%400000 + 10})
	}
}

func BenchmarkDeleteExact(b *testing.B) {
	var tr Tree[ival]
	keys := make([]Range, b.N)
	for i := 0; i < b.N; i++ {
		keys[i] = Range{Start: i, End: i + 1}
		tr.Insert(keys[i], ival(i), lastWins)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.DeleteExact(keys[i])
	}
}
