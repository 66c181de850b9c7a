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

// Package rangetree implements a non-overlapping interval tree over the
// integer number line, backed by a left-leaning red-black tree.
//
// Stored ranges are half-open, [start, end). Inserting a range that
// overlaps one or more existing ranges splits and merges them so that
// the tree never holds two ranges that intersect: the portions of an
// incoming range that lie outside any existing range keep their own
// value, and the portion that overlaps an existing range is resolved by
// a caller-supplied merge function. This is the data structure buffer
// text properties, overlays, and similar per-span annotations are built
// on: see package textprops for a worked consumer.
package rangetree
