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

package main

import (
	"testing"

	"github.com/dwuggh/rangetree/textprops"
)

func TestLoadFixtureFromFile(t *testing.T) {
	edits, err := loadFixture("testdata/sample.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 5 {
		t.Fatalf("got %d edits, want 5", len(edits))
	}
	if edits[0].Op != "put" || edits[0].End != 12 {
		t.Fatalf("first edit = %+v", edits[0])
	}
}

func TestLoadFixtureDefault(t *testing.T) {
	edits, err := loadFixture("")
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) == 0 {
		t.Fatal("default fixture should not be empty")
	}
}

func TestApplyAllOpsAgainstStore(t *testing.T) {
	edits, err := loadFixture("testdata/sample.yaml")
	if err != nil {
		t.Fatal(err)
	}
	store := textprops.NewStore()
	for _, e := range edits {
		apply(store, e)
	}
	got := store.Get(-1000, 1000)
	if len(got) == 0 {
		t.Fatal("expected at least one surviving span after the edit script")
	}
}
