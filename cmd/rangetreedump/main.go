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

// Command rangetreedump replays a scripted buffer-edit fixture against
// a textprops.Store and prints the resulting property spans as a
// table. It exists to exercise and visualize the tree, not as a
// product CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/dwuggh/rangetree/textprops"
)

// edit is one scripted step read from the fixture file.
type edit struct {
	Op       string         `yaml:"op"`
	Start    int            `yaml:"start"`
	End      int            `yaml:"end"`
	Position int            `yaml:"position"`
	Length   int            `yaml:"length"`
	Key      string         `yaml:"key"`
	Props    map[string]any `yaml:"props"`
}

func main() {
	fixture := flag.String("fixture", "", "path to a YAML edit-script fixture")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	if *noColor {
		color.NoColor = true //nolint:reassign
	}

	edits, err := loadFixture(*fixture)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	store := textprops.NewStore()
	for _, e := range edits {
		apply(store, e)
	}
	store.Normalize()

	render(store)
}

func loadFixture(path string) ([]edit, error) {
	if path == "" {
		return defaultFixture(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rangetreedump: reading fixture: %w", err)
	}
	var edits []edit
	if err := yaml.Unmarshal(data, &edits); err != nil {
		return nil, fmt.Errorf("rangetreedump: parsing fixture: %w", err)
	}
	return edits, nil
}

// defaultFixture is used when no -fixture is given, so the command
// produces useful output out of the box.
func defaultFixture() []edit {
	return []edit{
		{Op: "put", Start: 0, End: 10, Props: map[string]any{"face": "bold"}},
		{Op: "put", Start: 5, End: 15, Props: map[string]any{"face": "italic"}},
		{Op: "insert", Position: 5, Length: 3},
		{Op: "delete", Start: 0, End: 2},
	}
}

func apply(store *textprops.Store, e edit) {
	switch e.Op {
	case "put":
		p := textprops.NewProps()
		for k, v := range e.Props {
			p.Set(k, v)
		}
		store.Put(e.Start, e.End, p)
	case "remove":
		store.Remove(e.Start, e.End, e.Key)
	case "insert":
		store.OnInsertText(e.Position, e.Length)
	case "delete":
		store.OnDeleteText(e.Start, e.End)
	default:
		fmt.Fprintf(os.Stderr, "rangetreedump: unknown op %q, skipping\n", e.Op)
	}
}

func render(store *textprops.Store) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"start", "end", "properties"})

	var prevEnd int
	var havePrev bool
	for _, n := range store.Get(-1<<31, 1<<31-1) {
		row := table.Row{n.Range.Start, n.Range.End, formatProps(n.Value)}
		if havePrev && n.Range.Start == prevEnd {
			color.New(color.FgCyan).Fprintf(os.Stdout, "  (adjacent to previous span)\n")
		}
		tbl.AppendRow(row)
		prevEnd, havePrev = n.Range.End, true
	}
	tbl.Render()
}

func formatProps(p textprops.Props) string {
	s := ""
	for i, k := range p.Keys() {
		if i > 0 {
			s += ", "
		}
		v, _ := p.Get(k)
		s += fmt.Sprintf("%s=%v", k, v)
	}
	return s
}
