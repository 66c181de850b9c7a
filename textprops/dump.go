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

package textprops

import (
	"gopkg.in/yaml.v3"

	"github.com/dwuggh/rangetree/rangetree"
)

// dumpSpan is the diagnostic, YAML-marshalable shape of one stored
// span. It is a snapshot for inspection, not a load path: spec.md rules
// out persistence, and nothing in this package reads a dump back in.
type dumpSpan struct {
	Start int            `yaml:"start"`
	End   int            `yaml:"end"`
	Props map[string]any `yaml:"props"`
}

// DumpYAML renders every stored span as YAML, in ascending order, for
// debugging and the cmd/rangetreedump demo.
func (s *Store) DumpYAML() ([]byte, error) {
	var spans []dumpSpan
	s.tree.Do(func(n rangetree.Node[Props]) bool {
		props := make(map[string]any, n.Value.Len())
		for _, k := range n.Value.Keys() {
			v, _ := n.Value.Get(k)
			props[k] = v
		}
		spans = append(spans, dumpSpan{Start: n.Range.Start, End: n.Range.End, Props: props})
		return false
	})
	return yaml.Marshal(spans)
}
