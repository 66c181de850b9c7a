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
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dwuggh/rangetree/rangetree"
)

// Store is a buffer text-property store: a rangetree.Tree[Props] keyed
// by character offsets, wrapped with the plist-put merge semantics and
// buffer-edit bookkeeping an editor needs on top of the bare tree.
type Store struct {
	tree    rangetree.Tree[Props]
	metrics *storeMetrics
	log     *slog.Logger
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithMetrics enables Prometheus counters/histograms for every
// mutating operation, registered against reg. Left unset, a Store
// carries no metrics dependency at runtime.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *Store) { s.metrics = newStoreMetrics(reg) }
}

// WithLogger overrides the package default of slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// NewStore returns an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Put adds properties over [start, end), folding them over whatever
// properties already occupy that span (existing keys not named in
// props survive, matching elisp's plist-put).
func (s *Store) Put(start, end int, props Props) {
	defer s.observe("put", time.Now())
	key := rangetree.MustNewRange(start, end)
	s.tree.Insert(key, props, mergePut)
	s.log.Debug("textprops: put", "start", start, "end", end, "keys", props.Keys())
}

// Get returns every property span intersecting [start, end), in
// ascending order.
func (s *Store) Get(start, end int) []rangetree.Node[Props] {
	return s.tree.FindIntersects(rangetree.MustNewRange(start, end))
}

// Remove deletes key from every property span intersecting [start,
// end), leaving the rest of each span's properties intact. A span only
// partly inside [start, end) is split at the boundary, and the part
// outside keeps key.
func (s *Store) Remove(start, end int, key string) {
	defer s.observe("remove", time.Now())
	target := rangetree.MustNewRange(start, end)
	s.tree.ApplyWithSplit(target, func(_ rangetree.Range, p Props) (Props, bool) {
		out := p.Clone()
		out.Delete(key)
		return out, true
	})
}

// Normalize drops spans left with no properties at all and coalesces
// adjacent spans carrying identical properties.
func (s *Store) Normalize() {
	s.tree.Clean(propsEqual, Props.Empty)
}

// OnInsertText reflects inserting length characters at position: spans
// starting after position shift forward, and a span straddling position
// (including one starting exactly at it) absorbs the insertion.
func (s *Store) OnInsertText(position, length int) {
	defer s.observe("on_insert_text", time.Now())
	s.tree.Advance(position, length)
	s.log.Debug("textprops: insert", "position", position, "length", length)
}

// OnDeleteText reflects deleting the text in [start, end): any span's
// portion inside the deleted range is truncated away rather than
// extended across the gap, then the tail is shifted left by the
// deletion's length and adjacent-equal spans are coalesced.
func (s *Store) OnDeleteText(start, end int) {
	defer s.observe("on_delete_text", time.Now())
	deleted := rangetree.MustNewRange(start, end)
	s.tree.Delete(deleted, false)
	// Delete has already truncated away anything inside [start, end), so
	// no surviving span can straddle that gap; every span that needs to
	// close it now starts strictly after start. Advance from start, not
	// end, so Start==end survivors (the truncated tail) shift wholly
	// instead of being mistaken for a span straddling the edit.
	s.tree.Advance(start, start-end)
	s.tree.Merge(propsEqual)
	s.log.Debug("textprops: delete", "start", start, "end", end)
}

func (s *Store) observe(op string, start time.Time) {
	if s.metrics != nil {
		s.metrics.observe(op, start)
	}
}

func propsEqual(a, b Props) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, k := range a.Keys() {
		av, _ := a.Get(k)
		bv, ok := b.Get(k)
		if !ok || av != bv {
			return false
		}
	}
	return true
}
