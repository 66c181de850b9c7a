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
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// storeMetrics holds the counters/histogram a Store reports when
// metrics are enabled via WithMetrics. Left nil, a Store records
// nothing and pays no per-call cost beyond a nil check.
type storeMetrics struct {
	mutations        *prometheus.CounterVec
	mutationDuration *prometheus.HistogramVec
}

func newStoreMetrics(reg prometheus.Registerer) *storeMetrics {
	m := &storeMetrics{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "store_mutations_total",
			Help: "The total number of textprops.Store mutating operations, by op.",
		}, []string{"op"}),
		mutationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "store_mutation_duration_seconds",
			Help: "Latency of textprops.Store mutating operations, by op.",
		}, []string{"op"}),
	}
	reg.MustRegister(m.mutations, m.mutationDuration)
	return m
}

func (m *storeMetrics) observe(op string, start time.Time) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(op).Inc()
	m.mutationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
