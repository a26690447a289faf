package oamap

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	tablePrometheusMetrics sync.Once

	tableProbes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "oamap",
			Subsystem: "table",
			Name:      "probes",
			Help:      "Number of slots visited by an operation before it completed",
			Buckets:   prometheus.ExponentialBuckets(1.0, 2.0, 10),
		},
		[]string{"name", "operation", "outcome"},
	)
	tableResizes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "oamap",
			Subsystem: "table",
			Name:      "resizes_total",
			Help:      "Number of times the slot array was reallocated and rehashed",
		},
		[]string{"name", "reason"},
	)
)

// tableMetrics holds the per-table observers. A nil *tableMetrics
// records nothing.
type tableMetrics struct {
	putInserted    prometheus.Observer
	putUpdated     prometheus.Observer
	getFound       prometheus.Observer
	getNotFound    prometheus.Observer
	deleteDeleted  prometheus.Observer
	deleteNotFound prometheus.Observer

	resizeGrow     prometheus.Counter
	resizeExplicit prometheus.Counter
}

func newTableMetrics(name string) *tableMetrics {
	tablePrometheusMetrics.Do(func() {
		prometheus.MustRegister(tableProbes)
		prometheus.MustRegister(tableResizes)
	})

	return &tableMetrics{
		putInserted:    tableProbes.WithLabelValues(name, "put", "inserted"),
		putUpdated:     tableProbes.WithLabelValues(name, "put", "updated"),
		getFound:       tableProbes.WithLabelValues(name, "get", "found"),
		getNotFound:    tableProbes.WithLabelValues(name, "get", "not_found"),
		deleteDeleted:  tableProbes.WithLabelValues(name, "delete", "deleted"),
		deleteNotFound: tableProbes.WithLabelValues(name, "delete", "not_found"),

		resizeGrow:     tableResizes.WithLabelValues(name, "grow"),
		resizeExplicit: tableResizes.WithLabelValues(name, "explicit"),
	}
}

func (m *tableMetrics) observePut(probes int, inserted bool) {
	if m == nil {
		return
	}

	if inserted {
		m.putInserted.Observe(float64(probes))
	} else {
		m.putUpdated.Observe(float64(probes))
	}
}

func (m *tableMetrics) observeGet(probes int, found bool) {
	if m == nil {
		return
	}

	if found {
		m.getFound.Observe(float64(probes))
	} else {
		m.getNotFound.Observe(float64(probes))
	}
}

func (m *tableMetrics) observeDelete(probes int, deleted bool) {
	if m == nil {
		return
	}

	if deleted {
		m.deleteDeleted.Observe(float64(probes))
	} else {
		m.deleteNotFound.Observe(float64(probes))
	}
}

func (m *tableMetrics) observeResize(grow bool) {
	if m == nil {
		return
	}

	if grow {
		m.resizeGrow.Inc()
	} else {
		m.resizeExplicit.Inc()
	}
}
