package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "batchdeposit"

type metrics struct {
	loads    *prometheus.CounterVec
	records  prometheus.Counter
	duration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "loads_total",
			Help:      "Number of deposit files loaded by result",
		}, []string{"result"}),
		records: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "records_total",
			Help:      "Number of deposit records packed into calldata",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "load_duration_seconds",
			Help:      "Time spent validating and packing a deposit file",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.loads, m.records, m.duration)
	return m
}
