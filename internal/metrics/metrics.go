package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LabelsComposed counts successfully produced artifacts by format.
	LabelsComposed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bomlabel_labels_composed_total",
		Help: "Number of label artifacts composed, by output format.",
	}, []string{"format"})

	// LookupFailures counts failed SKU lookups by reason.
	LookupFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bomlabel_lookup_failures_total",
		Help: "Number of failed SKU lookups, by reason.",
	}, []string{"reason"})

	// ComposeDuration tracks end-to-end label generation time.
	ComposeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bomlabel_compose_duration_seconds",
		Help:    "Time from lookup start to label image on disk.",
		Buckets: prometheus.DefBuckets,
	})

	// TableRows reports the row count seen on the most recent workbook load.
	TableRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bomlabel_table_rows",
		Help: "Rows in the BOM table at the last load.",
	})
)
