// Package prom exports knn operation metrics to Prometheus.
package prom

import (
	"strconv"
	"time"

	"github.com/hupe1980/knn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// Collector implements knn.MetricsCollector on top of Prometheus counters and
// histograms.
type Collector struct {
	FitTotal        *prometheus.CounterVec
	FitRows         prometheus.Counter
	FitDuration     prometheus.Histogram
	SearchTotal     *prometheus.CounterVec
	SearchQueries   prometheus.Counter
	SearchK         prometheus.Histogram
	SearchDuration  prometheus.Histogram
	PredictTotal    *prometheus.CounterVec
	PredictQueries  prometheus.Counter
	PredictDuration prometheus.Histogram
	FoldTotal       *prometheus.CounterVec
	FoldDuration    *prometheus.HistogramVec
}

var _ knn.MetricsCollector = (*Collector)(nil)

// NewCollector registers the knn metrics on reg under namespace.
// It panics if a metric with the same name is already registered.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	f := promauto.With(reg)

	return &Collector{
		FitTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fit_total",
			Help:      "Total number of Fit calls by status",
		}, []string{"status"}),
		FitRows: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fit_rows_total",
			Help:      "Training rows accepted by successful Fit calls",
		}),
		FitDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fit_duration_seconds",
			Help:      "Duration of Fit calls, including index construction",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		SearchTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_total",
			Help:      "Total number of batched neighbor searches by status",
		}, []string{"status"}),
		SearchQueries: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_queries_total",
			Help:      "Query rows answered by successful neighbor searches",
		}),
		SearchK: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_k",
			Help:      "Neighbors requested per query row",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		SearchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Duration of batched neighbor searches",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		PredictTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predict_total",
			Help:      "Total number of Predict and PredictProba calls by status",
		}, []string{"status"}),
		PredictQueries: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predict_queries_total",
			Help:      "Query rows labeled by successful predictions",
		}),
		PredictDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "predict_duration_seconds",
			Help:      "Duration of predictions",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		FoldTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "crossval_fold_total",
			Help:      "Cross-validation folds evaluated by status",
		}, []string{"status"}),
		FoldDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "crossval_fold_duration_seconds",
			Help:      "Duration of one cross-validation fold by fold index",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"fold"}),
	}
}

// RecordFit implements knn.MetricsCollector.
func (c *Collector) RecordFit(rows int, duration time.Duration, err error) {
	c.FitTotal.WithLabelValues(status(err)).Inc()
	c.FitDuration.Observe(duration.Seconds())
	if err == nil {
		c.FitRows.Add(float64(rows))
	}
}

// RecordSearch implements knn.MetricsCollector.
func (c *Collector) RecordSearch(k, queries int, duration time.Duration, err error) {
	c.SearchTotal.WithLabelValues(status(err)).Inc()
	c.SearchDuration.Observe(duration.Seconds())
	if err == nil {
		c.SearchQueries.Add(float64(queries))
		c.SearchK.Observe(float64(k))
	}
}

// RecordPredict implements knn.MetricsCollector.
func (c *Collector) RecordPredict(queries int, duration time.Duration, err error) {
	c.PredictTotal.WithLabelValues(status(err)).Inc()
	c.PredictDuration.Observe(duration.Seconds())
	if err == nil {
		c.PredictQueries.Add(float64(queries))
	}
}

// RecordFold implements knn.MetricsCollector.
func (c *Collector) RecordFold(fold int, duration time.Duration, err error) {
	c.FoldTotal.WithLabelValues(status(err)).Inc()
	c.FoldDuration.WithLabelValues(strconv.Itoa(fold)).Observe(duration.Seconds())
}

func status(err error) string {
	if err != nil {
		return statusError
	}
	return statusOK
}
