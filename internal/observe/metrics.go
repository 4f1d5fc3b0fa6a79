// Package observe provides observability primitives for Ghost Note:
// OpenTelemetry metric instruments and SDK provider setup with a Prometheus
// exporter bridge.
//
// A package-level default [Metrics] instance ([DefaultMetrics]) is provided
// for convenience; tests should use [NewMetrics] with a custom
// [metric.MeterProvider] to avoid cross-test pollution.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all Ghost Note metrics.
const meterName = "github.com/MrWong99/ghostnote"

// Metrics holds all OpenTelemetry metric instruments for the application.
// All fields are safe for concurrent use — the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// Lookups counts dictionary lookups. Use with attribute:
	//   attribute.String("result", "hit"|"miss")
	Lookups metric.Int64Counter

	// Estimations counts stress-estimator invocations for out-of-vocabulary
	// words. Use with attribute:
	//   attribute.String("method", ...)
	Estimations metric.Int64Counter

	// DictLoadDuration tracks how long the pronunciation table load took.
	DictLoadDuration metric.Float64Histogram

	// DictWords records the size of the loaded pronunciation table.
	DictWords metric.Int64Counter

	// PoemAnalyses counts completed poem analyses.
	PoemAnalyses metric.Int64Counter
}

// loadBuckets defines histogram bucket boundaries (in seconds) for the
// dictionary load, which ranges from microseconds (resident map) to seconds
// (full CMUdict file).
var loadBuckets = []float64{
	0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Lookups, err = m.Int64Counter("ghostnote.dictionary.lookups",
		metric.WithDescription("Total dictionary lookups by result."),
	); err != nil {
		return nil, err
	}
	if met.Estimations, err = m.Int64Counter("ghostnote.estimator.estimations",
		metric.WithDescription("Total stress estimations for out-of-vocabulary words by method."),
	); err != nil {
		return nil, err
	}
	if met.DictLoadDuration, err = m.Float64Histogram("ghostnote.dictionary.load.duration",
		metric.WithDescription("Duration of the pronunciation table load."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(loadBuckets...),
	); err != nil {
		return nil, err
	}
	if met.DictWords, err = m.Int64Counter("ghostnote.dictionary.words",
		metric.WithDescription("Number of words in the loaded pronunciation table."),
	); err != nil {
		return nil, err
	}
	if met.PoemAnalyses, err = m.Int64Counter("ghostnote.analysis.poems",
		metric.WithDescription("Total completed poem analyses."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider]. Subsequent calls return the same
// pointer. Panics if instrument creation fails (should not happen with the
// global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// RecordLookup records a dictionary lookup with the standard result attribute.
func (m *Metrics) RecordLookup(ctx context.Context, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.Lookups.Add(ctx, 1,
		metric.WithAttributes(attribute.String("result", result)),
	)
}

// RecordEstimation records an estimator invocation with its method attribute.
func (m *Metrics) RecordEstimation(ctx context.Context, method string) {
	m.Estimations.Add(ctx, 1,
		metric.WithAttributes(attribute.String("method", method)),
	)
}

// RecordDictLoad records a completed dictionary load: its duration in seconds
// and the resulting table size.
func (m *Metrics) RecordDictLoad(ctx context.Context, seconds float64, words int) {
	m.DictLoadDuration.Record(ctx, seconds)
	m.DictWords.Add(ctx, int64(words))
}
