package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"goldkarat/internal/interaction/exchangerate"
	"goldkarat/internal/model"
)

const namespace = "goldkarat"

// Metrics exports the spot price engine state to Prometheus.
type Metrics struct {
	registry *prometheus.Registry

	refreshTotal    *prometheus.CounterVec
	refreshDuration prometheus.Histogram
	pricePerGram    *prometheus.GaugeVec
	pricePerOunce   prometheus.Gauge
	lastSuccess     prometheus.Gauge
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		refreshTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "refresh",
			Name:      "total",
			Help:      "Settled price refreshes by outcome.",
		}, []string{"outcome"}),
		refreshDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "refresh",
			Name:      "duration_seconds",
			Help:      "Duration of price refreshes.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
		}),
		pricePerGram: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "price_per_gram",
			Help:      "Last known gold price per gram by karat, in the quote currency.",
		}, []string{"karat", "currency"}),
		pricePerOunce: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "price_per_troy_ounce",
			Help:      "Last known price of one troy ounce of pure gold, in the quote currency.",
		}),
		lastSuccess: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "refresh",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful refresh.",
		}),
	}
}

// ObserveRefresh records the outcome of a settled refresh.
func (m *Metrics) ObserveRefresh(snapshot model.Snapshot, err error, elapsed time.Duration) {
	m.refreshTotal.WithLabelValues(exchangerate.Kind(err)).Inc()
	m.refreshDuration.Observe(elapsed.Seconds())

	if !snapshot.HasPrices() {
		return
	}

	for _, k := range model.Karats {
		m.pricePerGram.WithLabelValues(k.String(), snapshot.Prices.Currency).Set(snapshot.Prices.At(k))
	}
	m.pricePerOunce.Set(snapshot.Prices.PerTroyOunce)
	m.lastSuccess.Set(float64(snapshot.LastUpdated.Unix()))
}

// TrackLoading exports loading as the in-flight gauge, read on every scrape. Call it once.
func (m *Metrics) TrackLoading(loading func() bool) {
	promauto.With(m.registry).NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "refresh",
		Name:      "loading",
		Help:      "1 while a refresh is in flight.",
	}, func() float64 {
		if loading() {
			return 1
		}
		return 0
	})
}

// Handler returns an HTTP handler exposing the registered metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
