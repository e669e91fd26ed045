// Package metrics holds the prometheus collectors exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	reservationAttempts *prometheus.CounterVec
	priceQuotes         *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
}

// New registers every collector on reg. Tests pass a fresh prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		reservationAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reservation_attempts_total",
			Help: "Reservation commits by outcome.",
		}, []string{"outcome"}),
		priceQuotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "price_quotes_total",
			Help: "Price quotes computed, by call site.",
		}, []string{"source"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(m.reservationAttempts, m.priceQuotes, m.httpDuration)
	return m
}

func (m *Metrics) ReservationAttempt(outcome string) {
	m.reservationAttempts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) PriceQuote(source string) {
	m.priceQuotes.WithLabelValues(source).Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
