// Package metrics exposes process-wide prometheus counters and an optional
// scrape endpoint.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RoundsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "game_rounds_total", Help: "Guessing rounds completed"},
	)
	GuessesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "game_guesses_total", Help: "Guesses read, by outcome"},
		[]string{"outcome"},
	)
	DecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "advisor_decisions_total", Help: "Comparator decisions emitted"},
		[]string{"action"},
	)
)

func init() {
	prometheus.MustRegister(RoundsTotal, GuessesTotal, DecisionsTotal)
}

func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
