// Package metrics exposes Prometheus counters for the calculator tools.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/calclab/calc-mcp/pkg/logger"
)

var (
	// OperationsTotal counts tool invocations per operation name.
	OperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calc_operations_total",
		Help: "Number of arithmetic operations performed, by operation.",
	}, []string{"op"})

	// ErrorsTotal counts failed tool invocations per error kind.
	ErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calc_errors_total",
		Help: "Number of failed arithmetic operations, by error kind.",
	}, []string{"kind"})
)

// Serve starts an HTTP listener exposing /metrics on addr. It blocks,
// so callers run it on its own goroutine. An empty addr disables it.
func Serve(addr string) {
	if addr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	logger.Info("Serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("Metrics listener failed", "error", err)
	}
}
