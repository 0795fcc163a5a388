package web

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CyclesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cycles_total", Help: "Evaluation cycles by result"},
		[]string{"result"},
	)
	TradesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "trades_total", Help: "Position transitions by action"},
		[]string{"action"},
	)
	NotifyFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "notify_failures_total", Help: "Telegram delivery failures"},
	)
)

func init() {
	prometheus.MustRegister(CyclesTotal, TradesTotal, NotifyFailures)
}

// Serve starts the keep-alive and metrics HTTP server on its own goroutine.
func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("TrendSentry is alive!"))
	})
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
