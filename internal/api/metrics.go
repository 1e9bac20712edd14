package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

func (a *Api) setupMetrics() {
	a.registry = prometheus.NewRegistry()

	a.requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barnameh_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	a.eventMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barnameh_event_mutations_total",
			Help: "Planner event mutations by action.",
		},
		[]string{"action"},
	)

	a.registry.MustRegister(a.requestsTotal, a.eventMutations)
}

func (a *Api) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		a.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
	})
}
