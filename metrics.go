package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	createCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quotes_created",
		Help: "The total number of quotes created",
	})
	updateCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quotes_updated",
		Help: "The total number of quotes updated",
	})
	deleteCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quotes_deleted",
		Help: "The total number of quotes deleted",
	})
	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "http_response_duration_seconds",
		Help: "Latency of requests in second.",
	}, []string{"method", "route", "status"})
)

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
			// The route pattern is only known once chi has matched the request.
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			httpDuration.WithLabelValues(r.Method, routePattern(r), strconv.Itoa(status)).Observe(v)
		}))

		next.ServeHTTP(ww, r)

		timer.ObserveDuration()
	})
}
