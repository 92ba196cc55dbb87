package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Admission outcomes are business results, not errors, so they get their own
// counters instead of riding on HTTP status codes.
var (
	BookingsAdmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookings_admitted_total",
		Help: "Number of booking requests admitted.",
	})

	BookingsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookings_rejected_total",
		Help: "Number of booking requests rejected, by reason.",
	}, []string{"reason"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Number of HTTP requests processed, by method, path and status.",
	}, []string{"method", "path", "status"})
)
