package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "danubio",
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint.",
		},
		[]string{"endpoint"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "danubio",
			Name:      "bookings_created_total",
			Help:      "Bookings accepted by the store.",
		},
	)

	inquiriesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "danubio",
			Name:      "inquiries_created_total",
			Help:      "Inquiries accepted by the store.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, inquiriesCreated)
	})
}

// IncHTTP increments the counter for an endpoint label.
func IncHTTP(endpoint string) {
	httpRequests.WithLabelValues(endpoint).Inc()
}

// IncBookingCreated counts an accepted booking.
func IncBookingCreated() {
	bookingsCreated.Inc()
}

// IncInquiryCreated counts an accepted inquiry.
func IncInquiryCreated() {
	inquiriesCreated.Inc()
}
