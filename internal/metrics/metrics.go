package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests"},
		[]string{"route", "method", "status"},
	)
	ReqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Request duration seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	InFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "http_in_flight_requests", Help: "In-flight HTTP requests"},
	)
	PaymentsRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "payments_recorded_total", Help: "Confirmed payments written to the ledger"},
	)
	PaymentDuplicates = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "payment_duplicates_total", Help: "Payment recordings rejected as duplicates"},
	)
)

func MustRegister() {
	prometheus.MustRegister(RequestsTotal, ReqDuration, InFlight, PaymentsRecorded, PaymentDuplicates)
}
