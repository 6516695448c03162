package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ProposalDocumentsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "proposal_documents_generated_total",
			Help: "Total number of proposal PDFs generated",
		},
	)

	ProposalEmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "proposal_emails_sent_total",
			Help: "Total number of proposal emails by dispatch status",
		},
		[]string{"status"},
	)
)
