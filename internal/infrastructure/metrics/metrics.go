// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── HTTP ───────────────────────────────────────────────────────────────────

var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "startlabx",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "HTTP requests by method, route and status code.",
}, []string{"method", "route", "status"})

var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "startlabx",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route"})

// ─── Equity ─────────────────────────────────────────────────────────────────

var OfferTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "startlabx",
	Subsystem: "equity",
	Name:      "offer_transitions_total",
	Help:      "Equity offers moved into a status (PENDING counts creations).",
}, []string{"status"})

var AllocationRejections = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "startlabx",
	Subsystem: "equity",
	Name:      "allocation_rejections_total",
	Help:      "Cap table writes refused because the startup would exceed 100%.",
})

// ─── Notifications ──────────────────────────────────────────────────────────

var NotificationsDelivered = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "startlabx",
	Subsystem: "notifications",
	Name:      "delivered_total",
	Help:      "Notifications persisted by the dispatcher.",
})

var NotificationsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "startlabx",
	Subsystem: "notifications",
	Name:      "dropped_total",
	Help:      "Notifications discarded, by reason.",
}, []string{"reason"})

var NotificationQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "startlabx",
	Subsystem: "notifications",
	Name:      "queue_depth",
	Help:      "Notifications waiting for the dispatcher worker.",
})
