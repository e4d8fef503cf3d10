package diag

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Diagnostics metrics
var (
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tweenlog_messages_total",
			Help: "Total number of diagnostics messages written to the sink",
		},
		[]string{"severity"},
	)

	MessagesSuppressedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tweenlog_messages_suppressed_total",
			Help: "Total number of diagnostics messages dropped by the interception hook",
		},
		[]string{"severity"},
	)

	SafeModeSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tweenlog_safe_mode_skipped_total",
			Help: "Total number of safe mode captured errors skipped because the policy is none",
		},
	)
)
