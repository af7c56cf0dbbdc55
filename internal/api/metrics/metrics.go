// Package metrics defines and registers all custom Prometheus metrics for
// the screening API. It is the single source of truth for metric names,
// labels, and help strings. Metrics self-register with the default registry
// via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "screening"

// SubmissionsProcessedTotal counts submissions that reached the ledger.
// Label:
//   - outcome: "scored" (live JSON response), "degraded" (live response,
//     parse fallback), or "failed" (model could not be invoked)
var SubmissionsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_processed_total",
		Help:      "Total number of submissions appended to the ledger, by scoring outcome.",
	},
	[]string{"outcome"},
)

// UploadsRejectedTotal counts uploads rejected before any durable write.
// Label:
//   - reason: "unsupported_type" or "storage_exhausted"
var UploadsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_rejected_total",
		Help:      "Total number of uploads rejected during intake.",
	},
	[]string{"reason"},
)

// ScoringFallbacksTotal counts degraded scoring results.
// Label:
//   - kind: "parse" (live response, not a JSON object) or "invocation"
//     (model call failed outright)
var ScoringFallbacksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scoring_fallbacks_total",
		Help:      "Total number of scoring results produced by a fallback path.",
	},
	[]string{"kind"},
)

// ExtractionFailuresTotal counts best-effort text extractions that failed.
var ExtractionFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extraction_failures_total",
		Help:      "Total number of resume text extractions that failed.",
	},
)

// ScoringDuration measures the external model round trip per submission.
// Label:
//   - outcome: same values as SubmissionsProcessedTotal
var ScoringDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "scoring_duration_seconds",
		Help:      "Duration of the external scoring call, from prompt to parsed result.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)
