// Package metrics defines the custom Prometheus metrics of the hotel console
// and catalog API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Collectors are registered with the default Prometheus registry on package
// initialisation through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hotel"

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionOperationsTotal counts session manager operations.
// Labels:
//   - operation: "login", "logout", or "update"
//   - result: "ok", "invalid", or "error"
var SessionOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_operations_total",
		Help:      "Total number of session operations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// GuardDecisionsTotal counts role-gated navigation decisions.
// Label:
//   - outcome: "loading", "redirect_login", "allow", or "redirect_landing"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of navigation decisions made by the role guard.",
	},
	[]string{"outcome"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogFetchFailuresTotal counts failed calls from the console to the catalog.
// Label:
//   - resource: "rooms", "reservations", "employees", or "booking"
var CatalogFetchFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_fetch_failures_total",
		Help:      "Total number of failed catalog calls made by the console.",
	},
	[]string{"resource"},
)

// CatalogFetchDuration measures catalog call latency as seen by the console.
var CatalogFetchDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "catalog_fetch_duration_seconds",
		Help:      "Duration of catalog calls made by the console.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"resource"},
)

// ReservationsCreatedTotal counts reservations persisted by the catalog.
// Label:
//   - status: initial reservation status (e.g. "pending")
var ReservationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_created_total",
		Help:      "Total number of reservations created, by initial status.",
	},
	[]string{"status"},
)

// RoomsCreatedTotal counts rooms added to the catalog, by room type.
var RoomsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rooms_created_total",
		Help:      "Total number of rooms created, by room type.",
	},
	[]string{"type"},
)
