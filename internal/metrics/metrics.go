// Package metrics holds the Prometheus collectors of the access-control
// layer. Collectors register with the default registry and are served on
// /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeBanned  = "banned"
	OutcomeError   = "error"
)

var (
	// LoginAttempts counts password and remember-token logins.
	// Labels:
	//   - method: "password" or "remember_token"
	//   - outcome: "success", "failure", "banned", "error"
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kita_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"method", "outcome"},
	)

	// BansIssued counts bans by kind ("temporary" or "permanent").
	BansIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kita_ip_bans_issued_total",
			Help: "Total number of IP bans issued",
		},
		[]string{"kind"},
	)

	// BannedRequests counts login attempts rejected because the client IP
	// is banned.
	BannedRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kita_banned_requests_total",
			Help: "Total number of requests rejected from banned IPs",
		},
	)

	// CSRFFailures counts state-changing requests with a bad CSRF token.
	CSRFFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kita_csrf_failures_total",
			Help: "Total number of requests rejected for a CSRF token mismatch",
		},
	)

	// RouteNotFound counts requests that matched no route. Misconfigured
	// routes are labelled "unbound".
	RouteNotFound = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kita_route_not_found_total",
			Help: "Total number of requests without a matching or bound route",
		},
		[]string{"reason"},
	)

	// SessionRotations counts session identifier rotations.
	SessionRotations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kita_session_rotations_total",
			Help: "Total number of session identifier rotations",
		},
	)

	// MaintenancePurged counts records removed by the maintenance worker.
	MaintenancePurged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kita_maintenance_purged_total",
			Help: "Total number of records purged by maintenance",
		},
		[]string{"kind"},
	)
)
