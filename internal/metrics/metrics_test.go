package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLoginAttempts(t *testing.T) {
	before := testutil.ToFloat64(LoginAttempts.WithLabelValues("password", OutcomeFailure))
	LoginAttempts.WithLabelValues("password", OutcomeFailure).Inc()
	after := testutil.ToFloat64(LoginAttempts.WithLabelValues("password", OutcomeFailure))

	assert.Equal(t, before+1, after)
}

func TestCounters(t *testing.T) {
	tests := []struct {
		name string
		inc  func()
		read func() float64
	}{
		{
			name: "csrf failures",
			inc:  CSRFFailures.Inc,
			read: func() float64 { return testutil.ToFloat64(CSRFFailures) },
		},
		{
			name: "session rotations",
			inc:  SessionRotations.Inc,
			read: func() float64 { return testutil.ToFloat64(SessionRotations) },
		},
		{
			name: "temporary bans",
			inc:  func() { BansIssued.WithLabelValues("temporary").Inc() },
			read: func() float64 { return testutil.ToFloat64(BansIssued.WithLabelValues("temporary")) },
		},
		{
			name: "unbound routes",
			inc:  func() { RouteNotFound.WithLabelValues("unbound").Inc() },
			read: func() float64 { return testutil.ToFloat64(RouteNotFound.WithLabelValues("unbound")) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.read()
			tt.inc()
			assert.Equal(t, before+1, tt.read())
		})
	}
}
