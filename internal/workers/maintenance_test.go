package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/mock"
	"github.com/MKhiriev/go-kita-inventory/internal/service"
	"go.uber.org/mock/gomock"
)

func newTestMaintenance(t *testing.T, interval time.Duration) (*Maintenance, *mock.MockBruteForceGuard, *mock.MockTokenIssuer, *mock.MockSessionStore) {
	ctrl := gomock.NewController(t)
	bans := mock.NewMockBruteForceGuard(ctrl)
	tokens := mock.NewMockTokenIssuer(ctrl)
	sessions := mock.NewMockSessionStore(ctrl)

	m := NewMaintenance(&service.Services{BruteForce: bans, Tokens: tokens}, sessions, interval, 2*time.Hour, logger.Nop())
	return m, bans, tokens, sessions
}

func TestMaintenance_RunOnce(t *testing.T) {
	m, bans, tokens, sessions := newTestMaintenance(t, time.Minute)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	bans.EXPECT().PurgeExpired(gomock.Any()).Return(int64(2), nil)
	tokens.EXPECT().PurgeExpired(gomock.Any()).Return(int64(0), nil)
	sessions.EXPECT().DeleteIdle(gomock.Any(), now.Add(-2*time.Hour)).Return(5, nil)

	m.RunOnce(context.Background())
}

func TestMaintenance_RunOnce_ContinuesAfterErrors(t *testing.T) {
	m, bans, tokens, sessions := newTestMaintenance(t, time.Minute)

	bans.EXPECT().PurgeExpired(gomock.Any()).Return(int64(0), errors.New("db down"))
	tokens.EXPECT().PurgeExpired(gomock.Any()).Return(int64(0), errors.New("db down"))
	sessions.EXPECT().DeleteIdle(gomock.Any(), gomock.Any()).Return(0, errors.New("badger closed"))

	m.RunOnce(context.Background())
}

func TestMaintenance_Run_Disabled(t *testing.T) {
	m, _, _, _ := newTestMaintenance(t, 0)

	done := make(chan struct{})
	go func() {
		m.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled worker should return immediately")
	}
}

func TestMaintenance_Run_TicksUntilCancelled(t *testing.T) {
	m, bans, tokens, sessions := newTestMaintenance(t, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticked := make(chan struct{}, 1)
	bans.EXPECT().PurgeExpired(gomock.Any()).Return(int64(0), nil).MinTimes(1)
	tokens.EXPECT().PurgeExpired(gomock.Any()).Return(int64(0), nil).MinTimes(1)
	sessions.EXPECT().DeleteIdle(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, time.Time) (int, error) {
		select {
		case ticked <- struct{}{}:
		default:
		}
		return 0, nil
	}).MinTimes(1)

	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("maintenance pass did not run")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
