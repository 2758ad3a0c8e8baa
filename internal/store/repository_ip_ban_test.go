package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var banRowColumns = []string{
	"ip", "failed_attempts", "offense_count", "last_attempt_at", "banned_until", "is_permanent", "reason",
}

func newTestIPBanRepo(t *testing.T) (*ipBanRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &ipBanRepository{DB: db, logger: logger.Nop()}, mock
}

func TestUpsertBanOnFailure(t *testing.T) {
	repo, mock := newTestIPBanRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ip_bans")).
		WithArgs("192.0.2.1", 1, now, "invalid credentials").
		WillReturnRows(sqlmock.NewRows(banRowColumns).
			AddRow("192.0.2.1", 3, 0, now, nil, false, "invalid credentials"))

	ban, err := repo.UpsertBanOnFailure(context.Background(), "192.0.2.1", "invalid credentials", now)
	require.NoError(t, err)
	assert.Equal(t, 3, ban.FailedAttempts)
	assert.Nil(t, ban.BannedUntil)
	assert.Equal(t, models.BanNone, ban.Status(now))
}

func TestEscalateBan(t *testing.T) {
	now := time.Now()
	policy := models.BanPolicy{Threshold: 5, BaseDuration: time.Minute, MaxDuration: time.Hour}

	t.Run("threshold reached", func(t *testing.T) {
		repo, mock := newTestIPBanRepo(t)
		until := now.Add(time.Minute)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE ip_bans SET banned_until")).
			WillReturnRows(sqlmock.NewRows(banRowColumns).
				AddRow("192.0.2.1", 0, 1, now, until, false, "invalid credentials"))

		ban, err := repo.EscalateBan(context.Background(), "192.0.2.1", policy, now)
		require.NoError(t, err)
		assert.Equal(t, 1, ban.OffenseCount)
		assert.Equal(t, models.BanTemporary, ban.Status(now))
	})

	t.Run("below threshold", func(t *testing.T) {
		repo, mock := newTestIPBanRepo(t)
		mock.ExpectQuery("UPDATE ip_bans").WillReturnRows(sqlmock.NewRows(banRowColumns))

		_, err := repo.EscalateBan(context.Background(), "192.0.2.1", policy, now)
		assert.ErrorIs(t, err, ErrNoEscalation)
	})
}

func TestGetBan_NotFound(t *testing.T) {
	repo, mock := newTestIPBanRepo(t)
	mock.ExpectQuery("FROM ip_bans").WithArgs("192.0.2.9").WillReturnRows(sqlmock.NewRows(banRowColumns))

	_, err := repo.GetBan(context.Background(), "192.0.2.9")
	assert.ErrorIs(t, err, ErrBanNotFound)
}

func TestListBans(t *testing.T) {
	repo, mock := newTestIPBanRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM ip_bans ORDER BY last_attempt_at DESC")).
		WillReturnRows(sqlmock.NewRows(banRowColumns).
			AddRow("192.0.2.1", 0, 0, now, nil, true, "manual").
			AddRow("192.0.2.2", 2, 0, now.Add(-time.Minute), nil, false, "invalid credentials"))

	bans, err := repo.ListBans(context.Background())
	require.NoError(t, err)
	require.Len(t, bans, 2)
	assert.Equal(t, models.BanPermanent, bans[0].Status(now))
	assert.Equal(t, 2, bans[1].FailedAttempts)
}

func TestDeleteBan(t *testing.T) {
	repo, mock := newTestIPBanRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ip_bans WHERE ip = $1")).
		WithArgs("192.0.2.1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM ip_bans").
		WithArgs("192.0.2.1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteBan(context.Background(), "192.0.2.1"))
	assert.ErrorIs(t, repo.DeleteBan(context.Background(), "192.0.2.1"), ErrBanNotFound)
}

func TestResetBanCounter_UnknownIPIsFine(t *testing.T) {
	repo, mock := newTestIPBanRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE ip_bans SET failed_attempts = $1 WHERE ip = $2")).
		WithArgs(0, "192.0.2.1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.ResetBanCounter(context.Background(), "192.0.2.1"))
}

func TestDeleteExpiredBans(t *testing.T) {
	repo, mock := newTestIPBanRepo(t)
	mock.ExpectExec("DELETE FROM ip_bans").WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.DeleteExpiredBans(context.Background(), time.Now(), time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
