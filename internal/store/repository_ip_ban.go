package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/models"
)

// ipBanRepository is the PostgreSQL-backed implementation of
// [IPBanRepository]. Counter increments and escalations are single
// statements, so concurrent failures from one IP never lose an update.
type ipBanRepository struct {
	*DB
	logger *logger.Logger
}

// NewIPBanRepository constructs an [IPBanRepository].
func NewIPBanRepository(db *DB, logger *logger.Logger) IPBanRepository {
	logger.Debug().Msg("creating ip ban repository")
	return &ipBanRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *ipBanRepository) GetBan(ctx context.Context, ip string) (models.IPBan, error) {
	query, args, err := buildGetBanQuery(ip)
	if err != nil {
		return models.IPBan{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryBan(ctx, "*ipBanRepository.GetBan", ErrBanNotFound, query, args)
}

func (r *ipBanRepository) ListBans(ctx context.Context) ([]models.IPBan, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBansQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*ipBanRepository.ListBans").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bans := make([]models.IPBan, 0, 16)
	for rows.Next() {
		ban, scanErr := scanBan(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*ipBanRepository.ListBans").Msg("failed to scan ban row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		bans = append(bans, ban)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*ipBanRepository.ListBans").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return bans, nil
}

func (r *ipBanRepository) UpsertBanOnFailure(ctx context.Context, ip, reason string, now time.Time) (models.IPBan, error) {
	query, args, err := buildUpsertBanOnFailureQuery(ip, reason, now)
	if err != nil {
		return models.IPBan{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryBan(ctx, "*ipBanRepository.UpsertBanOnFailure", ErrBanNotFound, query, args)
}

func (r *ipBanRepository) EscalateBan(ctx context.Context, ip string, policy models.BanPolicy, now time.Time) (models.IPBan, error) {
	query, args, err := buildEscalateBanQuery(ip, policy, now)
	if err != nil {
		return models.IPBan{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryBan(ctx, "*ipBanRepository.EscalateBan", ErrNoEscalation, query, args)
}

// ResetBanCounter zeroes the failure counter. An IP without a record is
// already at zero.
func (r *ipBanRepository) ResetBanCounter(ctx context.Context, ip string) error {
	query, args, err := buildResetBanCounterQuery(ip)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.execStatement(ctx, "*ipBanRepository.ResetBanCounter", query, args)
	return err
}

func (r *ipBanRepository) InsertManualBan(ctx context.Context, ip, reason string, now time.Time) (models.IPBan, error) {
	query, args, err := buildInsertManualBanQuery(ip, reason, now)
	if err != nil {
		return models.IPBan{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryBan(ctx, "*ipBanRepository.InsertManualBan", ErrBanNotFound, query, args)
}

func (r *ipBanRepository) DeleteBan(ctx context.Context, ip string) error {
	query, args, err := buildDeleteBanQuery(ip)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.execStatement(ctx, "*ipBanRepository.DeleteBan", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBanNotFound
	}

	return nil
}

func (r *ipBanRepository) DeleteExpiredBans(ctx context.Context, now, lastAttemptBefore time.Time) (int64, error) {
	query, args, err := buildDeleteExpiredBansQuery(now, lastAttemptBefore)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execStatement(ctx, "*ipBanRepository.DeleteExpiredBans", query, args)
}

func (r *ipBanRepository) queryBan(ctx context.Context, funcName string, notFound error, query string, args []any) (models.IPBan, error) {
	var ban models.IPBan
	err := r.withRetry(ctx, func() error {
		var scanErr error
		ban, scanErr = scanBan(r.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.IPBan{}, notFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error querying ip ban")
		return models.IPBan{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ban, nil
}

func scanBan(row rowScanner) (models.IPBan, error) {
	var (
		ban         models.IPBan
		bannedUntil sql.NullTime
	)

	err := row.Scan(
		&ban.IP,
		&ban.FailedAttempts,
		&ban.OffenseCount,
		&ban.LastAttemptAt,
		&bannedUntil,
		&ban.IsPermanent,
		&ban.Reason,
	)
	if err != nil {
		return models.IPBan{}, err
	}
	if bannedUntil.Valid {
		ban.BannedUntil = &bannedUntil.Time
	}

	return ban, nil
}
