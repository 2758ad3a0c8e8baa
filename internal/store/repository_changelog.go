package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/models"
)

type changelogRepository struct {
	*DB
	logger *logger.Logger
}

// NewChangelogRepository constructs a [ChangelogRepository].
func NewChangelogRepository(db *DB, logger *logger.Logger) ChangelogRepository {
	return &changelogRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *changelogRepository) Record(ctx context.Context, entry models.ChangelogEntry) error {
	query, args, err := buildRecordChangelogQuery(entry)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.execStatement(ctx, "*changelogRepository.Record", query, args)
	return err
}
