package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"jamii-hub/mtaani/internal/constants"
	"jamii-hub/mtaani/internal/models/dtos/responses"
)

// StatsRepository runs read-only aggregate queries against the
// relational backend over sqlx. It is only wired when the server runs
// on postgres; callers fall back to computing aggregates in memory
// otherwise.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) HarambeeContributionSummary(ctx context.Context, harambeeID int) (*responses.ContributionSummary, error) {
	var summary responses.ContributionSummary
	err := r.db.QueryRowxContext(ctx, constants.QueryHarambeeContributionSummary, harambeeID).
		StructScan(&summary)
	if err != nil {
		return nil, fmt.Errorf("harambee contribution summary: %w", err)
	}
	return &summary, nil
}
