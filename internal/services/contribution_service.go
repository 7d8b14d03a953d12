package services

import (
	"context"
	"fmt"

	"jamii-hub/mtaani/internal/common"
	"jamii-hub/mtaani/internal/db/repositories"
	"jamii-hub/mtaani/internal/metrics"
	"jamii-hub/mtaani/internal/models/dtos/requests"
	"jamii-hub/mtaani/internal/models/dtos/responses"
	"jamii-hub/mtaani/internal/models/entities"
)

// ContributionService owns the one piece of cross-entity consistency
// logic: accepting a contribution must increment the parent harambee's
// raised amount as a single observable operation. The store guarantees
// the atomicity; this service orchestrates, invalidates the cached
// harambee, and records metrics.
type ContributionService struct {
	store      repositories.Store
	stats      *repositories.StatsRepository
	cache      common.CacheInterface
	metricsReg *metrics.MetricsRegistry
}

func NewContributionService(store repositories.Store, stats *repositories.StatsRepository, cache common.CacheInterface, metricsReg *metrics.MetricsRegistry) *ContributionService {
	return &ContributionService{
		store:      store,
		stats:      stats,
		cache:      cache,
		metricsReg: metricsReg,
	}
}

// Contribute persists the contribution and returns it together with
// the updated harambee. A missing harambee surfaces as
// repositories.ErrNotFound with no record written.
func (s *ContributionService) Contribute(ctx context.Context, req *requests.CreateContribution) (*responses.ContributionCreated, error) {
	contribution, harambee, err := s.store.CreateContribution(ctx, &entities.Contribution{
		HarambeeID: req.HarambeeID,
		UserID:     req.UserID,
		Amount:     req.Amount,
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Delete(harambeeCacheKey(harambee.ID))
	}
	if s.metricsReg != nil {
		s.metricsReg.ContributionsTotal.Inc()
		s.metricsReg.ContributionAmountTotal.Add(float64(contribution.Amount))
	}

	return &responses.ContributionCreated{
		Contribution: contribution,
		Harambee:     harambee,
	}, nil
}

// ListByHarambee returns a harambee's contributions with an aggregate
// summary. The summary comes from a SQL aggregate when the sqlx stats
// repository is wired, and is derived from the listed rows otherwise.
func (s *ContributionService) ListByHarambee(ctx context.Context, harambeeID int) (*responses.HarambeeContributions, error) {
	if _, err := s.store.GetHarambee(ctx, harambeeID); err != nil {
		return nil, err
	}

	contributions, err := s.store.ListContributionsByHarambee(ctx, harambeeID)
	if err != nil {
		return nil, err
	}

	var summary responses.ContributionSummary
	if s.stats != nil {
		computed, err := s.stats.HarambeeContributionSummary(ctx, harambeeID)
		if err != nil {
			return nil, fmt.Errorf("contribution summary: %w", err)
		}
		summary = *computed
	} else {
		summary.ContributionCount = len(contributions)
		for _, contribution := range contributions {
			summary.TotalAmount += contribution.Amount
		}
	}

	return &responses.HarambeeContributions{
		Contributions: contributions,
		Summary:       summary,
	}, nil
}

func (s *ContributionService) ListByUser(ctx context.Context, userID int) ([]entities.Contribution, error) {
	return s.store.ListContributionsByUser(ctx, userID)
}

func harambeeCacheKey(id int) string {
	return fmt.Sprintf("harambee:%d", id)
}
