package responses

import "jamii-hub/mtaani/internal/models/entities"

// ContributionCreated is returned by POST /api/contributions: the new
// contribution together with the harambee carrying the updated
// raised amount.
type ContributionCreated struct {
	Contribution *entities.Contribution `json:"contribution"`
	Harambee     *entities.Harambee     `json:"harambee"`
}

// ContributionSummary aggregates the contributions of one harambee.
type ContributionSummary struct {
	ContributionCount int `json:"contributionCount" db:"contribution_count"`
	TotalAmount       int `json:"totalAmount" db:"total_amount"`
}

// HarambeeContributions is returned by
// GET /api/harambees/{id}/contributions.
type HarambeeContributions struct {
	Contributions []entities.Contribution `json:"contributions"`
	Summary       ContributionSummary     `json:"summary"`
}
