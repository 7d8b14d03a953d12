package constants

const (
	QueryHarambeeContributionSummary = `
	SELECT COUNT(*)               AS contribution_count,
	       COALESCE(SUM(amount), 0) AS total_amount
	FROM contributions
	WHERE harambee_id = $1
	`
)
