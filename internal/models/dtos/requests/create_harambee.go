package requests

// CreateHarambee is the payload for POST /api/harambees. Any client
// supplied raisedAmount is ignored; new campaigns always start at 0.
type CreateHarambee struct {
	Title       string  `json:"title" validate:"required,min=5"`
	Description string  `json:"description" validate:"required,min=10"`
	GoalAmount  int     `json:"goalAmount" validate:"required,gte=1"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
	Verified    bool    `json:"verified"`
	CreatedBy   int     `json:"createdBy" validate:"required,gt=0"`
}

// CreateContribution is the payload for POST /api/contributions.
type CreateContribution struct {
	HarambeeID int `json:"harambeeId" validate:"required,gt=0"`
	UserID     int `json:"userId" validate:"required,gt=0"`
	Amount     int `json:"amount" validate:"required,gte=1"`
}
