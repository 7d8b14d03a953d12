package requests

// CreateAlert is the payload for POST /api/alerts. Type is an open
// string (Lost & Found, Emergency, Community Safety, Service
// Interruption, Weather, ...).
type CreateAlert struct {
	Title       string  `json:"title" validate:"required,min=5"`
	Description string  `json:"description" validate:"required,min=10"`
	Type        string  `json:"type" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
	CreatedBy   int     `json:"createdBy" validate:"required,gt=0"`
}

// CreateComment is the payload for POST /api/comments.
type CreateComment struct {
	Text    string `json:"text" validate:"required"`
	AlertID int    `json:"alertId" validate:"required,gt=0"`
	UserID  int    `json:"userId" validate:"required,gt=0"`
}
