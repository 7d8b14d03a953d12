package requests

// CreateTicket is the payload for POST /api/tickets. The qr code is
// never client supplied; the ticket service generates it.
type CreateTicket struct {
	EventID int `json:"eventId" validate:"required,gt=0"`
	UserID  int `json:"userId" validate:"required,gt=0"`
}
