package requests

import "encoding/json"

// CreateEvent is the payload for POST /api/events. Price 0 means a
// free event. Coordinates is an opaque blob the client round-trips.
type CreateEvent struct {
	Title       string          `json:"title" validate:"required,min=5"`
	Description string          `json:"description" validate:"required,min=10"`
	Date        string          `json:"date" validate:"required"`
	Time        string          `json:"time" validate:"required"`
	Location    string          `json:"location" validate:"required"`
	Coordinates json.RawMessage `json:"coordinates"`
	Price       int             `json:"price" validate:"gte=0"`
	ImageURL    *string         `json:"imageUrl" validate:"omitempty,url"`
	CreatedBy   int             `json:"createdBy" validate:"required,gt=0"`
}
