package requests

// CreateRental is the payload for POST /api/rentals. IsRental
// defaults to true when the client omits it (listing for rent,
// price per day); false means a flat-price sale.
type CreateRental struct {
	Title       string  `json:"title" validate:"required,min=5"`
	Description string  `json:"description" validate:"required,min=10"`
	Category    string  `json:"category" validate:"required"`
	Price       int     `json:"price" validate:"gte=0"`
	IsRental    *bool   `json:"isRental"`
	Location    string  `json:"location" validate:"required"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
	ContactInfo string  `json:"contactInfo" validate:"required"`
	CreatedBy   int     `json:"createdBy" validate:"required,gt=0"`
}
