package entities

import "time"

// Rental is a classified listing: an item for rent (price per day)
// or for sale (flat price) depending on IsRental.
type Rental struct {
	ID          int       `json:"id" gorm:"column:id;primaryKey"`
	Title       string    `json:"title" gorm:"column:title;not null"`
	Description string    `json:"description" gorm:"column:description;not null"`
	Category    string    `json:"category" gorm:"column:category;not null"`
	Price       int       `json:"price" gorm:"column:price;not null"`
	IsRental    bool      `json:"isRental" gorm:"column:is_rental;default:true"`
	Location    string    `json:"location" gorm:"column:location;not null"`
	ImageURL    *string   `json:"imageUrl" gorm:"column:image_url"`
	ContactInfo string    `json:"contactInfo" gorm:"column:contact_info;not null"`
	CreatedBy   int       `json:"createdBy" gorm:"column:created_by;not null"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
}

func (Rental) TableName() string {
	return "rentals"
}
