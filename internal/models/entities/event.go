package entities

import (
	"encoding/json"
	"time"
)

// Event is a community event. Events are immutable once created.
type Event struct {
	ID          int             `json:"id" gorm:"column:id;primaryKey"`
	Title       string          `json:"title" gorm:"column:title;not null"`
	Description string          `json:"description" gorm:"column:description;not null"`
	Date        string          `json:"date" gorm:"column:date;not null"`
	Time        string          `json:"time" gorm:"column:time;not null"`
	Location    string          `json:"location" gorm:"column:location;not null"`
	Coordinates json.RawMessage `json:"coordinates,omitempty" gorm:"column:coordinates;type:json"`
	Price       int             `json:"price" gorm:"column:price;default:0"`
	ImageURL    *string         `json:"imageUrl" gorm:"column:image_url"`
	CreatedBy   int             `json:"createdBy" gorm:"column:created_by;not null"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
}

func (Event) TableName() string {
	return "events"
}
