package entities

import "time"

// Alert is a community notice (Lost & Found, Emergency, Community
// Safety, Service Interruption, Weather, ...). Type is an open string.
type Alert struct {
	ID          int       `json:"id" gorm:"column:id;primaryKey"`
	Title       string    `json:"title" gorm:"column:title;not null"`
	Description string    `json:"description" gorm:"column:description;not null"`
	Type        string    `json:"type" gorm:"column:type;not null"`
	Location    string    `json:"location" gorm:"column:location;not null"`
	ImageURL    *string   `json:"imageUrl" gorm:"column:image_url"`
	CreatedBy   int       `json:"createdBy" gorm:"column:created_by;not null"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
}

func (Alert) TableName() string {
	return "alerts"
}
