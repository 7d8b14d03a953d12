package entities

import "time"

// Comment is a reply on an alert. Comments are listed oldest first.
type Comment struct {
	ID        int       `json:"id" gorm:"column:id;primaryKey"`
	Text      string    `json:"text" gorm:"column:text;not null"`
	AlertID   int       `json:"alertId" gorm:"column:alert_id;not null"`
	UserID    int       `json:"userId" gorm:"column:user_id;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
}

func (Comment) TableName() string {
	return "comments"
}
