package entities

import "time"

// Contribution records a single payment towards a harambee.
type Contribution struct {
	ID            int       `json:"id" gorm:"column:id;primaryKey"`
	HarambeeID    int       `json:"harambeeId" gorm:"column:harambee_id;not null"`
	UserID        int       `json:"userId" gorm:"column:user_id;not null"`
	Amount        int       `json:"amount" gorm:"column:amount;not null"`
	ContributedAt time.Time `json:"contributedAt" gorm:"column:contributed_at;autoCreateTime"`
}

func (Contribution) TableName() string {
	return "contributions"
}
