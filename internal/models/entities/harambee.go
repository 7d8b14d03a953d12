package entities

import "time"

// Harambee is a community fundraising campaign. RaisedAmount is a
// derived aggregate: it always equals the sum of the amounts of the
// contributions referencing this harambee, and is only ever mutated
// through contribution creation.
type Harambee struct {
	ID           int       `json:"id" gorm:"column:id;primaryKey"`
	Title        string    `json:"title" gorm:"column:title;not null"`
	Description  string    `json:"description" gorm:"column:description;not null"`
	GoalAmount   int       `json:"goalAmount" gorm:"column:goal_amount;not null"`
	RaisedAmount int       `json:"raisedAmount" gorm:"column:raised_amount;default:0"`
	ImageURL     *string   `json:"imageUrl" gorm:"column:image_url"`
	Verified     bool      `json:"verified" gorm:"column:verified;default:false"`
	CreatedBy    int       `json:"createdBy" gorm:"column:created_by;not null"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
}

func (Harambee) TableName() string {
	return "harambees"
}
