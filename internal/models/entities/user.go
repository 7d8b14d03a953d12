package entities

import "time"

// User is a platform account. Accounts are created either through
// explicit registration or on first sight of an externally
// authenticated identity (empty password, verified=true).
type User struct {
	ID          int       `json:"id" gorm:"column:id;primaryKey"`
	Username    string    `json:"username" gorm:"column:username;uniqueIndex;not null"`
	Password    string    `json:"-" gorm:"column:password;not null"`
	Email       string    `json:"email" gorm:"column:email;uniqueIndex;not null"`
	DisplayName *string   `json:"displayName" gorm:"column:display_name"`
	PhotoURL    *string   `json:"photoURL" gorm:"column:photo_url"`
	PhoneNumber *string   `json:"phoneNumber" gorm:"column:phone_number"`
	Verified    bool      `json:"verified" gorm:"column:verified;default:false"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
