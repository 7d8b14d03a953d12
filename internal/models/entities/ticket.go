package entities

import "time"

// Ticket is issued per purchase call. The qr code is an opaque token
// generated server side; duplicates for the same (event, user) pair
// are allowed.
type Ticket struct {
	ID          int       `json:"id" gorm:"column:id;primaryKey"`
	EventID     int       `json:"eventId" gorm:"column:event_id;not null"`
	UserID      int       `json:"userId" gorm:"column:user_id;not null"`
	QRCode      string    `json:"qrCode" gorm:"column:qr_code;not null"`
	Used        bool      `json:"used" gorm:"column:used;default:false"`
	PurchasedAt time.Time `json:"purchasedAt" gorm:"column:purchased_at;autoCreateTime"`
}

func (Ticket) TableName() string {
	return "tickets"
}
