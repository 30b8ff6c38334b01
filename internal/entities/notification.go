package entities

import "time"

// Notification is the durable record of a delivery attempt. It is never
// deleted; only the Read flag may change, and only from false to true.
type Notification struct {
	ID        int       `json:"id"`
	UserID    string    `json:"userId" gorm:"index"`
	JobID     int       `json:"jobId"`
	Message   string    `json:"message"`
	Read      bool      `json:"read" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`
}
