package entities

import "time"

type User struct {
	ID             int
	ClerkID        string `gorm:"uniqueIndex"`
	Name           string
	Email          string
	Skills         string
	TelegramChatID int64
	CreatedAt      time.Time
}
