package user

import "time"

// User is the account a flan is attributed to. Username carries the auth subject.
type User struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"size:150;not null;uniqueIndex"`
	Email     string    `gorm:"size:254;not null;default:''"`
	Name      string    `gorm:"size:150;not null;default:''"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
