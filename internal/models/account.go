package models

import "time"

// Account is the authenticated tenant. Every other entity belongs to
// exactly one account.
type Account struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `gorm:"not null" json:"name"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}
