package models

import "time"

// Owned carries the fields shared by every account-scoped entity. The
// identifier is assigned once at creation and never changes.
type Owned struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	AccountID string    `gorm:"index;not null" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (owned *Owned) Stamp(id string, accountID string, createdAt time.Time) {
	owned.ID = id
	owned.AccountID = accountID
	owned.CreatedAt = createdAt
}

// HistoryEntry is one element of an append-only list (client service
// history, case timeline). Entries are never removed or reordered.
type HistoryEntry struct {
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}
