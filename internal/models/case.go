package models

const (
	CaseStatusNew        = "new"
	CaseStatusInProgress = "in_progress"
	CaseStatusAwaiting   = "awaiting"
	CaseStatusConcluded  = "concluded"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Case is a legal case. ClientID is a plain reference: it is not checked
// against the clients table, so dangling references are possible.
type Case struct {
	Owned
	Title         string         `gorm:"not null" json:"title"`
	PracticeArea  string         `gorm:"not null" json:"practice_area"`
	ProcessNumber string         `json:"process_number"`
	Court         string         `json:"court"`
	Division      string         `json:"division"`
	District      string         `json:"district"`
	Parties       string         `json:"parties"`
	Status        string         `gorm:"not null;default:new" json:"status"`
	Priority      string         `gorm:"not null;default:medium" json:"priority"`
	NextAction    string         `json:"next_action"`
	ClientID      string         `gorm:"index;not null" json:"client_id"`
	Timeline      []HistoryEntry `gorm:"serializer:json" json:"timeline"`
	Attachments   []string       `gorm:"serializer:json" json:"attachments"`
}
