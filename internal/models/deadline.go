package models

const (
	DeadlineKindDeadline = "deadline"
	DeadlineKindHearing  = "hearing"
	DeadlineKindMeeting  = "meeting"
)

// DefaultReminderOffsets are the days-before marks applied when a deadline
// is created without explicit offsets. They are stored as data only; no
// reminder is ever dispatched by this service.
func DefaultReminderOffsets() []int {
	return []int{7, 3, 1}
}

// Deadline keeps its date as an ISO "YYYY-MM-DD" string, matching what the
// API accepts. Consumers that need calendar arithmetic parse it themselves
// and must tolerate unparsable values.
type Deadline struct {
	Owned
	Kind            string `gorm:"not null" json:"kind"`
	Title           string `gorm:"not null" json:"title"`
	Date            string `gorm:"not null" json:"date"`
	Time            string `json:"time"`
	Description     string `json:"description"`
	CaseID          string `gorm:"index" json:"case_id"`
	ClientID        string `gorm:"index" json:"client_id"`
	ReminderOffsets []int  `gorm:"serializer:json" json:"reminder_offsets"`
}
