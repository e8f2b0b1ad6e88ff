package models

// Document stores its content inline as base64. No size limit is enforced.
type Document struct {
	Owned
	Name          string `gorm:"not null" json:"name"`
	Type          string `gorm:"not null" json:"type"`
	ContentBase64 string `gorm:"not null" json:"content_base64"`
	CaseID        string `gorm:"index" json:"case_id"`
	ClientID      string `gorm:"index" json:"client_id"`
}
