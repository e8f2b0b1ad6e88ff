package models

const (
	ClientKindIndividual   = "individual"
	ClientKindOrganization = "organization"
)

type Client struct {
	Owned
	Kind           string         `gorm:"not null" json:"kind"`
	Name           string         `gorm:"not null" json:"name"`
	TaxID          string         `json:"tax_id"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email"`
	Address        string         `json:"address"`
	Notes          string         `json:"notes"`
	Tags           []string       `gorm:"serializer:json" json:"tags"`
	ServiceHistory []HistoryEntry `gorm:"serializer:json" json:"service_history"`
}
