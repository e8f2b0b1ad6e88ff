package models

const (
	FinancialDirectionReceivable = "receivable"
	FinancialDirectionPayable    = "payable"
)

const (
	FinancialStatusPending = "pending"
	FinancialStatusPaid    = "paid"
	FinancialStatusOverdue = "overdue"
)

// FinancialEntry keeps due/payment dates as ISO "YYYY-MM-DD" strings. The
// status field is never auto-transitioned to overdue; the dashboard infers
// overdue entries from the due date at read time.
type FinancialEntry struct {
	Owned
	Direction   string  `gorm:"not null" json:"direction"`
	Description string  `gorm:"not null" json:"description"`
	Amount      float64 `gorm:"not null" json:"amount"`
	Category    string  `gorm:"not null" json:"category"`
	Status      string  `gorm:"not null;default:pending" json:"status"`
	DueDate     string  `gorm:"not null" json:"due_date"`
	PaymentDate string  `json:"payment_date"`
	CaseID      string  `gorm:"index" json:"case_id"`
	ClientID    string  `gorm:"index" json:"client_id"`
}
