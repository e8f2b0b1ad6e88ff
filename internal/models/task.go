package models

const (
	TaskStatusTodo  = "todo"
	TaskStatusDoing = "doing"
	TaskStatusDone  = "done"
)

type Task struct {
	Owned
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Priority    string `gorm:"not null;default:medium" json:"priority"`
	Status      string `gorm:"not null;default:todo" json:"status"`
	CaseID      string `gorm:"index" json:"case_id"`
	ClientID    string `gorm:"index" json:"client_id"`
}
