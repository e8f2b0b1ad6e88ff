package db

import (
	"github.com/brunovieira/advocase/internal/models"
	"gorm.io/gorm"
)

type Repositories struct {
	Accounts         *AccountRepository
	Clients          *ClientRepository
	Cases            *CaseRepository
	Deadlines        *OwnedRepository[models.Deadline, *models.Deadline]
	Tasks            *OwnedRepository[models.Task, *models.Task]
	Documents        *DocumentRepository
	FinancialEntries *OwnedRepository[models.FinancialEntry, *models.FinancialEntry]
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Accounts:         NewAccountRepository(database),
		Clients:          NewClientRepository(database),
		Cases:            NewCaseRepository(database),
		Deadlines:        NewOwnedRepository[models.Deadline, *models.Deadline](database),
		Tasks:            NewOwnedRepository[models.Task, *models.Task](database),
		Documents:        NewDocumentRepository(database),
		FinancialEntries: NewOwnedRepository[models.FinancialEntry, *models.FinancialEntry](database),
	}
}
