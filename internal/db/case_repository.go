package db

import (
	"github.com/brunovieira/advocase/internal/models"
	"gorm.io/gorm"
)

type CaseRepository struct {
	*OwnedRepository[models.Case, *models.Case]
	database *gorm.DB
}

func NewCaseRepository(database *gorm.DB) *CaseRepository {
	return &CaseRepository{
		OwnedRepository: NewOwnedRepository[models.Case, *models.Case](database, "timeline", "attachments"),
		database:        database,
	}
}

func (repo *CaseRepository) AppendTimeline(accountID string, caseID string, entry models.HistoryEntry) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var legalCase models.Case
		if err := tx.
			Where("id = ? AND account_id = ?", caseID, accountID).
			First(&legalCase).Error; err != nil {
			return err
		}

		timeline := append(legalCase.Timeline, entry)
		return tx.Model(&legalCase).Update("timeline", timeline).Error
	})
}
