package db

import (
	"github.com/brunovieira/advocase/internal/models"
	"gorm.io/gorm"
)

type DocumentRepository struct {
	*OwnedRepository[models.Document, *models.Document]
	database *gorm.DB
}

func NewDocumentRepository(database *gorm.DB) *DocumentRepository {
	return &DocumentRepository{
		OwnedRepository: NewOwnedRepository[models.Document, *models.Document](database),
		database:        database,
	}
}

// ListFiltered narrows the account's documents by case and/or client
// reference. Empty filter values are ignored.
func (repo *DocumentRepository) ListFiltered(accountID string, caseID string, clientID string) ([]models.Document, error) {
	query := repo.database.Where("account_id = ?", accountID)
	if caseID != "" {
		query = query.Where("case_id = ?", caseID)
	}
	if clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}

	documents := make([]models.Document, 0)
	if err := query.Limit(MaxListResults).Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}
