package db

import (
	"github.com/brunovieira/advocase/internal/models"
	"gorm.io/gorm"
)

type ClientRepository struct {
	*OwnedRepository[models.Client, *models.Client]
	database *gorm.DB
}

func NewClientRepository(database *gorm.DB) *ClientRepository {
	return &ClientRepository{
		OwnedRepository: NewOwnedRepository[models.Client, *models.Client](database, "service_history"),
		database:        database,
	}
}

// AppendServiceHistory adds one entry to the end of the client's service
// history. The read-append-write runs in a transaction so concurrent
// appends cannot drop entries.
func (repo *ClientRepository) AppendServiceHistory(accountID string, clientID string, entry models.HistoryEntry) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.
			Where("id = ? AND account_id = ?", clientID, accountID).
			First(&client).Error; err != nil {
			return err
		}

		history := append(client.ServiceHistory, entry)
		return tx.Model(&client).Update("service_history", history).Error
	})
}
