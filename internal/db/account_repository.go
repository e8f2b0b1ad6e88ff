package db

import (
	"github.com/brunovieira/advocase/internal/models"
	"gorm.io/gorm"
)

type AccountRepository struct {
	database *gorm.DB
}

func NewAccountRepository(database *gorm.DB) *AccountRepository {
	return &AccountRepository{database: database}
}

// Email matching is a case-sensitive exact comparison.
func (repo *AccountRepository) ExistsByEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Account{}).
		Where("email = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *AccountRepository) FindByEmail(email string) (models.Account, error) {
	var account models.Account
	if err := repo.database.Where("email = ?", email).First(&account).Error; err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (repo *AccountRepository) FindByID(id string) (models.Account, error) {
	var account models.Account
	if err := repo.database.Where("id = ?", id).First(&account).Error; err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (repo *AccountRepository) Create(account *models.Account) error {
	return repo.database.Create(account).Error
}
