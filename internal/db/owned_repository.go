package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxListResults caps every list query. Callers must not assume records
// beyond the cap are retrievable.
const MaxListResults = 1000

// OwnedEntity is satisfied by pointers to models embedding models.Owned.
type OwnedEntity interface {
	Stamp(id string, accountID string, createdAt time.Time)
}

// OwnedRepository is the uniform account-scoped CRUD layer, instantiated
// once per entity kind. Ownership is enforced by folding the account id
// into every filter, so a cross-account read or write cannot even be
// expressed. An ownership mismatch is indistinguishable from absence: both
// surface as gorm.ErrRecordNotFound.
type OwnedRepository[T any, P interface {
	*T
	OwnedEntity
}] struct {
	database *gorm.DB
	// Columns a full-payload update must never touch: the identity and
	// stamp columns plus any append-only list columns.
	immutableColumns []string
}

func NewOwnedRepository[T any, P interface {
	*T
	OwnedEntity
}](database *gorm.DB, appendOnlyColumns ...string) *OwnedRepository[T, P] {
	immutable := append([]string{"id", "account_id", "created_at"}, appendOnlyColumns...)
	return &OwnedRepository[T, P]{database: database, immutableColumns: immutable}
}

func (repo *OwnedRepository[T, P]) Create(entity P, accountID string, now time.Time) error {
	entity.Stamp(uuid.NewString(), accountID, now)
	return repo.database.Create(entity).Error
}

func (repo *OwnedRepository[T, P]) ListByAccount(accountID string) ([]T, error) {
	entities := make([]T, 0)
	if err := repo.database.
		Where("account_id = ?", accountID).
		Limit(MaxListResults).
		Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (repo *OwnedRepository[T, P]) FindByID(accountID string, id string) (T, error) {
	var entity T
	if err := repo.database.
		Where("id = ? AND account_id = ?", id, accountID).
		First(&entity).Error; err != nil {
		var zero T
		return zero, err
	}
	return entity, nil
}

// Update replaces every payload column of the matching entity, zero values
// included, then re-reads the stored row.
func (repo *OwnedRepository[T, P]) Update(accountID string, id string, entity P) (T, error) {
	var model T
	result := repo.database.
		Model(&model).
		Where("id = ? AND account_id = ?", id, accountID).
		Select("*").
		Omit(repo.immutableColumns...).
		Updates(entity)
	if result.Error != nil {
		var zero T
		return zero, result.Error
	}
	if result.RowsAffected == 0 {
		var zero T
		return zero, gorm.ErrRecordNotFound
	}
	return repo.FindByID(accountID, id)
}

func (repo *OwnedRepository[T, P]) Delete(accountID string, id string) error {
	var entity T
	result := repo.database.
		Where("id = ? AND account_id = ?", id, accountID).
		Delete(&entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
