package repository

import (
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafif143/basket/internal/domain"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

type SettingRepository interface {
	GetSetting(key string) (*domain.Setting, error)
	UpsertSetting(key, value string, description *string) (*domain.Setting, error)
	ListAllSettings() ([]domain.Setting, error)
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) GetSetting(key string) (*domain.Setting, error) {
	setting := &domain.Setting{}

	if err := r.db.First(setting, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("get setting error: %v", err)
		return nil, errors.New("failed to get setting")
	}

	return setting, nil
}

// UpsertSetting inserts the row or, when the key already exists, updates
// value/description in a single statement. ON CONFLICT at the store avoids
// the lost update a check-then-act upsert would allow.
func (r *settingRepository) UpsertSetting(key, value string, description *string) (*domain.Setting, error) {
	setting := &domain.Setting{
		Key:         key,
		Value:       value,
		Description: description,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "description", "updated_at"}),
	}).Create(setting).Error
	if err != nil {
		log.Printf("upsert setting error: %v", err)
		return nil, errors.New("failed to upsert setting")
	}

	return setting, nil
}

func (r *settingRepository) ListAllSettings() ([]domain.Setting, error) {
	var settings []domain.Setting

	if err := r.db.Order("key").Find(&settings).Error; err != nil {
		log.Printf("list settings error: %v", err)
		return nil, errors.New("failed to list settings")
	}

	return settings, nil
}
