package repository

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/rafif143/basket/internal/domain"
)

type RegistrationRepository interface {
	CreateRegistration(reg *domain.Registration) (*domain.Registration, error)
	FindRegistrationByID(id uint) (*domain.Registration, error)
	ListAllRegistrations() ([]domain.Registration, error)
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) CreateRegistration(reg *domain.Registration) (*domain.Registration, error) {
	if reg == nil {
		return nil, errors.New("nil registration")
	}

	if err := r.db.Create(reg).Error; err != nil {
		log.Printf("create registration error: %v", err)
		return nil, errors.New("failed to create registration")
	}

	return reg, nil
}

func (r *registrationRepository) FindRegistrationByID(id uint) (*domain.Registration, error) {
	reg := &domain.Registration{}

	if err := r.db.First(reg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("find registration by id error: %v", err)
		return nil, errors.New("failed to find registration by ID")
	}

	return reg, nil
}

// ListAllRegistrations returns every record, newest first. Filtering is the
// caller's job, in memory, after fetch.
func (r *registrationRepository) ListAllRegistrations() ([]domain.Registration, error) {
	var regs []domain.Registration

	if err := r.db.Order("created_at DESC").Find(&regs).Error; err != nil {
		log.Printf("list registrations error: %v", err)
		return nil, errors.New("failed to list registrations")
	}

	return regs, nil
}
