package repository

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/rafif143/basket/internal/domain"
)

type AdminRepository interface {
	CreateAdmin(admin *domain.Admin) (*domain.Admin, error)
	FindAdminByEmail(email string) (*domain.Admin, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) CreateAdmin(admin *domain.Admin) (*domain.Admin, error) {
	if admin == nil {
		return nil, errors.New("nil admin")
	}

	if err := r.db.Create(admin).Error; err != nil {
		log.Printf("create admin error: %v", err)
		return nil, errors.New("failed to create admin")
	}

	return admin, nil
}

func (r *adminRepository) FindAdminByEmail(email string) (*domain.Admin, error) {
	admin := &domain.Admin{}

	if err := r.db.First(admin, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("find admin by email error: %v", err)
		return nil, errors.New("failed to find admin by email")
	}

	return admin, nil
}
