package repository

import (
	"coastwatch/internal/models"

	"gorm.io/gorm"
)

type CitizenRepository struct {
	db *gorm.DB
}

func NewCitizenRepository(db *gorm.DB) *CitizenRepository {
	return &CitizenRepository{db: db}
}

func (r *CitizenRepository) Create(c *models.Citizen) error {
	return r.db.Create(c).Error
}

func (r *CitizenRepository) GetByID(id uint) (*models.Citizen, error) {
	var c models.Citizen
	err := r.db.First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByIdentifier resolves an email-or-mobile identifier. Uniqueness of
// each contact column guarantees at most one match.
func (r *CitizenRepository) GetByIdentifier(identifier string) (*models.Citizen, error) {
	var c models.Citizen
	err := r.db.Where("email = ? OR mobile = ?", identifier, identifier).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CitizenRepository) GetByEmail(email string) (*models.Citizen, error) {
	var c models.Citizen
	err := r.db.Where("email = ?", email).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CitizenRepository) GetByMobile(mobile string) (*models.Citizen, error) {
	var c models.Citizen
	err := r.db.Where("mobile = ?", mobile).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
