package repository

import (
	"coastwatch/internal/models"

	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(e *models.Employee) error {
	return r.db.Create(e).Error
}

func (r *EmployeeRepository) GetByEmail(email string) (*models.Employee, error) {
	var e models.Employee
	err := r.db.Where("email = ?", email).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

type VolunteerRepository struct {
	db *gorm.DB
}

func NewVolunteerRepository(db *gorm.DB) *VolunteerRepository {
	return &VolunteerRepository{db: db}
}

func (r *VolunteerRepository) Create(v *models.Volunteer) error {
	return r.db.Create(v).Error
}

func (r *VolunteerRepository) GetByContact(contact string) (*models.Volunteer, error) {
	var v models.Volunteer
	err := r.db.Where("contact = ?", contact).First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

type NGORepository struct {
	db *gorm.DB
}

func NewNGORepository(db *gorm.DB) *NGORepository {
	return &NGORepository{db: db}
}

func (r *NGORepository) Create(n *models.NGO) error {
	return r.db.Create(n).Error
}

func (r *NGORepository) GetByID(id uint) (*models.NGO, error) {
	var n models.NGO
	err := r.db.First(&n, id).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NGORepository) GetByName(name string) (*models.NGO, error) {
	var n models.NGO
	err := r.db.Where("name = ?", name).First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}
