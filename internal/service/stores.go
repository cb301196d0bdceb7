package service

import (
	"context"
	"io"

	"coastwatch/internal/models"
)

// Narrow store interfaces keep the join and moderation logic
// storage-agnostic; the concrete gorm/mongo repositories satisfy them
// and tests substitute in-memory fakes.

type CitizenStore interface {
	Create(c *models.Citizen) error
	GetByID(id uint) (*models.Citizen, error)
	GetByIdentifier(identifier string) (*models.Citizen, error)
	GetByEmail(email string) (*models.Citizen, error)
	GetByMobile(mobile string) (*models.Citizen, error)
}

type EmployeeStore interface {
	Create(e *models.Employee) error
	GetByEmail(email string) (*models.Employee, error)
}

type VolunteerStore interface {
	Create(v *models.Volunteer) error
	GetByContact(contact string) (*models.Volunteer, error)
}

type NGOStore interface {
	GetByID(id uint) (*models.NGO, error)
}

// UploadStore is the relational half of the report entity.
type UploadStore interface {
	Create(u *models.Upload) error
	GetByID(id int64) (*models.Upload, error)
	List(verified *bool, uploaderID *uint) ([]models.Upload, error)
	SetVerified(id int64, verified bool) error
	Delete(id int64) (bool, error)
	CountByVerified() (verified, unverified int64, err error)
}

// DocumentStore is the document half of the report entity plus the
// shared id sequence. GetByReportID returns (nil, nil) for absent
// records so reads can degrade instead of failing.
type DocumentStore interface {
	NextReportID(ctx context.Context) (int64, error)
	Insert(ctx context.Context, doc *models.UploadDocument) error
	GetByReportID(ctx context.Context, id int64) (*models.UploadDocument, error)
	Delete(ctx context.Context, id int64) (bool, error)
	CountByCategory(ctx context.Context, category string) (int64, error)
}

// MediaStore persists an uploaded file and reports its stored name.
type MediaStore interface {
	Save(originalName string, r io.Reader) (string, error)
}
