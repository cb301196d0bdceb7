package repository

import (
	"coastwatch/internal/models"

	"gorm.io/gorm"
)

// UploadRepository persists the relational half of reports. The shared
// report id is assigned by the join service, so Create never relies on
// auto-increment.
type UploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

func (r *UploadRepository) Create(u *models.Upload) error {
	return r.db.Create(u).Error
}

func (r *UploadRepository) GetByID(id int64) (*models.Upload, error) {
	var u models.Upload
	err := r.db.First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns rows matching the optional filters in primary-key order.
// A nil filter means "all".
func (r *UploadRepository) List(verified *bool, uploaderID *uint) ([]models.Upload, error) {
	q := r.db.Model(&models.Upload{})
	if verified != nil {
		q = q.Where("verified = ?", *verified)
	}
	if uploaderID != nil {
		q = q.Where("uploader_id = ?", *uploaderID)
	}
	var rows []models.Upload
	err := q.Find(&rows).Error
	return rows, err
}

func (r *UploadRepository) SetVerified(id int64, verified bool) error {
	return r.db.Model(&models.Upload{}).Where("id = ?", id).Update("verified", verified).Error
}

// Delete removes the relational record. Absence is not an error; the
// bool reports whether a row actually existed.
func (r *UploadRepository) Delete(id int64) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&models.Upload{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *UploadRepository) CountByVerified() (verified int64, unverified int64, err error) {
	if err = r.db.Model(&models.Upload{}).Where("verified = ?", true).Count(&verified).Error; err != nil {
		return 0, 0, err
	}
	if err = r.db.Model(&models.Upload{}).Where("verified = ?", false).Count(&unverified).Error; err != nil {
		return 0, 0, err
	}
	return verified, unverified, nil
}
