package repository

import (
	"coastwatch/internal/models"

	"gorm.io/gorm"
)

// SocialPostRepository is append-only storage for scraped posts.
type SocialPostRepository struct {
	db *gorm.DB
}

func NewSocialPostRepository(db *gorm.DB) *SocialPostRepository {
	return &SocialPostRepository{db: db}
}

func (r *SocialPostRepository) Create(p *models.SocialPost) error {
	return r.db.Create(p).Error
}

// ListRecent returns the newest posts first, capped at limit.
func (r *SocialPostRepository) ListRecent(limit int) ([]models.SocialPost, error) {
	var posts []models.SocialPost
	err := r.db.Order("id DESC").Limit(limit).Find(&posts).Error
	return posts, err
}
