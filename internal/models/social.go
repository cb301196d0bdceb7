package models

// SocialPost is an archival record handed over by the social-media
// fetch jobs. Timestamp is kept as the opaque string the source sent.
type SocialPost struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Platform  string `gorm:"size:50;not null" json:"platform"`
	Content   string `gorm:"size:1000;not null" json:"content"`
	Username  string `gorm:"size:255" json:"username"`
	Timestamp string `gorm:"size:100" json:"timestamp"`
}

func (SocialPost) TableName() string { return "social_posts" }
