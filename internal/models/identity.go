package models

import "time"

// Citizen is a reporting user. Email and mobile are pointers so that an
// absent contact does not collide on the unique index.
type Citizen struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Mobile       *string   `gorm:"uniqueIndex;size:10" json:"mobile"`
	Email        *string   `gorm:"uniqueIndex;size:40" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Citizen) TableName() string { return "citizens" }

// Contact returns the citizen's display identifier, preferring email.
func (c *Citizen) Contact() string {
	if c.Email != nil {
		return *c.Email
	}
	if c.Mobile != nil {
		return *c.Mobile
	}
	return ""
}

// Employee is a staff account with moderation rights.
type Employee struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:40;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Employee) TableName() string { return "employees" }

type Volunteer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Contact      string    `gorm:"uniqueIndex;size:10;not null" json:"contact"`
	Email        string    `gorm:"size:40" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	NGOID        uint      `gorm:"not null;index" json:"ngo_id"`
	CreatedAt    time.Time `json:"created_at"`

	NGO *NGO `gorm:"foreignKey:NGOID" json:"ngo,omitempty"`
}

func (Volunteer) TableName() string { return "volunteers" }

type NGO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:40;not null" json:"name"`
	Email     *string   `gorm:"size:30" json:"email"`
	Pincode   string    `gorm:"size:6;not null" json:"pincode"`
	Contact   string    `gorm:"size:14;not null" json:"contact"`
	CreatedAt time.Time `json:"created_at"`

	Volunteers []Volunteer `gorm:"foreignKey:NGOID" json:"volunteers,omitempty"`
}

func (NGO) TableName() string { return "ngo" }
