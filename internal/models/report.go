package models

import "time"

// A report is one logical entity split across two stores that share a
// single integer id. Upload is the relational half; UploadDocument is
// the document half. There is no foreign key between them — the join
// service owns id assignment and reconstruction.

// Upload is the structured, query-friendly half of a report (MySQL).
// The primary key is assigned by the join service, never by the
// database.
type Upload struct {
	ID              int64      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	UploaderID      uint       `gorm:"not null;index" json:"uploader_id"`
	IssueDate       time.Time  `json:"issue_date"`
	Latitude        *float64   `json:"latitude"`
	Longitude       *float64   `json:"longitude"`
	Verified        bool       `gorm:"not null;default:false;index" json:"verified"`
	SubmissionDate  time.Time  `json:"submission_date"`
	UploaderPincode string     `gorm:"size:6;not null" json:"uploader_pincode"`
	AssignedNGOID   *uint      `json:"assigned_ngo_id"`

	Uploader    Citizen `gorm:"foreignKey:UploaderID" json:"-"`
	AssignedNGO *NGO    `gorm:"foreignKey:AssignedNGOID" json:"-"`
}

func (Upload) TableName() string { return "uploads" }

// UploadDocument is the loosely-typed half of a report (MongoDB). The
// _id equals the relational Upload.ID.
type UploadDocument struct {
	ReportID            int64    `bson:"_id" json:"report_id"`
	ImagePath           *string  `bson:"image_path,omitempty" json:"image_path"`
	VideoPath           *string  `bson:"video_path,omitempty" json:"video_path"`
	Description         string   `bson:"description,omitempty" json:"description"`
	Category            string   `bson:"category,omitempty" json:"category"`
	PredictedCategories []string `bson:"predicted_categories" json:"predicted_categories"`
}

// ReportView is the merged read model returned by the join service.
// Document-half fields are nil when the document record is missing.
type ReportView struct {
	ID          int64    `json:"id"`
	UploaderID  uint     `json:"uploader_id"`
	Uploader    *string  `json:"uploader"`
	Category    *string  `json:"category"`
	Status      string   `json:"status"`
	Description *string  `json:"description"`
	ImagePath   *string  `json:"image_path"`
	VideoPath   *string  `json:"video_path"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}
