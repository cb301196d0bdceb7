package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"coastwatch/internal/domain"
	"coastwatch/internal/models"

	"gorm.io/gorm"
)

var (
	ErrInvalidUploader    = errors.New("invalid uploader_id")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrUnsupportedMedia   = errors.New("unsupported media type")
	ErrDescriptionTooLong = errors.New("description too long")
)

const maxDescriptionLen = 600

// ReportService coordinates the two report stores. It owns id
// assignment ordering (document first, relational second) and the
// join read. Neither store offers a transaction spanning the other, so
// a relational failure after the document write leaves an orphan; that
// is surfaced to the caller and never rolled back here.
type ReportService struct {
	citizens  CitizenStore
	uploads   UploadStore
	docs      DocumentStore
	media     MediaStore
	urlPrefix string
}

func NewReportService(citizens CitizenStore, uploads UploadStore, docs DocumentStore, media MediaStore, urlPrefix string) *ReportService {
	return &ReportService{citizens: citizens, uploads: uploads, docs: docs, media: media, urlPrefix: urlPrefix}
}

type CreateReportInput struct {
	UploaderID  uint
	Category    string
	Description string
	Latitude    *float64
	Longitude   *float64

	// Optional single attachment; Media nil means none.
	Media     io.Reader
	MediaName string
	MediaMIME string
}

type ListFilter struct {
	Verified   *bool
	UploaderID *uint
}

// Create submits a report and returns the shared report id. On success
// both halves exist under that id.
func (s *ReportService) Create(ctx context.Context, in CreateReportInput) (int64, error) {
	if _, err := s.citizens.GetByID(in.UploaderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrInvalidUploader
		}
		return 0, err
	}
	if in.Category != "" && !validCategory(in.Category) {
		return 0, ErrUnknownCategory
	}
	if len(in.Description) > maxDescriptionLen {
		return 0, ErrDescriptionTooLong
	}

	var imagePath, videoPath *string
	if in.Media != nil {
		isImage := strings.HasPrefix(in.MediaMIME, "image/")
		isVideo := strings.HasPrefix(in.MediaMIME, "video/")
		if !isImage && !isVideo {
			return 0, ErrUnsupportedMedia
		}
		stored, err := s.media.Save(in.MediaName, in.Media)
		if err != nil {
			return 0, fmt.Errorf("save media: %w", err)
		}
		path := s.urlPrefix + "/" + stored
		if isImage {
			imagePath = &path
		} else {
			videoPath = &path
		}
	}

	id, err := s.docs.NextReportID(ctx)
	if err != nil {
		return 0, err
	}

	doc := &models.UploadDocument{
		ReportID:            id,
		ImagePath:           imagePath,
		VideoPath:           videoPath,
		Description:         in.Description,
		Category:            in.Category,
		PredictedCategories: []string{domain.PredictedManual},
	}
	if err := s.docs.Insert(ctx, doc); err != nil {
		return 0, err
	}

	today := time.Now()
	rec := &models.Upload{
		ID:              id,
		UploaderID:      in.UploaderID,
		IssueDate:       today,
		SubmissionDate:  today,
		Latitude:        in.Latitude,
		Longitude:       in.Longitude,
		Verified:        false,
		UploaderPincode: domain.PincodePlaceholder,
	}
	if err := s.uploads.Create(rec); err != nil {
		// The document half is already committed; report the orphan
		// instead of pretending to roll it back.
		log.Printf("[report] orphaned document record id=%d: %v", id, err)
		return 0, fmt.Errorf("relational write failed, document record %d orphaned: %w", id, err)
	}
	return id, nil
}

// List performs the join read: relational rows drive the result, each
// merged with its document record and the uploader's contact. A report
// whose document half is missing still appears, with nil document
// fields.
func (s *ReportService) List(ctx context.Context, filter ListFilter) ([]models.ReportView, error) {
	rows, err := s.uploads.List(filter.Verified, filter.UploaderID)
	if err != nil {
		return nil, err
	}

	views := make([]models.ReportView, 0, len(rows))
	for _, u := range rows {
		view := models.ReportView{
			ID:         u.ID,
			UploaderID: u.UploaderID,
			Status:     domain.StatusUnverified,
			Latitude:   u.Latitude,
			Longitude:  u.Longitude,
		}
		if u.Verified {
			view.Status = domain.StatusVerified
		}

		doc, err := s.docs.GetByReportID(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		if doc != nil {
			if doc.Category != "" {
				cat := doc.Category
				view.Category = &cat
			}
			if doc.Description != "" {
				desc := doc.Description
				view.Description = &desc
			}
			view.ImagePath = doc.ImagePath
			view.VideoPath = doc.VideoPath
		}

		citizen, err := s.citizens.GetByID(u.UploaderID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if citizen != nil {
			contact := citizen.Contact()
			view.Uploader = &contact
		}
		views = append(views, view)
	}
	return views, nil
}

// Overview counts each field in the store that owns it: categories in
// the document store, verification in the relational store. The two
// sides are not cross-joined.
func (s *ReportService) Overview(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(domain.Categories)+2)
	for _, cat := range domain.Categories {
		n, err := s.docs.CountByCategory(ctx, cat)
		if err != nil {
			return nil, err
		}
		counts[overviewKey(cat)] = n
	}
	verified, unverified, err := s.uploads.CountByVerified()
	if err != nil {
		return nil, err
	}
	counts[domain.StatusVerified] = verified
	counts[domain.StatusUnverified] = unverified
	return counts, nil
}

func validCategory(category string) bool {
	for _, c := range domain.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// overviewKey turns "High Waves" into "highwaves".
func overviewKey(category string) string {
	return strings.ToLower(strings.ReplaceAll(category, " ", ""))
}
