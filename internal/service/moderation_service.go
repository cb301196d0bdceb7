package service

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"
)

var ErrReportNotFound = errors.New("report not found")

// ModerationService flips the verification flag or removes both halves
// of a report. Deletions are best-effort: the two stores are
// independent and a one-sided failure is not rolled back.
type ModerationService struct {
	uploads UploadStore
	docs    DocumentStore
}

func NewModerationService(uploads UploadStore, docs DocumentStore) *ModerationService {
	return &ModerationService{uploads: uploads, docs: docs}
}

// Approve marks the relational record verified. Re-approving an already
// verified report is a no-op success.
func (s *ModerationService) Approve(id int64) error {
	if _, err := s.uploads.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReportNotFound
		}
		return err
	}
	return s.uploads.SetVerified(id, true)
}

// Reject deletes whichever halves exist. Absence of either record is
// fine; only storage failures surface. Stored media files are left in
// place for an out-of-band sweep.
func (s *ModerationService) Reject(ctx context.Context, id int64) error {
	relFound, relErr := s.uploads.Delete(id)
	docFound, docErr := s.docs.Delete(ctx, id)

	if relFound != docFound {
		log.Printf("[moderation] reject %d: one-sided record (relational=%t document=%t)", id, relFound, docFound)
	}
	return errors.Join(relErr, docErr)
}
