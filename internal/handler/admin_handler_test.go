package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"coastwatch/internal/models"
	"coastwatch/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type stubUploads struct {
	rows map[int64]*models.Upload
}

func (s *stubUploads) Create(u *models.Upload) error { s.rows[u.ID] = u; return nil }

func (s *stubUploads) GetByID(id int64) (*models.Upload, error) {
	u, ok := s.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (s *stubUploads) List(verified *bool, uploaderID *uint) ([]models.Upload, error) {
	var out []models.Upload
	for _, u := range s.rows {
		out = append(out, *u)
	}
	return out, nil
}

func (s *stubUploads) SetVerified(id int64, verified bool) error {
	if u, ok := s.rows[id]; ok {
		u.Verified = verified
	}
	return nil
}

func (s *stubUploads) Delete(id int64) (bool, error) {
	if _, ok := s.rows[id]; !ok {
		return false, nil
	}
	delete(s.rows, id)
	return true, nil
}

func (s *stubUploads) CountByVerified() (int64, int64, error) { return 0, 0, nil }

type stubDocs struct {
	docs map[int64]*models.UploadDocument
}

func (s *stubDocs) NextReportID(context.Context) (int64, error) { return 0, nil }

func (s *stubDocs) Insert(_ context.Context, d *models.UploadDocument) error {
	s.docs[d.ReportID] = d
	return nil
}

func (s *stubDocs) GetByReportID(_ context.Context, id int64) (*models.UploadDocument, error) {
	return s.docs[id], nil
}

func (s *stubDocs) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := s.docs[id]; !ok {
		return false, nil
	}
	delete(s.docs, id)
	return true, nil
}

func (s *stubDocs) CountByCategory(context.Context, string) (int64, error) { return 0, nil }

func newModerationRouter(uploads *stubUploads, docs *stubDocs) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAdminHandler(service.NewModerationService(uploads, docs), nil, nil)
	r := gin.New()
	r.POST("/admin/reports/:id/approve", h.Approve)
	r.POST("/admin/reports/:id/reject", h.Reject)
	return r
}

func TestApproveEndpoint(t *testing.T) {
	uploads := &stubUploads{rows: map[int64]*models.Upload{5: {ID: 5}}}
	docs := &stubDocs{docs: map[int64]*models.UploadDocument{5: {ReportID: 5}}}
	r := newModerationRouter(uploads, docs)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/reports/5/approve", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !uploads.rows[5].Verified {
		t.Fatal("approve must set verified on the relational record")
	}
	if _, ok := docs.docs[5]; !ok {
		t.Fatal("approve must not touch the document record")
	}
}

func TestApproveUnknownReport(t *testing.T) {
	r := newModerationRouter(
		&stubUploads{rows: map[int64]*models.Upload{}},
		&stubDocs{docs: map[int64]*models.UploadDocument{}},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/reports/99/approve", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestRejectEndpointRemovesBothHalves(t *testing.T) {
	uploads := &stubUploads{rows: map[int64]*models.Upload{5: {ID: 5}}}
	docs := &stubDocs{docs: map[int64]*models.UploadDocument{5: {ReportID: 5}}}
	r := newModerationRouter(uploads, docs)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/reports/5/reject", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if len(uploads.rows) != 0 || len(docs.docs) != 0 {
		t.Fatal("reject must remove both halves")
	}
}

func TestRejectUnknownReportSucceeds(t *testing.T) {
	r := newModerationRouter(
		&stubUploads{rows: map[int64]*models.Upload{}},
		&stubDocs{docs: map[int64]*models.UploadDocument{}},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/reports/99/reject", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("reject of unknown id must be a no-op success, got %d", w.Code)
	}
}

func TestApproveRejectsBadID(t *testing.T) {
	r := newModerationRouter(
		&stubUploads{rows: map[int64]*models.Upload{}},
		&stubDocs{docs: map[int64]*models.UploadDocument{}},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/reports/abc/approve", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
