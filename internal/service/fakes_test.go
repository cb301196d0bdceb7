package service

import (
	"context"
	"io"
	"strings"
	"sync"

	"coastwatch/internal/models"

	"gorm.io/gorm"
)

// In-memory stores backing the service tests. They honor the same
// contracts as the gorm/mongo repositories, including the
// gorm.ErrRecordNotFound sentinel and (nil, nil) for absent documents.

type fakeCitizens struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]*models.Citizen
}

func newFakeCitizens() *fakeCitizens {
	return &fakeCitizens{rows: make(map[uint]*models.Citizen)}
}

func (f *fakeCitizens) Create(c *models.Citizen) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	c.ID = f.nextID
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeCitizens) GetByID(id uint) (*models.Citizen, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCitizens) GetByIdentifier(identifier string) (*models.Citizen, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.rows {
		if (c.Email != nil && *c.Email == identifier) || (c.Mobile != nil && *c.Mobile == identifier) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCitizens) GetByEmail(email string) (*models.Citizen, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.rows {
		if c.Email != nil && *c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCitizens) GetByMobile(mobile string) (*models.Citizen, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.rows {
		if c.Mobile != nil && *c.Mobile == mobile {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCitizens) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type fakeEmployees struct {
	mu     sync.Mutex
	nextID uint
	rows   map[string]*models.Employee
}

func newFakeEmployees() *fakeEmployees {
	return &fakeEmployees{rows: make(map[string]*models.Employee)}
}

func (f *fakeEmployees) Create(e *models.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	e.ID = f.nextID
	cp := *e
	f.rows[e.Email] = &cp
	return nil
}

func (f *fakeEmployees) GetByEmail(email string) (*models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.rows[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

type fakeVolunteers struct {
	mu     sync.Mutex
	nextID uint
	rows   map[string]*models.Volunteer
}

func newFakeVolunteers() *fakeVolunteers {
	return &fakeVolunteers{rows: make(map[string]*models.Volunteer)}
}

func (f *fakeVolunteers) Create(v *models.Volunteer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	v.ID = f.nextID
	cp := *v
	f.rows[v.Contact] = &cp
	return nil
}

func (f *fakeVolunteers) GetByContact(contact string) (*models.Volunteer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.rows[contact]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *v
	return &cp, nil
}

type fakeNGOs struct {
	mu   sync.Mutex
	rows map[uint]*models.NGO
}

func newFakeNGOs() *fakeNGOs {
	return &fakeNGOs{rows: make(map[uint]*models.NGO)}
}

func (f *fakeNGOs) add(n *models.NGO) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[n.ID] = n
}

func (f *fakeNGOs) GetByID(id uint) (*models.NGO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *n
	return &cp, nil
}

type fakeUploads struct {
	mu         sync.Mutex
	rows       []*models.Upload
	failCreate error
}

func newFakeUploads() *fakeUploads { return &fakeUploads{} }

func (f *fakeUploads) Create(u *models.Upload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate != nil {
		return f.failCreate
	}
	cp := *u
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeUploads) GetByID(id int64) (*models.Upload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.rows {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUploads) List(verified *bool, uploaderID *uint) ([]models.Upload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Upload
	for _, u := range f.rows {
		if verified != nil && u.Verified != *verified {
			continue
		}
		if uploaderID != nil && u.UploaderID != *uploaderID {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUploads) SetVerified(id int64, verified bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.rows {
		if u.ID == id {
			u.Verified = verified
		}
	}
	return nil
}

func (f *fakeUploads) Delete(id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.rows {
		if u.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUploads) CountByVerified() (int64, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var verified, unverified int64
	for _, u := range f.rows {
		if u.Verified {
			verified++
		} else {
			unverified++
		}
	}
	return verified, unverified, nil
}

type fakeDocs struct {
	mu   sync.Mutex
	seq  int64
	docs map[int64]*models.UploadDocument
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{docs: make(map[int64]*models.UploadDocument)}
}

func (f *fakeDocs) NextReportID(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	return f.seq, nil
}

func (f *fakeDocs) Insert(_ context.Context, doc *models.UploadDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *doc
	f.docs[doc.ReportID] = &cp
	return nil
}

func (f *fakeDocs) GetByReportID(_ context.Context, id int64) (*models.UploadDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *doc
	return &cp, nil
}

func (f *fakeDocs) Delete(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.docs[id]; !ok {
		return false, nil
	}
	delete(f.docs, id)
	return true, nil
}

func (f *fakeDocs) CountByCategory(_ context.Context, category string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, doc := range f.docs {
		if doc.Category == category {
			n++
		}
	}
	return n, nil
}

type fakeMedia struct {
	mu    sync.Mutex
	saved []string
}

func (f *fakeMedia) Save(originalName string, r io.Reader) (string, error) {
	_, _ = io.Copy(io.Discard, r)
	ext := ""
	if i := strings.LastIndex(originalName, "."); i >= 0 {
		ext = originalName[i:]
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	name := "stored" + ext
	f.saved = append(f.saved, name)
	return name, nil
}
