package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestListRecentOrdersNewestFirstWithCap(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSocialPostRepository(db)

	rows := sqlmock.NewRows([]string{"id", "platform", "content"}).
		AddRow(uint(61), "twitter", "latest warning").
		AddRow(uint(60), "facebook", "earlier warning")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `social_posts` ORDER BY id DESC LIMIT ?")).
		WithArgs(50).
		WillReturnRows(rows)

	got, err := repo.ListRecent(50)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != 61 || got[1].ID != 60 {
		t.Fatalf("rows must come back newest first: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
