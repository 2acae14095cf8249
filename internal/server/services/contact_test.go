package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/dmitrijs2005/contacthub/internal/common"
	"github.com/dmitrijs2005/contacthub/internal/server/models"
)

func TestContactCreate_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewContactService(db, &fakeRepoManager{c: &fakeContactsRepo{}})

	c, err := s.Create(context.Background(), "alice", ContactInput{FirstName: "John", LastName: "Doe"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.ID == 0 || c.Username != "alice" || c.FirstName != "John" {
		t.Fatalf("unexpected contact: %+v", c)
	}
}

func TestContactCreate_Err(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewContactService(db, &fakeRepoManager{c: &fakeContactsRepo{createErr: errBoom{}}})

	_, err := s.Create(context.Background(), "alice", ContactInput{FirstName: "John"})
	if err == nil || !regexp.MustCompile(`error creating contact: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestContactGet_NotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewContactService(db, &fakeRepoManager{c: &fakeContactsRepo{getErr: common.ErrorNotFound}})

	_, err := s.Get(context.Background(), "alice", 7)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestContactUpdate_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeContactsRepo{countOut: 1}
	s := NewContactService(db, &fakeRepoManager{c: repo})

	c, err := s.Update(context.Background(), "alice", 7, ContactInput{FirstName: "Jane", Email: "jane@example.com"})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if c.ID != 7 || c.FirstName != "Jane" || c.Username != "alice" {
		t.Fatalf("unexpected contact: %+v", c)
	}
	if repo.updated == nil {
		t.Fatal("repository write missing")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestContactUpdate_MissingRowRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeContactsRepo{countOut: 0}
	s := NewContactService(db, &fakeRepoManager{c: repo})

	_, err := s.Update(context.Background(), "alice", 7, ContactInput{FirstName: "Jane"})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
	if repo.updated != nil {
		t.Fatal("no write expected when the row is missing")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestContactDelete_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeContactsRepo{countOut: 1}
	s := NewContactService(db, &fakeRepoManager{c: repo})

	if err := s.Delete(context.Background(), "alice", 7); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if !repo.deleted {
		t.Fatal("repository delete missing")
	}
}

func TestContactDelete_MissingRow(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeContactsRepo{countOut: 0}
	s := NewContactService(db, &fakeRepoManager{c: repo})

	err := s.Delete(context.Background(), "alice", 7)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
	if repo.deleted {
		t.Fatal("no delete expected when the row is missing")
	}
}

func TestContactSearch_PagingMath(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	page := make([]*models.Contact, 10)
	for i := range page {
		page[i] = &models.Contact{ID: int64(i + 1), Username: "alice"}
	}
	repo := &fakeContactsRepo{searchOut: page, searchCountOut: 15}
	s := NewContactService(db, &fakeRepoManager{c: repo})

	result, paging, err := s.Search(context.Background(), "alice", SearchFilter{Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(result) != 10 {
		t.Fatalf("want 10 items, got %d", len(result))
	}
	if paging.Page != 1 || paging.TotalItem != 15 || paging.TotalPage != 2 {
		t.Fatalf("unexpected paging: %+v", paging)
	}
	if repo.searchF.Limit != 10 || repo.searchF.Offset != 0 {
		t.Fatalf("unexpected window: %+v", repo.searchF)
	}
}

func TestContactSearch_SecondPageOffset(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeContactsRepo{searchOut: []*models.Contact{{ID: 11}}, searchCountOut: 15}
	s := NewContactService(db, &fakeRepoManager{c: repo})

	_, paging, err := s.Search(context.Background(), "alice", SearchFilter{Page: 2, Size: 10})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if repo.searchF.Offset != 10 {
		t.Fatalf("want offset 10, got %d", repo.searchF.Offset)
	}
	if paging.Page != 2 || paging.TotalPage != 2 {
		t.Fatalf("unexpected paging: %+v", paging)
	}
}

func TestContactSearch_PagePastEnd(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeContactsRepo{searchOut: nil, searchCountOut: 15}
	s := NewContactService(db, &fakeRepoManager{c: repo})

	result, paging, err := s.Search(context.Background(), "alice", SearchFilter{Page: 100, Size: 10})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("want empty page, got %d items", len(result))
	}
	if paging.Page != 100 || paging.TotalItem != 15 || paging.TotalPage != 2 {
		t.Fatalf("unexpected paging: %+v", paging)
	}
}

func TestContactSearch_NoMatches(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeContactsRepo{searchOut: nil, searchCountOut: 0}
	s := NewContactService(db, &fakeRepoManager{c: repo})

	result, paging, err := s.Search(context.Background(), "alice", SearchFilter{Name: "nobody", Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(result) != 0 || paging.TotalItem != 0 || paging.TotalPage != 0 {
		t.Fatalf("unexpected result: %d items, paging %+v", len(result), paging)
	}
}

func TestContactSearch_RepoErr(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewContactService(db, &fakeRepoManager{c: &fakeContactsRepo{searchErr: errBoom{}}})

	_, _, err := s.Search(context.Background(), "alice", SearchFilter{Page: 1, Size: 10})
	if err == nil || !regexp.MustCompile(`error searching contacts: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
