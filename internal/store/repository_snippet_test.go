package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/mfadhilr/contekan/internal/logger"
	"github.com/mfadhilr/contekan/models"
)

var snippetTestColumns = []string{
	"id", "title", "body", "description", "attachment",
	"owner_id", "owner_display_name", "created_at",
}

func newTestSnippetRepo(t *testing.T) (*snippetRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	wrapped, mock, db := newTestDB(t, NewSQLiteErrorClassifier())
	repo := &snippetRepository{
		DB:     wrapped,
		logger: logger.Nop(),
	}
	return repo, mock, db
}

func TestGetAllSnippets_Success(t *testing.T) {
	repo, mock, db := newTestSnippetRepo(t)
	defer db.Close()

	ctx := context.Background()
	older := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	rows := sqlmock.NewRows(snippetTestColumns).
		AddRow("id-1", "quicksort", "func qs() {}", "sorting", nil, 1, "Budi", older).
		AddRow("id-2", "binsearch", "func bs() {}", "", `{"file_name":"notes.txt","size":5,"data":"aGVsbG8="}`, 2, "Siti", newer)

	mock.ExpectQuery("SELECT id, title, body").
		WillReturnRows(rows)

	snippets, err := repo.GetAllSnippets(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snippets) != 2 {
		t.Fatalf("expected 2 snippets, got %d", len(snippets))
	}

	if snippets[0].Attachment != nil {
		t.Error("expected nil attachment for NULL column")
	}
	if snippets[1].Attachment == nil {
		t.Fatal("expected attachment to be decoded from JSON column")
	}
	if snippets[1].Attachment.FileName != "notes.txt" {
		t.Errorf("expected file name notes.txt, got %s", snippets[1].Attachment.FileName)
	}
	if snippets[1].OwnerDisplayName != "Siti" {
		t.Errorf("expected owner display name Siti, got %s", snippets[1].OwnerDisplayName)
	}
}

func TestGetAllSnippets_QueryError(t *testing.T) {
	repo, mock, db := newTestSnippetRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, title, body").
		WillReturnError(errors.New("db failure"))

	_, err := repo.GetAllSnippets(ctx)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetAllSnippets_ScanError(t *testing.T) {
	repo, mock, db := newTestSnippetRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id"}).AddRow("id-1") // wrong shape
	mock.ExpectQuery("SELECT id, title, body").
		WillReturnRows(rows)

	_, err := repo.GetAllSnippets(ctx)
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestGetSnippet_Success(t *testing.T) {
	repo, mock, db := newTestSnippetRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	rows := sqlmock.NewRows(snippetTestColumns).
		AddRow("id-1", "quicksort", "func qs() {}", "", nil, 1, "Budi", now)
	mock.ExpectQuery("SELECT id, title, body").
		WithArgs("id-1").
		WillReturnRows(rows)

	snippet, err := repo.GetSnippet(ctx, "id-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snippet.Title != "quicksort" {
		t.Errorf("expected title quicksort, got %s", snippet.Title)
	}
}

func TestGetSnippet_NotFound(t *testing.T) {
	repo, mock, db := newTestSnippetRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, title, body").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSnippet(ctx, "missing")
	if !errors.Is(err, ErrSnippetNotFound) {
		t.Fatalf("expected ErrSnippetNotFound, got %v", err)
	}
}

func TestSaveSnippet_AssignsIDAndCreatedAt(t *testing.T) {
	repo, mock, db := newTestSnippetRepo(t)
	defer db.Close()

	ctx := context.Background()
	snippet := models.Snippet{
		Title:            "quicksort",
		Body:             "func qs() {}",
		Description:      "sorting",
		OwnerID:          1,
		OwnerDisplayName: "Budi",
	}

	mock.ExpectExec("INSERT INTO contekans").
		WithArgs(
			sqlmock.AnyArg(), // generated uuid
			snippet.Title,
			snippet.Body,
			snippet.Description,
			nil, // no attachment stores NULL
			snippet.OwnerID,
			snippet.OwnerDisplayName,
			sqlmock.AnyArg(), // assigned timestamp
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := repo.SaveSnippet(ctx, snippet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID == "" {
		t.Error("expected server-assigned ID")
	}
	if saved.CreatedAt.IsZero() {
		t.Error("expected server-assigned CreatedAt")
	}
	if saved.CreatedAt.Location() != time.UTC {
		t.Error("expected CreatedAt in UTC")
	}
}

func TestSaveSnippet_WithAttachment(t *testing.T) {
	repo, mock, db := newTestSnippetRepo(t)
	defer db.Close()

	ctx := context.Background()
	snippet := models.Snippet{
		Title:   "notes",
		Body:    "text",
		OwnerID: 1,
		Attachment: &models.Attachment{
			FileName: "notes.txt",
			Size:     5,
			Data:     "aGVsbG8=",
		},
	}

	mock.ExpectExec("INSERT INTO contekans").
		WithArgs(
			sqlmock.AnyArg(),
			snippet.Title,
			snippet.Body,
			"",
			`{"file_name":"notes.txt","size":5,"data":"aGVsbG8="}`,
			snippet.OwnerID,
			"",
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := repo.SaveSnippet(ctx, snippet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSaveSnippet_ExecError(t *testing.T) {
	repo, mock, db := newTestSnippetRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO contekans").
		WillReturnError(errors.New("db failure"))

	_, err := repo.SaveSnippet(ctx, models.Snippet{Title: "x", Body: "y"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestUpdateSnippet_Success(t *testing.T) {
	repo, mock, db := newTestSnippetRepo(t)
	defer db.Close()

	ctx := context.Background()
	req := models.UpdateSnippetRequest{
		Title:       "renamed",
		Body:        "new body",
		Description: "updated",
	}

	mock.ExpectExec("UPDATE contekans").
		WithArgs(req.Title, req.Body, req.Description, "id-1", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	now := time.Now().UTC()
	rows := sqlmock.NewRows(snippetTestColumns).
		AddRow("id-1", req.Title, req.Body, req.Description, nil, 1, "Budi", now)
	mock.ExpectQuery("SELECT id, title, body").
		WithArgs("id-1").
		WillReturnRows(rows)

	updated, err := repo.UpdateSnippet(ctx, "id-1", 1, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "renamed" {
		t.Errorf("expected title renamed, got %s", updated.Title)
	}
}

func TestUpdateSnippet_KeepsAttachmentWhenNil(t *testing.T) {
	repo, mock, db := newTestSnippetRepo(t)
	defer db.Close()

	ctx := context.Background()
	req := models.UpdateSnippetRequest{Title: "t", Body: "b"}

	// nil attachment must not appear in the SET clause.
	mock.ExpectExec(`UPDATE contekans SET title = \?, body = \?, description = \? WHERE`).
		WithArgs(req.Title, req.Body, "", "id-1", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows := sqlmock.NewRows(snippetTestColumns).
		AddRow("id-1", "t", "b", "", `{"file_name":"keep.txt","size":1,"data":"QQ=="}`, 1, "Budi", time.Now().UTC())
	mock.ExpectQuery("SELECT id, title, body").
		WithArgs("id-1").
		WillReturnRows(rows)

	updated, err := repo.UpdateSnippet(ctx, "id-1", 1, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Attachment == nil || updated.Attachment.FileName != "keep.txt" {
		t.Error("expected stored attachment to survive a nil-attachment update")
	}
}

func TestUpdateSnippet_NotOwner(t *testing.T) {
	repo, mock, db := newTestSnippetRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE contekans").
		WillReturnResult(sqlmock.NewResult(0, 0))

	// The row exists but belongs to user 2.
	rows := sqlmock.NewRows(snippetTestColumns).
		AddRow("id-1", "t", "b", "", nil, 2, "Siti", time.Now().UTC())
	mock.ExpectQuery("SELECT id, title, body").
		WithArgs("id-1").
		WillReturnRows(rows)

	_, err := repo.UpdateSnippet(ctx, "id-1", 1, models.UpdateSnippetRequest{Title: "t", Body: "b"})
	if !errors.Is(err, ErrNotSnippetOwner) {
		t.Fatalf("expected ErrNotSnippetOwner, got %v", err)
	}
}

func TestUpdateSnippet_NotFound(t *testing.T) {
	repo, mock, db := newTestSnippetRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE contekans").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id, title, body").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateSnippet(ctx, "missing", 1, models.UpdateSnippetRequest{Title: "t", Body: "b"})
	if !errors.Is(err, ErrSnippetNotFound) {
		t.Fatalf("expected ErrSnippetNotFound, got %v", err)
	}
}

func TestDeleteSnippet_Success(t *testing.T) {
	repo, mock, db := newTestSnippetRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM contekans").
		WithArgs("id-1", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteSnippet(ctx, "id-1", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteSnippet_NotOwner(t *testing.T) {
	repo, mock, db := newTestSnippetRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM contekans").
		WithArgs("id-1", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows := sqlmock.NewRows(snippetTestColumns).
		AddRow("id-1", "t", "b", "", nil, 2, "Siti", time.Now().UTC())
	mock.ExpectQuery("SELECT id, title, body").
		WithArgs("id-1").
		WillReturnRows(rows)

	err := repo.DeleteSnippet(ctx, "id-1", 1)
	if !errors.Is(err, ErrNotSnippetOwner) {
		t.Fatalf("expected ErrNotSnippetOwner, got %v", err)
	}
}

func TestDeleteSnippet_NotFound(t *testing.T) {
	repo, mock, db := newTestSnippetRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM contekans").
		WithArgs("missing", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id, title, body").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	err := repo.DeleteSnippet(ctx, "missing", 1)
	if !errors.Is(err, ErrSnippetNotFound) {
		t.Fatalf("expected ErrSnippetNotFound, got %v", err)
	}
}
