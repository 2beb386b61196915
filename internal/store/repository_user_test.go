package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/mfadhilr/contekan/internal/logger"
	"github.com/mfadhilr/contekan/models"
)

var userTestColumns = []string{"user_id", "email", "name", "password_hash", "created_at"}

func newTestDB(t *testing.T, classifier ErrorClassificator) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	l := logger.Nop()
	wrapped := &DB{
		DB:                 db,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Question),
		errorClassificator: classifier,
		logger:             l,
	}
	return wrapped, mock, db
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	wrapped, mock, db := newTestDB(t, NewPostgresErrorClassifier())
	repo := &userRepository{
		DB:     wrapped,
		logger: logger.Nop(),
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func sqliteConstraintError() error {
	return sqlite3.Error{Code: sqlite3.ErrConstraint}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Email:        "budi@example.com",
		Name:         "Budi",
		PasswordHash: "hash",
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.Email, user.Name, user.PasswordHash, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be assigned on insert")
	}
}

func TestCreateUser_PostgresLastInsertIDFallback(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "budi@example.com", Name: "Budi", PasswordHash: "hash"}

	// pgx reports no LastInsertId, so the repository re-reads by email.
	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.Email, user.Name, user.PasswordHash, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewErrorResult(errors.New("LastInsertId is not supported by this driver")))

	now := time.Now().UTC()
	rows := sqlmock.NewRows(userTestColumns).
		AddRow(7, user.Email, user.Name, user.PasswordHash, now)
	mock.ExpectQuery("SELECT user_id").
		WithArgs(user.Email).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 7 {
		t.Errorf("expected UserID=7 from re-read, got %d", created.UserID)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, models.User{Email: "budi@example.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, models.User{Email: "budi@example.com"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected wrapped ErrExecutingQuery, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	rows := sqlmock.NewRows(userTestColumns).
		AddRow(1, "budi@example.com", "Budi", "hash", now)
	mock.ExpectQuery("SELECT user_id").
		WithArgs("budi@example.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(ctx, "budi@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != "budi@example.com" {
		t.Errorf("expected email budi@example.com, got %s", found.Email)
	}
	if found.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", found.UserID)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("budi@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(ctx, "budi@example.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByEmail_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"user_id"}).AddRow(1) // intentionally wrong shape
	mock.ExpectQuery("SELECT user_id").
		WithArgs("budi@example.com").
		WillReturnRows(rows)

	_, err := repo.FindUserByEmail(ctx, "budi@example.com")
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	rows := sqlmock.NewRows(userTestColumns).
		AddRow(42, "siti@example.com", "Siti", "hash", now)
	mock.ExpectQuery("SELECT user_id").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	found, err := repo.FindUserByID(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Name != "Siti" {
		t.Errorf("expected name Siti, got %s", found.Name)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(ctx, 42)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestSQLiteClassifier_UniqueViolation(t *testing.T) {
	classifier := NewSQLiteErrorClassifier()

	err := classifier.Classify(sqliteConstraintError())
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}

	plain := errors.New("disk I/O error")
	if got := classifier.Classify(plain); !errors.Is(got, plain) {
		t.Fatalf("expected passthrough of unrecognised error, got %v", got)
	}
}
