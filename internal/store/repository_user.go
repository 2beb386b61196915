package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mfadhilr/contekan/internal/logger"
	"github.com/mfadhilr/contekan/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It executes all account operations against the "users" table using the
// embedded [*DB] connection.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

func (u *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.CreatedAt = time.Now().UTC()

	query, args, err := u.builder.
		Insert(user.TableName()).
		Columns("email", "name", "password_hash", "created_at").
		Values(user.Email, user.Name, user.PasswordHash, user.CreatedAt).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	res, err := u.DB.ExecContext(ctx, query, args...)
	if err != nil {
		classified := u.errorClassificator.Classify(err)
		if !errors.Is(classified, ErrEmailAlreadyExists) {
			log.Err(err).
				Str("func", "userRepository.CreateUser").
				Str("email", user.Email).
				Msg("failed to execute insert for user")
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, classified)
	}

	userID, err := res.LastInsertId()
	if err != nil || userID == 0 {
		// Postgres does not report LastInsertId; re-read by unique email.
		created, findErr := u.FindUserByEmail(ctx, user.Email)
		if findErr != nil {
			return models.User{}, findErr
		}
		return created, nil
	}

	user.UserID = userID
	return user, nil
}

func (u *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := u.builder.
		Select("user_id", "email", "name", "password_hash", "created_at").
		From(models.User{}.TableName()).
		Where("email = ?", email).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var user models.User
	row := u.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(&user.UserID, &user.Email, &user.Name, &user.PasswordHash, &user.CreatedAt)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(scanErr).
			Str("func", "userRepository.FindUserByEmail").
			Str("email", email).
			Msg("failed to scan user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return user, nil
}

func (u *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := u.builder.
		Select("user_id", "email", "name", "password_hash", "created_at").
		From(models.User{}.TableName()).
		Where("user_id = ?", userID).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var user models.User
	row := u.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(&user.UserID, &user.Email, &user.Name, &user.PasswordHash, &user.CreatedAt)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(scanErr).
			Str("func", "userRepository.FindUserByID").
			Int64("user_id", userID).
			Msg("failed to scan user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return user, nil
}
