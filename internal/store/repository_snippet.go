package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mfadhilr/contekan/internal/logger"
	"github.com/mfadhilr/contekan/models"
)

// snippetRepository is the SQL-backed implementation of [SnippetRepository].
// It executes all contekan CRUD operations against the "contekans" table
// using the embedded [*DB] connection.
//
// The repository is where a snippet becomes "server-assigned": SaveSnippet
// generates the immutable ID and CreatedAt exactly once, at insert time.
type snippetRepository struct {
	*DB
	logger *logger.Logger
}

// NewSnippetRepository constructs a [SnippetRepository] backed by the
// provided database connection and logger.
func NewSnippetRepository(db *DB, logger *logger.Logger) SnippetRepository {
	return &snippetRepository{
		DB:     db,
		logger: logger,
	}
}

var snippetColumns = []string{
	"id",
	"title",
	"body",
	"description",
	"attachment",
	"owner_id",
	"owner_display_name",
	"created_at",
}

func scanSnippet(row interface{ Scan(dest ...any) error }) (models.Snippet, error) {
	var snippet models.Snippet
	var attachment models.Attachment

	err := row.Scan(
		&snippet.ID,
		&snippet.Title,
		&snippet.Body,
		&snippet.Description,
		&attachment,
		&snippet.OwnerID,
		&snippet.OwnerDisplayName,
		&snippet.CreatedAt,
	)
	if err != nil {
		return models.Snippet{}, err
	}

	if !attachment.IsEmpty() {
		snippet.Attachment = &attachment
	}

	return snippet, nil
}

func (s *snippetRepository) GetAllSnippets(ctx context.Context) ([]models.Snippet, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Select(snippetColumns...).
		From(models.Snippet{}.TableName()).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "snippetRepository.GetAllSnippets").
			Msg("failed to execute query for getting all snippets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Snippet, 0, 50)

	for rows.Next() {
		snippet, scanErr := scanSnippet(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "snippetRepository.GetAllSnippets").
				Msg("failed to scan snippet row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, snippet)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "snippetRepository.GetAllSnippets").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

func (s *snippetRepository) GetSnippet(ctx context.Context, id string) (models.Snippet, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Select(snippetColumns...).
		From(models.Snippet{}.TableName()).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return models.Snippet{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	snippet, scanErr := scanSnippet(s.DB.QueryRowContext(ctx, query, args...))
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Snippet{}, ErrSnippetNotFound
		}
		log.Err(scanErr).
			Str("func", "snippetRepository.GetSnippet").
			Str("id", id).
			Msg("failed to scan snippet row")
		return models.Snippet{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return snippet, nil
}

func (s *snippetRepository) SaveSnippet(ctx context.Context, snippet models.Snippet) (models.Snippet, error) {
	log := logger.FromContext(ctx)

	snippet.ID = uuid.NewString()
	snippet.CreatedAt = time.Now().UTC()

	query, args, err := s.builder.
		Insert(snippet.TableName()).
		Columns(snippetColumns...).
		Values(
			snippet.ID,
			snippet.Title,
			snippet.Body,
			snippet.Description,
			snippet.Attachment,
			snippet.OwnerID,
			snippet.OwnerDisplayName,
			snippet.CreatedAt,
		).
		ToSql()
	if err != nil {
		return models.Snippet{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "snippetRepository.SaveSnippet").
			Str("id", snippet.ID).
			Int64("owner_id", snippet.OwnerID).
			Msg("failed to execute insert for snippet")
		return models.Snippet{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return snippet, nil
}

func (s *snippetRepository) UpdateSnippet(ctx context.Context, id string, ownerID int64, req models.UpdateSnippetRequest) (models.Snippet, error) {
	log := logger.FromContext(ctx)

	update := s.builder.
		Update(models.Snippet{}.TableName()).
		Set("title", req.Title).
		Set("body", req.Body).
		Set("description", req.Description).
		Where("id = ? AND owner_id = ?", id, ownerID)

	// nil attachment means "keep the stored one"; owner identity and
	// created_at are never part of an update payload.
	if req.Attachment != nil {
		update = update.Set("attachment", req.Attachment)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return models.Snippet{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "snippetRepository.UpdateSnippet").
			Str("id", id).
			Int64("owner_id", ownerID).
			Msg("failed to execute update for snippet")
		return models.Snippet{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Snippet{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.Snippet{}, s.classifyMissingMutation(ctx, id)
	}

	return s.GetSnippet(ctx, id)
}

func (s *snippetRepository) DeleteSnippet(ctx context.Context, id string, ownerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Delete(models.Snippet{}.TableName()).
		Where("id = ? AND owner_id = ?", id, ownerID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "snippetRepository.DeleteSnippet").
			Str("id", id).
			Int64("owner_id", ownerID).
			Msg("failed to execute delete for snippet")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return s.classifyMissingMutation(ctx, id)
	}

	return nil
}

// classifyMissingMutation distinguishes "row does not exist" from "row
// belongs to someone else" after a mutation matched zero rows.
func (s *snippetRepository) classifyMissingMutation(ctx context.Context, id string) error {
	_, err := s.GetSnippet(ctx, id)
	switch {
	case err == nil:
		return ErrNotSnippetOwner
	case errors.Is(err, ErrSnippetNotFound):
		return ErrSnippetNotFound
	default:
		return err
	}
}
