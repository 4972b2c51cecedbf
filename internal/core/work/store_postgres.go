// Copyright (c) 2026 Creata. All rights reserved.

/*
Package work provides the PostgreSQL implementation for the catalogue's data access.

It utilizes advanced Postgres features to deliver a high-performance discovery experience:
  - Window Functions: Calculates total result counts without requiring a separate 'COUNT' query.
  - Correlated Sub-queries: Resolves per-viewer like flags and attached asset IDs in a single round-trip.
  - ACID Transactions: Guarantees that the like counter and the favorite row always move together.
*/
package work

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/creata-app/creata/internal/platform/database/schema"
	"github.com/creata-app/creata/internal/platform/dberr"
)

// # PostgreSQL Repository

// postgresRepository implements the [Repository] interface using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed work store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// selectColumns builds the shared projection used by every read query.
//
// Argument $1 is always the viewer ID so the per-viewer like flag can be
// resolved inline. An empty viewer ID never matches a favorite row.
func selectColumns() string {
	w := schema.CoreWork
	f := schema.SocialFavorite
	a := schema.CoreAsset

	return fmt.Sprintf(`
		w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s,
		w.%s, w.%s, w.%s, w.%s, w.%s, w.%s,
		COUNT(*) OVER() AS total_count,
		EXISTS(
			SELECT 1 FROM %s f
			WHERE f.%s = w.%s AND f.%s = $1
		) AS is_liked,
		COALESCE((
			SELECT array_agg(a.%s ORDER BY a.%s)
			FROM %s a
			WHERE a.%s = w.%s
		), '{}') AS asset_ids`,
		w.ID, w.Title, w.Slug, w.AuthorID, w.Author, w.Description, w.Content, w.CoverURL,
		w.Status, w.Type, w.Tags, w.LikesCount, w.CreatedAt, w.UpdatedAt,
		f.Table,
		f.WorkID, w.ID, f.UserID,
		a.ID, a.CreatedAt,
		a.Table,
		a.WorkID, w.ID,
	)
}

// scanWorks drains a result set produced by a selectColumns query.
func scanWorks(rows pgx.Rows) ([]*Work, int, error) {
	defer rows.Close()

	var works []*Work
	var totalCount int

	for rows.Next() {
		work := &Work{}
		err := rows.Scan(
			&work.ID,
			&work.Title,
			&work.Slug,
			&work.AuthorID,
			&work.Author,
			&work.Description,
			&work.Content,
			&work.CoverURL,
			&work.Status,
			&work.Type,
			&work.Tags,
			&work.LikesCount,
			&work.CreatedAt,
			&work.UpdatedAt,
			&totalCount,
			&work.IsLiked,
			&work.AssetIDs,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan work: %w", err)
		}
		works = append(works, work)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres: work rows iteration failed: %w", err)
	}

	return works, totalCount, nil
}

// # Read Operations

func (repository *postgresRepository) ListTrending(context context.Context, viewerID string, limit, offset int) ([]*Work, int, error) {
	w := schema.CoreWork

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s w
		WHERE w.%s = $2
		ORDER BY w.%s DESC, w.%s DESC
		LIMIT $3 OFFSET $4`,
		selectColumns(),
		w.Table,
		w.Status,
		w.LikesCount, w.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, viewerID, StatusPublished, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list trending works: %w", err)
	}

	return scanWorks(rows)
}

func (repository *postgresRepository) Search(context context.Context, query, viewerID string, limit, offset int) ([]*Work, int, error) {
	w := schema.CoreWork

	// ILIKE substring match over title, description, and tag values.
	// An exact ID hit is included so pasting an identifier into the search
	// box resolves directly.
	sqlQuery := fmt.Sprintf(`
		SELECT %s
		FROM %s w
		WHERE w.%s = $2
		  AND (
			w.%s::text = $3
			OR w.%s ILIKE $4
			OR w.%s ILIKE $4
			OR EXISTS (SELECT 1 FROM unnest(w.%s) tag WHERE tag ILIKE $4)
		  )
		ORDER BY w.%s DESC
		LIMIT $5 OFFSET $6`,
		selectColumns(),
		w.Table,
		w.Status,
		w.ID,
		w.Title,
		w.Description,
		w.Tags,
		w.CreatedAt,
	)

	pattern := "%" + escapeLike(query) + "%"

	rows, err := repository.pool.Query(context, sqlQuery, viewerID, StatusPublished, query, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to search works: %w", err)
	}

	return scanWorks(rows)
}

func (repository *postgresRepository) FindByID(context context.Context, id, viewerID string) (*Work, error) {
	w := schema.CoreWork

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s w
		WHERE w.%s = $2`,
		selectColumns(),
		w.Table,
		w.ID,
	)

	return repository.findOne(context, query, viewerID, id)
}

func (repository *postgresRepository) FindBySlug(context context.Context, slug, viewerID string) (*Work, error) {
	w := schema.CoreWork

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s w
		WHERE w.%s = $2`,
		selectColumns(),
		w.Table,
		w.Slug,
	)

	return repository.findOne(context, query, viewerID, slug)
}

func (repository *postgresRepository) ListByAuthor(context context.Context, authorID, viewerID string, limit, offset int) ([]*Work, int, error) {
	w := schema.CoreWork

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s w
		WHERE w.%s = $2
		ORDER BY w.%s DESC
		LIMIT $3 OFFSET $4`,
		selectColumns(),
		w.Table,
		w.AuthorID,
		w.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, viewerID, authorID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list works by author: %w", err)
	}

	return scanWorks(rows)
}

func (repository *postgresRepository) ListFavorites(context context.Context, viewerID string, limit, offset int) ([]*Work, int, error) {
	w := schema.CoreWork
	f := schema.SocialFavorite

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s w
		JOIN %s fav ON fav.%s = w.%s
		WHERE fav.%s = $1
		ORDER BY fav.%s DESC
		LIMIT $2 OFFSET $3`,
		selectColumns(),
		w.Table,
		f.Table, f.WorkID, w.ID,
		f.UserID,
		f.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, viewerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list favorite works: %w", err)
	}

	return scanWorks(rows)
}

// # Write Operations

func (repository *postgresRepository) Create(context context.Context, work *Work) error {
	w := schema.CoreWork

	query := fmt.Sprintf(`
		INSERT INTO %s (
			%s, %s, %s, %s, %s, %s, %s, %s,
			%s, %s, %s, %s, %s, %s
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		w.Table,
		w.ID, w.Title, w.Slug, w.AuthorID, w.Author, w.Description, w.Content, w.CoverURL,
		w.Status, w.Type, w.Tags, w.LikesCount, w.CreatedAt, w.UpdatedAt,
	)

	_, err := repository.pool.Exec(context, query,
		work.ID,
		work.Title,
		work.Slug,
		work.AuthorID,
		work.Author,
		work.Description,
		work.Content,
		work.CoverURL,
		work.Status,
		work.Type,
		work.Tags,
		work.LikesCount,
		work.CreatedAt,
		work.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(fmt.Errorf("postgres: failed to create work: %w", err), "create_work")
	}

	return nil
}

func (repository *postgresRepository) Update(context context.Context, id string, patch Update) (*Work, error) {
	w := schema.CoreWork

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf("UPDATE %s SET %s = NOW()", w.Table, w.UpdatedAt))

	var args []any
	argID := 1

	appendSet := func(column string, value any) {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	// Only fields present in the patch touch their columns.
	if patch.Title != nil {
		appendSet(w.Title, *patch.Title)
	}
	if patch.Description != nil {
		appendSet(w.Description, *patch.Description)
	}
	if patch.Content != nil {
		appendSet(w.Content, *patch.Content)
	}
	if patch.CoverURL != nil {
		appendSet(w.CoverURL, *patch.CoverURL)
	}
	if patch.Status != nil {
		appendSet(w.Status, *patch.Status)
	}
	if patch.Type != nil {
		appendSet(w.Type, *patch.Type)
	}
	if patch.Tags != nil {
		appendSet(w.Tags, *patch.Tags)
	}

	queryBuilder.WriteString(fmt.Sprintf(" WHERE %s = $%d", w.ID, argID))
	args = append(args, id)

	result, err := repository.pool.Exec(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("postgres: failed to update work: %w", err), "update_work")
	}

	if result.RowsAffected() == 0 {
		return nil, dberr.ErrNotFound
	}

	return repository.FindByID(context, id, "")
}

func (repository *postgresRepository) Delete(context context.Context, id string) (bool, error) {
	w := schema.CoreWork

	// Favorite rows are removed by the ON DELETE CASCADE constraint.
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", w.Table, w.ID)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return false, fmt.Errorf("postgres: failed to delete work: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (repository *postgresRepository) ToggleLike(context context.Context, workID, viewerID string) (bool, int, error) {
	w := schema.CoreWork
	f := schema.SocialFavorite

	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return false, 0, fmt.Errorf("postgres: failed to begin like transaction: %w", err)
	}
	defer transaction.Rollback(context)

	// Lock the work row so concurrent toggles serialize on the counter.
	var likesCount int
	lockQuery := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 FOR UPDATE", w.LikesCount, w.Table, w.ID)
	if err := transaction.QueryRow(context, lockQuery, workID).Scan(&likesCount); err != nil {
		return false, 0, dberr.Wrap(err, "toggle_like")
	}

	// Attempt to remove an existing favorite first.
	deleteQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1 AND %s = $2", f.Table, f.WorkID, f.UserID)
	deleteResult, err := transaction.Exec(context, deleteQuery, workID, viewerID)
	if err != nil {
		return false, 0, fmt.Errorf("postgres: failed to remove favorite: %w", err)
	}

	liked := deleteResult.RowsAffected() == 0
	delta := -1

	if liked {
		insertQuery := fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, NOW())", f.Table, f.WorkID, f.UserID, f.CreatedAt)
		if _, err := transaction.Exec(context, insertQuery, workID, viewerID); err != nil {
			return false, 0, fmt.Errorf("postgres: failed to insert favorite: %w", err)
		}
		delta = 1
	}

	// Counter and favorite row move inside the same transaction.
	updateQuery := fmt.Sprintf("UPDATE %s SET %s = %s + $1 WHERE %s = $2 RETURNING %s", w.Table, w.LikesCount, w.LikesCount, w.ID, w.LikesCount)
	if err := transaction.QueryRow(context, updateQuery, delta, workID).Scan(&likesCount); err != nil {
		return false, 0, fmt.Errorf("postgres: failed to update like count: %w", err)
	}

	if err := transaction.Commit(context); err != nil {
		return false, 0, fmt.Errorf("postgres: failed to commit like transaction: %w", err)
	}

	return liked, likesCount, nil
}

// # Internal Helpers

// findOne executes a single-row selectColumns query.
func (repository *postgresRepository) findOne(context context.Context, query, viewerID string, key any) (*Work, error) {
	work := &Work{}
	var totalCount int

	err := repository.pool.QueryRow(context, query, viewerID, key).Scan(
		&work.ID,
		&work.Title,
		&work.Slug,
		&work.AuthorID,
		&work.Author,
		&work.Description,
		&work.Content,
		&work.CoverURL,
		&work.Status,
		&work.Type,
		&work.Tags,
		&work.LikesCount,
		&work.CreatedAt,
		&work.UpdatedAt,
		&totalCount,
		&work.IsLiked,
		&work.AssetIDs,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_work")
	}

	return work, nil
}

// escapeLike neutralizes LIKE wildcards inside a user-supplied search term.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}
