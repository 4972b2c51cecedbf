// Copyright (c) 2026 Creata. All rights reserved.

package asset

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/creata-app/creata/internal/platform/database/schema"
	"github.com/creata-app/creata/internal/platform/dberr"
)

// # PostgreSQL Repository

// postgresRepository implements the [Repository] interface using pgx.
// Asset metadata is stored as JSONB; the related-asset edges live in a
// uuid array column since the graph needs no referential constraint.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed asset store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// assetColumns is the shared projection for every asset read.
func assetColumns() string {
	a := schema.CoreAsset
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		a.ID, a.AuthorID, a.WorkID, a.ParentID, a.Name, a.Type, a.Content,
		a.Metadata, a.RelatedAssets, a.IsReleaseUnit, a.ReleaseKind,
		a.PricingPlanID, a.CreatedAt, a.UpdatedAt,
	)
}

func (repository *postgresRepository) FindByID(context context.Context, id string) (*Asset, error) {
	a := schema.CoreAsset

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", assetColumns(), a.Table, a.ID)

	found, err := scanAsset(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_asset")
	}

	return found, nil
}

func (repository *postgresRepository) FindByIDs(context context.Context, ids []string) ([]*Asset, error) {
	if len(ids) == 0 {
		return []*Asset{}, nil
	}

	a := schema.CoreAsset

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ANY($1)", assetColumns(), a.Table, a.ID)

	rows, err := repository.pool.Query(context, query, ids)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list assets by ids: %w", err)
	}

	fetched, err := scanAssets(rows)
	if err != nil {
		return nil, err
	}

	// Preserve the caller's ordering; ANY() does not.
	byID := make(map[string]*Asset, len(fetched))
	for _, entry := range fetched {
		byID[entry.ID] = entry
	}

	ordered := make([]*Asset, 0, len(fetched))
	for _, id := range ids {
		if entry, ok := byID[id]; ok {
			ordered = append(ordered, entry)
		}
	}

	return ordered, nil
}

func (repository *postgresRepository) ListByWork(context context.Context, workID string) ([]*Asset, error) {
	a := schema.CoreAsset

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 ORDER BY %s", assetColumns(), a.Table, a.WorkID, a.CreatedAt)

	rows, err := repository.pool.Query(context, query, workID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list assets by work: %w", err)
	}

	return scanAssets(rows)
}

func (repository *postgresRepository) ListByAuthor(context context.Context, authorID string) ([]*Asset, error) {
	a := schema.CoreAsset

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC",
		assetColumns(), a.Table, a.AuthorID, a.CreatedAt)

	rows, err := repository.pool.Query(context, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list assets by author: %w", err)
	}

	return scanAssets(rows)
}

func (repository *postgresRepository) Search(context context.Context, query, authorID string) ([]*Asset, error) {
	a := schema.CoreAsset

	pattern := "%" + escapeLike(query) + "%"
	args := []any{pattern}

	authorClause := ""
	if authorID != "" {
		authorClause = fmt.Sprintf("AND %s = $2", a.AuthorID)
		args = append(args, authorID)
	}

	// Metadata tags live inside the JSONB document.
	sqlQuery := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE (
			%s ILIKE $1
			OR %s ILIKE $1
			OR EXISTS (
				SELECT 1
				FROM jsonb_array_elements_text(COALESCE(%s->'tags', '[]'::jsonb)) AS tag
				WHERE tag ILIKE $1
			)
		) %s
		ORDER BY %s DESC`,
		assetColumns(), a.Table,
		a.Name, a.Content, a.Metadata,
		authorClause, a.CreatedAt,
	)

	rows, err := repository.pool.Query(context, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to search assets: %w", err)
	}

	return scanAssets(rows)
}

func (repository *postgresRepository) Update(context context.Context, id string, patch Update) (*Asset, error) {
	a := schema.CoreAsset

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf("UPDATE %s SET %s = NOW()", a.Table, a.UpdatedAt))

	var args []any
	argID := 1

	appendSet := func(column string, value any) {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	if patch.Name != nil {
		appendSet(a.Name, *patch.Name)
	}
	if patch.Type != nil {
		appendSet(a.Type, *patch.Type)
	}
	if patch.WorkID != nil {
		appendSet(a.WorkID, *patch.WorkID)
	}
	if patch.ParentID != nil {
		appendSet(a.ParentID, *patch.ParentID)
	}
	if patch.Content != nil {
		appendSet(a.Content, *patch.Content)
	}
	if patch.Metadata != nil {
		metadataJSON, err := marshalMetadata(patch.Metadata)
		if err != nil {
			return nil, err
		}
		appendSet(a.Metadata, metadataJSON)
	}
	if patch.RelatedAssets != nil {
		appendSet(a.RelatedAssets, *patch.RelatedAssets)
	}
	if patch.IsReleaseUnit != nil {
		appendSet(a.IsReleaseUnit, *patch.IsReleaseUnit)
	}
	if patch.ReleaseKind != nil {
		appendSet(a.ReleaseKind, *patch.ReleaseKind)
	}
	if patch.PricingPlanID != nil {
		appendSet(a.PricingPlanID, *patch.PricingPlanID)
	}

	queryBuilder.WriteString(fmt.Sprintf(" WHERE %s = $%d", a.ID, argID))
	args = append(args, id)

	result, err := repository.pool.Exec(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("postgres: failed to update asset: %w", err), "update_asset")
	}

	if result.RowsAffected() == 0 {
		return nil, dberr.ErrNotFound
	}

	return repository.FindByID(context, id)
}

func (repository *postgresRepository) Upsert(context context.Context, asset *Asset) (bool, error) {
	a := schema.CoreAsset

	metadataJSON, err := marshalMetadata(asset.Metadata)
	if err != nil {
		return false, err
	}

	// xmax = 0 distinguishes a fresh insert from a conflict-update.
	query := fmt.Sprintf(`
		INSERT INTO %s (
			%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = NOW()
		RETURNING (xmax = 0) AS inserted`,
		a.Table,
		a.ID, a.AuthorID, a.WorkID, a.ParentID, a.Name, a.Type, a.Content,
		a.Metadata, a.RelatedAssets, a.IsReleaseUnit, a.ReleaseKind,
		a.PricingPlanID, a.CreatedAt, a.UpdatedAt,
		a.ID,
		a.WorkID, a.WorkID,
		a.ParentID, a.ParentID,
		a.Name, a.Name,
		a.Type, a.Type,
		a.Content, a.Content,
		a.Metadata, a.Metadata,
		a.RelatedAssets, a.RelatedAssets,
		a.IsReleaseUnit, a.IsReleaseUnit,
		a.ReleaseKind, a.ReleaseKind,
		a.PricingPlanID, a.PricingPlanID,
		a.UpdatedAt,
	)

	var inserted bool
	err = repository.pool.QueryRow(context, query,
		asset.ID,
		asset.AuthorID,
		asset.WorkID,
		asset.ParentID,
		asset.Name,
		asset.Type,
		asset.Content,
		metadataJSON,
		asset.RelatedAssets,
		asset.IsReleaseUnit,
		asset.ReleaseKind,
		asset.PricingPlanID,
		asset.CreatedAt,
		asset.UpdatedAt,
	).Scan(&inserted)
	if err != nil {
		return false, dberr.Wrap(fmt.Errorf("postgres: failed to upsert asset: %w", err), "upsert_asset")
	}

	return inserted, nil
}

func (repository *postgresRepository) Delete(context context.Context, id string) (bool, error) {
	a := schema.CoreAsset

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", a.Table, a.ID)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return false, fmt.Errorf("postgres: failed to delete asset: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// # Internal Helpers

func scanAssets(rows pgx.Rows) ([]*Asset, error) {
	defer rows.Close()

	var assets []*Asset
	for rows.Next() {
		entry, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: asset rows iteration failed: %w", err)
	}

	return assets, nil
}

func scanAsset(row pgx.Row) (*Asset, error) {
	entry := &Asset{}
	var metadataJSON []byte

	err := row.Scan(
		&entry.ID,
		&entry.AuthorID,
		&entry.WorkID,
		&entry.ParentID,
		&entry.Name,
		&entry.Type,
		&entry.Content,
		&metadataJSON,
		&entry.RelatedAssets,
		&entry.IsReleaseUnit,
		&entry.ReleaseKind,
		&entry.PricingPlanID,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(metadataJSON) > 0 {
		entry.Metadata = &Metadata{}
		if err := json.Unmarshal(metadataJSON, entry.Metadata); err != nil {
			return nil, fmt.Errorf("postgres: failed to unmarshal asset metadata: %w", err)
		}
	}

	return entry, nil
}

// escapeLike neutralizes LIKE wildcards in user supplied search terms.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}

func marshalMetadata(metadata *Metadata) ([]byte, error) {
	if metadata == nil {
		return nil, nil
	}

	payload, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to marshal asset metadata: %w", err)
	}

	return payload, nil
}
