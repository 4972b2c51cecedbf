// Copyright (c) 2026 Creata. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/creata-app/creata/internal/platform/database/schema"
	"github.com/creata-app/creata/internal/platform/dberr"
)

// # PostgreSQL User Repository

// postgresUserRepository implements the [UserRepository] interface using pgx.
type postgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository constructs a PostgreSQL backed user store.
func NewPostgresUserRepository(pool *pgxpool.Pool) UserRepository {
	return &postgresUserRepository{pool: pool}
}

// userColumns is the shared projection for every account read.
func userColumns() string {
	u := schema.AccountUser
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		u.ID, u.Name, u.Email, u.PasswordHash, u.AvatarURL, u.Bio,
		u.Role, u.ThemePreference, u.CreatedAt, u.UpdatedAt,
	)
}

func (repository *postgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	u := schema.AccountUser

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", userColumns(), u.Table, u.ID)

	return repository.findOne(context, query, id)
}

func (repository *postgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	u := schema.AccountUser

	query := fmt.Sprintf("SELECT %s FROM %s WHERE LOWER(%s) = LOWER($1)", userColumns(), u.Table, u.Email)

	return repository.findOne(context, query, email)
}

func (repository *postgresUserRepository) Create(context context.Context, user *User) error {
	u := schema.AccountUser

	query := fmt.Sprintf(`
		INSERT INTO %s (
			%s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		u.Table,
		u.ID, u.Name, u.Email, u.PasswordHash, u.AvatarURL, u.Bio,
		u.Role, u.ThemePreference, u.CreatedAt, u.UpdatedAt,
	)

	_, err := repository.pool.Exec(context, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.AvatarURL,
		user.Bio,
		user.Role,
		user.ThemePreference,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(fmt.Errorf("postgres: failed to create user: %w", err), "create_user")
	}

	return nil
}

func (repository *postgresUserRepository) UpdateProfile(context context.Context, id string, patch ProfileUpdate) (*User, error) {
	u := schema.AccountUser

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf("UPDATE %s SET %s = NOW()", u.Table, u.UpdatedAt))

	var args []any
	argID := 1

	appendSet := func(column string, value any) {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	if patch.Name != nil {
		appendSet(u.Name, *patch.Name)
	}
	if patch.AvatarURL != nil {
		appendSet(u.AvatarURL, *patch.AvatarURL)
	}
	if patch.Bio != nil {
		appendSet(u.Bio, *patch.Bio)
	}
	if patch.ThemePreference != nil {
		appendSet(u.ThemePreference, *patch.ThemePreference)
	}

	queryBuilder.WriteString(fmt.Sprintf(" WHERE %s = $%d", u.ID, argID))
	args = append(args, id)

	result, err := repository.pool.Exec(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("postgres: failed to update profile: %w", err), "update_profile")
	}

	if result.RowsAffected() == 0 {
		return nil, dberr.ErrNotFound
	}

	return repository.FindByID(context, id)
}

func (repository *postgresUserRepository) UpdatePassword(context context.Context, id, passwordHash string) error {
	u := schema.AccountUser

	query := fmt.Sprintf("UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2", u.Table, u.PasswordHash, u.UpdatedAt, u.ID)

	result, err := repository.pool.Exec(context, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to update password: %w", err)
	}

	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *postgresUserRepository) List(context context.Context, limit, offset int) ([]*User, int, error) {
	u := schema.AccountUser

	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2`,
		userColumns(), u.Table, u.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*User
	var totalCount int

	for rows.Next() {
		user := &User{}
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.AvatarURL,
			&user.Bio,
			&user.Role,
			&user.ThemePreference,
			&user.CreatedAt,
			&user.UpdatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres: user rows iteration failed: %w", err)
	}

	return users, totalCount, nil
}

func (repository *postgresUserRepository) Delete(context context.Context, id string) (bool, error) {
	u := schema.AccountUser

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", u.Table, u.ID)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return false, fmt.Errorf("postgres: failed to delete user: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// findOne executes a single-row userColumns query.
func (repository *postgresUserRepository) findOne(context context.Context, query string, key any) (*User, error) {
	user := &User{}

	err := repository.pool.QueryRow(context, query, key).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.AvatarURL,
		&user.Bio,
		&user.Role,
		&user.ThemePreference,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_user")
	}

	return user, nil
}
