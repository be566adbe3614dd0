package postgresql

import (
	"context"
	"fmt"

	"github.com/gta-labs/gta-backend-go/internal/domain/auth"
	"github.com/gta-labs/gta-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) auth.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByEmail implements auth.UserRepository.
func (u *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, email, password, role, employee_id, created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`

	var usr auth.User
	err := q.QueryRow(ctx, query, email).Scan(
		&usr.ID, &usr.Email, &usr.Password, &usr.Role, &usr.EmployeeID, &usr.CreatedAt, &usr.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return usr, nil
}

// GetByID implements auth.UserRepository.
func (u *userRepositoryImpl) GetByID(ctx context.Context, id string) (auth.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, email, password, role, employee_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var usr auth.User
	err := q.QueryRow(ctx, query, id).Scan(
		&usr.ID, &usr.Email, &usr.Password, &usr.Role, &usr.EmployeeID, &usr.CreatedAt, &usr.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return usr, nil
}

// ListAdminIDs implements auth.UserRepository.
func (u *userRepositoryImpl) ListAdminIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, u.db)

	query := `SELECT id FROM users WHERE role = $1`

	rows, err := q.Query(ctx, query, auth.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin user IDs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
