package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jobify-dev/jobs-api/models"
)

const userColumns = `id, email, name, last_name, location, password_hash, test_user, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }, u *models.User) error {
	return row.Scan(&u.ID, &u.Email, &u.Name, &u.LastName, &u.Location, &u.PasswordHash, &u.TestUser, &u.CreatedAt, &u.UpdatedAt)
}

// CreateUser inserts a new user into the database after hashing the password.
func (s *PostgresStore) CreateUser(ctx context.Context, u *models.User, password string) error {
	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}

	u.ID = uuid.NewString()
	u.Email = strings.ToLower(u.Email)
	u.PasswordHash = hashed
	u.ApplyDefaults()

	query := `INSERT INTO users (id, email, name, last_name, location, password_hash, test_user)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at, updated_at`
	err = s.db.QueryRowContext(ctx, query, u.ID, u.Email, u.Name, u.LastName, u.Location, u.PasswordHash, u.TestUser).
		Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("error inserting user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	if err := scanUser(s.db.QueryRowContext(ctx, query, strings.ToLower(email)), &u); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}
	return &u, nil
}

// GetUserByID retrieves a user by id.
func (s *PostgresStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	var u models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	if err := scanUser(s.db.QueryRowContext(ctx, query, id), &u); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting user by id: %w", err)
	}
	return &u, nil
}

// UpdateUser overwrites email, name, last name and location.
func (s *PostgresStore) UpdateUser(ctx context.Context, u *models.User) error {
	u.Email = strings.ToLower(u.Email)
	query := `UPDATE users SET email = $1, name = $2, last_name = $3, location = $4, updated_at = NOW()
		WHERE id = $5 RETURNING updated_at`
	err := s.db.QueryRowContext(ctx, query, u.Email, u.Name, u.LastName, u.Location, u.ID).Scan(&u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return wrapNoRows(err, "error updating user")
	}
	return nil
}
