package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/quotedesk/quotedesk/internal/domain"
	internal_errors "github.com/quotedesk/quotedesk/internal/errors"
)

const uniqueViolation = "23505"

// SaveUser inserts a new user and returns the stored record. Emails are
// stored lowercased; a duplicate maps to a client-facing 400.
func (s *Storage) SaveUser(user domain.User) (domain.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	user.Id = uuid.NewString()
	user.Email = strings.ToLower(user.Email)

	var saved domain.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		return insertUser(tx, user, &saved)
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "Email already exists", StatusCode: http.StatusBadRequest}
		}
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return saved, nil
}

func insertUser(db Querier, user domain.User, saved *domain.User) error {
	return db.QueryRow(`
        INSERT INTO users(id, name, email, password_hash, role)
        VALUES($1, $2, $3, $4, $5)
        RETURNING id, name, email, password_hash, role, created_at`,
		user.Id, user.Name, user.Email, user.PassHash, user.Role,
	).Scan(&saved.Id, &saved.Name, &saved.Email, &saved.PassHash, &saved.Role, &saved.CreatedAt)
}

// UserByEmail fetches a user by their login email (case-insensitive).
func (s *Storage) UserByEmail(email domain.Email) (domain.User, error) {
	return s.scanUser(s.db.QueryRow(
		"SELECT id, name, email, password_hash, role, created_at FROM users WHERE email = $1",
		strings.ToLower(email),
	))
}

// UserById fetches a user by id.
func (s *Storage) UserById(id domain.UserId) (domain.User, error) {
	return s.scanUser(s.db.QueryRow(
		"SELECT id, name, email, password_hash, role, created_at FROM users WHERE id = $1",
		id,
	))
}

func (s *Storage) scanUser(row *sql.Row) (domain.User, error) {
	var user domain.User
	err := row.Scan(&user.Id, &user.Name, &user.Email, &user.PassHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}
