package store

import (
	"database/sql"
	"errors"

	"github.com/maisonbelle/maisonbelle-api/internal/models"
)

// ErrUserNotFound is returned when no user matches the given email.
var ErrUserNotFound = errors.New("user not found")

func (s *Store) CreateUser(u *models.User) error {
	result, err := s.DB.Exec(`
		INSERT INTO users (full_name, email, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		u.FullName, u.Email, u.PasswordHash, u.Role, u.CreatedAt)
	if err != nil {
		return err
	}

	u.ID, err = result.LastInsertId()
	return err
}

func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var u models.User
	err := s.DB.QueryRow(`
		SELECT id, full_name, email, password_hash, role, created_at
		FROM users WHERE email = ?`, email,
	).Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
