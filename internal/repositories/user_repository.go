package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"leadflow/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	const query = `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(query, user.Name, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("создание пользователя: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	const query = `
		SELECT id, name, email, password_hash, refresh_token, refresh_expires_at, created_at
		FROM users
		WHERE email = $1
	`
	return r.scanOne(r.db.QueryRow(query, email))
}

func (r *UserRepository) GetByID(id int) (*models.User, error) {
	const query = `
		SELECT id, name, email, password_hash, refresh_token, refresh_expires_at, created_at
		FROM users
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRow(query, id))
}

func (r *UserRepository) UpdateRefresh(id int, token string, expiresAt time.Time) error {
	const query = `UPDATE users SET refresh_token = $1, refresh_expires_at = $2 WHERE id = $3`
	_, err := r.db.Exec(query, token, expiresAt, id)
	return err
}

// RotateRefresh атомарно меняет старый refresh на новый.
// (nil, nil) — старый токен никому не принадлежит или истёк.
func (r *UserRepository) RotateRefresh(oldToken, newToken string, expiresAt time.Time) (*models.User, error) {
	const query = `
		UPDATE users SET refresh_token = $2, refresh_expires_at = $3
		WHERE refresh_token = $1 AND refresh_expires_at > now()
		RETURNING id, name, email, password_hash, refresh_token, refresh_expires_at, created_at
	`
	return r.scanOne(r.db.QueryRow(query, oldToken, newToken, expiresAt))
}

func (r *UserRepository) scanOne(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.RefreshToken, &user.RefreshExpiresAt, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("чтение пользователя: %w", err)
	}
	return user, nil
}
