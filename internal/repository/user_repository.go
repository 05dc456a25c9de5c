package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/iliyamo/marina-berth-reservation/internal/utils"
)

// User mirrors the 'users' table.  The password is stored only as a
// bcrypt hash; plaintext never touches the database.
type User struct {
	ID           uint64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password and inserts the user, returning its ID.
func (r *UserRepo) Create(ctx context.Context, username, email, password string, cost int) (uint64, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash) VALUES (?,?,?)",
		username, email, hash)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUsername fetches a user by username.  sql.ErrNoRows is returned
// when the user does not exist.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	var u User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,email,password_hash,created_at FROM users WHERE username=? LIMIT 1",
		strings.TrimSpace(username)).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

// List returns all users ordered by username.
func (r *UserRepo) List(ctx context.Context) ([]User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,username,email,password_hash,created_at FROM users ORDER BY username")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	users := make([]User, 0)
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteByUsername removes a user and returns the deleted record so the
// handler can echo it back.  sql.ErrNoRows is returned when nothing
// matched.
func (r *UserRepo) DeleteByUsername(ctx context.Context, username string) (User, error) {
	u, err := r.GetByUsername(ctx, username)
	if err != nil {
		return User{}, err
	}
	res, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id=?", u.ID)
	if err != nil {
		return User{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return User{}, err
	}
	if n == 0 {
		return User{}, sql.ErrNoRows
	}
	return u, nil
}
