package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/enlist-app/enlist-backend/internal/models"
)

var (
	// ErrDuplicateEmail means the email column's unique constraint rejected an insert.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicatePhone means the phone column's unique constraint rejected an insert.
	ErrDuplicatePhone = errors.New("phone number already registered")
)

// pq unique_violation
const uniqueViolationCode = "23505"

// UserStore reads and writes the users table.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// FindByEmail returns the user with the given email, or nil when none exists.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, `SELECT id, full_name, email, password, phone FROM users WHERE email = $1`, email)
}

// FindByPhone returns the user with the given phone, or nil when none exists.
func (s *UserStore) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	return s.findOne(ctx, `SELECT id, full_name, email, password, phone FROM users WHERE phone = $1`, phone)
}

// FindByID returns the user with the given id, or nil when none exists.
func (s *UserStore) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return s.findOne(ctx, `SELECT id, full_name, email, password, phone FROM users WHERE id = $1`, id)
}

func (s *UserStore) findOne(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.FullName, &u.Email, &u.Password, &u.Phone)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user and returns the assigned id. When a concurrent
// registration wins the race past the pre-insert checks, the unique
// constraint fires here and is reported as ErrDuplicateEmail/ErrDuplicatePhone.
func (s *UserStore) Create(ctx context.Context, u *models.User) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (full_name, email, password, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, u.FullName, u.Email, u.Password, u.Phone).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			switch pqErr.Constraint {
			case "users_phone_key":
				return 0, ErrDuplicatePhone
			default:
				return 0, ErrDuplicateEmail
			}
		}
		return 0, err
	}
	return id, nil
}
