package store

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"shopfront/models"
)

type Users struct {
	db *sql.DB
}

func NewUsers(db *sql.DB) *Users {
	return &Users{db: db}
}

func (s *Users) Create(name, email, passwordHash, last4Digits, customerID string) (*models.User, error) {
	user := models.User{
		Name:             name,
		Email:            email,
		PasswordHash:     passwordHash,
		Last4Digits:      last4Digits,
		StripeCustomerID: customerID,
	}

	err := s.db.QueryRow(`
		INSERT INTO users (name, email, password_hash, last_4_digits, stripe_customer_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, name, email, passwordHash, last4Digits, customerID).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return &user, nil
}

func (s *Users) GetByID(id int64) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(`
		SELECT id, name, email, password_hash, last_4_digits, stripe_customer_id, created_at
		FROM users WHERE id = $1
	`, id).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Last4Digits, &user.StripeCustomerID, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *Users) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(`
		SELECT id, name, email, password_hash, last_4_digits, stripe_customer_id, created_at
		FROM users WHERE email = $1
	`, email).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Last4Digits, &user.StripeCustomerID, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return &user, nil
}
