package store

import (
	"errors"

	"shopfront/models"
)

var (
	// ErrDuplicateEmail reports a violation of the users.email unique
	// constraint, the only concurrency control on registration.
	ErrDuplicateEmail = errors.New("email already registered")
	ErrNotFound       = errors.New("record not found")
)

type UserStore interface {
	Create(name, email, passwordHash, last4Digits, customerID string) (*models.User, error)
	GetByID(id int64) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

type ContactStore interface {
	Create(name, email, topic, message string) (*models.Contact, error)
	List() ([]models.Contact, error)
}
