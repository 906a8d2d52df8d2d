package store

import (
	"database/sql"

	"shopfront/models"
)

type Contacts struct {
	db *sql.DB
}

func NewContacts(db *sql.DB) *Contacts {
	return &Contacts{db: db}
}

func (s *Contacts) Create(name, email, topic, message string) (*models.Contact, error) {
	contact := models.Contact{
		Name:    name,
		Email:   email,
		Topic:   topic,
		Message: message,
	}

	err := s.db.QueryRow(`
		INSERT INTO contacts (name, email, topic, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, name, email, topic, message).Scan(&contact.ID, &contact.CreatedAt)

	if err != nil {
		return nil, err
	}

	return &contact, nil
}

// List returns every submission, newest first.
func (s *Contacts) List() ([]models.Contact, error) {
	rows, err := s.db.Query(`
		SELECT id, name, email, topic, message, created_at
		FROM contacts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Topic, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}

	return contacts, rows.Err()
}
