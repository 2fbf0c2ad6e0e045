package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NormalizeEmail validates the address shape and returns it trimmed and
// lowercased. Uniqueness checks elsewhere rely on this normalization.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmailIsRequired
	}
	if !emailRegex.MatchString(email) {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(email), nil
}

type Customer struct {
	id        string
	name      string
	email     string
	phone     string
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(name, email, phone string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameIsRequired
	}

	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Customer{
		id:        uuid.NewString(),
		name:      name,
		email:     normalized,
		phone:     phone,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// RestoreCustomer rebuilds a customer from storage without re-running
// creation-time validation.
func RestoreCustomer(id, name, email, phone string, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Customer) Update(name, email, phone string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	normalized, err := NormalizeEmail(email)
	if err != nil {
		return err
	}

	c.name = name
	c.email = normalized
	c.phone = phone
	c.updatedAt = time.Now().UTC()
	return nil
}

func (c *Customer) ID() string           { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }
