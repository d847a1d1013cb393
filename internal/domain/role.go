package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role описывает роль пользователя
type Role struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}

func NewRole(name string, description string) *Role {
	return &Role{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
	}
}
