package domain

import (
	"time"

	"github.com/google/uuid"
)

// Permission описывает право доступа
type Permission struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}

func NewPermission(name string, description string) *Permission {
	return &Permission{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
	}
}
