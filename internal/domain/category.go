package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category описывает категорию продукта
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}

func NewCategory(name string, description string) *Category {
	return &Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
	}
}
