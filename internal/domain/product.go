package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product описывает продукт каталога вместе с его вложенными объектами.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       int64 // Цена хранится в копейках
	CategoryID  uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time

	Dimensions   *Dimensions
	Assessment   *Assessment
	Attributes   *Attributes
	Availability *Availability
	Image        *Image
}

// Dimensions описывает габариты продукта.
type Dimensions struct {
	ID        uuid.UUID
	Height    float64
	Width     float64
	Depth     float64
	Weight    float64
	Unit      string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

// Assessment описывает сводную оценку продукта и её ревизии.
type Assessment struct {
	ID         uuid.UUID
	Average    float64
	Count      int32
	RevisionID uuid.UUID
	Revisions  []AssessmentRevision
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
}

// AssessmentRevision — одна ревизия оценки продукта.
type AssessmentRevision struct {
	ID           uuid.UUID
	AssessmentID uuid.UUID
	Rating       int32
	Comment      string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
}

// Attributes описывает товарные атрибуты продукта.
type Attributes struct {
	ID        uuid.UUID
	Color     string
	Material  string
	Brand     string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

// Availability описывает доступность продукта на складе.
type Availability struct {
	ID        uuid.UUID
	InStock   bool
	RestockAt *time.Time
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

// Image описывает изображение продукта.
type Image struct {
	ID        uuid.UUID
	URL       string
	AltText   string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

func NewProduct(name string, description string, price int64, categoryID uuid.UUID) *Product {
	return &Product{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		CategoryID:  categoryID,
	}
}
