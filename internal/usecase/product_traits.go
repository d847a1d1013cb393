package usecase

import (
	"time"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/normalize"
	"github.com/google/uuid"
)

// ProductTraits реализует операции движка сверки для продукта.
// Сравнение покрывает все поля агрегата и вложенных объектов: строки —
// по ключу нормализации, числа, даты и идентификаторы — точно.
type ProductTraits struct{}

func NewProductTraits() ProductTraits {
	return ProductTraits{}
}

func (ProductTraits) ID(item domain.Product) uuid.UUID {
	return item.ID
}

func (ProductTraits) Created(item domain.Product) time.Time {
	return item.CreatedAt
}

func (ProductTraits) Equal(current, proposed domain.Product) bool {
	if !normalize.Equal(current.Name, proposed.Name) ||
		!normalize.Equal(current.Description, proposed.Description) ||
		current.Price != proposed.Price ||
		current.CategoryID != proposed.CategoryID {
		return false
	}

	return dimensionsEqual(current.Dimensions, proposed.Dimensions) &&
		assessmentEqual(current.Assessment, proposed.Assessment) &&
		attributesEqual(current.Attributes, proposed.Attributes) &&
		availabilityEqual(current.Availability, proposed.Availability) &&
		imageEqual(current.Image, proposed.Image)
}

func (ProductTraits) StampCreated(item domain.Product, at time.Time) domain.Product {
	item.CreatedAt = at
	item.UpdatedAt = nil
	item.DeletedAt = nil

	if item.Dimensions != nil {
		d := *item.Dimensions
		d.CreatedAt, d.UpdatedAt, d.DeletedAt = at, nil, nil
		item.Dimensions = &d
	}
	if item.Assessment != nil {
		a := *item.Assessment
		a.CreatedAt, a.UpdatedAt, a.DeletedAt = at, nil, nil
		item.Assessment = &a
	}
	if item.Attributes != nil {
		a := *item.Attributes
		a.CreatedAt, a.UpdatedAt, a.DeletedAt = at, nil, nil
		item.Attributes = &a
	}
	if item.Availability != nil {
		a := *item.Availability
		a.CreatedAt, a.UpdatedAt, a.DeletedAt = at, nil, nil
		item.Availability = &a
	}
	if item.Image != nil {
		img := *item.Image
		img.CreatedAt, img.UpdatedAt, img.DeletedAt = at, nil, nil
		item.Image = &img
	}

	return item
}

func (ProductTraits) StampRevised(item domain.Product, createdAt time.Time, updatedAt time.Time) domain.Product {
	item.CreatedAt = createdAt
	item.UpdatedAt = &updatedAt

	return item
}

// StampDeleted каскадно проставляет метку удаления всем непустым
// вложенным объектам продукта.
func (ProductTraits) StampDeleted(item domain.Product, at time.Time) domain.Product {
	item.DeletedAt = &at

	if item.Dimensions != nil {
		d := *item.Dimensions
		d.DeletedAt = &at
		item.Dimensions = &d
	}
	if item.Assessment != nil {
		a := *item.Assessment
		a.DeletedAt = &at
		item.Assessment = &a
	}
	if item.Attributes != nil {
		a := *item.Attributes
		a.DeletedAt = &at
		item.Attributes = &a
	}
	if item.Availability != nil {
		a := *item.Availability
		a.DeletedAt = &at
		item.Availability = &a
	}
	if item.Image != nil {
		img := *item.Image
		img.DeletedAt = &at
		item.Image = &img
	}

	return item
}

// Отсутствующий с обеих сторон вложенный объект считается равным:
// принудительное обновление на двух nil было бы ложной дельтой.

func dimensionsEqual(current, proposed *domain.Dimensions) bool {
	if current == nil || proposed == nil {
		return current == nil && proposed == nil
	}

	return current.Height == proposed.Height &&
		current.Width == proposed.Width &&
		current.Depth == proposed.Depth &&
		current.Weight == proposed.Weight &&
		normalize.Equal(current.Unit, proposed.Unit)
}

func assessmentEqual(current, proposed *domain.Assessment) bool {
	if current == nil || proposed == nil {
		return current == nil && proposed == nil
	}

	return current.Average == proposed.Average &&
		current.Count == proposed.Count &&
		current.RevisionID == proposed.RevisionID
}

func attributesEqual(current, proposed *domain.Attributes) bool {
	if current == nil || proposed == nil {
		return current == nil && proposed == nil
	}

	return normalize.Equal(current.Color, proposed.Color) &&
		normalize.Equal(current.Material, proposed.Material) &&
		normalize.Equal(current.Brand, proposed.Brand)
}

func availabilityEqual(current, proposed *domain.Availability) bool {
	if current == nil || proposed == nil {
		return current == nil && proposed == nil
	}

	return current.InStock == proposed.InStock &&
		timePtrEqual(current.RestockAt, proposed.RestockAt)
}

func imageEqual(current, proposed *domain.Image) bool {
	if current == nil || proposed == nil {
		return current == nil && proposed == nil
	}

	return normalize.Equal(current.URL, proposed.URL) &&
		normalize.Equal(current.AltText, proposed.AltText)
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Equal(*b)
}
