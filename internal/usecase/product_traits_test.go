package usecase

import (
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/google/uuid"
)

func testProduct() domain.Product {
	return domain.Product{
		ID:          uuid.New(),
		Name:        "Кроссовки",
		Description: "беговые",
		Price:       599_99,
		CategoryID:  uuid.New(),
		Dimensions: &domain.Dimensions{
			ID:     uuid.New(),
			Height: 12,
			Width:  30,
			Depth:  20,
			Weight: 0.4,
			Unit:   "cm",
		},
		Attributes: &domain.Attributes{
			ID:    uuid.New(),
			Color: "white",
			Brand: "acme",
		},
	}
}

func TestProductEqual_BothNilSatellites(t *testing.T) {
	traits := NewProductTraits()

	current := testProduct()
	current.Dimensions = nil
	current.Attributes = nil

	proposed := current

	if !traits.Equal(current, proposed) {
		t.Error("products with both satellites nil must be equal")
	}
}

func TestProductEqual_OneSidedSatellite(t *testing.T) {
	traits := NewProductTraits()

	current := testProduct()
	proposed := current
	proposed.Dimensions = nil

	if traits.Equal(current, proposed) {
		t.Error("dropping a satellite is a change")
	}
}

func TestProductEqual_NormalizationInsensitiveStrings(t *testing.T) {
	traits := NewProductTraits()

	current := testProduct()
	proposed := current
	proposed.Name = "  КРОССОВКИ  "
	attrs := *current.Attributes
	attrs.Color = "WHITE"
	proposed.Attributes = &attrs

	if !traits.Equal(current, proposed) {
		t.Error("string fields must compare through the normalization key")
	}
}

func TestProductEqual_SatelliteFieldChange(t *testing.T) {
	traits := NewProductTraits()

	current := testProduct()
	proposed := current
	dims := *current.Dimensions
	dims.Weight = 0.5
	proposed.Dimensions = &dims

	if traits.Equal(current, proposed) {
		t.Error("satellite field change must produce a delta")
	}
}

func TestProductEqual_PriceChange(t *testing.T) {
	traits := NewProductTraits()

	current := testProduct()
	proposed := current
	proposed.Price = current.Price + 1

	if traits.Equal(current, proposed) {
		t.Error("price is compared exactly")
	}
}

func TestProductStampCreated_Cascades(t *testing.T) {
	traits := NewProductTraits()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	stale := now.Add(-time.Hour)
	input := testProduct()
	input.UpdatedAt = &stale
	input.Dimensions.DeletedAt = &stale

	out := traits.StampCreated(input, now)

	if !out.CreatedAt.Equal(now) || out.UpdatedAt != nil || out.DeletedAt != nil {
		t.Error("root stamps must be reset on create")
	}
	if !out.Dimensions.CreatedAt.Equal(now) || out.Dimensions.DeletedAt != nil {
		t.Error("satellite stamps must be reset on create")
	}
	if input.Dimensions.DeletedAt == nil {
		t.Error("stamping must not mutate the caller's satellite")
	}
}

func TestProductStampDeleted_Cascades(t *testing.T) {
	traits := NewProductTraits()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	input := testProduct()
	out := traits.StampDeleted(input, now)

	if out.DeletedAt == nil || !out.DeletedAt.Equal(now) {
		t.Fatal("root deletion stamp missing")
	}
	if out.Dimensions.DeletedAt == nil || !out.Dimensions.DeletedAt.Equal(now) {
		t.Error("dimensions must be stamped with the same deletion time")
	}
	if out.Attributes.DeletedAt == nil || !out.Attributes.DeletedAt.Equal(now) {
		t.Error("attributes must be stamped with the same deletion time")
	}
	if input.Dimensions.DeletedAt != nil {
		t.Error("stamping must not mutate the caller's satellite")
	}
}

func TestProductStampRevised_KeepsCreation(t *testing.T) {
	traits := NewProductTraits()

	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	revised := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	out := traits.StampRevised(testProduct(), created, revised)

	if !out.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", out.CreatedAt, created)
	}
	if out.UpdatedAt == nil || !out.UpdatedAt.Equal(revised) {
		t.Errorf("UpdatedAt = %v, want %v", out.UpdatedAt, revised)
	}
}
