package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/google/uuid"
)

var testErrs = ReconcileErrors{
	NotFound:      e.ErrCategoryNotFound,
	AlreadyExists: e.ErrCategoryExists,
}

func newTestReconciler(now time.Time) *Reconciler[domain.Category] {
	r := NewReconciler[domain.Category](NewCategoryTraits(), testErrs)
	r.now = func() time.Time { return now }
	return r
}

func testCategory(name string) domain.Category {
	return domain.Category{
		ID:   uuid.New(),
		Name: name,
	}
}

func TestReconcilerAdd_StampsCreation(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r := newTestReconciler(now)

	updated := now.Add(-time.Hour)
	input := testCategory("shoes")
	input.CreatedAt = now.Add(-24 * time.Hour)
	input.UpdatedAt = &updated
	input.DeletedAt = &updated

	out, err := r.Add(context.Background(), []domain.Category{input})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 1 {
		t.Fatalf("got %d items, want 1", len(out))
	}
	if !out[0].CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", out[0].CreatedAt, now)
	}
	if out[0].UpdatedAt != nil || out[0].DeletedAt != nil {
		t.Error("add must clear revision and deletion stamps")
	}
}

func TestReconcilerAdd_EmptyInput(t *testing.T) {
	r := newTestReconciler(time.Now())

	if _, err := r.Add(context.Background(), nil); !errors.Is(err, testErrs.NotFound) {
		t.Fatalf("got %v, want NotFound", err)
	}
}

func TestReconcilerUpdate_OnlyChangedSurvive(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r := newTestReconciler(now)

	same := testCategory("hats")
	same.CreatedAt = now.Add(-time.Hour)
	changed := testCategory("shoes")
	changed.CreatedAt = now.Add(-2 * time.Hour)

	proposedSame := same
	proposedChanged := changed
	proposedChanged.Name = "sneakers"

	ids := []uuid.UUID{same.ID, changed.ID}
	out, err := r.Update(context.Background(), ids,
		[]domain.Category{same, changed},
		[]domain.Category{proposedSame, proposedChanged})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 1 {
		t.Fatalf("got %d changed items, want 1", len(out))
	}
	if out[0].ID != changed.ID || out[0].Name != "sneakers" {
		t.Errorf("wrong survivor: %+v", out[0])
	}
}

func TestReconcilerUpdate_PreservesCreationStamp(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r := newTestReconciler(now)

	current := testCategory("shoes")
	current.CreatedAt = now.Add(-48 * time.Hour)

	proposed := current
	proposed.Name = "boots"
	proposed.CreatedAt = now // значение из запроса должно быть проигнорировано

	out, err := r.Update(context.Background(), []uuid.UUID{current.ID},
		[]domain.Category{current}, []domain.Category{proposed})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out[0].CreatedAt.Equal(current.CreatedAt) {
		t.Errorf("CreatedAt = %v, want preserved %v", out[0].CreatedAt, current.CreatedAt)
	}
	if out[0].UpdatedAt == nil || !out[0].UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %v, want %v", out[0].UpdatedAt, now)
	}
}

func TestReconcilerUpdate_NormalizationInsensitive(t *testing.T) {
	r := newTestReconciler(time.Now())

	current := testCategory("Shoes")
	proposed := current
	proposed.Name = "  shoes  " // совпадает после нормализации

	_, err := r.Update(context.Background(), []uuid.UUID{current.ID},
		[]domain.Category{current}, []domain.Category{proposed})
	if !errors.Is(err, testErrs.AlreadyExists) {
		t.Fatalf("got %v, want AlreadyExists for a normalization-only change", err)
	}
}

func TestReconcilerUpdate_EmptyDiffRejected(t *testing.T) {
	r := newTestReconciler(time.Now())

	current := testCategory("shoes")

	_, err := r.Update(context.Background(), []uuid.UUID{current.ID},
		[]domain.Category{current}, []domain.Category{current})
	if !errors.Is(err, testErrs.AlreadyExists) {
		t.Fatalf("got %v, want AlreadyExists for identical proposed state", err)
	}
}

func TestReconcilerUpdate_UnknownIDs(t *testing.T) {
	r := newTestReconciler(time.Now())

	_, err := r.Update(context.Background(), []uuid.UUID{uuid.New()}, nil, nil)
	if !errors.Is(err, testErrs.NotFound) {
		t.Fatalf("got %v, want NotFound", err)
	}
}

func TestReconcilerUpdate_StableRequestedOrder(t *testing.T) {
	now := time.Now()
	r := newTestReconciler(now)

	first := testCategory("a")
	second := testCategory("b")
	third := testCategory("c")

	proposed := []domain.Category{third, first, second}
	for i := range proposed {
		proposed[i].Description = "changed"
	}

	ids := []uuid.UUID{second.ID, third.ID, first.ID}
	out, err := r.Update(context.Background(), ids,
		[]domain.Category{first, second, third}, proposed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 3 {
		t.Fatalf("got %d items, want 3", len(out))
	}
	for i, id := range ids {
		if out[i].ID != id {
			t.Fatalf("result order must follow requested ids: pos %d got %s, want %s", i, out[i].ID, id)
		}
	}
}

func TestReconcilerDelete_StampsDeletion(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r := newTestReconciler(now)

	item := testCategory("shoes")
	out, err := r.Delete(context.Background(), []uuid.UUID{item.ID}, []domain.Category{item})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out[0].DeletedAt == nil || !out[0].DeletedAt.Equal(now) {
		t.Errorf("DeletedAt = %v, want %v", out[0].DeletedAt, now)
	}
}

func TestReconcilerDelete_NoMatches(t *testing.T) {
	r := newTestReconciler(time.Now())

	_, err := r.Delete(context.Background(), []uuid.UUID{uuid.New()}, []domain.Category{testCategory("shoes")})
	if !errors.Is(err, testErrs.NotFound) {
		t.Fatalf("got %v, want NotFound", err)
	}
}

func TestValidateIDs(t *testing.T) {
	tests := []struct {
		name    string
		ids     []uuid.UUID
		wantErr bool
	}{
		{name: "ok", ids: []uuid.UUID{uuid.New()}},
		{name: "empty set", ids: nil, wantErr: true},
		{name: "nil id", ids: []uuid.UUID{uuid.New(), uuid.Nil}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateIDs(tt.ids)
			if tt.wantErr && !errors.Is(err, e.ErrInvalidIDs) {
				t.Fatalf("got %v, want ErrInvalidIDs", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestReconcilerExists(t *testing.T) {
	r := newTestReconciler(time.Now())

	if err := r.Exists(false, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Exists(true, false); !errors.Is(err, testErrs.AlreadyExists) {
		t.Fatalf("got %v, want AlreadyExists on id collision", err)
	}
	if err := r.Exists(false, true); !errors.Is(err, testErrs.AlreadyExists) {
		t.Fatalf("got %v, want AlreadyExists on name collision", err)
	}
}

func TestReconcilerGetByIDs(t *testing.T) {
	r := newTestReconciler(time.Now())

	item := testCategory("shoes")
	got, err := r.GetByIDs([]uuid.UUID{item.ID}, []domain.Category{item})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != item.ID {
		t.Fatalf("got %+v, want the requested item", got)
	}

	if _, err := r.GetByIDs([]uuid.UUID{uuid.New()}, []domain.Category{item}); !errors.Is(err, testErrs.NotFound) {
		t.Fatalf("got %v, want NotFound", err)
	}
}

func TestReconcilerGetAll(t *testing.T) {
	r := newTestReconciler(time.Now())

	if _, err := r.GetAll(nil); !errors.Is(err, testErrs.NotFound) {
		t.Fatalf("got %v, want NotFound for empty collection", err)
	}

	items := []domain.Category{testCategory("shoes")}
	got, err := r.GetAll(items)
	if err != nil || len(got) != 1 {
		t.Fatalf("got (%v, %v), want the collection back", got, err)
	}
}
