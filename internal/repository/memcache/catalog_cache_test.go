package memcache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-service/internal/cfg"
	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/memcache"
	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

type fakeProductSource struct {
	items []domain.Product
	err   error
	calls int
}

func (f *fakeProductSource) GetAll(context.Context) ([]domain.Product, error) {
	f.calls++
	return f.items, f.err
}

type fakeCategorySource struct {
	items []domain.Category
	calls int
}

func (f *fakeCategorySource) GetAll(context.Context) ([]domain.Category, error) {
	f.calls++
	return f.items, nil
}

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func testCfg() *cfg.CatalogCacheCfg {
	return &cfg.CatalogCacheCfg{
		AbsoluteTTL: 30 * time.Minute,
		SlidingTTL:  10 * time.Minute,
	}
}

func testProducts(categoryID uuid.UUID, n int) []domain.Product {
	products := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, domain.Product{
			ID:         uuid.New(),
			Name:       "product",
			CategoryID: categoryID,
			CreatedAt:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		})
	}
	return products
}

func newTestRepo(products *fakeProductSource, categories *fakeCategorySource) (*CatalogCacheRepo, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	store := memcache.NewWithClock(clock.now)
	return NewCatalogCacheRepo(store, products, categories, testCfg(), nopLogger{}), clock
}

func TestGetProducts_LazyPopulationLoadsOnce(t *testing.T) {
	source := &fakeProductSource{items: testProducts(uuid.New(), 3)}
	repo, _ := newTestRepo(source, &fakeCategorySource{})

	for i := 0; i < 3; i++ {
		got, err := repo.GetProducts(context.Background(), 1, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("got %d products, want 3", len(got))
		}
	}

	if source.calls != 1 {
		t.Errorf("source called %d times, want 1", source.calls)
	}
}

func TestGetProducts_EmptyStoreNotCached(t *testing.T) {
	source := &fakeProductSource{}
	repo, _ := newTestRepo(source, &fakeCategorySource{})

	for i := 0; i < 2; i++ {
		if _, err := repo.GetProducts(context.Background(), 1, 10); !errors.Is(err, e.ErrNoProducts) {
			t.Fatalf("got %v, want ErrNoProducts", err)
		}
	}

	// Пустой срез не кэшируется: каждый промах идёт в хранилище
	if source.calls != 2 {
		t.Errorf("source called %d times, want 2", source.calls)
	}
}

func TestGetProducts_SourceError(t *testing.T) {
	boom := errors.New("db down")
	repo, _ := newTestRepo(&fakeProductSource{err: boom}, &fakeCategorySource{})

	if _, err := repo.GetProducts(context.Background(), 1, 10); !errors.Is(err, boom) {
		t.Fatalf("got %v, want wrapped source error", err)
	}
}

func TestGetProducts_Pagination(t *testing.T) {
	source := &fakeProductSource{items: testProducts(uuid.New(), 5)}
	repo, _ := newTestRepo(source, &fakeCategorySource{})

	first, err := repo.GetProducts(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last, err := repo.GetProducts(context.Background(), 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != 2 || len(last) != 1 {
		t.Errorf("got pages of %d and %d, want 2 and 1", len(first), len(last))
	}
	if first[0].ID != source.items[0].ID || last[0].ID != source.items[4].ID {
		t.Error("page windows must preserve source order")
	}

	if _, err := repo.GetProducts(context.Background(), 4, 2); !errors.Is(err, e.ErrNoProducts) {
		t.Errorf("got %v, want ErrNoProducts for out-of-range page", err)
	}
}

func TestGetProductsByCategory_IndependentWindows(t *testing.T) {
	big := uuid.New()
	small := uuid.New()
	absent := uuid.New()

	items := append(testProducts(big, 5), testProducts(small, 2)...)
	repo, _ := newTestRepo(&fakeProductSource{items: items}, &fakeCategorySource{})

	groups, err := repo.GetProductsByCategory(context.Background(), 1, 3, []uuid.UUID{big, small, absent})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].CategoryID != big || len(groups[0].Products) != 3 {
		t.Errorf("big category window: got %d products, want 3", len(groups[0].Products))
	}
	if groups[1].CategoryID != small || len(groups[1].Products) != 2 {
		t.Errorf("small category window: got %d products, want 2", len(groups[1].Products))
	}

	// Вторая страница есть только у большой категории
	groups, err = repo.GetProductsByCategory(context.Background(), 2, 3, []uuid.UUID{big, small})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 1 || groups[0].CategoryID != big || len(groups[0].Products) != 2 {
		t.Errorf("second page must contain only the big category remainder")
	}
}

func TestGetProductsByCategory_NoMatches(t *testing.T) {
	repo, _ := newTestRepo(&fakeProductSource{items: testProducts(uuid.New(), 2)}, &fakeCategorySource{})

	if _, err := repo.GetProductsByCategory(context.Background(), 1, 10, []uuid.UUID{uuid.New()}); !errors.Is(err, e.ErrNoProducts) {
		t.Fatalf("got %v, want ErrNoProducts", err)
	}
}

func TestUpsertProducts_PatchesPopulatedSlot(t *testing.T) {
	categoryID := uuid.New()
	source := &fakeProductSource{items: testProducts(categoryID, 2)}
	repo, _ := newTestRepo(source, &fakeCategorySource{})

	if _, err := repo.GetProducts(context.Background(), 1, 10); err != nil {
		t.Fatalf("populate: %v", err)
	}

	renamed := source.items[0]
	renamed.Name = "renamed"
	added := domain.Product{ID: uuid.New(), Name: "new", CategoryID: categoryID}

	if err := repo.UpsertProducts(context.Background(), []domain.Product{renamed, added}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.GetProducts(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("read after patch: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d products, want 3", len(got))
	}
	if got[0].Name != "renamed" {
		t.Errorf("existing entry must be replaced in place, got name %q", got[0].Name)
	}
	if got[2].ID != added.ID {
		t.Errorf("new entry must be appended")
	}
	if source.calls != 1 {
		t.Errorf("patch must not invalidate the slot, source called %d times", source.calls)
	}
}

func TestUpsertProducts_SkipsDeletedState(t *testing.T) {
	source := &fakeProductSource{items: testProducts(uuid.New(), 1)}
	repo, _ := newTestRepo(source, &fakeCategorySource{})

	if _, err := repo.GetProducts(context.Background(), 1, 10); err != nil {
		t.Fatalf("populate: %v", err)
	}

	deletedAt := time.Now()
	tombstone := domain.Product{ID: uuid.New(), Name: "gone", DeletedAt: &deletedAt}

	if err := repo.UpsertProducts(context.Background(), []domain.Product{tombstone}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.GetProducts(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("read after patch: %v", err)
	}
	for _, product := range got {
		if product.ID == tombstone.ID {
			t.Error("deleted aggregate must not enter the slot via upsert")
		}
	}
}

func TestUpsertProducts_ColdSlotPopulates(t *testing.T) {
	source := &fakeProductSource{items: testProducts(uuid.New(), 1)}
	repo, _ := newTestRepo(source, &fakeCategorySource{})

	// Первая запись в холодный кэш заполняет слот из хранилища,
	// где свежая строка уже закоммичена
	if err := repo.UpsertProducts(context.Background(), source.items); err != nil {
		t.Fatalf("upsert on cold cache: %v", err)
	}
	if source.calls != 1 {
		t.Fatalf("source called %d times, want 1 on cold upsert", source.calls)
	}

	got, err := repo.GetProducts(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("read after cold upsert: %v", err)
	}
	if len(got) != 1 || got[0].ID != source.items[0].ID {
		t.Errorf("got %+v, want the committed product", got)
	}
	if source.calls != 1 {
		t.Errorf("source called %d times, want slot reused after cold upsert", source.calls)
	}
}

func TestUpsertProducts_RepeatedPatchKeepsSingleEntry(t *testing.T) {
	categoryID := uuid.New()
	source := &fakeProductSource{items: testProducts(categoryID, 1)}
	repo, _ := newTestRepo(source, &fakeCategorySource{})

	if _, err := repo.GetProducts(context.Background(), 1, 10); err != nil {
		t.Fatalf("populate: %v", err)
	}

	added := domain.Product{ID: uuid.New(), Name: "new", CategoryID: categoryID}
	for i := 0; i < 2; i++ {
		if err := repo.UpsertProducts(context.Background(), []domain.Product{added}); err != nil {
			t.Fatalf("upsert %d: %v", i, err)
		}
	}

	got, err := repo.GetProducts(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("read after patch: %v", err)
	}
	matches := 0
	for _, product := range got {
		if product.ID == added.ID {
			matches++
		}
	}
	if matches != 1 {
		t.Errorf("slot holds %d entries for one id, want 1", matches)
	}
	if len(got) != 2 {
		t.Errorf("got %d products, want 2", len(got))
	}
}

func TestCatalogPatch_EmptyInputRejected(t *testing.T) {
	repo, _ := newTestRepo(&fakeProductSource{}, &fakeCategorySource{})
	ctx := context.Background()

	if err := repo.UpsertProducts(ctx, nil); !errors.Is(err, e.ErrNoProducts) {
		t.Errorf("UpsertProducts(nil) = %v, want ErrNoProducts", err)
	}
	if err := repo.RemoveProducts(ctx, nil); !errors.Is(err, e.ErrNoProducts) {
		t.Errorf("RemoveProducts(nil) = %v, want ErrNoProducts", err)
	}
	if err := repo.UpsertCategories(ctx, nil); !errors.Is(err, e.ErrNoCategories) {
		t.Errorf("UpsertCategories(nil) = %v, want ErrNoCategories", err)
	}
	if err := repo.RemoveCategories(ctx, nil); !errors.Is(err, e.ErrNoCategories) {
		t.Errorf("RemoveCategories(nil) = %v, want ErrNoCategories", err)
	}
}

func TestRemoveProducts_PatchesPopulatedSlot(t *testing.T) {
	source := &fakeProductSource{items: testProducts(uuid.New(), 3)}
	repo, _ := newTestRepo(source, &fakeCategorySource{})

	if _, err := repo.GetProducts(context.Background(), 1, 10); err != nil {
		t.Fatalf("populate: %v", err)
	}

	if err := repo.RemoveProducts(context.Background(), source.items[:1]); err != nil {
		t.Fatalf("remove: %v", err)
	}

	got, err := repo.GetProducts(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("read after patch: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d products, want 2", len(got))
	}
	for _, product := range got {
		if product.ID == source.items[0].ID {
			t.Error("removed product must not survive in the slot")
		}
	}
}

func TestGetProducts_SlotExpiresAndRepopulates(t *testing.T) {
	source := &fakeProductSource{items: testProducts(uuid.New(), 1)}
	repo, clock := newTestRepo(source, &fakeCategorySource{})

	if _, err := repo.GetProducts(context.Background(), 1, 10); err != nil {
		t.Fatalf("populate: %v", err)
	}

	// Простой дольше скользящего окна вытесняет слот
	clock.advance(11 * time.Minute)
	if _, err := repo.GetProducts(context.Background(), 1, 10); err != nil {
		t.Fatalf("repopulate: %v", err)
	}
	if source.calls != 2 {
		t.Errorf("source called %d times, want 2 after sliding eviction", source.calls)
	}
}

func TestGetCategories_LazyPopulationAndPatch(t *testing.T) {
	categories := &fakeCategorySource{items: []domain.Category{
		{ID: uuid.New(), Name: "shoes"},
		{ID: uuid.New(), Name: "hats"},
	}}
	repo, _ := newTestRepo(&fakeProductSource{}, categories)

	got, err := repo.GetCategories(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("populate: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d categories, want 2", len(got))
	}

	renamed := categories.items[0]
	renamed.Name = "sneakers"
	if err := repo.UpsertCategories(context.Background(), []domain.Category{renamed}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.RemoveCategories(context.Background(), categories.items[1:]); err != nil {
		t.Fatalf("remove: %v", err)
	}

	got, err = repo.GetCategories(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("read after patch: %v", err)
	}
	if len(got) != 1 || got[0].Name != "sneakers" {
		t.Errorf("got %+v, want single renamed category", got)
	}
	if categories.calls != 1 {
		t.Errorf("source called %d times, want 1", categories.calls)
	}
}
