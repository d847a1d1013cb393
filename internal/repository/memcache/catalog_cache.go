// Package memcache реализует координатор процессного кэша каталога.
// Полный срез продуктов и категорий живёт в двух слотах; успешные записи
// точечно патчат слоты вместо полной инвалидации.
package memcache

import (
	"context"
	"sync"

	"github.com/DRSN-tech/catalog-service/internal/cfg"
	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/DRSN-tech/catalog-service/pkg/memcache"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
)

const (
	productsSlotKey   = "catalog:products"
	categoriesSlotKey = "catalog:categories"
)

// ProductSource — источник полного среза продуктов для ленивого
// заполнения слота.
type ProductSource interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
}

type CategorySource interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
}

// productSlot держит опубликованный срез. Срез после публикации
// неизменяем: патчи собирают копию и подменяют ссылку под мьютексом.
type productSlot struct {
	mu    sync.RWMutex
	items []domain.Product
}

type categorySlot struct {
	mu    sync.RWMutex
	items []domain.Category
}

// CatalogCacheRepo — координатор кэша каталога поверх memcache.Cache.
// Чтение при промахе лениво заполняет слот из источника; пустой срез
// источника не кэшируется.
type CatalogCacheRepo struct {
	store      *memcache.Cache
	products   ProductSource
	categories CategorySource
	cfg        *cfg.CatalogCacheCfg
	logger     logger.Logger

	// populateMu сериализует заполнение слотов, чтобы промах под
	// нагрузкой не превратился в шквал одинаковых запросов к хранилищу.
	populateMu sync.Mutex
}

func NewCatalogCacheRepo(store *memcache.Cache, products ProductSource,
	categories CategorySource, cfg *cfg.CatalogCacheCfg, logger logger.Logger) *CatalogCacheRepo {
	return &CatalogCacheRepo{
		store:      store,
		products:   products,
		categories: categories,
		cfg:        cfg,
		logger:     logger,
	}
}

// GetProducts возвращает страницу полного среза продуктов, при промахе
// заполняя слот из хранилища.
func (r *CatalogCacheRepo) GetProducts(ctx context.Context, page, pageSize int) ([]domain.Product, error) {
	slot, err := r.productSlot(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	slot.mu.RLock()
	items := slot.items
	slot.mu.RUnlock()

	window := pageWindow(items, page, pageSize)
	if len(window) == 0 {
		return nil, e.ErrNoProducts
	}

	return window, nil
}

// GetProductsByCategory группирует срез по запрошенным категориям и
// применяет страничное окно к каждой группе отдельно.
func (r *CatalogCacheRepo) GetProductsByCategory(ctx context.Context, page, pageSize int,
	categoryIDs []uuid.UUID) ([]usecase.CategoryProducts, error) {
	slot, err := r.productSlot(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	slot.mu.RLock()
	items := slot.items
	slot.mu.RUnlock()

	grouped := make(map[uuid.UUID][]domain.Product, len(categoryIDs))
	requested := make(map[uuid.UUID]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		requested[id] = struct{}{}
	}
	for _, product := range items {
		if _, ok := requested[product.CategoryID]; ok {
			grouped[product.CategoryID] = append(grouped[product.CategoryID], product)
		}
	}

	result := make([]usecase.CategoryProducts, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		window := pageWindow(grouped[id], page, pageSize)
		if len(window) == 0 {
			continue
		}
		result = append(result, usecase.CategoryProducts{
			CategoryID: id,
			Products:   window,
		})
	}

	if len(result) == 0 {
		return nil, e.ErrNoProducts
	}

	return result, nil
}

// UpsertProducts точечно заменяет или добавляет продукты в слоте.
// Промах слота — это первая запись в пустой кэш: патчить нечего,
// слот заполняется из хранилища целиком, срез там уже свежий.
func (r *CatalogCacheRepo) UpsertProducts(ctx context.Context, changed []domain.Product) error {
	if len(changed) == 0 {
		return e.ErrNoProducts
	}

	slot, ok := r.tryProductSlot()
	if !ok {
		if _, err := r.productSlot(ctx); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		return nil
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	next := make([]domain.Product, len(slot.items))
	copy(next, slot.items)

	for _, product := range changed {
		// Удалённый агрегат в слот через upsert не попадает
		if domain.StateOf(product.DeletedAt) == domain.Deleted {
			continue
		}

		replaced := false
		for i := range next {
			if next[i].ID == product.ID {
				next[i] = product
				replaced = true
				break
			}
		}
		if !replaced {
			next = append(next, product)
		}
	}

	slot.items = next
	return nil
}

// RemoveProducts точечно выбрасывает удалённые продукты из слота.
// Промах слота — не ошибка: следующее чтение заполнит его целиком.
func (r *CatalogCacheRepo) RemoveProducts(_ context.Context, deleted []domain.Product) error {
	if len(deleted) == 0 {
		return e.ErrNoProducts
	}

	slot, ok := r.tryProductSlot()
	if !ok {
		return nil
	}

	removed := make(map[uuid.UUID]struct{}, len(deleted))
	for _, product := range deleted {
		removed[product.ID] = struct{}{}
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	next := make([]domain.Product, 0, len(slot.items))
	for _, product := range slot.items {
		if _, ok := removed[product.ID]; !ok {
			next = append(next, product)
		}
	}

	slot.items = next
	return nil
}

func (r *CatalogCacheRepo) GetCategories(ctx context.Context, page, pageSize int) ([]domain.Category, error) {
	slot, err := r.categorySlot(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	slot.mu.RLock()
	items := slot.items
	slot.mu.RUnlock()

	window := pageWindow(items, page, pageSize)
	if len(window) == 0 {
		return nil, e.ErrNoCategories
	}

	return window, nil
}

func (r *CatalogCacheRepo) UpsertCategories(ctx context.Context, changed []domain.Category) error {
	if len(changed) == 0 {
		return e.ErrNoCategories
	}

	slot, ok := r.tryCategorySlot()
	if !ok {
		if _, err := r.categorySlot(ctx); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		return nil
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	next := make([]domain.Category, len(slot.items))
	copy(next, slot.items)

	for _, category := range changed {
		if domain.StateOf(category.DeletedAt) == domain.Deleted {
			continue
		}

		replaced := false
		for i := range next {
			if next[i].ID == category.ID {
				next[i] = category
				replaced = true
				break
			}
		}
		if !replaced {
			next = append(next, category)
		}
	}

	slot.items = next
	return nil
}

func (r *CatalogCacheRepo) RemoveCategories(_ context.Context, deleted []domain.Category) error {
	if len(deleted) == 0 {
		return e.ErrNoCategories
	}

	slot, ok := r.tryCategorySlot()
	if !ok {
		return nil
	}

	removed := make(map[uuid.UUID]struct{}, len(deleted))
	for _, category := range deleted {
		removed[category.ID] = struct{}{}
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	next := make([]domain.Category, 0, len(slot.items))
	for _, category := range slot.items {
		if _, ok := removed[category.ID]; !ok {
			next = append(next, category)
		}
	}

	slot.items = next
	return nil
}

// productSlot возвращает живой слот продуктов, при промахе заполняя его
// из источника. Пустое хранилище не кэшируется.
func (r *CatalogCacheRepo) productSlot(ctx context.Context) (*productSlot, error) {
	if slot, ok := r.tryProductSlot(); ok {
		return slot, nil
	}

	r.populateMu.Lock()
	defer r.populateMu.Unlock()

	// Пока ждали мьютекс, слот мог заполнить конкурент
	if slot, ok := r.tryProductSlot(); ok {
		return slot, nil
	}

	items, err := r.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, e.ErrNoProducts
	}

	slot := &productSlot{items: items}
	r.store.Set(productsSlotKey, slot, memcache.Options{
		AbsoluteTTL: r.cfg.AbsoluteTTL,
		SlidingTTL:  r.cfg.SlidingTTL,
	})
	r.logger.Debugf("Catalog products slot populated with %d items", len(items))

	return slot, nil
}

func (r *CatalogCacheRepo) categorySlot(ctx context.Context) (*categorySlot, error) {
	if slot, ok := r.tryCategorySlot(); ok {
		return slot, nil
	}

	r.populateMu.Lock()
	defer r.populateMu.Unlock()

	if slot, ok := r.tryCategorySlot(); ok {
		return slot, nil
	}

	items, err := r.categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, e.ErrNoCategories
	}

	slot := &categorySlot{items: items}
	r.store.Set(categoriesSlotKey, slot, memcache.Options{
		AbsoluteTTL: r.cfg.AbsoluteTTL,
		SlidingTTL:  r.cfg.SlidingTTL,
	})
	r.logger.Debugf("Catalog categories slot populated with %d items", len(items))

	return slot, nil
}

func (r *CatalogCacheRepo) tryProductSlot() (*productSlot, bool) {
	value, ok := r.store.TryGet(productsSlotKey)
	if !ok {
		return nil, false
	}

	slot, ok := value.(*productSlot)
	return slot, ok
}

func (r *CatalogCacheRepo) tryCategorySlot() (*categorySlot, bool) {
	value, ok := r.store.TryGet(categoriesSlotKey)
	if !ok {
		return nil, false
	}

	slot, ok := value.(*categorySlot)
	return slot, ok
}

func pageWindow[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return nil
	}

	from := (page - 1) * pageSize
	if from >= len(items) {
		return nil
	}

	to := from + pageSize
	if to > len(items) {
		to = len(items)
	}

	return items[from:to]
}
