package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CategoryUseCase — фасад категорий: тот же конвейер сверки и записи,
// что и у продуктов, плюс страничный кэш листинга.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	dbPool       transaction.Transactional
	cache        CatalogCache
	listings     ListingCache
	categories   *Reconciler[domain.Category]
	logger       logger.Logger
}

func NewCategoryUC(
	categoryRepo CategoryRepository,
	dbPool transaction.Transactional,
	cache CatalogCache,
	listings ListingCache,
	logger logger.Logger,
) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		dbPool:       dbPool,
		cache:        cache,
		listings:     listings,
		categories: NewReconciler[domain.Category](NewCategoryTraits(), ReconcileErrors{
			NotFound:      e.ErrCategoryNotFound,
			AlreadyExists: e.ErrCategoryExists,
		}),
		logger: logger,
	}
}

func (c *CategoryUseCase) AddCategories(ctx context.Context, req *AddCategoriesReq) error {
	const op = "CategoryUseCase.AddCategories"

	stamped, err := c.categories.Add(ctx, req.Categories)
	if err != nil {
		return e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	ids, names := categoryKeys(stamped)
	idTaken, nameTaken, err := c.categoryRepo.Exists(ctx, ids, names)
	if err != nil {
		return e.Wrap(op, err)
	}
	if err = c.categories.Exists(idTaken, nameTaken); err != nil {
		return e.Wrap(op, err)
	}

	rows, err := c.categoryRepo.AddRange(ctx, stamped)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	if rows > 0 {
		c.patchCaches(ctx, stamped)
	}

	return nil
}

func (c *CategoryUseCase) UpdateCategories(ctx context.Context, req *UpdateCategoriesReq) error {
	const op = "CategoryUseCase.UpdateCategories"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	current, err := c.categoryRepo.GetByIDs(ctx, req.IDs)
	if err != nil {
		return e.Wrap(op, err)
	}

	changed, err := c.categories.Update(ctx, req.IDs, current, req.Categories)
	if err != nil {
		return e.Wrap(op, err)
	}

	rows, err := c.categoryRepo.UpdateRange(ctx, changed)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	if rows > 0 {
		c.patchCaches(ctx, changed)
	}

	return nil
}

func (c *CategoryUseCase) DeleteCategories(ctx context.Context, req *DeleteCategoriesReq) error {
	const op = "CategoryUseCase.DeleteCategories"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	current, err := c.categoryRepo.GetByIDs(ctx, req.IDs)
	if err != nil {
		return e.Wrap(op, err)
	}

	stamped, err := c.categories.Delete(ctx, req.IDs, current)
	if err != nil {
		return e.Wrap(op, err)
	}

	rows, err := c.categoryRepo.RemoveRange(ctx, stamped)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	if rows > 0 {
		if cacheErr := c.cache.RemoveCategories(ctx, stamped); cacheErr != nil {
			c.logger.Warnf("Failed to patch category cache after delete: %v", e.Wrap(op, cacheErr))
		}

		ids, _ := categoryKeys(stamped)
		if cacheErr := c.listings.DeleteCategoryItems(ctx, ids); cacheErr != nil {
			c.logger.Warnf("Failed to patch category listing after delete: %v", e.Wrap(op, cacheErr))
		}
	}

	return nil
}

// GetCategories возвращает страницу категорий из слота полного каталога.
func (c *CategoryUseCase) GetCategories(ctx context.Context, req *GetCategoriesReq) (*GetCategoriesRes, error) {
	const op = "CategoryUseCase.GetCategories"

	categories, err := c.cache.GetCategories(ctx, req.Page, req.PageSize)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	categories, err = c.categories.GetAll(categories)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewGetCategoriesRes(categories), nil
}

// ListCategories возвращает страничный листинг категорий.
// Промах страничного кэша заполняется из хранилища.
func (c *CategoryUseCase) ListCategories(ctx context.Context, page, pageSize int) ([]CategoryListItem, error) {
	const op = "CategoryUseCase.ListCategories"

	items, hit, err := c.listings.GetCategoryPage(ctx, page, pageSize)
	if err != nil {
		c.logger.Warnf("Category listing cache read failed: %v", e.Wrap(op, err))
	}
	if hit {
		return items, nil
	}

	categories, err := c.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	categories, err = c.categories.GetAll(categories)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	items = make([]CategoryListItem, 0, pageSize)
	for _, category := range pageWindow(categories, page, pageSize) {
		items = append(items, CategoryListItem{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
		})
	}

	if err := c.listings.SetCategoryPage(ctx, page, pageSize, items); err != nil {
		c.logger.Warnf("Category listing cache write failed: %v", e.Wrap(op, err))
	}

	return items, nil
}

// patchCaches обновляет слот полного каталога и страничный листинг
// после успешной записи.
func (c *CategoryUseCase) patchCaches(ctx context.Context, changed []domain.Category) {
	const op = "CategoryUseCase.patchCaches"

	if err := c.cache.UpsertCategories(ctx, changed); err != nil {
		c.logger.Warnf("Failed to patch category cache: %v", e.Wrap(op, err))
	}

	for _, category := range changed {
		item := CategoryListItem{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
		}
		if err := c.listings.UpsertCategoryItem(ctx, item); err != nil {
			c.logger.Warnf("Failed to patch category listing: %v", e.Wrap(op, err))
		}
	}
}

func categoryKeys(categories []domain.Category) ([]uuid.UUID, []string) {
	ids := make([]uuid.UUID, 0, len(categories))
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		ids = append(ids, category.ID)
		names = append(names, category.Name)
	}

	return ids, names
}

// pageWindow возвращает страничное окно среза.
func pageWindow[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return nil
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
