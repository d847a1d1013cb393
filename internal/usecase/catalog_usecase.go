package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductUseCase — фасад каталога: предпроверка существования, сверка,
// транзакционная запись в хранилище и точечный патч кэша после коммита.
type ProductUseCase struct {
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	cache       CatalogCache
	imagesInfra ImagesInfra
	products    *Reconciler[domain.Product]
	logger      logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	cache CatalogCache,
	imagesInfra ImagesInfra,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		cache:       cache,
		imagesInfra: imagesInfra,
		products: NewReconciler[domain.Product](NewProductTraits(), ReconcileErrors{
			NotFound:      e.ErrProductNotFound,
			AlreadyExists: e.ErrProductExists,
		}),
		logger: logger,
	}
}

// AddProducts добавляет продукты: проверка коллизий по ID и имени,
// простановка таймстемпов создания, запись и патч кэша.
func (p *ProductUseCase) AddProducts(ctx context.Context, req *AddProductsReq) error {
	const op = "ProductUseCase.AddProducts"

	stamped, err := p.products.Add(ctx, req.Products)
	if err != nil {
		return e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	ids, names := productKeys(stamped)
	idTaken, nameTaken, err := p.productRepo.Exists(ctx, ids, names)
	if err != nil {
		return e.Wrap(op, err)
	}
	if err = p.products.Exists(idTaken, nameTaken); err != nil {
		return e.Wrap(op, err)
	}

	rows, err := p.productRepo.AddRange(ctx, stamped)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err = p.createOutboxEvent(ctx, ProductUpserted, ids); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	if rows > 0 {
		if cacheErr := p.cache.UpsertProducts(ctx, stamped); cacheErr != nil {
			p.logger.Warnf("Failed to patch product cache after add: %v", e.Wrap(op, cacheErr))
		}
	}

	return nil
}

// UpdateProducts применяет обновление только к действительно изменившимся
// продуктам. Предлагаемое состояние, идентичное текущему, отклоняется.
func (p *ProductUseCase) UpdateProducts(ctx context.Context, req *UpdateProductsReq) error {
	const op = "ProductUseCase.UpdateProducts"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	current, err := p.productRepo.GetByIDs(ctx, req.IDs)
	if err != nil {
		return e.Wrap(op, err)
	}

	changed, err := p.products.Update(ctx, req.IDs, current, req.Products)
	if err != nil {
		return e.Wrap(op, err)
	}

	rows, err := p.productRepo.UpdateRange(ctx, changed)
	if err != nil {
		return e.Wrap(op, err)
	}

	changedIDs, _ := productKeys(changed)
	if err = p.createOutboxEvent(ctx, ProductUpserted, changedIDs); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	if rows > 0 {
		if cacheErr := p.cache.UpsertProducts(ctx, changed); cacheErr != nil {
			p.logger.Warnf("Failed to patch product cache after update: %v", e.Wrap(op, cacheErr))
		}
	}

	return nil
}

// DeleteProducts мягко удаляет продукты: метка удаления каскадно уходит
// вложенным объектам, их строки вычищаются из хранилища поимённо,
// кэш и S3 патчатся после коммита.
func (p *ProductUseCase) DeleteProducts(ctx context.Context, req *DeleteProductsReq) error {
	const op = "ProductUseCase.DeleteProducts"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	current, err := p.productRepo.GetByIDs(ctx, req.IDs)
	if err != nil {
		return e.Wrap(op, err)
	}

	stamped, err := p.products.Delete(ctx, req.IDs, current)
	if err != nil {
		return e.Wrap(op, err)
	}

	rows, err := p.productRepo.RemoveRange(ctx, stamped)
	if err != nil {
		return e.Wrap(op, err)
	}

	deletedIDs, _ := productKeys(stamped)
	if err = p.createOutboxEvent(ctx, ProductDeleted, deletedIDs); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	if rows > 0 {
		if cacheErr := p.cache.RemoveProducts(ctx, stamped); cacheErr != nil {
			p.logger.Warnf("Failed to patch product cache after delete: %v", e.Wrap(op, cacheErr))
		}

		if keys := imageKeys(stamped); len(keys) > 0 {
			p.imagesInfra.CleanupImages(keys)
		}
	}

	return nil
}

// AttachProductImage загружает бинарь изображения в S3 и привязывает его
// к продукту через обычный путь обновления. При отказе обновления
// загруженный объект компенсационно удаляется.
func (p *ProductUseCase) AttachProductImage(ctx context.Context, req *AttachProductImageReq) error {
	const op = "ProductUseCase.AttachProductImage"

	current, err := p.productRepo.GetByIDs(ctx, []uuid.UUID{req.ProductID})
	if err != nil {
		return e.Wrap(op, err)
	}
	matched, err := p.products.GetByIDs([]uuid.UUID{req.ProductID}, current)
	if err != nil {
		return e.Wrap(op, err)
	}

	uploaded, err := p.imagesInfra.UploadImages(ctx, NewUploadImagesReq(matched[0].Name, []ProductImage{req.Image}))
	if err != nil {
		return e.Wrap(op, err)
	}

	proposed := matched[0]
	proposed.Image = &domain.Image{
		ID:      uuid.New(),
		URL:     uploaded.ImagesKeys[0],
		AltText: req.AltText,
	}

	if err := p.UpdateProducts(ctx, NewUpdateProductsReq([]uuid.UUID{req.ProductID}, []domain.Product{proposed})); err != nil {
		p.imagesInfra.CleanupImages(uploaded.ImagesKeys)
		return e.Wrap(op, err)
	}

	return nil
}

// GetProducts возвращает страницу каталога из кэша.
func (p *ProductUseCase) GetProducts(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error) {
	const op = "ProductUseCase.GetProducts"

	products, err := p.cache.GetProducts(ctx, req.Page, req.PageSize)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err = p.products.GetAll(products)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewGetProductsRes(products), nil
}

// GetProductsByCategory возвращает продукты, сгруппированные по категориям,
// со страничным окном внутри каждой группы.
func (p *ProductUseCase) GetProductsByCategory(ctx context.Context, req *GetProductsByCategoryReq) ([]CategoryProducts, error) {
	const op = "ProductUseCase.GetProductsByCategory"

	if err := validateIDs(req.CategoryIDs); err != nil {
		return nil, e.Wrap(op, err)
	}

	groups, err := p.cache.GetProductsByCategory(ctx, req.Page, req.PageSize, req.CategoryIDs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	served := make([]domain.Product, 0)
	for _, group := range groups {
		served = append(served, group.Products...)
	}
	if _, err = p.products.GetAll(served); err != nil {
		return nil, e.Wrap(op, err)
	}

	return groups, nil
}

// createOutboxEvent пишет событие изменения каталога в outbox в текущей
// транзакции.
func (p *ProductUseCase) createOutboxEvent(ctx context.Context, eventType OutboxEventType, ids []uuid.UUID) error {
	payload, err := json.Marshal(ProductEventPayload{
		EventType:  eventType,
		ProductIDs: ids,
		OccurredAt: time.Now(),
	})
	if err != nil {
		return err
	}

	_, err = p.outboxRepo.Create(ctx, NewOutboxEvent(eventType, ids[0], payload))
	return err
}

func productKeys(products []domain.Product) ([]uuid.UUID, []string) {
	ids := make([]uuid.UUID, 0, len(products))
	names := make([]string, 0, len(products))
	for _, product := range products {
		ids = append(ids, product.ID)
		names = append(names, product.Name)
	}

	return ids, names
}

func imageKeys(products []domain.Product) []string {
	keys := make([]string, 0, len(products))
	for _, product := range products {
		if product.Image != nil && product.Image.URL != "" {
			keys = append(keys, product.Image.URL)
		}
	}

	return keys
}
