package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/google/uuid"
)

// ProductRepository — операции хранилища над продуктами.
// Чтения включают вложенные объекты; запись возвращает число
// затронутых строк.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error)
	GetByCategories(ctx context.Context, categoryIDs []uuid.UUID) ([]domain.Product, error)
	AddRange(ctx context.Context, products []domain.Product) (int64, error)
	UpdateRange(ctx context.Context, products []domain.Product) (int64, error)
	RemoveRange(ctx context.Context, products []domain.Product) (int64, error)
	Exists(ctx context.Context, ids []uuid.UUID, names []string) (idTaken, nameTaken bool, err error)
}

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Category, error)
	AddRange(ctx context.Context, categories []domain.Category) (int64, error)
	UpdateRange(ctx context.Context, categories []domain.Category) (int64, error)
	RemoveRange(ctx context.Context, categories []domain.Category) (int64, error)
	Exists(ctx context.Context, ids []uuid.UUID, names []string) (idTaken, nameTaken bool, err error)
}

type UserRepository interface {
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
	AddRange(ctx context.Context, users []domain.User) (int64, error)
	UpdateRange(ctx context.Context, users []domain.User) (int64, error)
	RemoveRange(ctx context.Context, users []domain.User) (int64, error)
	Exists(ctx context.Context, ids []uuid.UUID, emails []string) (idTaken, emailTaken bool, err error)
}

type PermissionRepository interface {
	GetAll(ctx context.Context) ([]domain.Permission, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Permission, error)
	AddRange(ctx context.Context, permissions []domain.Permission) (int64, error)
	UpdateRange(ctx context.Context, permissions []domain.Permission) (int64, error)
	RemoveRange(ctx context.Context, permissions []domain.Permission) (int64, error)
	Exists(ctx context.Context, ids []uuid.UUID, names []string) (idTaken, nameTaken bool, err error)
}

type RoleRepository interface {
	GetAll(ctx context.Context) ([]domain.Role, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Role, error)
	AddRange(ctx context.Context, roles []domain.Role) (int64, error)
	UpdateRange(ctx context.Context, roles []domain.Role) (int64, error)
	RemoveRange(ctx context.Context, roles []domain.Role) (int64, error)
	Exists(ctx context.Context, ids []uuid.UUID, names []string) (idTaken, nameTaken bool, err error)
}

// CatalogCache — координатор кэша каталога. Полный каталог лежит в одном
// слоте; успешные записи точечно патчат слот вместо полной инвалидации.
type CatalogCache interface {
	GetProducts(ctx context.Context, page, pageSize int) ([]domain.Product, error)
	GetProductsByCategory(ctx context.Context, page, pageSize int, categoryIDs []uuid.UUID) ([]CategoryProducts, error)
	UpsertProducts(ctx context.Context, changed []domain.Product) error
	RemoveProducts(ctx context.Context, deleted []domain.Product) error

	GetCategories(ctx context.Context, page, pageSize int) ([]domain.Category, error)
	UpsertCategories(ctx context.Context, changed []domain.Category) error
	RemoveCategories(ctx context.Context, deleted []domain.Category) error
}

// ListingCache — страничные кэши листингов с составным ключом (page, pageSize).
type ListingCache interface {
	GetCategoryPage(ctx context.Context, page, pageSize int) ([]CategoryListItem, bool, error)
	SetCategoryPage(ctx context.Context, page, pageSize int, items []CategoryListItem) error
	UpsertCategoryItem(ctx context.Context, item CategoryListItem) error
	DeleteCategoryItems(ctx context.Context, ids []uuid.UUID) error

	GetRolePage(ctx context.Context, page, pageSize int) ([]RoleListItem, bool, error)
	SetRolePage(ctx context.Context, page, pageSize int, items []RoleListItem) error
	UpsertRoleItem(ctx context.Context, item RoleListItem) error
	DeleteRoleItems(ctx context.Context, ids []uuid.UUID) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.ImageObject) (string, error)
	Delete(ctx context.Context, key string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}
