package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/google/uuid"
)

type ProductUC interface {
	AddProducts(ctx context.Context, req *AddProductsReq) error
	UpdateProducts(ctx context.Context, req *UpdateProductsReq) error
	DeleteProducts(ctx context.Context, req *DeleteProductsReq) error
	AttachProductImage(ctx context.Context, req *AttachProductImageReq) error
	GetProducts(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error)
	GetProductsByCategory(ctx context.Context, req *GetProductsByCategoryReq) ([]CategoryProducts, error)
}

type CategoryUC interface {
	AddCategories(ctx context.Context, req *AddCategoriesReq) error
	UpdateCategories(ctx context.Context, req *UpdateCategoriesReq) error
	DeleteCategories(ctx context.Context, req *DeleteCategoriesReq) error
	GetCategories(ctx context.Context, req *GetCategoriesReq) (*GetCategoriesRes, error)
	ListCategories(ctx context.Context, page, pageSize int) ([]CategoryListItem, error)
}

type AccessUC interface {
	AddUsers(ctx context.Context, req *AddUsersReq) error
	UpdateUsers(ctx context.Context, req *UpdateUsersReq) error
	DeleteUsers(ctx context.Context, req *DeleteUsersReq) error
	GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)

	AddPermissions(ctx context.Context, req *AddPermissionsReq) error
	UpdatePermissions(ctx context.Context, req *UpdatePermissionsReq) error
	DeletePermissions(ctx context.Context, req *DeletePermissionsReq) error

	AddRoles(ctx context.Context, req *AddRolesReq) error
	UpdateRoles(ctx context.Context, req *UpdateRolesReq) error
	DeleteRoles(ctx context.Context, req *DeleteRolesReq) error
	ListRoles(ctx context.Context, req *GetRolesReq) ([]RoleListItem, error)
}
