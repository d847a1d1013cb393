package usecase

import (
	"time"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/normalize"
	"github.com/google/uuid"
)

// Трейты плоских агрегатов. Каскадного проставления меток у них нет —
// вложенные объекты есть только у продукта.

type CategoryTraits struct{}

func NewCategoryTraits() CategoryTraits { return CategoryTraits{} }

func (CategoryTraits) ID(item domain.Category) uuid.UUID      { return item.ID }
func (CategoryTraits) Created(item domain.Category) time.Time { return item.CreatedAt }

func (CategoryTraits) Equal(current, proposed domain.Category) bool {
	return normalize.Equal(current.Name, proposed.Name) &&
		normalize.Equal(current.Description, proposed.Description)
}

func (CategoryTraits) StampCreated(item domain.Category, at time.Time) domain.Category {
	item.CreatedAt, item.UpdatedAt, item.DeletedAt = at, nil, nil
	return item
}

func (CategoryTraits) StampRevised(item domain.Category, createdAt, updatedAt time.Time) domain.Category {
	item.CreatedAt, item.UpdatedAt = createdAt, &updatedAt
	return item
}

func (CategoryTraits) StampDeleted(item domain.Category, at time.Time) domain.Category {
	item.DeletedAt = &at
	return item
}

type UserTraits struct{}

func NewUserTraits() UserTraits { return UserTraits{} }

func (UserTraits) ID(item domain.User) uuid.UUID      { return item.ID }
func (UserTraits) Created(item domain.User) time.Time { return item.CreatedAt }

func (UserTraits) Equal(current, proposed domain.User) bool {
	return normalize.Equal(current.Email, proposed.Email) &&
		normalize.Equal(current.FirstName, proposed.FirstName) &&
		normalize.Equal(current.LastName, proposed.LastName)
}

func (UserTraits) StampCreated(item domain.User, at time.Time) domain.User {
	item.CreatedAt, item.UpdatedAt, item.DeletedAt = at, nil, nil
	return item
}

func (UserTraits) StampRevised(item domain.User, createdAt, updatedAt time.Time) domain.User {
	item.CreatedAt, item.UpdatedAt = createdAt, &updatedAt
	return item
}

func (UserTraits) StampDeleted(item domain.User, at time.Time) domain.User {
	item.DeletedAt = &at
	return item
}

type PermissionTraits struct{}

func NewPermissionTraits() PermissionTraits { return PermissionTraits{} }

func (PermissionTraits) ID(item domain.Permission) uuid.UUID      { return item.ID }
func (PermissionTraits) Created(item domain.Permission) time.Time { return item.CreatedAt }

func (PermissionTraits) Equal(current, proposed domain.Permission) bool {
	return normalize.Equal(current.Name, proposed.Name) &&
		normalize.Equal(current.Description, proposed.Description)
}

func (PermissionTraits) StampCreated(item domain.Permission, at time.Time) domain.Permission {
	item.CreatedAt, item.UpdatedAt, item.DeletedAt = at, nil, nil
	return item
}

func (PermissionTraits) StampRevised(item domain.Permission, createdAt, updatedAt time.Time) domain.Permission {
	item.CreatedAt, item.UpdatedAt = createdAt, &updatedAt
	return item
}

func (PermissionTraits) StampDeleted(item domain.Permission, at time.Time) domain.Permission {
	item.DeletedAt = &at
	return item
}

type RoleTraits struct{}

func NewRoleTraits() RoleTraits { return RoleTraits{} }

func (RoleTraits) ID(item domain.Role) uuid.UUID      { return item.ID }
func (RoleTraits) Created(item domain.Role) time.Time { return item.CreatedAt }

func (RoleTraits) Equal(current, proposed domain.Role) bool {
	return normalize.Equal(current.Name, proposed.Name) &&
		normalize.Equal(current.Description, proposed.Description)
}

func (RoleTraits) StampCreated(item domain.Role, at time.Time) domain.Role {
	item.CreatedAt, item.UpdatedAt, item.DeletedAt = at, nil, nil
	return item
}

func (RoleTraits) StampRevised(item domain.Role, createdAt, updatedAt time.Time) domain.Role {
	item.CreatedAt, item.UpdatedAt = createdAt, &updatedAt
	return item
}

func (RoleTraits) StampDeleted(item domain.Role, at time.Time) domain.Role {
	item.DeletedAt = &at
	return item
}
