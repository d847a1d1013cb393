//go:generate goverter gen github.com/DRSN-tech/catalog-service/internal/repository/redis/converter

package converter

import (
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/google/uuid"
)

// goverter:converter
// goverter:extend ConvertUUID
type CategoryListingConverter interface {
	ToRedisModel(entity *usecase.CategoryListItem) *CategoryListItemRedisModel
	ToUseCase(model *CategoryListItemRedisModel) *usecase.CategoryListItem
	ToArrRedisModel(entities []usecase.CategoryListItem) []CategoryListItemRedisModel
	ToArrUseCase(models []CategoryListItemRedisModel) []usecase.CategoryListItem
}

// goverter:converter
// goverter:extend ConvertUUID
type RoleListingConverter interface {
	ToRedisModel(entity *usecase.RoleListItem) *RoleListItemRedisModel
	ToUseCase(model *RoleListItemRedisModel) *usecase.RoleListItem
	ToArrRedisModel(entities []usecase.RoleListItem) []RoleListItemRedisModel
	ToArrUseCase(models []RoleListItemRedisModel) []usecase.RoleListItem
}

func ConvertUUID(id uuid.UUID) uuid.UUID {
	return id
}
