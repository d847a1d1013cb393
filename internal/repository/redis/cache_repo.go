package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DRSN-tech/catalog-service/internal/cfg"
	"github.com/DRSN-tech/catalog-service/internal/repository/redis/converter"
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/clients"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const (
	categoryPagePattern = "categories:page:*"
	rolePagePattern     = "roles:page:*"
)

// ListingCacheRepo — страничные кэши листингов в Redis. Каждая страница
// лежит под составным ключом (page, pageSize); патчи по ID обходят живые
// страницы через SCAN, не трогая их TTL.
type ListingCacheRepo struct {
	client       *clients.RedisClient
	categoryConv converter.CategoryListingConverter
	roleConv     converter.RoleListingConverter
	cfg          *cfg.RedisCfg
	logger       logger.Logger
}

func NewListingCacheRepo(client *clients.RedisClient, categoryConv converter.CategoryListingConverter,
	roleConv converter.RoleListingConverter, cfg *cfg.RedisCfg, logger logger.Logger) *ListingCacheRepo {
	return &ListingCacheRepo{
		client:       client,
		categoryConv: categoryConv,
		roleConv:     roleConv,
		cfg:          cfg,
		logger:       logger,
	}
}

// GetCategoryPage возвращает закэшированную страницу листинга категорий.
// Промах — не ошибка: второй результат сообщает, был ли хит.
func (c *ListingCacheRepo) GetCategoryPage(ctx context.Context, page, pageSize int) ([]usecase.CategoryListItem, bool, error) {
	data, hit, err := c.getPage(ctx, categoryPageKey(page, pageSize))
	if err != nil || !hit {
		return nil, false, err
	}

	var models []converter.CategoryListItemRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		return nil, false, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.categoryConv.ToArrUseCase(models), true, nil
}

// SetCategoryPage кэширует страницу листинга категорий с TTL листинга.
func (c *ListingCacheRepo) SetCategoryPage(ctx context.Context, page, pageSize int, items []usecase.CategoryListItem) error {
	data, err := json.Marshal(c.categoryConv.ToArrRedisModel(items))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, categoryPageKey(page, pageSize), data, c.cfg.ListingTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// UpsertCategoryItem патчит элемент по ID во всех живых страницах листинга:
// найденный заменяется на месте, отсутствующий дописывается в конец.
// Страница живёт до истечения TTL, следующее чтение соберёт окно заново.
func (c *ListingCacheRepo) UpsertCategoryItem(ctx context.Context, item usecase.CategoryListItem) error {
	model := c.categoryConv.ToRedisModel(&item)

	return c.patchPages(ctx, categoryPagePattern, func(data []byte) ([]byte, bool, error) {
		return upsertPageItem(data, *model, func(m converter.CategoryListItemRedisModel) uuid.UUID {
			return m.ID
		})
	})
}

// DeleteCategoryItems выбрасывает элементы по ID из всех живых страниц листинга.
func (c *ListingCacheRepo) DeleteCategoryItems(ctx context.Context, ids []uuid.UUID) error {
	removed := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		removed[id] = struct{}{}
	}

	return c.patchPages(ctx, categoryPagePattern, func(data []byte) ([]byte, bool, error) {
		var models []converter.CategoryListItemRedisModel
		if err := json.Unmarshal(data, &models); err != nil {
			return nil, false, err
		}

		kept := models[:0]
		for _, model := range models {
			if _, ok := removed[model.ID]; !ok {
				kept = append(kept, model)
			}
		}
		if len(kept) == len(models) {
			return nil, false, nil
		}

		next, err := json.Marshal(kept)
		return next, true, err
	})
}

func (c *ListingCacheRepo) GetRolePage(ctx context.Context, page, pageSize int) ([]usecase.RoleListItem, bool, error) {
	data, hit, err := c.getPage(ctx, rolePageKey(page, pageSize))
	if err != nil || !hit {
		return nil, false, err
	}

	var models []converter.RoleListItemRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		return nil, false, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.roleConv.ToArrUseCase(models), true, nil
}

func (c *ListingCacheRepo) SetRolePage(ctx context.Context, page, pageSize int, items []usecase.RoleListItem) error {
	data, err := json.Marshal(c.roleConv.ToArrRedisModel(items))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, rolePageKey(page, pageSize), data, c.cfg.ListingTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *ListingCacheRepo) UpsertRoleItem(ctx context.Context, item usecase.RoleListItem) error {
	model := c.roleConv.ToRedisModel(&item)

	return c.patchPages(ctx, rolePagePattern, func(data []byte) ([]byte, bool, error) {
		return upsertPageItem(data, *model, func(m converter.RoleListItemRedisModel) uuid.UUID {
			return m.ID
		})
	})
}

func (c *ListingCacheRepo) DeleteRoleItems(ctx context.Context, ids []uuid.UUID) error {
	removed := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		removed[id] = struct{}{}
	}

	return c.patchPages(ctx, rolePagePattern, func(data []byte) ([]byte, bool, error) {
		var models []converter.RoleListItemRedisModel
		if err := json.Unmarshal(data, &models); err != nil {
			return nil, false, err
		}

		kept := models[:0]
		for _, model := range models {
			if _, ok := removed[model.ID]; !ok {
				kept = append(kept, model)
			}
		}
		if len(kept) == len(models) {
			return nil, false, nil
		}

		next, err := json.Marshal(kept)
		return next, true, err
	})
}

// upsertPageItem патчит сериализованную страницу: найденный по ID элемент
// заменяется на месте, отсутствующий дописывается в конец, как в слоте
// полного каталога.
func upsertPageItem[T any](data []byte, item T, id func(T) uuid.UUID) ([]byte, bool, error) {
	var models []T
	if err := json.Unmarshal(data, &models); err != nil {
		return nil, false, err
	}

	patched := false
	for i := range models {
		if id(models[i]) == id(item) {
			models[i] = item
			patched = true
		}
	}
	if !patched {
		models = append(models, item)
	}

	next, err := json.Marshal(models)
	return next, true, err
}

func (c *ListingCacheRepo) getPage(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Client.Get(ctx, key).Bytes()
	if errors.Is(err, r.Nil) {
		return nil, false, nil // cache miss
	}
	if err != nil {
		c.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, false, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, true, nil
}

// patchPages обходит живые страницы по шаблону и применяет patch к каждой.
// Перезапись сохраняет оставшийся TTL страницы через KEEPTTL.
func (c *ListingCacheRepo) patchPages(ctx context.Context, pattern string,
	patch func(data []byte) ([]byte, bool, error)) error {
	iter := c.client.Client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		data, err := c.client.Client.Get(ctx, key).Bytes()
		if errors.Is(err, r.Nil) {
			continue // страница истекла между SCAN и GET
		}
		if err != nil {
			c.logger.Warnf("Redis GET failed for %s: %v", key, e.Wrap(whereami.WhereAmI(), err))
			continue
		}

		next, changed, err := patch(data)
		if err != nil {
			c.logger.Warnf("Failed to patch listing page %s: %v", key, e.Wrap(whereami.WhereAmI(), err))
			continue
		}
		if !changed {
			continue
		}

		if err := c.client.Client.Set(ctx, key, next, r.KeepTTL).Err(); err != nil {
			c.logger.Warnf("Redis SET failed for %s: %v", key, e.Wrap(whereami.WhereAmI(), err))
		}
	}
	if err := iter.Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func categoryPageKey(page, pageSize int) string {
	return fmt.Sprintf("categories:page:%d:%d", page, pageSize)
}

func rolePageKey(page, pageSize int) string {
	return fmt.Sprintf("roles:page:%d:%d", page, pageSize)
}
