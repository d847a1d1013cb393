package pgdb

import (
	"context"
	"time"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/normalize"
	"github.com/DRSN-tech/catalog-service/pkg/tr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

const selectCategories = `
	SELECT id, name, description, created_at, updated_at, deleted_at
	FROM categories
	WHERE deleted_at IS NULL
`

func (c *CategoryRepo) GetAll(ctx context.Context) ([]domain.Category, error) {
	query := selectCategories + ` ORDER BY created_at, id`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := collectCategories(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToArrEntity(models), nil
}

func (c *CategoryRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Category, error) {
	query := selectCategories + ` AND id = ANY($1) ORDER BY created_at, id`

	rows, err := c.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := collectCategories(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToArrEntity(models), nil
}

func (c *CategoryRepo) AddRange(ctx context.Context, categories []domain.Category) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO categories (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)
	`

	var rows int64
	for _, model := range c.conv.ToArrModel(categories) {
		res, err := tx.Exec(ctx, query, model.ID, model.Name, model.Description, model.CreatedAt)
		if err != nil {
			if postgresDuplicate(err) {
				return 0, e.Wrap(whereami.WhereAmI(), e.ErrCategoryExists)
			}
			return 0, e.Wrap(whereami.WhereAmI(), err)
		}
		rows += res.RowsAffected()
	}

	return rows, nil
}

func (c *CategoryRepo) UpdateRange(ctx context.Context, categories []domain.Category) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE categories
		SET name = $2, description = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL
	`

	var rows int64
	for _, model := range c.conv.ToArrModel(categories) {
		res, err := tx.Exec(ctx, query, model.ID, model.Name, model.Description, model.UpdatedAt)
		if err != nil {
			return 0, e.Wrap(whereami.WhereAmI(), err)
		}
		rows += res.RowsAffected()
	}

	return rows, nil
}

func (c *CategoryRepo) RemoveRange(ctx context.Context, categories []domain.Category) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE categories SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`

	var rows int64
	for _, category := range categories {
		deletedAt := category.DeletedAt
		if deletedAt == nil {
			now := time.Now()
			deletedAt = &now
		}

		res, err := tx.Exec(ctx, query, category.ID, *deletedAt)
		if err != nil {
			return 0, e.Wrap(whereami.WhereAmI(), err)
		}
		rows += res.RowsAffected()
	}

	return rows, nil
}

func (c *CategoryRepo) Exists(ctx context.Context, ids []uuid.UUID, names []string) (bool, bool, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return false, false, e.Wrap(whereami.WhereAmI(), err)
	}

	keys := make([]string, 0, len(names))
	for _, name := range names {
		keys = append(keys, normalize.Key(name))
	}

	query := `
		SELECT
			EXISTS(SELECT 1 FROM categories WHERE id = ANY($1) AND deleted_at IS NULL),
			EXISTS(SELECT 1 FROM categories WHERE lower(btrim(name)) = ANY($2) AND deleted_at IS NULL)
	`

	var idTaken, nameTaken bool
	if err := tx.QueryRow(ctx, query, ids, keys).Scan(&idTaken, &nameTaken); err != nil {
		return false, false, e.Wrap(whereami.WhereAmI(), err)
	}

	return idTaken, nameTaken, nil
}

func collectCategories(rows pgx.Rows) ([]converter.CategoryModel, error) {
	models := make([]converter.CategoryModel, 0)
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Description,
			&model.CreatedAt, &model.UpdatedAt, &model.DeletedAt); err != nil {
			return nil, err
		}

		models = append(models, model)
	}

	return models, rows.Err()
}
