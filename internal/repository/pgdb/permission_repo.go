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

// PermissionRepo реализует репозиторий прав доступа поверх PostgreSQL.
type PermissionRepo struct {
	pool *pgxpool.Pool
	conv converter.PermissionConverter
}

func NewPermissionRepo(pool *pgxpool.Pool, conv converter.PermissionConverter) *PermissionRepo {
	return &PermissionRepo{pool: pool, conv: conv}
}

const selectPermissions = `
	SELECT id, name, description, created_at, updated_at, deleted_at
	FROM permissions
	WHERE deleted_at IS NULL
`

func (p *PermissionRepo) GetAll(ctx context.Context) ([]domain.Permission, error) {
	query := selectPermissions + ` ORDER BY created_at, id`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := collectPermissions(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

func (p *PermissionRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Permission, error) {
	query := selectPermissions + ` AND id = ANY($1) ORDER BY created_at, id`

	rows, err := p.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := collectPermissions(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

func (p *PermissionRepo) AddRange(ctx context.Context, permissions []domain.Permission) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO permissions (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)
	`

	var rows int64
	for _, model := range p.conv.ToArrModel(permissions) {
		res, err := tx.Exec(ctx, query, model.ID, model.Name, model.Description, model.CreatedAt)
		if err != nil {
			if postgresDuplicate(err) {
				return 0, e.Wrap(whereami.WhereAmI(), e.ErrPermissionExists)
			}
			return 0, e.Wrap(whereami.WhereAmI(), err)
		}
		rows += res.RowsAffected()
	}

	return rows, nil
}

func (p *PermissionRepo) UpdateRange(ctx context.Context, permissions []domain.Permission) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE permissions
		SET name = $2, description = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL
	`

	var rows int64
	for _, model := range p.conv.ToArrModel(permissions) {
		res, err := tx.Exec(ctx, query, model.ID, model.Name, model.Description, model.UpdatedAt)
		if err != nil {
			return 0, e.Wrap(whereami.WhereAmI(), err)
		}
		rows += res.RowsAffected()
	}

	return rows, nil
}

func (p *PermissionRepo) RemoveRange(ctx context.Context, permissions []domain.Permission) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE permissions SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`

	var rows int64
	for _, permission := range permissions {
		deletedAt := permission.DeletedAt
		if deletedAt == nil {
			now := time.Now()
			deletedAt = &now
		}

		res, err := tx.Exec(ctx, query, permission.ID, *deletedAt)
		if err != nil {
			return 0, e.Wrap(whereami.WhereAmI(), err)
		}
		rows += res.RowsAffected()
	}

	return rows, nil
}

func (p *PermissionRepo) Exists(ctx context.Context, ids []uuid.UUID, names []string) (bool, bool, error) {
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
			EXISTS(SELECT 1 FROM permissions WHERE id = ANY($1) AND deleted_at IS NULL),
			EXISTS(SELECT 1 FROM permissions WHERE lower(btrim(name)) = ANY($2) AND deleted_at IS NULL)
	`

	var idTaken, nameTaken bool
	if err := tx.QueryRow(ctx, query, ids, keys).Scan(&idTaken, &nameTaken); err != nil {
		return false, false, e.Wrap(whereami.WhereAmI(), err)
	}

	return idTaken, nameTaken, nil
}

func collectPermissions(rows pgx.Rows) ([]converter.PermissionModel, error) {
	models := make([]converter.PermissionModel, 0)
	for rows.Next() {
		var model converter.PermissionModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Description,
			&model.CreatedAt, &model.UpdatedAt, &model.DeletedAt); err != nil {
			return nil, err
		}

		models = append(models, model)
	}

	return models, rows.Err()
}
