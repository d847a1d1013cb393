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

// RoleRepo реализует репозиторий ролей поверх PostgreSQL.
type RoleRepo struct {
	pool *pgxpool.Pool
	conv converter.RoleConverter
}

func NewRoleRepo(pool *pgxpool.Pool, conv converter.RoleConverter) *RoleRepo {
	return &RoleRepo{pool: pool, conv: conv}
}

const selectRoles = `
	SELECT id, name, description, created_at, updated_at, deleted_at
	FROM roles
	WHERE deleted_at IS NULL
`

func (r *RoleRepo) GetAll(ctx context.Context) ([]domain.Role, error) {
	query := selectRoles + ` ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := collectRoles(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToArrEntity(models), nil
}

func (r *RoleRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Role, error) {
	query := selectRoles + ` AND id = ANY($1) ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := collectRoles(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToArrEntity(models), nil
}

func (r *RoleRepo) AddRange(ctx context.Context, roles []domain.Role) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO roles (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)
	`

	var rows int64
	for _, model := range r.conv.ToArrModel(roles) {
		res, err := tx.Exec(ctx, query, model.ID, model.Name, model.Description, model.CreatedAt)
		if err != nil {
			if postgresDuplicate(err) {
				return 0, e.Wrap(whereami.WhereAmI(), e.ErrRoleExists)
			}
			return 0, e.Wrap(whereami.WhereAmI(), err)
		}
		rows += res.RowsAffected()
	}

	return rows, nil
}

func (r *RoleRepo) UpdateRange(ctx context.Context, roles []domain.Role) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE roles
		SET name = $2, description = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL
	`

	var rows int64
	for _, model := range r.conv.ToArrModel(roles) {
		res, err := tx.Exec(ctx, query, model.ID, model.Name, model.Description, model.UpdatedAt)
		if err != nil {
			return 0, e.Wrap(whereami.WhereAmI(), err)
		}
		rows += res.RowsAffected()
	}

	return rows, nil
}

func (r *RoleRepo) RemoveRange(ctx context.Context, roles []domain.Role) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE roles SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`

	var rows int64
	for _, role := range roles {
		deletedAt := role.DeletedAt
		if deletedAt == nil {
			now := time.Now()
			deletedAt = &now
		}

		res, err := tx.Exec(ctx, query, role.ID, *deletedAt)
		if err != nil {
			return 0, e.Wrap(whereami.WhereAmI(), err)
		}
		rows += res.RowsAffected()
	}

	return rows, nil
}

func (r *RoleRepo) Exists(ctx context.Context, ids []uuid.UUID, names []string) (bool, bool, error) {
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
			EXISTS(SELECT 1 FROM roles WHERE id = ANY($1) AND deleted_at IS NULL),
			EXISTS(SELECT 1 FROM roles WHERE lower(btrim(name)) = ANY($2) AND deleted_at IS NULL)
	`

	var idTaken, nameTaken bool
	if err := tx.QueryRow(ctx, query, ids, keys).Scan(&idTaken, &nameTaken); err != nil {
		return false, false, e.Wrap(whereami.WhereAmI(), err)
	}

	return idTaken, nameTaken, nil
}

func collectRoles(rows pgx.Rows) ([]converter.RoleModel, error) {
	models := make([]converter.RoleModel, 0)
	for rows.Next() {
		var model converter.RoleModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Description,
			&model.CreatedAt, &model.UpdatedAt, &model.DeletedAt); err != nil {
			return nil, err
		}

		models = append(models, model)
	}

	return models, rows.Err()
}
