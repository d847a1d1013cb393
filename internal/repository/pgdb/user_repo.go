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

// UserRepo реализует репозиторий пользователей поверх PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
	conv converter.UserConverter
}

func NewUserRepo(pool *pgxpool.Pool, conv converter.UserConverter) *UserRepo {
	return &UserRepo{pool: pool, conv: conv}
}

const selectUsers = `
	SELECT id, email, first_name, last_name, created_at, updated_at, deleted_at
	FROM users
	WHERE deleted_at IS NULL
`

func (u *UserRepo) GetAll(ctx context.Context) ([]domain.User, error) {
	query := selectUsers + ` ORDER BY created_at, id`

	rows, err := u.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := collectUsers(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToArrEntity(models), nil
}

func (u *UserRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	query := selectUsers + ` AND id = ANY($1) ORDER BY created_at, id`

	rows, err := u.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := collectUsers(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToArrEntity(models), nil
}

func (u *UserRepo) AddRange(ctx context.Context, users []domain.User) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO users (id, email, first_name, last_name, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	var rows int64
	for _, model := range u.conv.ToArrModel(users) {
		res, err := tx.Exec(ctx, query, model.ID, model.Email, model.FirstName, model.LastName, model.CreatedAt)
		if err != nil {
			if postgresDuplicate(err) {
				return 0, e.Wrap(whereami.WhereAmI(), e.ErrUserExists)
			}
			return 0, e.Wrap(whereami.WhereAmI(), err)
		}
		rows += res.RowsAffected()
	}

	return rows, nil
}

func (u *UserRepo) UpdateRange(ctx context.Context, users []domain.User) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE users
		SET email = $2, first_name = $3, last_name = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL
	`

	var rows int64
	for _, model := range u.conv.ToArrModel(users) {
		res, err := tx.Exec(ctx, query, model.ID, model.Email, model.FirstName, model.LastName, model.UpdatedAt)
		if err != nil {
			return 0, e.Wrap(whereami.WhereAmI(), err)
		}
		rows += res.RowsAffected()
	}

	return rows, nil
}

func (u *UserRepo) RemoveRange(ctx context.Context, users []domain.User) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE users SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`

	var rows int64
	for _, user := range users {
		deletedAt := user.DeletedAt
		if deletedAt == nil {
			now := time.Now()
			deletedAt = &now
		}

		res, err := tx.Exec(ctx, query, user.ID, *deletedAt)
		if err != nil {
			return 0, e.Wrap(whereami.WhereAmI(), err)
		}
		rows += res.RowsAffected()
	}

	return rows, nil
}

// Exists сообщает о занятых идентификаторах и адресах почты.
// Почта сравнивается по ключу нормализации.
func (u *UserRepo) Exists(ctx context.Context, ids []uuid.UUID, emails []string) (bool, bool, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return false, false, e.Wrap(whereami.WhereAmI(), err)
	}

	keys := make([]string, 0, len(emails))
	for _, email := range emails {
		keys = append(keys, normalize.Key(email))
	}

	query := `
		SELECT
			EXISTS(SELECT 1 FROM users WHERE id = ANY($1) AND deleted_at IS NULL),
			EXISTS(SELECT 1 FROM users WHERE lower(btrim(email)) = ANY($2) AND deleted_at IS NULL)
	`

	var idTaken, emailTaken bool
	if err := tx.QueryRow(ctx, query, ids, keys).Scan(&idTaken, &emailTaken); err != nil {
		return false, false, e.Wrap(whereami.WhereAmI(), err)
	}

	return idTaken, emailTaken, nil
}

func collectUsers(rows pgx.Rows) ([]converter.UserModel, error) {
	models := make([]converter.UserModel, 0)
	for rows.Next() {
		var model converter.UserModel
		if err := rows.Scan(&model.ID, &model.Email, &model.FirstName, &model.LastName,
			&model.CreatedAt, &model.UpdatedAt, &model.DeletedAt); err != nil {
			return nil, err
		}

		models = append(models, model)
	}

	return models, rows.Err()
}
