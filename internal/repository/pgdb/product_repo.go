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

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
// Чтения собирают агрегат вместе с вложенными объектами, записи ведутся
// внутри внешней транзакции из контекста.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

const selectProducts = `
	SELECT
		p.id, p.name, p.description, p.price, p.category_id,
		p.created_at, p.updated_at, p.deleted_at,
		d.id, d.height, d.width, d.depth, d.weight, d.unit,
		d.created_at, d.updated_at, d.deleted_at,
		a.id, a.average, a.count, a.revision_id,
		a.created_at, a.updated_at, a.deleted_at,
		attr.id, attr.color, attr.material, attr.brand,
		attr.created_at, attr.updated_at, attr.deleted_at,
		av.id, av.in_stock, av.restock_at,
		av.created_at, av.updated_at, av.deleted_at,
		img.id, img.url, img.alt_text,
		img.created_at, img.updated_at, img.deleted_at
	FROM products p
	LEFT JOIN product_dimensions d ON d.product_id = p.id AND d.deleted_at IS NULL
	LEFT JOIN product_assessments a ON a.product_id = p.id AND a.deleted_at IS NULL
	LEFT JOIN product_attributes attr ON attr.product_id = p.id AND attr.deleted_at IS NULL
	LEFT JOIN product_availability av ON av.product_id = p.id AND av.deleted_at IS NULL
	LEFT JOIN product_images img ON img.product_id = p.id AND img.deleted_at IS NULL
	WHERE p.deleted_at IS NULL
`

// GetAll возвращает полный срез активных продуктов с вложенными объектами.
func (p *ProductRepo) GetAll(ctx context.Context) ([]domain.Product, error) {
	query := selectProducts + ` ORDER BY p.created_at, p.id`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := p.collectProducts(ctx, rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// GetByIDs возвращает активные продукты по идентификаторам.
func (p *ProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	query := selectProducts + ` AND p.id = ANY($1) ORDER BY p.created_at, p.id`

	rows, err := p.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := p.collectProducts(ctx, rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// GetByCategories возвращает активные продукты указанных категорий.
func (p *ProductRepo) GetByCategories(ctx context.Context, categoryIDs []uuid.UUID) ([]domain.Product, error) {
	query := selectProducts + ` AND p.category_id = ANY($1) ORDER BY p.created_at, p.id`

	rows, err := p.pool.Query(ctx, query, categoryIDs)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := p.collectProducts(ctx, rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// AddRange вставляет продукты вместе с вложенными объектами и возвращает
// число вставленных строк products.
func (p *ProductRepo) AddRange(ctx context.Context, products []domain.Product) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO products (id, name, description, price, category_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	var rows int64
	for _, model := range p.conv.ToArrModel(products) {
		res, err := tx.Exec(ctx, query,
			model.ID, model.Name, model.Description, model.Price, model.CategoryID, model.CreatedAt)
		if err != nil {
			if postgresDuplicate(err) {
				return 0, e.Wrap(whereami.WhereAmI(), e.ErrProductExists)
			}
			return 0, e.Wrap(whereami.WhereAmI(), err)
		}
		rows += res.RowsAffected()

		if err := p.insertSatellites(ctx, tx, &model); err != nil {
			return 0, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return rows, nil
}

// UpdateRange обновляет продукты и их вложенные объекты; возвращает число
// затронутых строк products. Вложенный объект обновляется апсертом,
// пропавший — мягко удаляется.
func (p *ProductRepo) UpdateRange(ctx context.Context, products []domain.Product) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, category_id = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
	`

	var rows int64
	for _, model := range p.conv.ToArrModel(products) {
		res, err := tx.Exec(ctx, query,
			model.ID, model.Name, model.Description, model.Price, model.CategoryID, model.UpdatedAt)
		if err != nil {
			return 0, e.Wrap(whereami.WhereAmI(), err)
		}
		rows += res.RowsAffected()

		if err := p.upsertSatellites(ctx, tx, &model); err != nil {
			return 0, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return rows, nil
}

// RemoveRange мягко удаляет продукты и каскадно их вложенные объекты;
// возвращает число затронутых строк products.
func (p *ProductRepo) RemoveRange(ctx context.Context, products []domain.Product) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	productQuery := `
		UPDATE products SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	satelliteQuery := `
		UPDATE %s SET deleted_at = $2
		WHERE product_id = $1 AND deleted_at IS NULL
	`

	var rows int64
	for _, product := range products {
		deletedAt := product.DeletedAt
		if deletedAt == nil {
			now := time.Now()
			deletedAt = &now
		}

		res, err := tx.Exec(ctx, productQuery, product.ID, *deletedAt)
		if err != nil {
			return 0, e.Wrap(whereami.WhereAmI(), err)
		}
		rows += res.RowsAffected()

		for _, table := range satelliteTables {
			if _, err := tx.Exec(ctx, sprintfQuery(satelliteQuery, table), product.ID, *deletedAt); err != nil {
				return 0, e.Wrap(whereami.WhereAmI(), err)
			}
		}
	}

	return rows, nil
}

// Exists сообщает, заняты ли какие-либо из идентификаторов или имён
// среди активных продуктов. Имена сравниваются по ключу нормализации.
func (p *ProductRepo) Exists(ctx context.Context, ids []uuid.UUID, names []string) (bool, bool, error) {
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
			EXISTS(SELECT 1 FROM products WHERE id = ANY($1) AND deleted_at IS NULL),
			EXISTS(SELECT 1 FROM products WHERE lower(btrim(name)) = ANY($2) AND deleted_at IS NULL)
	`

	var idTaken, nameTaken bool
	if err := tx.QueryRow(ctx, query, ids, keys).Scan(&idTaken, &nameTaken); err != nil {
		return false, false, e.Wrap(whereami.WhereAmI(), err)
	}

	return idTaken, nameTaken, nil
}

var satelliteTables = []string{
	"product_dimensions",
	"product_assessments",
	"product_attributes",
	"product_availability",
	"product_images",
}

func (p *ProductRepo) insertSatellites(ctx context.Context, tx pgx.Tx, model *converter.ProductModel) error {
	if d := model.Dimensions; d != nil {
		query := `
			INSERT INTO product_dimensions (id, product_id, height, width, depth, weight, unit, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		if _, err := tx.Exec(ctx, query,
			d.ID, model.ID, d.Height, d.Width, d.Depth, d.Weight, d.Unit, d.CreatedAt); err != nil {
			return err
		}
	}

	if a := model.Assessment; a != nil {
		query := `
			INSERT INTO product_assessments (id, product_id, average, count, revision_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		if _, err := tx.Exec(ctx, query,
			a.ID, model.ID, a.Average, a.Count, a.RevisionID, a.CreatedAt); err != nil {
			return err
		}

		revisionQuery := `
			INSERT INTO assessment_revisions (id, assessment_id, rating, comment, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`
		for _, rev := range a.Revisions {
			if _, err := tx.Exec(ctx, revisionQuery,
				rev.ID, a.ID, rev.Rating, rev.Comment, rev.CreatedAt); err != nil {
				return err
			}
		}
	}

	if attr := model.Attributes; attr != nil {
		query := `
			INSERT INTO product_attributes (id, product_id, color, material, brand, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		if _, err := tx.Exec(ctx, query,
			attr.ID, model.ID, attr.Color, attr.Material, attr.Brand, attr.CreatedAt); err != nil {
			return err
		}
	}

	if av := model.Availability; av != nil {
		query := `
			INSERT INTO product_availability (id, product_id, in_stock, restock_at, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`
		if _, err := tx.Exec(ctx, query,
			av.ID, model.ID, av.InStock, av.RestockAt, av.CreatedAt); err != nil {
			return err
		}
	}

	if img := model.Image; img != nil {
		query := `
			INSERT INTO product_images (id, product_id, url, alt_text, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`
		if _, err := tx.Exec(ctx, query,
			img.ID, model.ID, img.URL, img.AltText, img.CreatedAt); err != nil {
			return err
		}
	}

	return nil
}

func (p *ProductRepo) upsertSatellites(ctx context.Context, tx pgx.Tx, model *converter.ProductModel) error {
	if d := model.Dimensions; d != nil {
		query := `
			INSERT INTO product_dimensions (id, product_id, height, width, depth, weight, unit, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, now())
			ON CONFLICT (product_id) WHERE deleted_at IS NULL
			DO UPDATE SET
				height = EXCLUDED.height, width = EXCLUDED.width, depth = EXCLUDED.depth,
				weight = EXCLUDED.weight, unit = EXCLUDED.unit, updated_at = now()
		`
		if _, err := tx.Exec(ctx, query,
			d.ID, model.ID, d.Height, d.Width, d.Depth, d.Weight, d.Unit); err != nil {
			return err
		}
	} else if err := p.retireSatellite(ctx, tx, "product_dimensions", model.ID); err != nil {
		return err
	}

	if a := model.Assessment; a != nil {
		query := `
			INSERT INTO product_assessments (id, product_id, average, count, revision_id, created_at)
			VALUES ($1, $2, $3, $4, $5, now())
			ON CONFLICT (product_id) WHERE deleted_at IS NULL
			DO UPDATE SET
				average = EXCLUDED.average, count = EXCLUDED.count,
				revision_id = EXCLUDED.revision_id, updated_at = now()
		`
		if _, err := tx.Exec(ctx, query,
			a.ID, model.ID, a.Average, a.Count, a.RevisionID); err != nil {
			return err
		}
	} else if err := p.retireSatellite(ctx, tx, "product_assessments", model.ID); err != nil {
		return err
	}

	if attr := model.Attributes; attr != nil {
		query := `
			INSERT INTO product_attributes (id, product_id, color, material, brand, created_at)
			VALUES ($1, $2, $3, $4, $5, now())
			ON CONFLICT (product_id) WHERE deleted_at IS NULL
			DO UPDATE SET
				color = EXCLUDED.color, material = EXCLUDED.material,
				brand = EXCLUDED.brand, updated_at = now()
		`
		if _, err := tx.Exec(ctx, query,
			attr.ID, model.ID, attr.Color, attr.Material, attr.Brand); err != nil {
			return err
		}
	} else if err := p.retireSatellite(ctx, tx, "product_attributes", model.ID); err != nil {
		return err
	}

	if av := model.Availability; av != nil {
		query := `
			INSERT INTO product_availability (id, product_id, in_stock, restock_at, created_at)
			VALUES ($1, $2, $3, $4, now())
			ON CONFLICT (product_id) WHERE deleted_at IS NULL
			DO UPDATE SET
				in_stock = EXCLUDED.in_stock, restock_at = EXCLUDED.restock_at, updated_at = now()
		`
		if _, err := tx.Exec(ctx, query,
			av.ID, model.ID, av.InStock, av.RestockAt); err != nil {
			return err
		}
	} else if err := p.retireSatellite(ctx, tx, "product_availability", model.ID); err != nil {
		return err
	}

	if img := model.Image; img != nil {
		query := `
			INSERT INTO product_images (id, product_id, url, alt_text, created_at)
			VALUES ($1, $2, $3, $4, now())
			ON CONFLICT (product_id) WHERE deleted_at IS NULL
			DO UPDATE SET
				url = EXCLUDED.url, alt_text = EXCLUDED.alt_text, updated_at = now()
		`
		if _, err := tx.Exec(ctx, query,
			img.ID, model.ID, img.URL, img.AltText); err != nil {
			return err
		}
	} else if err := p.retireSatellite(ctx, tx, "product_images", model.ID); err != nil {
		return err
	}

	return nil
}

func (p *ProductRepo) retireSatellite(ctx context.Context, tx pgx.Tx, table string, productID uuid.UUID) error {
	query := sprintfQuery(`
		UPDATE %s SET deleted_at = now()
		WHERE product_id = $1 AND deleted_at IS NULL
	`, table)

	_, err := tx.Exec(ctx, query, productID)
	return err
}

// collectProducts сканирует строки выборки selectProducts и дочитывает
// ревизии оценок вторым запросом.
func (p *ProductRepo) collectProducts(ctx context.Context, rows pgx.Rows) ([]converter.ProductModel, error) {
	models := make([]converter.ProductModel, 0)
	for rows.Next() {
		model, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}

		models = append(models, *model)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := p.attachRevisions(ctx, models); err != nil {
		return nil, err
	}

	return models, nil
}

func (p *ProductRepo) attachRevisions(ctx context.Context, models []converter.ProductModel) error {
	byAssessment := make(map[uuid.UUID]*converter.AssessmentModel)
	assessmentIDs := make([]uuid.UUID, 0, len(models))
	for i := range models {
		if a := models[i].Assessment; a != nil {
			byAssessment[a.ID] = a
			assessmentIDs = append(assessmentIDs, a.ID)
		}
	}
	if len(assessmentIDs) == 0 {
		return nil
	}

	query := `
		SELECT id, assessment_id, rating, comment, created_at, updated_at, deleted_at
		FROM assessment_revisions
		WHERE assessment_id = ANY($1) AND deleted_at IS NULL
		ORDER BY created_at, id
	`

	rows, err := p.pool.Query(ctx, query, assessmentIDs)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var rev converter.AssessmentRevisionModel
		if err := rows.Scan(&rev.ID, &rev.AssessmentID, &rev.Rating, &rev.Comment,
			&rev.CreatedAt, &rev.UpdatedAt, &rev.DeletedAt); err != nil {
			return err
		}

		if a, ok := byAssessment[rev.AssessmentID]; ok {
			a.Revisions = append(a.Revisions, rev)
		}
	}

	return rows.Err()
}

// scanProduct собирает модель продукта из строки с LEFT JOIN вложенных
// объектов: отсутствующий объект приходит NULL-колонками.
func scanProduct(rows pgx.Rows) (*converter.ProductModel, error) {
	var model converter.ProductModel

	var (
		dimID                                  *uuid.UUID
		dimHeight, dimWidth, dimDepth, dimWeight *float64
		dimUnit                                *string
		dimCreated, dimUpdated, dimDeleted     *time.Time

		assessID, assessRevisionID         *uuid.UUID
		assessAverage                      *float64
		assessCount                        *int32
		assessCreated, assessUpdated, assessDeleted *time.Time

		attrID                             *uuid.UUID
		attrColor, attrMaterial, attrBrand *string
		attrCreated, attrUpdated, attrDeleted *time.Time

		availID                            *uuid.UUID
		availInStock                       *bool
		availRestock                       *time.Time
		availCreated, availUpdated, availDeleted *time.Time

		imgID                              *uuid.UUID
		imgURL, imgAltText                 *string
		imgCreated, imgUpdated, imgDeleted *time.Time
	)

	err := rows.Scan(
		&model.ID, &model.Name, &model.Description, &model.Price, &model.CategoryID,
		&model.CreatedAt, &model.UpdatedAt, &model.DeletedAt,
		&dimID, &dimHeight, &dimWidth, &dimDepth, &dimWeight, &dimUnit,
		&dimCreated, &dimUpdated, &dimDeleted,
		&assessID, &assessAverage, &assessCount, &assessRevisionID,
		&assessCreated, &assessUpdated, &assessDeleted,
		&attrID, &attrColor, &attrMaterial, &attrBrand,
		&attrCreated, &attrUpdated, &attrDeleted,
		&availID, &availInStock, &availRestock,
		&availCreated, &availUpdated, &availDeleted,
		&imgID, &imgURL, &imgAltText,
		&imgCreated, &imgUpdated, &imgDeleted,
	)
	if err != nil {
		return nil, err
	}

	if dimID != nil {
		model.Dimensions = &converter.DimensionsModel{
			ID: *dimID, Height: *dimHeight, Width: *dimWidth, Depth: *dimDepth,
			Weight: *dimWeight, Unit: *dimUnit,
			CreatedAt: *dimCreated, UpdatedAt: dimUpdated, DeletedAt: dimDeleted,
		}
	}
	if assessID != nil {
		model.Assessment = &converter.AssessmentModel{
			ID: *assessID, Average: *assessAverage, Count: *assessCount,
			RevisionID: *assessRevisionID,
			CreatedAt:  *assessCreated, UpdatedAt: assessUpdated, DeletedAt: assessDeleted,
		}
	}
	if attrID != nil {
		model.Attributes = &converter.AttributesModel{
			ID: *attrID, Color: *attrColor, Material: *attrMaterial, Brand: *attrBrand,
			CreatedAt: *attrCreated, UpdatedAt: attrUpdated, DeletedAt: attrDeleted,
		}
	}
	if availID != nil {
		model.Availability = &converter.AvailabilityModel{
			ID: *availID, InStock: *availInStock, RestockAt: availRestock,
			CreatedAt: *availCreated, UpdatedAt: availUpdated, DeletedAt: availDeleted,
		}
	}
	if imgID != nil {
		model.Image = &converter.ImageModel{
			ID: *imgID, URL: *imgURL, AltText: *imgAltText,
			CreatedAt: *imgCreated, UpdatedAt: imgUpdated, DeletedAt: imgDeleted,
		}
	}

	return &model, nil
}
