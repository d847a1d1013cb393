package converter

import (
	"time"

	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/google/uuid"
)

// ProductModel представляет запись таблицы products вместе с записями
// таблиц вложенных объектов.
type ProductModel struct {
	ID          uuid.UUID  `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Price       int64      `db:"price"`
	CategoryID  uuid.UUID  `db:"category_id"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`

	Dimensions   *DimensionsModel
	Assessment   *AssessmentModel
	Attributes   *AttributesModel
	Availability *AvailabilityModel
	Image        *ImageModel
}

// DimensionsModel представляет запись таблицы product_dimensions.
type DimensionsModel struct {
	ID        uuid.UUID  `db:"id"`
	Height    float64    `db:"height"`
	Width     float64    `db:"width"`
	Depth     float64    `db:"depth"`
	Weight    float64    `db:"weight"`
	Unit      string     `db:"unit"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

// AssessmentModel представляет запись таблицы product_assessments.
type AssessmentModel struct {
	ID         uuid.UUID `db:"id"`
	Average    float64   `db:"average"`
	Count      int32     `db:"count"`
	RevisionID uuid.UUID `db:"revision_id"`
	Revisions  []AssessmentRevisionModel
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

// AssessmentRevisionModel представляет запись таблицы assessment_revisions.
type AssessmentRevisionModel struct {
	ID           uuid.UUID  `db:"id"`
	AssessmentID uuid.UUID  `db:"assessment_id"`
	Rating       int32      `db:"rating"`
	Comment      string     `db:"comment"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

// AttributesModel представляет запись таблицы product_attributes.
type AttributesModel struct {
	ID        uuid.UUID  `db:"id"`
	Color     string     `db:"color"`
	Material  string     `db:"material"`
	Brand     string     `db:"brand"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

// AvailabilityModel представляет запись таблицы product_availability.
type AvailabilityModel struct {
	ID        uuid.UUID  `db:"id"`
	InStock   bool       `db:"in_stock"`
	RestockAt *time.Time `db:"restock_at"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

// ImageModel представляет запись таблицы product_images.
type ImageModel struct {
	ID        uuid.UUID  `db:"id"`
	URL       string     `db:"url"`
	AltText   string     `db:"alt_text"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

// CategoryModel представляет запись таблицы categories.
type CategoryModel struct {
	ID          uuid.UUID  `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

// UserModel представляет запись таблицы users.
type UserModel struct {
	ID        uuid.UUID  `db:"id"`
	Email     string     `db:"email"`
	FirstName string     `db:"first_name"`
	LastName  string     `db:"last_name"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

// PermissionModel представляет запись таблицы permissions.
type PermissionModel struct {
	ID          uuid.UUID  `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

// RoleModel представляет запись таблицы roles.
type RoleModel struct {
	ID          uuid.UUID  `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events.
type OutboxEventModel struct {
	ID          int64                   `db:"id"`
	EventID     string                  `db:"event_id"`
	EventType   usecase.OutboxEventType `db:"event_type"`
	EntityID    uuid.UUID               `db:"entity_id"`
	Payload     []byte                  `db:"payload"`
	Status      usecase.OutboxStatus    `db:"status"`
	CreatedAt   time.Time               `db:"created_at"`
	ProcessedAt *time.Time              `db:"processed_at"`
}
