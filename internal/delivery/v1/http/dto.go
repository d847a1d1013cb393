package http

import (
	"time"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/google/uuid"
)

// ProductPayload — тело продукта в запросах на создание и обновление.
// Цена передаётся строкой в рублях ("599.99") и переводится в копейки на границе.
type ProductPayload struct {
	ID           string               `json:"id,omitempty"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	Price        string               `json:"price"`
	CategoryID   string               `json:"category_id"`
	Dimensions   *DimensionsPayload   `json:"dimensions,omitempty"`
	Attributes   *AttributesPayload   `json:"attributes,omitempty"`
	Availability *AvailabilityPayload `json:"availability,omitempty"`
}

type DimensionsPayload struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Weight float64 `json:"weight"`
	Unit   string  `json:"unit"`
}

type AttributesPayload struct {
	Color    string `json:"color"`
	Material string `json:"material"`
	Brand    string `json:"brand"`
}

type AvailabilityPayload struct {
	InStock   bool       `json:"in_stock"`
	RestockAt *time.Time `json:"restock_at,omitempty"`
}

type AddProductsPayload struct {
	Products []ProductPayload `json:"products"`
}

type UpdateProductsPayload struct {
	IDs      []string         `json:"ids"`
	Products []ProductPayload `json:"products"`
}

type DeleteIDsPayload struct {
	IDs []string `json:"ids"`
}

// ProductView — продукт в ответах API.
type ProductView struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	Price        string               `json:"price"`
	CategoryID   string               `json:"category_id"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    *time.Time           `json:"updated_at,omitempty"`
	Dimensions   *DimensionsPayload   `json:"dimensions,omitempty"`
	Attributes   *AttributesPayload   `json:"attributes,omitempty"`
	Availability *AvailabilityPayload `json:"availability,omitempty"`
	Assessment   *AssessmentView      `json:"assessment,omitempty"`
	ImageURL     string               `json:"image_url,omitempty"`
}

type AssessmentView struct {
	Average float64 `json:"average"`
	Count   int32   `json:"count"`
}

type ProductsPageView struct {
	Products []ProductView `json:"products"`
}

type CategoryProductsView struct {
	CategoryID string        `json:"category_id"`
	Products   []ProductView `json:"products"`
}

// CategoryPayload — тело категории в запросах (для ролей и прав форма та же).
type CategoryPayload struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type AddCategoriesPayload struct {
	Categories []CategoryPayload `json:"categories"`
}

type UpdateCategoriesPayload struct {
	IDs        []string          `json:"ids"`
	Categories []CategoryPayload `json:"categories"`
}

type CategoryView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type CategoriesPageView struct {
	Categories []CategoryView `json:"categories"`
}

type ListItemView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UserPayload struct {
	ID        string `json:"id,omitempty"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AddUsersPayload struct {
	Users []UserPayload `json:"users"`
}

type UpdateUsersPayload struct {
	IDs   []string      `json:"ids"`
	Users []UserPayload `json:"users"`
}

type UserView struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type NamedPayload struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type AddNamedPayload struct {
	Items []NamedPayload `json:"items"`
}

type UpdateNamedPayload struct {
	IDs   []string       `json:"ids"`
	Items []NamedPayload `json:"items"`
}

// parseOptionalID разбирает идентификатор из тела; пустая строка
// означает, что сервер сгенерирует его сам.
func parseOptionalID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.New(), nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, e.ErrInvalidIDs
	}

	return id, nil
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, e.ErrInvalidIDs
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, item := range raw {
		id, err := uuid.Parse(item)
		if err != nil {
			return nil, e.ErrInvalidIDs
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func toDomainProduct(payload ProductPayload) (domain.Product, error) {
	if payload.Name == "" || payload.CategoryID == "" {
		return domain.Product{}, e.ErrMissingFields
	}

	id, err := parseOptionalID(payload.ID)
	if err != nil {
		return domain.Product{}, err
	}

	categoryID, err := uuid.Parse(payload.CategoryID)
	if err != nil {
		return domain.Product{}, e.ErrInvalidIDs
	}

	price, err := parsePriceToCents(payload.Price)
	if err != nil {
		return domain.Product{}, err
	}

	product := domain.Product{
		ID:          id,
		Name:        payload.Name,
		Description: payload.Description,
		Price:       price,
		CategoryID:  categoryID,
	}

	if payload.Dimensions != nil {
		product.Dimensions = &domain.Dimensions{
			Height: payload.Dimensions.Height,
			Width:  payload.Dimensions.Width,
			Depth:  payload.Dimensions.Depth,
			Weight: payload.Dimensions.Weight,
			Unit:   payload.Dimensions.Unit,
		}
	}
	if payload.Attributes != nil {
		product.Attributes = &domain.Attributes{
			Color:    payload.Attributes.Color,
			Material: payload.Attributes.Material,
			Brand:    payload.Attributes.Brand,
		}
	}
	if payload.Availability != nil {
		product.Availability = &domain.Availability{
			InStock:   payload.Availability.InStock,
			RestockAt: payload.Availability.RestockAt,
		}
	}

	return product, nil
}

func toDomainProducts(payloads []ProductPayload) ([]domain.Product, error) {
	if len(payloads) == 0 {
		return nil, e.ErrMissingFields
	}

	products := make([]domain.Product, 0, len(payloads))
	for _, payload := range payloads {
		product, err := toDomainProduct(payload)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

func toProductView(product domain.Product) ProductView {
	view := ProductView{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       formatCents(product.Price),
		CategoryID:  product.CategoryID.String(),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}

	if product.Dimensions != nil {
		view.Dimensions = &DimensionsPayload{
			Height: product.Dimensions.Height,
			Width:  product.Dimensions.Width,
			Depth:  product.Dimensions.Depth,
			Weight: product.Dimensions.Weight,
			Unit:   product.Dimensions.Unit,
		}
	}
	if product.Attributes != nil {
		view.Attributes = &AttributesPayload{
			Color:    product.Attributes.Color,
			Material: product.Attributes.Material,
			Brand:    product.Attributes.Brand,
		}
	}
	if product.Availability != nil {
		view.Availability = &AvailabilityPayload{
			InStock:   product.Availability.InStock,
			RestockAt: product.Availability.RestockAt,
		}
	}
	if product.Assessment != nil {
		view.Assessment = &AssessmentView{
			Average: product.Assessment.Average,
			Count:   product.Assessment.Count,
		}
	}
	if product.Image != nil {
		view.ImageURL = product.Image.URL
	}

	return view
}

func toProductViews(products []domain.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return views
}

func toDomainCategories(payloads []CategoryPayload) ([]domain.Category, error) {
	if len(payloads) == 0 {
		return nil, e.ErrMissingFields
	}

	categories := make([]domain.Category, 0, len(payloads))
	for _, payload := range payloads {
		if payload.Name == "" {
			return nil, e.ErrMissingFields
		}

		id, err := parseOptionalID(payload.ID)
		if err != nil {
			return nil, err
		}

		categories = append(categories, domain.Category{
			ID:          id,
			Name:        payload.Name,
			Description: payload.Description,
		})
	}

	return categories, nil
}

func toCategoryViews(categories []domain.Category) []CategoryView {
	views := make([]CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, CategoryView{
			ID:          category.ID.String(),
			Name:        category.Name,
			Description: category.Description,
			CreatedAt:   category.CreatedAt,
			UpdatedAt:   category.UpdatedAt,
		})
	}

	return views
}

func toDomainUsers(payloads []UserPayload) ([]domain.User, error) {
	if len(payloads) == 0 {
		return nil, e.ErrMissingFields
	}

	users := make([]domain.User, 0, len(payloads))
	for _, payload := range payloads {
		if payload.Email == "" {
			return nil, e.ErrMissingFields
		}

		id, err := parseOptionalID(payload.ID)
		if err != nil {
			return nil, err
		}

		users = append(users, domain.User{
			ID:        id,
			Email:     payload.Email,
			FirstName: payload.FirstName,
			LastName:  payload.LastName,
		})
	}

	return users, nil
}

func toUserViews(users []domain.User) []UserView {
	views := make([]UserView, 0, len(users))
	for _, user := range users {
		views = append(views, UserView{
			ID:        user.ID.String(),
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		})
	}

	return views
}

func toDomainPermissions(payloads []NamedPayload) ([]domain.Permission, error) {
	if len(payloads) == 0 {
		return nil, e.ErrMissingFields
	}

	permissions := make([]domain.Permission, 0, len(payloads))
	for _, payload := range payloads {
		if payload.Name == "" {
			return nil, e.ErrMissingFields
		}

		id, err := parseOptionalID(payload.ID)
		if err != nil {
			return nil, err
		}

		permissions = append(permissions, domain.Permission{
			ID:          id,
			Name:        payload.Name,
			Description: payload.Description,
		})
	}

	return permissions, nil
}

func toDomainRoles(payloads []NamedPayload) ([]domain.Role, error) {
	if len(payloads) == 0 {
		return nil, e.ErrMissingFields
	}

	roles := make([]domain.Role, 0, len(payloads))
	for _, payload := range payloads {
		if payload.Name == "" {
			return nil, e.ErrMissingFields
		}

		id, err := parseOptionalID(payload.ID)
		if err != nil {
			return nil, err
		}

		roles = append(roles, domain.Role{
			ID:          id,
			Name:        payload.Name,
			Description: payload.Description,
		})
	}

	return roles, nil
}

func toCategoryListViews(items []usecase.CategoryListItem) []ListItemView {
	views := make([]ListItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ListItemView{
			ID:          item.ID.String(),
			Name:        item.Name,
			Description: item.Description,
		})
	}

	return views
}

func toRoleListViews(items []usecase.RoleListItem) []ListItemView {
	views := make([]ListItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ListItemView{
			ID:          item.ID.String(),
			Name:        item.Name,
			Description: item.Description,
		})
	}

	return views
}
