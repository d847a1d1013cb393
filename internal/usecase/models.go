package usecase

import (
	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/google/uuid"
)

// PRODUCT USECASE

// AddProductsReq — запрос на добавление продуктов в каталог.
type AddProductsReq struct {
	Products []domain.Product
}

// UpdateProductsReq — запрос на обновление продуктов: набор идентификаторов
// и предлагаемое состояние. Текущее состояние фасад читает из хранилища сам.
type UpdateProductsReq struct {
	IDs      []uuid.UUID
	Products []domain.Product
}

// DeleteProductsReq — запрос на мягкое удаление продуктов.
type DeleteProductsReq struct {
	IDs []uuid.UUID
}

// GetProductsReq — постраничный запрос каталога.
type GetProductsReq struct {
	Page     int
	PageSize int
}

// GetProductsRes — страница каталога.
type GetProductsRes struct {
	Products []domain.Product
}

// GetProductsByCategoryReq — запрос продуктов по категориям.
// Пагинация применяется внутри каждой категории независимо.
type GetProductsByCategoryReq struct {
	Page        int
	PageSize    int
	CategoryIDs []uuid.UUID
}

// CategoryProducts — окно одной категории в сгруппированной выдаче.
type CategoryProducts struct {
	CategoryID uuid.UUID
	Products   []domain.Product
}

// AttachProductImageReq — запрос на привязку изображения к продукту.
// Бинарь уходит в S3, продукт получает вложенный объект Image с ключом.
type AttachProductImageReq struct {
	ProductID uuid.UUID
	AltText   string
	Image     ProductImage
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// CATEGORY USECASE

type AddCategoriesReq struct {
	Categories []domain.Category
}

type UpdateCategoriesReq struct {
	IDs        []uuid.UUID
	Categories []domain.Category
}

type DeleteCategoriesReq struct {
	IDs []uuid.UUID
}

type GetCategoriesReq struct {
	Page     int
	PageSize int
}

type GetCategoriesRes struct {
	Categories []domain.Category
}

// CategoryListItem — запись страничного листинга категорий в кэше.
type CategoryListItem struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// ACCESS USECASE

type AddUsersReq struct {
	Users []domain.User
}

type UpdateUsersReq struct {
	IDs   []uuid.UUID
	Users []domain.User
}

type DeleteUsersReq struct {
	IDs []uuid.UUID
}

type AddPermissionsReq struct {
	Permissions []domain.Permission
}

type UpdatePermissionsReq struct {
	IDs         []uuid.UUID
	Permissions []domain.Permission
}

type DeletePermissionsReq struct {
	IDs []uuid.UUID
}

type AddRolesReq struct {
	Roles []domain.Role
}

type UpdateRolesReq struct {
	IDs   []uuid.UUID
	Roles []domain.Role
}

type DeleteRolesReq struct {
	IDs []uuid.UUID
}

type GetRolesReq struct {
	Page     int
	PageSize int
}

// RoleListItem — запись страничного листинга ролей в кэше.
type RoleListItem struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// INFRASTRUCTURE

// UploadImagesRes — результат загрузки изображений (ключи в S3).
type UploadImagesRes struct {
	ImagesKeys []string
}

// UploadImagesReq — запрос на загрузку изображений продукта.
type UploadImagesReq struct {
	Name   string
	Images []ProductImage
}

// WriteRawMessageReq — запрос на публикацию готового payload в брокер.
type WriteRawMessageReq struct {
	EntityID uuid.UUID
	Payload  []byte
}

// MAPPERS

func NewAddProductsReq(products []domain.Product) *AddProductsReq {
	return &AddProductsReq{Products: products}
}

func NewUpdateProductsReq(ids []uuid.UUID, products []domain.Product) *UpdateProductsReq {
	return &UpdateProductsReq{IDs: ids, Products: products}
}

func NewDeleteProductsReq(ids []uuid.UUID) *DeleteProductsReq {
	return &DeleteProductsReq{IDs: ids}
}

func NewGetProductsReq(page, pageSize int) *GetProductsReq {
	return &GetProductsReq{Page: page, PageSize: pageSize}
}

func NewGetProductsRes(products []domain.Product) *GetProductsRes {
	return &GetProductsRes{Products: products}
}

func NewGetProductsByCategoryReq(page, pageSize int, categoryIDs []uuid.UUID) *GetProductsByCategoryReq {
	return &GetProductsByCategoryReq{Page: page, PageSize: pageSize, CategoryIDs: categoryIDs}
}

func NewAttachProductImageReq(productID uuid.UUID, altText string, image ProductImage) *AttachProductImageReq {
	return &AttachProductImageReq{ProductID: productID, AltText: altText, Image: image}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewAddCategoriesReq(categories []domain.Category) *AddCategoriesReq {
	return &AddCategoriesReq{Categories: categories}
}

func NewUpdateCategoriesReq(ids []uuid.UUID, categories []domain.Category) *UpdateCategoriesReq {
	return &UpdateCategoriesReq{IDs: ids, Categories: categories}
}

func NewDeleteCategoriesReq(ids []uuid.UUID) *DeleteCategoriesReq {
	return &DeleteCategoriesReq{IDs: ids}
}

func NewGetCategoriesReq(page, pageSize int) *GetCategoriesReq {
	return &GetCategoriesReq{Page: page, PageSize: pageSize}
}

func NewGetCategoriesRes(categories []domain.Category) *GetCategoriesRes {
	return &GetCategoriesRes{Categories: categories}
}

func NewUploadImagesReq(name string, images []ProductImage) *UploadImagesReq {
	return &UploadImagesReq{Name: name, Images: images}
}

func NewUploadImagesRes(imagesKeys []string) *UploadImagesRes {
	return &UploadImagesRes{ImagesKeys: imagesKeys}
}

func NewWriteRawMessageReq(entityID uuid.UUID, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{EntityID: entityID, Payload: payload}
}
