package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// addProducts
//
//	@Summary		Добавление товаров
//	@Description	Добавляет набор товаров в каталог одной транзакцией
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AddProductsPayload	true	"Товары"
//	@Success		201		{object}	map[string]interface{}	"Успешное создание"
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		409		{object}	ErrorResponse	"Товар уже существует"
//	@Router			/products [post]
func (p *ProductHandler) addProducts(w http.ResponseWriter, r *http.Request) {
	var payload AddProductsPayload
	if err := decodeJSON(r, &payload); err != nil {
		p.logger.Warnf("add products: malformed body")
		WriteError(w, err)
		return
	}

	products, err := toDomainProducts(payload.Products)
	if err != nil {
		p.logger.Warnf("add products: %s", err.Error())
		WriteError(w, err)
		return
	}

	if err := p.productUsecase.AddProducts(r.Context(), usecase.NewAddProductsReq(products)); err != nil {
		p.logger.Warnf("add products: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"added": len(products),
	})
}

// updateProducts
//
//	@Summary		Обновление товаров
//	@Description	Применяет предложенное состояние к существующим товарам
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateProductsPayload	true	"Идентификаторы и новое состояние"
//	@Success		200		{object}	map[string]interface{}	"Успешное обновление"
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Failure		409		{object}	ErrorResponse	"Обновление не содержит изменений"
//	@Router			/products [put]
func (p *ProductHandler) updateProducts(w http.ResponseWriter, r *http.Request) {
	var payload UpdateProductsPayload
	if err := decodeJSON(r, &payload); err != nil {
		p.logger.Warnf("update products: malformed body")
		WriteError(w, err)
		return
	}

	ids, err := parseIDs(payload.IDs)
	if err != nil {
		p.logger.Warnf("update products: %s", err.Error())
		WriteError(w, err)
		return
	}

	products, err := toDomainProducts(payload.Products)
	if err != nil {
		p.logger.Warnf("update products: %s", err.Error())
		WriteError(w, err)
		return
	}

	if err := p.productUsecase.UpdateProducts(r.Context(), usecase.NewUpdateProductsReq(ids, products)); err != nil {
		p.logger.Warnf("update products: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"updated": len(ids),
	})
}

// deleteProducts
//
//	@Summary		Удаление товаров
//	@Description	Мягко удаляет товары и их вложенные объекты
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		DeleteIDsPayload	true	"Идентификаторы"
//	@Success		200		{object}	map[string]interface{}	"Успешное удаление"
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Router			/products [delete]
func (p *ProductHandler) deleteProducts(w http.ResponseWriter, r *http.Request) {
	var payload DeleteIDsPayload
	if err := decodeJSON(r, &payload); err != nil {
		p.logger.Warnf("delete products: malformed body")
		WriteError(w, err)
		return
	}

	ids, err := parseIDs(payload.IDs)
	if err != nil {
		p.logger.Warnf("delete products: %s", err.Error())
		WriteError(w, err)
		return
	}

	if err := p.productUsecase.DeleteProducts(r.Context(), usecase.NewDeleteProductsReq(ids)); err != nil {
		p.logger.Warnf("delete products: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"deleted": len(ids),
	})
}

// getProducts
//
//	@Summary		Страница каталога
//	@Description	Возвращает страницу каталога из процессного кэша
//	@Tags			products
//	@Produce		json
//	@Param			page		query		int	false	"Номер страницы"
//	@Param			page_size	query		int	false	"Размер страницы"
//	@Success		200	{object}	ProductsPageView
//	@Failure		404	{object}	ErrorResponse	"Каталог пуст либо страница вне диапазона"
//	@Router			/products [get]
func (p *ProductHandler) getProducts(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := parsePageParams(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := p.productUsecase.GetProducts(r.Context(), usecase.NewGetProductsReq(page, pageSize))
	if err != nil {
		p.logger.Warnf("get products: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, ProductsPageView{Products: toProductViews(res.Products)})
}

// getProductsByCategory
//
//	@Summary		Товары по категориям
//	@Description	Возвращает товары, сгруппированные по запрошенным категориям; пагинация применяется внутри каждой группы
//	@Tags			products
//	@Produce		json
//	@Param			category_ids	query		string	true	"Идентификаторы категорий через запятую"
//	@Param			page			query		int		false	"Номер страницы"
//	@Param			page_size		query		int		false	"Размер страницы"
//	@Success		200	{array}		CategoryProductsView
//	@Failure		400	{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404	{object}	ErrorResponse	"Нет товаров в запрошенных категориях"
//	@Router			/products/by-category [get]
func (p *ProductHandler) getProductsByCategory(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := parsePageParams(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	categoryIDs, err := parseUUIDList(r.URL.Query().Get("category_ids"))
	if err != nil {
		p.logger.Warnf("get products by category: %s", err.Error())
		WriteError(w, err)
		return
	}

	groups, err := p.productUsecase.GetProductsByCategory(r.Context(), usecase.NewGetProductsByCategoryReq(page, pageSize, categoryIDs))
	if err != nil {
		p.logger.Warnf("get products by category: %s", err.Error())
		WriteError(w, err)
		return
	}

	views := make([]CategoryProductsView, 0, len(groups))
	for _, group := range groups {
		views = append(views, CategoryProductsView{
			CategoryID: group.CategoryID.String(),
			Products:   toProductViews(group.Products),
		})
	}

	WriteSuccess(w, http.StatusOK, views)
}

// attachProductImage
//
//	@Summary		Привязка изображения
//	@Description	Загружает изображение в S3 и привязывает его к товару
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string	true	"Идентификатор товара"
//	@Param			image	formData	file	true	"Изображение"
//	@Param			alt_text	formData	string	false	"Альтернативный текст"
//	@Success		200	{object}	map[string]interface{}	"Изображение привязано"
//	@Failure		400	{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404	{object}	ErrorResponse	"Товар не найден"
//	@Failure		415	{object}	ErrorResponse	"Неподдерживаемый формат"
//	@Router			/products/{id}/image [post]
func (p *ProductHandler) attachProductImage(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 16 << 20
	)

	productID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, e.ErrInvalidIDs)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("attach image: %s", r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		WriteError(w, e.ErrNoImages)
		return
	}

	image, err := parseImage(files[0])
	if err != nil {
		p.logger.Warnf("attach image: %s", err.Error())
		WriteError(w, err)
		return
	}

	req := usecase.NewAttachProductImageReq(productID, r.FormValue("alt_text"), *image)
	if err := p.productUsecase.AttachProductImage(r.Context(), req); err != nil {
		p.logger.Warnf("attach image: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"attached": true,
	})
}
