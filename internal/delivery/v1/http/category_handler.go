package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUC
	logger          logger.Logger
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase, logger: logger}
}

// addCategories
//
//	@Summary		Добавление категорий
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AddCategoriesPayload	true	"Категории"
//	@Success		201		{object}	map[string]interface{}	"Успешное создание"
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		409		{object}	ErrorResponse	"Категория уже существует"
//	@Router			/categories [post]
func (c *CategoryHandler) addCategories(w http.ResponseWriter, r *http.Request) {
	var payload AddCategoriesPayload
	if err := decodeJSON(r, &payload); err != nil {
		c.logger.Warnf("add categories: malformed body")
		WriteError(w, err)
		return
	}

	categories, err := toDomainCategories(payload.Categories)
	if err != nil {
		c.logger.Warnf("add categories: %s", err.Error())
		WriteError(w, err)
		return
	}

	if err := c.categoryUsecase.AddCategories(r.Context(), usecase.NewAddCategoriesReq(categories)); err != nil {
		c.logger.Warnf("add categories: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"added": len(categories),
	})
}

// updateCategories
//
//	@Summary		Обновление категорий
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateCategoriesPayload	true	"Идентификаторы и новое состояние"
//	@Success		200		{object}	map[string]interface{}	"Успешное обновление"
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Категория не найдена"
//	@Failure		409		{object}	ErrorResponse	"Обновление не содержит изменений"
//	@Router			/categories [put]
func (c *CategoryHandler) updateCategories(w http.ResponseWriter, r *http.Request) {
	var payload UpdateCategoriesPayload
	if err := decodeJSON(r, &payload); err != nil {
		c.logger.Warnf("update categories: malformed body")
		WriteError(w, err)
		return
	}

	ids, err := parseIDs(payload.IDs)
	if err != nil {
		c.logger.Warnf("update categories: %s", err.Error())
		WriteError(w, err)
		return
	}

	categories, err := toDomainCategories(payload.Categories)
	if err != nil {
		c.logger.Warnf("update categories: %s", err.Error())
		WriteError(w, err)
		return
	}

	if err := c.categoryUsecase.UpdateCategories(r.Context(), usecase.NewUpdateCategoriesReq(ids, categories)); err != nil {
		c.logger.Warnf("update categories: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"updated": len(ids),
	})
}

// deleteCategories
//
//	@Summary		Удаление категорий
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			request	body		DeleteIDsPayload	true	"Идентификаторы"
//	@Success		200		{object}	map[string]interface{}	"Успешное удаление"
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Категория не найдена"
//	@Router			/categories [delete]
func (c *CategoryHandler) deleteCategories(w http.ResponseWriter, r *http.Request) {
	var payload DeleteIDsPayload
	if err := decodeJSON(r, &payload); err != nil {
		c.logger.Warnf("delete categories: malformed body")
		WriteError(w, err)
		return
	}

	ids, err := parseIDs(payload.IDs)
	if err != nil {
		c.logger.Warnf("delete categories: %s", err.Error())
		WriteError(w, err)
		return
	}

	if err := c.categoryUsecase.DeleteCategories(r.Context(), usecase.NewDeleteCategoriesReq(ids)); err != nil {
		c.logger.Warnf("delete categories: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"deleted": len(ids),
	})
}

// getCategories
//
//	@Summary		Страница категорий
//	@Description	Возвращает страницу категорий из процессного кэша
//	@Tags			categories
//	@Produce		json
//	@Param			page		query		int	false	"Номер страницы"
//	@Param			page_size	query		int	false	"Размер страницы"
//	@Success		200	{object}	CategoriesPageView
//	@Failure		404	{object}	ErrorResponse	"Категорий нет либо страница вне диапазона"
//	@Router			/categories [get]
func (c *CategoryHandler) getCategories(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := parsePageParams(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.categoryUsecase.GetCategories(r.Context(), usecase.NewGetCategoriesReq(page, pageSize))
	if err != nil {
		c.logger.Warnf("get categories: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, CategoriesPageView{Categories: toCategoryViews(res.Categories)})
}

// listCategories
//
//	@Summary		Листинг категорий
//	@Description	Лёгкий страничный листинг для выпадающих списков, читается из Redis
//	@Tags			categories
//	@Produce		json
//	@Param			page		query		int	false	"Номер страницы"
//	@Param			page_size	query		int	false	"Размер страницы"
//	@Success		200	{array}		ListItemView
//	@Failure		404	{object}	ErrorResponse	"Категорий нет"
//	@Router			/categories/listing [get]
func (c *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := parsePageParams(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	items, err := c.categoryUsecase.ListCategories(r.Context(), page, pageSize)
	if err != nil {
		c.logger.Warnf("list categories: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryListViews(items))
}
