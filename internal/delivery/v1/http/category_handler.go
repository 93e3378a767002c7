package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/priyansh911911/Furniture-B/internal/usecase"
	"github.com/priyansh911911/Furniture-B/pkg/e"
	"github.com/priyansh911911/Furniture-B/pkg/logger"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUC
	logger          logger.Logger
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase, logger: logger}
}

// listCategories
//
//	@Summary		Список категорий
//	@Description	Постраничный список категорий с актуальными счётчиками товаров
//	@Tags			categories
//	@Produce		json
//	@Param			page	query		int	false	"Номер страницы"
//	@Param			limit	query		int	false	"Размер страницы"
//	@Success		200		{object}	CategoryListResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/categories [get]
func (c *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePaging(r)

	res, err := c.categoryUsecase.ListCategories(r.Context(), &usecase.ListReq{Page: page, Limit: limit})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryListResponse(res))
}

// createCategory
//
//	@Summary	Создание категории
//	@Tags		categories
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		name	formData	string	true	"Название категории"
//	@Param		image	formData	file	false	"Изображение категории"
//	@Success	201		{object}	CategoryResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/categories [post]
func (c *CategoryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	const maxMemory = 32 << 20

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		c.logger.Warnf("%d bad request: %s", http.StatusBadRequest, r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	req := &usecase.CreateCategoryReq{Name: r.FormValue("name")}

	if files := r.MultipartForm.File["image"]; len(files) > 0 {
		images, err := parseImages(files[:1])
		if err != nil {
			c.logger.Warnf("%d bad request: %s", http.StatusBadRequest, err.Error())
			WriteError(w, err)
			return
		}
		req.Image = &images[0]
	}

	category, err := c.categoryUsecase.CreateCategory(r.Context(), req)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCategoryResponse(category))
}

// updateCategory
//
//	@Summary		Обновление изображения категории
//	@Description	Заменяет изображение существующей категории
//	@Tags			categories
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string	true	"Идентификатор категории"
//	@Param			image	formData	file	true	"Новое изображение"
//	@Success		200		{object}	CategoryResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/categories/{id} [put]
func (c *CategoryHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	const maxMemory = 32 << 20

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		c.logger.Warnf("%d bad request: %s", http.StatusBadRequest, r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		WriteError(w, e.ErrImageRequired)
		return
	}

	images, err := parseImages(files[:1])
	if err != nil {
		c.logger.Warnf("%d bad request: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	category, err := c.categoryUsecase.UpdateCategoryImage(r.Context(), chi.URLParam(r, "id"), images[0])
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(category))
}

// deleteCategory
//
//	@Summary		Удаление категории
//	@Description	Удаляет категорию, если на неё не ссылается ни один товар
//	@Tags			categories
//	@Produce		json
//	@Param			id	path		string	true	"Идентификатор категории"
//	@Success		200	{object}	MessageResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse	"Категория используется товарами"
//	@Router			/categories/{id} [delete]
func (c *CategoryHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := c.categoryUsecase.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &MessageResponse{Message: "Category deleted successfully"})
}
