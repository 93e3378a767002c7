package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/priyansh911911/Furniture-B/internal/usecase"
	"github.com/priyansh911911/Furniture-B/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Постраничный список товаров с фильтром по категории
//	@Tags			products
//	@Produce		json
//	@Param			category	query		string	false	"Точное имя категории"
//	@Param			page		query		int		false	"Номер страницы"
//	@Param			limit		query		int		false	"Размер страницы"
//	@Success		200			{object}	ProductListResponse
//	@Failure		503			{object}	ErrorResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePaging(r)

	res, err := p.productUsecase.ListProducts(r.Context(), &usecase.ListProductsReq{
		Category: r.URL.Query().Get("category"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductListResponse(res))
}

// getProduct
//
//	@Summary	Товар по идентификатору
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"Идентификатор товара"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := p.productUsecase.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// createProduct
//
//	@Summary		Создание товара
//	@Description	Создаёт товар с изображениями. Неудачно загруженные файлы пропускаются.
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name			formData	string	true	"Название"
//	@Param			description		formData	string	true	"Описание"
//	@Param			price			formData	string	true	"Цена"
//	@Param			originalPrice	formData	string	false	"Цена до скидки"
//	@Param			category		formData	string	true	"Категория"
//	@Param			discount		formData	int		false	"Скидка в процентах"
//	@Param			mainImageIndex	formData	int		false	"Индекс главного изображения"
//	@Param			isNew			formData	bool	false	"Новинка"
//	@Param			images			formData	file	false	"Изображения (до 4)"
//	@Success		201				{object}	ProductResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		401				{object}	ErrorResponse
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	req, err := p.parseSaveRequest(w, r)
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.CreateProduct(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// updateProduct
//
//	@Summary		Обновление товара
//	@Description	Обновляет поля товара. Изображения заменяются только при загрузке новых файлов.
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id	path		string	true	"Идентификатор товара"
//	@Success		200	{object}	ProductResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	req, err := p.parseSaveRequest(w, r)
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.UpdateProduct(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// deleteProduct
//
//	@Summary	Удаление товара
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"Идентификатор товара"
//	@Success	200	{object}	MessageResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := p.productUsecase.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &MessageResponse{Message: "Product deleted successfully"})
}

func (p *ProductHandler) parseSaveRequest(w http.ResponseWriter, r *http.Request) (*usecase.SaveProductReq, error) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d bad request: %s", http.StatusBadRequest, r.Header.Get("Content-Type"))
		return nil, err
	}

	req, err := parseProductForm(r)
	if err != nil {
		p.logger.Warnf("%d bad request: %s", http.StatusBadRequest, err.Error())
		return nil, err
	}

	images, err := parseImages(r.MultipartForm.File["images"])
	if err != nil {
		p.logger.Warnf("%d bad request: %s", http.StatusBadRequest, err.Error())
		return nil, err
	}
	req.Images = images

	return req, nil
}
