package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/priyansh911911/Furniture-B/internal/usecase"
	"github.com/priyansh911911/Furniture-B/pkg/e"
	"github.com/priyansh911911/Furniture-B/pkg/logger"
)

type InquiryHandler struct {
	inquiryUsecase usecase.InquiryUC
	logger         logger.Logger
}

func NewInquiryHandler(inquiryUsecase usecase.InquiryUC, logger logger.Logger) *InquiryHandler {
	return &InquiryHandler{inquiryUsecase: inquiryUsecase, logger: logger}
}

type submitInquiryRequest struct {
	ProductID     string `json:"productId"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
}

type updateInquiryStatusRequest struct {
	Status string `json:"status"`
}

// submitInquiry
//
//	@Summary		Заявка на товар
//	@Description	Создаёт заявку покупателя со снимком артикула и названия товара
//	@Tags			inquiries
//	@Accept			json
//	@Produce		json
//	@Param			request	body		submitInquiryRequest	true	"Заявка"
//	@Success		201		{object}	MessageResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/inquiries [post]
func (i *InquiryHandler) submitInquiry(w http.ResponseWriter, r *http.Request) {
	var req submitInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	_, err := i.inquiryUsecase.SubmitInquiry(r.Context(), &usecase.SubmitInquiryReq{
		ProductDbID:   req.ProductID,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		i.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, &MessageResponse{Message: "Inquiry submitted successfully"})
}

// listInquiries
//
//	@Summary	Список заявок
//	@Tags		inquiries
//	@Produce	json
//	@Param		page	query		int	false	"Номер страницы"
//	@Param		limit	query		int	false	"Размер страницы"
//	@Success	200		{object}	InquiryListResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	503		{object}	ErrorResponse
//	@Router		/inquiries [get]
func (i *InquiryHandler) listInquiries(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePaging(r)

	res, err := i.inquiryUsecase.ListInquiries(r.Context(), &usecase.ListReq{Page: page, Limit: limit})
	if err != nil {
		i.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toInquiryListResponse(res))
}

// updateInquiryStatus
//
//	@Summary		Смена статуса заявки
//	@Description	Допустимые статусы: pending, contacted, closed. Переходы не ограничены.
//	@Tags			inquiries
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Идентификатор заявки"
//	@Param			request	body		updateInquiryStatusRequest	true	"Новый статус"
//	@Success		200		{object}	InquiryResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/inquiries/{id} [put]
func (i *InquiryHandler) updateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	var req updateInquiryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	inquiry, err := i.inquiryUsecase.UpdateInquiryStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		i.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toInquiryResponse(inquiry))
}
