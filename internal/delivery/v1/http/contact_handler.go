package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/priyansh911911/Furniture-B/internal/usecase"
	"github.com/priyansh911911/Furniture-B/pkg/e"
	"github.com/priyansh911911/Furniture-B/pkg/logger"
)

type ContactHandler struct {
	contactUsecase usecase.ContactUC
	logger         logger.Logger
}

func NewContactHandler(contactUsecase usecase.ContactUC, logger logger.Logger) *ContactHandler {
	return &ContactHandler{contactUsecase: contactUsecase, logger: logger}
}

type submitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// submitContact
//
//	@Summary	Сообщение обратной связи
//	@Tags		contact
//	@Accept		json
//	@Produce	json
//	@Param		request	body		submitContactRequest	true	"Сообщение"
//	@Success	201		{object}	MessageResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/contact [post]
func (c *ContactHandler) submitContact(w http.ResponseWriter, r *http.Request) {
	var req submitContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Message) == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}

	_, err := c.contactUsecase.SubmitContact(r.Context(), &usecase.SubmitContactReq{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, &MessageResponse{Message: "Contact form submitted successfully"})
}

// listContacts
//
//	@Summary	Список сообщений обратной связи
//	@Tags		contact
//	@Produce	json
//	@Param		page	query		int	false	"Номер страницы"
//	@Param		limit	query		int	false	"Размер страницы"
//	@Success	200		{object}	ContactListResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	503		{object}	ErrorResponse
//	@Router		/contact [get]
func (c *ContactHandler) listContacts(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePaging(r)

	res, err := c.contactUsecase.ListContacts(r.Context(), &usecase.ListReq{Page: page, Limit: limit})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toContactListResponse(res))
}
