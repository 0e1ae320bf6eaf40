package handlers

import (
	"errors"
	"log"
	"net/http"

	request "payflux/internal/adapter/http/dto/request"
	response "payflux/internal/adapter/http/dto/response"
	"payflux/internal/usecase"
	"payflux/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for simulated payments.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Pay runs the payment pipeline and returns the persisted record.
//
// @Summary      Simulate a payment
// @Description  Routes the request to a mock gateway, synthesizes an outcome and appends it to the ledger.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment  body      request.PayRequest  true  "payment request"
// @Success      200      {object}  response.PaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /pay [post]
func (h *PaymentHandler) Pay(c *gin.Context) {
	var payload request.PayRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYMENT", "Invalid payment details", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	record, err := h.usecase.Pay(c.Request.Context(), usecase.PayCommand{
		Amount:      payload.Amount,
		Method:      payload.Method,
		Recipient:   payload.Recipient,
		Description: payload.Description,
		Subtype:     payload.Subtype,
	})
	if err != nil {
		log.Printf("[payment][handler] pay failed method=%q err=%v", payload.Method, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] pay success id=%s txn_id=%s status=%s", record.ID, record.TransactionID, record.Status)

	c.JSON(http.StatusOK, response.FromPaymentRecord(record))
}

// History returns the most recent ledger records, newest first.
//
// @Summary      Transaction history
// @Description  Returns up to 50 payment records ordered by creation time descending.
// @Tags         payments
// @Produce      json
// @Success      200  {array}   response.PaymentResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /history [get]
func (h *PaymentHandler) History(c *gin.Context) {
	records, err := h.usecase.History(c.Request.Context())
	if err != nil {
		log.Printf("[payment][handler] history failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecords(records))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount), errors.Is(err, usecase.ErrMissingMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT", "Invalid payment details", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
