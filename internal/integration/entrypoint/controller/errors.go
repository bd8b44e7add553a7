// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/payment-system/backend/internal/domain/error"
	"github.com/payment-system/backend/internal/integration/entrypoint/dto"
)

// respondError maps a domain error onto an HTTP status and writes the
// error body. Unknown errors become a 500 without leaking internals.
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"
	code := ""

	switch {
	case errors.Is(err, domainerror.ErrPaymentNotFound),
		errors.Is(err, domainerror.ErrUserNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domainerror.ErrEmailAlreadyExists):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, domainerror.ErrInvalidStatusTransition):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, domainerror.ErrInvalidPaymentAmount),
		errors.Is(err, domainerror.ErrMissingSenderAccount),
		errors.Is(err, domainerror.ErrMissingDescription),
		errors.Is(err, domainerror.ErrUnknownStatus),
		errors.Is(err, domainerror.ErrMissingUserName),
		errors.Is(err, domainerror.ErrMissingEmail):
		status = http.StatusBadRequest
		message = err.Error()
	}

	var paymentErr *domainerror.PaymentError
	if errors.As(err, &paymentErr) {
		code = string(paymentErr.Code)
	}
	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		code = string(userErr.Code)
	}

	ctx.JSON(status, dto.ErrorResponse{Error: message, Code: code})
}
