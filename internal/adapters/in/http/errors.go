package http

import (
	"errors"
	"net/http"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/basket"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/payment"
	"grocery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps domain and validation failures onto HTTP status codes.
// Unrecognized errors become 500 without leaking internals to the client.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, basket.ErrVendorConflict),
		errors.Is(err, order.ErrOrderNotDelivered),
		errors.Is(err, payment.ErrPaymentAlreadyApproved):
		status = http.StatusConflict
		message = err.Error()
	case isValidationError(err):
		status = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}

func isValidationError(err error) bool {
	return errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, basket.ErrBasketIsEmpty) ||
		errors.Is(err, commands.ErrQuantityIsInvalid) ||
		errors.Is(err, commands.ErrQuoteIsMissing) ||
		errors.Is(err, commands.ErrCardHolderIsRequired) ||
		errors.Is(err, commands.ErrCardNumberIsInvalid) ||
		errors.Is(err, commands.ErrCardExpiryIsInvalid) ||
		errors.Is(err, commands.ErrCardCVVIsInvalid)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
