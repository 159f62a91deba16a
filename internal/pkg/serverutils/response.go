package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/martinsuhendra/manta-sub002/internal/pkg/apperror"
)

type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

type ErrorBody struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{Success: true, Message: message, Data: data}
}

func ErrorResponse(code int, message string) ErrorBody {
	return ErrorBody{Success: false, Code: code, Message: message}
}

var validate = validator.New()

// ValidateRequest runs struct-tag validation and folds violations into a
// single field-level message.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Wrap(apperror.KindValidation, "invalid request", err)
	}

	var parts []string
	for _, fe := range validationErrors {
		parts = append(parts, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return apperror.Validation(strings.Join(parts, "; "))
}

// ErrorHandlerMiddleware converts errors escaping handlers into JSON
// responses with the status that matches their kind.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return ErrorHandler(ctx, err)
	}
}

// ErrorHandler maps application error kinds onto HTTP statuses.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		code = fiber.StatusBadRequest
		message = err.Error()
	case apperror.KindNotFound:
		code = fiber.StatusNotFound
		message = err.Error()
	case apperror.KindNotAllowed:
		code = fiber.StatusForbidden
		message = err.Error()
	case apperror.KindInvalidState:
		code = fiber.StatusConflict
		message = err.Error()
	case apperror.KindInvalidSignature:
		code = fiber.StatusUnauthorized
		message = err.Error()
	case apperror.KindProviderMismatch:
		code = fiber.StatusBadGateway
		message = err.Error()
	default:
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}
	}

	return ctx.Status(code).JSON(ErrorResponse(code, message))
}
