package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"echoparse-be/pkg/insight"
)

// ErrorHandlerMiddleware centralizes error-to-status mapping so controllers
// can just return errors. Fatal pipeline stages map to 502 (the upstream
// collaborator failed, not the caller); validation maps to 400.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *insight.ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).
				JSON(ErrorResponse(fiber.StatusBadRequest, validationErr.Message))
		}

		var embeddingErr *insight.EmbeddingError
		if errors.As(err, &embeddingErr) {
			return ctx.Status(fiber.StatusBadGateway).
				JSON(ErrorResponse(fiber.StatusBadGateway, embeddingErr.Error()))
		}

		var retrievalErr *insight.RetrievalError
		if errors.As(err, &retrievalErr) {
			return ctx.Status(fiber.StatusBadGateway).
				JSON(ErrorResponse(fiber.StatusBadGateway, retrievalErr.Error()))
		}

		var synthesisErr *insight.SynthesisError
		if errors.As(err, &synthesisErr) {
			return ctx.Status(fiber.StatusBadGateway).
				JSON(ErrorResponse(fiber.StatusBadGateway, synthesisErr.Error()))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).
				JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
}
