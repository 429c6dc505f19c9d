package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"movieapi/internal/http/middleware"
)

// errorPayload is the JSON error body used for health and framework-level failures.
// Catalog and summary routes answer in plain text instead.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// frameworkErrors maps statuses raised by fiber itself to stable codes and safe messages.
var frameworkErrors = map[int]errorEnvelope{
	fiber.StatusBadRequest:            {"BAD_REQUEST", "bad request"},
	fiber.StatusNotFound:              {"NOT_FOUND", "resource not found"},
	fiber.StatusMethodNotAllowed:      {"METHOD_NOT_ALLOWED", "method not allowed"},
	fiber.StatusRequestEntityTooLarge: {"PAYLOAD_TOO_LARGE", "request body too large"},
}

func requestIDFromCtx(c *fiber.Ctx) string {
	rid, _ := c.Locals(middleware.RequestIDLocalKey).(string)
	return rid
}

// writeError writes the JSON error envelope. message must never carry internal error text.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error:     errorEnvelope{Code: code, Message: message},
	})
}

// writeText writes a plain-text response body with the given status.
func writeText(c *fiber.Ctx, status int, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(status).SendString(body)
}

// ErrorHandler returns the fiber global error handler.
// Unknown errors become 500 INTERNAL_ERROR and are logged, never echoed.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			if env, ok := frameworkErrors[fe.Code]; ok {
				return writeError(c, fe.Code, env.Code, env.Message)
			}
		}

		zerolog.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("unhandled error")

		status := fiber.StatusInternalServerError
		if fe != nil && fe.Code >= fiber.StatusInternalServerError {
			status = fe.Code
		}
		return writeError(c, status, "INTERNAL_ERROR", "internal server error")
	}
}
