package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"staffregistry/internal/http/middleware"
	"staffregistry/internal/nic"
	"staffregistry/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	})
}

// knownErrors maps domain errors to their HTTP form. Order matters only for
// errors that wrap one another.
var knownErrors = []struct {
	err    error
	status int
	code   string
}{
	{nic.ErrInvalidFormat, fiber.StatusUnprocessableEntity, "INVALID_NIC_FORMAT"},
	{nic.ErrInvalidYear, fiber.StatusUnprocessableEntity, "INVALID_NIC_YEAR"},
	{nic.ErrInvalidDay, fiber.StatusUnprocessableEntity, "INVALID_NIC_DAY"},
	{nic.ErrInvalidLength, fiber.StatusUnprocessableEntity, "INVALID_NIC_LENGTH"},
	{service.ErrGenderMismatch, fiber.StatusUnprocessableEntity, "GENDER_MISMATCH"},
	{service.ErrBirthDateUnresolvable, fiber.StatusUnprocessableEntity, "BIRTH_DATE_REQUIRED"},
	{service.ErrBirthDateMismatch, fiber.StatusUnprocessableEntity, "BIRTH_DATE_MISMATCH"},
	{service.ErrIDRequired, fiber.StatusBadRequest, "INVALID_ID"},
	{service.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{service.ErrDuplicateAppointment, fiber.StatusConflict, "DUPLICATE_APPOINTMENT"},
	{service.ErrReaderNil, fiber.StatusBadRequest, "FILE_REQUIRED"},
	{service.ErrNoPhoto, fiber.StatusNotFound, "PHOTO_NOT_FOUND"},
	{service.ErrPhotoTooLarge, fiber.StatusRequestEntityTooLarge, "PHOTO_TOO_LARGE"},
	{service.ErrUnsupportedPhoto, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_PHOTO"},
}

// writeServiceError translates an error returned by the service or the NIC
// codec. Anything unrecognised becomes a 500 without details.
func writeServiceError(c *fiber.Ctx, err error) error {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(errorPayload{
			RequestID: requestIDFromCtx(c),
			Error: errorEnvelope{
				Code:    "VALIDATION_FAILED",
				Message: "one or more fields are invalid",
				Fields:  verr.Fields,
			},
		})
	}
	for _, k := range knownErrors {
		if errors.Is(err, k.err) {
			return writeError(c, k.status, k.code, k.err.Error())
		}
	}
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
