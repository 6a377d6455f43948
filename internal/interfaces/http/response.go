package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/couponhub-api/internal/application/dto"
	"github.com/jhoicas/couponhub-api/internal/domain"
	"github.com/jhoicas/couponhub-api/pkg/validate"
)

// Mensajes de error que el panel muestra tal cual.
const (
	msgUploadFailed   = "Error uploading image"
	msgInvalidData    = "Invalid data"
	msgMissingPayload = "Missing data field"
)

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Error: msg})
}

// writeCreateError traduce el error de un caso de uso de alta a {success:false, error}.
// duplicateMsg es el texto para la violación de unicidad.
func writeCreateError(c *fiber.Ctx, err error, duplicateMsg string) error {
	var fields validate.FieldErrors
	switch {
	case errors.As(err, &fields):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:  msgInvalidData + ": " + fields.Error(),
			Fields: fields,
		})
	case errors.Is(err, domain.ErrImageUpload):
		return errorJSON(c, fiber.StatusInternalServerError, msgUploadFailed)
	case errors.Is(err, domain.ErrDuplicate):
		return errorJSON(c, fiber.StatusBadRequest, duplicateMsg)
	case errors.Is(err, domain.ErrRelatedNotFound), errors.Is(err, domain.ErrInvalidInput):
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	default:
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}
}

// ErrorHandler responde con el sobre JSON cualquier error que llegue a fiber sin manejar.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return errorJSON(c, code, err.Error())
}
