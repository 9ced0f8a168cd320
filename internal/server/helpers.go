package server

import (
	"errors"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errorStatus maps an application error to the HTTP status code it should
// surface as. Anything that is not a known AppError is a 500.
func errorStatus(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeNotFound:
			return fiber.StatusNotFound
		case models.CodeValidation:
			return fiber.StatusBadRequest
		}
	}
	return fiber.StatusInternalServerError
}

// respondError writes the error as a JSON response with the mapped status.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, errorStatus(err), err)
}

func invalidBodyError() error {
	return models.NewValidationError("Invalid request body")
}
