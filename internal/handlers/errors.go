package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"ministry/tender-engine/internal/apperrors"
	"ministry/tender-engine/internal/models"
)

// respondError translates a service error into its HTTP status and body.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		if appErr.Code == apperrors.CodeCollaborator {
			log.Printf("⚠️  %s %s: %v\n", c.Method(), c.Path(), err)
		}
		return c.Status(appErr.Code.HTTPStatus()).JSON(models.ErrorResponse{
			Error: appErr.Error(),
			Code:  string(appErr.Code),
			Unmet: appErr.Unmet,
		})
	}

	log.Printf("❌ %s %s: %v\n", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Error: "internal server error",
		Code:  "INTERNAL",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error: message,
		Code:  string(apperrors.CodeValidation),
	})
}
