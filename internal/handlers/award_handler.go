package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ministry/tender-engine/internal/apperrors"
	"ministry/tender-engine/internal/models"
	"ministry/tender-engine/internal/services"
	"ministry/tender-engine/internal/tender"
)

type AwardHandler struct {
	tenderService services.TenderService
}

func NewAwardHandler(tenderService services.TenderService) *AwardHandler {
	return &AwardHandler{
		tenderService: tenderService,
	}
}

// HandleAward handles POST /tenders/:id/award
func (h *AwardHandler) HandleAward(c *fiber.Ctx) error {
	var req models.AwardRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}
	if req.BidderID == "" {
		return badRequest(c, "bidder_id is required")
	}

	result, err := h.tenderService.Award(c.UserContext(), c.Params("id"), req.BidderID, tender.AwardTerms{
		AwardValue:       req.AwardValue,
		Justification:    req.Justification,
		ContractDuration: req.ContractDuration,
		PerformanceBond:  req.PerformanceBond,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// HandleGetPostAward handles GET /tenders/:id/post-award
func (h *AwardHandler) HandleGetPostAward(c *fiber.Ctx) error {
	state, err := h.tenderService.GetPostAwardState(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"post_award": state,
		"complete":   tender.IsComplete(state),
	})
}

// HandleAdvanceStep handles POST /tenders/:id/post-award/steps/:step
func (h *AwardHandler) HandleAdvanceStep(c *fiber.Ctx) error {
	step, err := tender.ParsePostAwardStep(c.Params("step"))
	if err != nil {
		return respondError(c, err)
	}

	state, err := h.tenderService.AdvancePostAwardStep(c.UserContext(), c.Params("id"), step)
	if err != nil {
		// The step is stored even when its notification or publication failed.
		var appErr *apperrors.Error
		if state != nil && errors.As(err, &appErr) && appErr.Code == apperrors.CodeCollaborator {
			return c.Status(appErr.Code.HTTPStatus()).JSON(fiber.Map{
				"error":      appErr.Error(),
				"code":       string(appErr.Code),
				"post_award": state,
			})
		}
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"post_award": state,
		"complete":   tender.IsComplete(state),
	})
}

// HandleClose handles POST /tenders/:id/post-award/close
func (h *AwardHandler) HandleClose(c *fiber.Ctx) error {
	if err := h.tenderService.ClosePostAwardWorkflow(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
