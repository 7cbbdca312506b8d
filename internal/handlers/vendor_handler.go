package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ministry/tender-engine/internal/models"
	"ministry/tender-engine/internal/services"
)

type VendorHandler struct {
	gate services.WorkflowGateService
}

func NewVendorHandler(gate services.WorkflowGateService) *VendorHandler {
	return &VendorHandler{
		gate: gate,
	}
}

// HandleGetWorkflow handles GET /vendors/:id/workflow
func (h *VendorHandler) HandleGetWorkflow(c *fiber.Ctx) error {
	view, err := h.gate.GetWorkflow(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// HandleRecordProgress handles PUT /vendors/:id/workflow
func (h *VendorHandler) HandleRecordProgress(c *fiber.Ctx) error {
	var req models.VendorProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	view, err := h.gate.RecordProgress(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// HandleEligibility handles GET /vendors/:id/eligibility
func (h *VendorHandler) HandleEligibility(c *fiber.Ctx) error {
	vendorID := c.Params("id")
	eligible, err := h.gate.IsAwardEligible(c.UserContext(), vendorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"vendor_id": vendorID,
		"eligible":  eligible,
	})
}
