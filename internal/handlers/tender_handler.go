package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ministry/tender-engine/internal/models"
	"ministry/tender-engine/internal/services"
)

type TenderHandler struct {
	tenderService services.TenderService
}

func NewTenderHandler(tenderService services.TenderService) *TenderHandler {
	return &TenderHandler{
		tenderService: tenderService,
	}
}

// HandleList handles GET /tenders?status=&category=&q=
func (h *TenderHandler) HandleList(c *fiber.Ctx) error {
	filter := models.TenderFilter{
		Status:   models.TenderStatus(c.Query("status")),
		Category: c.Query("category"),
		Query:    c.Query("q"),
	}

	tenders, err := h.tenderService.ListTenders(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"tenders": tenders,
		"count":   len(tenders),
	})
}

// HandleCreate handles POST /tenders
func (h *TenderHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateTenderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	t, err := h.tenderService.CreateTender(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

// HandleGet handles GET /tenders/:id
func (h *TenderHandler) HandleGet(c *fiber.Ctx) error {
	detail, err := h.tenderService.GetTender(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(detail)
}

// HandleUpdateDraft handles PUT /tenders/:id
func (h *TenderHandler) HandleUpdateDraft(c *fiber.Ctx) error {
	var req models.CreateTenderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	t, err := h.tenderService.UpdateDraft(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(t)
}

// HandlePublish handles POST /tenders/:id/publish
func (h *TenderHandler) HandlePublish(c *fiber.Ctx) error {
	t, err := h.tenderService.PublishTender(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(t)
}

// HandleRecheck handles POST /tenders/recheck
func (h *TenderHandler) HandleRecheck(c *fiber.Ctx) error {
	tenders, err := h.tenderService.RecheckStatuses(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"tenders": tenders,
		"count":   len(tenders),
	})
}

// HandleFinalize handles POST /tenders/:id/finalize
func (h *TenderHandler) HandleFinalize(c *fiber.Ctx) error {
	t, err := h.tenderService.FinalizeEvaluation(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(t)
}
