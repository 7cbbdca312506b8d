package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ministry/tender-engine/internal/models"
	"ministry/tender-engine/internal/services"
)

type BidHandler struct {
	tenderService services.TenderService
}

func NewBidHandler(tenderService services.TenderService) *BidHandler {
	return &BidHandler{
		tenderService: tenderService,
	}
}

// HandleSubmit handles POST /tenders/:id/bids
func (h *BidHandler) HandleSubmit(c *fiber.Ctx) error {
	var req models.SubmitBidRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	bid, err := h.tenderService.SubmitBid(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bid)
}

// HandleRank handles GET /tenders/:id/bids
func (h *BidHandler) HandleRank(c *fiber.Ctx) error {
	ranked, err := h.tenderService.RankBids(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"bids":  ranked,
		"count": len(ranked),
	})
}

// HandleGetScores handles GET /tenders/:id/bids/:bidderId/scores
func (h *BidHandler) HandleGetScores(c *fiber.Ctx) error {
	sheet, err := h.tenderService.GetScoreSheet(c.UserContext(), c.Params("id"), c.Params("bidderId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sheet)
}

// HandleUpdateScore handles PUT /tenders/:id/bids/:bidderId/scores
func (h *BidHandler) HandleUpdateScore(c *fiber.Ctx) error {
	var req models.UpdateScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}
	if req.Category == "" || req.Criterion == "" {
		return badRequest(c, "category and criterion are required")
	}
	if req.Score == nil {
		return badRequest(c, "score is required")
	}

	sheet, err := h.tenderService.UpdateScore(c.UserContext(), c.Params("id"), c.Params("bidderId"), req.Category, req.Criterion, *req.Score)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sheet)
}
