package handlers

import "github.com/gofiber/fiber/v2"

type Handlers struct {
	Tender *TenderHandler
	Bid    *BidHandler
	Award  *AwardHandler
	Vendor *VendorHandler
}

// Register mounts the dashboard and vendor endpoints on router.
func Register(router fiber.Router, h Handlers) {
	tenders := router.Group("/tenders")
	tenders.Get("/", h.Tender.HandleList)
	tenders.Post("/", h.Tender.HandleCreate)
	tenders.Post("/recheck", h.Tender.HandleRecheck)
	tenders.Get("/:id", h.Tender.HandleGet)
	tenders.Put("/:id", h.Tender.HandleUpdateDraft)
	tenders.Post("/:id/publish", h.Tender.HandlePublish)
	tenders.Post("/:id/finalize", h.Tender.HandleFinalize)

	tenders.Post("/:id/bids", h.Bid.HandleSubmit)
	tenders.Get("/:id/bids", h.Bid.HandleRank)
	tenders.Get("/:id/bids/:bidderId/scores", h.Bid.HandleGetScores)
	tenders.Put("/:id/bids/:bidderId/scores", h.Bid.HandleUpdateScore)

	tenders.Post("/:id/award", h.Award.HandleAward)
	tenders.Get("/:id/post-award", h.Award.HandleGetPostAward)
	tenders.Post("/:id/post-award/steps/:step", h.Award.HandleAdvanceStep)
	tenders.Post("/:id/post-award/close", h.Award.HandleClose)

	vendors := router.Group("/vendors")
	vendors.Get("/:id/workflow", h.Vendor.HandleGetWorkflow)
	vendors.Put("/:id/workflow", h.Vendor.HandleRecordProgress)
	vendors.Get("/:id/eligibility", h.Vendor.HandleEligibility)
}
