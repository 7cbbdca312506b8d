package main

import (
	"context"
	"log"
	"time"

	"ministry/tender-engine/internal/config"
	"ministry/tender-engine/internal/models"
	"ministry/tender-engine/internal/repositories"
	"ministry/tender-engine/internal/services"
)

// Seeds a handful of tenders, vendors and bids for local dashboards.
func main() {
	log.Println("🚀 Starting tender seeding...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	if cfg.Store.Driver != config.StoreDriverPostgres {
		log.Fatalf("❌ Seeding needs STORE_DRIVER=%s, got %s", config.StoreDriverPostgres, cfg.Store.Driver)
	}

	db, err := config.InitDatabase(cfg, &repositories.Record{}, &services.PublicListing{})
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	store := repositories.NewRecordStore(db)

	gate := services.NewWorkflowGateService(repositories.NewVendorWorkflowRepository(store), time.Now)
	tenderService := services.NewTenderService(
		repositories.NewTenderRepository(store),
		repositories.NewBidRepository(store),
		gate,
		services.NewLogNotifier(),
		services.NewGormPublisher(db),
		cfg.Notify.MinistryRecipientID,
		time.Now,
	)

	ctx := context.Background()

	vendors := []struct {
		ID       string
		Steps    []models.WorkflowStep
		Approval models.ApprovalStatus
	}{
		{
			ID:       "vendor-atlas-build",
			Steps:    models.WorkflowSteps,
			Approval: models.ApprovalApproved,
		},
		{
			ID:       "vendor-northwind-supply",
			Steps:    models.WorkflowSteps,
			Approval: models.ApprovalPending,
		},
		{
			ID:       "vendor-kestrel-it",
			Steps:    []models.WorkflowStep{models.StepRegistration, models.StepLoginVerification, models.StepBidding},
			Approval: models.ApprovalPending,
		},
	}

	for _, v := range vendors {
		view, err := gate.RecordProgress(ctx, v.ID, models.VendorProgressRequest{
			CompletedSteps:      v.Steps,
			FinalApprovalStatus: v.Approval,
		})
		if err != nil {
			log.Printf("❌ Failed to seed vendor %s: %v", v.ID, err)
			continue
		}
		log.Printf("✅ Vendor %s seeded, eligible: %t", v.ID, view.Eligible)
	}

	closeDate := time.Now().AddDate(0, 0, 14).Format("2006-01-02")
	tenders := []models.CreateTenderRequest{
		{
			Title:          "School roof repairs, northern district",
			Category:       "Construction",
			Description:    "Replacement of roofing on six primary schools",
			EstimatedValue: "820000",
			CloseDate:      closeDate,
		},
		{
			Title:          "Hospital laundry services",
			Category:       "Facilities",
			Description:    "Three-year laundry contract for the central hospital",
			EstimatedValue: "310000",
			CloseDate:      closeDate,
		},
		{
			Title:          "Records digitisation",
			Category:       "IT",
			Description:    "Scanning and indexing of land registry archives",
			EstimatedValue: "145000",
			CloseDate:      closeDate,
		},
	}

	for _, req := range tenders {
		t, err := tenderService.CreateTender(ctx, req)
		if err != nil {
			log.Printf("❌ Failed to create tender %q: %v", req.Title, err)
			continue
		}
		if _, err := tenderService.PublishTender(ctx, t.ID); err != nil {
			log.Printf("❌ Failed to publish tender %s: %v", t.ID, err)
			continue
		}

		for _, v := range vendors {
			_, err := tenderService.SubmitBid(ctx, t.ID, models.SubmitBidRequest{
				BidderID:    v.ID,
				CompanyName: v.ID,
				BidAmount:   req.EstimatedValue,
			})
			if err != nil {
				log.Printf("❌ Failed to submit bid from %s on %s: %v", v.ID, t.ID, err)
			}
		}
		log.Printf("✅ Tender %s seeded: %s", t.ID, t.Title)
	}

	log.Println("🎉 Seeding completed!")
}
