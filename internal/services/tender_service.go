package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ministry/tender-engine/internal/apperrors"
	"ministry/tender-engine/internal/models"
	"ministry/tender-engine/internal/repositories"
	"ministry/tender-engine/internal/tender"
)

const dateLayout = "2006-01-02"

type TenderService interface {
	CreateTender(ctx context.Context, req models.CreateTenderRequest) (*models.Tender, error)
	UpdateDraft(ctx context.Context, tenderID string, req models.CreateTenderRequest) (*models.Tender, error)
	GetTender(ctx context.Context, tenderID string) (*models.TenderDetail, error)
	ListTenders(ctx context.Context, filter models.TenderFilter) ([]models.Tender, error)
	PublishTender(ctx context.Context, tenderID string) (*models.Tender, error)
	RecheckStatuses(ctx context.Context) ([]models.Tender, error)
	SubmitBid(ctx context.Context, tenderID string, req models.SubmitBidRequest) (*models.Bid, error)
	UpdateScore(ctx context.Context, tenderID, bidderID string, category models.ScoreCategory, criterion string, score int) (*models.ScoreSheet, error)
	GetScoreSheet(ctx context.Context, tenderID, bidderID string) (*models.ScoreSheet, error)
	RankBids(ctx context.Context, tenderID string) ([]tender.RankedBid, error)
	IsAwardEligible(ctx context.Context, bidderID string) (bool, error)
	FinalizeEvaluation(ctx context.Context, tenderID string) (*models.Tender, error)
	Award(ctx context.Context, tenderID, bidderID string, terms tender.AwardTerms) (*models.AwardResult, error)
	AdvancePostAwardStep(ctx context.Context, tenderID string, step models.PostAwardStep) (*models.PostAwardWorkflowState, error)
	GetPostAwardState(ctx context.Context, tenderID string) (*models.PostAwardWorkflowState, error)
	ClosePostAwardWorkflow(ctx context.Context, tenderID string) error
}

type tenderService struct {
	tenderRepo repositories.TenderRepository
	bidRepo    repositories.BidRepository
	gate       WorkflowGateService
	notifier   Notifier
	publisher  Publisher
	ministryID string
	now        func() time.Time
	newID      func() string

	// mu serialises every read-modify-write of tender and bid records, so the
	// recheck worker and dashboard actions never interleave on one record.
	mu sync.Mutex
}

func NewTenderService(
	tenderRepo repositories.TenderRepository,
	bidRepo repositories.BidRepository,
	gate WorkflowGateService,
	notifier Notifier,
	publisher Publisher,
	ministryRecipientID string,
	clock func() time.Time,
) TenderService {
	if clock == nil {
		clock = time.Now
	}
	return &tenderService{
		tenderRepo: tenderRepo,
		bidRepo:    bidRepo,
		gate:       gate,
		notifier:   notifier,
		publisher:  publisher,
		ministryID: ministryRecipientID,
		now:        clock,
		newID:      uuid.NewString,
	}
}

// CreateTender implements TenderService.
func (s *tenderService) CreateTender(ctx context.Context, req models.CreateTenderRequest) (*models.Tender, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.Validation("title is required")
	}

	now := s.now()
	t := models.Tender{
		ID:        s.newID(),
		Status:    models.TenderDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := applyDraftFields(&t, req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.saveRecord(ctx, &models.TenderRecord{Tender: t}); err != nil {
		return nil, err
	}
	log.Printf("📝 Tender %s drafted: %s\n", t.ID, t.Title)
	return &t, nil
}

// UpdateDraft implements TenderService. Only drafts are editable.
func (s *tenderService) UpdateDraft(ctx context.Context, tenderID string, req models.CreateTenderRequest) (*models.Tender, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.loadRecord(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	if rec.Tender.Status != models.TenderDraft {
		return nil, apperrors.InvalidState("tender %s is %s; only drafts can be edited", tenderID, rec.Tender.Status)
	}
	if err := applyDraftFields(&rec.Tender, req); err != nil {
		return nil, err
	}
	rec.Tender.UpdatedAt = s.now()

	if err := s.saveRecord(ctx, rec); err != nil {
		return nil, err
	}
	return &rec.Tender, nil
}

// GetTender implements TenderService.
func (s *tenderService) GetTender(ctx context.Context, tenderID string) (*models.TenderDetail, error) {
	rec, err := s.loadRecord(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	if err := s.countBids(ctx, &rec.Tender); err != nil {
		return nil, err
	}
	return &models.TenderDetail{
		Tender:            rec.Tender,
		Award:             rec.Award,
		PostAward:         rec.PostAward,
		PostAwardComplete: tender.IsComplete(rec.PostAward),
		PostAwardClosed:   rec.PostAwardClosed,
	}, nil
}

// ListTenders implements TenderService. Listing rechecks statuses first so
// the view never shows a Published tender past its close date.
func (s *tenderService) ListTenders(ctx context.Context, filter models.TenderFilter) ([]models.Tender, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, notifyErr, err := s.recheckLocked(ctx)
	if err != nil {
		return nil, err
	}
	if notifyErr != nil {
		log.Printf("⚠️  Evaluation-ready notification failed during listing: %v\n", notifyErr)
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	tenders := make([]models.Tender, 0, len(records))
	for _, rec := range records {
		t := rec.Tender
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(t.Category, filter.Category) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(t.Title), query) {
			continue
		}
		tenders = append(tenders, t)
	}
	return tenders, nil
}

// PublishTender implements TenderService. The listing entry is upserted after
// the status change is stored; a publisher failure does not undo it.
func (s *tenderService) PublishTender(ctx context.Context, tenderID string) (*models.Tender, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.loadRecord(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	if err := tender.Publish(&rec.Tender, s.now()); err != nil {
		return nil, err
	}
	if err := s.saveRecord(ctx, rec); err != nil {
		return nil, err
	}
	log.Printf("📢 Tender %s published, closes %s\n", rec.Tender.ID, rec.Tender.CloseDate.Format(dateLayout))

	t := rec.Tender
	if err := s.publisher.Upsert(ctx, tenderListing(&t)); err != nil {
		return &t, apperrors.Collaborator("failed to publish tender listing", err)
	}
	return &t, nil
}

// RecheckStatuses implements TenderService.
func (s *tenderService) RecheckStatuses(ctx context.Context) ([]models.Tender, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, notifyErr, err := s.recheckLocked(ctx)
	if err != nil {
		return nil, err
	}
	tenders := make([]models.Tender, 0, len(records))
	for _, rec := range records {
		tenders = append(tenders, rec.Tender)
	}
	if notifyErr != nil {
		return tenders, apperrors.Collaborator("failed to send evaluation-ready notification", notifyErr)
	}
	return tenders, nil
}

// recheckLocked closes every Published tender past its close date and sends
// one evaluation-ready notification per tender that changed. Store failures
// abort; notification failures are collected and returned separately since
// the status change is already stored.
func (s *tenderService) recheckLocked(ctx context.Context) (records []models.TenderRecord, notifyErr error, err error) {
	records, err = s.tenderRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, apperrors.Collaborator("failed to load tenders", err)
	}

	now := s.now()
	var notifyErrs []error
	for i := range records {
		rec := &records[i]
		if tender.Recheck(&rec.Tender, now) {
			if err := s.saveRecord(ctx, rec); err != nil {
				return nil, nil, err
			}
			log.Printf("⏰ Tender %s closed, ready for evaluation\n", rec.Tender.ID)

			subject := fmt.Sprintf("Tender ready for evaluation: %s", rec.Tender.Title)
			body := fmt.Sprintf("Tender %s closed on %s and is ready for evaluation.", rec.Tender.ID, rec.Tender.CloseDate.Format(dateLayout))
			if err := s.notifier.Send(ctx, s.ministryID, subject, body); err != nil {
				notifyErrs = append(notifyErrs, fmt.Errorf("tender %s: %w", rec.Tender.ID, err))
			}
		}
		if err := s.countBids(ctx, &rec.Tender); err != nil {
			return nil, nil, err
		}
	}
	return records, errors.Join(notifyErrs...), nil
}

// SubmitBid implements TenderService.
func (s *tenderService) SubmitBid(ctx context.Context, tenderID string, req models.SubmitBidRequest) (*models.Bid, error) {
	bidderID := strings.TrimSpace(req.BidderID)
	companyName := strings.TrimSpace(req.CompanyName)
	if bidderID == "" || companyName == "" {
		return nil, apperrors.Validation("bidder_id and company_name are required")
	}
	amount, err := parseAmount("bid_amount", req.BidAmount)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.loadRecord(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if rec.Tender.Status != models.TenderPublished || tender.PastCloseDate(&rec.Tender, now) {
		return nil, apperrors.InvalidState("tender %s is not accepting bids", tenderID)
	}

	bids, err := s.loadBids(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	if tender.FindBid(bids, bidderID) != nil {
		return nil, apperrors.Validation("bidder %s already submitted a bid on tender %s", bidderID, tenderID)
	}

	bid := models.Bid{
		TenderID:       tenderID,
		BidderID:       bidderID,
		CompanyName:    companyName,
		BidAmount:      amount,
		ScoreSheet:     models.ScoreSheet{Financial: map[string]int{}, Technical: map[string]int{}},
		SubmissionDate: now,
		Status:         models.BidUnderReview,
	}
	if err := s.saveBids(ctx, tenderID, append(bids, bid)); err != nil {
		return nil, err
	}
	log.Printf("📥 Bid from %s received on tender %s\n", bidderID, tenderID)

	if _, notifyErr, err := s.recheckLocked(ctx); err != nil {
		log.Printf("⚠️  Recheck after bid submission failed: %v\n", err)
	} else if notifyErr != nil {
		log.Printf("⚠️  Evaluation-ready notification failed: %v\n", notifyErr)
	}

	eligible, err := s.gate.IsAwardEligible(ctx, bidderID)
	if err != nil {
		return nil, err
	}
	bid.ScoreSheet = tender.Evaluate(bid.ScoreSheet, eligible)
	return &bid, nil
}

// UpdateScore implements TenderService. Only the edited bidder's sheet is
// rewritten; every other bid is stored back unchanged.
func (s *tenderService) UpdateScore(ctx context.Context, tenderID, bidderID string, category models.ScoreCategory, criterion string, score int) (*models.ScoreSheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.loadRecord(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	if rec.Tender.Status != models.TenderClosed && rec.Tender.Status != models.TenderEvaluated {
		return nil, apperrors.InvalidState("tender %s is %s; scores are editable while closed or evaluated", tenderID, rec.Tender.Status)
	}

	bids, err := s.loadBids(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	bid := tender.FindBid(bids, bidderID)
	if bid == nil {
		return nil, apperrors.UnknownBidder(tenderID, bidderID)
	}

	updated, err := tender.SetCriterion(bid.ScoreSheet, category, criterion, score)
	if err != nil {
		return nil, err
	}
	bid.ScoreSheet = updated
	if err := s.saveBids(ctx, tenderID, bids); err != nil {
		return nil, err
	}

	eligible, err := s.gate.IsAwardEligible(ctx, bidderID)
	if err != nil {
		return nil, err
	}
	sheet := tender.Evaluate(updated, eligible)
	return &sheet, nil
}

// GetScoreSheet implements TenderService.
func (s *tenderService) GetScoreSheet(ctx context.Context, tenderID, bidderID string) (*models.ScoreSheet, error) {
	if _, err := s.loadRecord(ctx, tenderID); err != nil {
		return nil, err
	}
	bids, err := s.loadBids(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	bid := tender.FindBid(bids, bidderID)
	if bid == nil {
		return nil, apperrors.UnknownBidder(tenderID, bidderID)
	}
	eligible, err := s.gate.IsAwardEligible(ctx, bidderID)
	if err != nil {
		return nil, err
	}
	sheet := tender.Evaluate(bid.ScoreSheet, eligible)
	return &sheet, nil
}

// RankBids implements TenderService.
func (s *tenderService) RankBids(ctx context.Context, tenderID string) ([]tender.RankedBid, error) {
	if _, err := s.loadRecord(ctx, tenderID); err != nil {
		return nil, err
	}
	bids, err := s.loadBids(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	eligible, err := s.eligibility(ctx, bids)
	if err != nil {
		return nil, err
	}
	return tender.RankBids(bids, eligible), nil
}

// IsAwardEligible implements TenderService.
func (s *tenderService) IsAwardEligible(ctx context.Context, bidderID string) (bool, error) {
	return s.gate.IsAwardEligible(ctx, bidderID)
}

// FinalizeEvaluation implements TenderService.
func (s *tenderService) FinalizeEvaluation(ctx context.Context, tenderID string) (*models.Tender, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.loadRecord(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	bids, err := s.loadBids(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	eligible, err := s.eligibility(ctx, bids)
	if err != nil {
		return nil, err
	}
	if err := tender.FinalizeEvaluation(&rec.Tender, tender.CountEligible(bids, eligible), s.now()); err != nil {
		return nil, err
	}
	if err := s.saveRecord(ctx, rec); err != nil {
		return nil, err
	}
	log.Printf("📊 Tender %s evaluation finalized\n", tenderID)

	rec.Tender.BidsReceived = len(bids)
	return &rec.Tender, nil
}

// Award implements TenderService. The award record, the Awarded status and the
// fresh post-award state are stored in a single write of the tender record.
func (s *tenderService) Award(ctx context.Context, tenderID, bidderID string, terms tender.AwardTerms) (*models.AwardResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.loadRecord(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	bids, err := s.loadBids(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	gate, err := s.gate.Find(ctx, bidderID)
	if err != nil {
		return nil, err
	}

	award, err := tender.BuildAward(tender.AwardRequest{
		Tender:   &rec.Tender,
		Bids:     bids,
		Gate:     gate,
		BidderID: bidderID,
		Terms:    terms,
	}, s.newID(), s.now())
	if err != nil {
		return nil, err
	}

	tender.ApplyAward(rec, award)
	if err := s.saveRecord(ctx, rec); err != nil {
		return nil, err
	}
	log.Printf("🏆 Tender %s awarded to %s for %s\n", tenderID, bidderID, award.AwardValue.StringFixed(2))

	rec.Tender.BidsReceived = len(bids)
	return &models.AwardResult{
		Award:     *award,
		Tender:    rec.Tender,
		PostAward: *rec.PostAward,
	}, nil
}

// AdvancePostAwardStep implements TenderService. A step that is already done
// is a silent no-op and its side effect is not repeated. Otherwise the flag is
// stored first and the side effect follows, so a failed notification or
// publication leaves the step marked and surfaces a collaborator error.
func (s *tenderService) AdvancePostAwardStep(ctx context.Context, tenderID string, step models.PostAwardStep) (*models.PostAwardWorkflowState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.loadRecord(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	if err := requireOpenPostAward(rec); err != nil {
		return nil, err
	}

	changed, err := tender.MarkStep(rec.PostAward, step)
	if err != nil {
		return nil, err
	}
	state := *rec.PostAward
	if !changed {
		return &state, nil
	}
	if err := s.saveRecord(ctx, rec); err != nil {
		return nil, err
	}
	log.Printf("✅ Tender %s post-award step %s done\n", tenderID, step)

	if err := s.emitPostAward(ctx, rec, step); err != nil {
		return &state, err
	}
	return &state, nil
}

func (s *tenderService) emitPostAward(ctx context.Context, rec *models.TenderRecord, step models.PostAwardStep) error {
	award := rec.Award
	t := rec.Tender

	switch step {
	case models.StepNotifySuccessful:
		subject := fmt.Sprintf("Award notification: %s", t.Title)
		body := fmt.Sprintf("Your bid on tender %s has been awarded for %s.", t.ID, award.AwardValue.StringFixed(2))
		if err := s.notifier.Send(ctx, award.WinningBidderID, subject, body); err != nil {
			return apperrors.Collaborator("failed to notify successful bidder", err)
		}

	case models.StepNotifyUnsuccessful:
		bids, err := s.loadBids(ctx, t.ID)
		if err != nil {
			return err
		}
		subject := fmt.Sprintf("Tender outcome: %s", t.Title)
		body := fmt.Sprintf("Tender %s has been awarded to another bidder. Thank you for participating.", t.ID)
		var errs []error
		for _, bid := range bids {
			if bid.BidderID == award.WinningBidderID {
				continue
			}
			if err := s.notifier.Send(ctx, bid.BidderID, subject, body); err != nil {
				errs = append(errs, fmt.Errorf("bidder %s: %w", bid.BidderID, err))
			}
		}
		if len(errs) > 0 {
			return apperrors.Collaborator("failed to notify unsuccessful bidders", errors.Join(errs...))
		}

	case models.StepPublishFeed:
		entry := models.ListingEntry{
			ID:       "award:" + t.ID,
			TenderID: t.ID,
			Kind:     "award",
			Title:    t.Title,
			Status:   t.Status,
			Payload: map[string]any{
				"awarded_company_id": award.WinningBidderID,
				"award_value":        award.AwardValue.StringFixed(2),
				"award_date":         award.AwardDate.Format(dateLayout),
				"justification":      award.Justification,
			},
		}
		if err := s.publisher.Upsert(ctx, entry); err != nil {
			return apperrors.Collaborator("failed to publish award to transparency feed", err)
		}

	case models.StepCreateContract:
		entry := models.ListingEntry{
			ID:       "contract:" + t.ID,
			TenderID: t.ID,
			Kind:     "contract",
			Title:    t.Title,
			Status:   t.Status,
			Payload: map[string]any{
				"award_id":          award.ID,
				"contractor_id":     award.WinningBidderID,
				"contract_value":    award.AwardValue.StringFixed(2),
				"contract_duration": award.ContractDuration,
				"performance_bond":  award.PerformanceBond,
			},
		}
		if err := s.publisher.Upsert(ctx, entry); err != nil {
			return apperrors.Collaborator("failed to publish contract", err)
		}
	}
	return nil
}

// GetPostAwardState implements TenderService.
func (s *tenderService) GetPostAwardState(ctx context.Context, tenderID string) (*models.PostAwardWorkflowState, error) {
	rec, err := s.loadRecord(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	if err := requireOpenPostAward(rec); err != nil {
		return nil, err
	}
	state := *rec.PostAward
	return &state, nil
}

// ClosePostAwardWorkflow implements TenderService. The state is discarded
// once all four steps are done.
func (s *tenderService) ClosePostAwardWorkflow(ctx context.Context, tenderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.loadRecord(ctx, tenderID)
	if err != nil {
		return err
	}
	if err := requireOpenPostAward(rec); err != nil {
		return err
	}
	if !tender.IsComplete(rec.PostAward) {
		return apperrors.InvalidState("post-award workflow for tender %s still has open steps", tenderID)
	}

	rec.PostAward = nil
	rec.PostAwardClosed = true
	if err := s.saveRecord(ctx, rec); err != nil {
		return err
	}
	log.Printf("📁 Tender %s post-award workflow closed\n", tenderID)
	return nil
}

func requireOpenPostAward(rec *models.TenderRecord) error {
	if rec.Award == nil {
		return apperrors.InvalidState("tender %s has not been awarded", rec.Tender.ID)
	}
	if rec.PostAwardClosed || rec.PostAward == nil {
		return apperrors.InvalidState("post-award workflow for tender %s is closed", rec.Tender.ID)
	}
	return nil
}

func (s *tenderService) loadRecord(ctx context.Context, tenderID string) (*models.TenderRecord, error) {
	rec, err := s.tenderRepo.FindByID(ctx, tenderID)
	if errors.Is(err, repositories.ErrTenderNotFound) {
		return nil, apperrors.NotFound("tender %s not found", tenderID)
	}
	if err != nil {
		return nil, apperrors.Collaborator("failed to load tender", err)
	}
	return rec, nil
}

func (s *tenderService) saveRecord(ctx context.Context, rec *models.TenderRecord) error {
	stored := *rec
	stored.Tender.BidsReceived = 0
	if err := s.tenderRepo.Save(ctx, &stored); err != nil {
		return apperrors.Collaborator("failed to store tender", err)
	}
	return nil
}

func (s *tenderService) loadBids(ctx context.Context, tenderID string) ([]models.Bid, error) {
	bids, err := s.bidRepo.FindByTender(ctx, tenderID)
	if err != nil {
		return nil, apperrors.Collaborator("failed to load bids", err)
	}
	return bids, nil
}

func (s *tenderService) saveBids(ctx context.Context, tenderID string, bids []models.Bid) error {
	if err := s.bidRepo.SaveForTender(ctx, tenderID, bids); err != nil {
		return apperrors.Collaborator("failed to store bids", err)
	}
	return nil
}

func (s *tenderService) countBids(ctx context.Context, t *models.Tender) error {
	bids, err := s.loadBids(ctx, t.ID)
	if err != nil {
		return err
	}
	count := 0
	for _, bid := range bids {
		if bid.TenderID == t.ID {
			count++
		}
	}
	t.BidsReceived = count
	return nil
}

// eligibility reads the gate once per bidder for the duration of one operation.
func (s *tenderService) eligibility(ctx context.Context, bids []models.Bid) (tender.EligibilityFunc, error) {
	eligible := make(map[string]bool, len(bids))
	for _, bid := range bids {
		ok, err := s.gate.IsAwardEligible(ctx, bid.BidderID)
		if err != nil {
			return nil, err
		}
		eligible[bid.BidderID] = ok
	}
	return func(bidderID string) bool { return eligible[bidderID] }, nil
}

func applyDraftFields(t *models.Tender, req models.CreateTenderRequest) error {
	if title := strings.TrimSpace(req.Title); title != "" {
		t.Title = title
	}
	t.Category = strings.TrimSpace(req.Category)
	t.Description = strings.TrimSpace(req.Description)

	if raw := strings.TrimSpace(req.EstimatedValue); raw != "" {
		value, err := parseAmount("estimated_value", raw)
		if err != nil {
			return err
		}
		t.EstimatedValue = value
	}
	if raw := strings.TrimSpace(req.CloseDate); raw != "" {
		closeDate, err := time.Parse(dateLayout, raw)
		if err != nil {
			return apperrors.Validation("close_date must be a date in %s format", dateLayout)
		}
		t.CloseDate = &closeDate
	}
	return nil
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, apperrors.Validation("%s is required", field)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperrors.Validation("%s %q is not a number", field, raw)
	}
	if !value.IsPositive() {
		return decimal.Zero, apperrors.Validation("%s must be positive", field)
	}
	return value, nil
}

func tenderListing(t *models.Tender) models.ListingEntry {
	payload := map[string]any{
		"category":        t.Category,
		"estimated_value": t.EstimatedValue.StringFixed(2),
	}
	if t.CloseDate != nil {
		payload["close_date"] = t.CloseDate.Format(dateLayout)
	}
	if t.PublishDate != nil {
		payload["publish_date"] = t.PublishDate.Format(dateLayout)
	}
	return models.ListingEntry{
		ID:       "tender:" + t.ID,
		TenderID: t.ID,
		Kind:     "tender",
		Title:    t.Title,
		Status:   t.Status,
		Payload:  payload,
	}
}
