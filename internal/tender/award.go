package tender

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ministry/tender-engine/internal/apperrors"
	"ministry/tender-engine/internal/models"
)

type AwardTerms struct {
	AwardValue       string `json:"award_value"`
	Justification    string `json:"justification"`
	ContractDuration string `json:"contract_duration"`
	PerformanceBond  string `json:"performance_bond"`
}

// AwardRequest bundles what the award preconditions look at. Gate is the
// bidder's workflow record as read for this call; nil means no record.
type AwardRequest struct {
	Tender   *models.Tender
	Bids     []models.Bid
	Gate     *models.VendorWorkflowStatus
	BidderID string
	Terms    AwardTerms
}

// BuildAward runs the award preconditions in order and returns the record to
// commit. Each precondition fails with its own error code:
//  1. tender status must be Closed or Evaluated
//  2. the bidder must have a bid on the tender
//  3. the bidder must be award-eligible
//  4. award value and justification must be present
func BuildAward(req AwardRequest, id string, now time.Time) (*models.AwardRecord, error) {
	t := req.Tender
	if t.Status != models.TenderEvaluated && t.Status != models.TenderClosed {
		return nil, apperrors.InvalidState("tender %s is %s; only closed or evaluated tenders can be awarded", t.ID, t.Status)
	}

	if !hasBid(req.Bids, t.ID, req.BidderID) {
		return nil, apperrors.UnknownBidder(t.ID, req.BidderID)
	}

	if !IsAwardEligible(req.Gate) {
		return nil, apperrors.IneligibleVendor(req.BidderID, UnmetSteps(req.Gate))
	}

	rawValue := strings.TrimSpace(req.Terms.AwardValue)
	justification := strings.TrimSpace(req.Terms.Justification)
	if rawValue == "" || justification == "" {
		return nil, apperrors.Validation("award value and justification are required")
	}
	value, err := decimal.NewFromString(rawValue)
	if err != nil {
		return nil, apperrors.Validation("award value %q is not a number", rawValue)
	}
	if !value.IsPositive() {
		return nil, apperrors.Validation("award value must be positive")
	}

	return &models.AwardRecord{
		ID:               id,
		TenderID:         t.ID,
		WinningBidderID:  req.BidderID,
		AwardValue:       value,
		Justification:    justification,
		ContractDuration: strings.TrimSpace(req.Terms.ContractDuration),
		PerformanceBond:  strings.TrimSpace(req.Terms.PerformanceBond),
		AwardDate:        now,
	}, nil
}

// ApplyAward commits award into rec: the record is attached, the tender moves
// to Awarded with the award fields set, and a fresh post-award state starts.
func ApplyAward(rec *models.TenderRecord, award *models.AwardRecord) {
	awardDate := award.AwardDate
	rec.Award = award
	rec.Tender.Status = models.TenderAwarded
	rec.Tender.AwardedCompanyID = award.WinningBidderID
	rec.Tender.AwardAmount = award.AwardValue
	rec.Tender.AwardDate = &awardDate
	rec.Tender.AwardJustification = award.Justification
	rec.Tender.UpdatedAt = award.AwardDate
	rec.PostAward = &models.PostAwardWorkflowState{}
	rec.PostAwardClosed = false
}

func hasBid(bids []models.Bid, tenderID, bidderID string) bool {
	for _, bid := range bids {
		if bid.TenderID == tenderID && bid.BidderID == bidderID {
			return true
		}
	}
	return false
}

// FindBid returns the tender's bid from bidderID, or nil.
func FindBid(bids []models.Bid, bidderID string) *models.Bid {
	for i := range bids {
		if bids[i].BidderID == bidderID {
			return &bids[i]
		}
	}
	return nil
}
