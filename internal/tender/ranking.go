package tender

import (
	"sort"

	"ministry/tender-engine/internal/models"
)

// RankedBid is a bid with its freshly evaluated score sheet and its position.
type RankedBid struct {
	models.Bid
	Rank     int  `json:"rank"`
	Eligible bool `json:"eligible"`
}

// EligibilityFunc answers the workflow gate for one bidder.
type EligibilityFunc func(bidderID string) bool

// RankBids orders bids by total score, highest first. Ties go to the earliest
// submission, then to the lower bidder id so the order is fully deterministic.
// The input slice and its score maps are left untouched.
func RankBids(bids []models.Bid, eligible EligibilityFunc) []RankedBid {
	ranked := make([]RankedBid, 0, len(bids))
	for _, bid := range bids {
		isEligible := eligible != nil && eligible(bid.BidderID)
		entry := RankedBid{Bid: bid, Eligible: isEligible}
		entry.ScoreSheet = Evaluate(bid.ScoreSheet, isEligible)
		ranked = append(ranked, entry)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.ScoreSheet.TotalScore != b.ScoreSheet.TotalScore {
			return a.ScoreSheet.TotalScore > b.ScoreSheet.TotalScore
		}
		if !a.SubmissionDate.Equal(b.SubmissionDate) {
			return a.SubmissionDate.Before(b.SubmissionDate)
		}
		return a.BidderID < b.BidderID
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// CountEligible returns how many bids belong to award-eligible bidders.
func CountEligible(bids []models.Bid, eligible EligibilityFunc) int {
	if eligible == nil {
		return 0
	}
	count := 0
	for _, bid := range bids {
		if eligible(bid.BidderID) {
			count++
		}
	}
	return count
}
