package tender

import (
	"testing"
	"time"

	"github.com/peterldowns/testy/check"

	"ministry/tender-engine/internal/models"
)

func bidAt(bidderID string, submitted time.Time, sheet models.ScoreSheet) models.Bid {
	return models.Bid{
		TenderID:       "t-1",
		BidderID:       bidderID,
		CompanyName:    bidderID + " Ltd",
		ScoreSheet:     sheet,
		SubmissionDate: submitted,
		Status:         models.BidUnderReview,
	}
}

func eligibleSet(ids ...string) EligibilityFunc {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return func(bidderID string) bool { return set[bidderID] }
}

func TestRankBids_OrdersByTotalScore(t *testing.T) {
	bids := []models.Bid{
		bidAt("bidder_a", testNow, sheetFrom([]int{10, 10, 10, 10, 10}, []int{10, 10, 10, 10, 10})),
		bidAt("bidder_b", testNow, sheetFrom([]int{18, 19, 17, 16, 17}, []int{16, 18, 17, 19, 15})),
		bidAt("bidder_c", testNow, models.ScoreSheet{}),
	}

	ranked := RankBids(bids, eligibleSet("bidder_b"))

	check.Equal(t, 3, len(ranked))
	check.Equal(t, "bidder_b", ranked[0].BidderID) // 88
	check.Equal(t, "bidder_c", ranked[1].BidderID) // 72 on baselines
	check.Equal(t, "bidder_a", ranked[2].BidderID) // 20 + 17.5 + 17.5 = 55
	check.Equal(t, 88, ranked[0].ScoreSheet.TotalScore)
	check.Equal(t, 72, ranked[1].ScoreSheet.TotalScore)
	check.Equal(t, 55, ranked[2].ScoreSheet.TotalScore)
	check.True(t, ranked[0].Eligible)
	check.False(t, ranked[1].Eligible)
	check.Equal(t, 1, ranked[0].Rank)
	check.Equal(t, 3, ranked[2].Rank)
}

func TestRankBids_TieGoesToEarliestSubmission(t *testing.T) {
	bids := []models.Bid{
		bidAt("bidder_late", testNow.Add(2*time.Hour), models.ScoreSheet{}),
		bidAt("bidder_early", testNow, models.ScoreSheet{}),
		bidAt("bidder_mid", testNow.Add(time.Hour), models.ScoreSheet{}),
	}

	ranked := RankBids(bids, nil)

	check.Equal(t, "bidder_early", ranked[0].BidderID)
	check.Equal(t, "bidder_mid", ranked[1].BidderID)
	check.Equal(t, "bidder_late", ranked[2].BidderID)
}

func TestRankBids_SameInstantFallsBackToBidderID(t *testing.T) {
	bids := []models.Bid{
		bidAt("bidder_b", testNow, models.ScoreSheet{}),
		bidAt("bidder_a", testNow, models.ScoreSheet{}),
	}

	ranked := RankBids(bids, nil)

	check.Equal(t, "bidder_a", ranked[0].BidderID)
	check.Equal(t, "bidder_b", ranked[1].BidderID)
}

func TestRankBids_Empty(t *testing.T) {
	ranked := RankBids(nil, nil)

	check.NotNil(t, ranked)
	check.Equal(t, 0, len(ranked))
}

func TestRankBids_EditIsolation(t *testing.T) {
	bids := []models.Bid{
		bidAt("bidder_a", testNow, sheetFrom([]int{12, 12, 12, 12, 12}, []int{12, 12, 12, 12, 12})),
		bidAt("bidder_b", testNow, sheetFrom([]int{15, 15, 15, 15, 15}, []int{15, 15, 15, 15, 15})),
	}
	before := RankBids(bids, nil)
	totalA := totalFor(before, "bidder_a")

	updated, err := SetCriterion(bids[1].ScoreSheet, models.CategoryFinancial, "payment_terms", 0)
	check.NoError(t, err)
	bids[1].ScoreSheet = updated

	after := RankBids(bids, nil)
	check.Equal(t, totalA, totalFor(after, "bidder_a"))
	check.NotEqual(t, totalFor(before, "bidder_b"), totalFor(after, "bidder_b"))
}

func TestRankBids_DoesNotMutateInput(t *testing.T) {
	bids := []models.Bid{
		bidAt("bidder_a", testNow, sheetFrom([]int{20}, nil)),
	}

	ranked := RankBids(bids, nil)
	ranked[0].ScoreSheet.Financial["price_competitiveness"] = 1

	check.Equal(t, 20, bids[0].ScoreSheet.Financial["price_competitiveness"])
	check.Equal(t, 0, bids[0].ScoreSheet.TotalScore)
}

func TestCountEligible(t *testing.T) {
	bids := []models.Bid{
		bidAt("bidder_a", testNow, models.ScoreSheet{}),
		bidAt("bidder_b", testNow, models.ScoreSheet{}),
	}

	check.Equal(t, 0, CountEligible(bids, nil))
	check.Equal(t, 1, CountEligible(bids, eligibleSet("bidder_b")))
	check.Equal(t, 0, CountEligible(bids, eligibleSet("bidder_z")))
}

func totalFor(ranked []RankedBid, bidderID string) int {
	for _, entry := range ranked {
		if entry.BidderID == bidderID {
			return entry.ScoreSheet.TotalScore
		}
	}
	return -1
}
