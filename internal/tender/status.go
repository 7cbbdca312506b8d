package tender

import (
	"strings"
	"time"

	"ministry/tender-engine/internal/apperrors"
	"ministry/tender-engine/internal/models"
)

var statusOrder = map[models.TenderStatus]int{
	models.TenderDraft:     0,
	models.TenderPublished: 1,
	models.TenderClosed:    2,
	models.TenderEvaluated: 3,
	models.TenderAwarded:   4,
}

// StatusRank returns the position of s in Draft < Published < Closed < Evaluated < Awarded,
// or -1 for an unknown status.
func StatusRank(s models.TenderStatus) int {
	if rank, ok := statusOrder[s]; ok {
		return rank
	}
	return -1
}

// ValidStatus reports whether s is one of the five lifecycle states.
func ValidStatus(s models.TenderStatus) bool {
	return StatusRank(s) >= 0
}

// CheckTransition allows exactly the edges of the lifecycle. Every edge moves
// one step forward; anything else, including any move backwards, is rejected.
func CheckTransition(from, to models.TenderStatus) error {
	if !ValidStatus(to) {
		return apperrors.Validation("unknown tender status %q", to)
	}
	if StatusRank(to) <= StatusRank(from) {
		return apperrors.InvalidState("tender cannot move from %s back to %s", from, to)
	}
	if StatusRank(to) != StatusRank(from)+1 {
		return apperrors.InvalidState("tender cannot move from %s to %s", from, to)
	}
	return nil
}

// Publish moves a draft to Published once every listing field is present.
func Publish(t *models.Tender, now time.Time) error {
	if err := CheckTransition(t.Status, models.TenderPublished); err != nil {
		return err
	}

	var missing []string
	if strings.TrimSpace(t.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(t.Category) == "" {
		missing = append(missing, "category")
	}
	if strings.TrimSpace(t.Description) == "" {
		missing = append(missing, "description")
	}
	if !t.EstimatedValue.IsPositive() {
		missing = append(missing, "estimated_value")
	}
	if t.CloseDate == nil || t.CloseDate.IsZero() {
		missing = append(missing, "close_date")
	}
	if len(missing) > 0 {
		return apperrors.Validation("tender cannot be published, missing: %s", strings.Join(missing, ", "))
	}

	t.Status = models.TenderPublished
	if t.PublishDate == nil {
		published := now
		t.PublishDate = &published
	}
	t.UpdatedAt = now
	return nil
}

// PastCloseDate compares calendar days: a tender closing on the 14th is still
// open for the whole of the 14th.
func PastCloseDate(t *models.Tender, now time.Time) bool {
	if t.CloseDate == nil {
		return false
	}
	loc := t.CloseDate.Location()
	today := calendarDay(now.In(loc))
	return today.After(calendarDay(*t.CloseDate))
}

// Recheck applies the time-driven Published -> Closed rule and reports whether
// the tender changed. Any other status is left alone.
func Recheck(t *models.Tender, now time.Time) bool {
	if t.Status != models.TenderPublished || !PastCloseDate(t, now) {
		return false
	}
	t.Status = models.TenderClosed
	t.EvaluationReady = true
	t.UpdatedAt = now
	return true
}

// FinalizeEvaluation moves a closed tender to Evaluated. It needs at least one
// award-eligible bidder in the pool.
func FinalizeEvaluation(t *models.Tender, eligibleBidders int, now time.Time) error {
	if err := CheckTransition(t.Status, models.TenderEvaluated); err != nil {
		return err
	}
	if eligibleBidders == 0 {
		return apperrors.IneligiblePool(t.ID)
	}
	t.Status = models.TenderEvaluated
	t.UpdatedAt = now
	return nil
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
