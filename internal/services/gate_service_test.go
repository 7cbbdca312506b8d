package services

import (
	"context"
	"testing"
	"time"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"

	"ministry/tender-engine/internal/apperrors"
	"ministry/tender-engine/internal/models"
)

func TestWorkflowGate_UnknownVendor(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	eligible, err := h.gate.IsAwardEligible(ctx, "nobody")
	assert.NoError(t, err)
	check.False(t, eligible)

	view, err := h.gate.GetWorkflow(ctx, "nobody")
	assert.NoError(t, err)
	check.False(t, view.Exists)
	check.False(t, view.Eligible)
	check.Equal(t, models.ApprovalPending, view.Workflow.FinalApprovalStatus)
	check.Equal(t, 6, len(view.Unmet))
}

func TestWorkflowGate_RecordProgressIsMonotonic(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	view, err := h.gate.RecordProgress(ctx, "v-1", models.VendorProgressRequest{
		CompletedSteps:     []models.WorkflowStep{models.StepRegistration, models.StepNOC},
		CertificateNumbers: map[models.WorkflowStep]string{models.StepNOC: "NOC-2026-0042"},
	})
	assert.NoError(t, err)
	check.True(t, view.Exists)
	check.True(t, view.Workflow.RegistrationCompleted)
	check.True(t, view.Workflow.NOCIssued)
	check.Equal(t, "NOC-2026-0042", view.Workflow.Steps[models.StepNOC].CertificateNumber)
	firstStamp := *view.Workflow.Steps[models.StepRegistration].CompletedAt

	h.clock.Advance(time.Hour)
	view, err = h.gate.RecordProgress(ctx, "v-1", models.VendorProgressRequest{
		CompletedSteps:      []models.WorkflowStep{models.StepRegistration, models.StepLoginVerification, models.StepBidding, models.StepEvaluation},
		FinalApprovalStatus: models.ApprovalApproved,
	})
	assert.NoError(t, err)
	check.True(t, view.Eligible)
	check.Equal(t, 0, len(view.Unmet))
	check.True(t, firstStamp.Equal(*view.Workflow.Steps[models.StepRegistration].CompletedAt))
	check.Equal(t, "NOC-2026-0042", view.Workflow.Steps[models.StepNOC].CertificateNumber)

	// An empty report changes nothing; completed steps never revert.
	view, err = h.gate.RecordProgress(ctx, "v-1", models.VendorProgressRequest{})
	assert.NoError(t, err)
	check.True(t, view.Eligible)
}

func TestWorkflowGate_RejectionRevokesEligibility(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	h.approve(t, "v-1")

	view, err := h.gate.RecordProgress(ctx, "v-1", models.VendorProgressRequest{FinalApprovalStatus: models.ApprovalRejected})

	assert.NoError(t, err)
	check.False(t, view.Eligible)
	check.Equal(t, []string{"final_approval"}, view.Unmet)
}

func TestWorkflowGate_RecordProgressValidation(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	_, err := h.gate.RecordProgress(ctx, "v-1", models.VendorProgressRequest{CompletedSteps: []models.WorkflowStep{"kyc"}})
	check.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))

	_, err = h.gate.RecordProgress(ctx, "v-1", models.VendorProgressRequest{FinalApprovalStatus: "maybe"})
	check.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))

	_, err = h.gate.RecordProgress(ctx, "", models.VendorProgressRequest{})
	check.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))

	view, err := h.gate.GetWorkflow(ctx, "v-1")
	assert.NoError(t, err)
	check.False(t, view.Exists)
}

func TestWorkflowGate_Subscribe(t *testing.T) {
	h := newHarness()
	var seen []models.VendorWorkflowStatus
	h.gate.Subscribe(func(status models.VendorWorkflowStatus) {
		seen = append(seen, status)
	})

	h.approve(t, "v-1")
	_, err := h.gate.RecordProgress(context.Background(), "v-1", models.VendorProgressRequest{CompletedSteps: []models.WorkflowStep{"kyc"}})
	check.Error(t, err)

	check.Equal(t, 1, len(seen))
	check.Equal(t, "v-1", seen[0].VendorID)
	check.Equal(t, models.ApprovalApproved, seen[0].FinalApprovalStatus)
}

// The gate is read fresh on every award attempt.
func TestWorkflowGate_AwardSeesLatestProgress(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	tdr := h.closedTender(t, "v-1")

	_, err := h.service.Award(ctx, tdr.ID, "v-1", validTerms())
	check.Equal(t, apperrors.CodeIneligibleVendor, apperrors.CodeOf(err))

	h.approve(t, "v-1")
	_, err = h.service.Award(ctx, tdr.ID, "v-1", validTerms())
	check.NoError(t, err)
}
