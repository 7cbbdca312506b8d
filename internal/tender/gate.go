package tender

import "ministry/tender-engine/internal/models"

const finalApprovalStep = "final_approval"

// IsAwardEligible is true only when all five workflow steps are complete and
// final approval has been granted. A vendor with no record is not eligible.
func IsAwardEligible(v *models.VendorWorkflowStatus) bool {
	if v == nil {
		return false
	}
	return v.RegistrationCompleted &&
		v.LoginVerificationCompleted &&
		v.BiddingCompleted &&
		v.EvaluationCompleted &&
		v.NOCIssued &&
		v.FinalApprovalStatus == models.ApprovalApproved
}

// UnmetSteps lists, in document order, what stands between the vendor and
// eligibility.
func UnmetSteps(v *models.VendorWorkflowStatus) []string {
	unmet := make([]string, 0, len(models.WorkflowSteps)+1)
	for _, step := range models.WorkflowSteps {
		if v == nil || !v.Completed(step) {
			unmet = append(unmet, string(step))
		}
	}
	if v == nil || v.FinalApprovalStatus != models.ApprovalApproved {
		unmet = append(unmet, finalApprovalStep)
	}
	return unmet
}
