package models

import "time"

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

type WorkflowStep string

const (
	StepRegistration      WorkflowStep = "registration"
	StepLoginVerification WorkflowStep = "login_verification"
	StepBidding           WorkflowStep = "bidding"
	StepEvaluation        WorkflowStep = "evaluation"
	StepNOC               WorkflowStep = "noc"
)

// WorkflowSteps lists the gate steps in document order.
var WorkflowSteps = []WorkflowStep{
	StepRegistration,
	StepLoginVerification,
	StepBidding,
	StepEvaluation,
	StepNOC,
}

type StepRecord struct {
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	CertificateNumber string     `json:"certificate_number,omitempty"`
}

type VendorWorkflowStatus struct {
	VendorID                   string         `json:"vendor_id"`
	RegistrationCompleted      bool           `json:"registration_completed"`
	LoginVerificationCompleted bool           `json:"login_verification_completed"`
	BiddingCompleted           bool           `json:"bidding_completed"`
	EvaluationCompleted        bool           `json:"evaluation_completed"`
	NOCIssued                  bool           `json:"noc_issued"`
	FinalApprovalStatus        ApprovalStatus `json:"final_approval_status"`

	Steps     map[WorkflowStep]StepRecord `json:"steps,omitempty"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

// Completed reports whether the given step flag is set.
func (v *VendorWorkflowStatus) Completed(step WorkflowStep) bool {
	switch step {
	case StepRegistration:
		return v.RegistrationCompleted
	case StepLoginVerification:
		return v.LoginVerificationCompleted
	case StepBidding:
		return v.BiddingCompleted
	case StepEvaluation:
		return v.EvaluationCompleted
	case StepNOC:
		return v.NOCIssued
	}
	return false
}

// MarkCompleted sets the flag for step. Flags are never cleared.
func (v *VendorWorkflowStatus) MarkCompleted(step WorkflowStep) {
	switch step {
	case StepRegistration:
		v.RegistrationCompleted = true
	case StepLoginVerification:
		v.LoginVerificationCompleted = true
	case StepBidding:
		v.BiddingCompleted = true
	case StepEvaluation:
		v.EvaluationCompleted = true
	case StepNOC:
		v.NOCIssued = true
	}
}
