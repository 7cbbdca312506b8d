package models

type CreateTenderRequest struct {
	Title          string `json:"title" validate:"required"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	EstimatedValue string `json:"estimated_value"`
	CloseDate      string `json:"close_date"`
}

type SubmitBidRequest struct {
	BidderID    string `json:"bidder_id" validate:"required"`
	CompanyName string `json:"company_name" validate:"required"`
	BidAmount   string `json:"bid_amount" validate:"required"`
}

type UpdateScoreRequest struct {
	Category  ScoreCategory `json:"category" validate:"required"`
	Criterion string        `json:"criterion" validate:"required"`
	Score     *int          `json:"score" validate:"required"`
}

type AwardRequest struct {
	BidderID         string `json:"bidder_id" validate:"required"`
	AwardValue       string `json:"award_value" validate:"required"`
	Justification    string `json:"justification" validate:"required"`
	ContractDuration string `json:"contract_duration"`
	PerformanceBond  string `json:"performance_bond"`
}

// VendorProgressRequest is how the upstream registration, bidding and NOC
// processes report progress. Completed steps are merged, never cleared.
type VendorProgressRequest struct {
	CompletedSteps      []WorkflowStep          `json:"completed_steps"`
	CertificateNumbers  map[WorkflowStep]string `json:"certificate_numbers,omitempty"`
	FinalApprovalStatus ApprovalStatus          `json:"final_approval_status,omitempty"`
}

type TenderDetail struct {
	Tender            Tender                  `json:"tender"`
	Award             *AwardRecord            `json:"award,omitempty"`
	PostAward         *PostAwardWorkflowState `json:"post_award,omitempty"`
	PostAwardComplete bool                    `json:"post_award_complete"`
	PostAwardClosed   bool                    `json:"post_award_closed"`
}

type AwardResult struct {
	Award     AwardRecord            `json:"award"`
	Tender    Tender                 `json:"tender"`
	PostAward PostAwardWorkflowState `json:"post_award"`
}

type VendorWorkflowView struct {
	Workflow VendorWorkflowStatus `json:"workflow"`
	Exists   bool                 `json:"exists"`
	Eligible bool                 `json:"eligible"`
	Unmet    []string             `json:"unmet"`
}

type ErrorResponse struct {
	Error string   `json:"error"`
	Code  string   `json:"code"`
	Unmet []string `json:"unmet,omitempty"`
}
