package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TenderStatus string

const (
	TenderDraft     TenderStatus = "draft"
	TenderPublished TenderStatus = "published"
	TenderClosed    TenderStatus = "closed"
	TenderEvaluated TenderStatus = "evaluated"
	TenderAwarded   TenderStatus = "awarded"
)

type Tender struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Category           string          `json:"category"`
	Description        string          `json:"description"`
	EstimatedValue     decimal.Decimal `json:"estimated_value"`
	PublishDate        *time.Time      `json:"publish_date,omitempty"`
	CloseDate          *time.Time      `json:"close_date,omitempty"`
	Status             TenderStatus    `json:"status"`
	EvaluationReady    bool            `json:"evaluation_ready"`
	AwardedCompanyID   string          `json:"awarded_company_id,omitempty"`
	AwardAmount        decimal.Decimal `json:"award_amount"`
	AwardDate          *time.Time      `json:"award_date,omitempty"`
	AwardJustification string          `json:"award_justification,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`

	// BidsReceived is derived from the bid collection on every read and never stored.
	BidsReceived int `json:"bids_received"`
}

// TenderRecord is the unit written under a tender's store key. The award, the
// status change and the post-award state travel together in one write.
type TenderRecord struct {
	Tender          Tender                  `json:"tender"`
	Award           *AwardRecord            `json:"award,omitempty"`
	PostAward       *PostAwardWorkflowState `json:"post_award,omitempty"`
	PostAwardClosed bool                    `json:"post_award_closed"`
}

type TenderFilter struct {
	Status   TenderStatus
	Category string
	Query    string
}
