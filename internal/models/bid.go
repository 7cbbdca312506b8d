package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BidStatus string

const (
	BidQualified    BidStatus = "qualified"
	BidUnderReview  BidStatus = "under_review"
	BidDisqualified BidStatus = "disqualified"
)

type ScoreCategory string

const (
	CategoryFinancial ScoreCategory = "financial"
	CategoryTechnical ScoreCategory = "technical"
)

// ScoreSheet holds the evaluator-entered criterion scores of one bid. Derived
// percentages are filled in by the tender package whenever the sheet is read.
type ScoreSheet struct {
	Financial map[string]int `json:"financial"`
	Technical map[string]int `json:"technical"`

	FinancialScore  int `json:"financial_score"`
	TechnicalScore  int `json:"technical_score"`
	ComplianceScore int `json:"compliance_score"`
	TotalScore      int `json:"total_score"`
}

type Bid struct {
	TenderID       string          `json:"tender_id"`
	BidderID       string          `json:"bidder_id"`
	CompanyName    string          `json:"company_name"`
	BidAmount      decimal.Decimal `json:"bid_amount"`
	ScoreSheet     ScoreSheet      `json:"score_sheet"`
	SubmissionDate time.Time       `json:"submission_date"`
	Status         BidStatus       `json:"status"`
}
