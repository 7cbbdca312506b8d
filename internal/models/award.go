package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AwardRecord struct {
	ID               string          `json:"id"`
	TenderID         string          `json:"tender_id"`
	WinningBidderID  string          `json:"winning_bidder_id"`
	AwardValue       decimal.Decimal `json:"award_value"`
	Justification    string          `json:"justification"`
	ContractDuration string          `json:"contract_duration,omitempty"`
	PerformanceBond  string          `json:"performance_bond,omitempty"`
	AwardDate        time.Time       `json:"award_date"`
}

type PostAwardStep string

const (
	StepNotifySuccessful   PostAwardStep = "notify_successful"
	StepNotifyUnsuccessful PostAwardStep = "notify_unsuccessful"
	StepPublishFeed        PostAwardStep = "publish_feed"
	StepCreateContract     PostAwardStep = "create_contract"
)

type PostAwardWorkflowState struct {
	NotifiedSuccessful          bool `json:"notified_successful"`
	NotifiedUnsuccessful        bool `json:"notified_unsuccessful"`
	PublishedToTransparencyFeed bool `json:"published_to_transparency_feed"`
	ContractCreated             bool `json:"contract_created"`
}

// ListingEntry is what the public listing publisher receives. ID is the upsert key.
type ListingEntry struct {
	ID       string         `json:"id"`
	TenderID string         `json:"tender_id"`
	Kind     string         `json:"kind"`
	Title    string         `json:"title"`
	Status   TenderStatus   `json:"status"`
	Payload  map[string]any `json:"payload,omitempty"`
}
