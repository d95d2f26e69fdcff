package claimstatus

import (
	"time"

	"github.com/Autsav24/EDIX12/pkg/x12"
)

// Request276 holds everything needed to build a claim status inquiry.
// Blank sender/receiver fields fall back to placeholder trading partner
// IDs, matching the eligibility builder.
type Request276 struct {
	InterchangeControl int `json:"isa_ctrl" yaml:"isa_ctrl"`
	GroupControl       int `json:"gs_ctrl" yaml:"gs_ctrl"`
	TransactionControl int `json:"st_ctrl" yaml:"st_ctrl"`

	SenderID     string `json:"sender_id,omitempty" yaml:"sender_id,omitempty"`
	ReceiverID   string `json:"receiver_id,omitempty" yaml:"receiver_id,omitempty"`
	SenderCode   string `json:"sender_code,omitempty" yaml:"sender_code,omitempty"`
	ReceiverCode string `json:"receiver_code,omitempty" yaml:"receiver_code,omitempty"`

	PayerID   string `json:"payer_id" yaml:"payer_id"`
	PayerName string `json:"payer_name,omitempty" yaml:"payer_name,omitempty"`

	ProviderName string `json:"provider_name" yaml:"provider_name"`
	ProviderNPI  string `json:"provider_npi" yaml:"provider_npi"`

	SubscriberLast  string `json:"subscriber_last" yaml:"subscriber_last"`
	SubscriberFirst string `json:"subscriber_first,omitempty" yaml:"subscriber_first,omitempty"`
	SubscriberID    string `json:"subscriber_id" yaml:"subscriber_id"`

	// ClaimControlNumber, when set, becomes BHT03 and a TRN trace so the
	// payer can correlate the inquiry to a specific claim.
	ClaimControlNumber string `json:"claim_ctrl,omitempty" yaml:"claim_ctrl,omitempty"`

	// DateOfService is CCYYMMDD. Blank means the build timestamp's date.
	DateOfService string `json:"dos,omitempty" yaml:"dos,omitempty"`

	Timestamp  time.Time      `json:"-" yaml:"-"`
	Delimiters x12.Delimiters `json:"-" yaml:"-"`
}

// ClaimRow is one claim reported in a 277, started by a CLP segment.
// Amounts stay strings; payer files carry them in too many shapes to
// coerce at parse time.
type ClaimRow struct {
	ClaimID     string `json:"claim_id"`
	Status      string `json:"claim_status"`
	TotalCharge string `json:"total_charge"`
	TotalPaid   string `json:"total_paid"`

	StatusComposite string `json:"status_composite,omitempty"`
	StatusDate      string `json:"status_date,omitempty"`

	PatientLast  string `json:"patient_last,omitempty"`
	PatientFirst string `json:"patient_first,omitempty"`

	// Dates holds DTP element tails verbatim, one entry per segment.
	Dates [][]string `json:"dates,omitempty"`
}

// ClaimStatus is the structured 277 parse result: one trace number for
// the document plus a row per CLP.
type ClaimStatus struct {
	TraceNumber string        `json:"trace_num"`
	Claims      []ClaimRow    `json:"claims"`
	Debug       x12.DebugInfo `json:"_debug"`
	Warnings    []string      `json:"_validation,omitempty"`
}
