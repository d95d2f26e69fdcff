package remit

import (
	"time"

	"github.com/Autsav24/EDIX12/pkg/x12"
)

// Adjustment is one CAS claim adjustment: group code, reason code, amount.
type Adjustment struct {
	Group  string `json:"group"`
	Reason string `json:"reason"`
	Amount string `json:"amount"`
}

// ClaimPayment is one claim-level payment record. The builder emits one
// CLP loop per entry; the parser fills one per CLP encountered.
type ClaimPayment struct {
	ClaimID      string `json:"claim_id"`
	Status       string `json:"status,omitempty"`
	ChargeAmount string `json:"charge"`
	PaidAmount   string `json:"paid"`
	ClaimControl string `json:"claim_control,omitempty"`

	PatientLast  string `json:"patient_last,omitempty"`
	PatientFirst string `json:"patient_first,omitempty"`
	PatientID    string `json:"patient_id,omitempty"`

	Adjustments []Adjustment `json:"adjustments,omitempty"`

	// ServiceStart and ServiceEnd are the DTM 232/233 dates, CCYYMMDD.
	ServiceStart string `json:"service_start,omitempty"`
	ServiceEnd   string `json:"service_end,omitempty"`
}

// Request835 holds everything needed to build a remittance advice.
type Request835 struct {
	InterchangeControl int `json:"isa_ctrl" yaml:"isa_ctrl"`
	GroupControl       int `json:"gs_ctrl" yaml:"gs_ctrl"`
	TransactionControl int `json:"st_ctrl" yaml:"st_ctrl"`

	PayerName string `json:"payer_name" yaml:"payer_name"`
	PayerID   string `json:"payer_id" yaml:"payer_id"`
	PayeeName string `json:"payee_name" yaml:"payee_name"`
	PayeeNPI  string `json:"payee_npi" yaml:"payee_npi"`

	CheckNumber string `json:"check_number" yaml:"check_number"`
	PaymentDate string `json:"payment_date" yaml:"payment_date"`
	PaidAmount  string `json:"paid_amount" yaml:"paid_amount"`

	Claims []ClaimPayment `json:"claims" yaml:"claims"`

	Timestamp  time.Time      `json:"-" yaml:"-"`
	Delimiters x12.Delimiters `json:"-" yaml:"-"`
}

// N1Party is a payer or payee identified by an N1 segment.
type N1Party struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// Payment is the BPR financial summary of an 835.
type Payment struct {
	Amount string `json:"amount"`
	Method string `json:"method"`
	Date   string `json:"date"`
}

// Remittance is the structured 835 parse result. TotalPaid aggregates the
// CLP paid amounts that parse as numbers; unparseable amounts are skipped
// rather than failing the document.
type Remittance struct {
	Payment     Payment        `json:"payment"`
	CheckNumber string         `json:"check_number"`
	PaymentDate string         `json:"payment_date"`
	Payer       N1Party        `json:"payer"`
	Payee       N1Party        `json:"payee"`
	Claims      []ClaimPayment `json:"claims"`
	TotalPaid   float64        `json:"total_paid"`
	Debug       x12.DebugInfo  `json:"_debug"`
	Warnings    []string       `json:"_validation,omitempty"`
}

// Address is the billing provider street address for an 837.
type Address struct {
	Line1 string `json:"line1,omitempty" yaml:"line1,omitempty"`
	City  string `json:"city,omitempty" yaml:"city,omitempty"`
	State string `json:"state,omitempty" yaml:"state,omitempty"`
	Zip   string `json:"zip,omitempty" yaml:"zip,omitempty"`
}

// ServiceLine is one LX/SV1 professional service line.
type ServiceLine struct {
	ProcedureCode string `json:"procedure" yaml:"procedure"`
	Amount        string `json:"amount" yaml:"amount"`
	Units         string `json:"units,omitempty" yaml:"units,omitempty"`
}

// Request837 holds everything needed to build a professional claim.
type Request837 struct {
	InterchangeControl int `json:"isa_ctrl" yaml:"isa_ctrl"`
	GroupControl       int `json:"gs_ctrl" yaml:"gs_ctrl"`
	TransactionControl int `json:"st_ctrl" yaml:"st_ctrl"`

	SenderID   string `json:"sender_id" yaml:"sender_id"`
	ReceiverID string `json:"receiver_id" yaml:"receiver_id"`

	SubmitterName string `json:"submitter_name,omitempty" yaml:"submitter_name,omitempty"`
	SubmitterID   string `json:"submitter_id,omitempty" yaml:"submitter_id,omitempty"`
	ContactName   string `json:"contact_name,omitempty" yaml:"contact_name,omitempty"`
	ContactPhone  string `json:"contact_phone,omitempty" yaml:"contact_phone,omitempty"`
	ReceiverName  string `json:"receiver_name,omitempty" yaml:"receiver_name,omitempty"`
	ReceiverCode  string `json:"receiver_code,omitempty" yaml:"receiver_code,omitempty"`

	BillingName    string  `json:"billing_name" yaml:"billing_name"`
	BillingNPI     string  `json:"billing_npi" yaml:"billing_npi"`
	BillingAddress Address `json:"billing_address,omitempty" yaml:"billing_address,omitempty"`
	TaxID          string  `json:"tax_id,omitempty" yaml:"tax_id,omitempty"`

	PatientLast  string `json:"patient_last" yaml:"patient_last"`
	PatientFirst string `json:"patient_first,omitempty" yaml:"patient_first,omitempty"`
	PatientID    string `json:"patient_id" yaml:"patient_id"`

	ClaimID        string `json:"claim_id" yaml:"claim_id"`
	ClaimAmount    string `json:"claim_amount" yaml:"claim_amount"`
	PlaceOfService string `json:"place_of_service,omitempty" yaml:"place_of_service,omitempty"`
	DiagnosisCode  string `json:"diagnosis,omitempty" yaml:"diagnosis,omitempty"`

	// DOSStart is CCYYMMDD; a non-empty DOSEnd switches DTP 472 to an RD8
	// range.
	DOSStart string `json:"dos_start" yaml:"dos_start"`
	DOSEnd   string `json:"dos_end,omitempty" yaml:"dos_end,omitempty"`

	Lines []ServiceLine `json:"lines,omitempty" yaml:"lines,omitempty"`

	Timestamp  time.Time      `json:"-" yaml:"-"`
	Delimiters x12.Delimiters `json:"-" yaml:"-"`
}
