package eligibility

import (
	"time"

	"github.com/Autsav24/EDIX12/pkg/x12"
)

// Party identifies a subscriber or dependent. Plain value object; parties
// are constructed per request and never persisted by this package.
type Party struct {
	Last        string `json:"last" yaml:"last"`
	First       string `json:"first,omitempty" yaml:"first,omitempty"`
	Middle      string `json:"middle,omitempty" yaml:"middle,omitempty"`
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	IDQualifier string `json:"id_qual,omitempty" yaml:"id_qual,omitempty"`
}

// Address is an optional N3/N4 pair. Emitted only when Line1 is non-empty.
type Address struct {
	Line1 string `json:"line1,omitempty" yaml:"line1,omitempty"`
	Line2 string `json:"line2,omitempty" yaml:"line2,omitempty"`
	City  string `json:"city,omitempty" yaml:"city,omitempty"`
	State string `json:"state,omitempty" yaml:"state,omitempty"`
	Zip   string `json:"zip,omitempty" yaml:"zip,omitempty"`
}

// Provider is the information receiver on a 270. No NPI checksum or state
// code validation happens here; the builder is structurally correct but not
// content-validated.
type Provider struct {
	Name     string  `json:"name" yaml:"name"`
	NPI      string  `json:"npi" yaml:"npi"`
	Taxonomy string  `json:"taxonomy,omitempty" yaml:"taxonomy,omitempty"`
	Address  Address `json:"address,omitempty" yaml:"address,omitempty"`
}

// Request270 is a typed eligibility inquiry. Control numbers are
// caller-supplied; the builder does not enforce uniqueness.
type Request270 struct {
	InterchangeControl int `json:"isa_control"`
	GroupControl       int `json:"gs_control"`
	TransactionControl int `json:"st_control"`

	SenderID     string `json:"sender_id,omitempty"`
	ReceiverID   string `json:"receiver_id,omitempty"`
	SenderCode   string `json:"sender_code,omitempty"`
	ReceiverCode string `json:"receiver_code,omitempty"`

	PayerID   string `json:"payer_id"`
	PayerName string `json:"payer_name,omitempty"`

	Provider   Provider `json:"provider"`
	Subscriber Party    `json:"subscriber"`
	Dependent  *Party   `json:"dependent,omitempty"`

	SubscriberAddress Address `json:"subscriber_address,omitempty"`

	// ServiceTypes lists EQ codes; empty falls back to the profile's
	// preferred codes, then to plan coverage ("30").
	ServiceTypes []string `json:"service_types,omitempty"`

	DateStart string `json:"date_start"`          // CCYYMMDD
	DateEnd   string `json:"date_end,omitempty"`  // CCYYMMDD, enables RD8

	TraceNumber string `json:"trace,omitempty"`
	DOB         string `json:"dob,omitempty"`    // CCYYMMDD
	Gender      string `json:"gender,omitempty"` // M, F or U

	Timestamp  time.Time      `json:"-"`
	Delimiters x12.Delimiters `json:"-"`
}

// Entity is one extracted NM1 bucket of a 271. Organizations fill Name;
// persons fill Last/First.
type Entity struct {
	Name        string `json:"name,omitempty"`
	Last        string `json:"last,omitempty"`
	First       string `json:"first,omitempty"`
	IDQualifier string `json:"id_qual"`
	ID          string `json:"id"`
}

// Empty reports whether nothing was extracted into the bucket.
func (e Entity) Empty() bool {
	return e == Entity{}
}

// BenefitInfo is one EB row: thirteen named positional fields plus the raw
// element list for payer-specific extensions past the parsed positions.
// Missing elements default to empty strings.
type BenefitInfo struct {
	CoverageCode  string `json:"EB01"`
	Coverage      string `json:"Coverage"`
	CoverageLevel string `json:"EB02"`
	ServiceType   string `json:"ServiceType"`
	PlanDesc      string `json:"PlanDesc"`
	TimePeriod    string `json:"TimePeriod"`
	BenefitAmt    string `json:"BenefitAmt"`
	Percent       string `json:"Percent"`
	QtyQualifier  string `json:"QtyQualifier"`
	Qty           string `json:"Qty"`
	AuthIndicator string `json:"AuthIndicator"`
	InPlanNetwork string `json:"InPlanNetwork"`
	Procedure     string `json:"Procedure"`

	Context string   `json:"context"`
	Raw     []string `json:"raw,omitempty"`
}

// Rejection is one AAA request-validation row.
type Rejection struct {
	Context        string `json:"context"`
	RejectCode     string `json:"reject_code"`
	FollowupAction string `json:"followup_action"`
}

// Trace mirrors the TRN segment of the response.
type Trace struct {
	TraceType   string `json:"trace_type"`
	TraceNumber string `json:"trace_num"`
}

// ContextSegment retains a DTP or REF segment verbatim, tagged with the
// entity context it appeared under. These vary too much by payer to parse
// semantically.
type ContextSegment struct {
	Context  string   `json:"context"`
	Elements []string `json:"elements"`
}

// Eligibility is the structured 271 parse result, grouped by entity
// context plus flat detail lists.
type Eligibility struct {
	Payer      Entity           `json:"payer"`
	Provider   Entity           `json:"provider"`
	Subscriber Entity           `json:"subscriber"`
	Dependent  Entity           `json:"dependent"`
	Benefits   []BenefitInfo    `json:"eb"`
	Rejections []Rejection      `json:"aaa"`
	Trace      Trace            `json:"trace"`
	Dates      []ContextSegment `json:"dtp"`
	References []ContextSegment `json:"ref"`
	Debug      x12.DebugInfo    `json:"_debug"`
	Warnings   []string         `json:"_validation,omitempty"`
}
