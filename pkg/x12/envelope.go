package x12

import (
	"fmt"
	"strconv"
	"time"
)

// Envelope carries the interchange, group and transaction-set framing for
// one outbound document. Control numbers are caller-supplied; uniqueness
// and persistence are the caller's responsibility.
type Envelope struct {
	InterchangeControl int
	GroupControl       int
	TransactionControl int

	SenderID     string
	ReceiverID   string
	SenderCode   string
	ReceiverCode string

	// TransactionSet selects GS01/GS08 and ST01, e.g. "270".
	TransactionSet string

	// Timestamp stamps ISA/GS date and time fields. Zero means now (UTC).
	Timestamp time.Time
}

func (e Envelope) at() time.Time {
	if e.Timestamp.IsZero() {
		return time.Now().UTC()
	}
	return e.Timestamp
}

// FormatControl renders an ISA13-style control number, zero-padded to nine
// digits.
func FormatControl(n int) string {
	return fmt.Sprintf("%09d", n)
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	if len(s) > width {
		return s[:width]
	}
	return s
}

// ISA builds the fixed-width interchange header. Authorization and security
// qualifiers are "00" with blank payloads, both ID qualifiers "ZZ",
// repetition separator "^", version 00501, test usage; the component
// separator of the delimiter set lands in ISA16.
func (e Envelope) ISA(d Delimiters) Segment {
	d = d.WithDefaults()
	now := e.at()
	return NewSegment(TagISA,
		"00", padRight("", 10),
		"00", padRight("", 10),
		"ZZ", padRight(e.SenderID, 15),
		"ZZ", padRight(e.ReceiverID, 15),
		now.Format("060102"), now.Format("1504"),
		"^", "00501",
		FormatControl(e.InterchangeControl),
		"0", "T", string(d.Component),
	)
}

// IEA builds the interchange trailer declaring one functional group.
func (e Envelope) IEA() Segment {
	return NewSegment(TagIEA, "1", FormatControl(e.InterchangeControl))
}

// GS builds the functional group header. GS01 and GS08 derive from the
// transaction set code.
func (e Envelope) GS() Segment {
	now := e.at()
	return NewSegment(TagGS,
		functionalIdentifierCodes[e.TransactionSet],
		e.SenderCode, e.ReceiverCode,
		now.Format("20060102"), now.Format("1504"),
		strconv.Itoa(e.GroupControl),
		"X", implementationVersions[e.TransactionSet],
	)
}

// GE builds the group trailer declaring one transaction set.
func (e Envelope) GE() Segment {
	return NewSegment(TagGE, "1", strconv.Itoa(e.GroupControl))
}

// ST builds the transaction set header.
func (e Envelope) ST() Segment {
	return NewSegment(TagST,
		e.TransactionSet,
		FormatControl(e.TransactionControl),
		implementationVersions[e.TransactionSet],
	)
}

// SE builds the transaction set trailer. count must include ST and SE
// themselves.
func (e Envelope) SE(count int) Segment {
	return NewSegment(TagSE, strconv.Itoa(count), FormatControl(e.TransactionControl))
}

// Wrap frames a transaction body with ISA/GS/ST ... SE/GE/IEA. The SE
// segment count is taken from the assembled list (ST through SE inclusive),
// so conditionally omitted body segments are always reflected in the count.
func (e Envelope) Wrap(body []Segment, d Delimiters) []Segment {
	out := make([]Segment, 0, len(body)+6)
	out = append(out, e.ISA(d), e.GS(), e.ST())
	out = append(out, body...)
	out = append(out, e.SE(len(body)+2), e.GE(), e.IEA())
	return out
}
