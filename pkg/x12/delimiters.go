package x12

import "strings"

// Default delimiter characters used when a document carries no usable ISA
// header.
const (
	DefaultSegmentTerminator  = '~'
	DefaultElementSeparator   = '*'
	DefaultComponentSeparator = ':'
)

// ISA header layout constants. The interchange header is fixed width, so
// these offsets are structural regardless of content.
const (
	isaElementSeparatorOffset   = 3
	isaComponentSeparatorOffset = 104
	isaSegmentTerminatorOffset  = 105
	isaMinLength                = 106
)

// Delimiters holds the three separator characters of one document. A set is
// detected once per document and never changed mid-parse.
type Delimiters struct {
	Segment   byte
	Element   byte
	Component byte
}

// DefaultDelimiters returns the conventional "~ * :" set.
func DefaultDelimiters() Delimiters {
	return Delimiters{
		Segment:   DefaultSegmentTerminator,
		Element:   DefaultElementSeparator,
		Component: DefaultComponentSeparator,
	}
}

// WithDefaults fills zero-valued separators from the conventional set.
func (d Delimiters) WithDefaults() Delimiters {
	if d.Segment == 0 {
		d.Segment = DefaultSegmentTerminator
	}
	if d.Element == 0 {
		d.Element = DefaultElementSeparator
	}
	if d.Component == 0 {
		d.Component = DefaultComponentSeparator
	}
	return d
}

// DetectDelimiters inspects raw EDI text and returns a usable delimiter
// set. When the text opens with a full-length ISA header the separators are
// read from their fixed offsets. A document whose candidate terminator
// appears fewer than twice but which contains two or more newlines is
// treated as newline-terminated; this handles line-oriented fixtures that
// omit true terminators. Detection never fails: short or malformed input
// degrades to the defaults.
func DetectDelimiters(text string) Delimiters {
	d := DefaultDelimiters()

	if strings.HasPrefix(text, "ISA") && len(text) >= isaMinLength {
		d.Element = text[isaElementSeparatorOffset]
		if len(text) > isaComponentSeparatorOffset {
			d.Component = text[isaComponentSeparatorOffset]
		}
		if len(text) > isaSegmentTerminatorOffset {
			d.Segment = text[isaSegmentTerminatorOffset]
		}
	}

	if strings.Count(text, string(d.Segment)) < 2 && strings.Count(text, "\n") >= 2 {
		d.Segment = '\n'
	}

	return d
}
