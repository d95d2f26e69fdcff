package x12

import (
	"strings"
)

// Segment is one X12 record: the tag followed by its data elements in
// document order. Composite elements are carried as opaque strings; only
// ISA construction ever writes a component separator.
type Segment []string

// NewSegment builds a segment from a tag and its elements.
func NewSegment(tag string, elements ...string) Segment {
	seg := make(Segment, 0, len(elements)+1)
	seg = append(seg, tag)
	seg = append(seg, elements...)
	return seg
}

// Tag returns the segment identifier (element zero), upper-cased.
func (s Segment) Tag() string {
	if len(s) == 0 {
		return ""
	}
	return strings.ToUpper(strings.TrimSpace(s[0]))
}

// Get returns the element at index i, or "" when the segment is shorter.
// Out-of-range access never fails; real-world payer files routinely omit
// trailing optional elements.
func (s Segment) Get(i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}
	return s[i]
}

// TrimTrailingEmpty drops empty elements from the end of the segment so a
// skipped optional value never leaves a dangling separator run.
func (s Segment) TrimTrailingEmpty() Segment {
	end := len(s)
	for end > 1 && s[end-1] == "" {
		end--
	}
	return s[:end]
}

// Tokenize splits raw EDI text into ordered segments using the supplied
// delimiters. Line endings are normalized when the terminator is newline,
// a missing final terminator is tolerated, and pure-whitespace pieces are
// discarded. Every returned segment has at least one element.
func Tokenize(text string, d Delimiters) []Segment {
	d = d.WithDefaults()
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	term := string(d.Segment)
	if d.Segment == '\n' {
		trimmed = strings.ReplaceAll(trimmed, "\r\n", "\n")
	} else if !strings.HasSuffix(trimmed, term) {
		trimmed += term
	}

	pieces := strings.Split(trimmed, term)
	segments := make([]Segment, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		segments = append(segments, Segment(strings.Split(piece, string(d.Element))))
	}
	return segments
}

// Render serializes segments back to delimited text, one terminator after
// each segment. Builders assemble a []Segment first and render once, so
// the SE segment count can be taken from the list rather than recomputed
// from joined text.
func Render(segments []Segment, d Delimiters) string {
	d = d.WithDefaults()
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(strings.Join(seg, string(d.Element)))
		b.WriteByte(d.Segment)
	}
	return b.String()
}
