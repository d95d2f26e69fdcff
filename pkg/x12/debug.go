package x12

import "strconv"

// DebugInfo is parser metadata surfaced to callers for troubleshooting
// payer files. It is never interpreted by the parsers themselves.
type DebugInfo struct {
	SegmentTerminator string   `json:"segment_terminator"`
	ElementSeparator  string   `json:"element_separator"`
	SegmentCount      int      `json:"segment_count"`
	FirstTags         []string `json:"first_tags"`
}

// DebugFor summarizes a tokenized document: quoted delimiters, segment
// count and the first n tags.
func DebugFor(segments []Segment, d Delimiters, n int) DebugInfo {
	d = d.WithDefaults()
	if len(segments) < n {
		n = len(segments)
	}
	tags := make([]string, 0, n)
	for _, seg := range segments[:n] {
		tags = append(tags, seg.Tag())
	}
	return DebugInfo{
		SegmentTerminator: strconv.Quote(string(d.Segment)),
		ElementSeparator:  strconv.Quote(string(d.Element)),
		SegmentCount:      len(segments),
		FirstTags:         tags,
	}
}
