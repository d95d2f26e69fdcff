package x12

import (
	"strings"
	"testing"
)

func sampleISA(t *testing.T, d Delimiters) string {
	t.Helper()
	env := Envelope{InterchangeControl: 1, SenderID: "SENDERID", ReceiverID: "RECEIVERID", TransactionSet: "270"}
	return Render([]Segment{env.ISA(d)}, d)
}

func TestDetectDelimitersFromISAHeader(t *testing.T) {
	d := Delimiters{Segment: '!', Element: '|', Component: '>'}
	text := sampleISA(t, d) + "GS|HS|S|R|20250101|1200|1|X|005010X279A1!"

	got := DetectDelimiters(text)
	if got != d {
		t.Fatalf("expected %+v, got %+v", d, got)
	}
}

func TestDetectDelimitersIdempotent(t *testing.T) {
	d := DefaultDelimiters()
	text := sampleISA(t, d) + "IEA*1*000000001~"
	first := DetectDelimiters(text)
	rebuilt := Render(Tokenize(text, first), first)
	if second := DetectDelimiters(rebuilt); second != first {
		t.Fatalf("detection not idempotent: %+v then %+v", first, second)
	}
}

func TestDetectDelimitersDegradesToDefaults(t *testing.T) {
	for _, text := range []string{"", "x", "ISA*short", "\x00\x01\x02", strings.Repeat("q", 10)} {
		got := DetectDelimiters(text)
		if got.Element != '*' || got.Component != ':' {
			t.Fatalf("input %q: expected default separators, got %+v", text, got)
		}
	}
}

func TestDetectDelimitersNewlineFallback(t *testing.T) {
	// Embedded literal '~' appears once; two newlines flip the terminator.
	text := "ST*270*0001~\nSE*12*0001\n"
	got := DetectDelimiters(text)
	if got.Segment != '\n' {
		t.Fatalf("expected newline terminator, got %q", got.Segment)
	}
	segs := Tokenize(text, got)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d: %v", len(segs), segs)
	}
	if segs[0].Tag() != "ST" || segs[1].Tag() != "SE" {
		t.Fatalf("unexpected tags: %v", segs)
	}
}
