package textinput

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func TestDecodeRejectsPDF(t *testing.T) {
	_, err := Decode([]byte("%PDF-1.7\nnot edi"))
	if err == nil || !strings.Contains(err.Error(), "PDF") {
		t.Fatalf("expected PDF rejection, got %v", err)
	}
}

func TestDecodeRejectsGzip(t *testing.T) {
	_, err := Decode([]byte{0x1F, 0x8B, 0x08, 0x00})
	if err == nil || !strings.Contains(err.Error(), "gzip") {
		t.Fatalf("expected gzip rejection, got %v", err)
	}
}

func TestDecodeCP1252(t *testing.T) {
	// 0x96 is an en dash in Windows-1252 and invalid UTF-8 on its own.
	text, err := Decode([]byte{'D', 'O', 'E', 0x96, 'J', 'O', 'H', 'N'})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "DOE-JOHN" {
		t.Fatalf("expected en dash normalized to hyphen, got %q", text)
	}
}

func TestDecodeLatin1Fallback(t *testing.T) {
	// 0x9D is invalid UTF-8 and undefined in Windows-1252, so only the
	// Latin-1 branch can decode it. It must come through as U+009D, not
	// as a replacement character.
	text, err := Decode([]byte{'A', 0x9D, 'B'})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "AB" {
		t.Fatalf("expected latin-1 decode, got %q", text)
	}
	if strings.ContainsRune(text, '�') {
		t.Fatalf("replacement character leaked: %q", text)
	}
}

func TestDecodeStripsBOMAndNormalizes(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("ISA“X” Y")...)
	text, err := Decode(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != `ISA"X" Y` {
		t.Fatalf("normalization wrong: %q", text)
	}
}

func TestDecodePlainASCIIPassesThrough(t *testing.T) {
	text, err := Decode([]byte("ST*270*0001~SE*2*0001~"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "ST*270*0001~SE*2*0001~" {
		t.Fatalf("ascii changed: %q", text)
	}
}

func TestDecodeUnwrapsZip(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("inner/271_response.x12")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.Write([]byte("ST*271*0001~SE*2*0001~")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	text, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "ST*271*0001~SE*2*0001~" {
		t.Fatalf("zip unwrap wrong: %q", text)
	}
}

func TestDecodeZipWithOnlyDirectories(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	if _, err := w.Create("empty/"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	_, err := Decode(buf.Bytes())
	if err == nil || !strings.Contains(err.Error(), "no files") {
		t.Fatalf("expected empty zip rejection, got %v", err)
	}
}
