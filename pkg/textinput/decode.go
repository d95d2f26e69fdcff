// Package textinput conditions uploaded payer files into clean text before
// the codecs see them. Container formats that cannot carry X12 text are
// the only hard failures; everything else degrades to a best-effort
// decode.
package textinput

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// punctuation maps Windows typographic characters that payer portals
// inject into exported files back to their ASCII forms.
var punctuation = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	" ", " ",
)

// Decode turns raw uploaded bytes into normalized text. PDF and gzip
// payloads are rejected; a ZIP archive is unwrapped to its first regular
// file and decoded recursively. Charset fallback tries UTF-8 first
// (stripping a BOM), then Windows-1252, then Latin-1, so single stray
// high bytes such as 0x96 never fail the upload.
func Decode(raw []byte) (string, error) {
	if bytes.HasPrefix(raw, []byte("%PDF")) {
		return "", fmt.Errorf("not a plain-text X12 file (PDF detected)")
	}
	if bytes.HasPrefix(raw, []byte{0x1F, 0x8B}) {
		return "", fmt.Errorf("gzip detected; upload uncompressed X12 or a ZIP containing it")
	}
	if bytes.HasPrefix(raw, []byte("PK\x03\x04")) {
		inner, err := unwrapZip(raw)
		if err != nil {
			return "", err
		}
		return Decode(inner)
	}
	return punctuation.Replace(decodeCharset(raw)), nil
}

func unwrapZip(raw []byte) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, fmt.Errorf("zip archive could not be opened: %w", err)
	}
	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("zip entry %s could not be opened: %w", file.Name, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("zip archive has no files")
}

func decodeCharset(raw []byte) string {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return string(raw)
	}
	// The charmap decoder maps bytes undefined in CP1252 (0x81, 0x8D,
	// 0x8F, 0x90, 0x9D) to U+FFFD instead of failing; treat that as a
	// failed decode so those inputs reach Latin-1, which defines all 256
	// byte values.
	if decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw); err == nil && !bytes.ContainsRune(decoded, utf8.RuneError) {
		return string(decoded)
	}
	decoded, _ := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	return string(decoded)
}
