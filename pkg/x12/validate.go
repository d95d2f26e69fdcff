package x12

import (
	"fmt"
	"strconv"
)

// ValidateEnvelope re-tokenizes raw EDI text and checks ST/SE segment-count
// balance. It returns advisory warning strings and never fails; callers
// display warnings and proceed.
//
// Pairing is positional: each ST is matched with the next SE in document
// order, without comparing control numbers. Interleaved or nested
// transaction sets will mispair; that limitation is deliberate and
// documented rather than guessed around.
func ValidateEnvelope(text string) []string {
	d := DetectDelimiters(text)
	return validateSegments(Tokenize(text, d))
}

func validateSegments(segments []Segment) []string {
	var warnings []string

	for i := 0; i < len(segments); i++ {
		if segments[i].Tag() != TagST {
			continue
		}

		seIdx := -1
		for j := i + 1; j < len(segments); j++ {
			if segments[j].Tag() == TagSE {
				seIdx = j
				break
			}
		}
		if seIdx < 0 {
			warnings = append(warnings, fmt.Sprintf("ST segment %d has no matching SE trailer", i+1))
			break
		}

		declared := segments[seIdx].Get(1)
		n, err := strconv.Atoi(declared)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("SE01 %q is not an integer segment count", declared))
		} else if actual := seIdx - i + 1; n != actual {
			warnings = append(warnings, fmt.Sprintf("SE declares %d segments but ST..SE spans %d", n, actual))
		}

		i = seIdx
	}

	return warnings
}
