package utils

import (
	"strings"
	"testing"
)

func TestGenerateBookingReferenceShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		ref := GenerateBookingReference()
		if len(ref) != referenceLength {
			t.Fatalf("expected %d characters, got %q", referenceLength, ref)
		}
		for _, c := range ref {
			if !strings.ContainsRune(referenceAlphabet, c) {
				t.Fatalf("reference %q contains %q outside the alphabet", ref, c)
			}
		}
	}
}

func TestGenerateBookingReferenceVaries(t *testing.T) {
	// 36^8 candidates; 1000 draws colliding would mean the source is
	// broken, not unlucky.
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[GenerateBookingReference()] = true
	}
	if len(seen) < 990 {
		t.Fatalf("expected distinct draws, got %d unique of 1000", len(seen))
	}
}

func TestGenerateRunID(t *testing.T) {
	a, b := GenerateRunID(), GenerateRunID()
	if a == "" || a == b {
		t.Fatalf("expected distinct non-empty run ids, got %q and %q", a, b)
	}
}
