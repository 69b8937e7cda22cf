package utils

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ==================== RUN ID ====================

// GenerateRunID returns a fresh identifier attached to the root
// logger so log lines from separate sessions can be told apart.
func GenerateRunID() string {
	return uuid.New().String()
}

// ==================== BOOKING REFERENCE ====================

const (
	referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referenceLength   = 8
)

var referenceRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateBookingReference draws one 8-character upper-case
// alphanumeric candidate. Uniqueness against live bookings is the
// ledger's job; this only covers the draw.
func GenerateBookingReference() string {
	var b strings.Builder
	b.Grow(referenceLength)
	for i := 0; i < referenceLength; i++ {
		b.WriteByte(referenceAlphabet[referenceRand.Intn(len(referenceAlphabet))])
	}
	return b.String()
}
