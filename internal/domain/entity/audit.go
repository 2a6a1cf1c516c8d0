// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StrengthLabel is the human-readable band a score falls into.
type StrengthLabel string

const (
	StrengthVeryWeak  StrengthLabel = "very_weak"
	StrengthWeak      StrengthLabel = "weak"
	StrengthFair      StrengthLabel = "fair"
	StrengthGood      StrengthLabel = "good"
	StrengthStrong    StrengthLabel = "strong"
	StrengthExcellent StrengthLabel = "excellent"
)

// LabelForScore maps a 0-10 score to its strength band.
func LabelForScore(score int) StrengthLabel {
	switch {
	case score <= 1:
		return StrengthVeryWeak
	case score <= 4:
		return StrengthWeak
	case score <= 6:
		return StrengthFair
	case score <= 8:
		return StrengthGood
	case score == 9:
		return StrengthStrong
	default:
		return StrengthExcellent
	}
}

// CriteriaResult holds the outcome of each independent strength check.
type CriteriaResult struct {
	MinLength          bool
	HasUpper           bool
	HasLower           bool
	HasDigit           bool
	HasSpecial         bool
	HighEntropy        bool
	NoRepeatedSequence bool
	NotCommonWord      bool
}

// ScoreReport is the immutable result of a strength evaluation.
// Score is always within [0, 10]; Suggestions carries one fixed tip per
// failed criterion, in priority order.
type ScoreReport struct {
	Score       int
	Label       StrengthLabel
	EntropyBits float64
	Criteria    CriteriaResult
	Suggestions []string
}

// BreachState identifies the variant of a BreachStatus.
type BreachState string

const (
	// BreachStateNotChecked means no lookup was attempted.
	BreachStateNotChecked BreachState = "not_checked"

	// BreachStateSafe means the lookup succeeded and found no match.
	BreachStateSafe BreachState = "safe"

	// BreachStateBreached means the password appears in the breach corpus.
	BreachStateBreached BreachState = "breached"

	// BreachStateLookupFailed means the lookup could not be completed.
	BreachStateLookupFailed BreachState = "lookup_failed"
)

// BreachStatus is the tagged result of a breach-database lookup.
// Count is meaningful only for BreachStateBreached, Reason only for
// BreachStateLookupFailed.
type BreachStatus struct {
	State  BreachState
	Count  int
	Reason string
}

// BreachNotChecked returns the status for a skipped lookup.
func BreachNotChecked() BreachStatus {
	return BreachStatus{State: BreachStateNotChecked}
}

// BreachSafe returns the status for a lookup with zero matches.
func BreachSafe() BreachStatus {
	return BreachStatus{State: BreachStateSafe}
}

// BreachFound returns the status for a password seen count times in breaches.
func BreachFound(count int) BreachStatus {
	return BreachStatus{State: BreachStateBreached, Count: count}
}

// BreachLookupFailed returns the status for a failed lookup.
func BreachLookupFailed(reason string) BreachStatus {
	return BreachStatus{State: BreachStateLookupFailed, Reason: reason}
}

// PasswordAudit merges a strength report and a breach status for one request.
// It never contains the password itself.
type PasswordAudit struct {
	ID        uuid.UUID
	Report    ScoreReport
	Breach    BreachStatus
	CheckedAt time.Time
}

// NewPasswordAudit creates a PasswordAudit for the given results.
func NewPasswordAudit(report ScoreReport, breach BreachStatus) *PasswordAudit {
	return &PasswordAudit{
		ID:        uuid.New(),
		Report:    report,
		Breach:    breach,
		CheckedAt: time.Now().UTC(),
	}
}
