// Package valueobject contains domain value objects for the Password Auditor system.
package valueobject

// ScoringPolicy contains the fixed weights and thresholds used by the
// strength evaluator. Weights sum to 10 so a password satisfying every
// criterion reaches the maximum score; the evaluator clamps regardless.
type ScoringPolicy struct {
	// Thresholds
	MinLength        int     // rune count below which min_length fails
	BonusLength      int     // rune count granting the extra length weight
	EntropyThreshold float64 // bits below which high_entropy fails
	MaxIdenticalRun  int     // longest allowed run of one rune
	SequenceLength   int     // digit sequence length considered a pattern
	SimilarityRatio  float64 // dictionary fuzzy-match cutoff

	// Weights
	MinLengthWeight   int
	LengthBonusWeight int
	CharClassWeight   int // applied per character class (upper/lower/digit/special)
	EntropyWeight     int
	NoRepeatWeight    int
	NotCommonWeight   int
}

// DefaultScoringPolicy returns the default scoring configuration.
func DefaultScoringPolicy() ScoringPolicy {
	return ScoringPolicy{
		MinLength:        8,
		BonusLength:      12,
		EntropyThreshold: 60,
		MaxIdenticalRun:  3,
		SequenceLength:   4,
		SimilarityRatio:  0.78,

		MinLengthWeight:   1,
		LengthBonusWeight: 1,
		CharClassWeight:   1,
		EntropyWeight:     2,
		NoRepeatWeight:    1,
		NotCommonWeight:   1,
	}
}

// MaxScore is the upper bound of the score range.
const MaxScore = 10
