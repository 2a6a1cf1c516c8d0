// Package audit contains password audit-related use cases.
package audit

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/password-auditor/backend/internal/domain/entity"
	"github.com/password-auditor/backend/internal/domain/valueobject"
)

// Suggestion texts, one per criterion, emitted in priority order:
// length, character classes, entropy, repetition, dictionary.
const (
	tipMinLength  = "Use at least 8 characters; 12 or more is better."
	tipHasUpper   = "Add uppercase letters."
	tipHasLower   = "Add lowercase letters."
	tipHasDigit   = "Add numbers."
	tipHasSpecial = "Add special characters (!, @, #, $, etc.)."
	tipEntropy    = "Make the password longer or mix more character types."
	tipNoRepeat   = "Avoid repeated characters, number sequences and keyboard patterns."
	tipNotCommon  = "Avoid common passwords and dictionary words."
)

// EvaluateStrengthInput represents the input for a strength evaluation.
type EvaluateStrengthInput struct {
	Password string
}

// EvaluateStrengthOutput represents the output of a strength evaluation.
type EvaluateStrengthOutput struct {
	Report entity.ScoreReport
}

// EvaluateStrengthUseCase scores a password against the fixed criteria set.
// It is deterministic, side-effect free and never fails.
type EvaluateStrengthUseCase struct {
	policy   valueobject.ScoringPolicy
	wordlist *valueobject.Wordlist
}

// NewEvaluateStrengthUseCase creates a new EvaluateStrengthUseCase instance.
func NewEvaluateStrengthUseCase(
	policy valueobject.ScoringPolicy,
	wordlist *valueobject.Wordlist,
) *EvaluateStrengthUseCase {
	return &EvaluateStrengthUseCase{
		policy:   policy,
		wordlist: wordlist,
	}
}

// Execute evaluates the password and produces a ScoreReport.
func (uc *EvaluateStrengthUseCase) Execute(input EvaluateStrengthInput) EvaluateStrengthOutput {
	password := input.Password

	// An empty password fails everything by definition.
	if password == "" {
		criteria := entity.CriteriaResult{}
		return EvaluateStrengthOutput{Report: entity.ScoreReport{
			Score:       0,
			Label:       entity.LabelForScore(0),
			EntropyBits: 0,
			Criteria:    criteria,
			Suggestions: uc.suggestions(criteria),
		}}
	}

	lowered := strings.ToLower(password)
	length := utf8.RuneCountInString(password)
	classes := classifyRunes(password)
	entropy := entropyBits(length, classes)

	criteria := entity.CriteriaResult{
		MinLength:          length >= uc.policy.MinLength,
		HasUpper:           classes.upper,
		HasLower:           classes.lower,
		HasDigit:           classes.digit,
		HasSpecial:         classes.special,
		HighEntropy:        entropy >= uc.policy.EntropyThreshold,
		NoRepeatedSequence: !uc.hasRepeatedSequence(password, lowered),
		NotCommonWord:      !uc.matchesWordlist(lowered),
	}

	score := uc.score(criteria, length)

	return EvaluateStrengthOutput{Report: entity.ScoreReport{
		Score:       score,
		Label:       entity.LabelForScore(score),
		EntropyBits: entropy,
		Criteria:    criteria,
		Suggestions: uc.suggestions(criteria),
	}}
}

// score sums the weights of the satisfied criteria and clamps to [0, 10].
func (uc *EvaluateStrengthUseCase) score(c entity.CriteriaResult, length int) int {
	p := uc.policy
	score := 0

	if c.MinLength {
		score += p.MinLengthWeight
	}
	if length >= p.BonusLength {
		score += p.LengthBonusWeight
	}
	if c.HasUpper {
		score += p.CharClassWeight
	}
	if c.HasLower {
		score += p.CharClassWeight
	}
	if c.HasDigit {
		score += p.CharClassWeight
	}
	if c.HasSpecial {
		score += p.CharClassWeight
	}
	if c.HighEntropy {
		score += p.EntropyWeight
	}
	if c.NoRepeatedSequence {
		score += p.NoRepeatWeight
	}
	if c.NotCommonWord {
		score += p.NotCommonWeight
	}

	if score > valueobject.MaxScore {
		score = valueobject.MaxScore
	}
	if score < 0 {
		score = 0
	}
	return score
}

// suggestions returns one tip per failed criterion in fixed priority order.
func (uc *EvaluateStrengthUseCase) suggestions(c entity.CriteriaResult) []string {
	tips := make([]string, 0, 8)
	if !c.MinLength {
		tips = append(tips, tipMinLength)
	}
	if !c.HasUpper {
		tips = append(tips, tipHasUpper)
	}
	if !c.HasLower {
		tips = append(tips, tipHasLower)
	}
	if !c.HasDigit {
		tips = append(tips, tipHasDigit)
	}
	if !c.HasSpecial {
		tips = append(tips, tipHasSpecial)
	}
	if !c.HighEntropy {
		tips = append(tips, tipEntropy)
	}
	if !c.NoRepeatedSequence {
		tips = append(tips, tipNoRepeat)
	}
	if !c.NotCommonWord {
		tips = append(tips, tipNotCommon)
	}
	return tips
}

// runeClasses records which character classes appear in a password.
type runeClasses struct {
	upper    bool
	lower    bool
	digit    bool
	special  bool
	nonASCII bool
}

func classifyRunes(password string) runeClasses {
	var c runeClasses
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			c.upper = true
		case unicode.IsLower(r):
			c.lower = true
		case unicode.IsDigit(r):
			c.digit = true
		default:
			c.special = true
		}
		if r > unicode.MaxASCII {
			c.nonASCII = true
		}
	}
	return c
}

// entropyBits estimates password entropy as length * log2(charset size).
// Charset sizes follow the usual printable-ASCII breakdown; passwords using
// runes outside ASCII get credit for a larger alphabet.
func entropyBits(length int, c runeClasses) float64 {
	size := 0
	if c.lower {
		size += 26
	}
	if c.upper {
		size += 26
	}
	if c.digit {
		size += 10
	}
	if c.special {
		size += 32
	}
	if c.nonASCII {
		size += 128
	}
	if size < 1 {
		size = 1
	}
	return float64(length) * math.Log2(float64(size))
}

// hasRepeatedSequence reports whether the password contains a run of
// identical runes longer than allowed, an ascending or descending digit
// sequence, or a known keyboard walk.
func (uc *EvaluateStrengthUseCase) hasRepeatedSequence(password, lowered string) bool {
	if longestIdenticalRun(password) > uc.policy.MaxIdenticalRun {
		return true
	}
	if hasDigitSequence(password, uc.policy.SequenceLength) {
		return true
	}
	for _, walk := range uc.wordlist.KeyboardWalks() {
		if strings.Contains(lowered, walk) {
			return true
		}
	}
	return false
}

func longestIdenticalRun(password string) int {
	var prev rune
	run, longest := 0, 0
	for _, r := range password {
		if r == prev {
			run++
		} else {
			run = 1
			prev = r
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// hasDigitSequence reports whether the password contains minLen or more
// consecutive digits stepping by +1 or -1 ("1234", "9876").
func hasDigitSequence(password string, minLen int) bool {
	runes := []rune(password)
	ascending, descending := 1, 1
	for i := 1; i < len(runes); i++ {
		if !unicode.IsDigit(runes[i]) || !unicode.IsDigit(runes[i-1]) {
			ascending, descending = 1, 1
			continue
		}
		if runes[i] == runes[i-1]+1 {
			ascending++
		} else {
			ascending = 1
		}
		if runes[i] == runes[i-1]-1 {
			descending++
		} else {
			descending = 1
		}
		if ascending >= minLen || descending >= minLen {
			return true
		}
	}
	return false
}

// matchesWordlist reports whether the lowercased password is a known common
// password, contains a dictionary word (directly or after reversing leet
// substitutions), or closely resembles one.
func (uc *EvaluateStrengthUseCase) matchesWordlist(lowered string) bool {
	if uc.wordlist.IsCommon(lowered) {
		return true
	}

	unleeted := valueobject.Unleet(lowered)
	for _, word := range uc.wordlist.Dictionary() {
		if strings.Contains(lowered, word) || strings.Contains(unleeted, word) {
			return true
		}
	}

	for _, word := range uc.wordlist.Dictionary() {
		if similarityRatio(lowered, word) >= uc.policy.SimilarityRatio {
			return true
		}
	}
	return false
}

// similarityRatio is 2*LCS/(len(a)+len(b)), a rough equivalent of a
// sequence-matcher ratio for the short strings involved here.
func similarityRatio(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 || lb == 0 {
		return 0
	}
	lcs := longestCommonSubsequence(a, b)
	return 2 * float64(lcs) / float64(la+lb)
}

func longestCommonSubsequence(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
