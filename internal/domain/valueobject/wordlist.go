package valueobject

import (
	"bufio"
	"os"
	"strings"
)

// builtinCommon are passwords that fail the dictionary criterion outright.
var builtinCommon = []string{
	"123456", "password", "12345678", "qwerty", "abc123", "monkey", "letmein",
	"dragon", "111111", "baseball", "iloveyou", "trustno1", "1234567", "sunshine",
	"princess", "admin", "welcome", "football", "qazwsx", "password1",
}

// builtinDictionary are words whose presence inside a password fails the
// dictionary criterion.
var builtinDictionary = []string{
	"password", "admin", "user", "login", "welcome", "love", "secret",
	"master", "hello", "service", "system", "pass", "qwerty",
}

// keyboardWalks are adjacent-key patterns treated as sequences.
var keyboardWalks = []string{"qwerty", "asdfgh", "zxcvbn", "1qaz2wsx", "qazwsx"}

// leetMap reverses common letter-to-symbol substitutions before dictionary
// matching ("p4$$" -> "pass").
var leetMap = map[rune]rune{
	'4': 'a', '3': 'e', '0': 'o', '1': 'l', '5': 's',
	'7': 't', '@': 'a', '$': 's', '!': 'i',
}

// Wordlist is the immutable word corpus used by the dictionary and sequence
// criteria. It is built once at startup and shared read-only.
type Wordlist struct {
	common     map[string]struct{}
	dictionary []string
	walks      []string
}

// NewWordlist builds the wordlist from the builtin sets plus any extra words.
func NewWordlist(extra ...string) *Wordlist {
	common := make(map[string]struct{}, len(builtinCommon)+len(extra))
	for _, w := range builtinCommon {
		common[w] = struct{}{}
	}

	dictionary := make([]string, len(builtinDictionary), len(builtinDictionary)+len(extra))
	copy(dictionary, builtinDictionary)

	for _, w := range extra {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		common[w] = struct{}{}
		dictionary = append(dictionary, w)
	}

	return &Wordlist{
		common:     common,
		dictionary: dictionary,
		walks:      keyboardWalks,
	}
}

// NewWordlistFromFile builds the wordlist extended with one word per line
// from the given file. Blank lines and lines starting with '#' are skipped.
func NewWordlistFromFile(path string) (*Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var extra []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		extra = append(extra, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return NewWordlist(extra...), nil
}

// IsCommon reports whether the lowercased password is a known common password.
func (w *Wordlist) IsCommon(lowered string) bool {
	_, ok := w.common[lowered]
	return ok
}

// Dictionary returns the dictionary words checked for containment.
func (w *Wordlist) Dictionary() []string {
	return w.dictionary
}

// KeyboardWalks returns the known adjacent-key patterns.
func (w *Wordlist) KeyboardWalks() []string {
	return w.walks
}

// Unleet reverses common leet substitutions in a lowercased string.
func Unleet(lowered string) string {
	return strings.Map(func(r rune) rune {
		if mapped, ok := leetMap[r]; ok {
			return mapped
		}
		return r
	}, lowered)
}
