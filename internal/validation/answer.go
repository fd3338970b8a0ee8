package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// NormalizeAnswer normalizes an answer for comparison
func NormalizeAnswer(answer string) string {
	// Convert to lowercase
	answer = strings.ToLower(strings.TrimSpace(answer))

	// Remove common prefixes
	prefixes := []string{"the ", "a ", "an "}
	for _, prefix := range prefixes {
		answer = strings.TrimPrefix(answer, prefix)
	}

	// Remove punctuation and extra spaces
	var result strings.Builder
	for _, r := range answer {
		if !unicode.IsPunct(r) {
			result.WriteRune(r)
		}
	}

	// Trim spaces and normalize internal spaces
	return strings.Join(strings.Fields(result.String()), " ")
}

// IsCorrectAnswer reports whether guess should be accepted for the expected answer.
// A guess is accepted when it matches after normalization, contains every word
// of the answer with at most one extra word, or is within a 20% edit distance of it.
func IsCorrectAnswer(guess, answer string) bool {
	g := NormalizeAnswer(guess)
	a := NormalizeAnswer(answer)

	if g == "" || a == "" {
		return g == a
	}

	// Exact match after normalization
	if g == a {
		return true
	}

	if containsAllWords(g, a) {
		return true
	}

	distance := levenshtein.ComputeDistance(g, a)
	maxLen := max(utf8.RuneCountInString(g), utf8.RuneCountInString(a))

	return float64(distance)/float64(maxLen) < 0.2
}

// maxExtraWords bounds how many words a guess may add to the answer,
// so a list of candidates is not accepted
const maxExtraWords = 1

func containsAllWords(guess, answer string) bool {
	guessWords := strings.Fields(guess)
	answerWords := strings.Fields(answer)
	if len(guessWords) > len(answerWords)+maxExtraWords {
		return false
	}

	words := make(map[string]bool, len(guessWords))
	for _, w := range guessWords {
		words[w] = true
	}
	for _, w := range answerWords {
		if !words[w] {
			return false
		}
	}
	return true
}
