package quote

import (
	"strings"
	"unicode/utf8"
)

// Clause-break punctuation, CJK and ASCII.
const clausePunct = "，。！？、；…,.!?;:"

// Score computes the classic score of one lyric line under the default
// vocabulary. Pure and deterministic: same text, same score.
func Score(text string) float64 {
	return ScoreWith(defaultVocab, text)
}

// ScoreWith sums the weighted signal contributions for text: distinct
// vocabulary hits per category, structural cues, and the length-fit bonus.
func ScoreWith(v Vocabulary, text string) float64 {
	t := strings.TrimSpace(text)
	if t == "" {
		return 0
	}

	var score float64
	for _, g := range v.Groups {
		for _, term := range g.Terms {
			// Distinct terms only: a term repeated within the line still
			// contributes its weight once.
			if strings.Contains(t, term) {
				score += g.Weight
			}
		}
	}

	if strings.ContainsAny(t, clausePunct) {
		score += v.ClauseBonus
	}
	if hasHeadTailEcho(t) {
		score += v.EchoBonus
	}

	score += v.LengthPeak * lengthFit(utf8.RuneCountInString(normalize(t)))
	return score
}

// lengthFit is a bell over the normalized length: 1 on the 6..12 sweet
// spot, tapering linearly to 0 at the 4/20 shareability bounds.
func lengthFit(n int) float64 {
	switch {
	case n >= 6 && n <= 12:
		return 1
	case n > 4 && n < 6:
		return float64(n-4) / 2
	case n > 12 && n < 20:
		return float64(20-n) / 8
	default:
		return 0
	}
}

// hasHeadTailEcho detects parallel structure: the first and last word
// match, or for unspaced CJK text the first and last character match.
func hasHeadTailEcho(text string) bool {
	words := tokenize(text)
	if len(words) >= 2 {
		return words[0] == words[len(words)-1]
	}
	if len(words) == 1 {
		runes := []rune(words[0])
		return len(runes) >= 4 && runes[0] == runes[len(runes)-1]
	}
	return false
}
