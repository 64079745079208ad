package quote

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/mazhezhema/songtools/internal/types"
)

const (
	// Fraction of the line count at each end treated as intro/outro.
	positionEdgeFrac = 0.10
	// Multiplier applied to scores of intro/outro lines.
	positionDiscount = 0.60
)

var ErrEmptySong = errors.New("song has no lines")

// Select picks the best share quote from one parsed song.
//
// Lines are filtered in source order (the filter carries the previous-line
// state), survivors are scored, and lines in the first or last 10% of the
// song get a position discount. The winner is the maximum score; exact ties
// prefer the longer normalized text, then the earlier source position. When
// nothing survives the filter, the first non-empty parsed line is returned
// verbatim so a non-empty song always yields a quote.
func Select(song types.Song) (string, error) {
	lines := song.Lines
	if len(lines) == 0 {
		return "", ErrEmptySong
	}

	edge := int(float64(len(lines)) * positionEdgeFrac)

	f := NewFilter()
	var best *types.Candidate
	bestLen := 0
	for i, ln := range lines {
		if !f.Admit(ln.Text) {
			continue
		}
		score := Score(ln.Text)
		if i < edge || i >= len(lines)-edge {
			score *= positionDiscount
		}
		n := utf8.RuneCountInString(normalize(ln.Text))
		if best == nil || score > best.Score || (score == best.Score && n > bestLen) {
			best = &types.Candidate{Index: i, Line: ln, Score: score}
			bestLen = n
		}
	}
	if best != nil {
		return best.Line.Text, nil
	}

	// All-filler fallback: first non-empty original line, unfiltered.
	for _, ln := range lines {
		if strings.TrimSpace(ln.Text) != "" {
			return ln.Text, nil
		}
	}
	return "", ErrEmptySong
}
