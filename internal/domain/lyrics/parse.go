// Package lyrics turns raw timed-lyric file content into an ordered line
// sequence. Three grammars are supported, selected by types.Format and
// dispatched through a closed lookup table. Parsers are tolerant: a
// malformed individual line is skipped, and parsing fails only when the
// content is not valid UTF-8 or yields zero usable lines.
package lyrics

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mazhezhema/songtools/internal/types"
)

var (
	ErrNoLyrics        = errors.New("no usable lyric lines")
	ErrInvalidEncoding = errors.New("content is not valid UTF-8")
)

// ParseError reports that an entire file could not be parsed. Per-line
// problems never produce a ParseError; they are skipped.
type ParseError struct {
	Format types.Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s lyrics: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

type parseFunc func(content string) []types.Line

var parsers = map[types.Format]parseFunc{
	types.FormatLRC: parseLRC,
	types.FormatKRC: parseKRC,
	types.FormatTXT: parseTXT,
}

// Parse decodes content using the grammar named by f.
func Parse(f types.Format, content string) (types.Song, error) {
	p, ok := parsers[f]
	if !ok {
		return types.Song{}, &ParseError{Format: f, Err: types.ErrUnsupportedFormat}
	}
	if !utf8.ValidString(content) {
		return types.Song{}, &ParseError{Format: f, Err: ErrInvalidEncoding}
	}
	content = strings.TrimPrefix(content, "\ufeff")

	lines := p(content)
	if len(lines) == 0 {
		return types.Song{}, &ParseError{Format: f, Err: ErrNoLyrics}
	}
	return types.Song{Lines: lines}, nil
}
