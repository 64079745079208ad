package types

import (
	"errors"
	"path/filepath"
	"strings"
	"time"
)

// Format identifies one of the supported timed-lyric file grammars.
type Format string

const (
	// FormatLRC is tag-timed: [mm:ss.xx]text with optional [tag:value]
	// metadata lines at the top.
	FormatLRC Format = "lrc"
	// FormatKRC is range-timed: [startMs,endMs]text. Encrypted KRC
	// containers must be decrypted before parsing; this format covers the
	// decrypted line grammar only.
	FormatKRC Format = "krc"
	// FormatTXT is plain-numbered: an optional leading mm:ss token, or bare
	// text with positional order only. Lines starting with # are comments.
	FormatTXT Format = "txt"
)

var ErrUnsupportedFormat = errors.New("unsupported lyric format")

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatLRC, FormatKRC, FormatTXT:
		return f, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// FormatForPath maps a file extension to its lyric format.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lrc":
		return FormatLRC, true
	case ".krc":
		return FormatKRC, true
	case ".txt":
		return FormatTXT, true
	}
	return "", false
}

// Line is one timed lyric line. Text is trimmed and non-empty by
// construction; parsers drop lines that would be empty. Start/End are nil
// when the source format carries no timing for that bound. When both are
// set, End >= Start.
type Line struct {
	Text  string
	Start *time.Duration
	End   *time.Duration
}

// Timed reports whether the line carries at least a start offset.
func (l Line) Timed() bool { return l.Start != nil }

// Song is the ordered line sequence produced by one parse call. Order
// matches the source file and is meaningful downstream (the selector
// deprioritizes lines near the start and end).
type Song struct {
	Lines []Line
}

// Candidate pairs a line with its computed score during selection.
type Candidate struct {
	Index int
	Line  Line
	Score float64
}

// Summary is the final per-song result handed to the CSV boundary.
type Summary struct {
	ID       string
	SongName string
	Text     string
}

// Entry describes one unit of batch work.
type Entry struct {
	Path   string
	ID     string
	Name   string
	Format Format
}

// Failure records a per-file processing failure inside a batch.
type Failure struct {
	Path   string
	ID     string
	Reason string
}
