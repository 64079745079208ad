package lyrics

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mazhezhema/songtools/internal/types"
)

var (
	// Line range tag: [startMs,endMs].
	krcTimeRe = regexp.MustCompile(`^\[(\d+),(\d+)\]`)

	// Inline word-timing tags left over after decryption; stripped from text.
	krcInlineRe = regexp.MustCompile(`[<[]\d+,\d+(?:,\d+)?[>\]]`)
)

// parseKRC handles the range-timed grammar of decrypted KRC content. Both
// bounds are populated; a line whose end precedes its start is malformed
// and skipped. Output is ordered by start time.
func parseKRC(content string) []types.Line {
	var out []types.Line
	for _, raw := range strings.Split(content, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		m := krcTimeRe.FindStringSubmatch(raw)
		if m == nil {
			// Metadata tags and anything without a range are not lyric lines.
			continue
		}
		startMs, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		endMs, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil || endMs < startMs {
			continue
		}

		text := strings.TrimSpace(krcInlineRe.ReplaceAllString(raw[len(m[0]):], ""))
		if text == "" {
			continue
		}

		start := time.Duration(startMs) * time.Millisecond
		end := time.Duration(endMs) * time.Millisecond
		out = append(out, types.Line{Text: text, Start: &start, End: &end})
	}
	sort.SliceStable(out, func(i, j int) bool { return *out[i].Start < *out[j].Start })
	return out
}
