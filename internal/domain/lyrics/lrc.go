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
	// Timestamp tag at the start of a line: [mm:ss.xx] or [mm:ss.xxx].
	lrcTimeRe = regexp.MustCompile(`^\[(\d{1,2}):(\d{2})(?:[.:](\d{2,3}))?\]`)

	// Metadata tag occupying a whole line: [ar:...], [ti:...], [offset:...].
	lrcMetaRe = regexp.MustCompile(`^\[[a-zA-Z]+:[^\]]*\]$`)
)

// parseLRC handles the tag-timed grammar. Metadata tags are skipped, a line
// with several leading timestamps yields one Line per timestamp (karaoke
// repeats), and output is ordered by start time.
func parseLRC(content string) []types.Line {
	var out []types.Line
	for _, raw := range strings.Split(content, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" || lrcMetaRe.MatchString(raw) {
			continue
		}

		var starts []time.Duration
		rest := raw
		for {
			m := lrcTimeRe.FindStringSubmatch(rest)
			if m == nil {
				break
			}
			starts = append(starts, lrcOffset(m))
			rest = rest[len(m[0]):]
		}
		text := strings.TrimSpace(rest)
		if len(starts) == 0 || text == "" {
			continue
		}

		for _, s := range starts {
			s := s
			out = append(out, types.Line{Text: text, Start: &s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return *out[i].Start < *out[j].Start })
	return out
}

// lrcOffset converts a matched [mm:ss.xx] tag into a duration. The
// fractional part is centiseconds when two digits, milliseconds when three.
func lrcOffset(m []string) time.Duration {
	min, _ := strconv.Atoi(m[1])
	sec, _ := strconv.Atoi(m[2])
	d := time.Duration(min)*time.Minute + time.Duration(sec)*time.Second
	if m[3] != "" {
		frac, _ := strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			frac *= 10
		}
		d += time.Duration(frac) * time.Millisecond
	}
	return d
}
