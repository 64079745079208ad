package lyrics

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mazhezhema/songtools/internal/types"
)

// Leading bare timestamp: "mm:ss text" or "mm:ss.xx text".
var txtTimeRe = regexp.MustCompile(`^(\d{1,2}):(\d{2}(?:\.\d{1,2})?)\s+(\S.*)$`)

// parseTXT handles the plain-numbered grammar. Comment lines start with #.
// The timestamp is optional: untimed lines keep positional order only, so
// the file order is preserved as-is.
func parseTXT(content string) []types.Line {
	var out []types.Line
	for _, raw := range strings.Split(content, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		// Bracketed form "[mm:ss.xx] text" also appears in the wild.
		if m := lrcTimeRe.FindStringSubmatch(raw); m != nil {
			text := strings.TrimSpace(raw[len(m[0]):])
			if text == "" {
				continue
			}
			s := lrcOffset(m)
			out = append(out, types.Line{Text: text, Start: &s})
			continue
		}

		if m := txtTimeRe.FindStringSubmatch(raw); m != nil {
			s := txtOffset(m[1], m[2])
			out = append(out, types.Line{Text: strings.TrimSpace(m[3]), Start: &s})
			continue
		}

		out = append(out, types.Line{Text: raw})
	}
	return out
}

func txtOffset(minStr, secStr string) time.Duration {
	min, _ := strconv.Atoi(minStr)
	sec, _ := strconv.ParseFloat(secStr, 64)
	return time.Duration(min)*time.Minute + time.Duration(sec*float64(time.Second))
}
