package pipeline

import (
	"encoding/csv"
	"io"

	"github.com/mazhezhema/songtools/internal/types"
)

var csvHeader = []string{"id", "song_name", "summary"}

// WriteCSV writes one header row plus one row per summary. encoding/csv
// handles quoting for fields containing commas, quotes, or newlines.
func WriteCSV(w io.Writer, summaries []types.Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range summaries {
		if err := cw.Write([]string{s.ID, s.SongName, s.Text}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
