package pipeline

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/mazhezhema/songtools/internal/types"
)

// ParseBatchFile reads the line-oriented batch descriptor: one
// "file_path,song_id,song_name,format" record per line, # comments and
// blank lines ignored. Malformed records are logged and skipped so one bad
// line does not sink the batch.
func ParseBatchFile(path string) ([]types.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer f.Close()

	var entries []types.Entry
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 4 {
			log.WithFields(log.Fields{"file": path, "line": lineNo}).
				Warnf("malformed descriptor: %s", line)
			continue
		}
		format, err := types.ParseFormat(parts[3])
		if err != nil {
			log.WithFields(log.Fields{"file": path, "line": lineNo}).
				Warnf("unknown format: %s", strings.TrimSpace(parts[3]))
			continue
		}
		entries = append(entries, types.Entry{
			Path:   strings.TrimSpace(parts[0]),
			ID:     strings.TrimSpace(parts[1]),
			Name:   strings.TrimSpace(parts[2]),
			Format: format,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	return entries, nil
}

// ScanDir walks dir and builds entries for files with known lyric
// extensions. IDs are assigned in walk order as song_001, song_002, ...;
// the song name is the base name without extension.
func ScanDir(dir string) ([]types.Entry, error) {
	var entries []types.Entry
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		format, ok := types.FormatForPath(path)
		if !ok {
			return nil
		}
		name := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		entries = append(entries, types.Entry{
			Path:   path,
			ID:     fmt.Sprintf("song_%03d", len(entries)+1),
			Name:   name,
			Format: format,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan dir: %w", err)
	}
	return entries, nil
}
