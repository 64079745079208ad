package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mazhezhema/songtools/internal/types"
)

func TestParseBatchFile(t *testing.T) {
	tmp := t.TempDir()
	batch := filepath.Join(tmp, "songs.txt")
	content := "# 歌曲清单\n" +
		"\n" +
		"songs/friend.lrc,song_001,朋友,lrc\n" +
		"songs/days.krc,song_002,那些日子,krc\n" +
		"songs/broken-line-without-enough-fields\n" +
		"songs/odd.xyz,song_004,未知格式,xyz\n" +
		"songs/plain.txt, song_005 , 白月光 , txt\n"
	if err := os.WriteFile(batch, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	entries, err := ParseBatchFile(batch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d: %v", len(entries), entries)
	}
	if entries[0].ID != "song_001" || entries[0].Format != types.FormatLRC {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[2].Name != "白月光" || entries[2].ID != "song_005" {
		t.Fatalf("fields must be trimmed: %+v", entries[2])
	}
}

func TestParseBatchFile_Missing(t *testing.T) {
	if _, err := ParseBatchFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatalf("expected error for missing batch file")
	}
}

func TestScanDir(t *testing.T) {
	tmp := t.TempDir()
	sub := filepath.Join(tmp, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"a.lrc", "b.krc", "ignore.mp3"} {
		if err := os.WriteFile(filepath.Join(tmp, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(sub, "c.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	entries, err := ScanDir(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d: %v", len(entries), entries)
	}
	for i, e := range entries {
		wantID := []string{"song_001", "song_002", "song_003"}[i]
		if e.ID != wantID {
			t.Fatalf("unexpected id at %d: %s", i, e.ID)
		}
	}
	if entries[0].Name != "a" || entries[0].Format != types.FormatLRC {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
}
