//go:build integration

package itest

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestE2E_BatchDescriptor(t *testing.T) {
	repoRoot := mustRepoRoot(t)
	tmp := t.TempDir()

	friend := filepath.Join(tmp, "friend.lrc")
	writeFixture(t, friend, "[ti:朋友]\n[00:33.00]朋友 一生一起走\n[00:36.00]那些日子 不再有\n")
	days := filepath.Join(tmp, "days.krc")
	writeFixture(t, days, "[0,3000]朋友 一生一起走\n[3000,6000]那些日子 不再有\n")

	batch := filepath.Join(tmp, "songs.txt")
	writeFixture(t, batch, strings.Join([]string{
		"# 测试批次",
		friend + ",song_001,朋友,lrc",
		filepath.Join(tmp, "missing.lrc") + ",song_002,缺失,lrc",
		days + ",song_003,日子,krc",
	}, "\n")+"\n")

	out := filepath.Join(tmp, "summaries.csv")
	res := runCLI(t, repoRoot, []string{"--input", batch, "--output", out}, nil)
	if res.exitCode != 0 {
		t.Fatalf("expected exit 0 on partial failure, got %d\noutput:\n%s", res.exitCode, res.output)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %v", rows)
	}
	if rows[1][0] != "song_001" || rows[2][0] != "song_003" {
		t.Fatalf("unexpected ids: %v", rows)
	}
	if rows[1][2] != "朋友 一生一起走" {
		t.Fatalf("unexpected quote: %q", rows[1][2])
	}
	// Same song text in both formats must produce the same quote.
	if rows[1][2] != rows[2][2] {
		t.Fatalf("format equivalence broken: %q vs %q", rows[1][2], rows[2][2])
	}
}

func TestE2E_DirScan(t *testing.T) {
	repoRoot := mustRepoRoot(t)
	tmp := t.TempDir()

	writeFixture(t, filepath.Join(tmp, "friend.lrc"),
		"[00:33.00]朋友 一生一起走\n[00:36.00]那些日子 不再有\n")
	writeFixture(t, filepath.Join(tmp, "plain.txt"),
		"# 手工整理\n00:10 思念化作雨落下\n00:20 门外我们走过门\n")

	out := filepath.Join(tmp, "summaries.csv")
	res := runCLI(t, repoRoot, []string{"--dir", tmp, "--output", out, "--quiet"}, nil)
	if res.exitCode != 0 {
		t.Fatalf("expected exit 0, got %d\noutput:\n%s", res.exitCode, res.output)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(b), "id,song_name,summary\n") {
		t.Fatalf("missing header: %q", string(b))
	}
	if !strings.Contains(string(b), "song_001,friend,") {
		t.Fatalf("missing scanned entry: %q", string(b))
	}
}

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
}
