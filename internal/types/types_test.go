package types

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"lrc", FormatLRC, false},
		{"KRC", FormatKRC, false},
		{"  txt ", FormatTXT, false},
		{"qrc", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]struct {
		want Format
		ok   bool
	}{
		"songs/friend.lrc": {FormatLRC, true},
		"a/b/c.KRC":        {FormatKRC, true},
		"notes.txt":        {FormatTXT, true},
		"cover.mp3":        {"", false},
		"noext":            {"", false},
	}
	for path, tt := range tests {
		got, ok := FormatForPath(path)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("FormatForPath(%q) = (%q, %v), want (%q, %v)", path, got, ok, tt.want, tt.ok)
		}
	}
}
