package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
)

func TestFormatKB(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0.00 KB"},
		{512, "0.50 KB"},
		{1024, "1.00 KB"},
		{12636, "12.34 KB"},
		{3 * 1024 * 1024, "3072.00 KB"},
	}
	for _, tt := range tests {
		if got := FormatKB(tt.size); got != tt.want {
			t.Errorf("FormatKB(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1500, "1.5K"},
		{2500000, "2.5M"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250 ms"},
		{1500 * time.Millisecond, "1.5 sec"},
		{90 * time.Second, "1.5 min"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestParseCommaSeparatedList(t *testing.T) {
	got := ParseCommaSeparatedList(" a.pdf, ,b.pdf ,c.pdf")
	want := []string{"a.pdf", "b.pdf", "c.pdf"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if ParseCommaSeparatedList("") != nil {
		t.Error("empty input should give nil")
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short", "abc", 10, "abc"},
		{"exact", "abcdef", 6, "abcdef"},
		{"cut", "abcdefghij", 6, "abc..."},
		{"tiny", "abcdef", 2, "ab"},
		{"zero", "abc", 0, ""},
		{"multibyte", "ééééééé", 5, "éé..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.in, tt.max); got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestPlural(t *testing.T) {
	if Plural(1) != "" || Plural(0) != "s" || Plural(2) != "s" {
		t.Error("unexpected plural suffix")
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace("  a \n\t b  c "); got != "a b c" {
		t.Errorf("CollapseWhitespace() = %q", got)
	}
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.log")

	logger, closer, err := NewLogger(path, "debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", logger.GetLevel())
	}
	logger.WithField("files", 2).Info("selection accepted")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "selection accepted") || !strings.Contains(string(data), "files=2") {
		t.Errorf("log file missing entry: %s", data)
	}
}

func TestNewLogger_Discard(t *testing.T) {
	logger, closer, err := NewLogger("", "info")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closer.Close()
	logger.Info("dropped")
}

func TestNewLogger_BadLevel(t *testing.T) {
	if _, _, err := NewLogger("", "shouty"); err == nil {
		t.Error("expected error for bad level")
	}
}
