package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
}

func TestLogWritesEverywhere(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "square.txt")
	var mirror bytes.Buffer
	l := New(path, &mirror)
	l.now = fixedClock

	l.Log("window opened")
	l.Logf("recolor to %d,%d,%d", 1, 2, 3)

	want := []string{
		"[2024-03-01 12:30:00] window opened",
		"[2024-03-01 12:30:00] recolor to 1,2,3",
	}
	got := l.Lines()
	if len(got) != len(want) {
		t.Fatalf("Lines() = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
	joined := strings.Join(want, "\n") + "\n"
	if mirror.String() != joined {
		t.Errorf("mirror = %q", mirror.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != joined {
		t.Errorf("file = %q", data)
	}
}

func TestLinesIsCopy(t *testing.T) {
	l := New("", nil)
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	if l.Lines()[0] == "changed" {
		t.Error("Lines() exposes internal slice")
	}
}
