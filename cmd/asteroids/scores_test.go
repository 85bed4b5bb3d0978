package main

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestWriteScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("asteroids", 300)
	store.SaveSession(storage.SessionRecord{
		GameID: "asteroids", Outcome: "won", Score: 300, Destroyed: 15, Fired: 30, Ticks: 90,
	})

	var buf bytes.Buffer
	if err := writeScores(&buf, store, "asteroids", scoresOptions{recent: 5, tickRate: 60}); err != nil {
		t.Fatalf("writeScores() failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"High Scores - Asteroids",
		"300",
		"Sessions: 1  Wins: 1 (100%)",
		"Recent sessions",
		"won",
		"50%", // accuracy
		"1.5s",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}
}

func TestWriteScoresEmpty(t *testing.T) {
	store := openTestStore(t)

	var buf bytes.Buffer
	if err := writeScores(&buf, store, "asteroids_classic", scoresOptions{recent: 5}); err != nil {
		t.Fatalf("writeScores() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "Recent sessions") {
		t.Error("no sessions should mean no sessions table")
	}
}

func TestWriteScoresAll(t *testing.T) {
	store := openTestStore(t)
	for i := 1; i <= 12; i++ {
		store.SaveScore("asteroids", i*100)
	}

	tests := []struct {
		name string
		all  bool
		rows int
	}{
		{"top ten", false, 10},
		{"every score", true, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeScores(&buf, store, "asteroids", scoresOptions{all: tc.all}); err != nil {
				t.Fatalf("writeScores() failed: %v", err)
			}
			if got := rankedRows(buf.String()); got != tc.rows {
				t.Errorf("listed %d scores, expected %d:\n%s", got, tc.rows, buf.String())
			}
		})
	}
}

func TestWriteSummary(t *testing.T) {
	store := openTestStore(t)

	var buf bytes.Buffer
	if err := writeSummary(&buf, store); err != nil {
		t.Fatalf("writeSummary() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("empty store output:\n%s", buf.String())
	}

	store.SaveScore("asteroids_classic", 150)
	store.SaveScore("asteroids", 400)
	store.SaveSession(storage.SessionRecord{GameID: "asteroids", Outcome: "won", Score: 400})
	store.SaveSession(storage.SessionRecord{GameID: "asteroids", Outcome: "lost", Score: 20})

	buf.Reset()
	if err := writeSummary(&buf, store); err != nil {
		t.Fatalf("writeSummary() failed: %v", err)
	}
	out := buf.String()
	first := strings.Index(out, "  asteroids ")
	second := strings.Index(out, "  asteroids_classic ")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("expected both variants in id order:\n%s", out)
	}
	if !strings.Contains(out, "50%") {
		t.Errorf("asteroids win rate should be 50%%:\n%s", out)
	}
}

// rankedRows counts score table rows: a rank, a score and a date and time.
func rankedRows(out string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		f := strings.Fields(line)
		if len(f) != 4 {
			continue
		}
		if _, err := strconv.Atoi(f[0]); err == nil {
			n++
		}
	}
	return n
}
