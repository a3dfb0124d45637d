package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vanscape/internal/storage"
)

func TestLoadScoresWithoutStore(t *testing.T) {
	scores, err := LoadScores(42, nil)
	if err != nil {
		t.Fatalf("LoadScores() failed: %v", err)
	}
	if scores.Best != 42 || len(scores.Runs) != 0 || scores.Stats != nil {
		t.Errorf("Unexpected scores %+v", scores)
	}
}

func TestLoadScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(storage.Run{Player: "alice", Score: 700, Level: 1})
	store.SaveRun(storage.Run{Player: "bob", Score: 1200, Level: 2})

	scores, err := LoadScores(1200, store)
	if err != nil {
		t.Fatalf("LoadScores() failed: %v", err)
	}
	if len(scores.Runs) != 2 || scores.Runs[0].Player != "bob" {
		t.Errorf("Expected bob first, got %+v", scores.Runs)
	}
	if scores.Stats == nil || scores.Stats.Runs != 2 {
		t.Errorf("Expected stats for 2 runs, got %+v", scores.Stats)
	}
	if scores.TopScore != 1200 {
		t.Errorf("Expected top recorded score 1200, got %d", scores.TopScore)
	}

	sm := NewScoreboardModel(scores, 100, 30)
	if line := sm.statsLine(); !strings.Contains(line, "2 runs | top 1200") {
		t.Errorf("Expected stats line with top score, got %q", line)
	}
}

func TestWriteScores(t *testing.T) {
	var buf bytes.Buffer
	err := WriteScores(&buf, Scores{
		Best: 1200,
		Runs: []storage.Run{
			{RunID: "run-1", Player: "bob", Score: 1200, Level: 2},
			{RunID: "run-2", Player: "alice", Score: 700, Level: 1},
		},
	})
	if err != nil {
		t.Fatalf("WriteScores() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "Best: 1200" {
		t.Errorf("Expected best line, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "1") || !strings.Contains(lines[2], "bob") {
		t.Errorf("Expected bob ranked first, got %q", lines[2])
	}
}

func TestWriteScoresEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteScores(&buf, Scores{}); err != nil {
		t.Fatalf("WriteScores() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No runs recorded yet.") {
		t.Errorf("Expected empty message, got %q", buf.String())
	}
}

func TestScoreboardView(t *testing.T) {
	m := NewScoreboardModel(Scores{
		Best: 5,
		Runs: []storage.Run{{Player: "carol", Score: 5}},
	}, 100, 30)

	view := m.View()
	if !strings.Contains(view, "VANSCAPE - BEST 5") {
		t.Error("Expected title with best score")
	}
	if !strings.Contains(view, "carol") {
		t.Error("Expected run row in table")
	}

	next, _ := m.Update(runeKey('q'))
	if next.(ScoreboardModel).View() != "" {
		t.Error("Expected empty view after quit")
	}
}

func TestScoreboardResize(t *testing.T) {
	m := NewScoreboardModel(Scores{}, 60, 20)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	sm := next.(ScoreboardModel)
	if sm.width != 120 || sm.height != 40 {
		t.Errorf("Expected 120x40, got %dx%d", sm.width, sm.height)
	}
	if !strings.Contains(sm.View(), "No runs recorded yet.") {
		t.Error("Expected empty message")
	}
}
