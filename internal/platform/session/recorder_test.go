package session

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vanscape/internal/core"
	"github.com/vovakirdan/vanscape/internal/storage"
)

func TestRecordSavesRunOnGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	r := Recorder{Store: store, Logger: log.New(&buf), Player: "dave", Difficulty: "hard"}

	r.Record(core.StepResult{State: core.GameState{Score: 10}}, 10)
	r.Record(core.StepResult{
		State:  core.GameState{Score: 1234, Level: 2, GameOver: true},
		Events: []core.Event{{Kind: core.EventGameOver, Value: 1234}},
	}, 1234)

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected exactly one run, got %d", len(runs))
	}
	run := runs[0]
	if run.Player != "dave" || run.Difficulty != "hard" || run.Score != 1234 || run.Level != 2 || run.Ticks != 1234 {
		t.Errorf("Unexpected run %+v", run)
	}
	if !strings.Contains(buf.String(), "run saved") {
		t.Errorf("Expected run saved log, got %q", buf.String())
	}
}

func TestRecordWithoutStore(t *testing.T) {
	r := Recorder{}
	// Must not panic without a store or logger
	r.Record(core.StepResult{Events: []core.Event{{Kind: core.EventGameOver}}}, 1)
}

func TestLogEventsLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.InfoLevel)

	LogEvents(logger, []core.Event{
		{Kind: core.EventHit, Value: 2},
		{Kind: core.EventBestSaved, Value: 99},
		{Kind: core.EventSaveFailed, Err: errors.New("disk full")},
	})

	out := buf.String()
	if strings.Contains(out, "player hit") {
		t.Error("Expected hits to be logged at debug level")
	}
	if !strings.Contains(out, "best score saved") {
		t.Error("Expected best saved at info level")
	}
	if !strings.Contains(out, "disk full") {
		t.Error("Expected save failure with its error")
	}
}
