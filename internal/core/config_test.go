package core

import (
	"errors"
	"testing"
)

func TestRuntimeConfigWorldSize(t *testing.T) {
	cfg := RuntimeConfig{ScreenW: 80, ScreenH: 24, ScaleX: 12, ScaleY: 24}

	w, h := cfg.WorldSize()
	if w != 960 || h != 576 {
		t.Errorf("WorldSize() = (%f, %f), expected (960, 576)", w, h)
	}

	// Unset scale falls back to 1:1
	cfg = RuntimeConfig{ScreenW: 640, ScreenH: 480}
	w, h = cfg.WorldSize()
	if w != 640 || h != 480 {
		t.Errorf("WorldSize() without scale = (%f, %f), expected (640, 480)", w, h)
	}
}

func TestRuntimeConfigCellMapping(t *testing.T) {
	cfg := RuntimeConfig{ScreenW: 80, ScreenH: 24, ScaleX: 10, ScaleY: 20}

	p := cfg.CellToWorld(3, 2)
	if p != V(35, 50) {
		t.Errorf("CellToWorld(3, 2) = %+v, expected (35, 50)", p)
	}

	x, y := cfg.WorldToCell(p)
	if x != 3 || y != 2 {
		t.Errorf("WorldToCell(%+v) = (%d, %d), expected (3, 2)", p, x, y)
	}

	// Negative coordinates floor instead of truncating toward zero
	x, y = cfg.WorldToCell(V(-1, -25))
	if x != -1 || y != -2 {
		t.Errorf("WorldToCell(-1, -25) = (%d, %d), expected (-1, -2)", x, y)
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{
		{Kind: EventLevelUp, Value: 1},
		{Kind: EventSaveFailed, Err: errors.New("disk full")},
	}}

	if !r.Has(EventLevelUp) {
		t.Error("Has(EventLevelUp) should be true")
	}
	if r.Has(EventGameOver) {
		t.Error("Has(EventGameOver) should be false")
	}
}

func TestEventKindString(t *testing.T) {
	if EventDetonation.String() != "detonation" {
		t.Errorf("EventDetonation.String() = %q", EventDetonation.String())
	}
	if EventKind(99).String() != "unknown" {
		t.Errorf("EventKind(99).String() = %q", EventKind(99).String())
	}
}
