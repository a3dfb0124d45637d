package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/vanscape/internal/core"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want core.Action
	}{
		{ebiten.KeyEscape, core.ActionQuit},
		{ebiten.KeyQ, core.ActionQuit},
		{ebiten.KeyP, core.ActionPause},
		{ebiten.KeySpace, core.ActionOther},
		{ebiten.KeyR, core.ActionOther},
		{ebiten.KeyArrowUp, core.ActionOther},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			if got := mapKey(tt.key); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
