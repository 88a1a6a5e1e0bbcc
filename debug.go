package main

import (
	"asteroids/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// debugState holds launcher debug toggles that persist across sessions
type debugState struct {
	showHitboxes bool // Show collision boxes (F1)
}

// drawHitboxes outlines every collision box.
// Children spawned by the latest collision pass are highlighted.
func drawHitboxes(screen *ebiten.Image, snap game.Snapshot, report game.CollisionReport) {
	hot := make(map[game.EntityID]bool, len(report.Spawned))
	for _, id := range report.Spawned {
		hot[id] = true
	}

	for _, v := range snap.Entities {
		if v.Kind == game.KindText {
			continue
		}
		sx, sy := worldToScreen(v.Position)
		w, h := v.Extent.X, v.Extent.Y
		clr := colorHitbox
		if hot[v.ID] {
			clr = colorHitboxHot
		}
		vector.StrokeRect(screen, float32(sx-w/2), float32(sy-h/2), float32(w), float32(h), 1, clr, false)
	}
}
