package main

import (
	"asteroids/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// readInput maps the keyboard onto the simulation's logical controls
func readInput() game.Input {
	return game.Input{
		ThrustForward: ebiten.IsKeyPressed(ebiten.KeyW),
		ThrustBack:    ebiten.IsKeyPressed(ebiten.KeyS),
		RotateLeft:    ebiten.IsKeyPressed(ebiten.KeyA),
		RotateRight:   ebiten.IsKeyPressed(ebiten.KeyD),
		FirePressed:   inpututil.IsKeyJustPressed(ebiten.KeyJ),
		FireHeld:      ebiten.IsKeyPressed(ebiten.KeyJ),

		// Menus react when the key comes back up, so the press that
		// starts a session does not also fire the first shot
		Confirm: inpututil.IsKeyJustReleased(ebiten.KeyJ),
		Cancel:  inpututil.IsKeyJustReleased(ebiten.KeyEscape),
	}
}

// handleWindowKeys processes launcher-only keys: Alt+Enter fullscreen and F1 hitboxes
func (l *Launcher) handleWindowKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		l.debug.showHitboxes = !l.debug.showHitboxes
	}

	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
	altEnterPressed := altPressed && ebiten.IsKeyPressed(ebiten.KeyEnter)

	if altEnterPressed && !l.prevAltEnter {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		if !fullscreen {
			// Going to windowed - use 90% of monitor size for a reasonable window
			monitorWidth, monitorHeight := ebiten.ScreenSizeInFullscreen()
			ebiten.SetWindowSize(int(float64(monitorWidth)*windowedSizeRatio), int(float64(monitorHeight)*windowedSizeRatio))
		}
	}
	l.prevAltEnter = altEnterPressed
}
