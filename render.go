package main

import (
	"image/color"
	"math"
	"math/rand"

	"asteroids/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// worldToScreen converts y-up world coordinates centered on the origin
// to ebiten's y-down screen coordinates
func worldToScreen(p game.Vector2) (float64, float64) {
	return p.X + screenWidth/2, screenHeight/2 - p.Y
}

// screenRotation converts a world facing to a sprite rotation.
// Sprites are drawn pointing up, and screen rotation runs clockwise.
func screenRotation(rotation float64) float64 {
	return -(rotation - game.FacingUp)
}

// drawEntities draws every sprite-backed entity and bullet in snapshot order
func drawEntities(screen *ebiten.Image, snap game.Snapshot, sprites *spriteSet, in game.Input) {
	for _, v := range snap.Entities {
		switch v.Kind {
		case game.KindPlayer:
			drawThrustFlame(screen, v, in)
			drawSprite(screen, sprites.get(v.Sprite), v)
		case game.KindAsteroid:
			drawSprite(screen, sprites.get(v.Sprite), v)
		case game.KindBullet:
			drawBullet(screen, v)
		case game.KindText:
			// Drawn by the HUD
		}
	}
}

// drawSprite draws img centered on the entity, scaled by the entity's scale
func drawSprite(screen *ebiten.Image, img *ebiten.Image, v game.EntityView) {
	if img == nil {
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	sx, sy := worldToScreen(v.Position)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(v.Scale.X, v.Scale.Y)
	op.GeoM.Rotate(screenRotation(v.Rotation))
	op.GeoM.Translate(sx, sy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// drawBullet draws a bullet as a filled square of its collision size
func drawBullet(screen *ebiten.Image, v game.EntityView) {
	sx, sy := worldToScreen(v.Position)
	w, h := v.Scale.X, v.Scale.Y
	vector.DrawFilledRect(screen, float32(sx-w/2), float32(sy-h/2), float32(w), float32(h), colorBullet, true)
}

// rotatePoint rotates a point around the origin by the given angle (in radians)
func rotatePoint(p game.Vector2, angle float64) game.Vector2 {
	sinA := math.Sin(angle)
	cosA := math.Cos(angle)
	return game.Vector2{
		X: p.X*cosA - p.Y*sinA,
		Y: p.X*sinA + p.Y*cosA,
	}
}

// drawThrustFlame draws a flickering flame behind the player while thrust is held
func drawThrustFlame(screen *ebiten.Image, v game.EntityView, in game.Input) {
	if !in.ThrustForward && !in.ThrustBack {
		return
	}
	sx, sy := worldToScreen(v.Position)
	angle := screenRotation(v.Rotation)

	back := shipBackOffsetY
	if in.ThrustBack && !in.ThrustForward {
		// Retro thrust fires from the nose
		back = -back
	}
	length := flameBaseLength + rand.Float64()*flameVarLength
	if back < 0 {
		length = -length
	}

	anchor := rotatePoint(game.Vector2{Y: back}, angle)
	tip := rotatePoint(game.Vector2{Y: back + length}, angle)
	flameColor := color.NRGBA{R: 255, G: 150 + uint8(rand.Intn(100)), B: 0, A: 255}
	vector.StrokeLine(screen,
		float32(sx+anchor.X), float32(sy+anchor.Y),
		float32(sx+tip.X), float32(sy+tip.Y),
		2, flameColor, true)
}
