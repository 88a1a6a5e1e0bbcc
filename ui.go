package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"asteroids/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

// hud draws phase text and the scoreboard
type hud struct {
	title text.Face
	body  text.Face

	// titleScale enlarges the bitmap fallback face, which has a single size
	titleScale float64
}

// newHUD loads the game font from dir, falling back to a built-in bitmap face
func newHUD(dir string, logger *zap.Logger) *hud {
	path := filepath.Join(dir, game.AssetFont)
	src, err := loadFontSource(path)
	if err != nil {
		logger.Warn("font missing, using bitmap face",
			zap.String("path", path),
			zap.Error(err),
		)
		face := text.NewGoXFace(basicfont.Face7x13)
		return &hud{title: face, body: face, titleScale: fallbackScaleUp}
	}
	return &hud{
		title:      &text.GoTextFace{Source: src, Size: titleFontSize},
		body:       &text.GoTextFace{Source: src, Size: bodyFontSize},
		titleScale: 1,
	}
}

func loadFontSource(path string) (*text.GoTextFaceSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return text.NewGoTextFaceSource(f)
}

// draw lays out every text entity of the snapshot by its label
func (h *hud) draw(screen *ebiten.Image, snap game.Snapshot) {
	for _, v := range snap.Entities {
		if v.Kind != game.KindText {
			continue
		}
		switch v.Label {
		case game.LabelTitle:
			h.drawCentered(screen, v.Text, h.title, h.titleScale, screenHeight*titleY, colorText)
		case game.LabelPrompt:
			h.drawCentered(screen, v.Text, h.body, 1, screenHeight*promptY, colorPrompt)
		case game.LabelScore:
			h.drawRight(screen, v.Text, hudMarginY)
		case game.LabelLives:
			h.drawRight(screen, v.Text, hudMarginY+hudLineSpacing)
		}
	}
}

func (h *hud) drawCentered(screen *ebiten.Image, s string, face text.Face, scale, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(screenWidth/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

func (h *hud) drawRight(screen *ebiten.Image, s string, y float64) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignEnd
	op.GeoM.Translate(screenWidth-hudMarginX, y)
	op.ColorScale.ScaleWithColor(colorText)
	text.Draw(screen, s, h.body, op)
}

// drawFPS prints the frame rate readout in the top-left corner
func (h *hud) drawFPS(screen *ebiten.Image, fps float64, entities int) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.1f | Entities: %d", fps, entities), 4, 4)
}
