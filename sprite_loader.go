package main

import (
	"path/filepath"

	"asteroids/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

// spriteSet resolves the simulation's logical asset names to images
type spriteSet struct {
	images map[string]*ebiten.Image
}

// loadSprites reads every sprite from dir, substituting a generated placeholder
// for any file that is missing or unreadable
func loadSprites(dir string, logger *zap.Logger) *spriteSet {
	placeholders := map[string]func() *ebiten.Image{
		game.AssetPlayer: func() *ebiten.Image {
			return ebiten.NewImageFromImage(placeholderShip(placeholderShipSize, placeholderShipSize, colorShip))
		},
		game.AssetAsteroid: func() *ebiten.Image {
			return ebiten.NewImageFromImage(placeholderRock(placeholderRockSize, colorRock))
		},
	}

	set := &spriteSet{images: make(map[string]*ebiten.Image, len(placeholders))}
	for name, fallback := range placeholders {
		path := filepath.Join(dir, name)
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			logger.Warn("sprite missing, using placeholder",
				zap.String("path", path),
				zap.Error(err),
			)
			img = fallback()
		}
		set.images[name] = img
	}
	return set
}

// get returns the image for a logical asset name, or nil
func (s *spriteSet) get(name string) *ebiten.Image {
	return s.images[name]
}
