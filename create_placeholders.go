package main

import (
	"image"
	"image/color"
	"math"
)

// placeholderShip draws an upward-pointing triangle with a dark outline
func placeholderShip(width, height int, clr color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	darkClr := color.RGBA{0, 0, 0, 255}

	centerX := float64(width) / 2
	top := float64(height) / 8
	bottom := float64(height) * 7 / 8

	for y := 0; y < height; y++ {
		fy := float64(y)
		if fy < top || fy > bottom {
			continue
		}
		// Half-width grows linearly from the nose to the base
		edgeX := float64(width) / 2.5 * (fy - top) / (bottom - top)
		for x := 0; x < width; x++ {
			relX := math.Abs(float64(x) + 0.5 - centerX)
			if relX < edgeX {
				img.Set(x, y, clr)
			} else if relX < edgeX+1 {
				img.Set(x, y, darkClr)
			}
		}
	}
	return img
}

// placeholderRock draws a filled disc with a dark rim
func placeholderRock(size int, clr color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	darkClr := color.RGBA{0, 0, 0, 255}

	center := float64(size) / 2
	radius := center - 1
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-center, float64(y)+0.5-center)
			if d < radius-1 {
				img.Set(x, y, clr)
			} else if d < radius {
				img.Set(x, y, darkClr)
			}
		}
	}
	return img
}
