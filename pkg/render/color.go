// pkg/render/color.go
package render

import "image/color"

// MapPalette holds all the colors needed to render the static map.
type MapPalette struct {
	Background  color.RGBA
	Tile1       color.RGBA
	Tile2       color.RGBA
	Grid        color.RGBA
	GrassDetail color.RGBA
	Tree        color.RGBA
	TreeTrunk   color.RGBA
	Rock        color.RGBA
	Flower      color.RGBA
	GridWidth   float64
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
