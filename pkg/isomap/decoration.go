// pkg/isomap/decoration.go
package isomap

import (
	"math"

	"iso-zombie/internal/config"
	"iso-zombie/internal/utils"
	"iso-zombie/pkg/geom"
)

// DecorationKind is the type of static prop placed on a tile.
type DecorationKind int

const (
	DecorationNone DecorationKind = iota
	DecorationTree
	DecorationRock
	DecorationFlower
)

func (k DecorationKind) String() string {
	switch k {
	case DecorationTree:
		return "tree"
	case DecorationRock:
		return "rock"
	case DecorationFlower:
		return "flower"
	}
	return "none"
}

// Decoration is a prop at a whole-tile world position.
type Decoration struct {
	Kind DecorationKind
	Pos  geom.Vec2
}

// InClearing reports whether tile (x, y) lies in the empty box around the
// map center where the player spawns.
func InClearing(x, y float64, width, height int) bool {
	return math.Abs(x-float64(width)/2) < config.DecorationClearance &&
		math.Abs(y-float64(height)/2) < config.DecorationClearance
}

// ClassifyRoll buckets a [0,1) roll by the cumulative tree/rock/flower chances.
func ClassifyRoll(roll float64) DecorationKind {
	switch {
	case roll < config.TreeChance:
		return DecorationTree
	case roll < config.TreeChance+config.RockChance:
		return DecorationRock
	case roll < config.TreeChance+config.RockChance+config.FlowerChance:
		return DecorationFlower
	}
	return DecorationNone
}

// GenerateDecorations walks the grid row by row and rolls once per cell
// outside the clearing. The result depends only on (width, height, seed).
func GenerateDecorations(width, height int, seed int64) []Decoration {
	rng := utils.NewSeededPRNGService(seed)
	var out []Decoration
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if InClearing(float64(x), float64(y), width, height) {
				continue
			}
			if kind := ClassifyRoll(rng.Float64()); kind != DecorationNone {
				out = append(out, Decoration{Kind: kind, Pos: geom.V(float64(x), float64(y))})
			}
		}
	}
	return out
}
