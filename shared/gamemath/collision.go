package gamemath

import (
	"math"

	"github.com/automoto/knightfall/shared/tilemap"
)

// Grid is the read side of a tile map.
type Grid interface {
	Classify(col, row int) tilemap.TileType
	InBounds(col, row int) bool
	TileSize() int
}

// Solidity decides which tile types stop a body.
type Solidity func(tilemap.TileType) bool

var (
	CharacterSolidity Solidity = tilemap.TileType.BlocksCharacter
	EnemySolidity     Solidity = tilemap.TileType.BlocksEnemy
)

// Resolver answers collision queries against a grid for one class of body.
type Resolver struct {
	grid  Grid
	solid Solidity
	size  float64
}

func NewResolver(grid Grid, solid Solidity) *Resolver {
	return &Resolver{
		grid:  grid,
		solid: solid,
		size:  float64(grid.TileSize()),
	}
}

// TileSize returns the grid cell size in pixels.
func (r *Resolver) TileSize() float64 {
	return r.size
}

// CellAt converts a world position to grid coordinates.
func (r *Resolver) CellAt(x, y float64) (col, row int) {
	return int(math.Floor(x / r.size)), int(math.Floor(y / r.size))
}

// SolidAt reports whether the world point is blocked. Anything off the grid
// is solid.
func (r *Resolver) SolidAt(x, y float64) bool {
	col, row := r.CellAt(x, y)
	if !r.grid.InBounds(col, row) {
		return true
	}
	return r.solid(r.grid.Classify(col, row))
}

// GroundBelow samples the two bottom corners of a body placed at (x, y).
func (r *Resolver) GroundBelow(b *Body, x, y float64) bool {
	bottom := y + b.H
	return r.SolidAt(x, bottom) || r.SolidAt(x+b.W-1, bottom)
}

// CeilingAbove samples the two top corners of a body placed at (x, y).
func (r *Resolver) CeilingAbove(b *Body, x, y float64) bool {
	return r.SolidAt(x, y) || r.SolidAt(x+b.W-1, y)
}
