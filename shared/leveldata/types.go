// Package leveldata converts Tiled TMX maps into the row-string grids the
// simulation is built from.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import "errors"

// ErrUnknownLevel is returned when a level name matches nothing.
var ErrUnknownLevel = errors.New("unknown level")

// Layer and property names the importer looks for.
const (
	TileLayerName   = "tiles"
	CodeProperty    = "code"
	EnemyGroupName  = "Enemies"
	PlayerGroupName = "PlayerSpawn"
)

// Grid is one level as single-character rows.
type Grid struct {
	Name     string
	Width    int
	Height   int
	TileSize int
	Rows     []string
}
