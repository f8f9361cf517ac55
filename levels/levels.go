// Package levels holds the built-in levels: the compiled-in first level and
// every TMX map embedded next to this file.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/automoto/knightfall/shared/leveldata"
)

// Level1Name is the name of the compiled-in level.
const Level1Name = "level1"

// Level1 dimensions in tiles.
const (
	Level1Width    = 200
	Level1Height   = 15
	Level1TileSize = 16
)

// Level1 is the first level. Rows shorter than Level1Width are open air to the
// right.
var Level1 = []string{
	"",
	"",
	"",
	"                                    B  E  B  D",
	"                                MMMMMMMMMMMMMMMMMMM",
	"                               M",
	"                              M",
	"                             M",
	"                            M",
	"                                             M",
	"                                         M   M",
	"                                     M   M   M",
	"              B    E    B        M   M   M   M      F         SSS                      t",
	"GGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGG           GGGGGGGGGGGGG",
	"MMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMTTTTTTTTTTTMMMMMMMMMMMMM",
}

//go:embed *.tmx
var tmxFS embed.FS

// Names lists every built-in level, the compiled-in level first and the TMX
// levels after it in name order.
func Names() ([]string, error) {
	_, tmxNames, err := leveldata.LoadAllGrids(tmxFS, ".")
	if err != nil {
		return nil, err
	}
	return append([]string{Level1Name}, tmxNames...), nil
}

// Load returns the named level as a grid.
func Load(name string) (*leveldata.Grid, error) {
	if name == "" || name == Level1Name {
		return level1Grid(), nil
	}

	file := name + ".tmx"
	if _, err := fs.Stat(tmxFS, file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("level %q: %w", name, leveldata.ErrUnknownLevel)
		}
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	return leveldata.LoadGrid(tmxFS, file)
}

func level1Grid() *leveldata.Grid {
	rows := make([]string, len(Level1))
	copy(rows, Level1)
	return &leveldata.Grid{
		Name:     Level1Name,
		Width:    Level1Width,
		Height:   Level1Height,
		TileSize: Level1TileSize,
		Rows:     rows,
	}
}
