package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadGrid parses a TMX file into a Grid. Each tile in the "tiles" layer
// contributes the first byte of its tileset tile's "code" property. Objects in
// the Enemies and PlayerSpawn groups become spawn markers at the cell that
// contains them. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadGrid(fsys fs.FS, tmxPath string) (*Grid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	cells := make([][]byte, levelMap.Height)
	for y := range cells {
		cells[y] = []byte(strings.Repeat(" ", levelMap.Width))
	}

	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != TileLayerName {
			continue
		}
		found = true
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
				if err != nil {
					continue
				}
				if code := tilesetTile.Properties.GetString(CodeProperty); code != "" {
					cells[y][x] = code[0]
				}
			}
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("load TMX %s: no %q layer", tmxPath, TileLayerName)
	}

	// Spawn markers from object groups
	place := func(x, y float64, code byte) {
		col := int(x) / levelMap.TileWidth
		row := int(y) / levelMap.TileHeight
		if row >= 0 && row < levelMap.Height && col >= 0 && col < levelMap.Width {
			cells[row][col] = code
		}
	}
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case EnemyGroupName:
			for _, o := range og.Objects {
				place(o.X, o.Y, 'E')
			}
		case PlayerGroupName:
			for _, o := range og.Objects {
				place(o.X, o.Y, 'P')
			}
		}
	}

	grid := &Grid{
		Name:     strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:    levelMap.Width,
		Height:   levelMap.Height,
		TileSize: levelMap.TileWidth,
		Rows:     make([]string, levelMap.Height),
	}
	for y, row := range cells {
		grid.Rows[y] = string(row)
	}
	return grid, nil
}

// LoadAllGrids discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllGrids(fsys fs.FS, levelsDir string) (map[string]*Grid, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	grids := make(map[string]*Grid, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		grid, err := LoadGrid(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		grids[grid.Name] = grid
		names = append(names, grid.Name)
	}

	sort.Strings(names)
	return grids, names, nil
}
