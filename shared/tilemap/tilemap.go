// Package tilemap holds the level grid: an immutable template of tile codes
// and the live copy that one-shot pickups are cleared from.
// It has no dependencies on ebitengine or donburi.
package tilemap

import "strings"

// Cell is a grid coordinate.
type Cell struct {
	Col, Row int
}

// TileMap is a fixed-size grid of tile codes.
type TileMap struct {
	width    int
	height   int
	tileSize int

	template []byte
	live     []byte

	enemySpawns    []Cell
	playerSpawn    Cell
	hasPlayerSpawn bool
}

// New builds a map from one string per row. Short rows and missing rows are
// padded with empty cells, longer ones are cut. Spawn markers are recorded
// and blanked so Reset never brings them back.
func New(rows []string, width, height, tileSize int) *TileMap {
	m := &TileMap{
		width:    width,
		height:   height,
		tileSize: tileSize,
		template: make([]byte, width*height),
	}

	for row := 0; row < height; row++ {
		var line string
		if row < len(rows) {
			line = rows[row]
		}
		for col := 0; col < width; col++ {
			code := CodeEmpty
			if col < len(line) {
				code = line[col]
			}

			switch code {
			case CodeEnemySpawn:
				m.enemySpawns = append(m.enemySpawns, Cell{Col: col, Row: row})
				code = CodeEmpty
			case CodePlayerSpawn:
				if !m.hasPlayerSpawn {
					m.playerSpawn = Cell{Col: col, Row: row}
					m.hasPlayerSpawn = true
				}
				code = CodeEmpty
			}
			m.template[row*width+col] = code
		}
	}

	m.live = make([]byte, len(m.template))
	copy(m.live, m.template)
	return m
}

func (m *TileMap) Width() int       { return m.width }
func (m *TileMap) Height() int      { return m.height }
func (m *TileMap) TileSize() int    { return m.tileSize }
func (m *TileMap) PixelWidth() int  { return m.width * m.tileSize }
func (m *TileMap) PixelHeight() int { return m.height * m.tileSize }

// InBounds reports whether the cell lies on the grid.
func (m *TileMap) InBounds(col, row int) bool {
	return col >= 0 && col < m.width && row >= 0 && row < m.height
}

// Code returns the live code at a cell, or CodeEmpty off the grid.
func (m *TileMap) Code(col, row int) byte {
	if !m.InBounds(col, row) {
		return CodeEmpty
	}
	return m.live[row*m.width+col]
}

// Classify returns the tile type of a live cell. Off the grid is None.
func (m *TileMap) Classify(col, row int) TileType {
	return ClassifyCode(m.Code(col, row))
}

// Consume clears an ability tile. It returns true only for the call that
// actually removed the pickup.
func (m *TileMap) Consume(col, row int) bool {
	if !m.Classify(col, row).IsAbility() {
		return false
	}
	m.live[row*m.width+col] = CodeEmpty
	return true
}

// Reset restores every consumed tile from the template.
func (m *TileMap) Reset() {
	copy(m.live, m.template)
}

// EnemySpawns returns the cells that held enemy markers, top to bottom, left
// to right.
func (m *TileMap) EnemySpawns() []Cell {
	spawns := make([]Cell, len(m.enemySpawns))
	copy(spawns, m.enemySpawns)
	return spawns
}

// PlayerSpawn returns the first player marker, if the level has one.
func (m *TileMap) PlayerSpawn() (Cell, bool) {
	return m.playerSpawn, m.hasPlayerSpawn
}

// Rows returns the live grid as strings, one per row.
func (m *TileMap) Rows() []string {
	rows := make([]string, m.height)
	for row := 0; row < m.height; row++ {
		rows[row] = string(m.live[row*m.width : (row+1)*m.width])
	}
	return rows
}

// String renders the live grid with trailing blanks trimmed.
func (m *TileMap) String() string {
	var b strings.Builder
	for _, row := range m.Rows() {
		b.WriteString(strings.TrimRight(row, " "))
		b.WriteByte('\n')
	}
	return b.String()
}
