// Package level is the level provider: it parses a YAML level document into
// static collision geometry, decorative tiles and named spawn points. The
// default world ships embedded in the binary.
package level

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed world.yaml
var defaultWorld []byte

// Tile glyphs used in the row strings.
const (
	glyphEmpty      = '.'
	glyphSolid      = '#'
	glyphDecoration = '*'
)

// Spawn is a named spawn point. Area spawns (worm patrol bands) carry a
// rectangle; point spawns leave W and H zero.
type Spawn struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	W    float64 `yaml:"w"`
	H    float64 `yaml:"h"`
}

// Placed is the pixel position of one placed tile.
type Placed struct {
	X, Y float64
}

// Level holds everything a session needs to build its world.
type Level struct {
	TileSize    float64
	Width       float64 // pixel width of the level
	Height      float64 // pixel height of the level
	Tiles       []Placed
	Decorations []Placed
	Spawns      []Spawn
}

type document struct {
	TileSize float64  `yaml:"tile_size"`
	Rows     []string `yaml:"rows"`
	Spawns   []Spawn  `yaml:"spawns"`
}

// Load parses a YAML level document.
func Load(data []byte) (*Level, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	if doc.TileSize <= 0 {
		return nil, fmt.Errorf("level: tile_size must be positive, got %v", doc.TileSize)
	}
	if len(doc.Rows) == 0 {
		return nil, fmt.Errorf("level: no tile rows")
	}

	width := len(doc.Rows[0])
	lvl := &Level{
		TileSize: doc.TileSize,
		Width:    float64(width) * doc.TileSize,
		Height:   float64(len(doc.Rows)) * doc.TileSize,
		Spawns:   doc.Spawns,
	}

	for y, row := range doc.Rows {
		if len(row) != width {
			return nil, fmt.Errorf("level: row %d has %d columns, want %d", y, len(row), width)
		}
		for x, glyph := range row {
			pos := Placed{X: float64(x) * doc.TileSize, Y: float64(y) * doc.TileSize}
			switch glyph {
			case glyphEmpty:
			case glyphSolid:
				lvl.Tiles = append(lvl.Tiles, pos)
			case glyphDecoration:
				lvl.Decorations = append(lvl.Decorations, pos)
			default:
				return nil, fmt.Errorf("level: unknown glyph %q at row %d col %d", glyph, y, x)
			}
		}
	}

	players := 0
	for _, s := range lvl.Spawns {
		if s.Name == "Player" {
			players++
		}
	}
	if players != 1 {
		return nil, fmt.Errorf("level: want exactly one Player spawn, got %d", players)
	}

	return lvl, nil
}

// LoadDefault parses the embedded world.
func LoadDefault() (*Level, error) {
	return Load(defaultWorld)
}

// PlayerSpawn returns the level's player spawn point.
func (l *Level) PlayerSpawn() Spawn {
	for _, s := range l.Spawns {
		if s.Name == "Player" {
			return s
		}
	}
	return Spawn{}
}

// WormSpawns returns the level's worm patrol areas.
func (l *Level) WormSpawns() []Spawn {
	var out []Spawn
	for _, s := range l.Spawns {
		if s.Name == "Worm" {
			out = append(out, s)
		}
	}
	return out
}
