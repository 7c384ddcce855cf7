package board

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gridwire/core"
)

// boardFile is the YAML shape of a saved design. The grid block is optional
// and defaults to the standard board.
type boardFile struct {
	Grid        *gridSection `yaml:"grid"`
	Components  []Component  `yaml:"components"`
	Connections []Connection `yaml:"connections"`
}

type gridSection struct {
	Cols       int `yaml:"cols"`
	Rows       int `yaml:"rows"`
	PlayMinCol int `yaml:"playMinCol"`
	PlayMaxCol int `yaml:"playMaxCol"`
}

// Parse decodes a YAML design and validates it.
func Parse(data []byte) (*Board, error) {
	var f boardFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("board: parse design: %w", err)
	}

	geom := core.DefaultGeometry
	if f.Grid != nil {
		geom = core.Geometry{
			Cols:       f.Grid.Cols,
			Rows:       f.Grid.Rows,
			PlayMinCol: f.Grid.PlayMinCol,
			PlayMaxCol: f.Grid.PlayMaxCol,
		}
		if geom.Cols <= 0 || geom.Rows <= 0 {
			return nil, fmt.Errorf("board: grid must have positive dimensions")
		}
		if geom.PlayMinCol < 0 || geom.PlayMaxCol >= geom.Cols || geom.PlayMinCol > geom.PlayMaxCol {
			return nil, fmt.Errorf("board: playfield columns %d..%d do not fit a %d-column grid",
				geom.PlayMinCol, geom.PlayMaxCol, geom.Cols)
		}
	}

	b := &Board{
		Geometry:    geom,
		Components:  f.Components,
		Connections: f.Connections,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Load reads and parses a YAML design file.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("board: read design: %w", err)
	}
	return Parse(data)
}

// Save writes the design back out as YAML.
func (b *Board) Save(path string) error {
	f := boardFile{
		Grid: &gridSection{
			Cols:       b.Geometry.Cols,
			Rows:       b.Geometry.Rows,
			PlayMinCol: b.Geometry.PlayMinCol,
			PlayMaxCol: b.Geometry.PlayMaxCol,
		},
		Components:  b.Components,
		Connections: b.Connections,
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("board: encode design: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("board: write design: %w", err)
	}
	return nil
}
