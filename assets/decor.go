package assets

import (
	"fmt"

	"github.com/lafriks/go-tiled"
)

// Placement positions one background decor object.
type Placement struct {
	X, Y float64
}

// LoadDecor reads pagoda placements from an optional Tiled map. The map
// needs an object group named "Pagodas"; the caller falls back to evenly
// spaced defaults when the file or group is missing.
func LoadDecor(path string) ([]Placement, error) {
	m, err := tiled.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load decor map: %w", err)
	}

	var placements []Placement
	for _, og := range m.ObjectGroups {
		if og.Name != "Pagodas" {
			continue
		}
		for _, o := range og.Objects {
			placements = append(placements, Placement{X: o.X, Y: o.Y})
		}
	}
	if len(placements) == 0 {
		return nil, fmt.Errorf("decor map %s has no Pagodas object group", path)
	}
	return placements, nil
}
