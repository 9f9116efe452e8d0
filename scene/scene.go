package scene

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/milk9111/tilewalk/grid"
)

//go:embed *.json
var ScenesFS embed.FS

// Scene is a layered tile map. Each layer is a flat row-major array of
// width*height raw tile values: 0 means empty, any r >= 1 names atlas sprite
// r-1. Layer order is depth order, later layers draw in front.
type Scene struct {
	Layers [][]int `json:"layers"`
}

// Placement is one decoded tile: where it sits on the grid and which atlas
// cell it shows.
type Placement struct {
	Position    grid.Vector
	SpriteIndex int
}

// Parse decodes a scene from raw JSON.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: unmarshal: %w", err)
	}
	return &s, nil
}

// Load reads a scene by name, preferring the file on disk over the embedded
// copy so edited scenes don't need a rebuild. The path is tried as given; only
// the embed fallback reduces it to a base name.
func Load(name string) (*Scene, error) {
	if data, err := os.ReadFile(name); err == nil {
		return Parse(data)
	}
	data, err := ScenesFS.ReadFile(filepath.Base(name))
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", name, err)
	}
	return Parse(data)
}

// Validate checks every layer against the expected dimensions and the atlas
// size. Raw values are 1-based, so the largest legal value is spriteCount.
func (s *Scene) Validate(width, height, spriteCount int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("scene: invalid dimensions %dx%d", width, height)
	}
	want := width * height
	for i, layer := range s.Layers {
		if len(layer) != want {
			return fmt.Errorf("scene: layer %d has %d cells, want %d", i, len(layer), want)
		}
		for p, raw := range layer {
			if raw < 0 || raw > spriteCount {
				return fmt.Errorf("scene: layer %d cell %d: tile value %d out of range [0, %d]", i, p, raw, spriteCount)
			}
		}
	}
	return nil
}

// Decode flattens the scene into tile placements, layer order then raster
// order. The map is centered on the origin: flat position p becomes
// x = p%W - W/2 and y = H/2 - p/W, so row 0 is the top row and grid y grows
// upward. Empty cells (raw 0) produce nothing.
func (s *Scene) Decode(width int) []Placement {
	var out []Placement
	for z, layer := range s.Layers {
		if width <= 0 || len(layer)%width != 0 {
			continue
		}
		height := len(layer) / width
		for p, raw := range layer {
			if raw == 0 {
				continue
			}
			out = append(out, Placement{
				Position: grid.Vector{
					X: p%width - width/2,
					Y: height/2 - p/width,
					Z: z,
				},
				SpriteIndex: raw - 1,
			})
		}
	}
	return out
}
