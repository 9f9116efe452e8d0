package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/milk9111/tilewalk/grid"
)

func flatLayer(size int, cells map[int]int) []int {
	layer := make([]int, size)
	for p, raw := range cells {
		layer[p] = raw
	}
	return layer
}

func TestDecodeCenteringConvention(t *testing.T) {
	// One tile per corner of a 32x32 layer, plus one just past the first row.
	layer := flatLayer(1024, map[int]int{
		0:    1,
		31:   2,
		32:   3,
		1023: 4,
	})
	s := &Scene{Layers: [][]int{layer}}

	want := map[grid.Vector]int{
		{X: -16, Y: 16, Z: 0}: 0,
		{X: 15, Y: 16, Z: 0}:  1,
		{X: -16, Y: 15, Z: 0}: 2,
		{X: 15, Y: -15, Z: 0}: 3,
	}

	placements := s.Decode(32)
	if len(placements) != len(want) {
		t.Fatalf("decoded %d placements, want %d", len(placements), len(want))
	}
	for _, p := range placements {
		wantIndex, ok := want[p.Position]
		if !ok {
			t.Fatalf("unexpected placement at %v", p.Position)
		}
		if p.SpriteIndex != wantIndex {
			t.Fatalf("placement at %v has sprite %d, want %d", p.Position, p.SpriteIndex, wantIndex)
		}
	}
}

func TestDecodeSkipsEmptyAndOffsetsIndex(t *testing.T) {
	layer := flatLayer(16, map[int]int{1: 1, 5: 7, 9: 132})
	s := &Scene{Layers: [][]int{layer}}

	placements := s.Decode(4)
	if len(placements) != 3 {
		t.Fatalf("decoded %d placements, want 3 (zero cells must be skipped)", len(placements))
	}
	gotIndexes := map[int]bool{}
	for _, p := range placements {
		gotIndexes[p.SpriteIndex] = true
	}
	for _, want := range []int{0, 6, 131} {
		if !gotIndexes[want] {
			t.Fatalf("missing decoded sprite index %d (raw value must map to raw-1)", want)
		}
	}
}

func TestDecodeLayerOrder(t *testing.T) {
	s := &Scene{Layers: [][]int{
		flatLayer(4, map[int]int{0: 1}),
		flatLayer(4, map[int]int{0: 2}),
		flatLayer(4, nil),
		flatLayer(4, map[int]int{3: 3}),
	}}

	placements := s.Decode(2)
	if len(placements) != 3 {
		t.Fatalf("decoded %d placements, want 3", len(placements))
	}
	if placements[0].Position.Z != 0 || placements[1].Position.Z != 1 || placements[2].Position.Z != 3 {
		t.Fatalf("layer index must become z: got z = %d, %d, %d",
			placements[0].Position.Z, placements[1].Position.Z, placements[2].Position.Z)
	}
	// Same (x, y) on layers 0 and 1 coexist as distinct placements.
	if placements[0].Position.X != placements[1].Position.X || placements[0].Position.Y != placements[1].Position.Y {
		t.Fatalf("stacked tiles should share (x, y): %v vs %v", placements[0].Position, placements[1].Position)
	}
}

func TestDecodeEmptyScene(t *testing.T) {
	cases := []struct {
		name string
		s    *Scene
	}{
		{"no_layers", &Scene{}},
		{"all_zero_layer", &Scene{Layers: [][]int{make([]int, 1024)}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.s.Decode(32); len(got) != 0 {
				t.Fatalf("decoded %d placements, want 0", len(got))
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		s       *Scene
		wantErr string
	}{
		{"ok", &Scene{Layers: [][]int{flatLayer(1024, map[int]int{0: 132})}}, ""},
		{"no_layers_ok", &Scene{}, ""},
		{"short_layer", &Scene{Layers: [][]int{make([]int, 1000)}}, "1000 cells, want 1024"},
		{"value_too_large", &Scene{Layers: [][]int{flatLayer(1024, map[int]int{7: 133})}}, "out of range"},
		{"negative_value", &Scene{Layers: [][]int{flatLayer(1024, map[int]int{7: -1})}}, "out of range"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.s.Validate(32, 32, 132)
			if c.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate returned %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("Validate returned %v, want error containing %q", err, c.wantErr)
			}
		})
	}
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte(`{"layers": [[0, 1, 2, 0]]}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(s.Layers) != 1 || len(s.Layers[0]) != 4 {
		t.Fatalf("unexpected scene shape: %+v", s)
	}

	if _, err := Parse([]byte(`{"layers": [[`)); err == nil {
		t.Fatalf("malformed JSON should error")
	}
}

func TestLoadPrefersDiskFile(t *testing.T) {
	// Same base name as the embedded scene, but a different shape: Load must
	// return the disk copy, not fall back to the embedded one.
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(`{"layers": [[1], [2]]}`), 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Layers) != 2 {
		t.Fatalf("Load returned %d layers, want the 2-layer disk file", len(s.Layers))
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	// The directory does not exist, so the embedded data.json must serve.
	s, err := Load(filepath.Join(t.TempDir(), "missing", "data.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := s.Validate(32, 32, 132); err != nil {
		t.Fatalf("embedded fallback should validate: %v", err)
	}
}

func TestLoadUnknownScene(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("unknown scene should error")
	}
}

func TestLoadEmbeddedScene(t *testing.T) {
	s, err := Load("data.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := s.Validate(32, 32, 132); err != nil {
		t.Fatalf("shipped scene should validate: %v", err)
	}
	if len(s.Decode(32)) == 0 {
		t.Fatalf("shipped scene should decode to at least one placement")
	}
}
