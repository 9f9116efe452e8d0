// scenecheck validates a scene file and summarizes its decoded placements
// without starting the game.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/milk9111/tilewalk/scene"
)

func main() {
	scenePath := flag.String("scene", "scene/data.json", "scene file to check")
	width := flag.Int("width", 32, "map width in tiles")
	height := flag.Int("height", 32, "map height in tiles")
	sprites := flag.Int("sprites", 12*11, "number of sprite cells in the atlas")
	flag.Parse()

	s, err := scene.Load(*scenePath)
	if err != nil {
		log.Fatalf("scenecheck: %v", err)
	}
	if err := s.Validate(*width, *height, *sprites); err != nil {
		log.Fatalf("scenecheck: %v", err)
	}

	placements := s.Decode(*width)
	perLayer := map[int]int{}
	for _, p := range placements {
		perLayer[p.Position.Z]++
	}

	fmt.Printf("%s: %d layers, %d placements\n", *scenePath, len(s.Layers), len(placements))
	for z := 0; z < len(s.Layers); z++ {
		fmt.Printf("  layer %d: %d tiles\n", z, perLayer[z])
	}
}
