package main

import (
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tilewalk/assets"
	"github.com/milk9111/tilewalk/board"
	"github.com/milk9111/tilewalk/common"
	"github.com/milk9111/tilewalk/ecs"
	"github.com/milk9111/tilewalk/ecs/entity"
	"github.com/milk9111/tilewalk/ecs/render"
	"github.com/milk9111/tilewalk/ecs/system"
	"github.com/milk9111/tilewalk/grid"
	"github.com/milk9111/tilewalk/prefabs"
	"github.com/milk9111/tilewalk/scene"
)

const (
	sceneWidth  = 32
	sceneHeight = 32

	atlasColumns = 12
	atlasRows    = 11

	sceneAssetName = "scene"
	atlasAssetName = "atlas"
)

// AppState gates the game loop: the world only exists once every asset has
// loaded.
type AppState int

const (
	StateLoading AppState = iota
	StatePlaying
)

type Game struct {
	state      AppState
	debug      bool
	frames     int
	loadFailed bool

	scenePath string
	atlasPath string
	loader    *assets.Loader

	world     *ecs.World
	scheduler *ecs.Scheduler
	renderSys *system.RenderSystem
	board     *board.Index
	atlas     *render.Atlas
	tiles     []ecs.Entity

	paused  bool
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(scenePath, atlasPath string, debug bool) *Game {
	g := &Game{
		state:     StateLoading,
		debug:     debug,
		scenePath: scenePath,
		atlasPath: atlasPath,
		loader:    assets.NewLoader(),
	}
	g.pauseUI = NewPauseUI(g)

	g.loader.Track(sceneAssetName, sceneLoadFunc(scenePath))
	g.loader.Track(atlasAssetName, assets.LoadImageFile(atlasPath))
	g.loader.Start()

	if debug {
		watcher, err := prefabs.NewWatcher("prefabs", "scene")
		if err != nil {
			log.Printf("watcher: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g
}

// sceneLoadFunc parses and validates the scene off the main loop. A scene
// that fails validation counts as a failed asset.
func sceneLoadFunc(path string) assets.LoadFunc {
	return func() (any, error) {
		s, err := scene.Load(path)
		if err != nil {
			return nil, err
		}
		if err := s.Validate(sceneWidth, sceneHeight, atlasColumns*atlasRows); err != nil {
			return nil, err
		}
		return s, nil
	}
}

func (g *Game) Update() error {
	g.frames++

	switch g.state {
	case StateLoading:
		g.updateLoading()
	case StatePlaying:
		g.updatePlaying()
	}
	return nil
}

func (g *Game) updateLoading() {
	if g.loadFailed {
		return
	}
	switch g.loader.GroupState() {
	case assets.GroupFailed:
		g.loadFailed = true
		for name, err := range g.loader.Errors() {
			log.Printf("fatal: asset %s: %v", name, err)
		}
	case assets.GroupLoaded:
		if err := g.startPlaying(); err != nil {
			g.loadFailed = true
			log.Printf("fatal: start game: %v", err)
			return
		}
		log.Printf("loaded %d assets", g.loader.Len())
		g.state = StatePlaying
	}
}

// startPlaying builds the world from the loaded assets. Runs exactly once,
// on the Loading -> Playing transition.
func (g *Game) startPlaying() error {
	rawScene, ok := g.loader.Result(sceneAssetName)
	if !ok {
		return fmt.Errorf("scene asset missing")
	}
	sc := rawScene.(*scene.Scene)

	rawImg, ok := g.loader.Result(atlasAssetName)
	if !ok {
		return fmt.Errorf("atlas asset missing")
	}
	atlasImg := ebiten.NewImageFromImage(rawImg.(image.Image))
	render.RegisterImage(atlasAssetName, atlasImg)

	atlas, err := render.NewAtlas(grid.TileSize, grid.TileSize, atlasColumns, atlasRows)
	if err != nil {
		return err
	}
	if err := atlas.Fits(atlasImg.Bounds()); err != nil {
		return err
	}
	g.atlas = atlas

	g.world = ecs.NewWorld()
	g.board = board.New()
	if err := g.spawnScene(sc); err != nil {
		return err
	}

	if _, err := entity.NewPlayer(g.world); err != nil {
		return err
	}
	if _, err := entity.NewCamera(g.world); err != nil {
		return err
	}

	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewMovementSystem(),
		system.NewMotionSystem(),
		system.NewCameraSystem(),
		system.NewRenderSyncSystem(atlas, atlasAssetName),
	)
	g.renderSys = system.NewRenderSystem()
	return nil
}

func (g *Game) spawnScene(sc *scene.Scene) error {
	for _, p := range sc.Decode(sceneWidth) {
		tile, err := entity.NewTile(g.world, p.Position, p.SpriteIndex)
		if err != nil {
			return fmt.Errorf("spawn tile at %v: %w", p.Position, err)
		}
		g.board.Insert(p.Position, tile)
		g.tiles = append(g.tiles, tile)
	}
	return nil
}

func (g *Game) updatePlaying() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}

	// Drain on paused frames too, or the watcher goroutine blocks once its
	// buffer fills and a burst of stale edits lands on resume.
	g.drainWatcher()

	if g.paused {
		g.pauseUI.Update()
		return
	}
	g.scheduler.Update(g.world)
}

// drainWatcher applies debug-mode hot reloads. A changed scene file tears
// down and respawns the tile entities; prefab edits only take effect on the
// next spawn, so they are just logged.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watcher: %s changed", name)
			if isSceneChange(name) {
				if err := g.reloadScene(); err != nil {
					log.Printf("reload scene: %v", err)
				}
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watcher: %v", err)
		default:
			return
		}
	}
}

func isSceneChange(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".json")
}

func (g *Game) reloadScene() error {
	sc, err := scene.Load(g.scenePath)
	if err != nil {
		return err
	}
	if err := sc.Validate(sceneWidth, sceneHeight, g.atlas.SpriteCount()); err != nil {
		return err
	}
	for _, tile := range g.tiles {
		g.world.DestroyEntity(tile)
	}
	g.tiles = g.tiles[:0]
	g.board = board.New()
	return g.spawnScene(sc)
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case StateLoading:
		msg := fmt.Sprintf("Loading %d assets...", g.loader.Len())
		if g.loadFailed {
			msg = "Asset load failed. See log."
		}
		ebitenutil.DebugPrint(screen, msg)
	case StatePlaying:
		g.renderSys.Draw(g.world, screen)
		if g.debug {
			ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
		}
		if g.paused {
			g.pauseUI.Draw(screen)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
