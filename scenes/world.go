// Package scenes wires the ECS pipeline for a dive.
package scenes

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/automoto/ferrisdive/assets"
	cfg "github.com/automoto/ferrisdive/config"
	"github.com/automoto/ferrisdive/shared/advantage"
	"github.com/automoto/ferrisdive/shared/gameplay"
	"github.com/automoto/ferrisdive/shared/leveldata"
	"github.com/automoto/ferrisdive/systems"
	"github.com/automoto/ferrisdive/systems/factory"
	"github.com/automoto/ferrisdive/systems/sim"
	"github.com/automoto/ferrisdive/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const layerDefault ecs.LayerID = 0

// Options fixes what a dive starts from.
type Options struct {
	Levels     *leveldata.Set
	StartLevel int
	// Advantage pins the variant; nil draws a fresh one on every start.
	Advantage *advantage.Advantage
	Rand      *rand.Rand
	// Watcher is optional; when set, tuning edits are applied live.
	Watcher *cfg.TuningWatcher
	// Preload lists compiled levels whose textures are uploaded up front.
	Preload []*leveldata.Level
}

// DiveScene runs one session at a time. R starts a new session, Esc quits.
type DiveScene struct {
	ecs     *ecs.ECS
	opts    Options
	overlay *ui.Overlay
	once    sync.Once
}

func NewDiveScene(opts Options) *DiveScene {
	return &DiveScene{opts: opts}
}

func (ds *DiveScene) Update() error {
	ds.once.Do(ds.configure)
	ds.ecs.Update()

	input := systems.GetInput(ds.ecs)
	switch {
	case input.JustPressed(cfg.ActionQuit):
		return ebiten.Termination
	case input.JustPressed(cfg.ActionRestart):
		log.Info().Msg("restart")
		ds.start()
	}
	return nil
}

func (ds *DiveScene) Draw(screen *ebiten.Image) {
	if ds.ecs == nil {
		screen.Fill(cfg.Level.ClearColor)
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DiveScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		panic("failed to load shaders: " + err.Error())
	}
	assets.PreloadAll(ds.opts.Preload)
	ds.overlay = ui.NewOverlay(cfg.C.Width, cfg.C.Height)
	ds.start()
}

// start builds a fresh world: new session, new advantage, starting level.
func (ds *DiveScene) start() {
	r := ds.opts.Rand
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	if ds.opts.Watcher != nil {
		e.AddSystem(systems.NewUpdateTuning(ds.opts.Watcher))
	}
	e.AddSystem(systems.NewUpdateDebug(r))

	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateHits))
	e.AddSystem(systems.WithGameplayChecks(systems.NewUpdateLevelChange(ds.opts.Levels, r)))
	e.AddSystem(systems.WithGameplayChecks(systems.NewUpdateEffects(r)))

	// keep running after the session ends
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateHUD)
	e.AddSystem(systems.NewUpdateOverlay(ds.overlay))

	e.AddRenderer(layerDefault, systems.DrawLevel)
	e.AddRenderer(layerDefault, systems.DrawSprites)
	e.AddRenderer(layerDefault, systems.DrawAnimated)
	e.AddRenderer(layerDefault, systems.DrawWater)
	e.AddRenderer(layerDefault, systems.DrawDebug)
	e.AddRenderer(layerDefault, systems.DrawHUD)
	e.AddRenderer(layerDefault, systems.NewDrawOverlay(ds.overlay))

	lvl, err := ds.opts.Levels.Load(ds.opts.StartLevel)
	if err != nil {
		panic(fmt.Sprintf("load level %d: %v", ds.opts.StartLevel, err))
	}

	adv := advantage.Choose(r)
	if ds.opts.Advantage != nil {
		adv = *ds.opts.Advantage
	}
	session := gameplay.NewSession(adv, lvl.InitialHealth, lvl.Index, ds.opts.Levels.Len(), cfg.Gameplay)
	factory.CreateSession(e.World, session)
	factory.CreateCamera(e.World, dmath.Vec2{})
	sim.LoadLevel(e.World, lvl, r)

	ds.overlay.Hide()
	ds.ecs = e

	log.Info().
		Stringer("advantage", adv).
		Bool("beneficial", adv.Beneficial()).
		Int("health", session.Health).
		Msg("dive started")
}
