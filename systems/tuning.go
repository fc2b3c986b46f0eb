package systems

import (
	"github.com/automoto/ferrisdive/components"
	cfg "github.com/automoto/ferrisdive/config"
	"github.com/jakecoffman/cp"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateTuning returns the system applying tuning reloads. The watcher
// goroutine only reports file names; the file is read and applied here,
// on the simulation thread, at the start of a tick.
func NewUpdateTuning(w *cfg.TuningWatcher) ecs.System {
	return func(e *ecs.ECS) {
		for {
			select {
			case path, ok := <-w.Events:
				if !ok {
					return
				}
				reloadTuning(e, path)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("tuning watcher")
			default:
				return
			}
		}
	}
}

func reloadTuning(e *ecs.ECS, path string) {
	if err := cfg.LoadTuningFile(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("tuning reload rejected")
		return
	}
	ApplyTuning(e)
	log.Info().Str("path", path).Msg("tuning reloaded")
}

// ApplyTuning pushes the current config into the live session and space.
func ApplyTuning(e *ecs.ECS) {
	if entry, ok := getSessionEntry(e); ok {
		components.Session.Get(entry).Rules = cfg.Gameplay
	}
	if level, ok := getLevel(e.World); ok {
		space := level.Physics.Space()
		space.SetGravity(cp.Vector{X: 0, Y: cfg.Physics.Gravity})
		space.Iterations = cfg.Physics.Iterations
	}
}
