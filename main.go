package main

import (
	"math/rand/v2"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/automoto/ferrisdive/assets/levels"
	"github.com/automoto/ferrisdive/config"
	"github.com/automoto/ferrisdive/fonts"
	"github.com/automoto/ferrisdive/scenes"
	"github.com/automoto/ferrisdive/shared/advantage"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Debug     bool   `help:"Enable debug logging and the debug keys."`
	Level     int    `help:"Index of the level to start on." default:"0"`
	Advantage string `help:"Pin the advantage (e.g. \"double jump\", EnemyDoubleBite) instead of drawing one."`
	Seed      uint64 `help:"Random seed; 0 seeds from the clock." default:"0"`
	ChangeMap bool   `help:"Advance to the next level on reaching a goal instead of winning." env:"CHANGE_MAP"`
	Colliders bool   `help:"Start with the collider overlay on."`
	Tuning    string `help:"YAML file overriding gameplay, physics and player tuning." type:"existingfile"`
	Watch     bool   `help:"Reload the tuning file when it changes."`
}

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("ferrisdive"),
		kong.Description("an underwater platformer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}
	config.Debug = config.DebugConfig{
		Enabled:       CLI.Debug,
		DrawColliders: CLI.Colliders,
		ChangeMap:     CLI.ChangeMap,
	}

	opts := scenes.Options{StartLevel: CLI.Level}

	if CLI.Advantage != "" {
		adv, err := advantage.Parse(CLI.Advantage)
		if err != nil {
			log.Fatal().Err(err).Msg("bad --advantage")
		}
		opts.Advantage = &adv
	}

	seed := CLI.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	opts.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	log.Debug().Uint64("seed", seed).Msg("rng seeded")

	if CLI.Tuning != "" {
		if err := config.LoadTuningFile(CLI.Tuning); err != nil {
			log.Fatal().Err(err).Str("path", CLI.Tuning).Msg("failed to load tuning")
		}
		log.Info().Str("path", CLI.Tuning).Msg("tuning loaded")
		if CLI.Watch {
			w, err := config.NewTuningWatcher(CLI.Tuning)
			if err != nil {
				log.Fatal().Err(err).Msg("failed to watch tuning file")
			}
			defer w.Close()
			opts.Watcher = w
		}
	} else if CLI.Watch {
		log.Warn().Msg("--watch has no effect without --tuning")
	}

	set := levels.NewSet()
	all := levels.MustLoadAll(set)
	opts.Levels = set
	opts.Preload = all
	if CLI.Level < 0 || CLI.Level >= set.Len() {
		log.Fatal().Int("level", CLI.Level).Int("levels", set.Len()).Msg("level index out of range")
	}

	if err := fonts.LoadDefaults(config.HUD.FontSize, config.Overlay.FontSize, config.HUD.DebugFontSize); err != nil {
		log.Fatal().Err(err).Msg("failed to load fonts")
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(&Game{scene: scenes.NewDiveScene(opts)}); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
