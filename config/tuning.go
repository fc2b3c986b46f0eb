package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/automoto/ferrisdive/shared/gameplay"
	"gopkg.in/yaml.v3"
)

var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning is the subset of configuration a YAML file may override.
type Tuning struct {
	Gameplay gameplay.Rules `yaml:"gameplay"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
}

// CurrentTuning snapshots the overridable configuration.
func CurrentTuning() Tuning {
	return Tuning{Gameplay: Gameplay, Physics: Physics, Player: Player}
}

// LoadTuning decodes a YAML override on top of the current values and
// applies it. Keys missing from the document keep their values. Nothing is
// applied when decoding or validation fails.
func LoadTuning(r io.Reader) error {
	t := CurrentTuning()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return err
	}
	Gameplay = t.Gameplay
	Physics = t.Physics
	Player = t.Player
	return nil
}

func LoadTuningFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open tuning %s: %w", path, err)
	}
	defer f.Close()

	if err := LoadTuning(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (t Tuning) Validate() error {
	g := t.Gameplay
	switch {
	case g.BiteInterval <= 0:
		return fmt.Errorf("%w: bite_interval must be positive", ErrInvalidTuning)
	case g.BiteWeak < 0 || g.BiteStrong < 0:
		return fmt.Errorf("%w: bite damage must not be negative", ErrInvalidTuning)
	case g.MaxJumps < 1 || g.MaxJumpsDouble < 1:
		return fmt.Errorf("%w: jump limits must be at least 1", ErrInvalidTuning)
	case g.DefaultHealth < 1:
		return fmt.Errorf("%w: default_health must be at least 1", ErrInvalidTuning)
	case t.Physics.Iterations == 0:
		return fmt.Errorf("%w: physics iterations must be positive", ErrInvalidTuning)
	}
	return nil
}
