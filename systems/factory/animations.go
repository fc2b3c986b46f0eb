package factory

import (
	"fmt"

	"github.com/automoto/ferrisdive/assets/animations"
	"github.com/automoto/ferrisdive/components"
	cfg "github.com/automoto/ferrisdive/config"
)

// GenerateAnimations creates an AnimationData component based on the sheet key
// (e.g., "crab", "sawfish") which maps to a set of animation definitions in config.
func GenerateAnimations(key string, initial cfg.StateID) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}
	sheet, ok := cfg.Sheets[key]
	if !ok {
		panic(fmt.Sprintf("No sprite sheet defined for key: %s", key))
	}

	animData := &components.AnimationData{
		Animations:  make(map[cfg.StateID]*animations.Animation, len(defs)),
		SheetKey:    key,
		FrameWidth:  sheet.FrameWidth,
		FrameHeight: sheet.FrameHeight,
	}
	for state, def := range defs {
		animData.Animations[state] = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
	}
	animData.SetAnimation(initial)

	return animData
}
