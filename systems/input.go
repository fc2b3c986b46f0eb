package systems

import (
	"github.com/automoto/ferrisdive/components"
	cfg "github.com/automoto/ferrisdive/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// keyBindings maps each action to the keys that trigger it.
var keyBindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveLeft:       {ebiten.KeyA, ebiten.KeyArrowLeft},
	cfg.ActionMoveRight:      {ebiten.KeyD, ebiten.KeyArrowRight},
	cfg.ActionJump:           {ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeySpace},
	cfg.ActionFastFall:       {ebiten.KeyS, ebiten.KeyArrowDown},
	cfg.ActionRestart:        {ebiten.KeyR},
	cfg.ActionQuit:           {ebiten.KeyEscape},
	cfg.ActionDebugColliders: {ebiten.KeyF1},
	cfg.ActionDebugReroll:    {ebiten.KeyF2},
}

var padBindings = map[cfg.ActionID][]ebiten.StandardGamepadButton{
	cfg.ActionMoveLeft:  {ebiten.StandardGamepadButtonLeftLeft},
	cfg.ActionMoveRight: {ebiten.StandardGamepadButtonLeftRight},
	cfg.ActionJump:      {ebiten.StandardGamepadButtonRightBottom},
	cfg.ActionFastFall:  {ebiten.StandardGamepadButtonLeftBottom},
	cfg.ActionRestart:   {ebiten.StandardGamepadButtonCenterRight},
	cfg.ActionQuit:      {ebiten.StandardGamepadButtonCenterLeft},
}

var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads into the session's InputData.
// It runs every tick, terminal or not, so restart and quit stay live.
func UpdateInput(e *ecs.ECS) {
	entry, ok := getSessionEntry(e)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for action, keys := range keyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[action] = true
				break
			}
		}
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for action, buttons := range padBindings {
			for _, b := range buttons {
				if ebiten.IsStandardGamepadButtonPressed(id, b) {
					input.Current[action] = true
				}
			}
		}

		// left stick doubles as the d-pad
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if h < -cfg.Input.AnalogDeadzone {
			input.Current[cfg.ActionMoveLeft] = true
		}
		if h > cfg.Input.AnalogDeadzone {
			input.Current[cfg.ActionMoveRight] = true
		}
		if v > cfg.Input.AnalogDeadzone {
			input.Current[cfg.ActionFastFall] = true
		}
	}
}
