package systems

import (
	"github.com/automoto/peerfinder/components"
	cfg "github.com/automoto/peerfinder/config"
	"github.com/automoto/peerfinder/shared/controls"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var gamepadIDs []ebiten.GamepadID

// padMethods caches the glyph family per connected pad.
var padMethods = make(map[ebiten.GamepadID]components.InputMethod)

// A pushed stick pans the viewer and moves menu focus in the same frame.
var stickActions = [...]struct {
	pushed func(controls.Stick) bool
	move   cfg.ActionID
	menu   cfg.ActionID
}{
	{func(s controls.Stick) bool { return s.Left }, cfg.ActionMoveLeft, cfg.ActionMenuLeft},
	{func(s controls.Stick) bool { return s.Right }, cfg.ActionMoveRight, cfg.ActionMenuRight},
	{func(s controls.Stick) bool { return s.Up }, cfg.ActionMoveUp, cfg.ActionMenuUp},
	{func(s controls.Stick) bool { return s.Down }, cfg.ActionMoveDown, cfg.ActionMenuDown},
}

// UpdateInput polls keyboard and pads into the singleton InputData.
// Must run before any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	keyboard := pollKeyboard(input)
	pad, padUsed := pollGamepads(input)

	// Pads win when both were touched in the same frame.
	switch {
	case padUsed:
		input.LastInputMethod = padMethod(pad)
	case keyboard:
		input.LastInputMethod = components.InputKeyboard
	}
}

func pollKeyboard(input *components.InputData) (used bool) {
	for id, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[id] = true
				used = true
			}
		}
	}
	return used
}

// pollGamepads reads buttons and left sticks of every standard-layout pad and
// returns the last pad that did anything.
func pollGamepads(input *components.InputData) (last ebiten.GamepadID, used bool) {
	deadzone := cfg.Input.AnalogDeadzone
	var stick controls.Stick

	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for action, binding := range cfg.Input.Bindings {
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					input.Current[action] = true
					last, used = id, true
				}
			}
		}

		s := controls.ReadStick(
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
			deadzone,
		)
		if s.Any() {
			stick = stick.Merge(s)
			last, used = id, true
		}
	}

	for _, sa := range stickActions {
		if sa.pushed(stick) {
			input.Current[sa.move] = true
			input.Current[sa.menu] = true
		}
	}
	return last, used
}

func padMethod(id ebiten.GamepadID) components.InputMethod {
	if m, ok := padMethods[id]; ok {
		return m
	}
	m := components.InputXbox
	if controls.Classify(ebiten.GamepadName(id)) == controls.PadPlayStation {
		m = components.InputPlayStation
	}
	padMethods[id] = m
	return m
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction derives the edge state of id from this frame and the last.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr, prev := input.Current[id], input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
