package ui

import (
	"strings"

	"github.com/automoto/lunar-lander/components"
	cfg "github.com/automoto/lunar-lander/config"
	"github.com/automoto/lunar-lander/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// AnalogDeadzone is the left stick deflection that counts as a press.
const AnalogDeadzone = 0.25

// Bindings maps every action to its keys and gamepad buttons.
var Bindings = map[cfg.ActionID]InputBinding{
	cfg.ActionThrust: {
		Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW, ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
			ebiten.StandardGamepadButtonFrontBottomRight,
		},
	},
	cfg.ActionRotateLeft: {
		Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftLeft,
		},
	},
	cfg.ActionRotateRight: {
		Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftRight,
		},
	},
	cfg.ActionRestart: {
		Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyR},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonCenterRight,
		},
	},
	cfg.ActionMenuUp: {
		Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftTop,
		},
	},
	cfg.ActionMenuDown: {
		Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftBottom,
		},
	},
	cfg.ActionMenuSelect: {
		Keys: []ebiten.Key{ebiten.KeyEnter},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
	},
	cfg.ActionMenuBack: {
		Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightRight,
		},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input into the Input singleton.
// Must run before any system that reads actions.
func UpdateInput(e *ecs.ECS) {
	input := GetInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge the left stick into rotation and menu navigation
	left, right, up, down, stickID := analogStickState(gamepadIDs)
	if left || right || up || down {
		gamepadUsed = true
		activeGamepadID = stickID
	}
	input.Current[cfg.ActionRotateLeft] = input.Current[cfg.ActionRotateLeft] || left
	input.Current[cfg.ActionRotateRight] = input.Current[cfg.ActionRotateRight] || right
	input.Current[cfg.ActionMenuUp] = input.Current[cfg.ActionMenuUp] || up
	input.Current[cfg.ActionMenuDown] = input.Current[cfg.ActionMenuDown] || down

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = controllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// Intent converts held actions into the lander's control input.
func Intent(input *components.InputData) vehicle.Intent {
	return vehicle.Intent{
		Thrust:      input.Current[cfg.ActionThrust],
		RotateLeft:  input.Current[cfg.ActionRotateLeft],
		RotateRight: input.Current[cfg.ActionRotateRight],
	}
}

// GetInput returns the Input singleton, creating it if needed.
func GetInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

func controllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	method := components.InputXbox
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	}

	controllerTypeCache[gpID] = method
	return method
}

// analogStickState reads the left analog stick from all gamepads.
func analogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool, activeGpID ebiten.GamepadID) {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -AnalogDeadzone {
			left, activeGpID = true, gpID
		}
		if horizontal > AnalogDeadzone {
			right, activeGpID = true, gpID
		}
		if vertical < -AnalogDeadzone {
			up, activeGpID = true, gpID
		}
		if vertical > AnalogDeadzone {
			down, activeGpID = true, gpID
		}
	}
	return
}
