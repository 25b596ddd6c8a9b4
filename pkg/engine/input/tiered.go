package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Game
	ActionInteract // Pick up the key / open the door under the player
	ActionNewLevel // Throw away this maze and generate another

	// View
	ActionZoomIn  // Fewer, larger tiles
	ActionZoomOut // More, smaller tiles

	ActionQuit
)

// Intent is the high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the event emitted directly from an input device.
// Code is a device‑independent key name (e.g. "w", "arrow_up", "space").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the representation after debouncing/deduplication.
// Both the window layer and terminal raw mode already report one event per
// key press, so this only strips the timestamp.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps key codes to actions. Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"w":           ActionMoveNorth,
	"arrow_up":    ActionMoveNorth,
	"s":           ActionMoveSouth,
	"arrow_down":  ActionMoveSouth,
	"a":           ActionMoveWest,
	"arrow_left":  ActionMoveWest,
	"d":           ActionMoveEast,
	"arrow_right": ActionMoveEast,

	"space": ActionInteract,
	"r":     ActionNewLevel,

	"q": ActionZoomIn,
	"e": ActionZoomOut,

	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapToIntent applies the bindings to a debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// IntentForCode is a shorthand for mapping a bare key code
func IntentForCode(device Device, code string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{Device: device, Code: code, Timestamp: time.Now()}))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move Up"
	case ActionMoveSouth:
		return "Move Down"
	case ActionMoveWest:
		return "Move Left"
	case ActionMoveEast:
		return "Move Right"
	case ActionInteract:
		return "Interact"
	case ActionNewLevel:
		return "New Level"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so the controls legend doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
