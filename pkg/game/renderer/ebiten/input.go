package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "mazerunner/pkg/engine/input"
)

// movementKeys maps held keys to the binding codes they repeat
var movementKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyD, "d"},
}

// pressKeys fire once per press
var pressKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeySpace, "space"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyE, "e"},
	{ebiten.KeyEscape, "escape"},
}

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.log.WithField("width", w).WithField("height", h).Info("main window opened")
	}

	intent := e.checkInput()
	switch intent.Action {
	case engineinput.ActionNone:
		return nil
	case engineinput.ActionZoomIn:
		if e.zoom.In() {
			e.saveZoomPreference()
		}
	case engineinput.ActionZoomOut:
		if e.zoom.Out() {
			e.saveZoomPreference()
		}
	}

	e.engine.ProcessIntent(intent)
	if e.engine.Done() {
		return ebiten.Termination
	}
	return nil
}

// checkInput returns the intent of the first active key this frame
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for _, k := range movementKeys {
		key := k.key
		if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(key) }, k.code) {
			return engineinput.IntentForCode(engineinput.DeviceKeyboard, k.code)
		}
	}
	for _, k := range pressKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			return engineinput.IntentForCode(engineinput.DeviceKeyboard, k.code)
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// shouldRepeatKey checks if a key should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(isPressed func() bool, code string) bool {
	now := time.Now().UnixMilli()
	state, exists := e.keyRepeatState[code]

	if !isPressed() {
		if exists {
			delete(e.keyRepeatState, code)
		}
		return false
	}
	if !exists {
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}

// saveZoomPreference saves the current zoom index to preferences
func (e *EbitenRenderer) saveZoomPreference() {
	e.log.WithField("viewport", e.zoom.Size()).Debug("zoom changed")
	if e.prefs == nil {
		return
	}
	e.prefs.SetViewportIndex(e.zoom.Index())
	if err := e.prefs.Save(); err != nil {
		e.log.WithError(err).Warn("could not save preferences")
	}
}
