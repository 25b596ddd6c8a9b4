package renderer

import (
	"image/color"

	"mazerunner/pkg/game/i18n"
	"mazerunner/pkg/game/state"
)

// HUD is the text shown under the map
type HUD struct {
	ControlsTitle  string
	Controls       []string
	ObjectiveTitle string
	Objective      string
	Swatch         color.RGBA // key colour while locked, unlocked colour after
	Level          string
	Messages       []string
}

// BuildHUD snapshots the HUD text for g
func BuildHUD(g *state.Game) HUD {
	h := HUD{
		ControlsTitle: i18n.Get("CONTROLS_TITLE"),
		Controls: []string{
			i18n.Get("CONTROLS_ZOOM"),
			i18n.Get("CONTROLS_MOVE_VERTICAL"),
			i18n.Get("CONTROLS_MOVE_HORIZONTAL"),
			i18n.Get("CONTROLS_ACTIONS"),
			i18n.Get("CONTROLS_QUIT"),
		},
		ObjectiveTitle: i18n.Get("OBJECTIVE_TITLE"),
		Level:          i18n.Getf("LEVEL_NUMBER", g.Level),
		Messages:       append([]string(nil), g.Messages...),
	}
	if g.Door.Locked {
		h.Objective = i18n.Get("OBJECTIVE_FIND_KEY")
		h.Swatch = ColorKey
	} else {
		h.Objective = i18n.Get("OBJECTIVE_FIND_EXIT")
		h.Swatch = ColorDoorUnlocked
	}
	return h
}
