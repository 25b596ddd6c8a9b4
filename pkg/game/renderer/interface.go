// Package renderer holds what every display backend shares.
// Backends implement Renderer and draw through Camera and BuildHUD.
package renderer

import (
	"image/color"

	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/gameplay"
)

// Renderer defines the interface for game rendering backends.
// Run owns the loop: it reads input, forwards intents to the engine and
// redraws until the engine reports Done or the window is closed.
type Renderer interface {
	Name() string
	Run(e *gameplay.Engine) error
}

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleFloor
	StyleKey
	StyleDoorLocked
	StyleDoorUnlocked
	StylePlayer
	StyleSubtle
)

// Palette colours, one per cell kind plus the player and grid lines
var (
	ColorWall         = color.RGBA{0, 0, 0, 255}
	ColorFloor        = color.RGBA{120, 28, 109, 255}
	ColorKey          = color.RGBA{244, 247, 84, 255}
	ColorDoorLocked   = color.RGBA{191, 9, 47, 255}
	ColorDoorUnlocked = color.RGBA{132, 153, 79, 255}
	ColorPlayer       = color.RGBA{0, 0, 255, 255}
	ColorGridLine     = color.RGBA{25, 25, 25, 255}
	ColorMenu         = color.RGBA{40, 40, 40, 255} // behind white debug text
	ColorText         = color.RGBA{0, 0, 0, 255}
)

// StyleFor returns the style used to draw a cell tag
func StyleFor(tag world.CellType) TextStyle {
	switch tag {
	case world.Floor:
		return StyleFloor
	case world.KeySlot:
		return StyleKey
	case world.LockedDoor:
		return StyleDoorLocked
	case world.UnlockedDoor:
		return StyleDoorUnlocked
	default:
		return StyleWall
	}
}

// ColorFor returns the palette colour of a style
func ColorFor(style TextStyle) color.RGBA {
	switch style {
	case StyleFloor:
		return ColorFloor
	case StyleKey:
		return ColorKey
	case StyleDoorLocked:
		return ColorDoorLocked
	case StyleDoorUnlocked:
		return ColorDoorUnlocked
	case StylePlayer:
		return ColorPlayer
	case StyleSubtle:
		return ColorGridLine
	case StyleNormal:
		return ColorText
	default:
		return ColorWall
	}
}
