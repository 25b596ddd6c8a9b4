// Package tui draws the maze in a terminal and reads single keypresses.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/sirupsen/logrus"

	"mazerunner/pkg/engine/input"
	"mazerunner/pkg/engine/terminal"
	"mazerunner/pkg/game/gameplay"
	"mazerunner/pkg/game/i18n"
	"mazerunner/pkg/game/prefs"
	"mazerunner/pkg/game/renderer"
	"mazerunner/pkg/game/state"
)

// Icon constants
const (
	PlayerIcon       = "@"
	IconWall         = "▒"
	IconFloor        = "·"
	IconKey          = "⚷"
	IconDoorLocked   = "▣"
	IconDoorUnlocked = "□"
)

// hudLines is the number of terminal rows used outside the map
const hudLines = 14

// Options configures a TUIRenderer. Zero fields take sensible defaults.
type Options struct {
	Out     io.Writer
	Zoom    *renderer.Zoom
	Prefs   *prefs.Store
	Log     *logrus.Logger
	ReadKey func() (string, error)
	Size    func() (width, height int)
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out     io.Writer
	zoom    *renderer.Zoom
	prefs   *prefs.Store
	log     *logrus.Entry
	readKey func() (string, error)
	size    func() (width, height int)

	styles map[renderer.TextStyle]color.Style
}

// New creates a new TUI renderer
func New(opts Options) *TUIRenderer {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Zoom == nil {
		opts.Zoom = renderer.NewZoom([]int{5, 9, 15, 25, 45}, 1)
	}
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	if opts.ReadKey == nil {
		opts.ReadKey = input.ReadKey
	}
	if opts.Size == nil {
		opts.Size = terminal.GetSize
	}
	return &TUIRenderer{
		out:     opts.Out,
		zoom:    opts.Zoom,
		prefs:   opts.Prefs,
		log:     opts.Log.WithField("component", "tui"),
		readKey: opts.ReadKey,
		size:    opts.Size,
		styles: map[renderer.TextStyle]color.Style{
			renderer.StyleNormal:       {color.FgWhite},
			renderer.StyleWall:         {color.FgGray},
			renderer.StyleFloor:        {color.FgMagenta},
			renderer.StyleKey:          {color.FgYellow, color.OpBold},
			renderer.StyleDoorLocked:   {color.FgRed, color.OpBold},
			renderer.StyleDoorUnlocked: {color.FgGreen},
			renderer.StylePlayer:       {color.FgBlue, color.BgBlack, color.OpBold},
			renderer.StyleSubtle:       {color.FgGray, color.OpBold},
		},
	}
}

// Name returns the renderer name
func (t *TUIRenderer) Name() string {
	return "tui"
}

// Run draws a frame, blocks for a key and forwards its intent until the engine is done
func (t *TUIRenderer) Run(e *gameplay.Engine) error {
	terminal.HideCursor(t.out)
	defer terminal.ShowCursor(t.out)

	for !e.Done() {
		terminal.Clear(t.out)
		fmt.Fprint(t.out, t.Frame(e.Game))

		code, err := t.readKey()
		if err != nil {
			return fmt.Errorf("reading key: %w", err)
		}
		intent := input.IntentForCode(input.DeviceTerminal, code)
		t.handleZoom(intent)
		e.ProcessIntent(intent)
	}

	terminal.Clear(t.out)
	fmt.Fprintln(t.out, i18n.Get("GOODBYE"))
	return nil
}

// handleZoom applies zoom intents and persists the new index
func (t *TUIRenderer) handleZoom(intent input.Intent) {
	changed := false
	switch intent.Action {
	case input.ActionZoomIn:
		changed = t.zoom.In()
	case input.ActionZoomOut:
		changed = t.zoom.Out()
	}
	if !changed || t.prefs == nil {
		return
	}
	t.prefs.SetViewportIndex(t.zoom.Index())
	if err := t.prefs.Save(); err != nil {
		t.log.WithError(err).Warn("could not save preferences")
	}
}

// viewportSize returns the zoom size, shrunk to what the terminal can show
func (t *TUIRenderer) viewportSize() int {
	width, height := t.size()
	size := t.zoom.Size()
	if rows := height - hudLines; rows < size {
		size = rows
	}
	// Each tile is two columns wide
	if cols := width / 2; cols < size {
		size = cols
	}
	if size%2 == 0 {
		size--
	}
	if size < 1 {
		size = 1
	}
	return size
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	s, ok := t.styles[style]
	if !ok {
		return text
	}
	return s.Sprint(text)
}

// Frame renders a complete game frame to a string
func (t *TUIRenderer) Frame(g *state.Game) string {
	var b strings.Builder
	hud := renderer.BuildHUD(g)

	b.WriteString(t.StyleText(hud.Level, renderer.StyleNormal))
	b.WriteString("\n\n")

	v := renderer.Camera(g.Player.Position, t.viewportSize(), g.Grid.Size())
	for y := v.Y; y < v.Y+v.Size; y++ {
		for x := v.X; x < v.X+v.Size; x++ {
			b.WriteString(t.renderCell(g, x, y))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	b.WriteString(t.StyleText(hud.ObjectiveTitle+": ", renderer.StyleSubtle))
	swatch := renderer.StyleKey
	if !g.Door.Locked {
		swatch = renderer.StyleDoorUnlocked
	}
	b.WriteString(t.StyleText(hud.Objective, swatch))
	b.WriteString("\n\n")

	b.WriteString(t.StyleText(hud.ControlsTitle, renderer.StyleSubtle))
	b.WriteByte('\n')
	for _, line := range hud.Controls {
		b.WriteString("  " + line + "\n")
	}
	b.WriteByte('\n')

	for _, msg := range hud.Messages {
		b.WriteString("- " + msg + "\n")
	}
	return b.String()
}

// renderCell returns the glyph for board cell (x, y)
func (t *TUIRenderer) renderCell(g *state.Game, x, y int) string {
	if g.Player.X == x && g.Player.Y == y {
		return t.StyleText(PlayerIcon, renderer.StylePlayer)
	}

	tag, err := g.Grid.Get(x, y)
	if err != nil {
		return " "
	}
	style := renderer.StyleFor(tag)
	switch style {
	case renderer.StyleFloor:
		return t.StyleText(IconFloor, style)
	case renderer.StyleKey:
		return t.StyleText(IconKey, style)
	case renderer.StyleDoorLocked:
		return t.StyleText(IconDoorLocked, style)
	case renderer.StyleDoorUnlocked:
		return t.StyleText(IconDoorUnlocked, style)
	default:
		return t.StyleText(IconWall, style)
	}
}
