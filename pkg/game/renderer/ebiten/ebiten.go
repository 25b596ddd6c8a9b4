// Package ebiten provides an Ebiten-based 2D graphical renderer for the maze.
package ebiten

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"mazerunner/pkg/game/gameplay"
	"mazerunner/pkg/game/i18n"
	"mazerunner/pkg/game/prefs"
	"mazerunner/pkg/game/renderer"
)

// Options configures an EbitenRenderer
type Options struct {
	ScreenWidth int
	MenuHeight  int
	Zoom        *renderer.Zoom
	Prefs       *prefs.Store
	Log         *logrus.Logger
}

// EbitenRenderer draws the board as coloured tiles with the HUD below it.
// Update and Draw run on Ebiten's game goroutine and are the only callers of the engine.
type EbitenRenderer struct {
	engine *gameplay.Engine

	screenWidth int
	menuHeight  int

	zoom  *renderer.Zoom
	prefs *prefs.Store
	log   *logrus.Entry

	keyRepeatState     map[string]keyRepeatInfo
	windowOpenedLogged bool
}

// keyRepeatInfo tracks when a held key first fired and last repeated
type keyRepeatInfo struct {
	firstPressed int64
	lastRepeat   int64
}

// New creates a new Ebiten renderer
func New(opts Options) *EbitenRenderer {
	if opts.ScreenWidth <= 0 {
		opts.ScreenWidth = 900
	}
	if opts.MenuHeight <= 0 {
		opts.MenuHeight = 125
	}
	if opts.Zoom == nil {
		opts.Zoom = renderer.NewZoom([]int{5, 9, 15, 25, 45}, 1)
	}
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	return &EbitenRenderer{
		screenWidth:    opts.ScreenWidth,
		menuHeight:     opts.MenuHeight,
		zoom:           opts.Zoom,
		prefs:          opts.Prefs,
		log:            opts.Log.WithField("component", "ebiten"),
		keyRepeatState: make(map[string]keyRepeatInfo),
	}
}

// Name returns the renderer name
func (e *EbitenRenderer) Name() string {
	return "ebiten"
}

// screenHeight is the map square plus the menu strip
func (e *EbitenRenderer) screenHeight() int {
	return e.screenWidth + e.menuHeight
}

// Run opens the window and blocks until the player quits or closes it
func (e *EbitenRenderer) Run(engine *gameplay.Engine) error {
	e.engine = engine

	ebiten.SetWindowSize(e.screenWidth, e.screenHeight())
	ebiten.SetWindowTitle(i18n.Get("WINDOW_TITLE"))

	e.log.WithFields(logrus.Fields{
		"width":    e.screenWidth,
		"height":   e.screenHeight(),
		"viewport": e.zoom.Size(),
	}).Info("starting window")

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running ebiten: %w", err)
	}
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.screenWidth, e.screenHeight()
}
