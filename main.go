package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"mazerunner/pkg/game/config"
	"mazerunner/pkg/game/devtools"
	"mazerunner/pkg/game/events"
	"mazerunner/pkg/game/gameplay"
	"mazerunner/pkg/game/generator"
	"mazerunner/pkg/game/i18n"
	"mazerunner/pkg/game/prefs"
	"mazerunner/pkg/game/renderer"
	ebitenrenderer "mazerunner/pkg/game/renderer/ebiten"
	"mazerunner/pkg/game/renderer/tui"
	"mazerunner/pkg/game/state"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	rendererName := flag.String("renderer", "", "display backend: ebiten or tui")
	generatorName := flag.String("generator", "", "level generator: blocks or bsp")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error")
	lang := flag.String("lang", "", "interface language, remembered for later runs")
	dump := flag.Bool("dump", false, "print one generated level as ASCII and exit")
	devMap := flag.Bool("devmap", false, "start on the fixed developer map")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalln(err)
	}
	applyFlags(cfg, *rendererName, *generatorName, *seed, *logLevel)
	if err := cfg.Validate(); err != nil {
		log.Fatalln(err)
	}

	logger := newLogger(cfg.Log.Level)
	store, err := prefs.Open(prefs.Preferences{ViewportIndex: cfg.Display.ViewportIndex}, logger)
	if err != nil {
		logger.WithError(err).Warn("preferences will not be saved")
	}
	language, changed := store.ResolveLanguage(*lang, cfg.Display.Language)
	cfg.Display.Language = language
	if changed {
		if err := store.Save(); err != nil {
			logger.WithError(err).Warn("could not save preferences")
		}
	}
	if err := i18n.Load(cfg.Display.Language); err != nil {
		logger.WithError(err).Warn("translations unavailable, showing message keys")
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	logger.WithFields(log.Fields{
		"seed":      cfg.Seed,
		"generator": cfg.Generator,
		"size":      cfg.Board.Size,
	}).Info("starting")

	gen, err := generator.ByName(cfg.Generator, cfg.Board.Params(), rng)
	if err != nil {
		logger.Fatalln(err)
	}
	g, err := state.NewGame(cfg.Board.Size)
	if err != nil {
		logger.Fatalln(err)
	}
	engine := gameplay.NewEngine(g, gen, events.NewLogSink(logger))
	if err := engine.Start(); err != nil {
		logger.Fatalln(err)
	}
	if *devMap {
		if err := devtools.SwitchToDevMap(g); err != nil {
			logger.Fatalln(err)
		}
	}

	if *dump {
		devtools.DumpLevel(os.Stdout, g, gen.Name(), cfg.Seed)
		return
	}

	zoom := renderer.NewZoom(cfg.Display.Viewports, store.Get().ViewportIndex)

	r := newRenderer(cfg, zoom, store, logger)
	if err := r.Run(engine); err != nil {
		logger.Fatalln(err)
	}
	logger.WithField("game_level", g.Level).Info("bye")
}

// applyFlags overrides file settings with any flags that were set
func applyFlags(cfg *config.Config, rendererName, generatorName string, seed int64, logLevel string) {
	if rendererName != "" {
		cfg.Display.Renderer = rendererName
	}
	if generatorName != "" {
		cfg.Generator = generatorName
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
}

// newLogger builds the process logger. The text renderer owns stdout, so logs go to stderr.
func newLogger(level string) *log.Logger {
	logger := log.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using info\n", level)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

func newRenderer(cfg *config.Config, zoom *renderer.Zoom, store *prefs.Store, logger *log.Logger) renderer.Renderer {
	if cfg.Display.Renderer == "tui" {
		return tui.New(tui.Options{Zoom: zoom, Prefs: store, Log: logger})
	}
	return ebitenrenderer.New(ebitenrenderer.Options{
		ScreenWidth: cfg.Display.ScreenWidth,
		MenuHeight:  cfg.Display.MenuHeight,
		Zoom:        zoom,
		Prefs:       store,
		Log:         logger,
	})
}
