package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"asteroids/game"
	"asteroids/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type options struct {
	configPath string
	seed       int64
	assetsDir  string
	fullscreen bool
	profile    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML tuning file (built-in defaults when empty)")
	flag.Int64Var(&opts.seed, "seed", 0, "random seed; 0 seeds from the clock")
	flag.StringVar(&opts.assetsDir, "assets", "assets", "directory holding sprites and the font")
	flag.BoolVar(&opts.fullscreen, "fullscreen", false, "start in fullscreen")
	flag.BoolVar(&opts.profile, "profile", false, "capture a CPU profile and trace when the frame rate drops")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	dev := flag.Bool("dev", false, "human-readable console logs")
	flag.Parse()

	logger, err := logging.New(*logLevel, *dev)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(opts, logger); err != nil {
		logger.Error("game exited", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(opts options, logger *zap.Logger) error {
	cfg := game.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := game.LoadConfigFile(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting",
		zap.Int64("seed", seed),
		zap.String("config", opts.configPath),
		zap.String("assets", opts.assetsDir),
	)

	sim, err := game.New(cfg, rand.New(rand.NewSource(seed)), logger)
	if err != nil {
		return fmt.Errorf("create simulation: %w", err)
	}

	var profiler *Profiler
	if opts.profile {
		profiler = NewProfiler("profiles", logger)
	}
	l := NewLauncher(sim, opts.assetsDir, profiler, logger)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizable(true)
	ebiten.SetFullscreen(opts.fullscreen)

	return ebiten.RunGame(l)
}
