// Command headless steps the simulation without a window, driven by seeded random input.
// It is a soak run: any invariant violation ends it with a non-zero exit status.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"asteroids/game"
	"asteroids/internal/logging"

	"go.uber.org/zap"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	configPath := flag.String("config", "", "YAML tuning file (built-in defaults when empty)")
	seed := flag.Int64("seed", 1, "seed for both the simulation and the input script")
	duration := flag.Duration("duration", 10*time.Minute, "simulated time to run")
	fps := flag.Float64("fps", 60, "simulated frames per second")
	recordPath := flag.String("record", "", "write sampled snapshots as a msgpack stream to this file")
	recordEvery := flag.Int("record-every", 60, "sample a snapshot every n frames")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	dev := flag.Bool("dev", false, "human-readable console logs")
	flag.Parse()

	logger, err := logging.New(*logLevel, *dev)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	var out io.Writer
	var file *os.File
	if *recordPath != "" {
		file, err = os.Create(*recordPath)
		if err != nil {
			logger.Error("open recording", zap.Error(err))
			return 1
		}
		out = file
	}

	err = runRecorded(out, *recordEvery, func(rec *recorder) error {
		return run(*configPath, *seed, *duration, *fps, rec, logger)
	})
	if file != nil {
		if cerr := file.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close recording: %w", cerr))
		}
	}
	if err != nil {
		logger.Error("soak failed", zap.Error(err))
		return 1
	}
	return 0
}

// runRecorded calls soakFn with a recorder buffering samples into out, then flushes them.
// out may be nil to only compute the digest.
func runRecorded(out io.Writer, every int, soakFn func(*recorder) error) error {
	if out == nil {
		return soakFn(newRecorder(nil, every))
	}
	w := bufio.NewWriter(out)
	err := soakFn(newRecorder(w, every))
	if ferr := w.Flush(); ferr != nil {
		err = errors.Join(err, fmt.Errorf("flush recording: %w", ferr))
	}
	return err
}

func run(configPath string, seed int64, duration time.Duration, fps float64, rec *recorder, logger *zap.Logger) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %v", fps)
	}

	cfg := game.DefaultConfig()
	if configPath != "" {
		loaded, err := game.LoadConfigFile(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	sim, err := game.New(cfg, rand.New(rand.NewSource(seed)), logger.Named("sim"))
	if err != nil {
		return err
	}

	dt := 1 / fps
	frames := int(duration.Seconds() * fps)
	logger.Info("soak starting",
		zap.Int64("seed", seed),
		zap.Duration("duration", duration),
		zap.Int("frames", frames),
	)

	start := time.Now()
	stats, err := soak(sim, newScript(seed), rec, frames, dt)
	logger.Info("soak finished",
		zap.Uint64("frames", stats.Frames),
		zap.Int("sessions", stats.Sessions),
		zap.Int("best_points", stats.BestPoints),
		zap.Int("max_entities", stats.MaxEntities),
		zap.String("phase", stats.FinalPhase.String()),
		zap.Int("samples", stats.Samples),
		zap.String("digest", fmt.Sprintf("%016x", stats.Digest)),
		zap.Duration("wall_time", time.Since(start)),
	)
	return err
}
