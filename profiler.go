package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	errProfileCooldown = errors.New("capture on cooldown")
	errProfileBusy     = errors.New("already profiling")
)

// Profiler captures a CPU profile and an execution trace when the frame rate drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
	log             *zap.Logger
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, logger *zap.Logger) *Profiler {
	return &Profiler{
		captureCooldown: profileCooldown,
		captureDuration: profileCaptureWindow,
		profilesDir:     dir,
		log:             logger,
	}
}

// Capture starts a background capture tagged with reason.
// It refuses while a capture is running or during the cooldown after the last one.
func (p *Profiler) Capture(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return errProfileBusy
	}
	if since := time.Since(p.lastCaptureTime); since < p.captureCooldown {
		return fmt.Errorf("%w: last capture %v ago", errProfileCooldown, since)
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return fmt.Errorf("create profiles dir: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("fps-drop-%s-%s", p.lastCaptureTime.Format("20060102-150405"), reason)

	// Capture in a goroutine to avoid blocking the game
	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var g errgroup.Group
		g.Go(func() error { return p.captureCPUProfile(baseName) })
		g.Go(func() error { return p.captureTrace(baseName) })
		if err := g.Wait(); err != nil {
			p.log.Warn("profile capture failed", zap.String("reason", reason), zap.Error(err))
			return
		}

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		p.log.Info("profile captured",
			zap.String("reason", reason),
			zap.String("cpu_profile", filepath.Join(p.profilesDir, baseName+".cpu.prof")),
			zap.Uint64("heap_alloc_kb", m.HeapAlloc/1024),
			zap.Uint32("num_gc", m.NumGC),
		)
	}()
	return nil
}

// IsProfiling reports whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	f, err := os.Create(filepath.Join(p.profilesDir, baseName+".cpu.prof"))
	if err != nil {
		return fmt.Errorf("create profile file: %w", err)
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("start cpu profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	f, err := os.Create(filepath.Join(p.profilesDir, baseName+".trace"))
	if err != nil {
		return fmt.Errorf("create trace file: %w", err)
	}
	defer f.Close()

	if err := trace.Start(f); err != nil {
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()
	return nil
}
