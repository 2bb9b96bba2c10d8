package render

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Profiler captures a CPU profile and an execution trace when the frame
// rate drops below a threshold
type Profiler struct {
	mu          sync.Mutex
	isProfiling bool
	lastCapture time.Time
	started     time.Time

	dir             string
	threshold       float64
	warmup          time.Duration
	captureCooldown time.Duration
	captureDuration time.Duration

	logger *log.Logger
}

// NewProfiler creates a profiler writing into dir, which is created if missing
func NewProfiler(dir string, logger *log.Logger) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Profiler{
		started:         time.Now(),
		dir:             dir,
		threshold:       45,
		warmup:          3 * time.Second,
		captureCooldown: 10 * time.Second, // Don't capture more than once every 10 seconds
		captureDuration: 5 * time.Second,
		logger:          logger,
	}, nil
}

// Observe checks the current frame rate and starts a capture on a drop
func (p *Profiler) Observe(fps float64, now time.Time, reason string) {
	p.mu.Lock()
	capture := p.shouldCapture(fps, now)
	if capture {
		p.isProfiling = true
		p.lastCapture = now
	}
	p.mu.Unlock()

	if !capture {
		return
	}

	baseName := fmt.Sprintf("fps-drop-%s-%s", now.Format("20060102-150405"), reason)
	p.logger.Printf("FPS drop detected (%.0f FPS), capturing %s", fps, baseName)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()
		if err := p.capture(baseName); err != nil {
			p.logger.Printf("profile capture: %v", err)
			return
		}
		p.logMemStats(baseName)
	}()
}

// shouldCapture reports whether fps is a drop worth profiling. Caller holds mu.
func (p *Profiler) shouldCapture(fps float64, now time.Time) bool {
	if p.isProfiling || fps <= 0 || fps >= p.threshold {
		return false
	}
	if now.Sub(p.started) < p.warmup {
		return false
	}
	return p.lastCapture.IsZero() || now.Sub(p.lastCapture) >= p.captureCooldown
}

// capture records the CPU profile and trace in parallel
func (p *Profiler) capture(baseName string) error {
	var g errgroup.Group
	g.Go(func() error { return p.captureCPUProfile(baseName) })
	g.Go(func() error { return p.captureTrace(baseName) })
	return g.Wait()
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	profilePath := filepath.Join(p.dir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	p.logger.Printf("CPU profile saved to: %s", profilePath)
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	tracePath := filepath.Join(p.dir, baseName+".trace")

	file, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	p.logger.Printf("Trace saved to: %s", tracePath)
	return nil
}

func (p *Profiler) logMemStats(baseName string) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.logger.Printf("%s: alloc %d KB, sys %d KB, gc %d, heap objects %d",
		baseName, m.Alloc/1024, m.Sys/1024, m.NumGC, m.HeapObjects)
	p.logger.Printf("view with: go tool pprof -http=:8080 %s", filepath.Join(p.dir, baseName+".cpu.prof"))
}

// IsProfiling returns whether a capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
