package game

import (
	"errors"
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
)

// FrameMonitor computes the frame rate over half-second windows and reports
// drops below a threshold. The first few seconds are ignored while the
// window and assets settle.
type FrameMonitor struct {
	threshold float64
	started   time.Time
	warmup    time.Duration

	windowStart time.Time
	frames      int
	fps         float64
}

// NewFrameMonitor creates a monitor that starts measuring at now
func NewFrameMonitor(threshold float64, now time.Time) *FrameMonitor {
	return &FrameMonitor{
		threshold:   threshold,
		started:     now,
		warmup:      3 * time.Second,
		windowStart: now,
	}
}

// Tick records one frame. It returns the latest measured FPS and whether a
// drop was detected at the end of a measurement window.
func (m *FrameMonitor) Tick(now time.Time) (float64, bool) {
	m.frames++
	elapsed := now.Sub(m.windowStart)
	if elapsed < 500*time.Millisecond {
		return m.fps, false
	}

	m.fps = float64(m.frames) / elapsed.Seconds()
	m.frames = 0
	m.windowStart = now

	if now.Sub(m.started) < m.warmup {
		return m.fps, false
	}
	return m.fps, m.fps < m.threshold
}

// Profiler captures a CPU profile and an execution trace side by side when
// asked, at most once per cooldown.
type Profiler struct {
	mu       sync.Mutex
	running  bool
	lastRun  time.Time
	cooldown time.Duration
	dir      string
	length   time.Duration
}

// NewProfiler creates an idle profiler writing into config.Dir
func NewProfiler(config ProfilingConfig) *Profiler {
	return &Profiler{
		cooldown: time.Duration(config.CooldownSeconds * float64(time.Second)),
		dir:      config.Dir,
		length:   time.Duration(config.CaptureSeconds * float64(time.Second)),
	}
}

// fpsDropReason builds the file name suffix for a capture
func fpsDropReason(fps float64, stars, bullets int) string {
	return fmt.Sprintf("fps%.0f-stars%d-bullets%d", fps, stars, bullets)
}

// CaptureProfile captures a CPU profile and an execution trace in the
// CaptureProfile starts an asynchronous capture tagged with reason. It fails
// if a capture is running, the cooldown has not passed, or the output
// directory cannot be created.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	switch {
	case p.running:
		return errors.New("capture already running")
	case !p.lastRun.IsZero() && now.Sub(p.lastRun) < p.cooldown:
		return fmt.Errorf("capture on cooldown, last one %v ago", now.Sub(p.lastRun).Round(time.Millisecond))
	}
	if err := os.MkdirAll(p.dir, 0755); err != nil {
		return fmt.Errorf("failed to create profiles dir %s: %w", p.dir, err)
	}

	p.running = true
	p.lastRun = now
	base := filepath.Join(p.dir, fmt.Sprintf("fps-drop-%s-%s", now.Format("20060102-150405"), reason))

	go p.run(base)
	return nil
}

// run records both outputs for the configured length, then logs a summary
func (p *Profiler) run(base string) {
	defer func() {
		p.mu.Lock()
		p.running = false
		p.mu.Unlock()
	}()

	var wg sync.WaitGroup
	for _, c := range []struct {
		path  string
		start func(io.Writer) error
		stop  func()
	}{
		{base + ".cpu.prof", pprof.StartCPUProfile, pprof.StopCPUProfile},
		{base + ".trace", trace.Start, trace.Stop},
	} {
		c := c
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := p.record(c.path, c.start, c.stop); err != nil {
				log.Printf("[Profiler] %v", err)
				return
			}
			log.Printf("[Profiler] Saved %s", c.path)
		}()
	}
	wg.Wait()

	p.logSummary(base + ".cpu.prof")
}

// record writes one profile kind into path for the capture length
func (p *Profiler) record(path string, start func(io.Writer) error, stop func()) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := start(file); err != nil {
		return fmt.Errorf("failed to start %s: %w", filepath.Base(path), err)
	}
	time.Sleep(p.length)
	stop()
	return nil
}

// logSummary reports the profile size and the heap at the end of a capture
func (p *Profiler) logSummary(profilePath string) {
	info, err := os.Stat(profilePath)
	if err != nil {
		log.Printf("[Profiler] Warning: could not inspect profile: %v", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("[Profiler] %s is %.1f KB; inspect with go tool pprof -http=:8080 %s",
		filepath.Base(profilePath), float64(info.Size())/1024, profilePath)
	log.Printf("[Profiler] heap %d KB in %d objects after %d GCs", m.HeapAlloc/1024, m.HeapObjects, m.NumGC)
}

// IsProfiling reports whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}
