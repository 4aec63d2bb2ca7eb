package game

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"sync"
	"time"
)

// lowFPSThreshold is the frame rate below which a profile capture triggers.
const lowFPSThreshold = 30.0

// Profiler captures a CPU profile automatically when the frame rate drops,
// so stutters can be diagnosed from the field without reproducing them under
// a debugger. Captures are rate limited and run off the frame loop.
type Profiler struct {
	mu          sync.Mutex
	capturing   bool
	lastCapture time.Time

	cooldown time.Duration
	duration time.Duration
	dir      string
}

// NewProfiler creates a profiler writing into the profiles directory.
func NewProfiler() *Profiler {
	return &Profiler{
		cooldown: 30 * time.Second,
		duration: 5 * time.Second,
		dir:      "profiles",
	}
}

// Capture records a CPU profile in the background. It is a no-op while a
// capture is running or the cooldown since the last one has not elapsed.
func (p *Profiler) Capture(reason string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.capturing || time.Since(p.lastCapture) < p.cooldown {
		return
	}
	p.capturing = true
	p.lastCapture = time.Now()

	name := fmt.Sprintf("%s-%s.cpu.prof", reason, time.Now().Format("20060102-150405"))
	go func() {
		defer func() {
			p.mu.Lock()
			p.capturing = false
			p.mu.Unlock()
		}()
		if err := p.capture(name); err != nil {
			log.Printf("profile capture failed: %v", err)
		}
	}()
}

func (p *Profiler) capture(name string) error {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(p.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return err
	}
	time.Sleep(p.duration)
	pprof.StopCPUProfile()
	log.Printf("cpu profile saved to %s", path)
	return nil
}

// Capturing reports whether a capture is in progress.
func (p *Profiler) Capturing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.capturing
}
