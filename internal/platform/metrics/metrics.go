package metrics

import (
	"sync/atomic"
	"time"
)

// Collector tracks request and engine counters in process memory.
type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	totalDurationMs uint64
	formsCreated    uint64
	formsSubmitted  uint64
	recomputes      uint64
	movsAttached    uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	if c == nil {
		return
	}
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) FormCreated() {
	if c != nil {
		atomic.AddUint64(&c.formsCreated, 1)
	}
}

func (c *Collector) FormSubmitted() {
	if c != nil {
		atomic.AddUint64(&c.formsSubmitted, 1)
	}
}

func (c *Collector) Recomputed() {
	if c != nil {
		atomic.AddUint64(&c.recomputes, 1)
	}
}

func (c *Collector) MOVsAttached(n int) {
	if c != nil && n > 0 {
		atomic.AddUint64(&c.movsAttached, uint64(n))
	}
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":  total,
		"errorsTotal":    errs,
		"avgDurationMs":  avg,
		"formsCreated":   atomic.LoadUint64(&c.formsCreated),
		"formsSubmitted": atomic.LoadUint64(&c.formsSubmitted),
		"recomputes":     atomic.LoadUint64(&c.recomputes),
		"movsAttached":   atomic.LoadUint64(&c.movsAttached),
	}
}
