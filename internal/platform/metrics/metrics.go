package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Collector keeps process-wide request counters for the /metrics route.
type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	clientErrors    uint64
	totalDurationMs uint64

	mu     sync.Mutex
	routes map[string]uint64
}

func New() *Collector {
	return &Collector{routes: map[string]uint64{}}
}

func (c *Collector) Record(route string, status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	} else if status >= 400 {
		atomic.AddUint64(&c.clientErrors, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))

	if route == "" {
		return
	}
	c.mu.Lock()
	c.routes[route]++
	c.mu.Unlock()
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	clientErrs := atomic.LoadUint64(&c.clientErrors)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}

	c.mu.Lock()
	routes := make(map[string]uint64, len(c.routes))
	for route, count := range c.routes {
		routes[route] = count
	}
	c.mu.Unlock()

	return map[string]any{
		"requestsTotal":     total,
		"errorsTotal":       errs,
		"clientErrorsTotal": clientErrs,
		"avgDurationMs":     avg,
		"totalDurationMs":   totalMs,
		"routes":            routes,
	}
}
