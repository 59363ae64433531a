package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// PerformanceMonitor tracks timing and activity of the input pipeline
type PerformanceMonitor struct {
	// Tick metrics
	tickCount atomic.Uint64
	tickTime  atomic.Uint64 // nanoseconds, last tick

	// Resolution metrics
	resolveTime    atomic.Uint64 // nanoseconds, last device step
	actorsResolved atomic.Uint64
	parallelTicks  atomic.Uint64

	// Action activity
	justPressed  atomic.Uint64
	justReleased atomic.Uint64
	injections   atomic.Uint64

	// Statistics
	mutex        sync.RWMutex
	totalTicks   time.Duration
	peakTickTime time.Duration
	startTime    time.Time

	// Configuration
	enableDetailed bool
	tickBudget     time.Duration
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{
		startTime:      time.Now(),
		enableDetailed: true,
		tickBudget:     time.Millisecond,
	}
}

// TickTimer measures one full pipeline tick
type TickTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartTick begins tick timing
func (pm *PerformanceMonitor) StartTick() *TickTimer {
	return &TickTimer{monitor: pm, startTime: time.Now()}
}

// EndTick completes tick timing
func (tt *TickTimer) EndTick() {
	elapsed := time.Since(tt.startTime)
	tt.monitor.tickTime.Store(uint64(elapsed.Nanoseconds()))
	tt.monitor.tickCount.Add(1)

	if tt.monitor.enableDetailed {
		tt.monitor.mutex.Lock()
		tt.monitor.totalTicks += elapsed
		if elapsed > tt.monitor.peakTickTime {
			tt.monitor.peakTickTime = elapsed
		}
		tt.monitor.mutex.Unlock()
	}
}

// ResolveTimer measures the device resolution step
type ResolveTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartResolve begins resolution timing
func (pm *PerformanceMonitor) StartResolve() *ResolveTimer {
	return &ResolveTimer{monitor: pm, startTime: time.Now()}
}

// EndResolve completes resolution timing for actors resolved actors
func (rt *ResolveTimer) EndResolve(actors int, parallel bool) {
	rt.monitor.resolveTime.Store(uint64(time.Since(rt.startTime).Nanoseconds()))
	rt.monitor.actorsResolved.Add(uint64(actors))
	if parallel {
		rt.monitor.parallelTicks.Add(1)
	}
}

// RecordEdges adds the number of rising and falling edges seen in a tick
func (pm *PerformanceMonitor) RecordEdges(pressed, released int) {
	pm.justPressed.Add(uint64(pressed))
	pm.justReleased.Add(uint64(released))
}

// RecordInjection counts one press coming from an injection source
func (pm *PerformanceMonitor) RecordInjection() {
	pm.injections.Add(1)
}

// PipelineMetrics is a snapshot of the monitor counters
type PipelineMetrics struct {
	Ticks          uint64
	LastTickTime   time.Duration
	LastResolve    time.Duration
	ActorsResolved uint64
	ParallelTicks  uint64
	JustPressed    uint64
	JustReleased   uint64
	Injections     uint64
}

// GetCurrentMetrics returns current pipeline metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() PipelineMetrics {
	return PipelineMetrics{
		Ticks:          pm.tickCount.Load(),
		LastTickTime:   time.Duration(pm.tickTime.Load()),
		LastResolve:    time.Duration(pm.resolveTime.Load()),
		ActorsResolved: pm.actorsResolved.Load(),
		ParallelTicks:  pm.parallelTicks.Load(),
		JustPressed:    pm.justPressed.Load(),
		JustReleased:   pm.justReleased.Load(),
		Injections:     pm.injections.Load(),
	}
}

// AverageTickTime returns the mean tick duration
func (pm *PerformanceMonitor) AverageTickTime() time.Duration {
	ticks := pm.tickCount.Load()
	if ticks == 0 {
		return 0
	}
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()
	return pm.totalTicks / time.Duration(ticks)
}

// GetDetailedStats returns detailed performance statistics
func (pm *PerformanceMonitor) GetDetailedStats() map[string]interface{} {
	avg := pm.AverageTickTime()

	pm.mutex.RLock()
	defer pm.mutex.RUnlock()

	return map[string]interface{}{
		"uptime_seconds":       time.Since(pm.startTime).Seconds(),
		"tick_count":           pm.tickCount.Load(),
		"last_tick_time_us":    float64(pm.tickTime.Load()) / 1000,
		"avg_tick_time_us":     float64(avg.Nanoseconds()) / 1000,
		"peak_tick_time_us":    float64(pm.peakTickTime.Nanoseconds()) / 1000,
		"last_resolve_time_us": float64(pm.resolveTime.Load()) / 1000,
		"actors_resolved":      pm.actorsResolved.Load(),
		"parallel_ticks":       pm.parallelTicks.Load(),
		"just_pressed":         pm.justPressed.Load(),
		"just_released":        pm.justReleased.Load(),
		"injections":           pm.injections.Load(),
		"cpu_cores":            runtime.NumCPU(),
		"goroutines":           runtime.NumGoroutine(),
	}
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

// CheckPerformanceAlerts returns an alert when the last tick exceeded the budget
func (pm *PerformanceMonitor) CheckPerformanceAlerts() []PerformanceAlert {
	alerts := make([]PerformanceAlert, 0)

	pm.mutex.RLock()
	budget := pm.tickBudget
	pm.mutex.RUnlock()

	if last := time.Duration(pm.tickTime.Load()); budget > 0 && last > budget {
		alerts = append(alerts, PerformanceAlert{
			Type:      "slow_tick",
			Message:   "Input pipeline tick exceeded its time budget",
			Value:     float64(last.Microseconds()),
			Threshold: float64(budget.Microseconds()),
			Timestamp: time.Now(),
		})
	}

	return alerts
}

// SetTickBudget sets the tick duration above which an alert is raised
func (pm *PerformanceMonitor) SetTickBudget(budget time.Duration) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()
	pm.tickBudget = budget
}

// EnableDetailedLogging enables/disables average and peak tracking
func (pm *PerformanceMonitor) EnableDetailedLogging(enabled bool) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()
	pm.enableDetailed = enabled
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.tickCount.Store(0)
	pm.tickTime.Store(0)
	pm.resolveTime.Store(0)
	pm.actorsResolved.Store(0)
	pm.parallelTicks.Store(0)
	pm.justPressed.Store(0)
	pm.justReleased.Store(0)
	pm.injections.Store(0)

	pm.mutex.Lock()
	pm.totalTicks = 0
	pm.peakTickTime = 0
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}
