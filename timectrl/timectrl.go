package timectrl

import (
	"sync"
	"time"
)

// SimClock is an interface for accessing simulation time. Drivers depend
// on this abstraction rather than the concrete controller, which keeps the
// simulation loop testable.
type SimClock interface {
	// Now returns the current simulation time.
	Now() time.Time
}

// Mode describes how the TimeController advances simulation time.
type Mode int

const (
	// RealTime advances according to wall-clock time.
	RealTime Mode = iota
	// Accelerated advances as quickly as the loop can run while still stepping by Tick.
	Accelerated
)

// SpeedMultipliers are the supported playback rates. The multiplier scales
// the simulated seconds delivered per tick, not the tick cadence.
var SpeedMultipliers = []float64{0.25, 0.5, 1.0, 2.0, 4.0}

// TimeController drives simulation time and notifies registered listeners
// with the new time and the scaled step that produced it. It implements
// SimClock.
type TimeController struct {
	mu        sync.RWMutex
	StartTime time.Time
	Tick      time.Duration
	Mode      Mode

	// speed scales each tick's simulated duration.
	speed float64

	// currentTime tracks the current simulation time.
	currentTime time.Time

	listeners []func(simTime time.Time, dt time.Duration)
}

// NewTimeController constructs a controller running at 1x speed.
func NewTimeController(start time.Time, tick time.Duration, mode Mode) *TimeController {
	return &TimeController{
		StartTime:   start,
		Tick:        tick,
		Mode:        mode,
		speed:       1.0,
		currentTime: start,
	}
}

// Now returns the current simulation time. Implements SimClock.
func (tc *TimeController) Now() time.Time {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.currentTime
}

// SetTime jumps the simulation clock to the given instant.
func (tc *TimeController) SetTime(t time.Time) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.currentTime = t
}

// SetSpeed selects a playback rate. Non-positive rates are ignored.
func (tc *TimeController) SetSpeed(multiplier float64) {
	if multiplier <= 0 {
		return
	}
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.speed = multiplier
}

// Speed returns the current playback rate.
func (tc *TimeController) Speed() float64 {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.speed
}

// AddListener registers a callback invoked on every tick with the new
// simulation time and the scaled step.
func (tc *TimeController) AddListener(fn func(simTime time.Time, dt time.Duration)) {
	tc.listeners = append(tc.listeners, fn)
}

// Start runs the controller until the given amount of simulated time has
// elapsed, in a separate goroutine. It returns a channel that is closed
// when the controller finishes. A non-positive duration runs forever.
func (tc *TimeController) Start(duration time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)

		tc.mu.Lock()
		simTime := tc.StartTime
		tc.currentTime = simTime
		tc.mu.Unlock()

		elapsed := time.Duration(0)

		// In both modes we use a ticker for simplicity and determinism;
		// Accelerated simply uses a much shorter wall tick upstream.
		ticker := time.NewTicker(tc.Tick)
		defer ticker.Stop()

		for {
			if duration > 0 && elapsed >= duration {
				return
			}

			<-ticker.C

			tc.mu.RLock()
			speed := tc.speed
			tc.mu.RUnlock()

			step := time.Duration(float64(tc.Tick) * speed)
			simTime = simTime.Add(step)
			elapsed += step

			tc.mu.Lock()
			tc.currentTime = simTime
			tc.mu.Unlock()

			for _, fn := range tc.listeners {
				fn(simTime, step)
			}
		}
	}()
	return done
}
