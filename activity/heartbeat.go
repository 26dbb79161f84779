// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package activity

import (
	"sync"
	"time"

	"github.com/flowbridge/flowbridge/common/clock"
	"github.com/flowbridge/flowbridge/common/failure"
)

type (
	// heartbeatRecorder debounces heartbeat traffic for one activity
	// invocation. A heartbeat inside the debounce window is dropped
	// before its details are even produced; the producer runs only for
	// heartbeats that actually record.
	heartbeatRecorder struct {
		timeSource clock.TimeSource
		window     time.Duration

		mu   sync.Mutex
		last time.Time
		open bool
	}
)

// newHeartbeatRecorder derives the debounce window: an explicit interval
// wins, otherwise half the activity's heartbeat timeout
func newHeartbeatRecorder(timeSource clock.TimeSource, heartbeatTimeout, interval time.Duration) *heartbeatRecorder {
	window := interval
	if window <= 0 {
		window = heartbeatTimeout / 2
	}
	if window < 0 {
		window = 0
	}
	return &heartbeatRecorder{
		timeSource: timeSource,
		window:     window,
	}
}

// begin reports whether a heartbeat may record now and opens the
// producer gate if so
func (r *heartbeatRecorder) begin() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.timeSource.Now()
	if !r.last.IsZero() && now.Sub(r.last) < r.window {
		return false
	}
	r.last = now
	r.open = true
	return true
}

func (r *heartbeatRecorder) end() {
	r.mu.Lock()
	r.open = false
	r.mu.Unlock()
}

// produce runs the lazy details producer. Running it while the recorder
// is debounced is a defect, not a recoverable condition.
func (r *heartbeatRecorder) produce(fn func() []byte) []byte {
	r.mu.Lock()
	open := r.open
	r.mu.Unlock()
	if !open {
		panic(failure.NewProtocolError("heartbeat details producer invoked while debounced"))
	}
	if fn == nil {
		return nil
	}
	return fn()
}
