// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sync"
	"time"
)

type (
	// TimeSource provides the current time; abstracted so that
	// heartbeat debounce windows can be driven by a manual clock in tests
	TimeSource interface {
		Now() time.Time
	}

	realTimeSource struct{}

	// ManualTimeSource is a TimeSource whose time only moves when
	// Advance or Update is called
	ManualTimeSource struct {
		mu  sync.Mutex
		now time.Time
	}
)

// NewRealTimeSource returns a TimeSource backed by the wall clock
func NewRealTimeSource() TimeSource {
	return &realTimeSource{}
}

func (ts *realTimeSource) Now() time.Time {
	return time.Now()
}

// NewManualTimeSource returns a ManualTimeSource starting at the given time
func NewManualTimeSource(start time.Time) *ManualTimeSource {
	return &ManualTimeSource{now: start}
}

func (ts *ManualTimeSource) Now() time.Time {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.now
}

func (ts *ManualTimeSource) Advance(d time.Duration) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.now = ts.now.Add(d)
}

func (ts *ManualTimeSource) Update(t time.Time) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.now = t
}
