// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package activity

import (
	"sync"
	"time"

	"github.com/flowbridge/flowbridge/common/log"
)

type (
	// TimerGate drives the heartbeat watchdog of one externally-completed
	// activity. Reset pushes the deadline out; FireChan delivers at most
	// one signal once the deadline passes without a Reset.
	TimerGate interface {
		// FireChan returns the firing channel; after a signal the gate is
		// idle until the next Reset
		FireChan() <-chan struct{}
		// Reset reprograms the gate to fire after d
		Reset(d time.Duration)
		// Close shuts the gate down
		Close()
	}

	localTimerGate struct {
		fireChan  chan struct{}
		closeChan chan struct{}
		closeOnce sync.Once

		mu    sync.Mutex
		timer *time.Timer

		logger log.Logger
	}
)

func NewLocalTimerGate(logger log.Logger) TimerGate {
	tg := &localTimerGate{
		fireChan:  make(chan struct{}, 1),
		closeChan: make(chan struct{}),
		timer:     time.NewTimer(0),
		logger:    logger,
	}

	if !tg.timer.Stop() {
		// the timer starts stopped; drain it in case it already fired
		<-tg.timer.C
	}

	go func() {
		defer close(tg.fireChan)
		defer tg.timer.Stop()
	loop:
		for {
			select {
			case <-tg.timer.C:
				select {
				case tg.fireChan <- struct{}{}:
				default:
					// caller has not consumed the previous signal
					logger.Warn("timer gate fire channel is full when sending signal")
				}

			case <-tg.closeChan:
				break loop
			}
		}
	}()

	return tg
}

func (tg *localTimerGate) FireChan() <-chan struct{} {
	return tg.fireChan
}

func (tg *localTimerGate) Reset(d time.Duration) {
	tg.mu.Lock()
	defer tg.mu.Unlock()
	if !tg.timer.Stop() {
		// drain a concurrent fire so Reset wins over it
		select {
		case <-tg.timer.C:
		default:
		}
	}
	tg.timer.Reset(d)
}

func (tg *localTimerGate) Close() {
	tg.closeOnce.Do(func() {
		close(tg.closeChan)
	})
}
