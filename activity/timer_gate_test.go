// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/flowbridge/flowbridge/common/log"
)

func TestTimerGateFiresAfterReset(t *testing.T) {
	tg := NewLocalTimerGate(log.NewNoopLogger())
	defer tg.Close()

	tg.Reset(20 * time.Millisecond)

	select {
	case <-tg.FireChan():
	case <-time.After(time.Second):
		t.Fatal("gate never fired")
	}
}

func TestTimerGateDoesNotFireBeforeDeadline(t *testing.T) {
	tg := NewLocalTimerGate(log.NewNoopLogger())
	defer tg.Close()

	tg.Reset(time.Hour)

	select {
	case <-tg.FireChan():
		t.Fatal("gate fired an hour early")
	case <-time.After(30 * time.Millisecond):
	}
}

func TestTimerGateResetPushesDeadlineOut(t *testing.T) {
	tg := NewLocalTimerGate(log.NewNoopLogger())
	defer tg.Close()

	tg.Reset(40 * time.Millisecond)
	for i := 0; i < 3; i++ {
		time.Sleep(20 * time.Millisecond)
		tg.Reset(40 * time.Millisecond)
		select {
		case <-tg.FireChan():
			t.Fatal("gate fired despite timely resets")
		default:
		}
	}

	// once the resets stop, the gate fires
	select {
	case <-tg.FireChan():
	case <-time.After(time.Second):
		t.Fatal("gate never fired after the last reset")
	}
}

func TestTimerGateCloseStopsFiring(t *testing.T) {
	tg := NewLocalTimerGate(log.NewNoopLogger())

	tg.Reset(time.Hour)
	tg.Close()
	tg.Close()

	// the fire channel closes rather than delivering a late signal
	select {
	case _, open := <-tg.FireChan():
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("fire channel never closed")
	}
}
