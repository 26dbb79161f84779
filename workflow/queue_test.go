// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package workflow

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowbridge/flowbridge/common/failure"
)

func TestQueueWriteRead(t *testing.T) {
	q := NewQueue(1, 4)

	isFull, err := q.Write([]byte("first"), false)
	require.NoError(t, err)
	assert.False(t, isFull)

	data, isClosed, err := q.Read(time.Second)
	require.NoError(t, err)
	assert.False(t, isClosed)
	assert.Equal(t, []byte("first"), data)
}

func TestQueueDefaultCapacity(t *testing.T) {
	assert.Equal(t, int32(DefaultQueueCapacity), NewQueue(1, 0).Capacity())
	assert.Equal(t, int32(DefaultQueueCapacity), NewQueue(1, -5).Capacity())
	assert.Equal(t, int32(16), NewQueue(1, 16).Capacity())
}

func TestQueueWriteCopiesData(t *testing.T) {
	q := NewQueue(1, 4)

	buf := []byte("original")
	_, err := q.Write(buf, false)
	require.NoError(t, err)
	buf[0] = 'X'

	data, _, err := q.Read(time.Second)
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), data)
}

func TestQueueNonBlockingWriteWhenFull(t *testing.T) {
	q := NewQueue(1, 2)

	for i := 0; i < 2; i++ {
		isFull, err := q.Write([]byte{byte(i)}, true)
		require.NoError(t, err)
		require.False(t, isFull)
	}

	isFull, err := q.Write([]byte{9}, true)
	require.NoError(t, err)
	assert.True(t, isFull)

	// the rejected chunk was not enqueued
	data, _, err := q.Read(time.Second)
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, data)
}

func TestQueueBlockingWriteWaitsForReader(t *testing.T) {
	q := NewQueue(1, 1)
	_, err := q.Write([]byte("a"), false)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := q.Write([]byte("b"), false)
		assert.NoError(t, err)
	}()

	select {
	case <-done:
		t.Fatal("write must block while the queue is full")
	case <-time.After(20 * time.Millisecond):
	}

	data, _, err := q.Read(time.Second)
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), data)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("write must resume once a slot frees up")
	}
}

func TestQueueReadTimeout(t *testing.T) {
	q := NewQueue(1, 4)

	start := time.Now()
	data, isClosed, err := q.Read(30 * time.Millisecond)
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.False(t, isClosed)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestQueueReadAfterCloseDrainsThenReportsClosed(t *testing.T) {
	q := NewQueue(1, 4)
	_, err := q.Write([]byte("left behind"), false)
	require.NoError(t, err)

	q.Close()
	assert.True(t, q.IsClosed())

	data, isClosed, err := q.Read(time.Second)
	require.NoError(t, err)
	assert.False(t, isClosed)
	assert.Equal(t, []byte("left behind"), data)

	data, isClosed, err = q.Read(time.Second)
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.True(t, isClosed)
}

func TestQueueWriteAfterCloseIsError(t *testing.T) {
	q := NewQueue(7, 4)
	q.Close()

	_, err := q.Write([]byte("late"), false)
	require.Error(t, err)
	var closedErr *failure.QueueClosedError
	assert.ErrorAs(t, err, &closedErr)
}

func TestQueueCloseIsIdempotent(t *testing.T) {
	q := NewQueue(1, 4)
	q.Close()
	q.Close()
	assert.True(t, q.IsClosed())
}

func TestQueueCloseUnblocksWaitingReader(t *testing.T) {
	q := NewQueue(1, 4)

	done := make(chan struct{})
	go func() {
		defer close(done)
		data, isClosed, err := q.Read(0)
		assert.NoError(t, err)
		assert.Nil(t, data)
		assert.True(t, isClosed)
	}()

	time.Sleep(10 * time.Millisecond)
	q.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reader must wake up on close")
	}
}

func TestQueueConcurrentWritersLoseNothing(t *testing.T) {
	const writers = 8
	const perWriter = 50

	q := NewQueue(1, 16)

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_, err := q.Write([]byte(fmt.Sprintf("%d/%d", w, i)), false)
				assert.NoError(t, err)
			}
		}(w)
	}

	seen := map[string]bool{}
	for i := 0; i < writers*perWriter; i++ {
		data, isClosed, err := q.Read(time.Second)
		require.NoError(t, err)
		require.False(t, isClosed)
		require.NotNil(t, data)
		seen[string(data)] = true
	}
	wg.Wait()
	assert.Len(t, seen, writers*perWriter)
}
