// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package workflow

import (
	"sync"
	"time"

	"github.com/flowbridge/flowbridge/common/failure"
)

// DefaultQueueCapacity bounds queues created without an explicit capacity
const DefaultQueueCapacity = 100

type (
	// Queue is a bounded FIFO of opaque byte chunks shared between a
	// workflow context and the proxy. Writers block while the queue is
	// full; readers block up to a timeout while it is empty. Close is
	// idempotent and terminal.
	Queue struct {
		queueId int64

		items  chan []byte
		closed chan struct{}

		closeOnce sync.Once
	}
)

func NewQueue(queueId int64, capacity int32) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Queue{
		queueId: queueId,
		items:   make(chan []byte, capacity),
		closed:  make(chan struct{}),
	}
}

func (q *Queue) QueueId() int64 {
	return q.queueId
}

func (q *Queue) Capacity() int32 {
	return int32(cap(q.items))
}

// Write enqueues a copy of data. A full queue blocks the writer until a
// reader frees a slot or the queue closes; with noBlock set it returns
// isFull=true instead and enqueues nothing. Writing to a closed queue is
// an error.
func (q *Queue) Write(data []byte, noBlock bool) (isFull bool, err error) {
	select {
	case <-q.closed:
		return false, failure.NewQueueClosedError(q.queueId)
	default:
	}

	chunk := make([]byte, len(data))
	copy(chunk, data)

	if noBlock {
		select {
		case q.items <- chunk:
			return false, nil
		case <-q.closed:
			return false, failure.NewQueueClosedError(q.queueId)
		default:
			return true, nil
		}
	}

	select {
	case q.items <- chunk:
		return false, nil
	case <-q.closed:
		return false, failure.NewQueueClosedError(q.queueId)
	}
}

// Read dequeues the next chunk, waiting up to timeout while the queue is
// empty. The three outcomes are disjoint: data on success, (nil, false,
// nil) on timeout, (nil, true, nil) once the queue is closed and drained.
// A timeout <= 0 waits until data arrives or the queue closes.
func (q *Queue) Read(timeout time.Duration) (data []byte, isClosed bool, err error) {
	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case chunk := <-q.items:
		return chunk, false, nil
	case <-expired:
		return nil, false, nil
	case <-q.closed:
		// drain whatever was enqueued before the close
		select {
		case chunk := <-q.items:
			return chunk, false, nil
		default:
			return nil, true, nil
		}
	}
}

func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		close(q.closed)
	})
}

func (q *Queue) IsClosed() bool {
	select {
	case <-q.closed:
		return true
	default:
		return false
	}
}
