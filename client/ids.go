// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"sync/atomic"
)

// clientIdSeq mints ClientIds across every logical client connection
// multiplexed over one proxy; ids are non-zero by construction
var clientIdSeq int64

func nextClientId() int64 {
	return atomic.AddInt64(&clientIdSeq, 1)
}

type (
	// Identifiers mints the secondary identifiers owned by the client
	// side: context, child, queue and future-operation ids. Each id is
	// non-zero and stays stable for the lifetime of its entity.
	Identifiers struct {
		contextId int64
		childId   int64
		queueId   int64
		futureId  int64
	}
)

func NewIdentifiers() *Identifiers {
	return &Identifiers{}
}

func (ids *Identifiers) NextContextId() int64 {
	return atomic.AddInt64(&ids.contextId, 1)
}

func (ids *Identifiers) NextChildId() int64 {
	return atomic.AddInt64(&ids.childId, 1)
}

func (ids *Identifiers) NextQueueId() int64 {
	return atomic.AddInt64(&ids.queueId, 1)
}

func (ids *Identifiers) NextFutureOperationId() int64 {
	return atomic.AddInt64(&ids.futureId, 1)
}
