// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/flowbridge/flowbridge/common/failure"
	"github.com/flowbridge/flowbridge/common/log"
	"github.com/flowbridge/flowbridge/common/log/tag"
	"github.com/flowbridge/flowbridge/messages"
)

type (
	dispatcherImpl struct {
		clientId  int64
		requestId int64

		transport Transport
		logger    log.Logger

		// pending is the only structure shared across execution contexts;
		// it must stay safe under concurrent insert/lookup/remove
		mu      sync.Mutex
		pending map[int64]chan messages.Reply
	}
)

func NewDispatcher(transport Transport, logger log.Logger) Dispatcher {
	clientId := nextClientId()
	return &dispatcherImpl{
		clientId:  clientId,
		transport: transport,
		logger:    logger.WithTags(tag.ClientId(clientId)),
		pending:   map[int64]chan messages.Reply{},
	}
}

func (d *dispatcherImpl) ClientId() int64 {
	return d.clientId
}

func (d *dispatcherImpl) Request(ctx context.Context, req messages.Request) (messages.Reply, error) {
	requestId := atomic.AddInt64(&d.requestId, 1)
	req.SetClientId(d.clientId)
	req.SetRequestId(requestId)

	// buffered so that a late reply never blocks the reply router
	waiter := make(chan messages.Reply, 1)
	d.mu.Lock()
	d.pending[requestId] = waiter
	d.mu.Unlock()

	d.logger.Debug("dispatching request",
		tag.MessageType(req.GetType().String()),
		tag.RequestId(requestId),
	)

	if err := d.transport.Send(ctx, req); err != nil {
		d.remove(requestId)
		return nil, err
	}

	select {
	case reply := <-waiter:
		if f := reply.GetError(); f != nil {
			return reply, f.ToError()
		}
		return reply, nil
	case <-ctx.Done():
		d.remove(requestId)
		return nil, &failure.CanceledError{Message: "request canceled: " + req.GetType().String()}
	}
}

func (d *dispatcherImpl) Send(ctx context.Context, m messages.Message) error {
	if m.GetClientId() == 0 {
		m.SetClientId(d.clientId)
	}
	return d.transport.Send(ctx, m)
}

func (d *dispatcherImpl) HandleReply(reply messages.Reply) error {
	requestId := reply.GetRequestId()

	d.mu.Lock()
	waiter, ok := d.pending[requestId]
	if ok {
		delete(d.pending, requestId)
	}
	d.mu.Unlock()

	if !ok {
		err := failure.NewProtocolError("unmatched reply %v for request %d",
			reply.GetType(), requestId)
		d.logger.Error("dropping unmatched reply",
			tag.MessageType(reply.GetType().String()),
			tag.RequestId(requestId),
			tag.Error(err),
		)
		return err
	}

	waiter <- reply
	return nil
}

func (d *dispatcherImpl) remove(requestId int64) {
	d.mu.Lock()
	delete(d.pending, requestId)
	d.mu.Unlock()
}
