// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowbridge/flowbridge/common/failure"
	"github.com/flowbridge/flowbridge/common/log"
	"github.com/flowbridge/flowbridge/messages"
)

type fakeTransport struct {
	mu     sync.Mutex
	sent   []messages.Message
	onSend func(m messages.Message)
	err    error
}

func (t *fakeTransport) Send(ctx context.Context, m messages.Message) error {
	t.mu.Lock()
	t.sent = append(t.sent, m)
	onSend := t.onSend
	err := t.err
	t.mu.Unlock()
	if err != nil {
		return err
	}
	if onSend != nil {
		onSend(m)
	}
	return nil
}

func (t *fakeTransport) sentCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sent)
}

// echoTransport answers every request with its paired reply type
func echoTransport(dispatcher *Dispatcher, populate func(req messages.Request, reply messages.Reply)) *fakeTransport {
	t := &fakeTransport{}
	t.onSend = func(m messages.Message) {
		req, ok := m.(messages.Request)
		if !ok {
			return
		}
		paired, err := messages.NewForType(req.GetReplyType())
		if err != nil {
			return
		}
		reply := paired.(messages.Reply)
		reply.SetClientId(req.GetClientId())
		reply.SetRequestId(req.GetRequestId())
		if populate != nil {
			populate(req, reply)
		}
		d := *dispatcher
		go func() { _ = d.HandleReply(reply) }()
	}
	return t
}

func TestRequestReplyCorrelation(t *testing.T) {
	var dispatcher Dispatcher
	transport := echoTransport(&dispatcher, nil)
	dispatcher = NewDispatcher(transport, log.NewNoopLogger())

	req := messages.NewWorkflowSleepRequest()
	req.SetDuration(time.Second)

	reply, err := dispatcher.Request(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, messages.WorkflowSleepReplyType, reply.GetType())
	assert.Equal(t, req.GetRequestId(), reply.GetRequestId())

	// the dispatcher stamped non-zero correlation ids before sending
	assert.NotZero(t, req.GetClientId())
	assert.NotZero(t, req.GetRequestId())
	assert.Equal(t, dispatcher.ClientId(), req.GetClientId())
}

func TestRequestIdsAreMonotonic(t *testing.T) {
	var dispatcher Dispatcher
	transport := echoTransport(&dispatcher, nil)
	dispatcher = NewDispatcher(transport, log.NewNoopLogger())

	var previous int64
	for i := 0; i < 5; i++ {
		req := messages.NewHeartbeatRequest()
		_, err := dispatcher.Request(context.Background(), req)
		require.NoError(t, err)
		assert.Greater(t, req.GetRequestId(), previous)
		previous = req.GetRequestId()
	}
}

func TestClientIdsAreDistinct(t *testing.T) {
	a := NewDispatcher(&fakeTransport{}, log.NewNoopLogger())
	b := NewDispatcher(&fakeTransport{}, log.NewNoopLogger())

	assert.NotZero(t, a.ClientId())
	assert.NotZero(t, b.ClientId())
	assert.NotEqual(t, a.ClientId(), b.ClientId())
}

func TestRemoteFailureIsReRaised(t *testing.T) {
	var dispatcher Dispatcher
	transport := echoTransport(&dispatcher, func(req messages.Request, reply messages.Reply) {
		reply.SetError(&failure.Failure{
			Reason:  "example.com/billing.InsufficientFundsError",
			Message: "balance too low",
		})
	})
	dispatcher = NewDispatcher(transport, log.NewNoopLogger())

	_, err := dispatcher.Request(context.Background(), messages.NewActivityExecuteRequest())
	require.Error(t, err)

	var activityErr *failure.ActivityError
	require.ErrorAs(t, err, &activityErr)
	assert.Equal(t, "example.com/billing.InsufficientFundsError", activityErr.Reason())
}

func TestUnmatchedReplyIsProtocolError(t *testing.T) {
	dispatcher := NewDispatcher(&fakeTransport{}, log.NewNoopLogger())

	reply := messages.NewWorkflowSleepReply()
	reply.SetRequestId(9999)

	err := dispatcher.HandleReply(reply)
	require.Error(t, err)
	var protocolErr *failure.ProtocolError
	assert.ErrorAs(t, err, &protocolErr)
}

func TestRequestCanceledRemovesPendingEntry(t *testing.T) {
	// transport that never replies
	dispatcher := NewDispatcher(&fakeTransport{}, log.NewNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	req := messages.NewWorkflowSleepRequest()
	_, err := dispatcher.Request(ctx, req)
	require.Error(t, err)
	var canceledErr *failure.CanceledError
	assert.ErrorAs(t, err, &canceledErr)

	// the waiter is gone; a late reply is unmatched
	late := messages.NewWorkflowSleepReply()
	late.SetRequestId(req.GetRequestId())
	err = dispatcher.HandleReply(late)
	var protocolErr *failure.ProtocolError
	assert.ErrorAs(t, err, &protocolErr)
}

func TestTransportFailureRemovesPendingEntry(t *testing.T) {
	transport := &fakeTransport{err: errors.New("connection refused")}
	dispatcher := NewDispatcher(transport, log.NewNoopLogger())

	req := messages.NewHeartbeatRequest()
	_, err := dispatcher.Request(context.Background(), req)
	require.Error(t, err)

	late := messages.NewHeartbeatReply()
	late.SetRequestId(req.GetRequestId())
	var protocolErr *failure.ProtocolError
	assert.ErrorAs(t, dispatcher.HandleReply(late), &protocolErr)
}

func TestSendStampsClientId(t *testing.T) {
	transport := &fakeTransport{}
	dispatcher := NewDispatcher(transport, log.NewNoopLogger())

	reply := messages.NewWorkflowInvokeReply()
	require.NoError(t, dispatcher.Send(context.Background(), reply))
	assert.Equal(t, dispatcher.ClientId(), reply.GetClientId())
	assert.Equal(t, 1, transport.sentCount())
}
