// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowbridge/flowbridge/common/failure"
	"github.com/flowbridge/flowbridge/common/log"
	"github.com/flowbridge/flowbridge/common/types"
	"github.com/flowbridge/flowbridge/messages"
)

func newTestClient(populate func(req messages.Request, reply messages.Reply)) (*Client, *fakeTransport) {
	var dispatcher Dispatcher
	transport := echoTransport(&dispatcher, populate)
	dispatcher = NewDispatcher(transport, log.NewNoopLogger())
	return NewClient(dispatcher, "default-tq", log.NewNoopLogger()), transport
}

func TestClientHandshake(t *testing.T) {
	c, transport := newTestClient(nil)

	require.NoError(t, c.Initialize(context.Background(), "0.0.0.0", 7777))
	require.NoError(t, c.Connect(context.Background(), "127.0.0.1:7778", "worker-1", "accounting", 30*time.Second))
	require.NoError(t, c.Terminate(context.Background()))

	transport.mu.Lock()
	defer transport.mu.Unlock()
	require.Len(t, transport.sent, 3)
	assert.Equal(t, messages.InitializeRequestType, transport.sent[0].GetType())
	assert.Equal(t, messages.ConnectRequestType, transport.sent[1].GetType())
	assert.Equal(t, messages.TerminateRequestType, transport.sent[2].GetType())

	initReq := transport.sent[0].(*messages.InitializeRequest)
	assert.Equal(t, "0.0.0.0", *initReq.GetLibraryAddress())
	assert.Equal(t, int32(7777), initReq.GetLibraryPort())
}

func TestExecuteWorkflowReturnsExecution(t *testing.T) {
	c, _ := newTestClient(func(req messages.Request, reply messages.Reply) {
		if executeReply, ok := reply.(*messages.WorkflowExecuteReply); ok {
			executeReply.SetExecution(&types.WorkflowExecution{WorkflowId: "wf-42", RunId: "run-1"})
		}
	})

	execution, err := c.ExecuteWorkflow(
		context.Background(), "order-processor", []byte(`{"orderId":42}`),
		types.StartWorkflowOptions{WorkflowId: "wf-42", TaskQueue: "orders"},
	)
	require.NoError(t, err)
	assert.Equal(t, "wf-42", execution.WorkflowId)
	assert.Equal(t, "run-1", execution.RunId)
}

func TestExecuteWorkflowAppliesDefaultTaskQueue(t *testing.T) {
	c, transport := newTestClient(func(req messages.Request, reply messages.Reply) {
		if executeReply, ok := reply.(*messages.WorkflowExecuteReply); ok {
			executeReply.SetExecution(&types.WorkflowExecution{WorkflowId: "wf-1", RunId: "run-1"})
		}
	})

	_, err := c.ExecuteWorkflow(
		context.Background(), "order-processor", nil,
		types.StartWorkflowOptions{WorkflowId: "wf-1"},
	)
	require.NoError(t, err)

	transport.mu.Lock()
	require.Len(t, transport.sent, 1)
	sent := transport.sent[0].(*messages.WorkflowExecuteRequest)
	transport.mu.Unlock()
	require.NotNil(t, sent.GetOptions())
	assert.Equal(t, "default-tq", sent.GetOptions().TaskQueue)

	// an explicit task queue is never overridden
	_, err = c.ExecuteWorkflow(
		context.Background(), "order-processor", nil,
		types.StartWorkflowOptions{WorkflowId: "wf-1", TaskQueue: "orders"},
	)
	require.NoError(t, err)

	transport.mu.Lock()
	explicit := transport.sent[len(transport.sent)-1].(*messages.WorkflowExecuteRequest)
	transport.mu.Unlock()
	assert.Equal(t, "orders", explicit.GetOptions().TaskQueue)
}

func TestExecuteWorkflowMissingExecutionIsProtocolError(t *testing.T) {
	c, _ := newTestClient(nil)

	_, err := c.ExecuteWorkflow(
		context.Background(), "order-processor", nil, types.StartWorkflowOptions{})
	require.Error(t, err)
	var protocolErr *failure.ProtocolError
	assert.ErrorAs(t, err, &protocolErr)
}

func TestGetWorkflowResult(t *testing.T) {
	c, _ := newTestClient(func(req messages.Request, reply messages.Reply) {
		if resultReply, ok := reply.(*messages.WorkflowGetResultReply); ok {
			resultReply.SetResult([]byte("Hello Jeff!"))
		}
	})

	result, err := c.GetWorkflowResult(
		context.Background(), types.WorkflowExecution{WorkflowId: "wf-42", RunId: "run-1"})
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello Jeff!"), result)
}

func TestQueryWorkflow(t *testing.T) {
	c, transport := newTestClient(func(req messages.Request, reply messages.Reply) {
		if queryReply, ok := reply.(*messages.WorkflowQueryReply); ok {
			queryReply.SetResult([]byte("3 orders pending"))
		}
	})

	result, err := c.QueryWorkflow(
		context.Background(), types.WorkflowExecution{WorkflowId: "wf-42"}, "pending-orders", nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("3 orders pending"), result)

	transport.mu.Lock()
	defer transport.mu.Unlock()
	queryReq := transport.sent[0].(*messages.WorkflowQueryRequest)
	assert.Equal(t, "pending-orders", *queryReq.GetQueryName())
}

func TestCancelRequest(t *testing.T) {
	c, transport := newTestClient(func(req messages.Request, reply messages.Reply) {
		if cancelReply, ok := reply.(*messages.CancelReply); ok {
			cancelReply.SetWasCancelled(true)
		}
	})

	wasCancelled, err := c.CancelRequest(context.Background(), 55)
	require.NoError(t, err)
	assert.True(t, wasCancelled)

	transport.mu.Lock()
	defer transport.mu.Unlock()
	cancelReq := transport.sent[0].(*messages.CancelRequest)
	assert.Equal(t, int64(55), cancelReq.GetTargetRequestId())
}

func TestCompleteActivityByIdCarriesFailure(t *testing.T) {
	c, transport := newTestClient(nil)

	err := c.CompleteActivityById(
		context.Background(),
		types.WorkflowExecution{WorkflowId: "wf-42", RunId: "run-1"},
		"act-7", nil, errors.New("downstream unavailable"),
	)
	require.NoError(t, err)

	transport.mu.Lock()
	defer transport.mu.Unlock()
	completeReq := transport.sent[0].(*messages.ActivityCompleteRequest)
	assert.Equal(t, "act-7", *completeReq.GetActivityId())
	require.NotNil(t, completeReq.GetCompletionError())
	assert.Equal(t, "downstream unavailable", completeReq.GetCompletionError().Message)
}

func TestCompleteActivityByTokenSuccessHasNoFailure(t *testing.T) {
	c, transport := newTestClient(nil)

	err := c.CompleteActivityByToken(
		context.Background(), []byte("token-9"), []byte("Hello World!"), nil)
	require.NoError(t, err)

	transport.mu.Lock()
	defer transport.mu.Unlock()
	completeReq := transport.sent[0].(*messages.ActivityCompleteRequest)
	assert.Equal(t, []byte("token-9"), completeReq.GetTaskToken())
	assert.Equal(t, []byte("Hello World!"), completeReq.GetResult())
	assert.Nil(t, completeReq.GetCompletionError())
}

func TestRecordActivityHeartbeatByToken(t *testing.T) {
	c, transport := newTestClient(nil)

	err := c.RecordActivityHeartbeatByToken(
		context.Background(), []byte("token-9"), []byte("progress: 40%"))
	require.NoError(t, err)

	transport.mu.Lock()
	defer transport.mu.Unlock()
	heartbeatReq := transport.sent[0].(*messages.ActivityRecordHeartbeatRequest)
	assert.Equal(t, []byte("token-9"), heartbeatReq.GetTaskToken())
	assert.Equal(t, []byte("progress: 40%"), heartbeatReq.GetDetails())
}
