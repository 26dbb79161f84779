// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"time"

	"github.com/flowbridge/flowbridge/common/failure"
	"github.com/flowbridge/flowbridge/common/log"
	"github.com/flowbridge/flowbridge/common/ptr"
	"github.com/flowbridge/flowbridge/common/types"
	"github.com/flowbridge/flowbridge/messages"
)

type (
	// Client is the façade for driving workflow and activity executions
	// on the engine behind the proxy. Several Clients may share one
	// transport; the ClientId keeps their conversations apart.
	Client struct {
		dispatcher Dispatcher
		ids        *Identifiers
		// defaultTaskQueue applies to starts whose options omit one
		defaultTaskQueue string
		logger           log.Logger
	}
)

func NewClient(dispatcher Dispatcher, defaultTaskQueue string, logger log.Logger) *Client {
	return &Client{
		dispatcher:       dispatcher,
		ids:              NewIdentifiers(),
		defaultTaskQueue: defaultTaskQueue,
		logger:           logger,
	}
}

func (c *Client) Dispatcher() Dispatcher {
	return c.dispatcher
}

func (c *Client) Identifiers() *Identifiers {
	return c.ids
}

// Initialize tells the proxy where this library listens so that
// proxy-initiated requests can be routed back
func (c *Client) Initialize(ctx context.Context, libraryAddress string, libraryPort int32) error {
	req := messages.NewInitializeRequest()
	req.SetLibraryAddress(ptr.Any(libraryAddress))
	req.SetLibraryPort(libraryPort)

	_, err := c.dispatcher.Request(ctx, req)
	return err
}

// Connect establishes the logical connection to the engine behind the proxy
func (c *Client) Connect(ctx context.Context, endpoints, identity, namespace string, timeout time.Duration) error {
	req := messages.NewConnectRequest()
	req.SetEndpoints(ptr.Any(endpoints))
	req.SetIdentity(ptr.Any(identity))
	req.SetNamespace(ptr.Any(namespace))
	req.SetClientTimeout(timeout)

	_, err := c.dispatcher.Request(ctx, req)
	return err
}

// Terminate releases the proxy-side resources held for this client
func (c *Client) Terminate(ctx context.Context) error {
	_, err := c.dispatcher.Request(ctx, messages.NewTerminateRequest())
	return err
}

// ExecuteWorkflow starts a top-level workflow and returns its execution
// identity without waiting for the result
func (c *Client) ExecuteWorkflow(
	ctx context.Context, workflow string, args []byte, options types.StartWorkflowOptions,
) (*types.WorkflowExecution, error) {
	if options.TaskQueue == "" {
		options.TaskQueue = c.defaultTaskQueue
	}

	req := messages.NewWorkflowExecuteRequest()
	req.SetWorkflow(ptr.Any(workflow))
	req.SetArgs(args)
	req.SetNamespace(ptr.Any(options.Namespace))
	req.SetOptions(&options)

	reply, err := c.dispatcher.Request(ctx, req)
	if err != nil {
		return nil, err
	}
	executeReply, ok := reply.(*messages.WorkflowExecuteReply)
	if !ok {
		return nil, failure.NewProtocolError("unexpected reply %v to WorkflowExecuteRequest", reply.GetType())
	}
	execution := executeReply.GetExecution()
	if execution == nil {
		return nil, failure.NewProtocolError("WorkflowExecuteReply carries no execution")
	}
	return execution, nil
}

// GetWorkflowResult blocks until the execution completes and returns its
// final result
func (c *Client) GetWorkflowResult(ctx context.Context, execution types.WorkflowExecution) ([]byte, error) {
	req := messages.NewWorkflowGetResultRequest()
	req.SetWorkflowId(ptr.Any(execution.WorkflowId))
	req.SetRunId(ptr.Any(execution.RunId))

	reply, err := c.dispatcher.Request(ctx, req)
	if err != nil {
		return nil, err
	}
	resultReply, ok := reply.(*messages.WorkflowGetResultReply)
	if !ok {
		return nil, failure.NewProtocolError("unexpected reply %v to WorkflowGetResultRequest", reply.GetType())
	}
	return resultReply.GetResult(), nil
}

// SignalWorkflow delivers a signal to a running execution
func (c *Client) SignalWorkflow(
	ctx context.Context, execution types.WorkflowExecution, signalName string, signalArgs []byte,
) error {
	req := messages.NewWorkflowSignalRequest()
	req.SetWorkflowId(ptr.Any(execution.WorkflowId))
	req.SetRunId(ptr.Any(execution.RunId))
	req.SetSignalName(ptr.Any(signalName))
	req.SetSignalArgs(signalArgs)

	_, err := c.dispatcher.Request(ctx, req)
	return err
}

// QueryWorkflow runs a query handler against a running execution
func (c *Client) QueryWorkflow(
	ctx context.Context, execution types.WorkflowExecution, queryName string, queryArgs []byte,
) ([]byte, error) {
	req := messages.NewWorkflowQueryRequest()
	req.SetWorkflowId(ptr.Any(execution.WorkflowId))
	req.SetRunId(ptr.Any(execution.RunId))
	req.SetQueryName(ptr.Any(queryName))
	req.SetQueryArgs(queryArgs)

	reply, err := c.dispatcher.Request(ctx, req)
	if err != nil {
		return nil, err
	}
	queryReply, ok := reply.(*messages.WorkflowQueryReply)
	if !ok {
		return nil, failure.NewProtocolError("unexpected reply %v to WorkflowQueryRequest", reply.GetType())
	}
	return queryReply.GetResult(), nil
}

// DescribeWorkflowExecution fetches the introspection snapshot of an
// execution, including pending activities and children
func (c *Client) DescribeWorkflowExecution(
	ctx context.Context, execution types.WorkflowExecution,
) (*types.WorkflowExecutionDescription, error) {
	req := messages.NewWorkflowDescribeExecutionRequest()
	req.SetWorkflowId(ptr.Any(execution.WorkflowId))
	req.SetRunId(ptr.Any(execution.RunId))

	reply, err := c.dispatcher.Request(ctx, req)
	if err != nil {
		return nil, err
	}
	describeReply, ok := reply.(*messages.WorkflowDescribeExecutionReply)
	if !ok {
		return nil, failure.NewProtocolError("unexpected reply %v to WorkflowDescribeExecutionRequest", reply.GetType())
	}
	return describeReply.GetDetails(), nil
}

// CancelRequest asks the proxy to cancel an outstanding request; returns
// whether the proxy managed to cancel it
func (c *Client) CancelRequest(ctx context.Context, targetRequestId int64) (bool, error) {
	req := messages.NewCancelRequest()
	req.SetTargetRequestId(targetRequestId)

	reply, err := c.dispatcher.Request(ctx, req)
	if err != nil {
		return false, err
	}
	cancelReply, ok := reply.(*messages.CancelReply)
	if !ok {
		return false, failure.NewProtocolError("unexpected reply %v to CancelRequest", reply.GetType())
	}
	return cancelReply.GetWasCancelled(), nil
}

// CompleteActivityByToken completes, or fails, an externally-completed
// activity addressed by its task token
func (c *Client) CompleteActivityByToken(ctx context.Context, taskToken []byte, result []byte, completionErr error) error {
	req := messages.NewActivityCompleteRequest()
	req.SetTaskToken(taskToken)
	req.SetResult(result)
	req.SetCompletionError(failure.FromError(completionErr))

	_, err := c.dispatcher.Request(ctx, req)
	return err
}

// CompleteActivityById completes, or fails, an externally-completed
// activity addressed by (execution, activityId)
func (c *Client) CompleteActivityById(
	ctx context.Context, execution types.WorkflowExecution, activityId string, result []byte, completionErr error,
) error {
	req := messages.NewActivityCompleteRequest()
	req.SetWorkflowId(ptr.Any(execution.WorkflowId))
	req.SetRunId(ptr.Any(execution.RunId))
	req.SetActivityId(ptr.Any(activityId))
	req.SetResult(result)
	req.SetCompletionError(failure.FromError(completionErr))

	_, err := c.dispatcher.Request(ctx, req)
	return err
}

// RecordActivityHeartbeatByToken heartbeats on behalf of an
// externally-completed activity addressed by its task token
func (c *Client) RecordActivityHeartbeatByToken(ctx context.Context, taskToken []byte, details []byte) error {
	req := messages.NewActivityRecordHeartbeatRequest()
	req.SetTaskToken(taskToken)
	req.SetDetails(details)

	_, err := c.dispatcher.Request(ctx, req)
	return err
}

// RecordActivityHeartbeatById heartbeats on behalf of an
// externally-completed activity addressed by (execution, activityId)
func (c *Client) RecordActivityHeartbeatById(
	ctx context.Context, execution types.WorkflowExecution, activityId string, details []byte,
) error {
	req := messages.NewActivityRecordHeartbeatRequest()
	req.SetWorkflowId(ptr.Any(execution.WorkflowId))
	req.SetRunId(ptr.Any(execution.RunId))
	req.SetActivityId(ptr.Any(activityId))
	req.SetDetails(details)

	_, err := c.dispatcher.Request(ctx, req)
	return err
}
