// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package workflow

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/flowbridge/flowbridge/client"
	"github.com/flowbridge/flowbridge/common/failure"
	"github.com/flowbridge/flowbridge/common/log"
	"github.com/flowbridge/flowbridge/common/log/tag"
	"github.com/flowbridge/flowbridge/common/ptr"
	"github.com/flowbridge/flowbridge/common/types"
	"github.com/flowbridge/flowbridge/messages"
)

type (
	// Executor owns the live execution contexts of one client connection
	// and services the workflow requests the proxy initiates against
	// them: invocations, signals, queries, queue operations, future
	// notifications and disconnects
	Executor struct {
		registry      *Registry
		dispatcher    client.Dispatcher
		ids           *client.Identifiers
		queueCapacity int32
		logger        log.Logger

		mu       sync.Mutex
		contexts map[int64]*Context
	}
)

// NewExecutor wires the workflow side of one client connection.
// queueCapacity bounds queues created without an explicit capacity; a
// non-positive value falls back to DefaultQueueCapacity.
func NewExecutor(
	registry *Registry,
	dispatcher client.Dispatcher,
	ids *client.Identifiers,
	queueCapacity int32,
	logger log.Logger,
) *Executor {
	if queueCapacity <= 0 {
		queueCapacity = DefaultQueueCapacity
	}
	return &Executor{
		registry:      registry,
		dispatcher:    dispatcher,
		ids:           ids,
		queueCapacity: queueCapacity,
		logger:        logger,
		contexts:      map[int64]*Context{},
	}
}

func (e *Executor) Registry() *Registry {
	return e.registry
}

// RegisterWorkflow validates the handler locally and announces the
// workflow name to the proxy so invocations can be routed back
func (e *Executor) RegisterWorkflow(ctx context.Context, name string, fn interface{}) error {
	if err := e.registry.RegisterWorkflow(name, fn); err != nil {
		return err
	}

	req := messages.NewWorkflowRegisterRequest()
	req.SetName(ptr.Any(name))
	_, err := e.dispatcher.Request(ctx, req)
	return err
}

func (e *Executor) RegisterSignal(workflowName, signalName string, fn interface{}, synchronous bool) error {
	return e.registry.RegisterSignal(workflowName, signalName, fn, synchronous)
}

func (e *Executor) RegisterQuery(workflowName, queryName string, fn interface{}) error {
	return e.registry.RegisterQuery(workflowName, queryName, fn)
}

func (e *Executor) Context(contextId int64) (*Context, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	c, ok := e.contexts[contextId]
	if !ok {
		return nil, failure.NewProtocolError("no execution context %d", contextId)
	}
	return c, nil
}

// Shutdown disconnects every live context, unblocking their suspension
// points, so the process can drain
func (e *Executor) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	contexts := make([]*Context, 0, len(e.contexts))
	for _, c := range e.contexts {
		contexts = append(contexts, c)
	}
	e.contexts = map[int64]*Context{}
	e.mu.Unlock()

	g, _ := errgroup.WithContext(ctx)
	for _, c := range contexts {
		c := c
		g.Go(c.Disconnect)
	}
	return g.Wait()
}

func (e *Executor) removeContext(contextId int64) {
	e.mu.Lock()
	delete(e.contexts, contextId)
	e.mu.Unlock()
}

// HandleInvoke starts the main handler of a workflow run. The reply is
// sent asynchronously once the run reaches a terminal state.
func (e *Executor) HandleInvoke(req *messages.WorkflowInvokeRequest) error {
	name := ptr.Deref(req.GetName())
	handler, err := e.registry.workflow(name)
	if err != nil {
		return e.sendReply(req, func(reply messages.Reply) {
			reply.SetError(failure.FromError(err))
		})
	}

	execution := types.WorkflowExecution{
		WorkflowId: ptr.Deref(req.GetWorkflowId()),
		RunId:      ptr.Deref(req.GetRunId()),
	}
	c := newContext(
		req.GetContextId(),
		name,
		execution,
		ptr.Deref(req.GetNamespace()),
		ptr.Deref(req.GetTaskQueue()),
		req.GetReplayStatus(),
		e.dispatcher,
		e.ids,
		e.queueCapacity,
		e.logger,
	)

	e.mu.Lock()
	if _, ok := e.contexts[c.contextId]; ok {
		e.mu.Unlock()
		return e.sendReply(req, func(reply messages.Reply) {
			reply.SetError(failure.FromError(
				failure.NewProtocolError("execution context %d already exists", c.contextId)))
		})
	}
	e.contexts[c.contextId] = c
	e.mu.Unlock()

	args := req.GetArgs()
	go func() {
		result, continueAsNew, invokeErr := c.invoke(handler, args)
		e.removeContext(c.contextId)

		sendErr := e.sendReply(req, func(reply messages.Reply) {
			invokeReply := reply.(*messages.WorkflowInvokeReply)
			switch {
			case continueAsNew != nil:
				invokeReply.SetContinueAsNew(true)
				invokeReply.SetContinueAsNewOptions(continueAsNew)
			case invokeErr != nil:
				invokeReply.SetError(failure.FromError(invokeErr))
			default:
				invokeReply.SetResult(result)
			}
		})
		if sendErr != nil {
			e.logger.Error("workflow invoke reply not delivered",
				tag.ContextId(c.contextId), tag.Error(sendErr))
		}
	}()
	return nil
}

// HandleSignalInvoke delivers a signal sub-invocation. A synchronous
// signal replies only after its handler completes and carries the
// handler result; an asynchronous one acknowledges first and runs the
// handler afterwards.
func (e *Executor) HandleSignalInvoke(req *messages.WorkflowSignalInvokeRequest) error {
	signalName := ptr.Deref(req.GetSignalName())

	c, err := e.Context(req.GetContextId())
	if err != nil {
		return e.sendReply(req, withError(err))
	}
	c.setReplayStatus(req.GetReplayStatus())

	reg, err := e.registry.signal(c.name, signalName)
	if err != nil {
		return e.sendReply(req, withError(err))
	}

	if reg.synchronous {
		result, handlerErr := c.invokeSignal(reg, req.GetSignalArgs())
		return e.sendReply(req, func(reply messages.Reply) {
			signalReply := reply.(*messages.WorkflowSignalInvokeReply)
			if handlerErr != nil {
				signalReply.SetError(failure.FromError(handlerErr))
				return
			}
			signalReply.SetResult(result)
		})
	}

	if err := e.sendReply(req, func(messages.Reply) {}); err != nil {
		return err
	}
	go func() {
		if _, handlerErr := c.invokeSignal(reg, req.GetSignalArgs()); handlerErr != nil {
			e.logger.Error("async signal handler failed",
				tag.ContextId(c.contextId), tag.Value(signalName), tag.Error(handlerErr))
		}
	}()
	return nil
}

// HandleQueryInvoke runs a query handler and replies with its result
func (e *Executor) HandleQueryInvoke(req *messages.WorkflowQueryInvokeRequest) error {
	c, err := e.Context(req.GetContextId())
	if err != nil {
		return e.sendReply(req, withError(err))
	}
	c.setReplayStatus(req.GetReplayStatus())

	handler, err := e.registry.query(c.name, ptr.Deref(req.GetQueryName()))
	if err != nil {
		return e.sendReply(req, withError(err))
	}

	result, handlerErr := c.invokeQuery(handler, req.GetQueryArgs())
	return e.sendReply(req, func(reply messages.Reply) {
		queryReply := reply.(*messages.WorkflowQueryInvokeReply)
		if handlerErr != nil {
			queryReply.SetError(failure.FromError(handlerErr))
			return
		}
		queryReply.SetResult(result)
	})
}

// HandleDisconnectContext severs the context and drops it from the table
func (e *Executor) HandleDisconnectContext(req *messages.WorkflowDisconnectContextRequest) error {
	c, err := e.Context(req.GetContextId())
	if err != nil {
		return e.sendReply(req, withError(err))
	}

	disconnectErr := c.Disconnect()
	e.removeContext(c.contextId)
	if disconnectErr != nil {
		return e.sendReply(req, withError(disconnectErr))
	}
	return e.sendReply(req, func(messages.Reply) {})
}

// HandleFutureReady resolves a pending future-operation latch
func (e *Executor) HandleFutureReady(req *messages.WorkflowFutureReadyRequest) error {
	c, err := e.Context(req.GetContextId())
	if err != nil {
		return e.sendReply(req, withError(err))
	}
	if err := c.resolveFuture(req.GetFutureOperationId()); err != nil {
		return e.sendReply(req, withError(err))
	}
	return e.sendReply(req, func(messages.Reply) {})
}

// HandleQueueWrite pushes a chunk from the proxy into a context queue.
// A blocking write runs off the request goroutine so a full queue never
// pins an inbound handler; the reply is sent once the write resolves.
func (e *Executor) HandleQueueWrite(req *messages.WorkflowQueueWriteRequest) error {
	q, err := e.contextQueue(req.GetContextId(), req.GetQueueId())
	if err != nil {
		return e.sendReply(req, withError(err))
	}

	go func() {
		isFull, writeErr := q.Write(req.GetData(), req.GetNoBlock())
		sendErr := e.sendReply(req, func(reply messages.Reply) {
			writeReply := reply.(*messages.WorkflowQueueWriteReply)
			if writeErr != nil {
				writeReply.SetError(failure.FromError(writeErr))
				return
			}
			writeReply.SetIsFull(isFull)
		})
		if sendErr != nil {
			e.logger.Error("queue write reply not delivered",
				tag.ContextId(req.GetContextId()), tag.QueueId(req.GetQueueId()), tag.Error(sendErr))
		}
	}()
	return nil
}

// HandleQueueRead drains one chunk on the proxy's behalf. The timed wait
// runs off the request goroutine like a blocking write.
func (e *Executor) HandleQueueRead(req *messages.WorkflowQueueReadRequest) error {
	q, err := e.contextQueue(req.GetContextId(), req.GetQueueId())
	if err != nil {
		return e.sendReply(req, withError(err))
	}

	go func() {
		data, isClosed, readErr := q.Read(req.GetTimeout())
		sendErr := e.sendReply(req, func(reply messages.Reply) {
			readReply := reply.(*messages.WorkflowQueueReadReply)
			if readErr != nil {
				readReply.SetError(failure.FromError(readErr))
				return
			}
			readReply.SetData(data)
			readReply.SetIsClosed(isClosed)
		})
		if sendErr != nil {
			e.logger.Error("queue read reply not delivered",
				tag.ContextId(req.GetContextId()), tag.QueueId(req.GetQueueId()), tag.Error(sendErr))
		}
	}()
	return nil
}

// HandleQueueClose closes a context queue; closing twice is harmless
func (e *Executor) HandleQueueClose(req *messages.WorkflowQueueCloseRequest) error {
	q, err := e.contextQueue(req.GetContextId(), req.GetQueueId())
	if err != nil {
		return e.sendReply(req, withError(err))
	}
	q.Close()
	return e.sendReply(req, func(messages.Reply) {})
}

func (e *Executor) contextQueue(contextId, queueId int64) (*Queue, error) {
	c, err := e.Context(contextId)
	if err != nil {
		return nil, err
	}
	q, ok := c.Queue(queueId)
	if !ok {
		return nil, failure.NewProtocolError("context %d has no queue %d", contextId, queueId)
	}
	return q, nil
}

// sendReply builds the reply paired with req, lets populate fill it in,
// and sends it back over the transport
func (e *Executor) sendReply(req messages.Request, populate func(messages.Reply)) error {
	m, err := messages.NewForType(req.GetReplyType())
	if err != nil {
		return err
	}
	reply, ok := m.(messages.Reply)
	if !ok {
		return failure.NewProtocolError("%v is not a reply type", req.GetReplyType())
	}
	reply.SetClientId(req.GetClientId())
	reply.SetRequestId(req.GetRequestId())
	if wr, ok := req.(interface{ GetContextId() int64 }); ok {
		if wp, ok := reply.(interface{ SetContextId(int64) }); ok {
			wp.SetContextId(wr.GetContextId())
		}
	}
	populate(reply)
	return e.dispatcher.Send(context.Background(), reply)
}

func withError(err error) func(messages.Reply) {
	return func(reply messages.Reply) {
		reply.SetError(failure.FromError(err))
	}
}
