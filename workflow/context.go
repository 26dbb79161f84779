// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/qmuntal/stateless"

	"github.com/flowbridge/flowbridge/client"
	"github.com/flowbridge/flowbridge/common/failure"
	"github.com/flowbridge/flowbridge/common/log"
	"github.com/flowbridge/flowbridge/common/log/tag"
	"github.com/flowbridge/flowbridge/common/ptr"
	"github.com/flowbridge/flowbridge/common/types"
	"github.com/flowbridge/flowbridge/messages"
)

// lifecycle states of an execution context
const (
	StateCreated        = "Created"
	StateInvoked        = "Invoked"
	StateCompleted      = "Completed"
	StateContinuedAsNew = "ContinuedAsNew"
	StateFailed         = "Failed"
	StateDisconnected   = "Disconnected"
)

const (
	triggerInvoke        = "invoke"
	triggerComplete      = "complete"
	triggerContinueAsNew = "continueAsNew"
	triggerFail          = "fail"
	triggerDisconnect    = "disconnect"
)

type (
	// Context is the client-side execution context of one workflow run.
	// The main handler and every signal/query sub-invocation against the
	// same context run serially; blocking operations release the caller
	// with a cancellation error when the context disconnects.
	Context struct {
		contextId int64
		name      string
		execution types.WorkflowExecution
		namespace string
		taskQueue string

		dispatcher client.Dispatcher
		ids        *client.Identifiers
		logger     log.Logger

		// queueCapacity bounds queues created without an explicit capacity
		queueCapacity int32

		fsm *stateless.StateMachine

		// closeCtx is canceled on disconnect; every suspension point
		// waits on it
		closeCtx    context.Context
		closeCancel context.CancelFunc

		// runMu serializes the main handler and sub-invocations
		runMu sync.Mutex

		versions *versionTable

		mu            sync.Mutex
		replayStatus  types.ReplayStatus
		queues        map[int64]*Queue
		children      map[int64]*Child
		futures       map[int64]*Future
		continueAsNew *types.ContinueAsNewOptions
	}

	// Child is the handle of a child workflow started by this context
	Child struct {
		ChildId   int64
		Execution types.WorkflowExecution
	}

	// Future is a readiness latch resolved by a future-ready notification
	// from the proxy
	Future struct {
		operationId int64
		ready       chan struct{}
		once        sync.Once
	}
)

func newContext(
	contextId int64,
	name string,
	execution types.WorkflowExecution,
	namespace string,
	taskQueue string,
	replayStatus types.ReplayStatus,
	dispatcher client.Dispatcher,
	ids *client.Identifiers,
	queueCapacity int32,
	logger log.Logger,
) *Context {
	closeCtx, closeCancel := context.WithCancel(context.Background())

	c := &Context{
		contextId:     contextId,
		name:          name,
		execution:     execution,
		namespace:     namespace,
		taskQueue:     taskQueue,
		dispatcher:    dispatcher,
		ids:           ids,
		queueCapacity: queueCapacity,
		logger:        logger.WithTags(tag.ContextId(contextId), tag.WorkflowId(execution.WorkflowId)),
		closeCtx:      closeCtx,
		closeCancel:   closeCancel,
		versions:      newVersionTable(),
		replayStatus:  replayStatus,
		queues:        map[int64]*Queue{},
		children:      map[int64]*Child{},
		futures:       map[int64]*Future{},
	}

	fsm := stateless.NewStateMachine(StateCreated)
	fsm.Configure(StateCreated).
		Permit(triggerInvoke, StateInvoked).
		Permit(triggerDisconnect, StateDisconnected)
	fsm.Configure(StateInvoked).
		Permit(triggerComplete, StateCompleted).
		Permit(triggerContinueAsNew, StateContinuedAsNew).
		Permit(triggerFail, StateFailed).
		Permit(triggerDisconnect, StateDisconnected)
	c.fsm = fsm

	return c
}

func (c *Context) ContextId() int64 {
	return c.contextId
}

func (c *Context) WorkflowName() string {
	return c.name
}

func (c *Context) Execution() types.WorkflowExecution {
	return c.execution
}

func (c *Context) Namespace() string {
	return c.namespace
}

func (c *Context) TaskQueue() string {
	return c.taskQueue
}

func (c *Context) State() string {
	return c.fsm.MustState().(string)
}

func (c *Context) ReplayStatus() types.ReplayStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.replayStatus
}

func (c *Context) setReplayStatus(status types.ReplayStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if status != types.ReplayStatusUnspecified {
		c.replayStatus = status
	}
}

func (c *Context) IsReplaying() bool {
	return c.ReplayStatus() == types.ReplayStatusReplaying
}

// Logger returns the context logger; while the run is replaying the
// entries are dropped so replays do not duplicate output
func (c *Context) Logger() log.Logger {
	if c.IsReplaying() {
		return log.NewNoopLogger()
	}
	return c.logger
}

// invoke runs the main handler to completion and drives the lifecycle
// machine into its terminal state. It returns the handler result, the
// pending continue-as-new options if the handler asked for one, and the
// handler error.
func (c *Context) invoke(handler Handler, args []byte) ([]byte, *types.ContinueAsNewOptions, error) {
	if err := c.fsm.Fire(triggerInvoke); err != nil {
		return nil, nil, failure.NewProtocolError("context %d: %v", c.contextId, err)
	}

	result, err := c.run(handler, args)

	c.mu.Lock()
	pendingCAN := c.continueAsNew
	c.mu.Unlock()

	switch {
	case c.State() == StateDisconnected:
		// disconnect won the race; the run's outcome no longer matters
		return nil, nil, &failure.CanceledError{Message: "context disconnected"}
	case pendingCAN != nil:
		_ = c.fsm.Fire(triggerContinueAsNew)
		c.shutdown()
		return nil, pendingCAN, nil
	case err != nil:
		_ = c.fsm.Fire(triggerFail)
		c.shutdown()
		return nil, nil, err
	default:
		_ = c.fsm.Fire(triggerComplete)
		c.shutdown()
		return result, nil, nil
	}
}

// run executes one handler on the context's run lock, converting a
// panic into an error so a bad handler fails its own run only
func (c *Context) run(handler Handler, args []byte) (result []byte, err error) {
	c.runMu.Lock()
	defer c.runMu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("workflow panic: %v", r)
		}
	}()
	return handler(c, args)
}

// invokeSignal runs a registered signal handler against the live context
func (c *Context) invokeSignal(reg *signalRegistration, args []byte) ([]byte, error) {
	if err := c.ensureLive(); err != nil {
		return nil, err
	}
	return c.run(reg.handler, args)
}

// invokeQuery runs a registered query handler against the live context
func (c *Context) invokeQuery(handler Handler, args []byte) ([]byte, error) {
	if err := c.ensureLive(); err != nil {
		return nil, err
	}
	return c.run(handler, args)
}

// Disconnect severs the context from its run: every suspension point
// unblocks with a cancellation error and the owned queues close.
// Disconnecting an already disconnected context is a no-op.
func (c *Context) Disconnect() error {
	if c.State() == StateDisconnected {
		return nil
	}
	if err := c.fsm.Fire(triggerDisconnect); err != nil {
		return failure.NewProtocolError("context %d: %v", c.contextId, err)
	}
	c.logger.Info("context disconnected")
	c.shutdown()
	return nil
}

// shutdown cancels pending waits and closes the owned queues
func (c *Context) shutdown() {
	c.closeCancel()

	c.mu.Lock()
	queues := make([]*Queue, 0, len(c.queues))
	for _, q := range c.queues {
		queues = append(queues, q)
	}
	c.mu.Unlock()

	for _, q := range queues {
		q.Close()
	}
}

// ensureLive rejects work against a context that already reached a
// terminal state or recorded a continue-as-new
func (c *Context) ensureLive() error {
	state := c.State()
	if state != StateInvoked && state != StateCreated {
		return failure.NewProtocolError("context %d is %s, accepts no further work", c.contextId, state)
	}
	c.mu.Lock()
	pendingCAN := c.continueAsNew != nil
	c.mu.Unlock()
	if pendingCAN {
		return failure.NewProtocolError("context %d recorded continue-as-new, accepts no further work", c.contextId)
	}
	return nil
}

// request performs one correlated round trip on behalf of this context,
// stamping the context id and waiting with disconnect awareness. The
// caller holds the run lock; it is released for the duration of the wait
// so signal and query sub-invocations can interleave at suspension
// points, and reacquired before control returns to workflow code.
func (c *Context) request(req messages.Request) (messages.Reply, error) {
	if err := c.ensureLive(); err != nil {
		return nil, err
	}
	if wr, ok := req.(interface{ SetContextId(int64) }); ok {
		wr.SetContextId(c.contextId)
	}

	c.runMu.Unlock()
	defer c.runMu.Lock()
	return c.dispatcher.Request(c.closeCtx, req)
}

// ExecuteActivity schedules an activity on the engine and blocks until
// its result or failure. A remote failure surfaces as an ActivityError
// matchable on its Reason.
func (c *Context) ExecuteActivity(activity string, args []byte, options types.ActivityOptions) ([]byte, error) {
	req := messages.NewActivityExecuteRequest()
	req.SetActivity(ptr.Any(activity))
	req.SetArgs(args)
	req.SetNamespace(ptr.Any(c.namespace))
	req.SetOptions(&options)

	reply, err := c.request(req)
	if err != nil {
		return nil, err
	}
	executeReply, ok := reply.(*messages.ActivityExecuteReply)
	if !ok {
		return nil, failure.NewProtocolError("unexpected reply %v to ActivityExecuteRequest", reply.GetType())
	}
	return executeReply.GetResult(), nil
}

// ExecuteLocalActivity runs an activity in-process on the worker; local
// activities never appear in the remote task-queue registry
func (c *Context) ExecuteLocalActivity(activityTypeId int64, args []byte) ([]byte, error) {
	req := messages.NewActivityExecuteLocalRequest()
	req.SetActivityTypeId(activityTypeId)
	req.SetArgs(args)

	reply, err := c.request(req)
	if err != nil {
		return nil, err
	}
	executeReply, ok := reply.(*messages.ActivityExecuteLocalReply)
	if !ok {
		return nil, failure.NewProtocolError("unexpected reply %v to ActivityExecuteLocalRequest", reply.GetType())
	}
	return executeReply.GetResult(), nil
}

// Sleep suspends the workflow for d; the wait is durable on the engine
// side and unblocks early only on disconnect
func (c *Context) Sleep(d time.Duration) error {
	req := messages.NewWorkflowSleepRequest()
	req.SetDuration(d)

	_, err := c.request(req)
	return err
}

// GetVersion decides, once per change id, which version of a changed
// code path this run takes. The first call decides, clamped to
// [minSupported, maxSupported], and appends the decision to the
// context's version table; every later call, replay included, returns
// the identical value. While replaying, the decision is made locally
// without touching the proxy.
func (c *Context) GetVersion(changeId string, minSupported, maxSupported int32) int32 {
	if minSupported > maxSupported {
		panic(failure.NewProtocolError(
			"GetVersion(%q): minSupported %d exceeds maxSupported %d", changeId, minSupported, maxSupported))
	}

	if v, ok := c.versions.get(changeId); ok {
		return v
	}

	version := maxSupported
	if !c.IsReplaying() {
		req := messages.NewWorkflowGetVersionRequest()
		req.SetChangeId(ptr.Any(changeId))
		req.SetMinSupported(minSupported)
		req.SetMaxSupported(maxSupported)

		if reply, err := c.request(req); err == nil {
			if versionReply, ok := reply.(*messages.WorkflowGetVersionReply); ok {
				if recorded := versionReply.GetVersion(); recorded != 0 {
					version = clampVersion(recorded, minSupported, maxSupported)
				}
			}
		} else {
			c.logger.Warn("version decision not recorded remotely",
				tag.Value(changeId), tag.Error(err))
		}
	}

	if err := c.versions.record(changeId, version); err != nil {
		panic(err)
	}
	return version
}

// ContinueAsNew records that this run ends and a fresh run of the same
// workflow starts with the given options. The context accepts no further
// work afterwards.
func (c *Context) ContinueAsNew(options types.ContinueAsNewOptions) error {
	if err := c.ensureLive(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.continueAsNew != nil {
		return failure.NewProtocolError("context %d already recorded continue-as-new", c.contextId)
	}
	c.continueAsNew = &options
	return nil
}

// NewQueue creates a bounded queue owned by this context and announces
// it to the proxy. A non-positive capacity takes the connection default.
// The queue closes when the context disconnects.
func (c *Context) NewQueue(capacity int32) (*Queue, error) {
	if capacity <= 0 {
		capacity = c.queueCapacity
	}
	queueId := c.ids.NextQueueId()

	req := messages.NewWorkflowQueueNewRequest()
	req.SetQueueId(queueId)
	req.SetCapacity(capacity)

	if _, err := c.request(req); err != nil {
		return nil, err
	}

	q := NewQueue(queueId, capacity)
	c.mu.Lock()
	c.queues[queueId] = q
	c.mu.Unlock()
	return q, nil
}

func (c *Context) Queue(queueId int64) (*Queue, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	q, ok := c.queues[queueId]
	return q, ok
}

// NewFuture allocates a future-operation latch the proxy resolves with a
// future-ready notification
func (c *Context) NewFuture() *Future {
	f := &Future{
		operationId: c.ids.NextFutureOperationId(),
		ready:       make(chan struct{}),
	}
	c.mu.Lock()
	c.futures[f.operationId] = f
	c.mu.Unlock()
	return f
}

func (c *Context) resolveFuture(operationId int64) error {
	c.mu.Lock()
	f, ok := c.futures[operationId]
	if ok {
		delete(c.futures, operationId)
	}
	c.mu.Unlock()
	if !ok {
		return failure.NewProtocolError("context %d has no future operation %d", c.contextId, operationId)
	}
	f.resolve()
	return nil
}

func (f *Future) OperationId() int64 {
	return f.operationId
}

func (f *Future) resolve() {
	f.once.Do(func() {
		close(f.ready)
	})
}

// Wait blocks until the future resolves or the owning context
// disconnects
func (f *Future) Wait(ctx context.Context) error {
	select {
	case <-f.ready:
		return nil
	case <-ctx.Done():
		return &failure.CanceledError{Message: "future wait canceled"}
	}
}

// WaitForFuture suspends until f resolves, unblocking with a
// cancellation error on disconnect. A suspension point: the run lock is
// released while waiting.
func (c *Context) WaitForFuture(f *Future) error {
	c.runMu.Unlock()
	defer c.runMu.Lock()
	return f.Wait(c.closeCtx)
}
