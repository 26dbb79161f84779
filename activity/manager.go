// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package activity

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/flowbridge/flowbridge/client"
	"github.com/flowbridge/flowbridge/common/clock"
	"github.com/flowbridge/flowbridge/common/failure"
	"github.com/flowbridge/flowbridge/common/log"
	"github.com/flowbridge/flowbridge/common/log/tag"
	"github.com/flowbridge/flowbridge/common/ptr"
	"github.com/flowbridge/flowbridge/common/types"
	"github.com/flowbridge/flowbridge/messages"
)

// ErrResultPending is returned by an activity handler whose result will
// arrive later through the external completion surface
var ErrResultPending = errors.New("activity result pending external completion")

type (
	// Manager runs activity invocations on behalf of the proxy and tracks
	// the ones that complete externally. Each external activity gets a
	// watchdog; when no external heartbeat arrives within the heartbeat
	// timeout the activity is failed with a heartbeat-timeout error.
	Manager struct {
		registry   *Registry
		dispatcher client.Dispatcher
		timeSource clock.TimeSource
		logger     log.Logger

		// defaults applied when a task carries no heartbeat timeout
		defaultHeartbeatTimeout time.Duration
		heartbeatInterval       time.Duration

		mu       sync.Mutex
		running  map[int64]*Context
		external map[string]*externalRecord
	}

	// externalRecord tracks one activity awaiting external completion
	externalRecord struct {
		task types.ActivityTask
		gate TimerGate

		timeout time.Duration

		resolveOnce sync.Once
		resolved    chan struct{}
	}
)

func NewManager(
	registry *Registry,
	dispatcher client.Dispatcher,
	timeSource clock.TimeSource,
	defaultHeartbeatTimeout time.Duration,
	heartbeatInterval time.Duration,
	logger log.Logger,
) *Manager {
	return &Manager{
		registry:                registry,
		dispatcher:              dispatcher,
		timeSource:              timeSource,
		defaultHeartbeatTimeout: defaultHeartbeatTimeout,
		heartbeatInterval:       heartbeatInterval,
		logger:                  logger,
		running:                 map[int64]*Context{},
		external:                map[string]*externalRecord{},
	}
}

func (m *Manager) Registry() *Registry {
	return m.registry
}

// RegisterActivity validates the handler locally and announces the
// activity type to the proxy
func (m *Manager) RegisterActivity(ctx context.Context, name string, fn interface{}) error {
	if err := m.registry.Register(name, fn); err != nil {
		return err
	}

	req := messages.NewActivityRegisterRequest()
	req.SetName(ptr.Any(name))
	_, err := m.dispatcher.Request(ctx, req)
	return err
}

// RegisterLocalActivity registers an in-process activity; local
// activities are never announced to the proxy
func (m *Manager) RegisterLocalActivity(activityTypeId int64, fn interface{}) error {
	return m.registry.RegisterLocal(activityTypeId, fn)
}

// HandleInvoke runs a remote activity invocation. The reply is sent once
// the handler returns; a handler that defers to external completion gets
// a pending reply and a watchdog instead of a result.
func (m *Manager) HandleInvoke(req *messages.ActivityInvokeRequest) error {
	taskPtr := req.GetTask()
	if taskPtr == nil {
		return m.sendReply(req, withError(failure.NewProtocolError("ActivityInvokeRequest carries no task")))
	}
	task := *taskPtr
	if task.HeartbeatTimeout <= 0 {
		task.HeartbeatTimeout = m.defaultHeartbeatTimeout
	}

	handler, err := m.registry.activity(ptr.Deref(req.GetActivity()))
	if err != nil {
		return m.sendReply(req, withError(err))
	}

	c := newContext(req.GetContextId(), task, m.heartbeatInterval, m.dispatcher, m.timeSource, m.logger)
	m.mu.Lock()
	m.running[c.contextId] = c
	m.mu.Unlock()

	args := req.GetArgs()
	go func() {
		result, handlerErr := m.run(c, handler, args)

		m.mu.Lock()
		delete(m.running, c.contextId)
		m.mu.Unlock()

		pending := errors.Is(handlerErr, ErrResultPending) || (handlerErr == nil && c.completesExternally())
		if pending {
			m.trackExternal(task)
		}

		sendErr := m.sendReply(req, func(reply messages.Reply) {
			invokeReply := reply.(*messages.ActivityInvokeReply)
			switch {
			case pending:
				invokeReply.SetPending(true)
			case handlerErr != nil:
				invokeReply.SetError(failure.FromError(handlerErr))
			default:
				invokeReply.SetResult(result)
			}
		})
		if sendErr != nil {
			m.logger.Error("activity invoke reply not delivered",
				tag.ActivityId(task.ActivityId), tag.Error(sendErr))
		}
	}()
	return nil
}

// HandleInvokeLocal runs a local activity invocation
func (m *Manager) HandleInvokeLocal(req *messages.ActivityInvokeLocalRequest) error {
	handler, err := m.registry.localActivity(req.GetActivityTypeId())
	if err != nil {
		return m.sendReply(req, withError(err))
	}

	c := newContext(
		req.GetContextId(),
		types.ActivityTask{ActivityId: fmt.Sprintf("local-%d", req.GetActivityTypeId())},
		m.heartbeatInterval,
		m.dispatcher,
		m.timeSource,
		m.logger,
	)

	args := req.GetArgs()
	go func() {
		result, handlerErr := m.run(c, handler, args)
		sendErr := m.sendReply(req, func(reply messages.Reply) {
			localReply := reply.(*messages.ActivityInvokeLocalReply)
			if handlerErr != nil {
				localReply.SetError(failure.FromError(handlerErr))
				return
			}
			localReply.SetResult(result)
		})
		if sendErr != nil {
			m.logger.Error("local activity invoke reply not delivered", tag.Error(sendErr))
		}
	}()
	return nil
}

// HandleStopping signals the stopping channel of a running activity
func (m *Manager) HandleStopping(req *messages.ActivityStoppingRequest) error {
	activityId := ptr.Deref(req.GetActivityId())

	m.mu.Lock()
	for _, c := range m.running {
		if c.task.ActivityId == activityId {
			c.stop()
		}
	}
	m.mu.Unlock()

	return m.sendReply(req, func(messages.Reply) {})
}

// HandleRecordHeartbeat feeds an external heartbeat, relayed by the
// proxy, into the matching watchdog
func (m *Manager) HandleRecordHeartbeat(req *messages.ActivityRecordHeartbeatRequest) error {
	rec, err := m.findExternal(
		req.GetTaskToken(),
		ptr.Deref(req.GetWorkflowId()), ptr.Deref(req.GetRunId()), ptr.Deref(req.GetActivityId()),
	)
	if err != nil {
		return m.sendReply(req, withError(err))
	}

	rec.gate.Reset(rec.timeout)
	m.logger.Debug("external heartbeat recorded", tag.ActivityId(rec.task.ActivityId))
	return m.sendReply(req, func(messages.Reply) {})
}

// HandleComplete resolves an external activity the proxy reports as
// completed (or failed) by its external caller
func (m *Manager) HandleComplete(req *messages.ActivityCompleteRequest) error {
	rec, err := m.findExternal(
		req.GetTaskToken(),
		ptr.Deref(req.GetWorkflowId()), ptr.Deref(req.GetRunId()), ptr.Deref(req.GetActivityId()),
	)
	if err != nil {
		return m.sendReply(req, withError(err))
	}

	m.resolveExternal(rec)
	return m.sendReply(req, func(messages.Reply) {})
}

// run executes one handler invocation, converting a panic into an error
func (m *Manager) run(c *Context, handler Handler, args []byte) (result []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("activity panic: %v", r)
		}
	}()
	return handler(c, args)
}

// trackExternal arms the watchdog for an activity awaiting external
// completion
func (m *Manager) trackExternal(task types.ActivityTask) {
	rec := &externalRecord{
		task:     task,
		gate:     NewLocalTimerGate(m.logger),
		timeout:  task.HeartbeatTimeout,
		resolved: make(chan struct{}),
	}
	if rec.timeout <= 0 {
		rec.timeout = m.defaultHeartbeatTimeout
	}
	rec.gate.Reset(rec.timeout)

	m.mu.Lock()
	m.external[externalKeyFromTask(task)] = rec
	m.mu.Unlock()

	go func() {
		defer rec.gate.Close()
		select {
		case <-rec.gate.FireChan():
			m.failExternal(rec)
		case <-rec.resolved:
		}
	}()
}

func (m *Manager) findExternal(taskToken []byte, workflowId, runId, activityId string) (*externalRecord, error) {
	var key string
	if len(taskToken) > 0 {
		key = tokenKey(taskToken)
	} else {
		key = idKey(workflowId, runId, activityId)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range m.external {
		if tokenKey(rec.task.TaskToken) == key ||
			idKey(rec.task.WorkflowExecution.WorkflowId, rec.task.WorkflowExecution.RunId, rec.task.ActivityId) == key {
			return rec, nil
		}
	}
	return nil, failure.NewProtocolError("no external activity matches %s", key)
}

func (m *Manager) resolveExternal(rec *externalRecord) {
	m.mu.Lock()
	delete(m.external, externalKeyFromTask(rec.task))
	m.mu.Unlock()
	rec.resolveOnce.Do(func() {
		close(rec.resolved)
	})
}

// failExternal reports a heartbeat timeout for an external activity to
// the engine. The error is deliberately a HeartbeatTimeoutError, not a
// generic activity failure.
func (m *Manager) failExternal(rec *externalRecord) {
	m.resolveExternal(rec)

	hbErr := &failure.HeartbeatTimeoutError{
		Message: fmt.Sprintf("activity %q: no external heartbeat within %v", rec.task.ActivityId, rec.timeout),
	}
	m.logger.Warn("external activity heartbeat timeout",
		tag.ActivityId(rec.task.ActivityId),
		tag.WorkflowId(rec.task.WorkflowExecution.WorkflowId),
	)

	req := messages.NewActivityCompleteRequest()
	req.SetTaskToken(rec.task.TaskToken)
	req.SetCompletionError(failure.FromError(hbErr))

	ctx, cancel := context.WithTimeout(context.Background(), rec.timeout)
	defer cancel()
	if _, err := m.dispatcher.Request(ctx, req); err != nil {
		m.logger.Error("heartbeat timeout not reported",
			tag.ActivityId(rec.task.ActivityId), tag.Error(err))
	}
}

func externalKeyFromTask(task types.ActivityTask) string {
	if len(task.TaskToken) > 0 {
		return tokenKey(task.TaskToken)
	}
	return idKey(task.WorkflowExecution.WorkflowId, task.WorkflowExecution.RunId, task.ActivityId)
}

func tokenKey(taskToken []byte) string {
	return "token:" + string(taskToken)
}

func idKey(workflowId, runId, activityId string) string {
	return fmt.Sprintf("id:%s/%s/%s", workflowId, runId, activityId)
}

// sendReply builds the reply paired with req, lets populate fill it in,
// and sends it back over the transport
func (m *Manager) sendReply(req messages.Request, populate func(messages.Reply)) error {
	msg, err := messages.NewForType(req.GetReplyType())
	if err != nil {
		return err
	}
	reply, ok := msg.(messages.Reply)
	if !ok {
		return failure.NewProtocolError("%v is not a reply type", req.GetReplyType())
	}
	reply.SetClientId(req.GetClientId())
	reply.SetRequestId(req.GetRequestId())
	if ar, ok := req.(interface{ GetContextId() int64 }); ok {
		if ap, ok := reply.(interface{ SetContextId(int64) }); ok {
			ap.SetContextId(ar.GetContextId())
		}
	}
	populate(reply)
	return m.dispatcher.Send(context.Background(), reply)
}

func withError(err error) func(messages.Reply) {
	return func(reply messages.Reply) {
		reply.SetError(failure.FromError(err))
	}
}
