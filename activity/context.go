// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package activity

import (
	"context"
	"sync"
	"time"

	"github.com/flowbridge/flowbridge/client"
	"github.com/flowbridge/flowbridge/common/clock"
	"github.com/flowbridge/flowbridge/common/failure"
	"github.com/flowbridge/flowbridge/common/log"
	"github.com/flowbridge/flowbridge/common/log/tag"
	"github.com/flowbridge/flowbridge/common/types"
	"github.com/flowbridge/flowbridge/messages"
)

type (
	// Context is handed to an activity handler for one invocation. It
	// carries the scheduled task, the debounced heartbeat recorder and
	// the stopping signal.
	Context struct {
		contextId int64
		task      types.ActivityTask

		dispatcher client.Dispatcher
		logger     log.Logger
		recorder   *heartbeatRecorder

		goCtx context.Context

		stopping chan struct{}
		stopOnce sync.Once

		mu            sync.Mutex
		doNotComplete bool
	}
)

func newContext(
	contextId int64,
	task types.ActivityTask,
	heartbeatInterval time.Duration,
	dispatcher client.Dispatcher,
	timeSource clock.TimeSource,
	logger log.Logger,
) *Context {
	return &Context{
		contextId:  contextId,
		task:       task,
		dispatcher: dispatcher,
		logger:     logger.WithTags(tag.ContextId(contextId), tag.ActivityId(task.ActivityId)),
		recorder:   newHeartbeatRecorder(timeSource, task.HeartbeatTimeout, heartbeatInterval),
		goCtx:      context.Background(),
		stopping:   make(chan struct{}),
	}
}

func (c *Context) ContextId() int64 {
	return c.contextId
}

func (c *Context) Task() types.ActivityTask {
	return c.task
}

func (c *Context) TaskToken() []byte {
	return c.task.TaskToken
}

func (c *Context) Logger() log.Logger {
	return c.logger
}

// Stopping is closed when the worker is asked to stop this activity
func (c *Context) Stopping() <-chan struct{} {
	return c.stopping
}

func (c *Context) stop() {
	c.stopOnce.Do(func() {
		close(c.stopping)
	})
}

// DoNotCompleteOnReturn marks the invocation for external completion:
// the handler's return value is discarded and the result arrives later
// through the external completion surface
func (c *Context) DoNotCompleteOnReturn() {
	c.mu.Lock()
	c.doNotComplete = true
	c.mu.Unlock()
}

func (c *Context) completesExternally() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doNotComplete
}

// RecordHeartbeat records activity progress, debounced to the recorder's
// window. Inside the window nothing is recorded, produce never runs and
// the call reports false; callers use that to skip expensive detail
// production. Local activities have no heartbeat surface.
func (c *Context) RecordHeartbeat(produce func() []byte) (bool, error) {
	if c.task.IsLocal() {
		return false, failure.NewProtocolError("local activities do not heartbeat")
	}
	if !c.recorder.begin() {
		return false, nil
	}
	defer c.recorder.end()

	details := c.recorder.produce(produce)

	req := messages.NewActivityRecordHeartbeatRequest()
	req.SetContextId(c.contextId)
	req.SetTaskToken(c.task.TaskToken)
	req.SetDetails(details)

	if _, err := c.dispatcher.Request(c.goCtx, req); err != nil {
		return true, err
	}
	return true, nil
}

// HasHeartbeatDetails reports whether the previous attempt of this
// activity left heartbeat details behind
func (c *Context) HasHeartbeatDetails() (bool, error) {
	req := messages.NewActivityHasHeartbeatDetailsRequest()
	req.SetContextId(c.contextId)

	reply, err := c.dispatcher.Request(c.goCtx, req)
	if err != nil {
		return false, err
	}
	detailsReply, ok := reply.(*messages.ActivityHasHeartbeatDetailsReply)
	if !ok {
		return false, failure.NewProtocolError("unexpected reply %v to ActivityHasHeartbeatDetailsRequest", reply.GetType())
	}
	return detailsReply.GetHasDetails(), nil
}

// GetHeartbeatDetails returns the details recorded by the previous
// attempt of this activity
func (c *Context) GetHeartbeatDetails() ([]byte, error) {
	req := messages.NewActivityGetHeartbeatDetailsRequest()
	req.SetContextId(c.contextId)

	reply, err := c.dispatcher.Request(c.goCtx, req)
	if err != nil {
		return nil, err
	}
	detailsReply, ok := reply.(*messages.ActivityGetHeartbeatDetailsReply)
	if !ok {
		return nil, failure.NewProtocolError("unexpected reply %v to ActivityGetHeartbeatDetailsRequest", reply.GetType())
	}
	return detailsReply.GetDetails(), nil
}
