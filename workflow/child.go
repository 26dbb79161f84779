// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package workflow

import (
	"github.com/flowbridge/flowbridge/common/failure"
	"github.com/flowbridge/flowbridge/common/log/tag"
	"github.com/flowbridge/flowbridge/common/ptr"
	"github.com/flowbridge/flowbridge/common/types"
	"github.com/flowbridge/flowbridge/messages"
)

// StartChild starts a child workflow under this context and returns its
// handle. The options value is copied; mutating the caller's copy after
// the call changes nothing.
func (c *Context) StartChild(workflow string, args []byte, options types.ChildWorkflowOptions) (*Child, error) {
	req := messages.NewWorkflowExecuteChildRequest()
	req.SetWorkflow(ptr.Any(workflow))
	req.SetArgs(args)
	req.SetOptions(&options)

	reply, err := c.request(req)
	if err != nil {
		return nil, err
	}
	childReply, ok := reply.(*messages.WorkflowExecuteChildReply)
	if !ok {
		return nil, failure.NewProtocolError("unexpected reply %v to WorkflowExecuteChildRequest", reply.GetType())
	}

	child := &Child{ChildId: childReply.GetChildId()}
	if execution := childReply.GetExecution(); execution != nil {
		child.Execution = *execution
	}
	if child.ChildId == 0 {
		return nil, failure.NewProtocolError("WorkflowExecuteChildReply carries no child id")
	}

	c.mu.Lock()
	c.children[child.ChildId] = child
	c.mu.Unlock()

	c.logger.Debug("child workflow started",
		tag.ChildId(child.ChildId),
		tag.WorkflowType(workflow),
	)
	return child, nil
}

// WaitForChild blocks until the child completes and returns its result;
// a child failure surfaces as the re-raised remote error
func (c *Context) WaitForChild(childId int64) ([]byte, error) {
	if _, err := c.child(childId); err != nil {
		return nil, err
	}

	req := messages.NewWorkflowWaitForChildRequest()
	req.SetChildId(childId)

	reply, err := c.request(req)
	if err != nil {
		return nil, err
	}
	waitReply, ok := reply.(*messages.WorkflowWaitForChildReply)
	if !ok {
		return nil, failure.NewProtocolError("unexpected reply %v to WorkflowWaitForChildRequest", reply.GetType())
	}

	c.mu.Lock()
	delete(c.children, childId)
	c.mu.Unlock()

	return waitReply.GetResult(), nil
}

// SignalChild delivers a signal to a running child
func (c *Context) SignalChild(childId int64, signalName string, signalArgs []byte) error {
	if _, err := c.child(childId); err != nil {
		return err
	}

	req := messages.NewWorkflowSignalChildRequest()
	req.SetChildId(childId)
	req.SetSignalName(ptr.Any(signalName))
	req.SetSignalArgs(signalArgs)

	_, err := c.request(req)
	return err
}

// CancelChild requests cancellation of a running child; whether the
// parent then waits for it is governed by the child's options
func (c *Context) CancelChild(childId int64) error {
	if _, err := c.child(childId); err != nil {
		return err
	}

	req := messages.NewWorkflowCancelChildRequest()
	req.SetChildId(childId)

	_, err := c.request(req)
	return err
}

func (c *Context) child(childId int64) (*Child, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	child, ok := c.children[childId]
	if !ok {
		return nil, failure.NewProtocolError("context %d has no child %d", c.contextId, childId)
	}
	return child, nil
}
