// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package messages

import (
	"github.com/flowbridge/flowbridge/common/types"
)

type (
	// WorkflowExecuteChildRequest starts a child execution under the
	// requesting context
	WorkflowExecuteChildRequest struct {
		*WorkflowRequest
	}

	// WorkflowExecuteChildReply carries the ChildId minted for the new
	// child plus its execution identity
	WorkflowExecuteChildReply struct {
		*WorkflowReply
	}

	// WorkflowWaitForChildRequest awaits a child execution's result
	WorkflowWaitForChildRequest struct {
		*WorkflowRequest
	}

	WorkflowWaitForChildReply struct {
		*WorkflowReply
	}

	// WorkflowSignalChildRequest signals a child execution
	WorkflowSignalChildRequest struct {
		*WorkflowRequest
	}

	WorkflowSignalChildReply struct {
		*WorkflowReply
	}

	// WorkflowCancelChildRequest cancels a child execution
	WorkflowCancelChildRequest struct {
		*WorkflowRequest
	}

	WorkflowCancelChildReply struct {
		*WorkflowReply
	}
)

func NewWorkflowExecuteChildRequest() *WorkflowExecuteChildRequest {
	return &WorkflowExecuteChildRequest{
		WorkflowRequest: newWorkflowRequest(WorkflowExecuteChildRequestType, WorkflowExecuteChildReplyType),
	}
}

func (r *WorkflowExecuteChildRequest) GetWorkflow() *string {
	return r.GetStringProperty("Workflow")
}

func (r *WorkflowExecuteChildRequest) SetWorkflow(value *string) {
	r.SetStringProperty("Workflow", value)
}

func (r *WorkflowExecuteChildRequest) GetArgs() []byte {
	return r.GetBytesProperty("Args")
}

func (r *WorkflowExecuteChildRequest) SetArgs(value []byte) {
	r.SetBytesProperty("Args", value)
}

func (r *WorkflowExecuteChildRequest) GetOptions() *types.ChildWorkflowOptions {
	var opts types.ChildWorkflowOptions
	if !r.GetJSONProperty("Options", &opts) {
		return nil
	}
	return &opts
}

func (r *WorkflowExecuteChildRequest) SetOptions(value *types.ChildWorkflowOptions) {
	if value == nil {
		r.SetJSONProperty("Options", nil)
		return
	}
	r.SetJSONProperty("Options", value)
}

func NewWorkflowExecuteChildReply() *WorkflowExecuteChildReply {
	return &WorkflowExecuteChildReply{
		WorkflowReply: newWorkflowReply(WorkflowExecuteChildReplyType),
	}
}

func (r *WorkflowExecuteChildReply) GetChildId() int64 {
	return r.GetLongProperty("ChildId")
}

func (r *WorkflowExecuteChildReply) SetChildId(value int64) {
	r.SetLongProperty("ChildId", value)
}

func (r *WorkflowExecuteChildReply) GetExecution() *types.WorkflowExecution {
	var execution types.WorkflowExecution
	if !r.GetJSONProperty("Execution", &execution) {
		return nil
	}
	return &execution
}

func (r *WorkflowExecuteChildReply) SetExecution(value *types.WorkflowExecution) {
	if value == nil {
		r.SetJSONProperty("Execution", nil)
		return
	}
	r.SetJSONProperty("Execution", value)
}

func NewWorkflowWaitForChildRequest() *WorkflowWaitForChildRequest {
	return &WorkflowWaitForChildRequest{
		WorkflowRequest: newWorkflowRequest(WorkflowWaitForChildRequestType, WorkflowWaitForChildReplyType),
	}
}

func (r *WorkflowWaitForChildRequest) GetChildId() int64 {
	return r.GetLongProperty("ChildId")
}

func (r *WorkflowWaitForChildRequest) SetChildId(value int64) {
	r.SetLongProperty("ChildId", value)
}

func NewWorkflowWaitForChildReply() *WorkflowWaitForChildReply {
	return &WorkflowWaitForChildReply{
		WorkflowReply: newWorkflowReply(WorkflowWaitForChildReplyType),
	}
}

func (r *WorkflowWaitForChildReply) GetResult() []byte {
	return r.GetBytesProperty("Result")
}

func (r *WorkflowWaitForChildReply) SetResult(value []byte) {
	r.SetBytesProperty("Result", value)
}

func NewWorkflowSignalChildRequest() *WorkflowSignalChildRequest {
	return &WorkflowSignalChildRequest{
		WorkflowRequest: newWorkflowRequest(WorkflowSignalChildRequestType, WorkflowSignalChildReplyType),
	}
}

func (r *WorkflowSignalChildRequest) GetChildId() int64 {
	return r.GetLongProperty("ChildId")
}

func (r *WorkflowSignalChildRequest) SetChildId(value int64) {
	r.SetLongProperty("ChildId", value)
}

func (r *WorkflowSignalChildRequest) GetSignalName() *string {
	return r.GetStringProperty("SignalName")
}

func (r *WorkflowSignalChildRequest) SetSignalName(value *string) {
	r.SetStringProperty("SignalName", value)
}

func (r *WorkflowSignalChildRequest) GetSignalArgs() []byte {
	return r.GetBytesProperty("SignalArgs")
}

func (r *WorkflowSignalChildRequest) SetSignalArgs(value []byte) {
	r.SetBytesProperty("SignalArgs", value)
}

func NewWorkflowSignalChildReply() *WorkflowSignalChildReply {
	return &WorkflowSignalChildReply{
		WorkflowReply: newWorkflowReply(WorkflowSignalChildReplyType),
	}
}

func NewWorkflowCancelChildRequest() *WorkflowCancelChildRequest {
	return &WorkflowCancelChildRequest{
		WorkflowRequest: newWorkflowRequest(WorkflowCancelChildRequestType, WorkflowCancelChildReplyType),
	}
}

func (r *WorkflowCancelChildRequest) GetChildId() int64 {
	return r.GetLongProperty("ChildId")
}

func (r *WorkflowCancelChildRequest) SetChildId(value int64) {
	r.SetLongProperty("ChildId", value)
}

func NewWorkflowCancelChildReply() *WorkflowCancelChildReply {
	return &WorkflowCancelChildReply{
		WorkflowReply: newWorkflowReply(WorkflowCancelChildReplyType),
	}
}
