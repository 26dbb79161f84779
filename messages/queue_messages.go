// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package messages

import (
	"time"
)

type (
	// WorkflowQueueNewRequest allocates a workflow queue addressable by
	// QueueId; the queue dies with its owning context
	WorkflowQueueNewRequest struct {
		*WorkflowRequest
	}

	WorkflowQueueNewReply struct {
		*WorkflowReply
	}

	// WorkflowQueueWriteRequest writes one data chunk to a queue
	WorkflowQueueWriteRequest struct {
		*WorkflowRequest
	}

	// WorkflowQueueWriteReply reports whether a no-block write found the
	// queue full
	WorkflowQueueWriteReply struct {
		*WorkflowReply
	}

	// WorkflowQueueReadRequest reads one data chunk, blocking up to
	// Timeout when the queue is empty
	WorkflowQueueReadRequest struct {
		*WorkflowRequest
	}

	WorkflowQueueReadReply struct {
		*WorkflowReply
	}

	// WorkflowQueueCloseRequest closes a queue; idempotent and terminal
	WorkflowQueueCloseRequest struct {
		*WorkflowRequest
	}

	WorkflowQueueCloseReply struct {
		*WorkflowReply
	}
)

func NewWorkflowQueueNewRequest() *WorkflowQueueNewRequest {
	return &WorkflowQueueNewRequest{
		WorkflowRequest: newWorkflowRequest(WorkflowQueueNewRequestType, WorkflowQueueNewReplyType),
	}
}

func (r *WorkflowQueueNewRequest) GetQueueId() int64 {
	return r.GetLongProperty("QueueId")
}

func (r *WorkflowQueueNewRequest) SetQueueId(value int64) {
	r.SetLongProperty("QueueId", value)
}

func (r *WorkflowQueueNewRequest) GetCapacity() int32 {
	return r.GetIntProperty("Capacity")
}

func (r *WorkflowQueueNewRequest) SetCapacity(value int32) {
	r.SetIntProperty("Capacity", value)
}

func NewWorkflowQueueNewReply() *WorkflowQueueNewReply {
	return &WorkflowQueueNewReply{
		WorkflowReply: newWorkflowReply(WorkflowQueueNewReplyType),
	}
}

func NewWorkflowQueueWriteRequest() *WorkflowQueueWriteRequest {
	return &WorkflowQueueWriteRequest{
		WorkflowRequest: newWorkflowRequest(WorkflowQueueWriteRequestType, WorkflowQueueWriteReplyType),
	}
}

func (r *WorkflowQueueWriteRequest) GetQueueId() int64 {
	return r.GetLongProperty("QueueId")
}

func (r *WorkflowQueueWriteRequest) SetQueueId(value int64) {
	r.SetLongProperty("QueueId", value)
}

func (r *WorkflowQueueWriteRequest) GetData() []byte {
	return r.GetBytesProperty("Data")
}

func (r *WorkflowQueueWriteRequest) SetData(value []byte) {
	r.SetBytesProperty("Data", value)
}

// GetNoBlock indicates the write should report a full queue immediately
// instead of blocking
func (r *WorkflowQueueWriteRequest) GetNoBlock() bool {
	return r.GetBoolProperty("NoBlock")
}

func (r *WorkflowQueueWriteRequest) SetNoBlock(value bool) {
	r.SetBoolProperty("NoBlock", value)
}

func NewWorkflowQueueWriteReply() *WorkflowQueueWriteReply {
	return &WorkflowQueueWriteReply{
		WorkflowReply: newWorkflowReply(WorkflowQueueWriteReplyType),
	}
}

func (r *WorkflowQueueWriteReply) GetIsFull() bool {
	return r.GetBoolProperty("IsFull")
}

func (r *WorkflowQueueWriteReply) SetIsFull(value bool) {
	r.SetBoolProperty("IsFull", value)
}

func NewWorkflowQueueReadRequest() *WorkflowQueueReadRequest {
	return &WorkflowQueueReadRequest{
		WorkflowRequest: newWorkflowRequest(WorkflowQueueReadRequestType, WorkflowQueueReadReplyType),
	}
}

func (r *WorkflowQueueReadRequest) GetQueueId() int64 {
	return r.GetLongProperty("QueueId")
}

func (r *WorkflowQueueReadRequest) SetQueueId(value int64) {
	r.SetLongProperty("QueueId", value)
}

func (r *WorkflowQueueReadRequest) GetTimeout() time.Duration {
	return r.GetTimeSpanProperty("Timeout")
}

func (r *WorkflowQueueReadRequest) SetTimeout(value time.Duration) {
	r.SetTimeSpanProperty("Timeout", value)
}

func NewWorkflowQueueReadReply() *WorkflowQueueReadReply {
	return &WorkflowQueueReadReply{
		WorkflowReply: newWorkflowReply(WorkflowQueueReadReplyType),
	}
}

func (r *WorkflowQueueReadReply) GetData() []byte {
	return r.GetBytesProperty("Data")
}

func (r *WorkflowQueueReadReply) SetData(value []byte) {
	r.SetBytesProperty("Data", value)
}

// GetIsClosed distinguishes a closed, drained queue from a read timeout
func (r *WorkflowQueueReadReply) GetIsClosed() bool {
	return r.GetBoolProperty("IsClosed")
}

func (r *WorkflowQueueReadReply) SetIsClosed(value bool) {
	r.SetBoolProperty("IsClosed", value)
}

func NewWorkflowQueueCloseRequest() *WorkflowQueueCloseRequest {
	return &WorkflowQueueCloseRequest{
		WorkflowRequest: newWorkflowRequest(WorkflowQueueCloseRequestType, WorkflowQueueCloseReplyType),
	}
}

func (r *WorkflowQueueCloseRequest) GetQueueId() int64 {
	return r.GetLongProperty("QueueId")
}

func (r *WorkflowQueueCloseRequest) SetQueueId(value int64) {
	r.SetLongProperty("QueueId", value)
}

func NewWorkflowQueueCloseReply() *WorkflowQueueCloseReply {
	return &WorkflowQueueCloseReply{
		WorkflowReply: newWorkflowReply(WorkflowQueueCloseReplyType),
	}
}
