// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package messages

const propertyContextId = "ContextId"

type (
	// WorkflowRequest is the base for workflow-scoped requests; ContextId
	// addresses the live execution context the operation targets
	WorkflowRequest struct {
		*ProxyRequest
	}

	// WorkflowReply is the base for workflow-scoped replies
	WorkflowReply struct {
		*ProxyReply
	}
)

func newWorkflowRequest(messageType MessageType, replyType MessageType) *WorkflowRequest {
	return &WorkflowRequest{
		ProxyRequest: newProxyRequest(messageType, replyType),
	}
}

func newWorkflowReply(messageType MessageType) *WorkflowReply {
	return &WorkflowReply{
		ProxyReply: newProxyReply(messageType),
	}
}

func (r *WorkflowRequest) GetContextId() int64 {
	return r.GetLongProperty(propertyContextId)
}

func (r *WorkflowRequest) SetContextId(value int64) {
	r.SetLongProperty(propertyContextId, value)
}

func (r *WorkflowReply) GetContextId() int64 {
	return r.GetLongProperty(propertyContextId)
}

func (r *WorkflowReply) SetContextId(value int64) {
	r.SetLongProperty(propertyContextId, value)
}
