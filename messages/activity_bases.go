// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package messages

const propertyActivityContextId = "ActivityContextId"

type (
	// ActivityRequest is the base for activity-scoped requests
	ActivityRequest struct {
		*ProxyRequest
	}

	// ActivityReply is the base for activity-scoped replies
	ActivityReply struct {
		*ProxyReply
	}
)

func newActivityRequest(messageType MessageType, replyType MessageType) *ActivityRequest {
	return &ActivityRequest{
		ProxyRequest: newProxyRequest(messageType, replyType),
	}
}

func newActivityReply(messageType MessageType) *ActivityReply {
	return &ActivityReply{
		ProxyReply: newProxyReply(messageType),
	}
}

func (r *ActivityRequest) GetContextId() int64 {
	return r.GetLongProperty(propertyActivityContextId)
}

func (r *ActivityRequest) SetContextId(value int64) {
	r.SetLongProperty(propertyActivityContextId, value)
}

func (r *ActivityReply) GetContextId() int64 {
	return r.GetLongProperty(propertyActivityContextId)
}

func (r *ActivityReply) SetContextId(value int64) {
	r.SetLongProperty(propertyActivityContextId, value)
}
