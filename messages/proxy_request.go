// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package messages

type (
	// ProxyRequest is the base for every request-shaped message. The reply
	// type is fixed by the concrete constructor and is not serialized; the
	// factory restores it on deserialize.
	ProxyRequest struct {
		*ProxyMessage
		replyType MessageType
	}
)

func newProxyRequest(messageType MessageType, replyType MessageType) *ProxyRequest {
	return &ProxyRequest{
		ProxyMessage: newProxyMessage(messageType),
		replyType:    replyType,
	}
}

// GetReplyType returns the wire code of the reply paired with this request
func (r *ProxyRequest) GetReplyType() MessageType {
	return r.replyType
}
