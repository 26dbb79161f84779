// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package messages

import (
	"github.com/flowbridge/flowbridge/common/failure"
)

const propertyError = "Error"

type (
	// ProxyReply is the base for every reply-shaped message; it carries
	// the correlated RequestId and an optional remote failure
	ProxyReply struct {
		*ProxyMessage
	}
)

func newProxyReply(messageType MessageType) *ProxyReply {
	return &ProxyReply{
		ProxyMessage: newProxyMessage(messageType),
	}
}

// GetError returns the remote failure carried by this reply, nil on success
func (r *ProxyReply) GetError() *failure.Failure {
	var f failure.Failure
	if !r.GetJSONProperty(propertyError, &f) {
		return nil
	}
	return &f
}

func (r *ProxyReply) SetError(f *failure.Failure) {
	if f == nil {
		r.SetJSONProperty(propertyError, nil)
		return
	}
	r.SetJSONProperty(propertyError, f)
}
