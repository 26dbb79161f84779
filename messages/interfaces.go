// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package messages

import (
	"github.com/flowbridge/flowbridge/common/failure"
)

type (
	// Message is one typed, self-describing unit exchanged between the
	// client bridge and the proxy process. All state lives in the property
	// bag and attachments of the underlying ProxyMessage, so a message
	// never outlives a single request/reply exchange.
	Message interface {
		// GetProxyMessage returns the underlying envelope
		GetProxyMessage() *ProxyMessage
		// GetType returns the wire code of this message
		GetType() MessageType
		// GetClientId identifies the logical client connection that issued
		// the request; zero until dispatched
		GetClientId() int64
		SetClientId(value int64)
		// GetRequestId is unique per outstanding request on a client;
		// zero until dispatched
		GetRequestId() int64
		SetRequestId(value int64)
		// Clone produces a deep, independent copy of this message
		Clone() Message
		// CopyTo deep-copies this message's state into target
		CopyTo(target Message)
	}

	// Request is a message that expects a correlated reply. The reply type
	// is declared by the request type's constructor and is part of the
	// type's identity, not runtime state.
	Request interface {
		Message
		GetReplyType() MessageType
	}

	// Reply is a correlated answer to a previously dispatched Request
	Reply interface {
		Message
		GetError() *failure.Failure
		SetError(f *failure.Failure)
	}
)

// IsRequestType reports whether a wire code names a request-shaped message
func IsRequestType(t MessageType) bool {
	m, err := NewForType(t)
	if err != nil {
		return false
	}
	_, ok := m.(Request)
	return ok
}
