// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/flowbridge/flowbridge/messages"
)

type (
	// Transport delivers one serialized message frame to the proxy
	// process. Reliability of the byte stream is the transport's problem;
	// correlation is the dispatcher's.
	Transport interface {
		Send(ctx context.Context, m messages.Message) error
	}

	// Dispatcher stamps outgoing requests with client/request identifiers,
	// parks the caller until the correlated reply arrives, and routes
	// incoming replies back to their waiters
	Dispatcher interface {
		// Request dispatches req and blocks until its reply, ctx
		// cancellation, or transport failure. A remote failure carried by
		// the reply is re-raised as the returned error.
		Request(ctx context.Context, req messages.Request) (messages.Reply, error)
		// Send dispatches a reply or notification with no waiter
		Send(ctx context.Context, m messages.Message) error
		// HandleReply completes the pending waiter correlated with the
		// reply. An unmatched reply is a protocol error.
		HandleReply(reply messages.Reply) error
		// ClientId identifies this logical client connection
		ClientId() int64
	}
)
