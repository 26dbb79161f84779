// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"

	"github.com/flowbridge/flowbridge/messages"
)

type (
	Server interface {
		// Start will start running on the background
		Start() error
		Stop(ctx context.Context) error
	}

	// Service routes inbound frames, decoupled from the REST framework
	// serving them: replies complete pending waiters in the correlation
	// table, proxy-initiated requests go to the workflow executor or the
	// activity manager
	Service interface {
		ProcessMessage(ctx context.Context, m messages.Message) error
	}
)
