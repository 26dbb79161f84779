// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"

	"github.com/flowbridge/flowbridge/activity"
	"github.com/flowbridge/flowbridge/client"
	"github.com/flowbridge/flowbridge/common/failure"
	"github.com/flowbridge/flowbridge/common/log"
	"github.com/flowbridge/flowbridge/common/log/tag"
	"github.com/flowbridge/flowbridge/messages"
	"github.com/flowbridge/flowbridge/workflow"
)

type serviceImpl struct {
	dispatcher client.Dispatcher
	executor   *workflow.Executor
	activities *activity.Manager
	logger     log.Logger
}

func NewServiceImpl(
	dispatcher client.Dispatcher,
	executor *workflow.Executor,
	activities *activity.Manager,
	logger log.Logger,
) Service {
	return &serviceImpl{
		dispatcher: dispatcher,
		executor:   executor,
		activities: activities,
		logger:     logger,
	}
}

func (s *serviceImpl) ProcessMessage(ctx context.Context, m messages.Message) error {
	if reply, ok := m.(messages.Reply); ok {
		return s.dispatcher.HandleReply(reply)
	}

	switch req := m.(type) {
	case *messages.HeartbeatRequest:
		return s.acknowledge(req)

	case *messages.WorkflowInvokeRequest:
		return s.executor.HandleInvoke(req)
	case *messages.WorkflowSignalInvokeRequest:
		return s.executor.HandleSignalInvoke(req)
	case *messages.WorkflowQueryInvokeRequest:
		return s.executor.HandleQueryInvoke(req)
	case *messages.WorkflowDisconnectContextRequest:
		return s.executor.HandleDisconnectContext(req)
	case *messages.WorkflowFutureReadyRequest:
		return s.executor.HandleFutureReady(req)
	case *messages.WorkflowQueueWriteRequest:
		return s.executor.HandleQueueWrite(req)
	case *messages.WorkflowQueueReadRequest:
		return s.executor.HandleQueueRead(req)
	case *messages.WorkflowQueueCloseRequest:
		return s.executor.HandleQueueClose(req)

	case *messages.ActivityInvokeRequest:
		return s.activities.HandleInvoke(req)
	case *messages.ActivityInvokeLocalRequest:
		return s.activities.HandleInvokeLocal(req)
	case *messages.ActivityStoppingRequest:
		return s.activities.HandleStopping(req)
	case *messages.ActivityRecordHeartbeatRequest:
		return s.activities.HandleRecordHeartbeat(req)
	case *messages.ActivityCompleteRequest:
		return s.activities.HandleComplete(req)

	default:
		err := failure.NewProtocolError("no inbound route for message type %v", m.GetType())
		s.logger.Error("dropping unroutable message",
			tag.MessageType(m.GetType().String()), tag.Error(err))
		return err
	}
}

// acknowledge answers a connection-liveness probe
func (s *serviceImpl) acknowledge(req *messages.HeartbeatRequest) error {
	reply := messages.NewHeartbeatReply()
	reply.SetClientId(req.GetClientId())
	reply.SetRequestId(req.GetRequestId())
	return s.dispatcher.Send(context.Background(), reply)
}
