// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package messages

import (
	"github.com/flowbridge/flowbridge/common/failure"
)

// builders maps every wire code to its typed constructor. Deserialize and
// Clone go through this table so the concrete type, and with it the
// request/reply pairing, is always restored.
var builders = map[MessageType]func() Message{
	InitializeRequestType: func() Message { return NewInitializeRequest() },
	InitializeReplyType:   func() Message { return NewInitializeReply() },
	ConnectRequestType:    func() Message { return NewConnectRequest() },
	ConnectReplyType:      func() Message { return NewConnectReply() },
	TerminateRequestType:  func() Message { return NewTerminateRequest() },
	TerminateReplyType:    func() Message { return NewTerminateReply() },
	HeartbeatRequestType:  func() Message { return NewHeartbeatRequest() },
	HeartbeatReplyType:    func() Message { return NewHeartbeatReply() },
	CancelRequestType:     func() Message { return NewCancelRequest() },
	CancelReplyType:       func() Message { return NewCancelReply() },

	WorkflowRegisterRequestType:          func() Message { return NewWorkflowRegisterRequest() },
	WorkflowRegisterReplyType:            func() Message { return NewWorkflowRegisterReply() },
	WorkflowExecuteRequestType:           func() Message { return NewWorkflowExecuteRequest() },
	WorkflowExecuteReplyType:             func() Message { return NewWorkflowExecuteReply() },
	WorkflowInvokeRequestType:            func() Message { return NewWorkflowInvokeRequest() },
	WorkflowInvokeReplyType:              func() Message { return NewWorkflowInvokeReply() },
	WorkflowSignalRequestType:            func() Message { return NewWorkflowSignalRequest() },
	WorkflowSignalReplyType:              func() Message { return NewWorkflowSignalReply() },
	WorkflowSignalInvokeRequestType:      func() Message { return NewWorkflowSignalInvokeRequest() },
	WorkflowSignalInvokeReplyType:        func() Message { return NewWorkflowSignalInvokeReply() },
	WorkflowQueryRequestType:             func() Message { return NewWorkflowQueryRequest() },
	WorkflowQueryReplyType:               func() Message { return NewWorkflowQueryReply() },
	WorkflowQueryInvokeRequestType:       func() Message { return NewWorkflowQueryInvokeRequest() },
	WorkflowQueryInvokeReplyType:         func() Message { return NewWorkflowQueryInvokeReply() },
	WorkflowGetResultRequestType:         func() Message { return NewWorkflowGetResultRequest() },
	WorkflowGetResultReplyType:           func() Message { return NewWorkflowGetResultReply() },
	WorkflowDescribeExecutionRequestType: func() Message { return NewWorkflowDescribeExecutionRequest() },
	WorkflowDescribeExecutionReplyType:   func() Message { return NewWorkflowDescribeExecutionReply() },
	WorkflowGetVersionRequestType:        func() Message { return NewWorkflowGetVersionRequest() },
	WorkflowGetVersionReplyType:          func() Message { return NewWorkflowGetVersionReply() },
	WorkflowSleepRequestType:             func() Message { return NewWorkflowSleepRequest() },
	WorkflowSleepReplyType:               func() Message { return NewWorkflowSleepReply() },
	WorkflowDisconnectContextRequestType: func() Message { return NewWorkflowDisconnectContextRequest() },
	WorkflowDisconnectContextReplyType:   func() Message { return NewWorkflowDisconnectContextReply() },
	WorkflowFutureReadyRequestType:       func() Message { return NewWorkflowFutureReadyRequest() },
	WorkflowFutureReadyReplyType:         func() Message { return NewWorkflowFutureReadyReply() },
	WorkflowExecuteChildRequestType:      func() Message { return NewWorkflowExecuteChildRequest() },
	WorkflowExecuteChildReplyType:        func() Message { return NewWorkflowExecuteChildReply() },
	WorkflowWaitForChildRequestType:      func() Message { return NewWorkflowWaitForChildRequest() },
	WorkflowWaitForChildReplyType:        func() Message { return NewWorkflowWaitForChildReply() },
	WorkflowSignalChildRequestType:       func() Message { return NewWorkflowSignalChildRequest() },
	WorkflowSignalChildReplyType:         func() Message { return NewWorkflowSignalChildReply() },
	WorkflowCancelChildRequestType:       func() Message { return NewWorkflowCancelChildRequest() },
	WorkflowCancelChildReplyType:         func() Message { return NewWorkflowCancelChildReply() },
	WorkflowQueueNewRequestType:          func() Message { return NewWorkflowQueueNewRequest() },
	WorkflowQueueNewReplyType:            func() Message { return NewWorkflowQueueNewReply() },
	WorkflowQueueWriteRequestType:        func() Message { return NewWorkflowQueueWriteRequest() },
	WorkflowQueueWriteReplyType:          func() Message { return NewWorkflowQueueWriteReply() },
	WorkflowQueueReadRequestType:         func() Message { return NewWorkflowQueueReadRequest() },
	WorkflowQueueReadReplyType:           func() Message { return NewWorkflowQueueReadReply() },
	WorkflowQueueCloseRequestType:        func() Message { return NewWorkflowQueueCloseRequest() },
	WorkflowQueueCloseReplyType:          func() Message { return NewWorkflowQueueCloseReply() },

	ActivityRegisterRequestType:            func() Message { return NewActivityRegisterRequest() },
	ActivityRegisterReplyType:              func() Message { return NewActivityRegisterReply() },
	ActivityExecuteRequestType:             func() Message { return NewActivityExecuteRequest() },
	ActivityExecuteReplyType:               func() Message { return NewActivityExecuteReply() },
	ActivityInvokeRequestType:              func() Message { return NewActivityInvokeRequest() },
	ActivityInvokeReplyType:                func() Message { return NewActivityInvokeReply() },
	ActivityExecuteLocalRequestType:        func() Message { return NewActivityExecuteLocalRequest() },
	ActivityExecuteLocalReplyType:          func() Message { return NewActivityExecuteLocalReply() },
	ActivityInvokeLocalRequestType:         func() Message { return NewActivityInvokeLocalRequest() },
	ActivityInvokeLocalReplyType:           func() Message { return NewActivityInvokeLocalReply() },
	ActivityRecordHeartbeatRequestType:     func() Message { return NewActivityRecordHeartbeatRequest() },
	ActivityRecordHeartbeatReplyType:       func() Message { return NewActivityRecordHeartbeatReply() },
	ActivityHasHeartbeatDetailsRequestType: func() Message { return NewActivityHasHeartbeatDetailsRequest() },
	ActivityHasHeartbeatDetailsReplyType:   func() Message { return NewActivityHasHeartbeatDetailsReply() },
	ActivityGetHeartbeatDetailsRequestType: func() Message { return NewActivityGetHeartbeatDetailsRequest() },
	ActivityGetHeartbeatDetailsReplyType:   func() Message { return NewActivityGetHeartbeatDetailsReply() },
	ActivityCompleteRequestType:            func() Message { return NewActivityCompleteRequest() },
	ActivityCompleteReplyType:              func() Message { return NewActivityCompleteReply() },
	ActivityGetInfoRequestType:             func() Message { return NewActivityGetInfoRequest() },
	ActivityGetInfoReplyType:               func() Message { return NewActivityGetInfoReply() },
	ActivityStoppingRequestType:            func() Message { return NewActivityStoppingRequest() },
	ActivityStoppingReplyType:              func() Message { return NewActivityStoppingReply() },
}

// NewForType constructs an empty typed message for a wire code
func NewForType(t MessageType) (Message, error) {
	builder, ok := builders[t]
	if !ok {
		return nil, failure.NewProtocolError("unknown message type %d", int32(t))
	}
	return builder(), nil
}
