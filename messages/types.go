// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package messages

import (
	"fmt"

	"github.com/iancoleman/strcase"
)

// MessageType is the wire code identifying one message shape. Codes are
// stable; never renumber an existing entry. Client-scoped operations sit in
// [1,100), workflow-scoped in [100,200), activity-scoped in [200,300).
type MessageType int32

const Unspecified MessageType = 0

const (
	// client operations
	InitializeRequestType MessageType = iota + 1
	InitializeReplyType
	ConnectRequestType
	ConnectReplyType
	TerminateRequestType
	TerminateReplyType
	HeartbeatRequestType
	HeartbeatReplyType
	CancelRequestType
	CancelReplyType
)

const (
	// workflow operations
	WorkflowRegisterRequestType MessageType = iota + 100
	WorkflowRegisterReplyType
	WorkflowExecuteRequestType
	WorkflowExecuteReplyType
	WorkflowInvokeRequestType
	WorkflowInvokeReplyType
	WorkflowSignalRequestType
	WorkflowSignalReplyType
	WorkflowSignalInvokeRequestType
	WorkflowSignalInvokeReplyType
	WorkflowQueryRequestType
	WorkflowQueryReplyType
	WorkflowQueryInvokeRequestType
	WorkflowQueryInvokeReplyType
	WorkflowGetResultRequestType
	WorkflowGetResultReplyType
	WorkflowDescribeExecutionRequestType
	WorkflowDescribeExecutionReplyType
	WorkflowGetVersionRequestType
	WorkflowGetVersionReplyType
	WorkflowSleepRequestType
	WorkflowSleepReplyType
	WorkflowDisconnectContextRequestType
	WorkflowDisconnectContextReplyType
	WorkflowFutureReadyRequestType
	WorkflowFutureReadyReplyType
	WorkflowExecuteChildRequestType
	WorkflowExecuteChildReplyType
	WorkflowWaitForChildRequestType
	WorkflowWaitForChildReplyType
	WorkflowSignalChildRequestType
	WorkflowSignalChildReplyType
	WorkflowCancelChildRequestType
	WorkflowCancelChildReplyType
	WorkflowQueueNewRequestType
	WorkflowQueueNewReplyType
	WorkflowQueueWriteRequestType
	WorkflowQueueWriteReplyType
	WorkflowQueueReadRequestType
	WorkflowQueueReadReplyType
	WorkflowQueueCloseRequestType
	WorkflowQueueCloseReplyType
)

const (
	// activity operations
	ActivityRegisterRequestType MessageType = iota + 200
	ActivityRegisterReplyType
	ActivityExecuteRequestType
	ActivityExecuteReplyType
	ActivityInvokeRequestType
	ActivityInvokeReplyType
	ActivityExecuteLocalRequestType
	ActivityExecuteLocalReplyType
	ActivityInvokeLocalRequestType
	ActivityInvokeLocalReplyType
	ActivityRecordHeartbeatRequestType
	ActivityRecordHeartbeatReplyType
	ActivityHasHeartbeatDetailsRequestType
	ActivityHasHeartbeatDetailsReplyType
	ActivityGetHeartbeatDetailsRequestType
	ActivityGetHeartbeatDetailsReplyType
	ActivityCompleteRequestType
	ActivityCompleteReplyType
	ActivityGetInfoRequestType
	ActivityGetInfoReplyType
	ActivityStoppingRequestType
	ActivityStoppingReplyType
)

var messageTypeNames = map[MessageType]string{
	Unspecified: "Unspecified",

	InitializeRequestType: "InitializeRequest",
	InitializeReplyType:   "InitializeReply",
	ConnectRequestType:    "ConnectRequest",
	ConnectReplyType:      "ConnectReply",
	TerminateRequestType:  "TerminateRequest",
	TerminateReplyType:    "TerminateReply",
	HeartbeatRequestType:  "HeartbeatRequest",
	HeartbeatReplyType:    "HeartbeatReply",
	CancelRequestType:     "CancelRequest",
	CancelReplyType:       "CancelReply",

	WorkflowRegisterRequestType:          "WorkflowRegisterRequest",
	WorkflowRegisterReplyType:            "WorkflowRegisterReply",
	WorkflowExecuteRequestType:           "WorkflowExecuteRequest",
	WorkflowExecuteReplyType:             "WorkflowExecuteReply",
	WorkflowInvokeRequestType:            "WorkflowInvokeRequest",
	WorkflowInvokeReplyType:              "WorkflowInvokeReply",
	WorkflowSignalRequestType:            "WorkflowSignalRequest",
	WorkflowSignalReplyType:              "WorkflowSignalReply",
	WorkflowSignalInvokeRequestType:      "WorkflowSignalInvokeRequest",
	WorkflowSignalInvokeReplyType:        "WorkflowSignalInvokeReply",
	WorkflowQueryRequestType:             "WorkflowQueryRequest",
	WorkflowQueryReplyType:               "WorkflowQueryReply",
	WorkflowQueryInvokeRequestType:       "WorkflowQueryInvokeRequest",
	WorkflowQueryInvokeReplyType:         "WorkflowQueryInvokeReply",
	WorkflowGetResultRequestType:         "WorkflowGetResultRequest",
	WorkflowGetResultReplyType:           "WorkflowGetResultReply",
	WorkflowDescribeExecutionRequestType: "WorkflowDescribeExecutionRequest",
	WorkflowDescribeExecutionReplyType:   "WorkflowDescribeExecutionReply",
	WorkflowGetVersionRequestType:        "WorkflowGetVersionRequest",
	WorkflowGetVersionReplyType:          "WorkflowGetVersionReply",
	WorkflowSleepRequestType:             "WorkflowSleepRequest",
	WorkflowSleepReplyType:               "WorkflowSleepReply",
	WorkflowDisconnectContextRequestType: "WorkflowDisconnectContextRequest",
	WorkflowDisconnectContextReplyType:   "WorkflowDisconnectContextReply",
	WorkflowFutureReadyRequestType:       "WorkflowFutureReadyRequest",
	WorkflowFutureReadyReplyType:         "WorkflowFutureReadyReply",
	WorkflowExecuteChildRequestType:      "WorkflowExecuteChildRequest",
	WorkflowExecuteChildReplyType:        "WorkflowExecuteChildReply",
	WorkflowWaitForChildRequestType:      "WorkflowWaitForChildRequest",
	WorkflowWaitForChildReplyType:        "WorkflowWaitForChildReply",
	WorkflowSignalChildRequestType:       "WorkflowSignalChildRequest",
	WorkflowSignalChildReplyType:         "WorkflowSignalChildReply",
	WorkflowCancelChildRequestType:       "WorkflowCancelChildRequest",
	WorkflowCancelChildReplyType:         "WorkflowCancelChildReply",
	WorkflowQueueNewRequestType:          "WorkflowQueueNewRequest",
	WorkflowQueueNewReplyType:            "WorkflowQueueNewReply",
	WorkflowQueueWriteRequestType:        "WorkflowQueueWriteRequest",
	WorkflowQueueWriteReplyType:          "WorkflowQueueWriteReply",
	WorkflowQueueReadRequestType:         "WorkflowQueueReadRequest",
	WorkflowQueueReadReplyType:           "WorkflowQueueReadReply",
	WorkflowQueueCloseRequestType:        "WorkflowQueueCloseRequest",
	WorkflowQueueCloseReplyType:          "WorkflowQueueCloseReply",

	ActivityRegisterRequestType:            "ActivityRegisterRequest",
	ActivityRegisterReplyType:              "ActivityRegisterReply",
	ActivityExecuteRequestType:             "ActivityExecuteRequest",
	ActivityExecuteReplyType:               "ActivityExecuteReply",
	ActivityInvokeRequestType:              "ActivityInvokeRequest",
	ActivityInvokeReplyType:                "ActivityInvokeReply",
	ActivityExecuteLocalRequestType:        "ActivityExecuteLocalRequest",
	ActivityExecuteLocalReplyType:          "ActivityExecuteLocalReply",
	ActivityInvokeLocalRequestType:         "ActivityInvokeLocalRequest",
	ActivityInvokeLocalReplyType:           "ActivityInvokeLocalReply",
	ActivityRecordHeartbeatRequestType:     "ActivityRecordHeartbeatRequest",
	ActivityRecordHeartbeatReplyType:       "ActivityRecordHeartbeatReply",
	ActivityHasHeartbeatDetailsRequestType: "ActivityHasHeartbeatDetailsRequest",
	ActivityHasHeartbeatDetailsReplyType:   "ActivityHasHeartbeatDetailsReply",
	ActivityGetHeartbeatDetailsRequestType: "ActivityGetHeartbeatDetailsRequest",
	ActivityGetHeartbeatDetailsReplyType:   "ActivityGetHeartbeatDetailsReply",
	ActivityCompleteRequestType:            "ActivityCompleteRequest",
	ActivityCompleteReplyType:              "ActivityCompleteReply",
	ActivityGetInfoRequestType:             "ActivityGetInfoRequest",
	ActivityGetInfoReplyType:               "ActivityGetInfoReply",
	ActivityStoppingRequestType:            "ActivityStoppingRequest",
	ActivityStoppingReplyType:              "ActivityStoppingReply",
}

func (t MessageType) String() string {
	if name, ok := messageTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("MessageType(%d)", int32(t))
}

// WireName returns the kebab-case form used in logs and route labels
func (t MessageType) WireName() string {
	return strcase.ToKebab(t.String())
}
