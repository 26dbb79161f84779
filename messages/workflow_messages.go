// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package messages

import (
	"time"

	"github.com/flowbridge/flowbridge/common/types"
)

type (
	// WorkflowRegisterRequest registers a workflow entrypoint name with
	// the proxy-side worker
	WorkflowRegisterRequest struct {
		*WorkflowRequest
	}

	WorkflowRegisterReply struct {
		*WorkflowReply
	}

	// WorkflowExecuteRequest starts a top-level workflow execution
	WorkflowExecuteRequest struct {
		*WorkflowRequest
	}

	WorkflowExecuteReply struct {
		*WorkflowReply
	}

	// WorkflowInvokeRequest is sent proxy->client to run a registered
	// workflow inside a new execution context
	WorkflowInvokeRequest struct {
		*WorkflowRequest
	}

	// WorkflowInvokeReply completes an invocation; it either carries the
	// final result or the continue-as-new successor tuple
	WorkflowInvokeReply struct {
		*WorkflowReply
	}

	// WorkflowSignalRequest signals a running execution addressed by
	// (workflowId, runId)
	WorkflowSignalRequest struct {
		*WorkflowRequest
	}

	WorkflowSignalReply struct {
		*WorkflowReply
	}

	// WorkflowSignalInvokeRequest is sent proxy->client to deliver a
	// signal into a live execution context
	WorkflowSignalInvokeRequest struct {
		*WorkflowRequest
	}

	WorkflowSignalInvokeReply struct {
		*WorkflowReply
	}

	// WorkflowQueryRequest queries a running execution
	WorkflowQueryRequest struct {
		*WorkflowRequest
	}

	WorkflowQueryReply struct {
		*WorkflowReply
	}

	// WorkflowQueryInvokeRequest is sent proxy->client to run a query
	// handler against a live execution context
	WorkflowQueryInvokeRequest struct {
		*WorkflowRequest
	}

	WorkflowQueryInvokeReply struct {
		*WorkflowReply
	}

	// WorkflowGetResultRequest waits for an execution's final result
	WorkflowGetResultRequest struct {
		*WorkflowRequest
	}

	WorkflowGetResultReply struct {
		*WorkflowReply
	}

	// WorkflowDescribeExecutionRequest fetches the introspection snapshot
	// of an execution
	WorkflowDescribeExecutionRequest struct {
		*WorkflowRequest
	}

	WorkflowDescribeExecutionReply struct {
		*WorkflowReply
	}

	// WorkflowGetVersionRequest records or replays a versioning decision
	WorkflowGetVersionRequest struct {
		*WorkflowRequest
	}

	WorkflowGetVersionReply struct {
		*WorkflowReply
	}

	// WorkflowSleepRequest suspends the context for a duration
	WorkflowSleepRequest struct {
		*WorkflowRequest
	}

	WorkflowSleepReply struct {
		*WorkflowReply
	}

	// WorkflowDisconnectContextRequest force-unblocks every pending
	// suspension point of a context and retires it
	WorkflowDisconnectContextRequest struct {
		*WorkflowRequest
	}

	WorkflowDisconnectContextReply struct {
		*WorkflowReply
	}

	// WorkflowFutureReadyRequest notifies that a future operation
	// completed on the proxy side
	WorkflowFutureReadyRequest struct {
		*WorkflowRequest
	}

	WorkflowFutureReadyReply struct {
		*WorkflowReply
	}
)

func NewWorkflowRegisterRequest() *WorkflowRegisterRequest {
	return &WorkflowRegisterRequest{
		WorkflowRequest: newWorkflowRequest(WorkflowRegisterRequestType, WorkflowRegisterReplyType),
	}
}

func (r *WorkflowRegisterRequest) GetName() *string {
	return r.GetStringProperty("Name")
}

func (r *WorkflowRegisterRequest) SetName(value *string) {
	r.SetStringProperty("Name", value)
}

func NewWorkflowRegisterReply() *WorkflowRegisterReply {
	return &WorkflowRegisterReply{
		WorkflowReply: newWorkflowReply(WorkflowRegisterReplyType),
	}
}

func NewWorkflowExecuteRequest() *WorkflowExecuteRequest {
	return &WorkflowExecuteRequest{
		WorkflowRequest: newWorkflowRequest(WorkflowExecuteRequestType, WorkflowExecuteReplyType),
	}
}

func (r *WorkflowExecuteRequest) GetWorkflow() *string {
	return r.GetStringProperty("Workflow")
}

func (r *WorkflowExecuteRequest) SetWorkflow(value *string) {
	r.SetStringProperty("Workflow", value)
}

func (r *WorkflowExecuteRequest) GetNamespace() *string {
	return r.GetStringProperty("Namespace")
}

func (r *WorkflowExecuteRequest) SetNamespace(value *string) {
	r.SetStringProperty("Namespace", value)
}

func (r *WorkflowExecuteRequest) GetArgs() []byte {
	return r.GetBytesProperty("Args")
}

func (r *WorkflowExecuteRequest) SetArgs(value []byte) {
	r.SetBytesProperty("Args", value)
}

func (r *WorkflowExecuteRequest) GetOptions() *types.StartWorkflowOptions {
	var opts types.StartWorkflowOptions
	if !r.GetJSONProperty("Options", &opts) {
		return nil
	}
	return &opts
}

func (r *WorkflowExecuteRequest) SetOptions(value *types.StartWorkflowOptions) {
	if value == nil {
		r.SetJSONProperty("Options", nil)
		return
	}
	r.SetJSONProperty("Options", value)
}

func NewWorkflowExecuteReply() *WorkflowExecuteReply {
	return &WorkflowExecuteReply{
		WorkflowReply: newWorkflowReply(WorkflowExecuteReplyType),
	}
}

func (r *WorkflowExecuteReply) GetExecution() *types.WorkflowExecution {
	var execution types.WorkflowExecution
	if !r.GetJSONProperty("Execution", &execution) {
		return nil
	}
	return &execution
}

func (r *WorkflowExecuteReply) SetExecution(value *types.WorkflowExecution) {
	if value == nil {
		r.SetJSONProperty("Execution", nil)
		return
	}
	r.SetJSONProperty("Execution", value)
}

func NewWorkflowInvokeRequest() *WorkflowInvokeRequest {
	return &WorkflowInvokeRequest{
		WorkflowRequest: newWorkflowRequest(WorkflowInvokeRequestType, WorkflowInvokeReplyType),
	}
}

func (r *WorkflowInvokeRequest) GetName() *string {
	return r.GetStringProperty("Name")
}

func (r *WorkflowInvokeRequest) SetName(value *string) {
	r.SetStringProperty("Name", value)
}

func (r *WorkflowInvokeRequest) GetArgs() []byte {
	return r.GetBytesProperty("Args")
}

func (r *WorkflowInvokeRequest) SetArgs(value []byte) {
	r.SetBytesProperty("Args", value)
}

func (r *WorkflowInvokeRequest) GetWorkflowId() *string {
	return r.GetStringProperty("WorkflowId")
}

func (r *WorkflowInvokeRequest) SetWorkflowId(value *string) {
	r.SetStringProperty("WorkflowId", value)
}

func (r *WorkflowInvokeRequest) GetRunId() *string {
	return r.GetStringProperty("RunId")
}

func (r *WorkflowInvokeRequest) SetRunId(value *string) {
	r.SetStringProperty("RunId", value)
}

func (r *WorkflowInvokeRequest) GetNamespace() *string {
	return r.GetStringProperty("Namespace")
}

func (r *WorkflowInvokeRequest) SetNamespace(value *string) {
	r.SetStringProperty("Namespace", value)
}

func (r *WorkflowInvokeRequest) GetTaskQueue() *string {
	return r.GetStringProperty("TaskQueue")
}

func (r *WorkflowInvokeRequest) SetTaskQueue(value *string) {
	r.SetStringProperty("TaskQueue", value)
}

func (r *WorkflowInvokeRequest) GetReplayStatus() types.ReplayStatus {
	return types.ReplayStatus(r.GetIntProperty("ReplayStatus"))
}

func (r *WorkflowInvokeRequest) SetReplayStatus(value types.ReplayStatus) {
	r.SetIntProperty("ReplayStatus", int32(value))
}

func NewWorkflowInvokeReply() *WorkflowInvokeReply {
	return &WorkflowInvokeReply{
		WorkflowReply: newWorkflowReply(WorkflowInvokeReplyType),
	}
}

func (r *WorkflowInvokeReply) GetResult() []byte {
	return r.GetBytesProperty("Result")
}

func (r *WorkflowInvokeReply) SetResult(value []byte) {
	r.SetBytesProperty("Result", value)
}

func (r *WorkflowInvokeReply) GetContinueAsNew() bool {
	return r.GetBoolProperty("ContinueAsNew")
}

func (r *WorkflowInvokeReply) SetContinueAsNew(value bool) {
	r.SetBoolProperty("ContinueAsNew", value)
}

func (r *WorkflowInvokeReply) GetContinueAsNewOptions() *types.ContinueAsNewOptions {
	var opts types.ContinueAsNewOptions
	if !r.GetJSONProperty("ContinueAsNewOptions", &opts) {
		return nil
	}
	return &opts
}

func (r *WorkflowInvokeReply) SetContinueAsNewOptions(value *types.ContinueAsNewOptions) {
	if value == nil {
		r.SetJSONProperty("ContinueAsNewOptions", nil)
		return
	}
	r.SetJSONProperty("ContinueAsNewOptions", value)
}

func NewWorkflowSignalRequest() *WorkflowSignalRequest {
	return &WorkflowSignalRequest{
		WorkflowRequest: newWorkflowRequest(WorkflowSignalRequestType, WorkflowSignalReplyType),
	}
}

func (r *WorkflowSignalRequest) GetWorkflowId() *string {
	return r.GetStringProperty("WorkflowId")
}

func (r *WorkflowSignalRequest) SetWorkflowId(value *string) {
	r.SetStringProperty("WorkflowId", value)
}

func (r *WorkflowSignalRequest) GetRunId() *string {
	return r.GetStringProperty("RunId")
}

func (r *WorkflowSignalRequest) SetRunId(value *string) {
	r.SetStringProperty("RunId", value)
}

func (r *WorkflowSignalRequest) GetSignalName() *string {
	return r.GetStringProperty("SignalName")
}

func (r *WorkflowSignalRequest) SetSignalName(value *string) {
	r.SetStringProperty("SignalName", value)
}

func (r *WorkflowSignalRequest) GetSignalArgs() []byte {
	return r.GetBytesProperty("SignalArgs")
}

func (r *WorkflowSignalRequest) SetSignalArgs(value []byte) {
	r.SetBytesProperty("SignalArgs", value)
}

func NewWorkflowSignalReply() *WorkflowSignalReply {
	return &WorkflowSignalReply{
		WorkflowReply: newWorkflowReply(WorkflowSignalReplyType),
	}
}

func NewWorkflowSignalInvokeRequest() *WorkflowSignalInvokeRequest {
	return &WorkflowSignalInvokeRequest{
		WorkflowRequest: newWorkflowRequest(WorkflowSignalInvokeRequestType, WorkflowSignalInvokeReplyType),
	}
}

func (r *WorkflowSignalInvokeRequest) GetSignalName() *string {
	return r.GetStringProperty("SignalName")
}

func (r *WorkflowSignalInvokeRequest) SetSignalName(value *string) {
	r.SetStringProperty("SignalName", value)
}

func (r *WorkflowSignalInvokeRequest) GetSignalArgs() []byte {
	return r.GetBytesProperty("SignalArgs")
}

func (r *WorkflowSignalInvokeRequest) SetSignalArgs(value []byte) {
	r.SetBytesProperty("SignalArgs", value)
}

func (r *WorkflowSignalInvokeRequest) GetReplayStatus() types.ReplayStatus {
	return types.ReplayStatus(r.GetIntProperty("ReplayStatus"))
}

func (r *WorkflowSignalInvokeRequest) SetReplayStatus(value types.ReplayStatus) {
	r.SetIntProperty("ReplayStatus", int32(value))
}

func NewWorkflowSignalInvokeReply() *WorkflowSignalInvokeReply {
	return &WorkflowSignalInvokeReply{
		WorkflowReply: newWorkflowReply(WorkflowSignalInvokeReplyType),
	}
}

func (r *WorkflowSignalInvokeReply) GetResult() []byte {
	return r.GetBytesProperty("Result")
}

func (r *WorkflowSignalInvokeReply) SetResult(value []byte) {
	r.SetBytesProperty("Result", value)
}

func NewWorkflowQueryRequest() *WorkflowQueryRequest {
	return &WorkflowQueryRequest{
		WorkflowRequest: newWorkflowRequest(WorkflowQueryRequestType, WorkflowQueryReplyType),
	}
}

func (r *WorkflowQueryRequest) GetWorkflowId() *string {
	return r.GetStringProperty("WorkflowId")
}

func (r *WorkflowQueryRequest) SetWorkflowId(value *string) {
	r.SetStringProperty("WorkflowId", value)
}

func (r *WorkflowQueryRequest) GetRunId() *string {
	return r.GetStringProperty("RunId")
}

func (r *WorkflowQueryRequest) SetRunId(value *string) {
	r.SetStringProperty("RunId", value)
}

func (r *WorkflowQueryRequest) GetQueryName() *string {
	return r.GetStringProperty("QueryName")
}

func (r *WorkflowQueryRequest) SetQueryName(value *string) {
	r.SetStringProperty("QueryName", value)
}

func (r *WorkflowQueryRequest) GetQueryArgs() []byte {
	return r.GetBytesProperty("QueryArgs")
}

func (r *WorkflowQueryRequest) SetQueryArgs(value []byte) {
	r.SetBytesProperty("QueryArgs", value)
}

func NewWorkflowQueryReply() *WorkflowQueryReply {
	return &WorkflowQueryReply{
		WorkflowReply: newWorkflowReply(WorkflowQueryReplyType),
	}
}

func (r *WorkflowQueryReply) GetResult() []byte {
	return r.GetBytesProperty("Result")
}

func (r *WorkflowQueryReply) SetResult(value []byte) {
	r.SetBytesProperty("Result", value)
}

func NewWorkflowQueryInvokeRequest() *WorkflowQueryInvokeRequest {
	return &WorkflowQueryInvokeRequest{
		WorkflowRequest: newWorkflowRequest(WorkflowQueryInvokeRequestType, WorkflowQueryInvokeReplyType),
	}
}

func (r *WorkflowQueryInvokeRequest) GetQueryName() *string {
	return r.GetStringProperty("QueryName")
}

func (r *WorkflowQueryInvokeRequest) SetQueryName(value *string) {
	r.SetStringProperty("QueryName", value)
}

func (r *WorkflowQueryInvokeRequest) GetQueryArgs() []byte {
	return r.GetBytesProperty("QueryArgs")
}

func (r *WorkflowQueryInvokeRequest) SetQueryArgs(value []byte) {
	r.SetBytesProperty("QueryArgs", value)
}

func (r *WorkflowQueryInvokeRequest) GetReplayStatus() types.ReplayStatus {
	return types.ReplayStatus(r.GetIntProperty("ReplayStatus"))
}

func (r *WorkflowQueryInvokeRequest) SetReplayStatus(value types.ReplayStatus) {
	r.SetIntProperty("ReplayStatus", int32(value))
}

func NewWorkflowQueryInvokeReply() *WorkflowQueryInvokeReply {
	return &WorkflowQueryInvokeReply{
		WorkflowReply: newWorkflowReply(WorkflowQueryInvokeReplyType),
	}
}

func (r *WorkflowQueryInvokeReply) GetResult() []byte {
	return r.GetBytesProperty("Result")
}

func (r *WorkflowQueryInvokeReply) SetResult(value []byte) {
	r.SetBytesProperty("Result", value)
}

func NewWorkflowGetResultRequest() *WorkflowGetResultRequest {
	return &WorkflowGetResultRequest{
		WorkflowRequest: newWorkflowRequest(WorkflowGetResultRequestType, WorkflowGetResultReplyType),
	}
}

func (r *WorkflowGetResultRequest) GetWorkflowId() *string {
	return r.GetStringProperty("WorkflowId")
}

func (r *WorkflowGetResultRequest) SetWorkflowId(value *string) {
	r.SetStringProperty("WorkflowId", value)
}

func (r *WorkflowGetResultRequest) GetRunId() *string {
	return r.GetStringProperty("RunId")
}

func (r *WorkflowGetResultRequest) SetRunId(value *string) {
	r.SetStringProperty("RunId", value)
}

func NewWorkflowGetResultReply() *WorkflowGetResultReply {
	return &WorkflowGetResultReply{
		WorkflowReply: newWorkflowReply(WorkflowGetResultReplyType),
	}
}

func (r *WorkflowGetResultReply) GetResult() []byte {
	return r.GetBytesProperty("Result")
}

func (r *WorkflowGetResultReply) SetResult(value []byte) {
	r.SetBytesProperty("Result", value)
}

func NewWorkflowDescribeExecutionRequest() *WorkflowDescribeExecutionRequest {
	return &WorkflowDescribeExecutionRequest{
		WorkflowRequest: newWorkflowRequest(WorkflowDescribeExecutionRequestType, WorkflowDescribeExecutionReplyType),
	}
}

func (r *WorkflowDescribeExecutionRequest) GetWorkflowId() *string {
	return r.GetStringProperty("WorkflowId")
}

func (r *WorkflowDescribeExecutionRequest) SetWorkflowId(value *string) {
	r.SetStringProperty("WorkflowId", value)
}

func (r *WorkflowDescribeExecutionRequest) GetRunId() *string {
	return r.GetStringProperty("RunId")
}

func (r *WorkflowDescribeExecutionRequest) SetRunId(value *string) {
	r.SetStringProperty("RunId", value)
}

func NewWorkflowDescribeExecutionReply() *WorkflowDescribeExecutionReply {
	return &WorkflowDescribeExecutionReply{
		WorkflowReply: newWorkflowReply(WorkflowDescribeExecutionReplyType),
	}
}

func (r *WorkflowDescribeExecutionReply) GetDetails() *types.WorkflowExecutionDescription {
	var details types.WorkflowExecutionDescription
	if !r.GetJSONProperty("Details", &details) {
		return nil
	}
	return &details
}

func (r *WorkflowDescribeExecutionReply) SetDetails(value *types.WorkflowExecutionDescription) {
	if value == nil {
		r.SetJSONProperty("Details", nil)
		return
	}
	r.SetJSONProperty("Details", value)
}

func NewWorkflowGetVersionRequest() *WorkflowGetVersionRequest {
	return &WorkflowGetVersionRequest{
		WorkflowRequest: newWorkflowRequest(WorkflowGetVersionRequestType, WorkflowGetVersionReplyType),
	}
}

func (r *WorkflowGetVersionRequest) GetChangeId() *string {
	return r.GetStringProperty("ChangeId")
}

func (r *WorkflowGetVersionRequest) SetChangeId(value *string) {
	r.SetStringProperty("ChangeId", value)
}

func (r *WorkflowGetVersionRequest) GetMinSupported() int32 {
	return r.GetIntProperty("MinSupported")
}

func (r *WorkflowGetVersionRequest) SetMinSupported(value int32) {
	r.SetIntProperty("MinSupported", value)
}

func (r *WorkflowGetVersionRequest) GetMaxSupported() int32 {
	return r.GetIntProperty("MaxSupported")
}

func (r *WorkflowGetVersionRequest) SetMaxSupported(value int32) {
	r.SetIntProperty("MaxSupported", value)
}

func NewWorkflowGetVersionReply() *WorkflowGetVersionReply {
	return &WorkflowGetVersionReply{
		WorkflowReply: newWorkflowReply(WorkflowGetVersionReplyType),
	}
}

func (r *WorkflowGetVersionReply) GetVersion() int32 {
	return r.GetIntProperty("Version")
}

func (r *WorkflowGetVersionReply) SetVersion(value int32) {
	r.SetIntProperty("Version", value)
}

func NewWorkflowSleepRequest() *WorkflowSleepRequest {
	return &WorkflowSleepRequest{
		WorkflowRequest: newWorkflowRequest(WorkflowSleepRequestType, WorkflowSleepReplyType),
	}
}

func (r *WorkflowSleepRequest) GetDuration() time.Duration {
	return r.GetTimeSpanProperty("Duration")
}

func (r *WorkflowSleepRequest) SetDuration(value time.Duration) {
	r.SetTimeSpanProperty("Duration", value)
}

func NewWorkflowSleepReply() *WorkflowSleepReply {
	return &WorkflowSleepReply{
		WorkflowReply: newWorkflowReply(WorkflowSleepReplyType),
	}
}

func NewWorkflowDisconnectContextRequest() *WorkflowDisconnectContextRequest {
	return &WorkflowDisconnectContextRequest{
		WorkflowRequest: newWorkflowRequest(WorkflowDisconnectContextRequestType, WorkflowDisconnectContextReplyType),
	}
}

func NewWorkflowDisconnectContextReply() *WorkflowDisconnectContextReply {
	return &WorkflowDisconnectContextReply{
		WorkflowReply: newWorkflowReply(WorkflowDisconnectContextReplyType),
	}
}

func NewWorkflowFutureReadyRequest() *WorkflowFutureReadyRequest {
	return &WorkflowFutureReadyRequest{
		WorkflowRequest: newWorkflowRequest(WorkflowFutureReadyRequestType, WorkflowFutureReadyReplyType),
	}
}

// GetFutureOperationId identifies the future minted when the operation was
// scheduled; stable for the operation's lifetime
func (r *WorkflowFutureReadyRequest) GetFutureOperationId() int64 {
	return r.GetLongProperty("FutureOperationId")
}

func (r *WorkflowFutureReadyRequest) SetFutureOperationId(value int64) {
	r.SetLongProperty("FutureOperationId", value)
}

func NewWorkflowFutureReadyReply() *WorkflowFutureReadyReply {
	return &WorkflowFutureReadyReply{
		WorkflowReply: newWorkflowReply(WorkflowFutureReadyReplyType),
	}
}
