// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package messages

import (
	"github.com/flowbridge/flowbridge/common/failure"
	"github.com/flowbridge/flowbridge/common/types"
)

type (
	// ActivityRegisterRequest registers an activity type name with the
	// proxy-side worker; local activities are never registered remotely
	ActivityRegisterRequest struct {
		*ActivityRequest
	}

	ActivityRegisterReply struct {
		*ActivityReply
	}

	// ActivityExecuteRequest schedules a remote activity against a task
	// queue on behalf of the requesting context
	ActivityExecuteRequest struct {
		*ActivityRequest
	}

	ActivityExecuteReply struct {
		*ActivityReply
	}

	// ActivityInvokeRequest is sent proxy->client to run a registered
	// activity handler
	ActivityInvokeRequest struct {
		*ActivityRequest
	}

	// ActivityInvokeReply completes an activity invocation. Pending=true
	// means the handler declared external completion and the result will
	// arrive later by token or by (execution, activityId).
	ActivityInvokeReply struct {
		*ActivityReply
	}

	// ActivityExecuteLocalRequest runs an activity in-process; local
	// activities carry a type id instead of a registered type name
	ActivityExecuteLocalRequest struct {
		*ActivityRequest
	}

	ActivityExecuteLocalReply struct {
		*ActivityReply
	}

	// ActivityInvokeLocalRequest is sent proxy->client to run a local
	// activity handler
	ActivityInvokeLocalRequest struct {
		*ActivityRequest
	}

	ActivityInvokeLocalReply struct {
		*ActivityReply
	}

	// ActivityRecordHeartbeatRequest records a heartbeat for an activity,
	// addressed by task token or by (workflowId, runId, activityId)
	ActivityRecordHeartbeatRequest struct {
		*ActivityRequest
	}

	ActivityRecordHeartbeatReply struct {
		*ActivityReply
	}

	// ActivityHasHeartbeatDetailsRequest asks whether the current task
	// carries heartbeat details from a previous attempt
	ActivityHasHeartbeatDetailsRequest struct {
		*ActivityRequest
	}

	ActivityHasHeartbeatDetailsReply struct {
		*ActivityReply
	}

	// ActivityGetHeartbeatDetailsRequest fetches the heartbeat details of
	// the current task's previous attempt
	ActivityGetHeartbeatDetailsRequest struct {
		*ActivityRequest
	}

	ActivityGetHeartbeatDetailsReply struct {
		*ActivityReply
	}

	// ActivityCompleteRequest completes or fails an externally-completed
	// activity, addressed by task token or by (execution, activityId)
	ActivityCompleteRequest struct {
		*ActivityRequest
	}

	ActivityCompleteReply struct {
		*ActivityReply
	}

	// ActivityGetInfoRequest fetches the in-flight snapshot of an activity
	ActivityGetInfoRequest struct {
		*ActivityRequest
	}

	ActivityGetInfoReply struct {
		*ActivityReply
	}

	// ActivityStoppingRequest tells a running activity handler to stop
	ActivityStoppingRequest struct {
		*ActivityRequest
	}

	ActivityStoppingReply struct {
		*ActivityReply
	}
)

func NewActivityRegisterRequest() *ActivityRegisterRequest {
	return &ActivityRegisterRequest{
		ActivityRequest: newActivityRequest(ActivityRegisterRequestType, ActivityRegisterReplyType),
	}
}

func (r *ActivityRegisterRequest) GetName() *string {
	return r.GetStringProperty("Name")
}

func (r *ActivityRegisterRequest) SetName(value *string) {
	r.SetStringProperty("Name", value)
}

func NewActivityRegisterReply() *ActivityRegisterReply {
	return &ActivityRegisterReply{
		ActivityReply: newActivityReply(ActivityRegisterReplyType),
	}
}

func NewActivityExecuteRequest() *ActivityExecuteRequest {
	return &ActivityExecuteRequest{
		ActivityRequest: newActivityRequest(ActivityExecuteRequestType, ActivityExecuteReplyType),
	}
}

func (r *ActivityExecuteRequest) GetActivity() *string {
	return r.GetStringProperty("Activity")
}

func (r *ActivityExecuteRequest) SetActivity(value *string) {
	r.SetStringProperty("Activity", value)
}

func (r *ActivityExecuteRequest) GetArgs() []byte {
	return r.GetBytesProperty("Args")
}

func (r *ActivityExecuteRequest) SetArgs(value []byte) {
	r.SetBytesProperty("Args", value)
}

func (r *ActivityExecuteRequest) GetNamespace() *string {
	return r.GetStringProperty("Namespace")
}

func (r *ActivityExecuteRequest) SetNamespace(value *string) {
	r.SetStringProperty("Namespace", value)
}

func (r *ActivityExecuteRequest) GetOptions() *types.ActivityOptions {
	var opts types.ActivityOptions
	if !r.GetJSONProperty("Options", &opts) {
		return nil
	}
	return &opts
}

func (r *ActivityExecuteRequest) SetOptions(value *types.ActivityOptions) {
	if value == nil {
		r.SetJSONProperty("Options", nil)
		return
	}
	r.SetJSONProperty("Options", value)
}

func NewActivityExecuteReply() *ActivityExecuteReply {
	return &ActivityExecuteReply{
		ActivityReply: newActivityReply(ActivityExecuteReplyType),
	}
}

func (r *ActivityExecuteReply) GetResult() []byte {
	return r.GetBytesProperty("Result")
}

func (r *ActivityExecuteReply) SetResult(value []byte) {
	r.SetBytesProperty("Result", value)
}

func NewActivityInvokeRequest() *ActivityInvokeRequest {
	return &ActivityInvokeRequest{
		ActivityRequest: newActivityRequest(ActivityInvokeRequestType, ActivityInvokeReplyType),
	}
}

func (r *ActivityInvokeRequest) GetActivity() *string {
	return r.GetStringProperty("Activity")
}

func (r *ActivityInvokeRequest) SetActivity(value *string) {
	r.SetStringProperty("Activity", value)
}

func (r *ActivityInvokeRequest) GetArgs() []byte {
	return r.GetBytesProperty("Args")
}

func (r *ActivityInvokeRequest) SetArgs(value []byte) {
	r.SetBytesProperty("Args", value)
}

func (r *ActivityInvokeRequest) GetTask() *types.ActivityTask {
	var task types.ActivityTask
	if !r.GetJSONProperty("Task", &task) {
		return nil
	}
	return &task
}

func (r *ActivityInvokeRequest) SetTask(value *types.ActivityTask) {
	if value == nil {
		r.SetJSONProperty("Task", nil)
		return
	}
	r.SetJSONProperty("Task", value)
}

func NewActivityInvokeReply() *ActivityInvokeReply {
	return &ActivityInvokeReply{
		ActivityReply: newActivityReply(ActivityInvokeReplyType),
	}
}

func (r *ActivityInvokeReply) GetResult() []byte {
	return r.GetBytesProperty("Result")
}

func (r *ActivityInvokeReply) SetResult(value []byte) {
	r.SetBytesProperty("Result", value)
}

// GetPending reports that the handler declared DoNotCompleteOnReturn
func (r *ActivityInvokeReply) GetPending() bool {
	return r.GetBoolProperty("Pending")
}

func (r *ActivityInvokeReply) SetPending(value bool) {
	r.SetBoolProperty("Pending", value)
}

func NewActivityExecuteLocalRequest() *ActivityExecuteLocalRequest {
	return &ActivityExecuteLocalRequest{
		ActivityRequest: newActivityRequest(ActivityExecuteLocalRequestType, ActivityExecuteLocalReplyType),
	}
}

// GetActivityTypeId identifies the local activity handler; local
// activities have no remote type registration
func (r *ActivityExecuteLocalRequest) GetActivityTypeId() int64 {
	return r.GetLongProperty("ActivityTypeId")
}

func (r *ActivityExecuteLocalRequest) SetActivityTypeId(value int64) {
	r.SetLongProperty("ActivityTypeId", value)
}

func (r *ActivityExecuteLocalRequest) GetArgs() []byte {
	return r.GetBytesProperty("Args")
}

func (r *ActivityExecuteLocalRequest) SetArgs(value []byte) {
	r.SetBytesProperty("Args", value)
}

func NewActivityExecuteLocalReply() *ActivityExecuteLocalReply {
	return &ActivityExecuteLocalReply{
		ActivityReply: newActivityReply(ActivityExecuteLocalReplyType),
	}
}

func (r *ActivityExecuteLocalReply) GetResult() []byte {
	return r.GetBytesProperty("Result")
}

func (r *ActivityExecuteLocalReply) SetResult(value []byte) {
	r.SetBytesProperty("Result", value)
}

func NewActivityInvokeLocalRequest() *ActivityInvokeLocalRequest {
	return &ActivityInvokeLocalRequest{
		ActivityRequest: newActivityRequest(ActivityInvokeLocalRequestType, ActivityInvokeLocalReplyType),
	}
}

func (r *ActivityInvokeLocalRequest) GetActivityTypeId() int64 {
	return r.GetLongProperty("ActivityTypeId")
}

func (r *ActivityInvokeLocalRequest) SetActivityTypeId(value int64) {
	r.SetLongProperty("ActivityTypeId", value)
}

func (r *ActivityInvokeLocalRequest) GetArgs() []byte {
	return r.GetBytesProperty("Args")
}

func (r *ActivityInvokeLocalRequest) SetArgs(value []byte) {
	r.SetBytesProperty("Args", value)
}

func NewActivityInvokeLocalReply() *ActivityInvokeLocalReply {
	return &ActivityInvokeLocalReply{
		ActivityReply: newActivityReply(ActivityInvokeLocalReplyType),
	}
}

func (r *ActivityInvokeLocalReply) GetResult() []byte {
	return r.GetBytesProperty("Result")
}

func (r *ActivityInvokeLocalReply) SetResult(value []byte) {
	r.SetBytesProperty("Result", value)
}

func NewActivityRecordHeartbeatRequest() *ActivityRecordHeartbeatRequest {
	return &ActivityRecordHeartbeatRequest{
		ActivityRequest: newActivityRequest(ActivityRecordHeartbeatRequestType, ActivityRecordHeartbeatReplyType),
	}
}

func (r *ActivityRecordHeartbeatRequest) GetTaskToken() []byte {
	return r.GetBytesProperty("TaskToken")
}

func (r *ActivityRecordHeartbeatRequest) SetTaskToken(value []byte) {
	r.SetBytesProperty("TaskToken", value)
}

func (r *ActivityRecordHeartbeatRequest) GetWorkflowId() *string {
	return r.GetStringProperty("WorkflowId")
}

func (r *ActivityRecordHeartbeatRequest) SetWorkflowId(value *string) {
	r.SetStringProperty("WorkflowId", value)
}

func (r *ActivityRecordHeartbeatRequest) GetRunId() *string {
	return r.GetStringProperty("RunId")
}

func (r *ActivityRecordHeartbeatRequest) SetRunId(value *string) {
	r.SetStringProperty("RunId", value)
}

func (r *ActivityRecordHeartbeatRequest) GetActivityId() *string {
	return r.GetStringProperty("ActivityId")
}

func (r *ActivityRecordHeartbeatRequest) SetActivityId(value *string) {
	r.SetStringProperty("ActivityId", value)
}

func (r *ActivityRecordHeartbeatRequest) GetDetails() []byte {
	return r.GetBytesProperty("Details")
}

func (r *ActivityRecordHeartbeatRequest) SetDetails(value []byte) {
	r.SetBytesProperty("Details", value)
}

func NewActivityRecordHeartbeatReply() *ActivityRecordHeartbeatReply {
	return &ActivityRecordHeartbeatReply{
		ActivityReply: newActivityReply(ActivityRecordHeartbeatReplyType),
	}
}

func NewActivityHasHeartbeatDetailsRequest() *ActivityHasHeartbeatDetailsRequest {
	return &ActivityHasHeartbeatDetailsRequest{
		ActivityRequest: newActivityRequest(ActivityHasHeartbeatDetailsRequestType, ActivityHasHeartbeatDetailsReplyType),
	}
}

func NewActivityHasHeartbeatDetailsReply() *ActivityHasHeartbeatDetailsReply {
	return &ActivityHasHeartbeatDetailsReply{
		ActivityReply: newActivityReply(ActivityHasHeartbeatDetailsReplyType),
	}
}

func (r *ActivityHasHeartbeatDetailsReply) GetHasDetails() bool {
	return r.GetBoolProperty("HasDetails")
}

func (r *ActivityHasHeartbeatDetailsReply) SetHasDetails(value bool) {
	r.SetBoolProperty("HasDetails", value)
}

func NewActivityGetHeartbeatDetailsRequest() *ActivityGetHeartbeatDetailsRequest {
	return &ActivityGetHeartbeatDetailsRequest{
		ActivityRequest: newActivityRequest(ActivityGetHeartbeatDetailsRequestType, ActivityGetHeartbeatDetailsReplyType),
	}
}

func NewActivityGetHeartbeatDetailsReply() *ActivityGetHeartbeatDetailsReply {
	return &ActivityGetHeartbeatDetailsReply{
		ActivityReply: newActivityReply(ActivityGetHeartbeatDetailsReplyType),
	}
}

func (r *ActivityGetHeartbeatDetailsReply) GetDetails() []byte {
	return r.GetBytesProperty("Details")
}

func (r *ActivityGetHeartbeatDetailsReply) SetDetails(value []byte) {
	r.SetBytesProperty("Details", value)
}

func NewActivityCompleteRequest() *ActivityCompleteRequest {
	return &ActivityCompleteRequest{
		ActivityRequest: newActivityRequest(ActivityCompleteRequestType, ActivityCompleteReplyType),
	}
}

func (r *ActivityCompleteRequest) GetTaskToken() []byte {
	return r.GetBytesProperty("TaskToken")
}

func (r *ActivityCompleteRequest) SetTaskToken(value []byte) {
	r.SetBytesProperty("TaskToken", value)
}

func (r *ActivityCompleteRequest) GetWorkflowId() *string {
	return r.GetStringProperty("WorkflowId")
}

func (r *ActivityCompleteRequest) SetWorkflowId(value *string) {
	r.SetStringProperty("WorkflowId", value)
}

func (r *ActivityCompleteRequest) GetRunId() *string {
	return r.GetStringProperty("RunId")
}

func (r *ActivityCompleteRequest) SetRunId(value *string) {
	r.SetStringProperty("RunId", value)
}

func (r *ActivityCompleteRequest) GetActivityId() *string {
	return r.GetStringProperty("ActivityId")
}

func (r *ActivityCompleteRequest) SetActivityId(value *string) {
	r.SetStringProperty("ActivityId", value)
}

func (r *ActivityCompleteRequest) GetResult() []byte {
	return r.GetBytesProperty("Result")
}

func (r *ActivityCompleteRequest) SetResult(value []byte) {
	r.SetBytesProperty("Result", value)
}

func (r *ActivityCompleteRequest) GetCompletionError() *failure.Failure {
	var f failure.Failure
	if !r.GetJSONProperty("CompletionError", &f) {
		return nil
	}
	return &f
}

func (r *ActivityCompleteRequest) SetCompletionError(value *failure.Failure) {
	if value == nil {
		r.SetJSONProperty("CompletionError", nil)
		return
	}
	r.SetJSONProperty("CompletionError", value)
}

func NewActivityCompleteReply() *ActivityCompleteReply {
	return &ActivityCompleteReply{
		ActivityReply: newActivityReply(ActivityCompleteReplyType),
	}
}

func NewActivityGetInfoRequest() *ActivityGetInfoRequest {
	return &ActivityGetInfoRequest{
		ActivityRequest: newActivityRequest(ActivityGetInfoRequestType, ActivityGetInfoReplyType),
	}
}

func (r *ActivityGetInfoRequest) GetActivityId() *string {
	return r.GetStringProperty("ActivityId")
}

func (r *ActivityGetInfoRequest) SetActivityId(value *string) {
	r.SetStringProperty("ActivityId", value)
}

func NewActivityGetInfoReply() *ActivityGetInfoReply {
	return &ActivityGetInfoReply{
		ActivityReply: newActivityReply(ActivityGetInfoReplyType),
	}
}

func (r *ActivityGetInfoReply) GetInfo() *types.ActivityTask {
	var task types.ActivityTask
	if !r.GetJSONProperty("Info", &task) {
		return nil
	}
	return &task
}

func (r *ActivityGetInfoReply) SetInfo(value *types.ActivityTask) {
	if value == nil {
		r.SetJSONProperty("Info", nil)
		return
	}
	r.SetJSONProperty("Info", value)
}

func NewActivityStoppingRequest() *ActivityStoppingRequest {
	return &ActivityStoppingRequest{
		ActivityRequest: newActivityRequest(ActivityStoppingRequestType, ActivityStoppingReplyType),
	}
}

func (r *ActivityStoppingRequest) GetActivityId() *string {
	return r.GetStringProperty("ActivityId")
}

func (r *ActivityStoppingRequest) SetActivityId(value *string) {
	r.SetStringProperty("ActivityId", value)
}

func NewActivityStoppingReply() *ActivityStoppingReply {
	return &ActivityStoppingReply{
		ActivityReply: newActivityReply(ActivityStoppingReplyType),
	}
}
