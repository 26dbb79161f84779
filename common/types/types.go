// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"time"
)

type (
	// WorkflowExecution identifies one durable workflow run.
	// Immutable once created.
	WorkflowExecution struct {
		WorkflowId string `json:"workflowId"`
		RunId      string `json:"runId"`
	}

	// RetryPolicy is passed to start calls; the bridge itself never
	// retries, it hands the policy to the engine
	RetryPolicy struct {
		InitialInterval    time.Duration `json:"initialInterval"`
		BackoffCoefficient float64       `json:"backoffCoefficient"`
		MaximumInterval    time.Duration `json:"maximumInterval"`
		MaximumAttempts    int32         `json:"maximumAttempts"`
	}

	// StartWorkflowOptions configures a top-level workflow start.
	// Value object; never mutated after being handed to a start call.
	StartWorkflowOptions struct {
		WorkflowId               string        `json:"workflowId"`
		Namespace                string        `json:"namespace"`
		TaskQueue                string        `json:"taskQueue"`
		WorkflowIdReusePolicy    IdReusePolicy `json:"workflowIdReusePolicy"`
		WorkflowExecutionTimeout time.Duration `json:"workflowExecutionTimeout"`
		WorkflowRunTimeout       time.Duration `json:"workflowRunTimeout"`
		WorkflowTaskTimeout      time.Duration `json:"workflowTaskTimeout"`
		RetryPolicy              *RetryPolicy  `json:"retryPolicy,omitempty"`
		CronSchedule             string        `json:"cronSchedule"`
	}

	// ChildWorkflowOptions is a superset of StartWorkflowOptions with the
	// parent/child specific fields
	ChildWorkflowOptions struct {
		StartWorkflowOptions
		ParentClosePolicy   ParentClosePolicy `json:"parentClosePolicy"`
		WaitForCancellation bool              `json:"waitForCancellation"`
	}

	// ContinueAsNewOptions carries the successor run tuple for a
	// continue-as-new transition
	ContinueAsNewOptions struct {
		Workflow                 string        `json:"workflow"`
		TaskQueue                string        `json:"taskQueue"`
		Namespace                string        `json:"namespace"`
		Args                     []byte        `json:"args,omitempty"`
		WorkflowExecutionTimeout time.Duration `json:"workflowExecutionTimeout"`
		WorkflowRunTimeout       time.Duration `json:"workflowRunTimeout"`
		WorkflowTaskTimeout      time.Duration `json:"workflowTaskTimeout"`
		ForceReplay              bool          `json:"forceReplay"`
	}

	// PendingActivityInfo is a read-only snapshot of one in-flight remote
	// activity, used for describe-execution introspection only
	PendingActivityInfo struct {
		ActivityId         string        `json:"activityId"`
		ActivityType       string        `json:"activityType"`
		Attempt            int32         `json:"attempt"`
		MaximumAttempts    int32         `json:"maximumAttempts"`
		ScheduledTime      time.Time     `json:"scheduledTime"`
		LastStartedTime    time.Time     `json:"lastStartedTime"`
		LastHeartbeatTime  time.Time     `json:"lastHeartbeatTime"`
		LastFailureReason  string        `json:"lastFailureReason"`
		LastFailureMessage string        `json:"lastFailureMessage"`
		HeartbeatTimeout   time.Duration `json:"heartbeatTimeout"`
	}

	// PendingChildExecutionInfo is a read-only snapshot of one in-flight
	// child execution
	PendingChildExecutionInfo struct {
		WorkflowId        string            `json:"workflowId"`
		RunId             string            `json:"runId"`
		WorkflowTypeName  string            `json:"workflowTypeName"`
		InitiatedId       int64             `json:"initiatedId"`
		ParentClosePolicy ParentClosePolicy `json:"parentClosePolicy"`
	}

	// WorkflowExecutionDescription is the full introspection snapshot
	// returned by describe-execution
	WorkflowExecutionDescription struct {
		Execution         WorkflowExecution           `json:"execution"`
		WorkflowTypeName  string                      `json:"workflowTypeName"`
		Status            WorkflowExecutionStatus     `json:"status"`
		StartTime         time.Time                   `json:"startTime"`
		CloseTime         time.Time                   `json:"closeTime"`
		PendingActivities []PendingActivityInfo       `json:"pendingActivities,omitempty"`
		PendingChildren   []PendingChildExecutionInfo `json:"pendingChildren,omitempty"`
	}
)

type IdReusePolicy int32

const (
	IdReusePolicyUnspecified IdReusePolicy = iota
	IdReusePolicyAllowDuplicate
	IdReusePolicyAllowDuplicateFailedOnly
	IdReusePolicyRejectDuplicate
)

// ParentClosePolicy governs child-execution fate when its parent terminates
type ParentClosePolicy int32

const (
	ParentClosePolicyUnspecified ParentClosePolicy = iota
	ParentClosePolicyTerminate
	ParentClosePolicyAbandon
	ParentClosePolicyRequestCancel
)

type WorkflowExecutionStatus int32

const (
	WorkflowExecutionStatusUnspecified WorkflowExecutionStatus = iota
	WorkflowExecutionStatusRunning
	WorkflowExecutionStatusCompleted
	WorkflowExecutionStatusFailed
	WorkflowExecutionStatusCanceled
	WorkflowExecutionStatusTerminated
	WorkflowExecutionStatusContinuedAsNew
	WorkflowExecutionStatusTimedOut
)

// ReplayStatus reports whether an execution context is currently
// re-running recorded history
type ReplayStatus int32

const (
	ReplayStatusUnspecified ReplayStatus = iota
	ReplayStatusNotReplaying
	ReplayStatusReplaying
)

func (s ReplayStatus) String() string {
	switch s {
	case ReplayStatusNotReplaying:
		return "NotReplaying"
	case ReplayStatusReplaying:
		return "Replaying"
	default:
		return "Unspecified"
	}
}
