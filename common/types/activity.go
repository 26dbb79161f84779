// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"time"
)

type (
	// ActivityTask identifies one activity invocation. ActivityTypeName is
	// empty for local activities; they have no remote type registration.
	ActivityTask struct {
		TaskToken         []byte            `json:"taskToken,omitempty"`
		WorkflowExecution WorkflowExecution `json:"workflowExecution"`
		ActivityId        string            `json:"activityId"`
		TaskQueue         string            `json:"taskQueue"`
		WorkflowNamespace string            `json:"workflowNamespace"`
		ActivityTypeName  string            `json:"activityTypeName,omitempty"`
		Attempt           int32             `json:"attempt"`
		HeartbeatTimeout  time.Duration     `json:"heartbeatTimeout"`
		ScheduledTime     time.Time         `json:"scheduledTime"`
		StartedTime       time.Time         `json:"startedTime"`
	}

	// ActivityOptions configures a remote activity schedule.
	// Value object; never mutated after being handed to an execute call.
	ActivityOptions struct {
		ActivityId             string        `json:"activityId"`
		TaskQueue              string        `json:"taskQueue"`
		ScheduleToCloseTimeout time.Duration `json:"scheduleToCloseTimeout"`
		ScheduleToStartTimeout time.Duration `json:"scheduleToStartTimeout"`
		StartToCloseTimeout    time.Duration `json:"startToCloseTimeout"`
		HeartbeatTimeout       time.Duration `json:"heartbeatTimeout"`
		WaitForCancellation    bool          `json:"waitForCancellation"`
		RetryPolicy            *RetryPolicy  `json:"retryPolicy,omitempty"`
	}

	// LocalActivityOptions configures an in-process activity run
	LocalActivityOptions struct {
		ScheduleToCloseTimeout time.Duration `json:"scheduleToCloseTimeout"`
		StartToCloseTimeout    time.Duration `json:"startToCloseTimeout"`
		RetryPolicy            *RetryPolicy  `json:"retryPolicy,omitempty"`
	}
)

// IsLocal reports whether this task describes a local activity
func (t *ActivityTask) IsLocal() bool {
	return t.ActivityTypeName == ""
}
