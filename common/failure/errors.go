// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package failure

import "fmt"

type (
	// ActivityError is a remote activity (or workflow) failure re-raised locally.
	// Callers branch on Failure.Reason equality.
	ActivityError struct {
		Failure Failure
	}

	// HeartbeatTimeoutError reports an externally-completed activity whose
	// external caller never heartbeated within the configured timeout.
	// It is deliberately a distinct type from ActivityError.
	HeartbeatTimeoutError struct {
		Message string
	}

	// CanceledError unblocks suspension points when the owning execution
	// context is canceled or disconnected
	CanceledError struct {
		Message string
	}

	// RegistrationError reports an invalid workflow/activity/signal
	// registration. Raised eagerly, before any execution is attempted.
	RegistrationError struct {
		Message string
	}

	// ProtocolError is a defect in the client/proxy conversation: unmatched
	// reply, malformed frame, or a details producer invoked when it should
	// have been skipped. These fail loudly; they are not business failures.
	ProtocolError struct {
		Message string
	}

	// QueueClosedError reports a write against a closed workflow queue
	QueueClosedError struct {
		QueueId int64
	}
)

func (e *ActivityError) Error() string {
	return e.Failure.String()
}

func (e *ActivityError) Reason() string {
	return e.Failure.Reason
}

func (e *HeartbeatTimeoutError) Error() string {
	if e.Message == "" {
		return "activity heartbeat timeout"
	}
	return e.Message
}

func (e *CanceledError) Error() string {
	if e.Message == "" {
		return "canceled"
	}
	return e.Message
}

func (e *RegistrationError) Error() string {
	return "registration error: " + e.Message
}

func NewRegistrationError(format string, args ...interface{}) error {
	return &RegistrationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ProtocolError) Error() string {
	return "protocol error: " + e.Message
}

func NewProtocolError(format string, args ...interface{}) error {
	return &ProtocolError{Message: fmt.Sprintf(format, args...)}
}

func (e *QueueClosedError) Error() string {
	return fmt.Sprintf("queue %d is closed", e.QueueId)
}

func NewQueueClosedError(queueId int64) error {
	return &QueueClosedError{QueueId: queueId}
}
