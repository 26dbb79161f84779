// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package failure

import (
	"encoding/json"
	"fmt"
	"reflect"
)

type (
	// Failure is the wire form of a remote error. Reason carries the
	// fully-qualified name of the origin error type so that callers can
	// pattern-match on it across the process boundary.
	Failure struct {
		Reason     string   `json:"reason"`
		Message    string   `json:"message"`
		StackTrace string   `json:"stackTrace,omitempty"`
		Cause      *Failure `json:"cause,omitempty"`
	}
)

// FromError converts any error into a Failure. Errors that already carry a
// Failure keep it bit-for-bit; plain errors get their Go type as the reason.
func FromError(err error) *Failure {
	if err == nil {
		return nil
	}
	switch t := err.(type) {
	case *ActivityError:
		f := t.Failure
		return &f
	case *HeartbeatTimeoutError:
		return &Failure{Reason: ReasonOf(t), Message: t.Message}
	case *CanceledError:
		return &Failure{Reason: ReasonOf(t), Message: t.Message}
	default:
		return &Failure{Reason: ReasonOf(err), Message: err.Error()}
	}
}

// ReasonOf returns the fully-qualified type name of an error value,
// e.g. "github.com/flowbridge/flowbridge/common/failure.CanceledError".
func ReasonOf(err error) string {
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// Encode serializes a Failure for a message property
func (f *Failure) Encode() (string, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses a Failure from a message property
func Decode(data string) (*Failure, error) {
	var f Failure
	if err := json.Unmarshal([]byte(data), &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// ToError reconstructs a local error from the wire form
func (f *Failure) ToError() error {
	if f == nil {
		return nil
	}
	if f.Reason == ReasonOf(&HeartbeatTimeoutError{}) {
		return &HeartbeatTimeoutError{Message: f.Message}
	}
	if f.Reason == ReasonOf(&CanceledError{}) {
		return &CanceledError{Message: f.Message}
	}
	return &ActivityError{Failure: *f}
}

func (f *Failure) String() string {
	if f.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by %s)", f.Reason, f.Message, f.Cause.String())
	}
	return fmt.Sprintf("%s: %s", f.Reason, f.Message)
}
