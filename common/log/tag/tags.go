// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package tag

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

const LoggingCallAtKey = "logging-call-at"

// Tag is the interface for logging system
type Tag struct {
	// keep this field private
	field zap.Field
}

// Field returns a zap field
func (t *Tag) Field() zap.Field {
	return t.field
}

func newStringTag(key string, value string) Tag {
	return Tag{
		field: zap.String(key, value),
	}
}

func newInt64(key string, value int64) Tag {
	return Tag{
		field: zap.Int64(key, value),
	}
}

func newInt(key string, value int) Tag {
	return Tag{
		field: zap.Int(key, value),
	}
}

func newBoolTag(key string, value bool) Tag {
	return Tag{
		field: zap.Bool(key, value),
	}
}

func newTimeTag(key string, value time.Time) Tag {
	return Tag{
		field: zap.Time(key, value),
	}
}

func newObjectTag(key string, value interface{}) Tag {
	return Tag{
		field: zap.String(key, fmt.Sprintf("%v", value)),
	}
}

func newErrorTag(key string, value error) Tag {
	//NOTE zap already chosen "error" as key
	return Tag{
		field: zap.Error(value),
	}
}

// TAGS

func Error(err error) Tag {
	return newErrorTag("error", err)
}

func Service(sv string) Tag {
	return newStringTag("service", sv)
}

func Message(msg string) Tag {
	return newStringTag("message", msg)
}

func MessageType(mt string) Tag {
	return newStringTag("messageType", mt)
}

func ClientId(id int64) Tag {
	return newInt64("clientId", id)
}

func RequestId(id int64) Tag {
	return newInt64("requestId", id)
}

func ContextId(id int64) Tag {
	return newInt64("contextId", id)
}

func ChildId(id int64) Tag {
	return newInt64("childId", id)
}

func QueueId(id int64) Tag {
	return newInt64("queueId", id)
}

func WorkflowId(id string) Tag {
	return newStringTag("workflowId", id)
}

func RunId(id string) Tag {
	return newStringTag("runId", id)
}

func WorkflowType(wt string) Tag {
	return newStringTag("workflowType", wt)
}

func ActivityId(id string) Tag {
	return newStringTag("activityId", id)
}

func ActivityType(at string) Tag {
	return newStringTag("activityType", at)
}

func TaskQueue(tq string) Tag {
	return newStringTag("taskQueue", tq)
}

func Namespace(ns string) Tag {
	return newStringTag("namespace", ns)
}

func Recorded(v bool) Tag {
	return newBoolTag("recorded", v)
}

func StatusCode(status int) Tag {
	return newInt("status", int(status))
}

func AnyToStr(v interface{}) string {
	return fmt.Sprintf("%v", v)
}

func Value(v interface{}) Tag {
	return newObjectTag("value", v)
}

func UnixTimestamp(v int64) Tag {
	return newTimeTag("UnixTimestamp", time.Unix(v, 0))
}

func Address(v string) Tag {
	return newStringTag("address", v)
}

func DefaultValue(v interface{}) Tag {
	return newObjectTag("default-value", v)
}
