// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package messages

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowbridge/flowbridge/common/failure"
	"github.com/flowbridge/flowbridge/common/ptr"
)

func TestPropertyAccessors(t *testing.T) {
	m := newProxyMessage(WorkflowExecuteRequestType)

	m.SetStringProperty("Str", ptr.Any("value"))
	assert.Equal(t, "value", *m.GetStringProperty("Str"))

	m.SetStringProperty("Null", nil)
	assert.Nil(t, m.GetStringProperty("Null"))

	m.SetIntProperty("Int", int32(-7))
	assert.Equal(t, int32(-7), m.GetIntProperty("Int"))

	m.SetLongProperty("Long", int64(1)<<40)
	assert.Equal(t, int64(1)<<40, m.GetLongProperty("Long"))

	m.SetBoolProperty("Bool", true)
	assert.True(t, m.GetBoolProperty("Bool"))

	m.SetTimeSpanProperty("Span", 90*time.Second)
	assert.Equal(t, 90*time.Second, m.GetTimeSpanProperty("Span"))

	m.SetBytesProperty("Bytes", []byte{0x00, 0xff, 0x10})
	assert.Equal(t, []byte{0x00, 0xff, 0x10}, m.GetBytesProperty("Bytes"))

	assert.Nil(t, m.GetStringProperty("Absent"))
	assert.Equal(t, int32(0), m.GetIntProperty("Absent"))
	assert.False(t, m.GetBoolProperty("Absent"))
	assert.Nil(t, m.GetBytesProperty("Absent"))
}

func TestJSONProperty(t *testing.T) {
	m := newProxyMessage(WorkflowExecuteRequestType)

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	m.SetJSONProperty("Payload", payload{Name: "orders", Count: 3})

	var decoded payload
	require.True(t, m.GetJSONProperty("Payload", &decoded))
	assert.Equal(t, payload{Name: "orders", Count: 3}, decoded)

	var missing payload
	assert.False(t, m.GetJSONProperty("Absent", &missing))

	m.SetJSONProperty("Null", nil)
	assert.False(t, m.GetJSONProperty("Null", &missing))
}

func TestSetStringPropertyCopiesValue(t *testing.T) {
	m := newProxyMessage(WorkflowExecuteRequestType)

	value := "original"
	m.SetStringProperty("Key", &value)
	value = "mutated"

	assert.Equal(t, "original", *m.GetStringProperty("Key"))
}

func TestSerializeRoundTripPreservesNullVsAbsent(t *testing.T) {
	req := NewWorkflowExecuteRequest()
	req.SetClientId(7)
	req.SetRequestId(42)
	req.SetWorkflow(ptr.Any("order-processor"))
	req.SetNamespace(nil)

	content, err := req.GetProxyMessage().Serialize()
	require.NoError(t, err)

	m, err := Deserialize(bytes.NewBuffer(content))
	require.NoError(t, err)
	decoded, ok := m.(*WorkflowExecuteRequest)
	require.True(t, ok)

	assert.Equal(t, int64(7), decoded.GetClientId())
	assert.Equal(t, int64(42), decoded.GetRequestId())
	assert.Equal(t, "order-processor", *decoded.GetWorkflow())

	// "Namespace" was set to null: the key survives the round trip with a
	// null value, while a never-set key stays absent
	bag := decoded.GetProxyMessage()
	value, present := bag.properties["Namespace"]
	assert.True(t, present)
	assert.Nil(t, value)
	_, present = bag.properties["NeverSet"]
	assert.False(t, present)
}

func TestSerializeRoundTripAttachments(t *testing.T) {
	req := NewWorkflowInvokeRequest()
	req.SetRequestId(1)
	req.GetProxyMessage().SetAttachment(0, []byte("first"))
	req.GetProxyMessage().SetAttachment(1, nil)
	req.GetProxyMessage().SetAttachment(2, []byte{0x00, 0x01, 0x02})

	content, err := req.GetProxyMessage().Serialize()
	require.NoError(t, err)

	m, err := Deserialize(bytes.NewBuffer(content))
	require.NoError(t, err)

	bag := m.GetProxyMessage()
	require.Equal(t, 3, bag.AttachmentCount())
	assert.Equal(t, []byte("first"), bag.GetAttachment(0))
	assert.Nil(t, bag.GetAttachment(1))
	assert.Equal(t, []byte{0x00, 0x01, 0x02}, bag.GetAttachment(2))
	assert.Nil(t, bag.GetAttachment(3))
}

func TestSerializeRoundTripLargePayloads(t *testing.T) {
	for size := 1 << 10; size <= 1<<20; size <<= 2 {
		payload := make([]byte, size)
		for i := range payload {
			payload[i] = byte(i)
		}

		req := NewWorkflowExecuteRequest()
		req.SetRequestId(int64(size))
		req.SetArgs(payload)
		req.GetProxyMessage().SetAttachment(0, payload)

		content, err := req.GetProxyMessage().Serialize()
		require.NoError(t, err)

		m, err := Deserialize(bytes.NewBuffer(content))
		require.NoError(t, err)
		decoded := m.(*WorkflowExecuteRequest)

		require.Equal(t, payload, decoded.GetArgs(), "args of size %d", size)
		require.Equal(t, payload, decoded.GetProxyMessage().GetAttachment(0), "attachment of size %d", size)
	}
}

func TestCloneIsDeepAndIndependent(t *testing.T) {
	req := NewWorkflowSignalRequest()
	req.SetClientId(3)
	req.SetRequestId(9)
	req.SetWorkflowId(ptr.Any("wf-1"))
	req.SetSignalName(ptr.Any("wake"))
	req.SetSignalArgs([]byte("payload"))
	req.GetProxyMessage().SetAttachment(0, []byte{1, 2, 3})

	clone := req.Clone()
	cloned, ok := clone.(*WorkflowSignalRequest)
	require.True(t, ok, "clone restores the concrete type")
	assert.Equal(t, "wake", *cloned.GetSignalName())
	assert.Equal(t, req.GetReplyType(), cloned.GetReplyType())

	// mutate the clone; the source must not move
	cloned.SetSignalName(ptr.Any("sleep"))
	cloned.SetRequestId(100)
	cloned.GetProxyMessage().GetAttachment(0)[0] = 0xff

	assert.Equal(t, "wake", *req.GetSignalName())
	assert.Equal(t, int64(9), req.GetRequestId())
	assert.Equal(t, byte(1), req.GetProxyMessage().GetAttachment(0)[0])
}

func TestDeserializeUnknownTypeIsProtocolError(t *testing.T) {
	buf := new(bytes.Buffer)
	writeInt32(buf, 424242)
	writeInt32(buf, 0)
	writeInt32(buf, 0)

	_, err := Deserialize(buf)
	require.Error(t, err)
	var protocolErr *failure.ProtocolError
	assert.ErrorAs(t, err, &protocolErr)
}

func TestDeserializeNegativeLengthIsProtocolError(t *testing.T) {
	var protocolErr *failure.ProtocolError

	// a property value length below the null sentinel must not allocate
	buf := new(bytes.Buffer)
	writeInt32(buf, int32(WorkflowExecuteRequestType))
	writeInt32(buf, 1)
	writeString(buf, ptr.Any("Workflow"))
	writeInt32(buf, -2)

	_, err := Deserialize(buf)
	require.Error(t, err)
	assert.ErrorAs(t, err, &protocolErr)

	// same for an attachment length
	buf = new(bytes.Buffer)
	writeInt32(buf, int32(WorkflowExecuteRequestType))
	writeInt32(buf, 0)
	writeInt32(buf, 1)
	writeInt32(buf, -7)

	_, err = Deserialize(buf)
	require.Error(t, err)
	assert.ErrorAs(t, err, &protocolErr)
}

func TestDeserializeTruncatedFrameIsProtocolError(t *testing.T) {
	req := NewWorkflowExecuteRequest()
	req.SetWorkflow(ptr.Any("order-processor"))
	content, err := req.GetProxyMessage().Serialize()
	require.NoError(t, err)

	_, err = Deserialize(bytes.NewBuffer(content[:len(content)-3]))
	require.Error(t, err)
	var protocolErr *failure.ProtocolError
	assert.ErrorAs(t, err, &protocolErr)
}
