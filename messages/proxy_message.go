// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package messages

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/flowbridge/flowbridge/common/failure"
)

// ContentType is the media type of a serialized message frame
const ContentType = "application/x-flowbridge-message"

const (
	propertyClientId  = "ClientId"
	propertyRequestId = "RequestId"

	// nullLength marks an absent value inside the frame; a present key with
	// a null value round-trips as null, not as an empty string
	nullLength = int32(-1)
)

type (
	// ProxyMessage is the envelope every typed message embeds: a wire type
	// code, a nullable string property bag, and ordered binary attachments.
	// Typed messages are thin views over this bag, so deep-copying the bag
	// deep-copies the message.
	ProxyMessage struct {
		messageType MessageType
		properties  map[string]*string
		attachments [][]byte
	}
)

func newProxyMessage(messageType MessageType) *ProxyMessage {
	return &ProxyMessage{
		messageType: messageType,
		properties:  map[string]*string{},
	}
}

// GetProxyMessage returns the envelope itself; promoted through embedding so
// that every typed message exposes it
func (m *ProxyMessage) GetProxyMessage() *ProxyMessage {
	return m
}

func (m *ProxyMessage) GetType() MessageType {
	return m.messageType
}

func (m *ProxyMessage) GetClientId() int64 {
	return m.GetLongProperty(propertyClientId)
}

func (m *ProxyMessage) SetClientId(value int64) {
	m.SetLongProperty(propertyClientId, value)
}

func (m *ProxyMessage) GetRequestId() int64 {
	return m.GetLongProperty(propertyRequestId)
}

func (m *ProxyMessage) SetRequestId(value int64) {
	m.SetLongProperty(propertyRequestId, value)
}

// -------------------------------------------------------------------------
// property accessors

// GetStringProperty returns the property value, nil when the property is
// absent or null
func (m *ProxyMessage) GetStringProperty(key string) *string {
	return m.properties[key]
}

func (m *ProxyMessage) SetStringProperty(key string, value *string) {
	if value == nil {
		m.properties[key] = nil
		return
	}
	v := *value
	m.properties[key] = &v
}

func (m *ProxyMessage) GetIntProperty(key string) int32 {
	if v := m.properties[key]; v != nil {
		parsed, err := strconv.ParseInt(*v, 10, 32)
		if err != nil {
			return 0
		}
		return int32(parsed)
	}
	return 0
}

func (m *ProxyMessage) SetIntProperty(key string, value int32) {
	str := strconv.FormatInt(int64(value), 10)
	m.properties[key] = &str
}

func (m *ProxyMessage) GetLongProperty(key string) int64 {
	if v := m.properties[key]; v != nil {
		parsed, err := strconv.ParseInt(*v, 10, 64)
		if err != nil {
			return 0
		}
		return parsed
	}
	return 0
}

func (m *ProxyMessage) SetLongProperty(key string, value int64) {
	str := strconv.FormatInt(value, 10)
	m.properties[key] = &str
}

func (m *ProxyMessage) GetBoolProperty(key string) bool {
	if v := m.properties[key]; v != nil {
		return *v == "true"
	}
	return false
}

func (m *ProxyMessage) SetBoolProperty(key string, value bool) {
	str := strconv.FormatBool(value)
	m.properties[key] = &str
}

func (m *ProxyMessage) GetTimeSpanProperty(key string) time.Duration {
	return time.Duration(m.GetLongProperty(key))
}

func (m *ProxyMessage) SetTimeSpanProperty(key string, value time.Duration) {
	m.SetLongProperty(key, value.Nanoseconds())
}

// GetBytesProperty returns the decoded binary value of a property,
// nil when absent or null
func (m *ProxyMessage) GetBytesProperty(key string) []byte {
	v := m.properties[key]
	if v == nil {
		return nil
	}
	decoded, err := base64.StdEncoding.DecodeString(*v)
	if err != nil {
		return nil
	}
	return decoded
}

func (m *ProxyMessage) SetBytesProperty(key string, value []byte) {
	if value == nil {
		m.properties[key] = nil
		return
	}
	encoded := base64.StdEncoding.EncodeToString(value)
	m.properties[key] = &encoded
}

// GetJSONProperty unmarshals a nested value object (options structs,
// pending-info lists). Returns false when the property is absent or null.
func (m *ProxyMessage) GetJSONProperty(key string, value interface{}) bool {
	v := m.properties[key]
	if v == nil {
		return false
	}
	if err := json.Unmarshal([]byte(*v), value); err != nil {
		return false
	}
	return true
}

func (m *ProxyMessage) SetJSONProperty(key string, value interface{}) {
	if value == nil {
		m.properties[key] = nil
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		panic(failure.NewProtocolError("cannot marshal property %q: %v", key, err))
	}
	str := string(data)
	m.properties[key] = &str
}

// -------------------------------------------------------------------------
// attachments

func (m *ProxyMessage) AttachmentCount() int {
	return len(m.attachments)
}

func (m *ProxyMessage) GetAttachment(index int) []byte {
	if index < 0 || index >= len(m.attachments) {
		return nil
	}
	return m.attachments[index]
}

func (m *ProxyMessage) SetAttachment(index int, value []byte) {
	for len(m.attachments) <= index {
		m.attachments = append(m.attachments, nil)
	}
	m.attachments[index] = value
}

// -------------------------------------------------------------------------
// clone

// Clone produces a deep, independent copy; the concrete type is restored
// through the factory so the reply-type pairing survives
func (m *ProxyMessage) Clone() Message {
	clone, err := NewForType(m.messageType)
	if err != nil {
		clone = newProxyMessage(m.messageType)
	}
	m.CopyTo(clone)
	return clone
}

// CopyTo deep-copies the property bag and attachments into target
func (m *ProxyMessage) CopyTo(target Message) {
	tb := target.GetProxyMessage()
	tb.properties = make(map[string]*string, len(m.properties))
	for k, v := range m.properties {
		if v == nil {
			tb.properties[k] = nil
			continue
		}
		value := *v
		tb.properties[k] = &value
	}
	tb.attachments = nil
	for _, a := range m.attachments {
		if a == nil {
			tb.attachments = append(tb.attachments, nil)
			continue
		}
		cp := make([]byte, len(a))
		copy(cp, a)
		tb.attachments = append(tb.attachments, cp)
	}
}

// -------------------------------------------------------------------------
// wire framing: little-endian, length-prefixed. A -1 length marks null.
//
// int32 messageType
// int32 propertyCount
//   { string key; string|null value } * propertyCount   (keys sorted)
// int32 attachmentCount
//   { int32 length; bytes } * attachmentCount

// Serialize encodes the message into a frame
func (m *ProxyMessage) Serialize() ([]byte, error) {
	buf := new(bytes.Buffer)
	writeInt32(buf, int32(m.messageType))

	keys := make([]string, 0, len(m.properties))
	for k := range m.properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	writeInt32(buf, int32(len(keys)))
	for _, k := range keys {
		key := k
		writeString(buf, &key)
		writeString(buf, m.properties[k])
	}

	writeInt32(buf, int32(len(m.attachments)))
	for _, a := range m.attachments {
		if a == nil {
			writeInt32(buf, nullLength)
			continue
		}
		writeInt32(buf, int32(len(a)))
		buf.Write(a)
	}
	return buf.Bytes(), nil
}

// Deserialize decodes one frame into its typed message. An unknown type
// code or a truncated frame is a protocol error.
func Deserialize(buf *bytes.Buffer) (Message, error) {
	typeCode, err := readInt32(buf)
	if err != nil {
		return nil, failure.NewProtocolError("malformed frame: %v", err)
	}

	message, err := NewForType(MessageType(typeCode))
	if err != nil {
		return nil, err
	}
	base := message.GetProxyMessage()

	propertyCount, err := readInt32(buf)
	if err != nil {
		return nil, failure.NewProtocolError("malformed frame: %v", err)
	}
	for i := int32(0); i < propertyCount; i++ {
		key, err := readString(buf)
		if err != nil || key == nil {
			return nil, failure.NewProtocolError("malformed property key at index %d", i)
		}
		value, err := readString(buf)
		if err != nil {
			return nil, failure.NewProtocolError("malformed property value for %q", *key)
		}
		base.properties[*key] = value
	}

	attachmentCount, err := readInt32(buf)
	if err != nil {
		return nil, failure.NewProtocolError("malformed frame: %v", err)
	}
	for i := int32(0); i < attachmentCount; i++ {
		length, err := readInt32(buf)
		if err != nil {
			return nil, failure.NewProtocolError("malformed attachment length at index %d", i)
		}
		if length == nullLength {
			base.attachments = append(base.attachments, nil)
			continue
		}
		if length < 0 {
			return nil, failure.NewProtocolError("negative attachment length %d at index %d", length, i)
		}
		data := make([]byte, length)
		if n, err := buf.Read(data); err != nil || n != int(length) {
			return nil, failure.NewProtocolError("truncated attachment at index %d", i)
		}
		base.attachments = append(base.attachments, data)
	}
	return message, nil
}

func (m *ProxyMessage) String() string {
	return fmt.Sprintf("%v(requestId=%d, clientId=%d, properties=%d, attachments=%d)",
		m.messageType, m.GetRequestId(), m.GetClientId(), len(m.properties), len(m.attachments))
}

func writeInt32(buf *bytes.Buffer, value int32) {
	_ = binary.Write(buf, binary.LittleEndian, value)
}

func readInt32(buf *bytes.Buffer) (int32, error) {
	var value int32
	err := binary.Read(buf, binary.LittleEndian, &value)
	return value, err
}

func writeString(buf *bytes.Buffer, value *string) {
	if value == nil {
		writeInt32(buf, nullLength)
		return
	}
	writeInt32(buf, int32(len(*value)))
	buf.WriteString(*value)
}

func readString(buf *bytes.Buffer) (*string, error) {
	length, err := readInt32(buf)
	if err != nil {
		return nil, err
	}
	if length == nullLength {
		return nil, nil
	}
	if length < 0 {
		return nil, fmt.Errorf("negative string length %d", length)
	}
	data := make([]byte, length)
	n, err := buf.Read(data)
	if err != nil || n != int(length) {
		return nil, fmt.Errorf("truncated string value")
	}
	str := string(data)
	return &str, nil
}
