// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package messages

import (
	"time"
)

type (
	// InitializeRequest tells the proxy where the client library is
	// listening for proxy-initiated messages
	InitializeRequest struct {
		*ProxyRequest
	}

	InitializeReply struct {
		*ProxyReply
	}

	// ConnectRequest establishes one logical client connection to the
	// orchestration engine behind the proxy
	ConnectRequest struct {
		*ProxyRequest
	}

	ConnectReply struct {
		*ProxyReply
	}

	// TerminateRequest shuts the proxy-side resources of a client down
	TerminateRequest struct {
		*ProxyRequest
	}

	TerminateReply struct {
		*ProxyReply
	}

	// HeartbeatRequest is a connection liveness probe between client and
	// proxy; unrelated to activity heartbeats
	HeartbeatRequest struct {
		*ProxyRequest
	}

	HeartbeatReply struct {
		*ProxyReply
	}

	// CancelRequest asks the proxy to cancel an outstanding request
	CancelRequest struct {
		*ProxyRequest
	}

	CancelReply struct {
		*ProxyReply
	}
)

func NewInitializeRequest() *InitializeRequest {
	return &InitializeRequest{
		ProxyRequest: newProxyRequest(InitializeRequestType, InitializeReplyType),
	}
}

func (r *InitializeRequest) GetLibraryAddress() *string {
	return r.GetStringProperty("LibraryAddress")
}

func (r *InitializeRequest) SetLibraryAddress(value *string) {
	r.SetStringProperty("LibraryAddress", value)
}

func (r *InitializeRequest) GetLibraryPort() int32 {
	return r.GetIntProperty("LibraryPort")
}

func (r *InitializeRequest) SetLibraryPort(value int32) {
	r.SetIntProperty("LibraryPort", value)
}

func NewInitializeReply() *InitializeReply {
	return &InitializeReply{
		ProxyReply: newProxyReply(InitializeReplyType),
	}
}

func NewConnectRequest() *ConnectRequest {
	return &ConnectRequest{
		ProxyRequest: newProxyRequest(ConnectRequestType, ConnectReplyType),
	}
}

func (r *ConnectRequest) GetEndpoints() *string {
	return r.GetStringProperty("Endpoints")
}

func (r *ConnectRequest) SetEndpoints(value *string) {
	r.SetStringProperty("Endpoints", value)
}

func (r *ConnectRequest) GetIdentity() *string {
	return r.GetStringProperty("Identity")
}

func (r *ConnectRequest) SetIdentity(value *string) {
	r.SetStringProperty("Identity", value)
}

func (r *ConnectRequest) GetNamespace() *string {
	return r.GetStringProperty("Namespace")
}

func (r *ConnectRequest) SetNamespace(value *string) {
	r.SetStringProperty("Namespace", value)
}

func (r *ConnectRequest) GetClientTimeout() time.Duration {
	return r.GetTimeSpanProperty("ClientTimeout")
}

func (r *ConnectRequest) SetClientTimeout(value time.Duration) {
	r.SetTimeSpanProperty("ClientTimeout", value)
}

func NewConnectReply() *ConnectReply {
	return &ConnectReply{
		ProxyReply: newProxyReply(ConnectReplyType),
	}
}

func NewTerminateRequest() *TerminateRequest {
	return &TerminateRequest{
		ProxyRequest: newProxyRequest(TerminateRequestType, TerminateReplyType),
	}
}

func NewTerminateReply() *TerminateReply {
	return &TerminateReply{
		ProxyReply: newProxyReply(TerminateReplyType),
	}
}

func NewHeartbeatRequest() *HeartbeatRequest {
	return &HeartbeatRequest{
		ProxyRequest: newProxyRequest(HeartbeatRequestType, HeartbeatReplyType),
	}
}

func NewHeartbeatReply() *HeartbeatReply {
	return &HeartbeatReply{
		ProxyReply: newProxyReply(HeartbeatReplyType),
	}
}

func NewCancelRequest() *CancelRequest {
	return &CancelRequest{
		ProxyRequest: newProxyRequest(CancelRequestType, CancelReplyType),
	}
}

// GetTargetRequestId identifies the outstanding request being canceled
func (r *CancelRequest) GetTargetRequestId() int64 {
	return r.GetLongProperty("TargetRequestId")
}

func (r *CancelRequest) SetTargetRequestId(value int64) {
	r.SetLongProperty("TargetRequestId", value)
}

func NewCancelReply() *CancelReply {
	return &CancelReply{
		ProxyReply: newProxyReply(CancelReplyType),
	}
}

func (r *CancelReply) GetWasCancelled() bool {
	return r.GetBoolProperty("WasCancelled")
}

func (r *CancelReply) SetWasCancelled(value bool) {
	r.SetBoolProperty("WasCancelled", value)
}
