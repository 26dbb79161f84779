// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"

	"github.com/flowbridge/flowbridge/activity"
	"github.com/flowbridge/flowbridge/client"
	"github.com/flowbridge/flowbridge/common/clock"
	"github.com/flowbridge/flowbridge/common/failure"
	"github.com/flowbridge/flowbridge/common/log"
	"github.com/flowbridge/flowbridge/common/ptr"
	"github.com/flowbridge/flowbridge/common/types"
	"github.com/flowbridge/flowbridge/messages"
	"github.com/flowbridge/flowbridge/workflow"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type (
	// fakeDispatcher stands in for the outbound side: requests are
	// answered with their paired replies, sends and handled replies are
	// recorded
	fakeDispatcher struct {
		mu       sync.Mutex
		sent     []messages.Message
		handled  []messages.Reply
		requests []messages.Request
	}
)

func (d *fakeDispatcher) Request(ctx context.Context, req messages.Request) (messages.Reply, error) {
	d.mu.Lock()
	d.requests = append(d.requests, req)
	d.mu.Unlock()

	m, err := messages.NewForType(req.GetReplyType())
	if err != nil {
		return nil, err
	}
	return m.(messages.Reply), nil
}

func (d *fakeDispatcher) Send(ctx context.Context, m messages.Message) error {
	d.mu.Lock()
	d.sent = append(d.sent, m)
	d.mu.Unlock()
	return nil
}

func (d *fakeDispatcher) HandleReply(reply messages.Reply) error {
	d.mu.Lock()
	d.handled = append(d.handled, reply)
	d.mu.Unlock()
	if reply.GetRequestId() == 0 {
		return failure.NewProtocolError("unmatched reply %v", reply.GetType())
	}
	return nil
}

func (d *fakeDispatcher) ClientId() int64 {
	return 42
}

func (d *fakeDispatcher) sentOfType(messageType messages.MessageType) (messages.Message, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, m := range d.sent {
		if m.GetType() == messageType {
			return m, true
		}
	}
	return nil, false
}

type GatewayTestSuite struct {
	suite.Suite

	dispatcher *fakeDispatcher
	server     *httptest.Server
	httpClient *http.Client
}

func TestGatewayTestSuite(t *testing.T) {
	suite.Run(t, new(GatewayTestSuite))
}

func (s *GatewayTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.dispatcher = &fakeDispatcher{}
	logger := log.NewNoopLogger()

	executor := workflow.NewExecutor(
		workflow.NewRegistry(), s.dispatcher, client.NewIdentifiers(), 0, logger)
	s.Require().NoError(executor.Registry().RegisterWorkflow("hello",
		func(ctx *workflow.Context, args []byte) ([]byte, error) {
			return []byte("Hello " + string(args) + "!"), nil
		}))

	manager := activity.NewManager(
		activity.NewRegistry(), s.dispatcher, clock.NewRealTimeSource(),
		30*time.Second, 0, logger)
	s.Require().NoError(manager.Registry().Register("greet",
		func(ctx *activity.Context, args []byte) ([]byte, error) {
			return []byte("Hi " + string(args)), nil
		}))

	svc := NewServiceImpl(s.dispatcher, executor, manager, logger)
	s.server = httptest.NewServer(NewGinEngine(svc, logger))
	s.httpClient = s.server.Client()
}

func (s *GatewayTestSuite) TearDownTest() {
	s.httpClient.CloseIdleConnections()
	s.server.Close()
}

// put serializes m and PUTs it to path, returning status and body
func (s *GatewayTestSuite) put(path string, m messages.Message) (int, []byte) {
	content, err := m.GetProxyMessage().Serialize()
	s.Require().NoError(err)
	return s.putRaw(path, messages.ContentType, content)
}

func (s *GatewayTestSuite) putRaw(path, contentType string, content []byte) (int, []byte) {
	req, err := http.NewRequest(http.MethodPut, s.server.URL+path, bytes.NewBuffer(content))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", contentType)

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, body
}

func (s *GatewayTestSuite) TestEchoRoundTripsFrames() {
	req := messages.NewWorkflowExecuteRequest()
	req.SetClientId(7)
	req.SetRequestId(99)
	req.SetWorkflow(ptr.Any("order-processor"))
	req.SetArgs([]byte(`{"orderId":42}`))
	req.SetNamespace(nil)
	req.GetProxyMessage().SetAttachment(0, []byte{0x00, 0x01, 0x02})

	status, body := s.put(EchoPath, req)
	s.Equal(http.StatusOK, status)

	decoded, err := messages.Deserialize(bytes.NewBuffer(body))
	s.Require().NoError(err)
	echoed, ok := decoded.(*messages.WorkflowExecuteRequest)
	s.Require().True(ok)
	s.Equal(int64(7), echoed.GetClientId())
	s.Equal(int64(99), echoed.GetRequestId())
	s.Equal("order-processor", *echoed.GetWorkflow())
	s.Equal([]byte(`{"orderId":42}`), echoed.GetArgs())
	s.Nil(echoed.GetNamespace())
	s.Equal([]byte{0x00, 0x01, 0x02}, echoed.GetProxyMessage().GetAttachment(0))
}

func (s *GatewayTestSuite) TestEchoEveryMessageShape() {
	// replies and requests echo alike; the property bag is what travels
	reply := messages.NewWorkflowInvokeReply()
	reply.SetRequestId(3)
	reply.SetResult([]byte("done"))
	reply.SetError(&failure.Failure{Reason: "example.com/x.SomeError", Message: "boom"})

	status, body := s.put(EchoPath, reply)
	s.Equal(http.StatusOK, status)

	decoded, err := messages.Deserialize(bytes.NewBuffer(body))
	s.Require().NoError(err)
	echoed := decoded.(*messages.WorkflowInvokeReply)
	s.Equal([]byte("done"), echoed.GetResult())
	s.Require().NotNil(echoed.GetError())
	s.Equal("boom", echoed.GetError().Message)
}

func (s *GatewayTestSuite) TestRejectsWrongContentType() {
	status, _ := s.putRaw(EchoPath, "application/json", []byte("{}"))
	s.Equal(http.StatusBadRequest, status)

	status, _ = s.putRaw(client.MessagePath, "text/plain", []byte("hello"))
	s.Equal(http.StatusBadRequest, status)
}

func (s *GatewayTestSuite) TestRejectsMalformedFrame() {
	status, _ := s.putRaw(EchoPath, messages.ContentType, []byte{0xde, 0xad, 0xbe, 0xef})
	s.Equal(http.StatusBadRequest, status)

	status, _ = s.putRaw(client.MessagePath, messages.ContentType, []byte{0xde, 0xad})
	s.Equal(http.StatusBadRequest, status)
}

func (s *GatewayTestSuite) TestRoutesReplyToDispatcher() {
	reply := messages.NewWorkflowSleepReply()
	reply.SetRequestId(12)

	status, _ := s.put(client.MessagePath, reply)
	s.Equal(http.StatusOK, status)

	s.dispatcher.mu.Lock()
	defer s.dispatcher.mu.Unlock()
	s.Require().Len(s.dispatcher.handled, 1)
	s.Equal(messages.WorkflowSleepReplyType, s.dispatcher.handled[0].GetType())
}

func (s *GatewayTestSuite) TestUnmatchedReplyIsBadRequest() {
	reply := messages.NewWorkflowSleepReply()
	// request id zero never matches a waiter

	status, _ := s.put(client.MessagePath, reply)
	s.Equal(http.StatusBadRequest, status)
}

func (s *GatewayTestSuite) TestAcknowledgesHeartbeat() {
	req := messages.NewHeartbeatRequest()
	req.SetClientId(5)
	req.SetRequestId(77)

	status, _ := s.put(client.MessagePath, req)
	s.Equal(http.StatusOK, status)

	m, ok := s.dispatcher.sentOfType(messages.HeartbeatReplyType)
	s.Require().True(ok)
	s.Equal(int64(77), m.GetRequestId())
	s.Equal(int64(5), m.GetClientId())
}

func (s *GatewayTestSuite) TestRoutesWorkflowInvoke() {
	req := messages.NewWorkflowInvokeRequest()
	req.SetClientId(5)
	req.SetRequestId(88)
	req.SetContextId(1)
	req.SetName(ptr.Any("hello"))
	req.SetArgs([]byte("Gateway"))

	status, _ := s.put(client.MessagePath, req)
	s.Equal(http.StatusOK, status)

	s.Require().Eventually(func() bool {
		_, ok := s.dispatcher.sentOfType(messages.WorkflowInvokeReplyType)
		return ok
	}, time.Second, 5*time.Millisecond)

	m, _ := s.dispatcher.sentOfType(messages.WorkflowInvokeReplyType)
	reply := m.(*messages.WorkflowInvokeReply)
	s.Equal([]byte("Hello Gateway!"), reply.GetResult())
	s.Equal(int64(88), reply.GetRequestId())
}

func (s *GatewayTestSuite) TestRoutesActivityInvoke() {
	req := messages.NewActivityInvokeRequest()
	req.SetContextId(9)
	req.SetActivity(ptr.Any("greet"))
	req.SetArgs([]byte("there"))
	req.SetTask(&types.ActivityTask{
		TaskToken:        []byte("token-1"),
		ActivityId:       "act-1",
		ActivityTypeName: "greet",
		HeartbeatTimeout: 30 * time.Second,
	})

	status, _ := s.put(client.MessagePath, req)
	s.Equal(http.StatusOK, status)

	s.Require().Eventually(func() bool {
		_, ok := s.dispatcher.sentOfType(messages.ActivityInvokeReplyType)
		return ok
	}, time.Second, 5*time.Millisecond)

	m, _ := s.dispatcher.sentOfType(messages.ActivityInvokeReplyType)
	s.Equal([]byte("Hi there"), m.(*messages.ActivityInvokeReply).GetResult())
}

func (s *GatewayTestSuite) TestUnroutableRequestIsBadRequest() {
	// connect requests travel the other way; inbound they have no route
	req := messages.NewConnectRequest()
	req.SetEndpoints(ptr.Any("engine:7233"))

	status, _ := s.put(client.MessagePath, req)
	s.Equal(http.StatusBadRequest, status)
}
