// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowbridge/flowbridge/common/log"
	"github.com/flowbridge/flowbridge/common/ptr"
	"github.com/flowbridge/flowbridge/messages"
)

func TestHTTPTransportSendsFrame(t *testing.T) {
	var (
		mu         sync.Mutex
		gotMethod  string
		gotPath    string
		gotContent string
		gotBody    []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContent = r.Header.Get("Content-Type")
		gotBody = body
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := NewHTTPTransport(server.URL, 5*time.Second, log.NewNoopLogger())

	req := messages.NewWorkflowExecuteRequest()
	req.SetRequestId(17)
	req.SetWorkflow(ptr.Any("order-processor"))
	require.NoError(t, transport.Send(context.Background(), req))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, MessagePath, gotPath)
	assert.Equal(t, messages.ContentType, gotContent)

	decoded, err := messages.Deserialize(bytes.NewBuffer(gotBody))
	require.NoError(t, err)
	assert.Equal(t, messages.WorkflowExecuteRequestType, decoded.GetType())
	assert.Equal(t, int64(17), decoded.GetRequestId())
}

func TestHTTPTransportRejectedFrameIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad frame", http.StatusBadRequest)
	}))
	defer server.Close()

	transport := NewHTTPTransport(server.URL, 5*time.Second, log.NewNoopLogger())

	err := transport.Send(context.Background(), messages.NewHeartbeatRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestHTTPTransportBareHostGetsScheme(t *testing.T) {
	// the config commonly carries host:port with no scheme
	transport := NewHTTPTransport("127.0.0.1:7778", time.Second, log.NewNoopLogger()).(*httpTransport)
	assert.Equal(t, "http://127.0.0.1:7778", transport.address)
}
