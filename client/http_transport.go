// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/flowbridge/flowbridge/common/log"
	"github.com/flowbridge/flowbridge/common/log/tag"
	"github.com/flowbridge/flowbridge/common/urlfix"
	"github.com/flowbridge/flowbridge/messages"
)

// MessagePath is the route serving message frames on both sides of the
// bridge; the proxy exposes the same path
const MessagePath = "/api/v1/message"

type (
	httpTransport struct {
		address    string
		httpClient *http.Client
		logger     log.Logger
	}
)

// NewHTTPTransport returns a Transport that PUTs serialized frames to the
// proxy address
func NewHTTPTransport(address string, requestTimeout time.Duration, logger log.Logger) Transport {
	address = urlfix.FixProxyUrl(address)
	return &httpTransport{
		address:    address,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger.WithTags(tag.Address(address)),
	}
}

func (t *httpTransport) Send(ctx context.Context, m messages.Message) error {
	content, err := m.GetProxyMessage().Serialize()
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPut, t.address+MessagePath, bytes.NewBuffer(content))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", messages.ContentType)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.logger.Warn("proxy rejected message frame",
			tag.MessageType(m.GetType().String()),
			tag.StatusCode(resp.StatusCode),
		)
		return fmt.Errorf("proxy returned status %d for %v", resp.StatusCode, m.GetType())
	}
	return nil
}
