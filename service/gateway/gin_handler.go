// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flowbridge/flowbridge/common/log"
	"github.com/flowbridge/flowbridge/common/log/tag"
	"github.com/flowbridge/flowbridge/messages"
)

type ginHandler struct {
	svc    Service
	logger log.Logger
}

func newGinHandler(svc Service, logger log.Logger) *ginHandler {
	return &ginHandler{
		svc:    svc,
		logger: logger,
	}
}

// Message accepts one serialized frame and routes it
func (h *ginHandler) Message(c *gin.Context) {
	m, ok := h.readFrame(c)
	if !ok {
		return
	}

	h.logger.Debug("received message frame",
		tag.MessageType(m.GetType().String()),
		tag.RequestId(m.GetRequestId()),
	)

	if err := h.svc.ProcessMessage(c.Request.Context(), m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

// Echo deserializes the frame and writes it back re-serialized; a
// conformance probe for the wire format
func (h *ginHandler) Echo(c *gin.Context) {
	m, ok := h.readFrame(c)
	if !ok {
		return
	}

	content, err := m.GetProxyMessage().Serialize()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, messages.ContentType, content)
}

func (h *ginHandler) readFrame(c *gin.Context) (messages.Message, bool) {
	if contentType := c.GetHeader("Content-Type"); contentType != messages.ContentType {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported content type: " + contentType})
		return nil, false
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	m, err := messages.Deserialize(bytes.NewBuffer(body))
	if err != nil {
		h.logger.Error("malformed message frame", tag.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return m, true
}
