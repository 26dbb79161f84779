// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flowbridge/flowbridge/client"
	"github.com/flowbridge/flowbridge/common/log"
	"github.com/flowbridge/flowbridge/common/log/tag"
	"github.com/flowbridge/flowbridge/config"
)

// EchoPath serves the wire conformance probe
const EchoPath = "/echo"

type defaultServer struct {
	rootCtx    context.Context
	cfg        config.Config
	logger     log.Logger
	engine     *gin.Engine
	httpServer *http.Server
}

// NewGinEngine builds the routing engine serving the message and echo
// endpoints
func NewGinEngine(svc Service, logger log.Logger) *gin.Engine {
	engine := gin.Default()

	handler := newGinHandler(svc, logger)

	engine.PUT(client.MessagePath, handler.Message)
	engine.PUT(EchoPath, handler.Echo)

	return engine
}

func NewDefaultServerWithGin(
	rootCtx context.Context, cfg config.Config, svc Service, logger log.Logger,
) Server {
	engine := NewGinEngine(svc, logger)

	svrCfg := cfg.Gateway
	httpServer := &http.Server{
		Addr:         svrCfg.Address,
		ReadTimeout:  svrCfg.ReadTimeout.Duration(),
		WriteTimeout: svrCfg.WriteTimeout.Duration(),
		Handler:      engine,
		BaseContext: func(listener net.Listener) context.Context {
			// for graceful shutdown
			return rootCtx
		},
	}

	return &defaultServer{
		rootCtx:    rootCtx,
		cfg:        cfg,
		logger:     logger,
		engine:     engine,
		httpServer: httpServer,
	}
}

func (s *defaultServer) Start() error {
	go func() {
		err := s.httpServer.ListenAndServe()
		s.logger.Info("Http Server for message gateway is closed", tag.Error(err))
	}()

	return nil
}

func (s *defaultServer) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
