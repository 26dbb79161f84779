// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package bootstrap

import (
	"context"
	"fmt"
	rawLog "log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"github.com/flowbridge/flowbridge/activity"
	"github.com/flowbridge/flowbridge/client"
	"github.com/flowbridge/flowbridge/common/clock"
	"github.com/flowbridge/flowbridge/common/log"
	"github.com/flowbridge/flowbridge/common/log/tag"
	"github.com/flowbridge/flowbridge/config"
	"github.com/flowbridge/flowbridge/service/gateway"
	"github.com/flowbridge/flowbridge/workflow"
)

const GatewayServiceName = "gateway"

const FlagConfig = "config"

func StartBridgeCli(c *cli.Context) {
	// register interrupt signal for graceful shutdown
	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	configPath := c.String(FlagConfig)
	cfg, err := config.NewConfig(configPath)
	if err != nil {
		rawLog.Fatalf("Unable to load config for path %v because of error %v", configPath, err)
	}

	shutdownFunc := StartBridge(rootCtx, cfg)
	// wait for os signals
	<-rootCtx.Done()

	ctx, cancF := context.WithTimeout(context.Background(), time.Second*10)
	defer cancF()
	err = shutdownFunc(ctx)
	if err != nil {
		fmt.Println("shutdown error:", err)
	}
}

type GracefulShutdown func(ctx context.Context) error

func StartBridge(rootCtx context.Context, cfg *config.Config) GracefulShutdown {
	zapLogger, err := cfg.Log.NewZapLogger()
	if err != nil {
		rawLog.Fatalf("Unable to create a new zap logger %v", err)
	}
	logger := log.NewLogger(zapLogger)
	logger.Info("config is loaded", tag.Value(cfg.String()))
	err = cfg.ValidateAndSetDefaults()
	if err != nil {
		logger.Fatal("config is invalid", tag.Error(err))
	}

	transport := client.NewHTTPTransport(cfg.Proxy.Address, cfg.Proxy.RequestTimeout.Duration(), logger)
	dispatcher := client.NewDispatcher(transport, logger)
	bridgeClient := client.NewClient(dispatcher, cfg.Worker.TaskQueue, logger)

	executor := workflow.NewExecutor(
		workflow.NewRegistry(),
		dispatcher,
		bridgeClient.Identifiers(),
		int32(cfg.Worker.DefaultQueueCapacity),
		logger,
	)
	activities := activity.NewManager(
		activity.NewRegistry(),
		dispatcher,
		clock.NewRealTimeSource(),
		cfg.Worker.DefaultHeartbeatTimeout.Duration(),
		0,
		logger,
	)

	svc := gateway.NewServiceImpl(dispatcher, executor, activities, logger)
	server := gateway.NewDefaultServerWithGin(
		rootCtx, *cfg, svc, logger.WithTags(tag.Service(GatewayServiceName)))
	if err = server.Start(); err != nil {
		logger.Fatal("Failed to start gateway server", tag.Error(err))
	}

	// hand the proxy our listener address, then open the logical
	// connection to the engine
	handshakeCtx, cancel := context.WithTimeout(rootCtx, cfg.Proxy.RequestTimeout.Duration())
	defer cancel()

	libraryAddress, libraryPort, err := splitGatewayAddress(cfg.Gateway.Address)
	if err != nil {
		logger.Fatal("gateway address is not usable for the proxy handshake", tag.Error(err))
	}
	if err = bridgeClient.Initialize(handshakeCtx, libraryAddress, libraryPort); err != nil {
		logger.Fatal("Failed to initialize against the proxy", tag.Error(err))
	}
	if err = bridgeClient.Connect(
		handshakeCtx, cfg.Proxy.Address, cfg.Worker.Identity, cfg.Worker.Namespace, cfg.Proxy.RequestTimeout.Duration(),
	); err != nil {
		logger.Fatal("Failed to connect through the proxy", tag.Error(err))
	}

	return func(ctx context.Context) error {
		// graceful shutdown
		var errs error
		if err := executor.Shutdown(ctx); err != nil {
			errs = multierr.Append(errs, err)
		}
		if err := bridgeClient.Terminate(ctx); err != nil {
			errs = multierr.Append(errs, err)
		}
		if err := server.Stop(ctx); err != nil {
			errs = multierr.Append(errs, err)
		}
		return errs
	}
}

func splitGatewayAddress(address string) (string, int32, error) {
	host, portStr, err := net.SplitHostPort(address)
	if err != nil {
		return "", 0, err
	}
	port, err := strconv.ParseInt(portStr, 10, 32)
	if err != nil {
		return "", 0, err
	}
	if host == "" {
		host = "127.0.0.1"
	}
	return host, int32(port), nil
}
