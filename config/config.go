// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type (
	Config struct {
		// Log is the logging config
		Log Logger `yaml:"log"`

		// Gateway is the config for the HTTP listener that receives
		// messages from the proxy process
		Gateway GatewayConfig `yaml:"gateway"`

		// Proxy is the config for reaching the proxy process
		Proxy ProxyConfig `yaml:"proxy"`

		// Worker is the config for local execution defaults
		Worker WorkerConfig `yaml:"worker"`
	}

	GatewayConfig struct {
		// Address is the TCP address for the gateway to listen on,
		// in the form "host:port"
		Address string `yaml:"address"`
		// ReadTimeout is the maximum duration for reading an inbound
		// message frame, including the body
		ReadTimeout Duration `yaml:"readTimeout"`
		// WriteTimeout is the maximum duration before timing out
		// writes of the response
		WriteTimeout Duration `yaml:"writeTimeout"`
	}

	ProxyConfig struct {
		// Address is the address of the proxy process that fronts the
		// orchestration engine. A bare host:port is accepted.
		Address string `yaml:"address"`
		// RequestTimeout bounds one message round trip to the proxy
		RequestTimeout Duration `yaml:"requestTimeout"`
	}

	WorkerConfig struct {
		// Identity names this worker process towards the engine; when
		// empty a unique identity is generated at startup
		Identity string `yaml:"identity"`
		// Namespace is the default namespace stamped on outbound requests
		// when the caller does not provide one
		Namespace string `yaml:"namespace"`
		// TaskQueue is the default task queue for workflow/activity starts
		TaskQueue string `yaml:"taskQueue"`
		// DefaultHeartbeatTimeout applies to activity tasks that do not
		// carry their own heartbeat timeout
		DefaultHeartbeatTimeout Duration `yaml:"defaultHeartbeatTimeout"`
		// DefaultQueueCapacity applies to workflow queues created without
		// an explicit capacity
		DefaultQueueCapacity int `yaml:"defaultQueueCapacity"`
	}
)

func NewConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ValidateAndSetDefaults() error {
	if c.Gateway.Address == "" {
		return fmt.Errorf("gateway address is required")
	}
	if c.Proxy.Address == "" {
		return fmt.Errorf("proxy address is required")
	}
	if c.Gateway.ReadTimeout == 0 {
		c.Gateway.ReadTimeout = Duration(time.Second * 30)
	}
	if c.Gateway.WriteTimeout == 0 {
		c.Gateway.WriteTimeout = Duration(time.Second * 30)
	}
	if c.Proxy.RequestTimeout == 0 {
		c.Proxy.RequestTimeout = Duration(time.Second * 30)
	}
	if c.Worker.Identity == "" {
		c.Worker.Identity = "flowbridge-" + uuid.NewString()
	}
	if c.Worker.Namespace == "" {
		c.Worker.Namespace = "default"
	}
	if c.Worker.DefaultHeartbeatTimeout == 0 {
		c.Worker.DefaultHeartbeatTimeout = Duration(time.Second * 30)
	}
	if c.Worker.DefaultQueueCapacity <= 0 {
		c.Worker.DefaultQueueCapacity = 100
	}
	return nil
}

func (c *Config) String() string {
	str, err := json.Marshal(c)
	if err != nil {
		return fmt.Sprintf("%v", *c)
	}
	return string(str)
}
