// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/flowbridge/flowbridge/cmd/bridge/bootstrap"
)

func main() {
	app := &cli.App{
		Name:  "FlowBridge",
		Usage: "start the FlowBridge message gateway",
		Action: func(c *cli.Context) error {
			bootstrap.StartBridgeCli(c)
			return nil
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  bootstrap.FlagConfig,
				Value: "./config/development.yaml",
				Usage: "the config to start the bridge",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
