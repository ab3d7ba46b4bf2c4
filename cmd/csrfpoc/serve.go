// Copyright 2026 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"zombiezen.com/go/markup/internal/config"
	"zombiezen.com/go/markup/internal/server"
)

func serveCmd() *cobra.Command {
	var (
		listen     string
		configPath string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(cfg, server.WithLogger(logger)).ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "TCP address to listen on (default "+config.DefaultListen+")")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file")
	return cmd
}
