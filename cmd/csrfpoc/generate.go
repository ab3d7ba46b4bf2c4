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
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"zombiezen.com/go/markup/httpreq"
	"zombiezen.com/go/markup/internal/config"
	"zombiezen.com/go/markup/poc"
)

func generateCmd() *cobra.Command {
	var (
		https      bool
		minify     bool
		noSubmit   bool
		configPath string
	)
	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Write a proof-of-concept page to stdout",
		Long: `Read a raw HTTP request from file (or stdin if omitted)
and write the proof-of-concept page to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("minify") {
				cfg.Minify = minify
			}
			if cmd.Flags().Changed("no-submit") {
				cfg.NoAutoSubmit = noSubmit
			}
			scheme := httpreq.HTTP
			if https {
				scheme = httpreq.HTTPS
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return runGenerate(cmd.OutOrStdout(), in, scheme, cfg)
		},
	}
	cmd.Flags().BoolVar(&https, "https", false, "Use https for the form action")
	cmd.Flags().BoolVar(&minify, "minify", false, "Write the page on a single line")
	cmd.Flags().BoolVar(&noSubmit, "no-submit", false, "Omit the auto-submit script")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file")
	return cmd
}

func runGenerate(w io.Writer, r io.Reader, scheme httpreq.Scheme, cfg *config.Config) error {
	raw, err := httpreq.Decode(r)
	if err != nil {
		return err
	}
	req, err := httpreq.Parse(raw, scheme)
	if err != nil {
		return err
	}
	if err := poc.Write(w, req, cfg.POCOptions()); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}
