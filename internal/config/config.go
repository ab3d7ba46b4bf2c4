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

// Package config loads the csrfpoc configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
	"zombiezen.com/go/markup"
	"zombiezen.com/go/markup/poc"
)

// DefaultListen is the address the server listens on by default.
const DefaultListen = ":8000"

// Config is the contents of a configuration file.
type Config struct {
	// Listen is the server's TCP address.
	Listen string `yaml:"listen,omitempty"`
	// LogLevel is one of "debug", "info", "warn", or "error".
	LogLevel string `yaml:"log_level,omitempty"`

	Indent       string `yaml:"indent,omitempty"`
	Minify       bool   `yaml:"minify,omitempty"`
	NoAutoSubmit bool   `yaml:"no_auto_submit,omitempty"`
	// MinifyPage compacts the server's HTML pages.
	MinifyPage bool `yaml:"minify_page,omitempty"`

	// SingleTags, TagNames, and AttributeNames extend the default markup tables.
	SingleTags     []string          `yaml:"single_tags,omitempty"`
	TagNames       map[string]string `yaml:"tag_names,omitempty"`
	AttributeNames map[string]string `yaml:"attribute_names,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Listen:   DefaultListen,
		LogLevel: "info",
	}
}

// Load reads the configuration file at path.
// An empty path returns [Default].
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return c, nil
}

// Parse parses YAML configuration on top of [Default].
// Unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if _, err := c.Level(); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

// Level returns the parsed log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

// Markup returns a copy of [markup.DefaultConfig]
// extended with the file's tables.
func (c *Config) Markup() *markup.Config {
	mc := markup.DefaultConfig.Clone()
	for _, name := range c.SingleTags {
		mc.SingleTags[name] = struct{}{}
	}
	for k, v := range c.TagNames {
		mc.TagNames[k] = v
	}
	for k, v := range c.AttributeNames {
		mc.AttrNames[k] = v
	}
	return mc
}

// POCOptions returns the document options described by the file.
func (c *Config) POCOptions() *poc.Options {
	return &poc.Options{
		Minify:       c.Minify,
		Indent:       c.Indent,
		NoAutoSubmit: c.NoAutoSubmit,
		Config:       c.Markup(),
	}
}
