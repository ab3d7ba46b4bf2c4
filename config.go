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

package markup

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// Config is the set of static tables a [Document] consults
// while building markup.
// A Config must not be modified while any Document using it
// is under construction.
type Config struct {
	// SingleTags is the set of tag names that are always self-closing.
	// Such elements cannot be entered as a scope nor have children.
	SingleTags map[string]struct{}
	// TagNames maps alternate tag names to their canonical markup names.
	TagNames map[string]string
	// AttrNames maps alternate attribute names to their canonical markup names.
	AttrNames map[string]string
	// AttrValues maps literal attribute values to their markup equivalents.
	AttrValues map[string]string
	// PreserveWhitespace is the set of lowercased tag names
	// whose content is written without added line breaks or indentation.
	PreserveWhitespace map[string]struct{}
}

// DefaultConfig is the Config used by documents that do not set one.
// Programs may extend its tables during initialization.
var DefaultConfig = NewConfig()

// NewConfig returns a new Config populated with the default tables.
func NewConfig() *Config {
	c := &Config{
		SingleTags:         make(map[string]struct{}, len(defaultSingleTags)),
		TagNames:           make(map[string]string, len(defaultTagNames)),
		AttrNames:          make(map[string]string, len(defaultAttrNames)),
		AttrValues:         make(map[string]string, len(defaultAttrValues)),
		PreserveWhitespace: map[string]struct{}{atom.Pre.String(): {}},
	}
	for _, a := range defaultSingleTags {
		c.SingleTags[a.String()] = struct{}{}
	}
	for k, v := range defaultTagNames {
		c.TagNames[k] = v
	}
	for k, v := range defaultAttrNames {
		c.AttrNames[k] = v
	}
	for k, v := range defaultAttrValues {
		c.AttrValues[k] = v
	}
	return c
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	c2 := &Config{
		SingleTags:         make(map[string]struct{}, len(c.SingleTags)),
		TagNames:           make(map[string]string, len(c.TagNames)),
		AttrNames:          make(map[string]string, len(c.AttrNames)),
		AttrValues:         make(map[string]string, len(c.AttrValues)),
		PreserveWhitespace: make(map[string]struct{}, len(c.PreserveWhitespace)),
	}
	for k := range c.SingleTags {
		c2.SingleTags[k] = struct{}{}
	}
	for k, v := range c.TagNames {
		c2.TagNames[k] = v
	}
	for k, v := range c.AttrNames {
		c2.AttrNames[k] = v
	}
	for k, v := range c.AttrValues {
		c2.AttrValues[k] = v
	}
	for k := range c.PreserveWhitespace {
		c2.PreserveWhitespace[k] = struct{}{}
	}
	return c2
}

// IsSingle reports whether the named tag is always self-closing.
// Surrounding spaces are ignored.
func (c *Config) IsSingle(name string) bool {
	_, ok := c.SingleTags[strings.TrimSpace(name)]
	return ok
}

func (c *Config) preservesWhitespace(name string) bool {
	_, ok := c.PreserveWhitespace[strings.ToLower(name)]
	return ok
}

var defaultSingleTags = []atom.Atom{
	atom.Input,
	atom.Hr,
	atom.Br,
	atom.Img,
	atom.Area,
	atom.Link,
	atom.Col,
	atom.Meta,
	atom.Base,
	atom.Param,
	atom.Wbr,
	atom.Keygen,
	atom.Source,
	atom.Track,
	atom.Embed,
}

var defaultTagNames = map[string]string{
	"del_": "del",
	"Del":  "del",
}

var defaultAttrNames = map[string]string{
	// Go identifiers and struct-tag friendly spellings.
	"klass":  "class",
	"Class":  "class",
	"class_": "class",
	"async_": "async",
	"Async":  "async",
	"for_":   "for",
	"For":    "for",
	"In":     "in",
	"in_":    "in",

	// XML
	"xmlns_xlink": "xmlns:xlink",

	// SVG
	"fill_opacity":      "fill-opacity",
	"stroke_width":      "stroke-width",
	"stroke_dasharray":  "stroke-dasharray",
	"stroke_opacity":    "stroke-opacity",
	"stroke_dashoffset": "stroke-dashoffset",
	"stroke_linejoin":   "stroke-linejoin",
	"stroke_linecap":    "stroke-linecap",
	"stroke_miterlimit": "stroke-miterlimit",
}

var defaultAttrValues = map[string]string{
	"True":  "true",
	"False": "false",
	"None":  "null",
}
