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
	"fmt"
	"strings"

	"go4.org/bytereplacer"
)

// Attr is a single attribute of an element.
type Attr struct {
	Name  string
	Value string
	// If Bare is true, the attribute is written as Name alone,
	// before any keyword attributes of the same element.
	Bare bool
}

// A returns a keyword attribute.
// Strings are used verbatim;
// booleans and nil are written as the markup tokens
// "true", "false", and "null";
// any other value is formatted with [fmt.Sprint].
func A(name string, value any) Attr {
	return Attr{Name: name, Value: formatValue(value)}
}

// Bare returns a positional attribute,
// written as a space-separated token with no value.
func Bare(token string) Attr {
	return Attr{Name: token, Bare: true}
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// CanonicalTagName returns the markup name for a tag name,
// consulting c.TagNames.
func (c *Config) CanonicalTagName(name string) string {
	if mapped, ok := c.TagNames[name]; ok {
		return mapped
	}
	return name
}

// CanonicalAttrName returns the markup name for an attribute name,
// consulting c.AttrNames.
func (c *Config) CanonicalAttrName(name string) string {
	if mapped, ok := c.AttrNames[name]; ok {
		return mapped
	}
	return name
}

// CanonicalAttrValue substitutes literal values found in c.AttrValues
// and then escapes double quotes with [EscapeQuotes].
func (c *Config) CanonicalAttrValue(value string) string {
	if mapped, ok := c.AttrValues[value]; ok {
		value = mapped
	}
	return EscapeQuotes(value)
}

var quoteEscaper = bytereplacer.New(`"`, "&quot;")

// EscapeQuotes replaces every double quote in s with "&quot;".
//
// No other character is escaped:
// callers embedding untrusted values must escape
// ampersands and angle brackets themselves.
func EscapeQuotes(s string) string {
	if !strings.Contains(s, `"`) {
		return s
	}
	return string(quoteEscaper.Replace([]byte(s)))
}

// appendAttrs appends the rendered attribute list to dst.
// Bare attributes come first in call order,
// followed by keyword attributes in call order.
func (c *Config) appendAttrs(dst []byte, attrs []Attr) []byte {
	for _, a := range attrs {
		if a.Bare {
			dst = append(dst, ' ')
			dst = append(dst, a.Name...)
		}
	}
	for _, a := range attrs {
		if a.Bare {
			continue
		}
		dst = append(dst, ' ')
		dst = append(dst, c.CanonicalAttrName(a.Name)...)
		dst = append(dst, `="`...)
		dst = append(dst, c.CanonicalAttrValue(a.Value)...)
		dst = append(dst, '"')
	}
	return dst
}
