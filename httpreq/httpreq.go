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

// Package httpreq parses raw HTTP requests,
// as copied from a browser's developer tools or an intercepting proxy,
// into the pieces needed to replay them as an HTML form.
package httpreq

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrMalformed is returned (wrapped) when a request cannot be parsed.
var ErrMalformed = errors.New("malformed request")

// Scheme is the protocol used to build the target URL.
type Scheme string

// Supported schemes.
const (
	HTTP  Scheme = "http"
	HTTPS Scheme = "https"
)

// ParseScheme converts "http" or "https" (in any case) to a [Scheme].
func ParseScheme(s string) (Scheme, error) {
	switch sc := Scheme(strings.ToLower(s)); sc {
	case HTTP, HTTPS:
		return sc, nil
	default:
		return "", fmt.Errorf("parse scheme %q: unsupported", s)
	}
}

// Field is a single name/value pair from a form-encoded body.
type Field struct {
	Name  string
	Value string
}

// Request is a parsed raw HTTP request.
type Request struct {
	Method string
	Host   string
	// Path is the request target exactly as written on the request line.
	Path string
	// URL is the absolute target URL.
	URL string
	// Fields holds the body's fields in order.
	// Names and values are not percent-decoded.
	Fields []Field
}

// Parse parses a raw HTTP/1.x request.
//
// The method and path are taken from the request line.
// The host comes from the Host header,
// or the second token of the second line if there is no Host header.
// The body is everything after the first blank line,
// split into fields on "&" and into names and values on the first "=".
// Line breaks inside the body are removed.
func Parse(raw string, scheme Scheme) (*Request, error) {
	if scheme == "" {
		scheme = HTTP
	}
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.TrimLeft(raw, "\n")
	head, body, _ := strings.Cut(raw, "\n\n")
	lines := strings.Split(head, "\n")

	requestLine := strings.Fields(lines[0])
	if len(requestLine) < 2 {
		return nil, fmt.Errorf("parse request: request line %q: %w", lines[0], ErrMalformed)
	}
	req := &Request{
		Method: requestLine[0],
		Path:   requestLine[1],
	}
	req.Host = findHost(lines[1:])
	if req.Host == "" {
		return nil, fmt.Errorf("parse request: missing host: %w", ErrMalformed)
	}
	req.URL = string(scheme) + "://" + req.Host + req.Path
	req.Fields = ParseBody(body)
	return req, nil
}

func findHost(headers []string) string {
	for _, line := range headers {
		name, value, ok := strings.Cut(line, ":")
		if ok && strings.EqualFold(strings.TrimSpace(name), "host") {
			return strings.TrimSpace(value)
		}
	}
	if len(headers) > 0 {
		if tokens := strings.Fields(headers[0]); len(tokens) >= 2 {
			return tokens[1]
		}
	}
	return ""
}

// ParseBody splits a form-encoded body into fields.
// Empty fields are skipped,
// and a field without "=" has an empty value.
func ParseBody(body string) []Field {
	body = strings.ReplaceAll(body, "\r", "")
	body = strings.ReplaceAll(body, "\n", "")
	var fields []Field
	for _, part := range strings.Split(body, "&") {
		if part == "" {
			continue
		}
		name, value, _ := strings.Cut(part, "=")
		fields = append(fields, Field{Name: name, Value: value})
	}
	return fields
}

// Decode reads a raw request from r.
// Input that starts with a UTF-8 or UTF-16 byte order mark
// is decoded accordingly; anything else is treated as UTF-8.
func Decode(r io.Reader) (string, error) {
	b, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return "", fmt.Errorf("decode request: %w", err)
	}
	return string(b), nil
}
