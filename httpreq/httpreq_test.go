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

package httpreq

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/encoding/unicode"
)

const loginRequest = "POST /account/email HTTP/1.1\r\n" +
	"Host: shop.example.com\r\n" +
	"Content-Type: application/x-www-form-urlencoded\r\n" +
	"Cookie: session=abc\r\n" +
	"\r\n" +
	"email=a%40example.com&confirm=1"

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		scheme Scheme
		want   *Request
	}{
		{
			name:   "CRLF",
			raw:    loginRequest,
			scheme: HTTPS,
			want: &Request{
				Method: "POST",
				Host:   "shop.example.com",
				Path:   "/account/email",
				URL:    "https://shop.example.com/account/email",
				Fields: []Field{
					{Name: "email", Value: "a%40example.com"},
					{Name: "confirm", Value: "1"},
				},
			},
		},
		{
			name:   "DefaultScheme",
			raw:    "GET /search?q=x HTTP/1.1\nHost: example.com:8080\n",
			scheme: "",
			want: &Request{
				Method: "GET",
				Host:   "example.com:8080",
				Path:   "/search?q=x",
				URL:    "http://example.com:8080/search?q=x",
			},
		},
		{
			name: "HostNotSecondLine",
			raw: "POST /x HTTP/1.1\n" +
				"User-Agent: test\n" +
				"host: late.example.com\n" +
				"\n" +
				"a=1",
			scheme: HTTP,
			want: &Request{
				Method: "POST",
				Host:   "late.example.com",
				Path:   "/x",
				URL:    "http://late.example.com/x",
				Fields: []Field{{Name: "a", Value: "1"}},
			},
		},
		{
			name:   "FoldedBody",
			raw:    "POST /x HTTP/1.1\nHost: h\n\na=1&\nb=x=y&&flag\n",
			scheme: HTTP,
			want: &Request{
				Method: "POST",
				Host:   "h",
				Path:   "/x",
				URL:    "http://h/x",
				Fields: []Field{
					{Name: "a", Value: "1"},
					{Name: "b", Value: "x=y"},
					{Name: "flag", Value: ""},
				},
			},
		},
		{
			name:   "DuplicateFields",
			raw:    "POST /x HTTP/1.1\nHost: h\n\nid=1&id=2",
			scheme: HTTP,
			want: &Request{
				Method: "POST",
				Host:   "h",
				Path:   "/x",
				URL:    "http://h/x",
				Fields: []Field{{Name: "id", Value: "1"}, {Name: "id", Value: "2"}},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse(test.raw, test.scheme)
			if err != nil {
				t.Fatal("Parse:", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Parse(...) (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"POST\nHost: h\n",
		"POST /x HTTP/1.1",
		"POST /x HTTP/1.1\n\nbody",
	}
	for _, raw := range tests {
		if req, err := Parse(raw, HTTP); !errors.Is(err, ErrMalformed) {
			t.Errorf("Parse(%q) = %+v, %v; want %v", raw, req, err, ErrMalformed)
		}
	}
}

func TestParseScheme(t *testing.T) {
	for _, s := range []string{"http", "HTTPS", "Http"} {
		if _, err := ParseScheme(s); err != nil {
			t.Errorf("ParseScheme(%q): %v", s, err)
		}
	}
	if sc, err := ParseScheme("ftp"); err == nil {
		t.Errorf("ParseScheme(\"ftp\") = %q, <nil>; want error", sc)
	}
}

func TestDecode(t *testing.T) {
	utf16, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(loginRequest)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name  string
		input string
	}{
		{"UTF8", loginRequest},
		{"UTF8BOM", "\ufeff" + loginRequest},
		{"UTF16LE", utf16},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(test.input))
			if err != nil {
				t.Fatal(err)
			}
			if got != loginRequest {
				t.Errorf("Decode(...) = %q; want %q", got, loginRequest)
			}
		})
	}
}
