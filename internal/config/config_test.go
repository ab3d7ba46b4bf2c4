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

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		data string
		want *Config
	}{
		{
			name: "Empty",
			data: "",
			want: Default(),
		},
		{
			name: "Full",
			data: "listen: 127.0.0.1:9000\n" +
				"log_level: debug\n" +
				"indent: \"\\t\"\n" +
				"minify: true\n" +
				"no_auto_submit: true\n" +
				"minify_page: true\n" +
				"single_tags: [foo]\n" +
				"tag_names:\n" +
				"  sel: select\n" +
				"attribute_names:\n" +
				"  data_id: data-id\n",
			want: &Config{
				Listen:         "127.0.0.1:9000",
				LogLevel:       "debug",
				Indent:         "\t",
				Minify:         true,
				NoAutoSubmit:   true,
				MinifyPage:     true,
				SingleTags:     []string{"foo"},
				TagNames:       map[string]string{"sel": "select"},
				AttributeNames: map[string]string{"data_id": "data-id"},
			},
		},
		{
			name: "EmptyListen",
			data: "listen: \"\"\n",
			want: Default(),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse([]byte(test.data))
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
		"bogus: 1\n",
		"log_level: loud\n",
		"listen: [\n",
	}
	for _, data := range tests {
		if c, err := Parse([]byte(data)); err == nil {
			t.Errorf("Parse(%q) = %+v, <nil>; want error", data, c)
		}
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), c); diff != "" {
		t.Errorf("Load(\"\") (-want +got):\n%s", diff)
	}

	path := filepath.Join(t.TempDir(), "csrfpoc.yaml")
	if err := os.WriteFile(path, []byte("log_level: warn\n"), 0o666); err != nil {
		t.Fatal(err)
	}
	c, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if level, err := c.Level(); err != nil || level != slog.LevelWarn {
		t.Errorf("Level() = %v, %v; want %v, <nil>", level, err, slog.LevelWarn)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) did not return an error")
	}
}

func TestMarkup(t *testing.T) {
	c := &Config{
		SingleTags:     []string{"foo"},
		TagNames:       map[string]string{"sel": "select"},
		AttributeNames: map[string]string{"data_id": "data-id"},
	}
	mc := c.Markup()
	if !mc.IsSingle("foo") || !mc.IsSingle("input") {
		t.Error("Markup() single tags missing foo or input")
	}
	if got := mc.CanonicalTagName("sel"); got != "select" {
		t.Errorf("CanonicalTagName(\"sel\") = %q; want \"select\"", got)
	}
	if got := mc.CanonicalAttrName("data_id"); got != "data-id" {
		t.Errorf("CanonicalAttrName(\"data_id\") = %q; want \"data-id\"", got)
	}
	if got := mc.CanonicalAttrName("klass"); got != "class" {
		t.Errorf("CanonicalAttrName(\"klass\") = %q; want \"class\"", got)
	}
}
