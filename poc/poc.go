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

// Package poc builds cross-site request forgery proof-of-concept pages:
// HTML documents that replay a captured request
// as a form of hidden fields submitted on load.
package poc

import (
	"fmt"
	"io"

	"zombiezen.com/go/markup"
	"zombiezen.com/go/markup/httpreq"
)

// AutoSubmitScript is the script body that submits the form on load.
const AutoSubmitScript = "document.forms[0].submit()"

// Options is the set of parameters to [Build] and [Write].
// A nil *Options is equivalent to the zero value.
type Options struct {
	// Minify and Indent are passed to the [markup.Document].
	Minify bool
	Indent string
	// If NoAutoSubmit is true, the page does not include the submit script.
	NoAutoSubmit bool
	// Config overrides the markup tables.
	// If nil, [markup.DefaultConfig] is used.
	Config *markup.Config
}

// Build returns the proof-of-concept page for req.
func Build(req *httpreq.Request, opts *Options) (string, error) {
	doc, err := build(req, opts)
	if err != nil {
		return "", err
	}
	return doc.String(), nil
}

// Write writes the proof-of-concept page for req to w.
func Write(w io.Writer, req *httpreq.Request, opts *Options) error {
	doc, err := build(req, opts)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write proof of concept: %w", err)
	}
	return nil
}

func build(req *httpreq.Request, opts *Options) (*markup.Document, error) {
	if opts == nil {
		opts = new(Options)
	}
	doc := &markup.Document{
		Minify: opts.Minify,
		Indent: opts.Indent,
		Config: opts.Config,
	}
	html, err := doc.Element("html")
	if err != nil {
		return nil, fmt.Errorf("build proof of concept: %w", err)
	}
	err = html.Scope(func() error {
		body, err := doc.Element("body")
		if err != nil {
			return err
		}
		return body.Scope(func() error {
			if err := writeForm(doc, req); err != nil {
				return err
			}
			if opts.NoAutoSubmit {
				return nil
			}
			script, err := doc.Element("script")
			if err != nil {
				return err
			}
			return script.Scope(func() error {
				doc.Text(AutoSubmitScript)
				return nil
			})
		})
	})
	if err != nil {
		return nil, fmt.Errorf("build proof of concept: %w", err)
	}
	return doc, nil
}

func writeForm(doc *markup.Document, req *httpreq.Request) error {
	form, err := doc.Element("form", markup.A("action", req.URL), markup.A("method", req.Method))
	if err != nil {
		return err
	}
	return form.Scope(func() error {
		for _, f := range req.Fields {
			_, err := doc.Element("input",
				markup.A("type", "hidden"),
				markup.A("name", f.Name),
				markup.A("value", f.Value),
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
