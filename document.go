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

// Package markup provides an imperative builder for indented or minified
// HTML-like documents.
//
// Elements are created on a [Document] one after another.
// A paired element may be entered as a scope,
// in which case everything written until the scope is exited
// becomes its children.
// A paired element that is never entered is closed automatically
// by the next write to the document,
// so fire-and-forget usage still produces properly nested output:
//
//	doc := new(markup.Document)
//	body, _ := doc.Element("body")
//	body.Scope(func() error {
//		doc.Element("p", markup.A("klass", "note"))
//		doc.Element("br")
//		return nil
//	})
//	fmt.Println(doc)
//
// # Caveats
//
// Elements that are entered but never exited are left unclosed
// by [*Document.String].
// Use [*Element.Scope] to guarantee that every entered element is exited.
//
// Attribute values only have their double quotes escaped.
// Text and attribute values from untrusted sources
// must be escaped by the caller.
//
// A Document is not safe for concurrent use by multiple goroutines.
package markup

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// A Document accumulates markup.
// The zero value is an empty document using the default options.
// Options must not be changed after the first element is created.
type Document struct {
	// Indent is the string written once per nesting level
	// at the start of each line.
	// If Indent is empty, two spaces are used.
	Indent string
	// LineBreak separates lines in the rendered document.
	// If LineBreak is empty, "\n" is used.
	LineBreak string
	// If Minify is true, no line breaks or indentation are written
	// except for calls to [*Document.BreakLine].
	Minify bool
	// Config holds the tag and attribute tables.
	// If Config is nil, [DefaultConfig] is used.
	Config *Config

	lines [][]byte
	// stack holds the elements that are open, innermost last.
	stack []*Element
	depth int
}

func (d *Document) config() *Config {
	if d.Config == nil {
		return DefaultConfig
	}
	return d.Config
}

func (d *Document) indent() string {
	if d.Indent == "" {
		return "  "
	}
	return d.Indent
}

func (d *Document) lineBreak() string {
	if d.LineBreak == "" {
		return "\n"
	}
	return d.LineBreak
}

// Element closes any dangling elements
// and then creates a new element at the current nesting level.
// attrs are normalized according to the document's [Config].
//
// If the tag is a single tag, the element is written in full
// and the returned element cannot be entered or have children.
// Otherwise, the opening tag is written
// and the element remains open until it is exited or flushed.
func (d *Document) Element(name string, attrs ...Attr) (*Element, error) {
	if name == "" {
		return nil, ErrEmptyTagName
	}
	d.Flush()
	return d.newElement(name, "", attrs)
}

// ElementText is like [*Document.Element],
// but writes text immediately after the element's tag.
func (d *Document) ElementText(name, text string, attrs ...Attr) (*Element, error) {
	if name == "" {
		return nil, ErrEmptyTagName
	}
	d.Flush()
	return d.newElement(name, text, attrs)
}

func (d *Document) newElement(name, text string, attrs []Attr) (*Element, error) {
	if name == "" {
		return nil, ErrEmptyTagName
	}
	cfg := d.config()
	name = cfg.CanonicalTagName(name)
	e := &Element{
		doc:    d,
		name:   name,
		single: cfg.IsSingle(name),
	}
	if parent := d.top(); parent != nil && !parent.opened {
		d.depth++
		parent.opened = true
	}

	buf := make([]byte, 0, len(name)+len(text)+16)
	buf = append(buf, '<')
	buf = append(buf, name...)
	buf = cfg.appendAttrs(buf, attrs)
	if e.single {
		buf = append(buf, " />"...)
		buf = append(buf, text...)
		d.write(buf, true)
		e.final = true
		return e, nil
	}
	buf = append(buf, '>')
	buf = append(buf, text...)
	d.write(buf, true)
	d.stack = append(d.stack, e)
	return e, nil
}

// Text closes any dangling elements and then writes s verbatim.
// s is written on its own line
// unless the document is minified
// or the innermost open element preserves whitespace,
// in which case it is appended to the current line.
func (d *Document) Text(s string) {
	d.Flush()
	d.write([]byte(s), true)
}

// Flush closes every element at the top of the stack
// that was never entered,
// stopping at the first entered element.
// Calling Flush on a flushed document has no effect.
func (d *Document) Flush() {
	for len(d.stack) > 0 {
		e := d.stack[len(d.stack)-1]
		if e.entered {
			return
		}
		d.stack = d.stack[:len(d.stack)-1]
		d.finalize(e)
	}
}

// BreakLine closes any dangling elements
// and, in a minified document, starts a new line.
// Non-minified documents already break lines between writes.
func (d *Document) BreakLine() {
	d.Flush()
	if d.Minify {
		d.lines = append(d.lines, nil)
	}
}

// Depth returns the current nesting level.
func (d *Document) Depth() int {
	return d.depth
}

// OpenElements returns the number of elements that are still open.
func (d *Document) OpenElements() int {
	return len(d.stack)
}

// String closes any dangling elements
// and returns the document rendered so far.
// The document may continue to be built afterward.
func (d *Document) String() string {
	return string(d.Bytes())
}

// Bytes is like [*Document.String] but returns a byte slice.
func (d *Document) Bytes() []byte {
	return d.AppendTo(nil)
}

// AppendTo closes any dangling elements,
// appends the document rendered so far to dst,
// and returns the resulting byte slice.
func (d *Document) AppendTo(dst []byte) []byte {
	d.Flush()
	lb := d.lineBreak()
	for i, line := range d.lines {
		if i > 0 {
			dst = append(dst, lb...)
		}
		dst = append(dst, line...)
	}
	return dst
}

// WriteTo closes any dangling elements
// and writes the document rendered so far to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.Bytes())
	if err != nil {
		return int64(n), fmt.Errorf("render markup: %w", err)
	}
	return int64(n), nil
}

func (d *Document) finalize(e *Element) {
	if e.opened {
		d.depth--
	}
	buf := make([]byte, 0, len(e.name)+3)
	buf = append(buf, "</"...)
	buf = append(buf, e.name...)
	buf = append(buf, '>')
	d.write(buf, e.opened)
	e.final = true
}

func (d *Document) write(s []byte, newLine bool) {
	top := d.top()
	preserve := top != nil && d.config().preservesWhitespace(top.name)
	if !newLine || preserve || d.Minify {
		if len(d.lines) == 0 {
			d.lines = append(d.lines, s)
			return
		}
		last := len(d.lines) - 1
		d.lines[last] = append(d.lines[last], s...)
		return
	}
	indent := d.indent()
	line := make([]byte, 0, len(indent)*d.depth+len(s))
	for i := 0; i < d.depth; i++ {
		line = append(line, indent...)
	}
	line = append(line, s...)
	d.lines = append(d.lines, line)
}

func (d *Document) top() *Element {
	if len(d.stack) == 0 {
		return nil
	}
	return d.stack[len(d.stack)-1]
}

func (d *Document) indexOf(e *Element) int {
	for i := len(d.stack) - 1; i >= 0; i-- {
		if d.stack[i] == e {
			return i
		}
	}
	return -1
}

// ErrInvalidOperation is the error returned (wrapped in an [*OperationError])
// when a caller violates the scope protocol.
// Use [errors.Is] to test for it.
var ErrInvalidOperation = errors.New("invalid operation")

// ErrEmptyTagName is returned when an element is created without a name.
var ErrEmptyTagName = fmt.Errorf("markup: empty tag name: %w", ErrInvalidOperation)

var (
	errSingle       = fmt.Errorf("single tag cannot have children or a scope: %w", ErrInvalidOperation)
	errFinalized    = fmt.Errorf("element already closed: %w", ErrInvalidOperation)
	errEntered      = fmt.Errorf("element already entered: %w", ErrInvalidOperation)
	errNotEntered   = fmt.Errorf("element was never entered: %w", ErrInvalidOperation)
	errNotInnermost = fmt.Errorf("element is not the innermost open element: %w", ErrInvalidOperation)
	errOutOfOrder   = fmt.Errorf("nested scope still entered: %w", ErrInvalidOperation)
)

// OperationError records a scope protocol violation on an element.
type OperationError struct {
	Op  string
	Tag string
	Err error
}

func (e *OperationError) Error() string {
	var sb strings.Builder
	sb.WriteString("markup: ")
	sb.WriteString(e.Op)
	sb.WriteString(" <")
	sb.WriteString(e.Tag)
	sb.WriteString(">: ")
	sb.WriteString(e.Err.Error())
	return sb.String()
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
