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

// Package tagtree parses markup into a strict tree of tags,
// rejecting any document whose tags are not properly nested.
// Unlike an HTML parser, it performs no error recovery:
// every start tag must be closed by a matching end tag.
package tagtree

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
)

// Node is an element or a run of text.
type Node struct {
	// Tag is the lowercased tag name, or empty for text and the root.
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Node
	// SelfClosing is true for tags written as "<tag />".
	SelfClosing bool
}

// Attr is a single attribute of an element.
type Attr struct {
	Key   string
	Value string
}

// Options is the set of parameters to [Parse].
type Options struct {
	// If KeepSpace is true, text consisting only of whitespace is kept.
	KeepSpace bool
}

// Parse returns the root of the tag tree in b.
// The root has an empty Tag and holds the top-level nodes as children.
func Parse(b []byte, opts *Options) (*Node, error) {
	if opts == nil {
		opts = new(Options)
	}
	root := new(Node)
	stack := []*Node{root}
	tok := html.NewTokenizer(bytes.NewReader(b))
	for {
		tt := tok.Next()
		parent := stack[len(stack)-1]
		switch tt {
		case html.ErrorToken:
			if err := tok.Err(); err != io.EOF {
				return nil, err
			}
			if len(stack) > 1 {
				return nil, fmt.Errorf("parse tag tree: <%s> not closed", parent.Tag)
			}
			return root, nil
		case html.TextToken:
			data := tok.Text()
			if !opts.KeepSpace {
				data = bytes.TrimSpace(data)
				if len(data) == 0 {
					continue
				}
			}
			parent.Children = append(parent.Children, &Node{Text: string(data)})
		case html.StartTagToken, html.SelfClosingTagToken:
			n := newElement(tok)
			parent.Children = append(parent.Children, n)
			if tt == html.SelfClosingTagToken {
				n.SelfClosing = true
			} else {
				stack = append(stack, n)
			}
		case html.EndTagToken:
			tagBytes, _ := tok.TagName()
			tag := string(tagBytes)
			if len(stack) == 1 {
				return nil, fmt.Errorf("parse tag tree: unexpected </%s>", tag)
			}
			if tag != parent.Tag {
				return nil, fmt.Errorf("parse tag tree: </%s> closes <%s>", tag, parent.Tag)
			}
			stack = stack[:len(stack)-1]
		}
	}
}

func newElement(tok *html.Tokenizer) *Node {
	tagBytes, hasAttr := tok.TagName()
	n := &Node{Tag: string(tagBytes)}
	for hasAttr {
		var k, v []byte
		k, v, hasAttr = tok.TagAttr()
		n.Attrs = append(n.Attrs, Attr{string(k), string(v)})
	}
	return n
}

// Count returns the number of elements in the tree rooted at n,
// not counting n itself.
func (n *Node) Count() int {
	total := 0
	for _, c := range n.Children {
		if c.Tag != "" {
			total += 1 + c.Count()
		}
	}
	return total
}

var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	`'`, "&apos;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// String returns the tree as minimal markup
// with attributes sorted by key.
func (n *Node) String() string {
	return string(n.appendTo(nil))
}

func (n *Node) appendTo(dst []byte) []byte {
	switch {
	case n.Tag == "" && n.Text != "":
		return append(dst, htmlEscaper.Replace([]byte(n.Text))...)
	case n.Tag == "":
		for _, c := range n.Children {
			dst = c.appendTo(dst)
		}
		return dst
	}
	dst = append(dst, '<')
	dst = append(dst, n.Tag...)
	attrs := append([]Attr(nil), n.Attrs...)
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].Key < attrs[j].Key
	})
	for _, attr := range attrs {
		dst = append(dst, ' ')
		dst = append(dst, attr.Key...)
		if attr.Value != "" {
			dst = append(dst, `="`...)
			dst = append(dst, html.EscapeString(attr.Value)...)
			dst = append(dst, '"')
		}
	}
	if n.SelfClosing {
		return append(dst, " />"...)
	}
	dst = append(dst, '>')
	for _, c := range n.Children {
		dst = c.appendTo(dst)
	}
	dst = append(dst, "</"...)
	dst = append(dst, n.Tag...)
	dst = append(dst, '>')
	return dst
}
