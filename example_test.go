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

package markup_test

import (
	"fmt"

	"zombiezen.com/go/markup"
)

func Example() {
	doc := new(markup.Document)
	html, _ := doc.Element("html")
	html.Scope(func() error {
		body, _ := doc.Element("body")
		return body.Scope(func() error {
			// Elements that are never entered are closed by the next write.
			doc.Element("h1", markup.A("klass", "title"))
			doc.Text("Hello")
			doc.Element("br")
			return nil
		})
	})
	fmt.Println(doc)
	// Output:
	// <html>
	//   <body>
	//     <h1 class="title"></h1>
	//     Hello
	//     <br />
	//   </body>
	// </html>
}

func ExampleDocument_minify() {
	doc := &markup.Document{Minify: true}
	ul, _ := doc.Element("ul")
	ul.Scope(func() error {
		for _, item := range []string{"a", "b"} {
			if _, err := doc.ElementText("li", item); err != nil {
				return err
			}
		}
		return nil
	})
	fmt.Println(doc)
	// Output:
	// <ul><li>a</li><li>b</li></ul>
}

func ExampleElement_Element() {
	doc := new(markup.Document)
	ul, _ := doc.Element("ul")
	li, _ := ul.Element("li")
	li.ElementText("strong", "chained")
	fmt.Println(doc)
	// Output:
	// <ul>
	//   <li>
	//     <strong>chained</strong>
	//   </li>
	// </ul>
}

func ExampleEscapeQuotes() {
	fmt.Println(markup.EscapeQuotes(`say "hi" & <bye>`))
	// Output:
	// say &quot;hi&quot; & <bye>
}
