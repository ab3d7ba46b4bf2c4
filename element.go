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

//go:generate stringer -type=State -output=element_string.go

package markup

// An Element is a single tag occurrence in a [Document].
//
// Paired elements stay open until they are closed:
// either explicitly, by [*Element.Exit] after [*Element.Enter],
// or implicitly, by the next write to the document
// if they were never entered.
// Single elements are complete as soon as they are created.
type Element struct {
	doc  *Document
	name string

	single bool
	// entered is set once the element is explicitly entered as a scope.
	entered bool
	// opened is set once the element has raised the document's indentation
	// for a block of children.
	opened bool
	final  bool
}

// Name returns the canonical tag name of the element.
func (e *Element) Name() string {
	return e.name
}

// IsSingle reports whether the element is self-closing.
func (e *Element) IsSingle() bool {
	return e.single
}

// State returns the element's current state.
func (e *Element) State() State {
	switch {
	case e.final:
		return StateFinalized
	case e.entered:
		return StateEntered
	case e.doc.top() == e:
		return StateCreated
	default:
		return StateDangling
	}
}

// Element creates a child element directly under e
// without closing e first.
// e must be a paired element that is the innermost open element of its document.
func (e *Element) Element(name string, attrs ...Attr) (*Element, error) {
	if err := e.checkParent("create child"); err != nil {
		return nil, err
	}
	return e.doc.newElement(name, "", attrs)
}

// ElementText is like [*Element.Element],
// but writes text immediately after the child's opening tag.
func (e *Element) ElementText(name, text string, attrs ...Attr) (*Element, error) {
	if err := e.checkParent("create child"); err != nil {
		return nil, err
	}
	return e.doc.newElement(name, text, attrs)
}

func (e *Element) checkParent(op string) error {
	switch {
	case e.single:
		return e.opError(op, errSingle)
	case e.final:
		return e.opError(op, errFinalized)
	case e.doc.top() != e:
		return e.opError(op, errNotInnermost)
	}
	return nil
}

// Enter begins a scope for e:
// elements and text written to the document until [*Element.Exit]
// become e's children.
// e must be a paired element that is the innermost open element
// and has not been entered before.
func (e *Element) Enter() error {
	switch {
	case e.single:
		return e.opError("enter", errSingle)
	case e.final:
		return e.opError("enter", errFinalized)
	case e.entered:
		return e.opError("enter", errEntered)
	case e.doc.top() != e:
		return e.opError("enter", errNotInnermost)
	}
	e.entered = true
	if !e.opened {
		e.doc.depth++
		e.opened = true
	}
	return nil
}

// Exit ends the scope begun by [*Element.Enter]
// and writes e's closing tag.
// Any children of e that were never entered are closed first.
// Exit fails without changing the document
// if a scope nested inside e is still entered.
func (e *Element) Exit() error {
	switch {
	case e.single:
		return e.opError("exit", errSingle)
	case e.final:
		return e.opError("exit", errFinalized)
	case !e.entered:
		return e.opError("exit", errNotEntered)
	}
	d := e.doc
	i := d.indexOf(e)
	if i < 0 {
		return e.opError("exit", errFinalized)
	}
	for _, above := range d.stack[i+1:] {
		if above.entered {
			return e.opError("exit", errOutOfOrder)
		}
	}

	d.Flush()
	// Close before popping so that a preserved-whitespace element
	// keeps its closing tag on the same line as its content.
	d.finalize(e)
	d.stack = d.stack[:len(d.stack)-1]
	return nil
}

// Scope enters e, calls f, and exits e,
// even if f returns an error or panics.
// The error from f takes precedence over the error from exiting.
func (e *Element) Scope(f func() error) (err error) {
	if err := e.Enter(); err != nil {
		return err
	}
	defer func() {
		if exitErr := e.Exit(); err == nil {
			err = exitErr
		}
	}()
	return f()
}

func (e *Element) opError(op string, err error) error {
	return &OperationError{Op: op, Tag: e.name, Err: err}
}

// State is an enumeration of the lifecycle states of an [Element].
type State int

const (
	// StateCreated indicates a paired element that is the innermost open element
	// and has not been entered.
	StateCreated State = iota
	// StateEntered indicates a paired element whose scope has been entered
	// and not yet exited.
	StateEntered
	// StateDangling indicates a paired element that was never entered
	// and has an open child.
	// It will be closed by the next flush.
	StateDangling
	// StateFinalized indicates an element whose closing text has been written.
	// Single elements are always finalized.
	StateFinalized
)
