/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

 http://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

// Package util holds the small set of concerns shared by the pkgconfig
// engine and its CLI: error values that carry a captured stack trace, and
// verbosity-aware logging.
package util

import (
	"fmt"
	"runtime"
)

// PkgConfigError is the error type returned throughout the pkgconfig engine.
// Every message the engine produces (see the substrings catalogued in
// SPEC_FULL.md §6) is wrapped in one of these so that a caller running with
// --debug can print the call stack that produced it.
type PkgConfigError struct {
	Parent     error
	Text       string
	StackTrace []byte
}

func (pe *PkgConfigError) Error() string {
	return pe.Text
}

// NewPkgConfigError builds a PkgConfigError from a literal message, capturing
// the current goroutine stack.
func NewPkgConfigError(msg string) *PkgConfigError {
	err := &PkgConfigError{
		Text:       msg,
		StackTrace: make([]byte, 65536),
	}

	n := runtime.Stack(err.StackTrace, false)
	err.StackTrace = err.StackTrace[:n]

	return err
}

// FmtPkgConfigError is the fmt.Sprintf-flavored counterpart of
// NewPkgConfigError; nearly every error site in the engine goes through this.
func FmtPkgConfigError(format string, args ...interface{}) *PkgConfigError {
	return NewPkgConfigError(fmt.Sprintf(format, args...))
}

// ChildPkgConfigError wraps a lower-level error (typically an I/O error
// surfaced unchanged per SPEC_FULL.md §7.4) in a PkgConfigError, preserving
// the original as Parent.
func ChildPkgConfigError(parent error) *PkgConfigError {
	for {
		pe, ok := parent.(*PkgConfigError)
		if !ok || pe == nil || pe.Parent == nil {
			break
		}
		parent = pe.Parent
	}

	pe := NewPkgConfigError(parent.Error())
	pe.Parent = parent
	return pe
}

// FmtChildPkgConfigError wraps parent with a newly formatted message while
// keeping parent reachable through the Parent field.
func FmtChildPkgConfigError(parent error, format string, args ...interface{}) *PkgConfigError {
	pe := ChildPkgConfigError(parent)
	pe.Text = fmt.Sprintf(format, args...)
	return pe
}
