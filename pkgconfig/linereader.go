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

package pkgconfig

import "strings"

type lineReaderState int

const (
	lrDefault lineReaderState = iota
	lrComment
	lrQuoted
)

// LineReader splits a TextLoader's character stream into logical .pc lines:
// '#' starts a comment that runs to the next newline, and a trailing
// backslash joins the current line with the next one. CRLF handling is
// intentionally asymmetric between the two states: unquoted mode only acts
// on '\n' (swallowing a trailing '\r'), so a lone '\r' there is just text,
// while quoted (post-backslash) mode treats either '\r' or '\n' as the line
// terminator and swallows whichever companion follows.
type LineReader struct {
	tl *TextLoader
}

// NewLineReader wraps tl.
func NewLineReader(tl *TextLoader) *LineReader {
	return &LineReader{tl: tl}
}

// ReadLine returns the next logical line with comments stripped and
// backslash-newline continuations joined. ok is false once there is
// nothing left to read.
func (lr *LineReader) ReadLine() (string, bool, error) {
	var buf strings.Builder
	state := lrDefault
	sawAny := false

	for {
		c := lr.tl.GetChar()
		if c == "" {
			if state == lrQuoted {
				buf.WriteByte('\\')
			}
			if !sawAny {
				return "", false, nil
			}
			return buf.String(), true, nil
		}
		sawAny = true

		switch state {
		case lrDefault:
			switch c {
			case "#":
				state = lrComment
			case "\\":
				state = lrQuoted
			case "\n":
				lr.swallowCompanion("\r")
				return buf.String(), true, nil
			default:
				buf.WriteString(c)
			}
		case lrComment:
			if c == "\n" {
				return buf.String(), true, nil
			}
		case lrQuoted:
			switch c {
			case "#":
				buf.WriteString("#")
				state = lrDefault
			case "\r":
				lr.swallowCompanion("\n")
				state = lrDefault
			case "\n":
				lr.swallowCompanion("\r")
				state = lrDefault
			default:
				buf.WriteString("\\")
				buf.WriteString(c)
				state = lrDefault
			}
		}
	}
}

// swallowCompanion consumes the next character if it equals companion,
// pushing it back otherwise.
func (lr *LineReader) swallowCompanion(companion string) {
	c := lr.tl.GetChar()
	if c == "" {
		return
	}
	if c != companion {
		lr.tl.UngetChar(c)
	}
}
