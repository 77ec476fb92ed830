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

import "github.com/libpkgconf/pkgconf/util"

// TextLoader turns a file's contents into a rune stream with one character
// of pushback, the primitive LineReader is built on.
type TextLoader struct {
	runes      []rune
	pos        int
	pushedBack bool
	lastRune   rune
}

// NewTextLoaderFromString wraps already-loaded content; the resolver reads
// a .pc file through its FileSystem and hands the content here directly.
func NewTextLoaderFromString(content string) *TextLoader {
	return &TextLoader{runes: []rune(content)}
}

// GetChar returns the next character as a one-rune string, or "" at EOF.
func (tl *TextLoader) GetChar() string {
	if tl.pushedBack {
		tl.pushedBack = false
		return string(tl.lastRune)
	}
	if tl.pos >= len(tl.runes) {
		tl.lastRune = 0
		return ""
	}
	c := tl.runes[tl.pos]
	tl.pos++
	tl.lastRune = c
	return string(c)
}

// UngetChar pushes back a single character, which must be the string most
// recently returned by GetChar; only one character of pushback is kept.
func (tl *TextLoader) UngetChar(c string) error {
	if tl.pushedBack {
		return util.FmtPkgConfigError("cannot unget: a character is already pushed back")
	}
	if c == "" || []rune(c)[0] != tl.lastRune {
		return util.FmtPkgConfigError("cannot unget %q: does not match the last character read", c)
	}
	tl.pushedBack = true
	return nil
}
