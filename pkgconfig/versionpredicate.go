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

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/libpkgconf/pkgconf/util"
)

// Op is a version comparison operator as it appears in a Requires/Conflicts
// entry or a user-supplied "name op version" query argument.
type Op int

const (
	OpAny Op = iota
	OpEQ
	OpNE
	OpLT
	OpLE
	OpGT
	OpGE
)

func (o Op) String() string {
	switch o {
	case OpEQ:
		return "="
	case OpNE:
		return "!="
	case OpLT:
		return "<"
	case OpLE:
		return "<="
	case OpGT:
		return ">"
	case OpGE:
		return ">="
	default:
		return ""
	}
}

func parseOp(s string) (Op, error) {
	switch s {
	case "=":
		return OpEQ, nil
	case "!=":
		return OpNE, nil
	case "<":
		return OpLT, nil
	case "<=":
		return OpLE, nil
	case ">":
		return OpGT, nil
	case ">=":
		return OpGE, nil
	}
	return OpAny, fmt.Errorf("unknown version comparison operator %q", s)
}

// VersionPredicate is a package name with an optional version constraint,
// as found in a Requires/Conflicts field or typed by a user on the CLI.
type VersionPredicate struct {
	Name    string
	Op      Op
	Version string
}

// Test reports whether candidate satisfies the predicate.
func (p VersionPredicate) Test(candidate string) bool {
	if p.Op == OpAny {
		return true
	}
	c := CompareVersions(candidate, p.Version)
	switch p.Op {
	case OpEQ:
		return c == 0
	case OpNE:
		return c != 0
	case OpLT:
		return c < 0
	case OpLE:
		return c <= 0
	case OpGT:
		return c > 0
	case OpGE:
		return c >= 0
	}
	return false
}

// String renders the predicate the way it reads in a .pc file or an error
// message: "name" when there's no constraint, "name op version" otherwise.
func (p VersionPredicate) String() string {
	if p.Op == OpAny {
		return p.Name
	}
	return fmt.Sprintf("%s %s %s", p.Name, p.Op.String(), p.Version)
}

// ParseUserArg parses a facade query argument such as "foo" or
// "foo >= 1.2.3".
func ParseUserArg(s string) (VersionPredicate, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		return VersionPredicate{Name: fields[0], Op: OpAny}, nil
	case 3:
		op, err := parseOp(fields[1])
		if err != nil {
			return VersionPredicate{}, util.FmtPkgConfigError("Invalid package query %q: %s", s, err.Error())
		}
		return VersionPredicate{Name: fields[0], Op: op, Version: fields[2]}, nil
	default:
		return VersionPredicate{}, util.FmtPkgConfigError("Invalid package query %q", s)
	}
}

// moduleListState is one state of the character-class scanner ParseModuleList
// runs over a Requires/Requires.private/Conflicts field value.
type moduleListState int

const (
	mlOutside moduleListState = iota
	mlInName
	mlBeforeOp
	mlInOp
	mlAfterOp
	mlInVersion
)

func isModuleListSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

func isVersionOpChar(r rune) bool {
	switch r {
	case '<', '>', '=', '!':
		return true
	default:
		return false
	}
}

// ParseModuleList parses a Requires/Requires.private/Conflicts field value
// into its component predicates. Entries are separated by commas and/or
// whitespace; a name may be followed by an operator and version to form a
// single constrained entry, with or without whitespace between name and
// operator ("foo >= 1.0" and "foo>=1.0" both parse the same way). Walking
// the string through an explicit state machine, rather than splitting on
// whitespace first, is what makes the no-space form parse correctly.
func ParseModuleList(s string, pcFile string) ([]VersionPredicate, error) {
	cur := NewCursor([]rune(s))
	state := mlOutside

	var preds []VersionPredicate
	var name, opTok, version strings.Builder

	finish := func() error {
		if name.Len() == 0 {
			return util.FmtPkgConfigError("Empty package name in Requires or Conflicts in file '%s'", pcFile)
		}
		pred := VersionPredicate{Name: name.String(), Op: OpAny}
		if opTok.Len() > 0 {
			op, err := parseOp(opTok.String())
			if err != nil {
				return util.FmtPkgConfigError("Unknown version comparison operator '%s' after package name '%s' in file '%s'", opTok.String(), name.String(), pcFile)
			}
			if version.Len() == 0 {
				return util.FmtPkgConfigError("Comparison operator but no version after package name '%s' in file '%s'", name.String(), pcFile)
			}
			pred.Op = op
			pred.Version = version.String()
		}
		preds = append(preds, pred)
		name.Reset()
		opTok.Reset()
		version.Reset()
		return nil
	}

	for !cur.AtEnd() {
		c := cur.Peek(0)
		switch state {
		case mlOutside:
			switch {
			case isModuleListSeparator(c):
				cur.Advance()
			case isVersionOpChar(c):
				return nil, util.FmtPkgConfigError("Empty package name in Requires or Conflicts in file '%s'", pcFile)
			default:
				state = mlInName
			}

		case mlInName:
			switch {
			case isVersionOpChar(c):
				state = mlInOp
			case c == ',':
				if err := finish(); err != nil {
					return nil, err
				}
				state = mlOutside
				cur.Advance()
			case unicode.IsSpace(c):
				state = mlBeforeOp
				cur.Advance()
			default:
				name.WriteRune(c)
				cur.Advance()
			}

		case mlBeforeOp:
			switch {
			case unicode.IsSpace(c):
				cur.Advance()
			case isVersionOpChar(c):
				state = mlInOp
			case c == ',':
				if err := finish(); err != nil {
					return nil, err
				}
				state = mlOutside
				cur.Advance()
			default:
				// No operator after all: the name ended at the whitespace
				// we just skipped, and this character starts the next entry.
				if err := finish(); err != nil {
					return nil, err
				}
				state = mlOutside
			}

		case mlInOp:
			if isVersionOpChar(c) {
				opTok.WriteRune(c)
				cur.Advance()
			} else {
				state = mlAfterOp
			}

		case mlAfterOp:
			switch {
			case unicode.IsSpace(c):
				cur.Advance()
			case c == ',':
				return nil, util.FmtPkgConfigError("Comparison operator but no version after package name '%s' in file '%s'", name.String(), pcFile)
			default:
				state = mlInVersion
			}

		case mlInVersion:
			if isModuleListSeparator(c) {
				if err := finish(); err != nil {
					return nil, err
				}
				state = mlOutside
				cur.Advance()
			} else {
				version.WriteRune(c)
				cur.Advance()
			}
		}
	}

	switch state {
	case mlInName, mlBeforeOp, mlInVersion:
		if err := finish(); err != nil {
			return nil, err
		}
	case mlInOp, mlAfterOp:
		return nil, util.FmtPkgConfigError("Comparison operator but no version after package name '%s' in file '%s'", name.String(), pcFile)
	}

	return preds, nil
}
