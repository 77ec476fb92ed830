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

// FlagClass groups a Flag for the purposes of flag merging: which pass it
// belongs to, and whether that pass sorts by search-path position.
type FlagClass int

const (
	CflagsOther FlagClass = iota
	CflagsI
	LibsL
	LibsSmallL
	LibsOther
)

// Flag is one classified unit from a Cflags/Libs/Libs.private field. Some
// flags (-isystem, -idirafter, -framework) consume the token that follows
// them, so Args may hold one or two raw tokens.
type Flag struct {
	Class FlagClass
	Args  []string
}

// Equal reports whether two flags carry the same class and argument
// tokens, used to suppress a flag that duplicates the one emitted right
// before it.
func (f Flag) Equal(other Flag) bool {
	if f.Class != other.Class || len(f.Args) != len(other.Args) {
		return false
	}
	for i := range f.Args {
		if f.Args[i] != other.Args[i] {
			return false
		}
	}
	return true
}

// classifyCflags walks a Cflags/CFlags argument vector, grouping -I
// (including -isystem/-idirafter, which take the following token as part
// of the same flag) separately from everything else.
func classifyCflags(tokens []string) []Flag {
	var out []Flag
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch {
		case t == "-isystem" || t == "-idirafter":
			if i+1 < len(tokens) {
				out = append(out, Flag{Class: CflagsI, Args: []string{t, tokens[i+1]}})
				i++
			} else {
				out = append(out, Flag{Class: CflagsOther, Args: []string{t}})
			}
		case strings.HasPrefix(t, "-I"):
			out = append(out, Flag{Class: CflagsI, Args: []string{t}})
		default:
			out = append(out, Flag{Class: CflagsOther, Args: []string{t}})
		}
	}
	return out
}

// classifyLibs walks a Libs/Libs.private argument vector, separating -L
// (search path) from -l (library name, "small l") from everything else
// (including -framework, which consumes its following token).
func classifyLibs(tokens []string) []Flag {
	var out []Flag
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch {
		case t == "-framework" || t == "-Wl,-framework":
			if i+1 < len(tokens) {
				out = append(out, Flag{Class: LibsOther, Args: []string{t, tokens[i+1]}})
				i++
			} else {
				out = append(out, Flag{Class: LibsOther, Args: []string{t}})
			}
		case strings.HasPrefix(t, "-L"):
			out = append(out, Flag{Class: LibsL, Args: []string{t}})
		case strings.HasPrefix(t, "-l") && !strings.HasPrefix(t, "-lib:"):
			out = append(out, Flag{Class: LibsSmallL, Args: []string{t}})
		default:
			out = append(out, Flag{Class: LibsOther, Args: []string{t}})
		}
	}
	return out
}
