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
	"path/filepath"
	"regexp"
	"strings"

	"github.com/libpkgconf/pkgconf/util"
)

var fieldLineRe = regexp.MustCompile(`^([A-Za-z0-9_.]+)\s*(:|=)\s*(.*)$`)

// ParsePackage parses the text of a .pc file into a Package. It resolves
// variable substitution and argument splitting, but leaves Requires,
// Requires.private and Conflicts as unresolved VersionPredicate lists: the
// resolver turns those into Package pointers.
func ParsePackage(pcFile string, content string, pathPosition int, ignorePrivateRequires bool) (*Package, error) {
	pkg := &Package{
		PCFile:           pcFile,
		PathPosition:     pathPosition,
		Vars:             map[string]string{},
		RequiredVersions: map[string]VersionPredicate{},
		Uninstalled:      strings.Contains(pcFile, "uninstalled.pc"),
	}
	pkg.Vars["pcfiledir"] = filepath.Dir(pcFile)

	lr := NewLineReader(NewTextLoaderFromString(content))

	var sawName, sawVersion, sawDescription, sawURL, sawLibs, sawLibsPrivate bool
	var conflictsCount int
	var conflictsFirstEmpty bool

	for {
		line, ok, err := lr.ReadLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		m := fieldLineRe.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		tag, sep, rawRest := m[1], m[2], strings.TrimSpace(m[3])

		if sep == "=" {
			if _, exists := pkg.Vars[tag]; exists {
				return nil, util.FmtPkgConfigError("Duplicate definition of variable '%s' in '%s'", tag, pcFile)
			}
			val, err := substitute(rawRest, pkg.Vars, pcFile)
			if err != nil {
				return nil, err
			}
			pkg.Vars[tag] = val
			continue
		}

		switch tag {
		case "Name":
			if sawName {
				return nil, util.FmtPkgConfigError("Name field occurs twice in '%s'", pcFile)
			}
			sawName = true
			v, err := substitute(rawRest, pkg.Vars, pcFile)
			if err != nil {
				return nil, err
			}
			pkg.Name = v

		case "Version":
			if sawVersion {
				return nil, util.FmtPkgConfigError("Version field occurs twice in '%s'", pcFile)
			}
			sawVersion = true
			v, err := substitute(rawRest, pkg.Vars, pcFile)
			if err != nil {
				return nil, err
			}
			pkg.Version = v

		case "Description":
			if sawDescription {
				return nil, util.FmtPkgConfigError("Description field occurs twice in '%s'", pcFile)
			}
			sawDescription = true
			v, err := substitute(rawRest, pkg.Vars, pcFile)
			if err != nil {
				return nil, err
			}
			pkg.Description = v

		case "URL":
			if sawURL {
				return nil, util.FmtPkgConfigError("URL field occurs multiple times in '%s'", pcFile)
			}
			sawURL = true
			v, err := substitute(rawRest, pkg.Vars, pcFile)
			if err != nil {
				return nil, err
			}
			pkg.URL = v

		case "Cflags", "CFlags":
			if len(pkg.Cflags) > 0 {
				return nil, util.FmtPkgConfigError("Cflags field occurs more than once in '%s'", pcFile)
			}
			v, err := substitute(rawRest, pkg.Vars, pcFile)
			if err != nil {
				return nil, err
			}
			toks, err := splitArgsForField("Cflags", v, pcFile)
			if err != nil {
				return nil, err
			}
			pkg.Cflags = classifyCflags(toks)

		case "Libs":
			if sawLibs {
				return nil, util.FmtPkgConfigError("Libs field occurs more than once in '%s'", pcFile)
			}
			sawLibs = true
			v, err := substitute(rawRest, pkg.Vars, pcFile)
			if err != nil {
				return nil, err
			}
			toks, err := splitArgsForField("Libs", v, pcFile)
			if err != nil {
				return nil, err
			}
			flags := classifyLibs(toks)
			pkg.Libs = flags
			pkg.PrivateLibs = append(pkg.PrivateLibs, flags...)

		case "Libs.private":
			if sawLibsPrivate {
				return nil, util.FmtPkgConfigError("Libs.private field occurs more than once in '%s'", pcFile)
			}
			sawLibsPrivate = true
			v, err := substitute(rawRest, pkg.Vars, pcFile)
			if err != nil {
				return nil, err
			}
			toks, err := splitArgsForField("Libs.private", v, pcFile)
			if err != nil {
				return nil, err
			}
			pkg.PrivateLibs = append(pkg.PrivateLibs, classifyLibs(toks)...)

		case "Requires":
			v, err := substitute(rawRest, pkg.Vars, pcFile)
			if err != nil {
				return nil, err
			}
			preds, err := ParseModuleList(v, pcFile)
			if err != nil {
				return nil, err
			}
			pkg.RequiresEntries = preds

		case "Requires.private":
			if ignorePrivateRequires {
				continue
			}
			v, err := substitute(rawRest, pkg.Vars, pcFile)
			if err != nil {
				return nil, err
			}
			preds, err := ParseModuleList(v, pcFile)
			if err != nil {
				return nil, err
			}
			pkg.RequiresPrivateEntries = preds

		case "Conflicts":
			v, err := substitute(rawRest, pkg.Vars, pcFile)
			if err != nil {
				return nil, err
			}
			preds, err := ParseModuleList(v, pcFile)
			if err != nil {
				return nil, err
			}

			if conflictsCount == 0 {
				pkg.Conflicts = preds
				conflictsFirstEmpty = len(preds) == 0
				conflictsCount = 1
				continue
			}

			// A second occurrence always fails unless the first was
			// non-empty and this one is empty: the reference tool only
			// tolerates a later empty Conflicts:, never an earlier one.
			if conflictsFirstEmpty || len(preds) > 0 {
				return nil, util.FmtPkgConfigError("Conflicts field occurs multiple times in '%s'", pcFile)
			}
			conflictsCount++
		}
	}

	return pkg, nil
}

// splitArgsForField runs the argument splitter on a field's substituted
// value. A blank value legitimately means "no flags", not a parse error,
// so it is short-circuited before reaching Split.
func splitArgsForField(field, value, pcFile string) ([]string, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	toks, err := Split(value)
	if err != nil {
		return nil, util.FmtPkgConfigError("Couldn't parse %s field into an argument vector: %s", field, err.Error())
	}
	return toks, nil
}

// substitute expands $$ to a literal $ and ${name} to the value of a
// variable already defined earlier in the same file. It does not
// re-substitute inside the expanded value.
func substitute(s string, vars map[string]string, pcFile string) (string, error) {
	var out strings.Builder
	r := []rune(s)
	i := 0

	for i < len(r) {
		c := r[i]
		if c == '$' && i+1 < len(r) {
			switch r[i+1] {
			case '$':
				out.WriteRune('$')
				i += 2
				continue
			case '{':
				end := -1
				for k := i + 2; k < len(r); k++ {
					if r[k] == '}' {
						end = k
						break
					}
				}
				if end == -1 {
					out.WriteRune(c)
					i++
					continue
				}
				name := string(r[i+2 : end])
				val, ok := vars[name]
				if !ok {
					return "", util.FmtPkgConfigError("Variable '%s' not defined in '%s'", name, pcFile)
				}
				out.WriteString(val)
				i = end + 1
				continue
			}
		}
		out.WriteRune(c)
		i++
	}

	return out.String(), nil
}
