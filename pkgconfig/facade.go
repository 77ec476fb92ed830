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

// Result is the outcome of a Facade query: the flattened, merged token
// sequence, and every .pc file that was read to produce it.
type Result struct {
	Flags []string
	Files []string
}

// Facade is the top-level entry point: given a Config describing where to
// look, it answers cflags/libs/static-libs queries for a list of package
// names (each optionally carrying a version constraint).
type Facade struct {
	cfg Config
	fs  FileSystem
}

// NewFacade builds a Facade backed by the real filesystem.
func NewFacade(cfg Config) *Facade {
	return &Facade{cfg: cfg, fs: DefaultFileSystem}
}

// NewFacadeWithFileSystem builds a Facade backed by an arbitrary FileSystem,
// letting tests and alternative hosts avoid touching disk.
func NewFacadeWithFileSystem(cfg Config, fs FileSystem) *Facade {
	return &Facade{cfg: cfg, fs: fs}
}

// Cflags resolves names and returns the compiler flags needed to build
// against them, including flags contributed by private dependencies.
func (f *Facade) Cflags(names []string) (*Result, error) {
	return f.query(names, queryCflags)
}

// Libs resolves names and returns the flags needed to dynamically link
// against them; private-only dependencies do not contribute flags here.
func (f *Facade) Libs(names []string) (*Result, error) {
	return f.query(names, queryLibs)
}

// StaticLibs resolves names and returns the flags needed to statically
// link against them, including every private dependency's Libs.private.
func (f *Facade) StaticLibs(names []string) (*Result, error) {
	return f.query(names, queryStaticLibs)
}

// ModVersion resolves each name (ignoring any version predicate it carries)
// and returns its installed version, in request order. Unlike Cflags/Libs/
// StaticLibs this never touches the merger: it is a direct resolver lookup.
func (f *Facade) ModVersion(names []string) ([]string, error) {
	r := newResolver(f.cfg, f.fs, false)

	versions := make([]string, 0, len(names))
	for _, expr := range names {
		pred, err := ParseUserArg(expr)
		if err != nil {
			return nil, err
		}

		pkg, err := r.Load(pred.Name, true)
		if err != nil {
			return nil, err
		}

		versions = append(versions, pkg.Version)
	}

	return versions, nil
}

func (f *Facade) query(names []string, kind queryKind) (*Result, error) {
	// A Libs query drops Requires.private at parse time (spec §4.6): a
	// private-only dependency must never be loaded, version-checked, or
	// conflict-checked for this query, not merely excluded from the merged
	// flag output.
	r := newResolver(f.cfg, f.fs, kind == queryLibs)

	roots := make([]*Package, 0, len(names))
	for _, expr := range names {
		pred, err := ParseUserArg(expr)
		if err != nil {
			return nil, err
		}

		pkg, err := r.Load(pred.Name, true)
		if err != nil {
			return nil, err
		}

		if !pred.Test(pkg.Version) {
			return nil, util.FmtPkgConfigError("Requested '%s' but version of %s is %s", pred.String(), pkg.Key, pkg.Version)
		}

		roots = append(roots, pkg)
	}

	tokens := mergeFlags(roots, kind)
	files := collectFiles(r.cache)

	return &Result{Flags: tokens, Files: files}, nil
}

func collectFiles(cache *PackageCache) []string {
	seen := map[string]bool{}
	var files []string
	for _, p := range cache.all() {
		if p.PCFile == "" || seen[p.PCFile] {
			continue
		}
		seen[p.PCFile] = true
		files = append(files, p.PCFile)
	}
	return files
}
