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
	"strings"

	"github.com/libpkgconf/pkgconf/util"
)

// notFoundMarker is the exact suffix FmtPkgConfigError uses for "no such
// package on the search path", so resolveRequires can tell a missing
// dependency apart from a dependency that loaded but failed verification
// for some other reason (which should propagate unchanged).
const notFoundMarker = "was not found in the PkgConfig searchPath"

// Resolver loads and verifies .pc files for a single query, caching every
// package it touches by the name it was requested under (an explicit .pc
// path is cached under its basename without ".pc").
type Resolver struct {
	cfg   Config
	fs    FileSystem
	cache *PackageCache

	// ignorePrivateRequires mirrors spec §4.6's ignorePrivateReqs mode: when
	// set (a Libs query), every package this resolver loads has its
	// Requires.private entries dropped at parse time, so a private
	// dependency is never loaded, version-checked, or conflict-checked for
	// that query, not merely excluded from the merged flag output.
	ignorePrivateRequires bool
}

func newResolver(cfg Config, fs FileSystem, ignorePrivateRequires bool) *Resolver {
	return &Resolver{cfg: cfg, fs: fs, cache: newPackageCache(), ignorePrivateRequires: ignorePrivateRequires}
}

// Load finds, parses, resolves and verifies the package named name
// (or, if name ends in ".pc", the file at that path), returning an error
// if mustExist and nothing is found.
func (r *Resolver) Load(name string, mustExist bool) (*Package, error) {
	return r.load(name, mustExist, true)
}

func (r *Resolver) load(name string, mustExist bool, allowUninstalledPreference bool) (*Package, error) {
	if p, ok := r.cache.get(name); ok {
		return p, nil
	}

	var path string
	var pathPosition int
	explicit := strings.HasSuffix(name, ".pc")

	if explicit {
		path = name
	} else {
		if allowUninstalledPreference && !r.cfg.DisableUninstalled && !strings.HasSuffix(name, "-uninstalled") {
			p, err := r.load(name+"-uninstalled", false, false)
			if err != nil {
				return nil, err
			}
			if p != nil {
				r.cache.put(name, p)
				return p, nil
			}
		}

		for idx, dir := range r.cfg.SearchPaths {
			candidate := filepath.Join(dir, name+".pc")
			exists, isRegular, err := r.fs.Stat(candidate)
			if err != nil {
				return nil, util.ChildPkgConfigError(err)
			}
			if exists && isRegular {
				path = candidate
				pathPosition = idx + 1
				break
			}
		}
	}

	if path == "" {
		if mustExist {
			return nil, util.FmtPkgConfigError("Package \"%s\" %s", name, notFoundMarker)
		}
		return nil, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, util.ChildPkgConfigError(err)
	}
	path = abs

	content, err := r.fs.ReadFile(path)
	if err != nil {
		return nil, util.ChildPkgConfigError(err)
	}

	key := name
	if explicit {
		key = strings.TrimSuffix(filepath.Base(path), ".pc")
	}

	pkg, err := ParsePackage(path, content, pathPosition, r.ignorePrivateRequires)
	if err != nil {
		return nil, err
	}
	pkg.Key = key

	// Cache under key before recursing so a dependency cycle resolves to
	// this in-progress instance instead of re-parsing, and so that the
	// last name this basename was loaded under wins in the cache.
	r.cache.put(key, pkg)

	if err := r.resolveRequires(pkg); err != nil {
		return nil, err
	}

	pkg.RequiresPrivate = append(pkg.RequiresPrivate, pkg.Requires...)

	if err := r.verify(pkg); err != nil {
		return nil, err
	}

	return pkg, nil
}

func (r *Resolver) resolveRequires(pkg *Package) error {
	for _, pred := range pkg.RequiresEntries {
		dep, err := r.resolveOne(pred, pkg.Key)
		if err != nil {
			return err
		}
		pkg.Requires = append(pkg.Requires, dep)
		pkg.RequiredVersions[dep.Key] = pred
	}
	for _, pred := range pkg.RequiresPrivateEntries {
		dep, err := r.resolveOne(pred, pkg.Key)
		if err != nil {
			return err
		}
		pkg.RequiresPrivate = append(pkg.RequiresPrivate, dep)
		pkg.RequiredVersions[dep.Key] = pred
	}
	return nil
}

// resolveOne loads a Requires/Requires.private dependency, rewriting a
// plain "not found" failure into the "required by" message. A deeper
// failure (a malformed dependency, a transitive conflict, ...) propagates
// unchanged instead of being masked as "not found".
func (r *Resolver) resolveOne(pred VersionPredicate, requirerKey string) (*Package, error) {
	dep, err := r.load(pred.Name, true, true)
	if err != nil {
		if pe, ok := err.(*util.PkgConfigError); ok && strings.Contains(pe.Text, notFoundMarker) {
			return nil, util.FmtPkgConfigError("Package '%s', required by '%s', not found", pred.Name, requirerKey)
		}
		return nil, err
	}
	return dep, nil
}

func (r *Resolver) verify(pkg *Package) error {
	if pkg.Name == "" {
		return util.FmtPkgConfigError("Package '%s' has no Name: field", pkg.Key)
	}
	if pkg.Version == "" {
		return util.FmtPkgConfigError("Package '%s' has no Version: field", pkg.Key)
	}
	if pkg.Description == "" {
		return util.FmtPkgConfigError("Package '%s' has no Description: field", pkg.Key)
	}

	for key, pred := range pkg.RequiredVersions {
		dep := findDepByKey(pkg, key)
		if dep == nil || pred.Test(dep.Version) {
			continue
		}
		msg := util.FmtPkgConfigError("Package '%s' requires '%s' but version of %s is %s", pkg.Key, pred.String(), dep.Key, dep.Version)
		if dep.URL != "" {
			msg.Text += "\nYou may find new versions of " + dep.Key + " at " + dep.URL
		}
		return msg
	}

	if len(pkg.Conflicts) == 0 {
		return nil
	}

	for _, other := range transitiveClosure(pkg) {
		for _, pred := range pkg.Conflicts {
			if pred.Name == other.Key && pred.Test(other.Version) {
				return util.FmtPkgConfigError(
					"Version '%s' of %s creates a conflict. (%s conflicts with %s '%s')",
					other.Version, other.Key, pred.String(), pkg.Key, pkg.Version)
			}
		}
	}

	return nil
}

func findDepByKey(pkg *Package, key string) *Package {
	for _, d := range pkg.RequiresPrivate {
		if d.Key == key {
			return d
		}
	}
	for _, d := range pkg.Requires {
		if d.Key == key {
			return d
		}
	}
	return nil
}

// transitiveClosure walks root's RequiresPrivate graph (which, by
// construction, already holds the union of public and private requires at
// every level) and returns every package reachable from it, deduplicated
// by key.
func transitiveClosure(root *Package) []*Package {
	visited := map[string]bool{}
	var order []*Package

	var visit func(p *Package)
	visit = func(p *Package) {
		for _, d := range p.RequiresPrivate {
			if visited[d.Key] {
				continue
			}
			visited[d.Key] = true
			order = append(order, d)
			visit(d)
		}
	}
	visit(root)

	return order
}
