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

// Package is one parsed and (fully or partially) resolved .pc file.
type Package struct {
	Key          string // basename used to look it up, e.g. "foo" for foo.pc
	PCFile       string // absolute path, or "" for the synthetic pkg-config entry
	PathPosition int    // 1-based index into the search path that produced it
	Uninstalled  bool

	Vars map[string]string

	Name        string
	Version     string
	Description string
	URL         string

	Cflags      []Flag
	Libs        []Flag // public Libs only
	PrivateLibs []Flag // Libs followed by Libs.private, in that order

	RequiresEntries        []VersionPredicate
	RequiresPrivateEntries []VersionPredicate
	Conflicts              []VersionPredicate

	// Requires holds the resolved public dependency packages, in Requires
	// order. RequiresPrivate holds Requires.private's resolved packages
	// followed by Requires's (the union used for compiling and static
	// linking, and for the transitive Conflicts check).
	Requires        []*Package
	RequiresPrivate []*Package

	// RequiredVersions maps a dependency's Key back to the predicate that
	// pulled it in, for the post-load version verification pass.
	RequiredVersions map[string]VersionPredicate
}
