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

const (
	syntheticPkgConfigKey     = "pkg-config"
	syntheticPkgConfigVersion = "0.29.2"
)

// PackageCache holds every Package loaded during one query, keyed by the
// name it was requested under (or, for an explicit .pc path, by that
// file's basename without ".pc"), plus the synthetic "pkg-config" package
// a .pc file may legitimately depend on.
type PackageCache struct {
	byKey map[string]*Package
}

func newPackageCache() *PackageCache {
	c := &PackageCache{byKey: map[string]*Package{}}
	c.byKey[syntheticPkgConfigKey] = &Package{
		Key:              syntheticPkgConfigKey,
		Name:             "pkg-config",
		Version:          syntheticPkgConfigVersion,
		Description:      "pkg-config is a system for managing compile/link flags for libraries",
		URL:              "http://pkg-config.freedesktop.org/",
		Vars:             map[string]string{},
		RequiredVersions: map[string]VersionPredicate{},
	}
	return c
}

func (c *PackageCache) get(key string) (*Package, bool) {
	p, ok := c.byKey[key]
	return p, ok
}

func (c *PackageCache) put(key string, p *Package) {
	c.byKey[key] = p
}

// all returns every cached package in indeterminate order.
func (c *PackageCache) all() []*Package {
	out := make([]*Package, 0, len(c.byKey))
	for _, p := range c.byKey {
		out = append(out, p)
	}
	return out
}
