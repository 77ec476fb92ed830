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
	"sort"
	"strings"
)

type queryKind int

const (
	queryCflags queryKind = iota
	queryLibs
	queryStaticLibs
)

// mergeFlags expands the dependency DAG reachable from roots and produces
// the final flattened token sequence for the given query kind.
func mergeFlags(roots []*Package, kind queryKind) []string {
	includePrivate := kind == queryCflags || kind == queryStaticLibs
	expanded := expandPackages(roots, includePrivate)

	switch kind {
	case queryCflags:
		return mergeCflags(expanded)
	case queryLibs:
		return mergeLibsLike(expanded, func(p *Package) []Flag { return p.Libs })
	case queryStaticLibs:
		return mergeLibsLike(expanded, func(p *Package) []Flag { return p.PrivateLibs })
	}
	return nil
}

// expandPackages performs a post-order walk over roots (visited in reverse
// request order, dependencies visited in reverse declaration order),
// prepending each newly-seen package to the result. That combination is
// what makes an earlier root's own flags precede a later root's, while a
// package keeps appearing before the dependencies it pulled in once they
// eventually surface elsewhere in the list.
func expandPackages(roots []*Package, includePrivate bool) []*Package {
	visited := map[string]bool{}
	var out []*Package

	var visit func(p *Package)
	visit = func(p *Package) {
		deps := p.Requires
		if includePrivate {
			deps = p.RequiresPrivate
		}
		for i := len(deps) - 1; i >= 0; i-- {
			visit(deps[i])
		}
		if !visited[p.Key] {
			visited[p.Key] = true
			out = append([]*Package{p}, out...)
		}
	}

	for i := len(roots) - 1; i >= 0; i-- {
		visit(roots[i])
	}

	return out
}

type taggedFlag struct {
	flag         Flag
	pathPosition int
	subrank      int
}

// classMatches reports whether c is one of classes.
func classMatches(c FlagClass, classes []FlagClass) bool {
	for _, want := range classes {
		if c == want {
			return true
		}
	}
	return false
}

// collectClassFlags walks expanded in order, keeping only flags in one of
// classes and tagging each with its owning package's search-path position
// and a within-class tie-break rank.
func collectClassFlags(expanded []*Package, source func(*Package) []Flag, classes ...FlagClass) []taggedFlag {
	var tagged []taggedFlag
	for _, p := range expanded {
		for _, fl := range source(p) {
			if !classMatches(fl.Class, classes) {
				continue
			}
			tagged = append(tagged, taggedFlag{flag: fl, pathPosition: p.PathPosition, subrank: subrankFor(fl)})
		}
	}
	return tagged
}

// subrankFor puts a plain -I ahead of a same-position -isystem/-idirafter,
// matching the reference tool's fixture for mixed -I/-isystem ordering:
// a plain -I is rank 0 and every other flag is rank 1, so flags of equal
// rank keep their natural expansion order.
func subrankFor(fl Flag) int {
	if fl.Class == CflagsI && len(fl.Args) > 0 && strings.HasPrefix(fl.Args[0], "-I") {
		return 0
	}
	return 1
}

func sortedTokens(tagged []taggedFlag) []string {
	sort.SliceStable(tagged, func(i, j int) bool {
		if tagged[i].pathPosition != tagged[j].pathPosition {
			return tagged[i].pathPosition < tagged[j].pathPosition
		}
		return tagged[i].subrank < tagged[j].subrank
	})
	return dedupAndFlatten(tagged)
}

func unsortedTokens(tagged []taggedFlag) []string {
	return dedupAndFlatten(tagged)
}

// dedupAndFlatten drops a flag equal to the one immediately before it, then
// concatenates every surviving flag's args into the final token sequence.
func dedupAndFlatten(tagged []taggedFlag) []string {
	var out []string
	var prev *Flag
	for i := range tagged {
		f := tagged[i].flag
		if prev != nil && prev.Equal(f) {
			continue
		}
		fCopy := f
		prev = &fCopy
		out = append(out, f.Args...)
	}
	return out
}

func mergeCflags(expanded []*Package) []string {
	other := collectClassFlags(expanded, func(p *Package) []Flag { return p.Cflags }, CflagsOther)
	includes := collectClassFlags(expanded, func(p *Package) []Flag { return p.Cflags }, CflagsI)

	var tokens []string
	tokens = append(tokens, unsortedTokens(other)...)
	tokens = append(tokens, sortedTokens(includes)...)
	return tokens
}

func mergeLibsLike(expanded []*Package, source func(*Package) []Flag) []string {
	lFlags := collectClassFlags(expanded, source, LibsL)
	rest := collectClassFlags(expanded, source, LibsOther, LibsSmallL)

	var tokens []string
	tokens = append(tokens, sortedTokens(lFlags)...)
	tokens = append(tokens, unsortedTokens(rest)...)
	return tokens
}
