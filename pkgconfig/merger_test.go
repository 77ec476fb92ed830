package pkgconfig

import (
	"reflect"
	"testing"
)

func TestMergeCflagsIncludeSortPutsPlainIBeforeSystemVariants(t *testing.T) {
	pkg := &Package{
		Key:          "cflags-i-other",
		PathPosition: 1,
		Cflags: []Flag{
			{Class: CflagsI, Args: []string{"-isystem", "isystem/option"}},
			{Class: CflagsI, Args: []string{"-idirafter", "idirafter/option"}},
			{Class: CflagsI, Args: []string{"-I  include/dir"}},
			{Class: CflagsOther, Args: []string{"--other"}},
		},
		RequiresPrivate: nil,
	}

	got := mergeFlags([]*Package{pkg}, queryCflags)
	want := []string{
		"--other",
		"-I  include/dir",
		"-isystem", "isystem/option",
		"-idirafter", "idirafter/option",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mergeFlags = %#v, want %#v", got, want)
	}
}

func TestMergeCflagsPathPositionGroupsByPackage(t *testing.T) {
	mod1 := &Package{
		Key:          "mod1",
		PathPosition: 1,
		Cflags: []Flag{
			{Class: CflagsOther, Args: []string{"--other1"}},
			{Class: CflagsOther, Args: []string{"--another1"}},
			{Class: CflagsI, Args: []string{"-Iinclude/d1"}},
			{Class: CflagsI, Args: []string{"-isystem", "s1"}},
		},
	}
	mod2 := &Package{
		Key:          "mod2",
		PathPosition: 2,
		Cflags: []Flag{
			{Class: CflagsOther, Args: []string{"--other2"}},
			{Class: CflagsOther, Args: []string{"--another2"}},
			{Class: CflagsI, Args: []string{"-Iinclude/d2"}},
			{Class: CflagsI, Args: []string{"-isystem", "s2"}},
		},
	}

	got := mergeFlags([]*Package{mod2, mod1}, queryCflags)
	want := []string{
		"--other2", "--another2", "--other1", "--another1",
		"-Iinclude/d1", "-isystem", "s1",
		"-Iinclude/d2", "-isystem", "s2",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mergeFlags = %#v, want %#v", got, want)
	}
}

func TestMergeStaticLibsClosureOrder(t *testing.T) {
	public := &Package{Key: "public", PathPosition: 1, Libs: []Flag{{Class: LibsL, Args: []string{"-L/lib/public"}}, {Class: LibsSmallL, Args: []string{"-lpublic"}}}}
	public.PrivateLibs = public.Libs
	private := &Package{Key: "private", PathPosition: 1, Libs: []Flag{{Class: LibsL, Args: []string{"-L/lib/private"}}, {Class: LibsSmallL, Args: []string{"-lprivate"}}}}
	private.PrivateLibs = private.Libs

	root := &Package{
		Key:          "req-pubpriv",
		PathPosition: 1,
		Libs:         []Flag{{Class: LibsL, Args: []string{"-L/lib/pubpriv"}}, {Class: LibsSmallL, Args: []string{"-lreq"}}},
	}
	root.PrivateLibs = root.Libs
	root.Requires = []*Package{public}
	root.RequiresPrivate = []*Package{private, public}

	got := mergeFlags([]*Package{root}, queryStaticLibs)
	want := []string{
		"-L/lib/pubpriv", "-L/lib/private", "-L/lib/public",
		"-lreq", "-lprivate", "-lpublic",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mergeFlags = %#v, want %#v", got, want)
	}
}

func TestMergeFlagsDedupConsecutiveDuplicates(t *testing.T) {
	a := &Package{Key: "a", PathPosition: 1, Libs: []Flag{{Class: LibsL, Args: []string{"-L/common"}}}}
	b := &Package{Key: "b", PathPosition: 1, Libs: []Flag{{Class: LibsL, Args: []string{"-L/common"}}}}

	got := mergeFlags([]*Package{a, b}, queryLibs)
	want := []string{"-L/common"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mergeFlags = %#v, want %#v (expected duplicate -L to be suppressed)", got, want)
	}
}
