package pkgconfig

import (
	"reflect"
	"testing"
)

func TestClassifyCflags(t *testing.T) {
	got := classifyCflags([]string{"-Iinclude", "-isystem", "sys/inc", "-idirafter", "after/inc", "-DFOO"})
	want := []Flag{
		{Class: CflagsI, Args: []string{"-Iinclude"}},
		{Class: CflagsI, Args: []string{"-isystem", "sys/inc"}},
		{Class: CflagsI, Args: []string{"-idirafter", "after/inc"}},
		{Class: CflagsOther, Args: []string{"-DFOO"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("classifyCflags = %#v, want %#v", got, want)
	}
}

func TestClassifyCflagsDanglingIsystem(t *testing.T) {
	got := classifyCflags([]string{"-isystem"})
	want := []Flag{{Class: CflagsOther, Args: []string{"-isystem"}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("classifyCflags = %#v, want %#v", got, want)
	}
}

func TestClassifyLibs(t *testing.T) {
	got := classifyLibs([]string{"-L/lib", "-lfoo", "-framework", "CoreFoundation", "-Wl,-rpath"})
	want := []Flag{
		{Class: LibsL, Args: []string{"-L/lib"}},
		{Class: LibsSmallL, Args: []string{"-lfoo"}},
		{Class: LibsOther, Args: []string{"-framework", "CoreFoundation"}},
		{Class: LibsOther, Args: []string{"-Wl,-rpath"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("classifyLibs = %#v, want %#v", got, want)
	}
}

func TestClassifyLibsExcludesLibColonFromSmallL(t *testing.T) {
	got := classifyLibs([]string{"-lfoo", "-lib:foo.lib"})
	want := []Flag{
		{Class: LibsSmallL, Args: []string{"-lfoo"}},
		{Class: LibsOther, Args: []string{"-lib:foo.lib"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("classifyLibs = %#v, want %#v", got, want)
	}
}

func TestFlagEqual(t *testing.T) {
	a := Flag{Class: CflagsI, Args: []string{"-Iinclude"}}
	b := Flag{Class: CflagsI, Args: []string{"-Iinclude"}}
	c := Flag{Class: CflagsI, Args: []string{"-Iother"}}
	if !a.Equal(b) {
		t.Errorf("expected equal flags to compare equal")
	}
	if a.Equal(c) {
		t.Errorf("expected differing flags to compare unequal")
	}
}
