package pkgconfig

import "testing"

const samplePC = `prefix=/usr
exec_prefix=${prefix}
libdir=${exec_prefix}/lib
includedir=${prefix}/include

Name: sample
Description: A sample package
Version: 1.2.3
Requires: dep1 >= 1.0
Cflags: -I${includedir}
Libs: -L${libdir} -lsample
`

func TestParsePackageBasic(t *testing.T) {
	pkg, err := ParsePackage("/pkgconfig/sample.pc", samplePC, 1, false)
	if err != nil {
		t.Fatalf("ParsePackage: %v", err)
	}

	if pkg.Name != "sample" {
		t.Errorf("Name = %q, want sample", pkg.Name)
	}
	if pkg.Version != "1.2.3" {
		t.Errorf("Version = %q, want 1.2.3", pkg.Version)
	}
	if len(pkg.RequiresEntries) != 1 || pkg.RequiresEntries[0].Name != "dep1" {
		t.Errorf("RequiresEntries = %#v", pkg.RequiresEntries)
	}
	if len(pkg.Cflags) != 1 || pkg.Cflags[0].Args[0] != "-I/usr/include" {
		t.Errorf("Cflags = %#v, want -I/usr/include", pkg.Cflags)
	}
	if len(pkg.Libs) != 2 {
		t.Fatalf("Libs = %#v, want 2 flags", pkg.Libs)
	}
	if pkg.Libs[0].Args[0] != "-L/usr/lib" || pkg.Libs[1].Args[0] != "-lsample" {
		t.Errorf("Libs = %#v", pkg.Libs)
	}
}

func TestParsePackageUndefinedVariableFails(t *testing.T) {
	_, err := ParsePackage("/pkgconfig/bad.pc", "Name: ${missing}\nVersion: 1\nDescription: d\n", 1, false)
	if err == nil {
		t.Fatalf("expected an error referencing an undefined variable")
	}
}

func TestParsePackageDuplicateNameFails(t *testing.T) {
	content := "Name: a\nName: b\nVersion: 1\nDescription: d\n"
	_, err := ParsePackage("/pkgconfig/dup.pc", content, 1, false)
	if err == nil {
		t.Fatalf("expected an error for a duplicate Name field")
	}
}

func TestParsePackageDuplicateLibsFailsEvenIfFirstEmpty(t *testing.T) {
	content := "Name: a\nVersion: 1\nDescription: d\nLibs:\nLibs: -lfoo\n"
	_, err := ParsePackage("/pkgconfig/dup.pc", content, 1, false)
	if err == nil {
		t.Fatalf("expected a second Libs field to fail even though the first was empty")
	}
}

func TestParsePackageConflictsTwoNonEmptyFails(t *testing.T) {
	content := "Name: a\nVersion: 1\nDescription: d\nConflicts: foo\nConflicts: bar\n"
	_, err := ParsePackage("/pkgconfig/dup.pc", content, 1, false)
	if err == nil {
		t.Fatalf("expected two non-empty Conflicts fields to fail")
	}
}

func TestParsePackageConflictsSecondEmptyTolerated(t *testing.T) {
	content := "Name: a\nVersion: 1\nDescription: d\nConflicts: foo\nConflicts:\n"
	pkg, err := ParsePackage("/pkgconfig/dup.pc", content, 1, false)
	if err != nil {
		t.Fatalf("expected a non-empty Conflicts followed by an empty one to be tolerated: %v", err)
	}
	if len(pkg.Conflicts) != 1 || pkg.Conflicts[0].Name != "foo" {
		t.Errorf("Conflicts = %#v, want the first (non-empty) entry preserved", pkg.Conflicts)
	}
}

func TestParsePackageConflictsFirstEmptyThenAnyFails(t *testing.T) {
	content := "Name: a\nVersion: 1\nDescription: d\nConflicts:\nConflicts: foo\n"
	_, err := ParsePackage("/pkgconfig/dup.pc", content, 1, false)
	if err == nil {
		t.Fatalf("expected an empty Conflicts followed by any second occurrence to fail")
	}
}

func TestParsePackageIgnoresRequiresPrivateWhenTold(t *testing.T) {
	content := "Name: a\nVersion: 1\nDescription: d\nRequires.private: foo\n"
	pkg, err := ParsePackage("/pkgconfig/x.pc", content, 1, true)
	if err != nil {
		t.Fatalf("ParsePackage: %v", err)
	}
	if len(pkg.RequiresPrivateEntries) != 0 {
		t.Errorf("RequiresPrivateEntries = %#v, want none", pkg.RequiresPrivateEntries)
	}
}
