package util

import (
	"errors"
	"testing"
)

func TestFmtPkgConfigError(t *testing.T) {
	err := FmtPkgConfigError("Package \"%s\" was not found in the PkgConfig searchPath", "foo")
	want := `Package "foo" was not found in the PkgConfig searchPath`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if len(err.StackTrace) == 0 {
		t.Errorf("expected a captured stack trace")
	}
}

func TestChildPkgConfigError(t *testing.T) {
	parent := errors.New("file not found")
	child := ChildPkgConfigError(parent)
	if child.Parent != parent {
		t.Errorf("Parent = %v, want %v", child.Parent, parent)
	}
	if child.Error() != parent.Error() {
		t.Errorf("Error() = %q, want %q", child.Error(), parent.Error())
	}

	// Wrapping an already-wrapped error should unwrap to the original,
	// non-PkgConfigError root rather than nesting PkgConfigErrors.
	grandchild := ChildPkgConfigError(child)
	if grandchild.Parent != parent {
		t.Errorf("grandchild.Parent = %v, want %v", grandchild.Parent, parent)
	}
}

func TestFmtChildPkgConfigError(t *testing.T) {
	parent := errors.New("boom")
	err := FmtChildPkgConfigError(parent, "Package 'D', required by '%s', not found", "R")
	want := "Package 'D', required by 'R', not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Parent != parent {
		t.Errorf("Parent = %v, want %v", err.Parent, parent)
	}
}
