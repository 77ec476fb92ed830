package pkgconfig

import "testing"

func TestCursorPeekAndAdvance(t *testing.T) {
	c := NewCursor([]rune("abc"))
	if got := c.Peek(0); got != 'a' {
		t.Fatalf("Peek(0) = %q, want 'a'", got)
	}
	if got := c.Peek(1); got != 'b' {
		t.Fatalf("Peek(1) = %q, want 'b'", got)
	}
	c.Advance()
	if got := c.Peek(0); got != 'b' {
		t.Fatalf("after Advance, Peek(0) = %q, want 'b'", got)
	}
	c.Advance()
	c.Advance()
	if !c.AtEnd() {
		t.Fatalf("expected AtEnd() after consuming the whole buffer")
	}
	if got := c.Peek(0); got != emptyChar {
		t.Fatalf("Peek(0) past the end = %q, want emptyChar", got)
	}
}

func TestCursorOverwriteNulTruncates(t *testing.T) {
	buf := []rune("hello world")
	c := NewCursor(buf)
	cut := NewCursor(buf)
	cut.Advance() // points at 'e'
	for i := 0; i < 4; i++ {
		cut.Advance()
	}
	// cut now points at the space between "hello" and "world"
	cut.OverwriteNul()

	if got, want := c.ToString(), "hello"; got != want {
		t.Errorf("ToString() = %q, want %q", got, want)
	}
	if got := c.Peek(5); got != emptyChar {
		t.Errorf("Peek past the NUL = %q, want emptyChar", got)
	}
}

func TestCursorSliceStopsAtNul(t *testing.T) {
	buf := []rune("ab\x00cd")
	c := NewCursor(buf)
	got := string(c.Slice(4))
	if got != "ab" {
		t.Errorf("Slice(4) = %q, want %q", got, "ab")
	}
}

func TestCursorPtrDiff(t *testing.T) {
	buf := []rune("0123456789")
	a := NewCursor(buf)
	b := NewCursor(buf)
	for i := 0; i < 3; i++ {
		b.Advance()
	}
	if got := b.PtrDiff(a); got != 3 {
		t.Errorf("PtrDiff = %d, want 3", got)
	}
	if got := a.PtrDiff(b); got != -3 {
		t.Errorf("PtrDiff (reversed) = %d, want -3", got)
	}
}
