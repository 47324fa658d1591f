package lexer

import (
	"testing"

	"lexa/internal/source"
)

func makeCursor(t *testing.T, input string) Cursor {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mc", []byte(input))
	return NewCursor(fs.Get(id))
}

func TestCursor_PeekBump(t *testing.T) {
	c := makeCursor(t, "ab")

	if c.Peek() != 'a' {
		t.Fatalf("Peek = %q", c.Peek())
	}
	if b0, b1, ok := c.Peek2(); !ok || b0 != 'a' || b1 != 'b' {
		t.Fatalf("Peek2 = %q, %q, %v", b0, b1, ok)
	}
	if _, _, _, ok := c.Peek3(); ok {
		t.Fatal("Peek3 beyond the end reported ok")
	}

	if c.Bump() != 'a' || c.Bump() != 'b' {
		t.Fatal("Bump consumed wrong bytes")
	}
	if !c.EOF() {
		t.Fatal("expected EOF after consuming everything")
	}
	if c.Peek() != 0 || c.Bump() != 0 {
		t.Fatal("Peek/Bump at EOF must return 0")
	}
}

func TestCursor_Eat(t *testing.T) {
	c := makeCursor(t, "=x")

	if !c.Eat('=') {
		t.Fatal("Eat rejected a matching byte")
	}
	if c.Eat('=') {
		t.Fatal("Eat consumed a non-matching byte")
	}
	if c.Peek() != 'x' {
		t.Fatalf("Peek after Eat = %q", c.Peek())
	}
}

func TestCursor_MarkSpanReset(t *testing.T) {
	c := makeCursor(t, "hello")

	m := c.Mark()
	c.Bump()
	c.Bump()

	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Fatalf("SpanFrom = %+v", sp)
	}

	c.Reset(m)
	if c.Off != 0 || c.Peek() != 'h' {
		t.Fatalf("Reset did not rewind: off=%d", c.Off)
	}
}
