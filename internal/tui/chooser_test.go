package tui

import "testing"

func TestChooserCycles(t *testing.T) {
	c := NewChooser([]string{"a", "b", "c"})
	if got, _ := c.Selected(); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
	c.Next()
	c.Next()
	c.Next()
	if got, _ := c.Selected(); got != "a" {
		t.Fatalf("expected wrap to a, got %q", got)
	}
	c.Prev()
	if got, _ := c.Selected(); got != "c" {
		t.Fatalf("expected c, got %q", got)
	}
}

func TestEmptyChooser(t *testing.T) {
	c := NewEmptyChooser([]string{"a", "b"})
	if _, ok := c.Selected(); ok {
		t.Fatal("expected no selection")
	}
	c.Prev()
	if got, _ := c.Selected(); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
	c.Reset(-1)
	c.Next()
	if got, _ := c.Selected(); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
}

func TestChooserNoOptions(t *testing.T) {
	c := NewChooser(nil)
	c.Next()
	c.Prev()
	if _, ok := c.Selected(); ok {
		t.Fatal("expected no selection")
	}
}
