package ptp

import "testing"

func TestCursorBoundsChecks(t *testing.T) {
	c := newCursor(make([]byte, 2))
	if _, e := c.readU8(); e != ErrOK {
		t.Fatalf("readU8 #1: %v", e)
	}
	if _, e := c.readU8(); e != ErrOK {
		t.Fatalf("readU8 #2: %v", e)
	}
	if _, e := c.readU8(); e != ErrTooSmall {
		t.Fatalf("readU8 past end: got %v, want ErrTooSmall", e)
	}
}

func TestCursorWriteDoesNotPartiallyAdvance(t *testing.T) {
	c := newCursor(make([]byte, 1))
	if e := c.writeU16(0x1234); e != ErrTooSmall {
		t.Fatalf("writeU16 over-capacity: got %v, want ErrTooSmall", e)
	}
	if c.pos != 0 {
		t.Fatalf("cursor advanced on failed write: pos=%d", c.pos)
	}
}

func TestCursorU48RoundTrip(t *testing.T) {
	buf := make([]byte, 6)
	c := newCursor(buf)
	if e := c.writeU48(uint48Max); e != ErrOK {
		t.Fatalf("writeU48: %v", e)
	}
	c = newCursor(buf)
	v, e := c.readU48()
	if e != ErrOK {
		t.Fatalf("readU48: %v", e)
	}
	if v != uint48Max {
		t.Fatalf("got %d, want %d", v, uint48Max)
	}
}

func TestCursorI64NegativeRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	c := newCursor(buf)
	want := int64(-123456789)
	if e := c.writeI64(want); e != ErrOK {
		t.Fatalf("writeI64: %v", e)
	}
	c = newCursor(buf)
	got, e := c.readI64()
	if e != ErrOK {
		t.Fatalf("readI64: %v", e)
	}
	if got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func TestCursorStringRoundTrip(t *testing.T) {
	buf := make([]byte, 5)
	c := newCursor(buf)
	if e := c.writeString("hello"); e != ErrOK {
		t.Fatalf("writeString: %v", e)
	}
	c = newCursor(buf)
	s, e := c.readString(5)
	if e != ErrOK {
		t.Fatalf("readString: %v", e)
	}
	if s != "hello" {
		t.Fatalf("got %q, want %q", s, "hello")
	}
}
