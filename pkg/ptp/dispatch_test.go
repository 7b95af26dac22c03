package ptp

import "testing"

func TestPayloadTypeMismatchReturnsInvalidTLV(t *testing.T) {
	buf := make([]byte, 64)
	m := NewMessage()
	if _, e := m.BuildInto(buf, PRIORITY1, SET, &Uint8Value{Value: 1}); e != ErrOK {
		t.Fatalf("Build: %v", e)
	}
	out := NewMessage()
	if e := out.Parse(buf); e != ErrOK {
		t.Fatalf("Parse: %v", e)
	}
	if _, e := Payload[*TextValue](out); e != ErrInvalidTLV {
		t.Fatalf("Payload[*TextValue] on a Uint8Value message = %v, want ErrInvalidTLV", e)
	}
}

func TestDispatcherRunsMatchingHandler(t *testing.T) {
	buf := make([]byte, 64)
	m := NewMessage()
	if _, e := m.BuildInto(buf, PRIORITY1, SET, &Uint8Value{Value: 77}); e != ErrOK {
		t.Fatalf("Build: %v", e)
	}
	parsed := NewMessage()
	if e := parsed.Parse(buf); e != ErrOK {
		t.Fatalf("Parse: %v", e)
	}

	var got uint8
	matched := false
	d := NewDispatcher[*Uint8Value]()
	d.On(PRIORITY1, func(_ *Message, v *Uint8Value) {
		matched = true
		got = v.Value
	})
	d.OnUnhandled(func(*Message) {
		t.Fatalf("unhandled fallback ran for PRIORITY1")
	})
	d.Dispatch(parsed)

	if !matched {
		t.Fatalf("handler did not run")
	}
	if got != 77 {
		t.Fatalf("got %d, want 77", got)
	}
}

func TestDispatcherFallsBackOnUnregisteredID(t *testing.T) {
	buf := make([]byte, 64)
	m := NewMessage()
	if _, e := m.BuildInto(buf, PRIORITY2, SET, &Uint8Value{Value: 1}); e != ErrOK {
		t.Fatalf("Build: %v", e)
	}
	parsed := NewMessage()
	if e := parsed.Parse(buf); e != ErrOK {
		t.Fatalf("Parse: %v", e)
	}

	fellBack := false
	d := NewDispatcher[*Uint8Value]()
	d.On(PRIORITY1, func(*Message, *Uint8Value) {
		t.Fatalf("PRIORITY1 handler ran for a PRIORITY2 message")
	})
	d.OnUnhandled(func(*Message) { fellBack = true })
	d.Dispatch(parsed)

	if !fellBack {
		t.Fatalf("fallback did not run for unregistered ID")
	}
}

func TestBuilderEncodesThroughMessage(t *testing.T) {
	b := NewBuilder[*Uint8Value](DOMAIN)
	buf := make([]byte, 64)
	m := NewMessage()
	n, e := b.Build(m, buf, SET, &Uint8Value{Value: 5})
	if e != ErrOK {
		t.Fatalf("Builder.Build: %v", e)
	}
	if n == 0 {
		t.Fatalf("Builder.Build wrote nothing")
	}
	if m.ID() != DOMAIN {
		t.Fatalf("Message.ID() = %v, want DOMAIN", m.ID())
	}
}
