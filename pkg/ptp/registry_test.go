package ptp

import "testing"

func TestRegistryDeclaredSizesMatchWireLayout(t *testing.T) {
	// Spot-checks against a hand count of the corresponding proc's encode
	// byte output; Build sizes its buffer off declaredSize before calling
	// the proc, so a mismatch here silently corrupts every frame for that
	// ID rather than failing loudly.
	cases := map[ManagementId]int{
		PORT_DATA_SET:  26,
		TIME_STATUS_NP: 44,
		DEFAULT_DATA_SET: 20,
		PARENT_DATA_SET:  32,
	}
	for id, want := range cases {
		e, ok := entryFor(id)
		if !ok {
			t.Fatalf("%v not registered", id)
		}
		if e.declaredSize != want {
			t.Fatalf("%v declaredSize = %d, want %d", id, e.declaredSize, want)
		}
	}
}

func TestIsEmptyOnlyForZeroDeclaredSize(t *testing.T) {
	if !isEmpty(NULL_MANAGEMENT) {
		t.Fatalf("NULL_MANAGEMENT should be empty")
	}
	if !isEmpty(ENABLE_PORT) {
		t.Fatalf("ENABLE_PORT (COMMAND, no data) should be empty")
	}
	if isEmpty(PRIORITY1) {
		t.Fatalf("PRIORITY1 carries one data byte, should not be empty")
	}
	if isEmpty(TRACEABILITY_PROPERTIES) {
		t.Fatalf("unsupportedSize must not read as empty")
	}
}

func TestScopeOfReportsRegisteredEntries(t *testing.T) {
	if s, ok := scopeOf(PORT_DATA_SET); !ok || s != ScopePort {
		t.Fatalf("scopeOf(PORT_DATA_SET) = (%v, %v), want (ScopePort, true)", s, ok)
	}
	if s, ok := scopeOf(DEFAULT_DATA_SET); !ok || s != ScopeClock {
		t.Fatalf("scopeOf(DEFAULT_DATA_SET) = (%v, %v), want (ScopeClock, true)", s, ok)
	}
	if _, ok := scopeOf(ManagementId(0xBEEF)); ok {
		t.Fatalf("scopeOf matched an unregistered ID")
	}
}

func TestUnsupportedIDsHaveNoAllowedActions(t *testing.T) {
	for _, id := range []ManagementId{TRACEABILITY_PROPERTIES, TIMESCALE_PROPERTIES} {
		for _, a := range []Action{GET, SET, COMMAND} {
			if allowedAction(id, a) {
				t.Fatalf("%v should not allow %v", id, a)
			}
		}
	}
}
