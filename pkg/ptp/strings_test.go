package ptp

import "testing"

func TestParseIDCaseInsensitive(t *testing.T) {
	cases := []string{"default_data_set", "DEFAULT_DATA_SET", "  Default_Data_Set  "}
	for _, s := range cases {
		id, ok := ParseID(s)
		if !ok {
			t.Fatalf("ParseID(%q) not found", s)
		}
		if id != DEFAULT_DATA_SET {
			t.Fatalf("ParseID(%q) = %v, want DEFAULT_DATA_SET", s, id)
		}
	}
}

func TestParseIDUnknownName(t *testing.T) {
	if _, ok := ParseID("NOT_A_REAL_MANAGEMENT_ID"); ok {
		t.Fatalf("ParseID matched an unknown name")
	}
}

func TestIDStringRoundTripsEveryRegisteredName(t *testing.T) {
	for id, name := range idNames {
		if got := IDString(id); got != name {
			t.Fatalf("IDString(%v) = %q, want %q", id, got, name)
		}
		parsed, ok := ParseID(name)
		if !ok || parsed != id {
			t.Fatalf("ParseID(%q) = (%v, %v), want (%v, true)", name, parsed, ok, id)
		}
	}
}

func TestIDStringUnknownFallback(t *testing.T) {
	if got := IDString(ManagementId(0xBEEF)); got != "UNKNOWN_ID" {
		t.Fatalf("IDString(0xBEEF) = %q, want UNKNOWN_ID", got)
	}
}

func TestParseActionTolerant(t *testing.T) {
	cases := map[string]Action{"get": GET, "SET": SET, "cmd": COMMAND, "Command": COMMAND}
	for s, want := range cases {
		got, ok := ParseAction(s)
		if !ok {
			t.Fatalf("ParseAction(%q) not found", s)
		}
		if got != want {
			t.Fatalf("ParseAction(%q) = %v, want %v", s, got, want)
		}
	}
	if _, ok := ParseAction("RESPONSE"); ok {
		t.Fatalf("ParseAction accepted RESPONSE, which pmc never sends as a request action")
	}
}

func TestParsePortStateAcceptsClientAlias(t *testing.T) {
	for _, s := range []string{"SLAVE", "slave", "CLIENT", "client"} {
		got, ok := ParsePortState(s)
		if !ok || got != PS_SLAVE {
			t.Fatalf("ParsePortState(%q) = (%v, %v), want (PS_SLAVE, true)", s, got, ok)
		}
	}
}

func TestParseTimeSourceAcceptsGPSAlias(t *testing.T) {
	for _, s := range []string{"GNSS", "gnss", "GPS", "gps"} {
		got, ok := ParseTimeSource(s)
		if !ok || got != GNSS {
			t.Fatalf("ParseTimeSource(%q) = (%v, %v), want (GNSS, true)", s, got, ok)
		}
	}
}
