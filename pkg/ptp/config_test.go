package ptp

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultConfigMatchesPTP4LDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BoundaryHops != 1 {
		t.Fatalf("BoundaryHops = %d, want 1", cfg.BoundaryHops)
	}
	if cfg.UDSAddress != "/var/run/ptp4l" {
		t.Fatalf("UDSAddress = %q, want /var/run/ptp4l", cfg.UDSAddress)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pmc.yaml")
	yamlDoc := "transport_specific: 1\ndomain_number: 24\nuds_address: /var/run/ptp4l.custom\n"
	if err := os.WriteFile(path, []byte(yamlDoc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.TransportSpecific != 1 {
		t.Fatalf("TransportSpecific = %d, want 1", cfg.TransportSpecific)
	}
	if cfg.DomainNumber != 24 {
		t.Fatalf("DomainNumber = %d, want 24", cfg.DomainNumber)
	}
	if cfg.UDSAddress != "/var/run/ptp4l.custom" {
		t.Fatalf("UDSAddress = %q, want /var/run/ptp4l.custom", cfg.UDSAddress)
	}
	if cfg.BoundaryHops != 1 {
		t.Fatalf("BoundaryHops = %d, want default 1 (file omitted it)", cfg.BoundaryHops)
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("LoadConfig on a missing file returned nil error")
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("LoadConfig on error should still return DefaultConfig, got %+v", cfg)
	}
}

func TestUseConfigAppliesAddressingFields(t *testing.T) {
	cfg := Config{TransportSpecific: 1, DomainNumber: 5, BoundaryHops: 3}
	m := NewMessage()
	if e := m.UseConfig(cfg); e != ErrOK {
		t.Fatalf("UseConfig: %v", e)
	}
	if m.TransportSpecific != 1 || m.DomainNumber != 5 || m.BoundaryHops != 3 {
		t.Fatalf("UseConfig did not apply: %+v", m)
	}
}

func TestUseConfigReadsNamedSection(t *testing.T) {
	cfg := Config{
		BoundaryHops: 1,
		Sections: map[string]Config{
			"eth0": {TransportSpecific: 2, DomainNumber: 7, BoundaryHops: 2},
		},
	}
	m := NewMessage()
	if e := m.UseConfig(cfg, "eth0"); e != ErrOK {
		t.Fatalf("UseConfig(eth0): %v", e)
	}
	if m.TransportSpecific != 2 || m.DomainNumber != 7 || m.BoundaryHops != 2 {
		t.Fatalf("UseConfig(eth0) did not apply: %+v", m)
	}
}

func TestUseConfigUnknownSectionFailsWithoutMutation(t *testing.T) {
	cfg := Config{TransportSpecific: 9, DomainNumber: 9, BoundaryHops: 9}
	m := NewMessage()
	m.TransportSpecific, m.DomainNumber, m.BoundaryHops = 1, 1, 1
	if e := m.UseConfig(cfg, "does-not-exist"); e != ErrVal {
		t.Fatalf("UseConfig(does-not-exist) = %v, want ErrVal", e)
	}
	if m.TransportSpecific != 1 || m.DomainNumber != 1 || m.BoundaryHops != 1 {
		t.Fatalf("UseConfig mutated m on an unknown section: %+v", m)
	}
}

func TestUseConfigMalformedValueFailsWithoutMutation(t *testing.T) {
	cfg := Config{TransportSpecific: 0x1f, BoundaryHops: 1} // transportSpecific is a 4-bit field
	m := NewMessage()
	m.TransportSpecific, m.DomainNumber, m.BoundaryHops = 1, 1, 1
	if e := m.UseConfig(cfg); e != ErrVal {
		t.Fatalf("UseConfig(malformed) = %v, want ErrVal", e)
	}
	if m.TransportSpecific != 1 || m.DomainNumber != 1 || m.BoundaryHops != 1 {
		t.Fatalf("UseConfig mutated m on a malformed value: %+v", m)
	}
}
