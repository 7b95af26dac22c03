package ptp

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the handful of linuxptp.conf / pmc knobs that shape how a
// management message is addressed and built (original_source/msg.h
// useConfig()). It is loaded from YAML rather than the original's
// ini-like format, matching how the rest of this ambient stack is
// expressed; Sections carries the per-interface overrides linuxptp's own
// [global]/[eth0]-style config file would, keyed by section name.
type Config struct {
	TransportSpecific  uint8  `yaml:"transport_specific"`
	DomainNumber       uint8  `yaml:"domain_number"`
	BoundaryHops       uint8  `yaml:"boundary_hops"`
	UDSAddress         string `yaml:"uds_address"`
	SocketPriority     int    `yaml:"socket_priority"`
	UnicastNegotiation bool   `yaml:"unicast_negotiation"`

	Sections map[string]Config `yaml:"sections,omitempty"`
}

// DefaultConfig matches ptp4l's own compiled-in defaults for the fields
// pmc cares about.
func DefaultConfig() Config {
	return Config{
		DomainNumber: 0,
		BoundaryHops: 1,
		UDSAddress:   "/var/run/ptp4l",
	}
}

// ConfigSource is the external config collaborator useConfig reads from
// (spec.md §6.2): a set of named sections of addressing/transport knobs.
// Config implements it directly, so a single flat YAML document works
// with no section argument at all.
type ConfigSource interface {
	// Section returns the named section's settings, or the top-level
	// section when name is "" or "global".
	Section(name string) (Config, bool)
}

// Section implements ConfigSource. The returned Config never carries its
// own nested Sections map, so a caller cannot recurse into a sub-section
// of a sub-section.
func (c Config) Section(name string) (Config, bool) {
	if name == "" || name == "global" {
		c.Sections = nil
		return c, true
	}
	sec, ok := c.Sections[name]
	sec.Sections = nil
	return sec, ok
}

// LoadConfig reads a YAML config file, falling back to DefaultConfig for
// any field the file omits.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	if cfg.BoundaryHops == 0 {
		cfg.BoundaryHops = 1
	}
	return cfg, nil
}

// validateConfig rejects the malformed values useConfig must catch before
// touching anything it applies to (spec.md §6.2): transportSpecific is a
// 4-bit field on the wire, and a zero boundaryHops would make every
// outgoing request claim to have already traveled zero hops through a
// boundary clock, which no real pmc session does.
func validateConfig(cfg Config) MNGError {
	if cfg.TransportSpecific > 0x0f {
		return ErrVal
	}
	if cfg.BoundaryHops == 0 {
		return ErrVal
	}
	return ErrOK
}

// UseConfig applies cfg's addressing fields to m, the same fields the
// original message::useConfig() copies out of a parsed configFile before
// the first Build. section names the sub-section to read ("" for the
// top-level/global section); an unknown section or a malformed value is
// reported without mutating m.
func (m *Message) UseConfig(cfg ConfigSource, section ...string) MNGError {
	name := ""
	if len(section) > 0 {
		name = section[0]
	}
	sec, ok := cfg.Section(name)
	if !ok {
		return ErrVal
	}
	if e := validateConfig(sec); e != ErrOK {
		return e
	}
	m.TransportSpecific = sec.TransportSpecific
	m.DomainNumber = sec.DomainNumber
	m.BoundaryHops = sec.BoundaryHops
	return ErrOK
}
