package ptp

import "fmt"

// ClockIdentity is an 8-byte globally unique clock identifier, typically an
// EUI-64 derived from a MAC address.
type ClockIdentity [8]byte

func (ci ClockIdentity) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x:%02x:%02x",
		ci[0], ci[1], ci[2], ci[3], ci[4], ci[5], ci[6], ci[7])
}

// AllOnesClockIdentity addresses "all clocks" in a targetPortIdentity, used
// by SetAllPorts.
var AllOnesClockIdentity = ClockIdentity{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

func (ci ClockIdentity) encode(c *cursor) MNGError {
	return c.writeBytes(ci[:])
}

func decodeClockIdentity(c *cursor) (ClockIdentity, MNGError) {
	var ci ClockIdentity
	b, err := c.readBytes(8)
	if err != ErrOK {
		return ci, err
	}
	copy(ci[:], b)
	return ci, ErrOK
}

// PortIdentity is a ClockIdentity plus a 16-bit port number.
type PortIdentity struct {
	ClockIdentity ClockIdentity
	PortNumber    uint16
}

// AllPortsPortIdentity is the target used to address every port of every
// clock (all-ones clock identity, port number 0xffff).
var AllPortsPortIdentity = PortIdentity{ClockIdentity: AllOnesClockIdentity, PortNumber: 0xffff}

func (pi PortIdentity) String() string {
	return fmt.Sprintf("%s-%d", pi.ClockIdentity.String(), pi.PortNumber)
}

func (pi PortIdentity) encode(c *cursor) MNGError {
	if e := pi.ClockIdentity.encode(c); e != ErrOK {
		return e
	}
	return c.writeU16(pi.PortNumber)
}

func decodePortIdentity(c *cursor) (PortIdentity, MNGError) {
	var pi PortIdentity
	ci, e := decodeClockIdentity(c)
	if e != ErrOK {
		return pi, e
	}
	port, e := c.readU16()
	if e != ErrOK {
		return pi, e
	}
	return PortIdentity{ClockIdentity: ci, PortNumber: port}, ErrOK
}

// Timestamp is a 48-bit seconds field followed by a 32-bit nanoseconds field.
type Timestamp struct {
	SecondsField     uint64 // low 48 bits significant
	NanosecondsField uint32
}

func (t Timestamp) String() string {
	return fmt.Sprintf("%d.%09d", t.SecondsField, t.NanosecondsField)
}

func (t Timestamp) encode(c *cursor) MNGError {
	if e := c.writeU48(t.SecondsField); e != ErrOK {
		return e
	}
	return c.writeU32(t.NanosecondsField)
}

func decodeTimestamp(c *cursor) (Timestamp, MNGError) {
	var t Timestamp
	secs, e := c.readU48()
	if e != ErrOK {
		return t, e
	}
	ns, e := c.readU32()
	if e != ErrOK {
		return t, e
	}
	return Timestamp{SecondsField: secs, NanosecondsField: ns}, ErrOK
}

// TimeInterval is a signed, scaled-nanosecond duration: value/0x10000
// yields nanoseconds (spec.md GLOSSARY).
type TimeInterval int64

// Nanoseconds converts the scaled value to a float64 nanosecond count,
// mirroring the original message::getInterval().
func (v TimeInterval) Nanoseconds() float64 {
	return float64(v) / 0x10000
}

func (v TimeInterval) encode(c *cursor) MNGError {
	return c.writeI64(int64(v))
}

func decodeTimeInterval(c *cursor) (TimeInterval, MNGError) {
	v, e := c.readI64()
	return TimeInterval(v), e
}

// ClockQuality summarizes a clock's class, accuracy and stability.
type ClockQuality struct {
	ClockClass              uint8
	ClockAccuracy           ClockAccuracy
	OffsetScaledLogVariance uint16
}

func (q ClockQuality) encode(c *cursor) MNGError {
	if e := c.writeU8(q.ClockClass); e != ErrOK {
		return e
	}
	if e := c.writeU8(uint8(q.ClockAccuracy)); e != ErrOK {
		return e
	}
	return c.writeU16(q.OffsetScaledLogVariance)
}

func decodeClockQuality(c *cursor) (ClockQuality, MNGError) {
	var q ClockQuality
	class, e := c.readU8()
	if e != ErrOK {
		return q, e
	}
	acc, e := c.readU8()
	if e != ErrOK {
		return q, e
	}
	v, e := c.readU16()
	if e != ErrOK {
		return q, e
	}
	return ClockQuality{ClockClass: class, ClockAccuracy: ClockAccuracy(acc), OffsetScaledLogVariance: v}, ErrOK
}

// PTPText is a length-prefixed UTF-8 string: one length byte followed by
// that many code units, no NUL terminator.
type PTPText struct {
	Text string
}

func (t PTPText) wireLen() int { return 1 + len(t.Text) }

func (t PTPText) encode(c *cursor) MNGError {
	if len(t.Text) > 0xff {
		return ErrVal
	}
	if e := c.writeU8(uint8(len(t.Text))); e != ErrOK {
		return e
	}
	return c.writeString(t.Text)
}

func decodePTPText(c *cursor) (PTPText, MNGError) {
	n, e := c.readU8()
	if e != ErrOK {
		return PTPText{}, e
	}
	s, e := c.readString(int(n))
	if e != ErrOK {
		return PTPText{}, e
	}
	return PTPText{Text: s}, ErrOK
}

// PortAddress carries a transport protocol tag and a raw address payload.
type PortAddress struct {
	NetworkProtocol NetworkProtocol
	AddressField    []byte
}

func (a PortAddress) wireLen() int { return 2 + 2 + len(a.AddressField) }

func (a PortAddress) encode(c *cursor) MNGError {
	if len(a.AddressField) > 0xffff {
		return ErrVal
	}
	if e := c.writeU16(uint16(a.NetworkProtocol)); e != ErrOK {
		return e
	}
	if e := c.writeU16(uint16(len(a.AddressField))); e != ErrOK {
		return e
	}
	return c.writeBytes(a.AddressField)
}

func decodePortAddress(c *cursor) (PortAddress, MNGError) {
	proto, e := c.readU16()
	if e != ErrOK {
		return PortAddress{}, e
	}
	n, e := c.readU16()
	if e != ErrOK {
		return PortAddress{}, e
	}
	b, e := c.readBytes(int(n))
	if e != ErrOK {
		return PortAddress{}, e
	}
	return PortAddress{NetworkProtocol: NetworkProtocol(proto), AddressField: b}, ErrOK
}

// FaultRecord describes one entry of a FAULT_LOG response. Its on-wire
// record length must equal the sum of the subsequent fields' sizes.
type FaultRecord struct {
	FaultTime        Timestamp
	SeverityCode     FaultRecordSeverity
	FaultName        PTPText
	FaultValue       PTPText
	FaultDescription PTPText
}

// wireLenAfterLength is the byte count of everything after the 16-bit
// faultRecordLength field itself.
func (f FaultRecord) wireLenAfterLength() int {
	return 10 + 1 + f.FaultName.wireLen() + f.FaultValue.wireLen() + f.FaultDescription.wireLen()
}

func (f FaultRecord) wireLen() int { return 2 + f.wireLenAfterLength() }

func (f FaultRecord) encode(c *cursor) MNGError {
	if e := c.writeU16(uint16(f.wireLenAfterLength())); e != ErrOK {
		return e
	}
	if e := f.FaultTime.encode(c); e != ErrOK {
		return e
	}
	if e := c.writeU8(uint8(f.SeverityCode)); e != ErrOK {
		return e
	}
	if e := f.FaultName.encode(c); e != ErrOK {
		return e
	}
	if e := f.FaultValue.encode(c); e != ErrOK {
		return e
	}
	return f.FaultDescription.encode(c)
}

// decodeFaultRecord enforces that faultRecordLength matches the number of
// bytes actually consumed by the fixed and text fields (spec.md §4.2).
func decodeFaultRecord(c *cursor) (FaultRecord, MNGError) {
	var f FaultRecord
	recLen, e := c.readU16()
	if e != ErrOK {
		return f, e
	}
	start := c.pos
	ts, e := decodeTimestamp(c)
	if e != ErrOK {
		return f, e
	}
	f.FaultTime = ts
	sev, e := c.readU8()
	if e != ErrOK {
		return f, e
	}
	f.SeverityCode = FaultRecordSeverity(sev)
	if f.FaultName, e = decodePTPText(c); e != ErrOK {
		return f, e
	}
	if f.FaultValue, e = decodePTPText(c); e != ErrOK {
		return f, e
	}
	if f.FaultDescription, e = decodePTPText(c); e != ErrOK {
		return f, e
	}
	if c.pos-start != int(recLen) {
		return f, ErrSizeMiss
	}
	return f, ErrOK
}

// AcceptableMaster is one entry of an ACCEPTABLE_MASTER_TABLE.
type AcceptableMaster struct {
	AcceptablePortIdentity PortIdentity
	AlternatePriority1     uint8
}

func (a AcceptableMaster) encode(c *cursor) MNGError {
	if e := a.AcceptablePortIdentity.encode(c); e != ErrOK {
		return e
	}
	return c.writeU8(a.AlternatePriority1)
}

func decodeAcceptableMaster(c *cursor) (AcceptableMaster, MNGError) {
	pi, e := decodePortIdentity(c)
	if e != ErrOK {
		return AcceptableMaster{}, e
	}
	p1, e := c.readU8()
	if e != ErrOK {
		return AcceptableMaster{}, e
	}
	return AcceptableMaster{AcceptablePortIdentity: pi, AlternatePriority1: p1}, ErrOK
}
