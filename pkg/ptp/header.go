package ptp

// PTPHeader is the 34-byte header shared by every PTP message type. Only
// the fields management messages actually vary are exposed as knobs on
// Message; the rest hold the constants management traffic always uses.
type PTPHeader struct {
	TransportSpecific  uint8
	MessageType        uint8
	VersionPTP         uint8
	MessageLength      uint16
	DomainNumber       uint8
	FlagField          [2]uint8
	CorrectionField    int64
	SourcePortIdentity PortIdentity
	SequenceID         uint16
	ControlField       uint8
	LogMessageInterval int8
}

const ptpHeaderLen = 34

func (h *PTPHeader) encode(c *cursor) MNGError {
	if e := c.writeU8((h.TransportSpecific << 4) | (h.MessageType & 0x0f)); e != ErrOK {
		return e
	}
	if e := c.writeU8((PTPMinorVersion << 4) | (h.VersionPTP & 0x0f)); e != ErrOK {
		return e
	}
	if e := c.writeU16(h.MessageLength); e != ErrOK {
		return e
	}
	if e := c.writeU8(h.DomainNumber); e != ErrOK {
		return e
	}
	if e := c.writeU8(0); e != ErrOK {
		return e
	}
	if e := c.writeU8(h.FlagField[0]); e != ErrOK {
		return e
	}
	if e := c.writeU8(h.FlagField[1]); e != ErrOK {
		return e
	}
	if e := c.writeI64(h.CorrectionField); e != ErrOK {
		return e
	}
	if e := c.writeU32(0); e != ErrOK {
		return e
	}
	if e := h.SourcePortIdentity.encode(c); e != ErrOK {
		return e
	}
	if e := c.writeU16(h.SequenceID); e != ErrOK {
		return e
	}
	if e := c.writeU8(h.ControlField); e != ErrOK {
		return e
	}
	return c.writeI8(h.LogMessageInterval)
}

// decode reads a PTPHeader and validates the fields management parsing
// cares about: message type must be MANAGEMENT and the major version must
// match. The minor version byte is accepted regardless of value, matching
// linuxptp's tolerance of newer minor revisions (spec.md §6, Open Question).
func decodePTPHeader(c *cursor) (PTPHeader, MNGError) {
	var h PTPHeader
	b0, e := c.readU8()
	if e != ErrOK {
		return h, e
	}
	h.TransportSpecific = b0 >> 4
	h.MessageType = b0 & 0x0f
	b1, e := c.readU8()
	if e != ErrOK {
		return h, e
	}
	h.VersionPTP = b1 & 0x0f
	if h.VersionPTP != PTPMajorVersion {
		return h, ErrHeader
	}
	if h.MessageLength, e = c.readU16(); e != ErrOK {
		return h, e
	}
	if h.DomainNumber, e = c.readU8(); e != ErrOK {
		return h, e
	}
	if _, e = c.readU8(); e != ErrOK {
		return h, e
	}
	if h.FlagField[0], e = c.readU8(); e != ErrOK {
		return h, e
	}
	if h.FlagField[1], e = c.readU8(); e != ErrOK {
		return h, e
	}
	if h.CorrectionField, e = c.readI64(); e != ErrOK {
		return h, e
	}
	if _, e = c.readU32(); e != ErrOK {
		return h, e
	}
	if h.SourcePortIdentity, e = decodePortIdentity(c); e != ErrOK {
		return h, e
	}
	if h.SequenceID, e = c.readU16(); e != ErrOK {
		return h, e
	}
	if h.ControlField, e = c.readU8(); e != ErrOK {
		return h, e
	}
	if h.ControlField != 0x04 {
		return h, ErrHeader
	}
	if h.LogMessageInterval, e = c.readI8(); e != ErrOK {
		return h, e
	}
	if h.MessageType != MANAGEMENT {
		return h, ErrHeader
	}
	return h, ErrOK
}

// managementHeaderLen is the byte count of targetPortIdentity plus the
// four trailing single-byte fields, placed right after PTPHeader
// (spec.md §2, confirmed against linuxptp's sizeof(managementMsgHeader)).
const managementHeaderLen = 14

// tlvHeaderLen is the byte count of the TLV envelope's type+length pair.
const tlvHeaderLen = 4
