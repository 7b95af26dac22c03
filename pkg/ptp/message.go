package ptp

// Message is the C5 state machine of spec.md §5: it owns exactly one
// management TLV's worth of build or parse state at a time. A single
// instance is reused across a whole PMC session (linuxptp itself keeps
// one long-lived message object per client): BuildInto overwrites the
// id/action/payload it records, and Parse clears the previous payload and
// error-status fields before decoding, so those are not carried over
// from a previous call.
type Message struct {
	TransportSpecific uint8
	DomainNumber      uint8
	Unicast           bool
	SequenceID        uint16
	SourcePortIdentity PortIdentity

	TargetPortIdentity   PortIdentity
	BoundaryHops         uint8
	allPorts             bool

	id     ManagementId
	action Action

	data any

	errID      ManagementErrorId
	errDisplay string

	lastErr MNGError

	sendBuf []byte
}

// NewMessage returns a Message ready to build or parse, addressed at the
// default PMC target (all clocks, all ports) with one boundary hop, the
// convention pmc itself uses for a direct ptp4l session.
func NewMessage() *Message {
	return &Message{
		TargetPortIdentity: AllPortsPortIdentity,
		BoundaryHops:       1,
		allPorts:           true,
	}
}

// SetAllPorts targets every port of every clock, the wildcard address
// used for GET-style broadcasts (linuxptp's default pmc target).
func (m *Message) SetAllPorts() {
	m.TargetPortIdentity = AllPortsPortIdentity
	m.allPorts = true
}

// IsAllPorts reports whether the current target is the wildcard address.
func (m *Message) IsAllPorts() bool {
	return m.allPorts
}

// SetTarget addresses a specific clock/port.
func (m *Message) SetTarget(pi PortIdentity) {
	m.TargetPortIdentity = pi
	m.allPorts = pi == AllPortsPortIdentity
}

// LastError returns the MNGError of the most recent Build or Parse call.
func (m *Message) LastError() MNGError { return m.lastErr }

// ErrDisplay returns the errorId/displayData pair a MANAGEMENT_ERROR_STATUS
// TLV carried, valid only after Parse decoded such a TLV.
func (m *Message) ErrDisplay() (ManagementErrorId, string) { return m.errID, m.errDisplay }

// GetMsgPlanedLen reports the total wire length of a frame carrying id's
// dataField for payload, without actually writing anything, mirroring the
// original message::getMsgPlanedLen() used to size a send buffer up front.
// The dataField is counted whatever the action, so for a GET (which
// BuildInto sends without one) this is an upper bound, not the exact size.
func GetMsgPlanedLen(id ManagementId, payload any) (int, MNGError) {
	entry, ok := entryFor(id)
	if !ok {
		return 0, ErrInvalidID
	}
	dataLen, e := dataFieldLen(id, entry, payload)
	if e != ErrOK {
		return 0, e
	}
	return ptpHeaderLen + managementHeaderLen + tlvHeaderLen + 2 + padToEven(dataLen), ErrOK
}

// dataFieldLen resolves an ID's logical (pre-pad) dataField length: the
// registry's fixed size, or the proc's computed size for variableSize IDs.
func dataFieldLen(id ManagementId, entry idEntry, payload any) (int, MNGError) {
	switch entry.declaredSize {
	case unsupportedSize:
		return 0, ErrUnsupport
	case variableSize:
		proc, ok := procFor(id)
		if !ok || proc.size == nil {
			return 0, ErrUnsupport
		}
		return proc.size(payload), ErrOK
	default:
		return entry.declaredSize, ErrOK
	}
}

// padToEven applies the uniform TLV-level pad rule of spec.md §4.4: a
// dataField with odd logical length gets one zero pad byte so the whole
// TLV, and therefore the whole message, stays 16-bit aligned. Per-ID procs
// never know about this; it is applied once, here, by the orchestration
// layer that owns the TLV envelope.
func padToEven(n int) int {
	if n%2 != 0 {
		return n + 1
	}
	return n
}

// Build encodes a management request/response for id into m's own send
// buffer, growing or reusing it as needed, and returns the number of
// bytes written; GetSendBuf retrieves the result. This is the original
// message::build(uint16_t sequence) overload (spec.md §3 Invariants: "the
// send buffer is always owned by the Message") — sequence itself is not a
// parameter here since SequenceID, like the other addressing fields, is
// already set directly on m before the call.
func (m *Message) Build(id ManagementId, action Action, payload any) (int, MNGError) {
	n, e := GetMsgPlanedLen(id, payload)
	if e != ErrOK {
		m.id, m.action, m.data = id, action, payload
		m.lastErr = e
		return 0, e
	}
	if cap(m.sendBuf) < n {
		m.sendBuf = make([]byte, n)
	} else {
		m.sendBuf = m.sendBuf[:n]
	}
	written, e := m.BuildInto(m.sendBuf, id, action, payload)
	m.sendBuf = m.sendBuf[:written]
	return written, e
}

// GetSendBuf returns the bytes the most recent Build call wrote, borrowed
// from m's owned send buffer; it is only valid until the next Build call
// (original message::getSendBuf()/getSendBufSize()).
func (m *Message) GetSendBuf() []byte { return m.sendBuf }

// BuildInto encodes a management request/response for id into the
// caller-supplied buf, returning the number of bytes written — the
// original message::build(buf, bufSize, sequence) overload, for callers
// that must manage the wire bytes themselves (a pre-sized socket buffer,
// a ring buffer, …) rather than borrow m's own. action must be one the
// ID's registry entry allows (spec.md §4.3); the caller supplies payload
// matching the type the ID's proc expects (nil for empty IDs).
func (m *Message) BuildInto(buf []byte, id ManagementId, action Action, payload any) (int, MNGError) {
	m.id, m.action, m.data = id, action, payload
	entry, ok := entryFor(id)
	if !ok {
		m.lastErr = ErrInvalidID
		return 0, ErrInvalidID
	}
	if !allowedAction(id, action) {
		m.lastErr = ErrAction
		return 0, ErrAction
	}
	// A GET request only names the ID it wants; the dataField itself is
	// only ever sent on SET/COMMAND (original_source/msg.h: dataFieldSize
	// is used "for sending SET/COMMAND" only).
	var dataLen int
	var e MNGError
	if action != GET {
		if dataLen, e = dataFieldLen(id, entry, payload); e != ErrOK {
			m.lastErr = e
			return 0, e
		}
	}
	padded := padToEven(dataLen)
	total := ptpHeaderLen + managementHeaderLen + tlvHeaderLen + 2 + padded
	if len(buf) < total {
		m.lastErr = ErrSize
		return 0, ErrSize
	}

	c := newCursor(buf[:total])
	hdr := PTPHeader{
		TransportSpecific:  m.TransportSpecific,
		MessageType:        MANAGEMENT,
		VersionPTP:         PTPMajorVersion,
		MessageLength:      uint16(total),
		DomainNumber:       m.DomainNumber,
		SourcePortIdentity: m.SourcePortIdentity,
		SequenceID:         m.SequenceID,
		ControlField:       0x04, // management messages always carry control=4
		LogMessageInterval: 0x7f,
	}
	if m.Unicast {
		hdr.FlagField[0] |= FLAG_UNICAST
	}
	if e = hdr.encode(c); e != ErrOK {
		m.lastErr = e
		return 0, e
	}
	if e = m.TargetPortIdentity.encode(c); e != ErrOK {
		m.lastErr = e
		return 0, e
	}
	if e = c.writeU8(m.BoundaryHops); e != ErrOK {
		m.lastErr = e
		return 0, e
	}
	if e = c.writeU8(m.BoundaryHops); e != ErrOK {
		m.lastErr = e
		return 0, e
	}
	if e = c.writeU8(uint8(action) & 0x0f); e != ErrOK {
		m.lastErr = e
		return 0, e
	}
	if e = c.writeU8(0); e != ErrOK {
		m.lastErr = e
		return 0, e
	}
	if e = c.writeU16(TLV_MANAGEMENT); e != ErrOK {
		m.lastErr = e
		return 0, e
	}
	if e = c.writeU16(uint16(2 + padded)); e != ErrOK {
		m.lastErr = e
		return 0, e
	}
	if e = c.writeU16(uint16(id)); e != ErrOK {
		m.lastErr = e
		return 0, e
	}
	if dataLen > 0 {
		proc, ok := procFor(id)
		if !ok {
			m.lastErr = ErrUnsupport
			return 0, ErrUnsupport
		}
		if e = proc.encode(c, payload); e != ErrOK {
			m.lastErr = e
			return 0, e
		}
		if padded != dataLen {
			if e = c.writeU8(0); e != ErrOK {
				m.lastErr = e
				return 0, e
			}
		}
	}
	m.lastErr = ErrOK
	return total, ErrOK
}

// Parse decodes a received management message. On success m.data holds
// the typed payload (retrieve it with Payload[T]); on
// MANAGEMENT_ERROR_STATUS it instead populates errID/errDisplay and
// returns MSG (spec.md §4.5 step 5).
func (m *Message) Parse(buf []byte) MNGError {
	m.data, m.errID, m.errDisplay = nil, 0, ""
	c := newCursor(buf)
	hdr, e := decodePTPHeader(c)
	if e != ErrOK {
		m.lastErr = e
		return e
	}
	if int(hdr.MessageLength) > len(buf) {
		m.lastErr = ErrSizeMiss
		return ErrSizeMiss
	}
	m.TransportSpecific = hdr.TransportSpecific
	m.DomainNumber = hdr.DomainNumber
	m.Unicast = hdr.FlagField[0]&FLAG_UNICAST != 0
	m.SourcePortIdentity = hdr.SourcePortIdentity
	m.SequenceID = hdr.SequenceID

	if c.remaining() < managementHeaderLen {
		m.lastErr = ErrTooSmall
		return ErrTooSmall
	}
	target, e := decodePortIdentity(c)
	if e != ErrOK {
		m.lastErr = e
		return e
	}
	m.TargetPortIdentity = target
	m.allPorts = target == AllPortsPortIdentity
	if _, e = c.readU8(); e != ErrOK { // startingBoundaryHops, informational only
		m.lastErr = e
		return e
	}
	if m.BoundaryHops, e = c.readU8(); e != ErrOK {
		m.lastErr = e
		return e
	}
	actByte, e := c.readU8()
	if e != ErrOK {
		m.lastErr = e
		return e
	}
	m.action = Action(actByte & 0x0f)
	if _, e = c.readU8(); e != ErrOK {
		m.lastErr = e
		return e
	}

	if c.remaining() < tlvHeaderLen {
		m.lastErr = ErrTooSmall
		return ErrTooSmall
	}
	tlvType, e := c.readU16()
	if e != ErrOK {
		m.lastErr = e
		return e
	}
	tlvLen, e := c.readU16()
	if e != ErrOK {
		m.lastErr = e
		return e
	}
	if c.remaining() < int(tlvLen) {
		m.lastErr = ErrTooSmall
		return ErrTooSmall
	}

	switch tlvType {
	case TLV_MANAGEMENT_ERROR_STATUS:
		return m.parseErrorStatus(c, int(tlvLen))
	case TLV_MANAGEMENT:
		return m.parseManagement(c, int(tlvLen))
	default:
		m.lastErr = ErrInvalidTLV
		return ErrInvalidTLV
	}
}

func (m *Message) parseErrorStatus(c *cursor, tlvLen int) MNGError {
	if tlvLen < 4 {
		m.lastErr = ErrSizeMiss
		return ErrSizeMiss
	}
	start := c.pos
	errID, e := c.readU16()
	if e != ErrOK {
		m.lastErr = e
		return e
	}
	id, e := c.readU16()
	if e != ErrOK {
		m.lastErr = e
		return e
	}
	m.id = ManagementId(id)
	m.errID = ManagementErrorId(errID)
	remaining := tlvLen - (c.pos - start)
	if remaining > 0 {
		text, e := decodePTPText(c)
		if e != ErrOK {
			m.lastErr = e
			return e
		}
		m.errDisplay = text.Text
	}
	m.lastErr = ErrMSG
	return ErrMSG
}

func (m *Message) parseManagement(c *cursor, tlvLen int) MNGError {
	if tlvLen < 2 {
		m.lastErr = ErrSizeMiss
		return ErrSizeMiss
	}
	id, e := c.readU16()
	if e != ErrOK {
		m.lastErr = e
		return e
	}
	m.id = ManagementId(id)
	if !allowedAction(m.id, m.action) {
		m.lastErr = ErrAction
		return ErrAction
	}
	dataLen := tlvLen - 2
	if dataLen == 0 {
		// A GET names its ID with no dataField (BuildInto never sends one),
		// so an empty TLV is legal for a GET of any ID.
		if !isEmpty(m.id) && m.action != GET {
			m.lastErr = ErrSizeMiss
			return ErrSizeMiss
		}
		m.lastErr = ErrOK
		return ErrOK
	}
	entry, ok := entryFor(m.id)
	if !ok {
		m.lastErr = ErrInvalidID
		return ErrInvalidID
	}
	if entry.declaredSize == unsupportedSize {
		m.lastErr = ErrUnsupport
		return ErrUnsupport
	}
	// A fixed-size ID's TLV may carry one extra pad byte over the
	// registered logical size (spec.md §4.4); a variable-size ID's TLV
	// length is handed to the proc as-is, and the proc may stop one pad
	// byte short of it (checked below).
	logicalLen := dataLen
	if entry.declaredSize >= 0 {
		if dataLen != entry.declaredSize && dataLen != padToEven(entry.declaredSize) {
			m.lastErr = ErrSizeMiss
			return ErrSizeMiss
		}
		logicalLen = entry.declaredSize
	}
	proc, ok := procFor(m.id)
	if !ok {
		m.lastErr = ErrUnsupport
		return ErrUnsupport
	}
	start := c.pos
	payload, e := proc.decode(c, logicalLen)
	if e != ErrOK {
		m.lastErr = e
		return e
	}
	consumed := c.pos - start
	if entry.declaredSize >= 0 && dataLen > consumed {
		// skip the uniform pad byte the encoder appended
		if _, e = c.readBytes(dataLen - consumed); e != ErrOK {
			m.lastErr = e
			return e
		}
	} else if entry.declaredSize == variableSize && consumed != dataLen {
		// only the uniform pad byte after an odd-length dataField may be
		// left over; anything else is a length mismatch
		if padToEven(consumed) != dataLen {
			m.lastErr = ErrSizeMiss
			return ErrSizeMiss
		}
		if _, e = c.readBytes(dataLen - consumed); e != ErrOK {
			m.lastErr = e
			return e
		}
	}
	m.data = payload
	m.lastErr = ErrOK
	return ErrOK
}

// ID returns the management ID the last Build or successful Parse used.
func (m *Message) ID() ManagementId { return m.id }

// Action returns the actionField the last Build or successful Parse used.
func (m *Message) Action() Action { return m.action }
