package ptp

// PTP protocol version and message-type constants (IEEE 1588-2008/2019).
const (
	PTPMajorVersion = 2
	PTPMinorVersion = 0

	majorSdoIDMask = 0x0f
	messageTypeMgmt = 0x0d
)

// Message types (messageType nibble of byte 0).
const (
	SYNC                  = 0x0
	DELAY_REQ             = 0x1
	PDELAY_REQ            = 0x2
	PDELAY_RESP           = 0x3
	FOLLOW_UP             = 0x8
	DELAY_RESP            = 0x9
	PDELAY_RESP_FOLLOW_UP = 0xA
	ANNOUNCE              = 0xB
	SIGNALING             = 0xC
	MANAGEMENT            = 0xD
)

// Action is the actionField of a management message (spec.md §3).
type Action uint8

const (
	GET Action = iota
	SET
	RESPONSE
	COMMAND
	ACKNOWLEDGE
)

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "UNKNOWN_ACTION"
}

var actionNames = map[Action]string{
	GET:         "GET",
	SET:         "SET",
	RESPONSE:    "RESPONSE",
	COMMAND:     "COMMAND",
	ACKNOWLEDGE: "ACKNOWLEDGE",
}

// allowAction bitmask values; combined in an idEntry.allowedActions.
const (
	allowGET     = 1 << 0
	allowSET     = 1 << 1
	allowCOMMAND = 1 << 2
)

// ManagementId identifies which parameter a management TLV addresses.
type ManagementId uint16

// Standard IEEE 1588 management IDs.
const (
	NULL_MANAGEMENT                    ManagementId = 0x0000
	CLOCK_DESCRIPTION                  ManagementId = 0x0001
	USER_DESCRIPTION                   ManagementId = 0x0002
	SAVE_IN_NON_VOLATILE_STORAGE       ManagementId = 0x0003
	RESET_NON_VOLATILE_STORAGE         ManagementId = 0x0004
	INITIALIZE                         ManagementId = 0x0005
	FAULT_LOG                          ManagementId = 0x0006
	FAULT_LOG_RESET                    ManagementId = 0x0007
	DEFAULT_DATA_SET                   ManagementId = 0x2000
	CURRENT_DATA_SET                   ManagementId = 0x2001
	PARENT_DATA_SET                    ManagementId = 0x2002
	TIME_PROPERTIES_DATA_SET           ManagementId = 0x2003
	PORT_DATA_SET                      ManagementId = 0x2004
	PRIORITY1                          ManagementId = 0x2005
	PRIORITY2                          ManagementId = 0x2006
	DOMAIN                             ManagementId = 0x2007
	SLAVE_ONLY                         ManagementId = 0x2008
	LOG_ANNOUNCE_INTERVAL              ManagementId = 0x2009
	ANNOUNCE_RECEIPT_TIMEOUT           ManagementId = 0x200A
	LOG_SYNC_INTERVAL                  ManagementId = 0x200B
	VERSION_NUMBER                     ManagementId = 0x200C
	ENABLE_PORT                        ManagementId = 0x200D
	DISABLE_PORT                       ManagementId = 0x200E
	TIME                               ManagementId = 0x200F
	CLOCK_ACCURACY                     ManagementId = 0x2010
	UTC_PROPERTIES                     ManagementId = 0x2011
	TRACEABILITY_PROPERTIES            ManagementId = 0x2012
	TIMESCALE_PROPERTIES               ManagementId = 0x2013
	UNICAST_NEGOTIATION_ENABLE         ManagementId = 0x2014
	PATH_TRACE_LIST                    ManagementId = 0x2015
	PATH_TRACE_ENABLE                  ManagementId = 0x2016
	GRANDMASTER_CLUSTER_TABLE          ManagementId = 0x2017
	UNICAST_MASTER_TABLE               ManagementId = 0x2018
	UNICAST_MASTER_MAX_TABLE_SIZE      ManagementId = 0x2019
	ACCEPTABLE_MASTER_TABLE            ManagementId = 0x201A
	ACCEPTABLE_MASTER_TABLE_ENABLED    ManagementId = 0x201B
	ACCEPTABLE_MASTER_MAX_TABLE_SIZE   ManagementId = 0x201C
	ALTERNATE_MASTER                   ManagementId = 0x201D
	ALTERNATE_TIME_OFFSET_ENABLE       ManagementId = 0x201E
	ALTERNATE_TIME_OFFSET_NAME         ManagementId = 0x201F
	ALTERNATE_TIME_OFFSET_MAX_KEY      ManagementId = 0x2020
	ALTERNATE_TIME_OFFSET_PROPERTIES   ManagementId = 0x2021
	TRANSPARENT_CLOCK_DEFAULT_DATA_SET ManagementId = 0x4000
	TRANSPARENT_CLOCK_PORT_DATA_SET    ManagementId = 0x4001
	PRIMARY_DOMAIN                     ManagementId = 0x4002
	DELAY_MECHANISM                    ManagementId = 0x6000
	LOG_MIN_PDELAY_REQ_INTERVAL        ManagementId = 0x6001
)

// Non-standard (linuxptp implementation-specific) management IDs, 0xC000-0xDFFF.
const (
	TIME_STATUS_NP                      ManagementId = 0xC000
	GRANDMASTER_SETTINGS_NP             ManagementId = 0xC001
	PORT_DATA_SET_NP                    ManagementId = 0xC002
	SUBSCRIBE_EVENTS_NP                 ManagementId = 0xC003
	PORT_PROPERTIES_NP                  ManagementId = 0xC004
	PORT_STATS_NP                       ManagementId = 0xC005
	SYNCHRONIZATION_UNCERTAIN_NP        ManagementId = 0xC006
	PORT_SERVICE_STATS_NP               ManagementId = 0xC007
	UNICAST_MASTER_TABLE_NP             ManagementId = 0xC009
	PORT_HWCLOCK_NP                     ManagementId = 0xC00A
	POWER_PROFILE_SETTINGS_NP           ManagementId = 0xC00B
	CMLDS_INFO_NP                       ManagementId = 0xC00C
	EXTERNAL_GRANDMASTER_PROPERTIES_NP  ManagementId = 0xC00D
)

// ManagementErrorId is the errorId of a MANAGEMENT_ERROR_STATUS TLV.
type ManagementErrorId uint16

const (
	RESPONSE_TOO_BIG ManagementErrorId = 0x0001
	NO_SUCH_ID       ManagementErrorId = 0x0002
	WRONG_LENGTH     ManagementErrorId = 0x0003
	WRONG_VALUE      ManagementErrorId = 0x0004
	NOT_SETABLE      ManagementErrorId = 0x0005
	NOT_SUPPORTED    ManagementErrorId = 0x0006
	GENERAL_ERROR    ManagementErrorId = 0xfffe
)

func (e ManagementErrorId) String() string {
	if s, ok := errIdNames[e]; ok {
		return s
	}
	return "UNKNOWN_ERROR"
}

var errIdNames = map[ManagementErrorId]string{
	RESPONSE_TOO_BIG: "RESPONSE_TOO_BIG",
	NO_SUCH_ID:       "NO_SUCH_ID",
	WRONG_LENGTH:     "WRONG_LENGTH",
	WRONG_VALUE:      "WRONG_VALUE",
	NOT_SETABLE:      "NOT_SETABLE",
	NOT_SUPPORTED:    "NOT_SUPPORTED",
	GENERAL_ERROR:    "GENERAL_ERROR",
}

// NetworkProtocol identifies the transport a PortAddress refers to.
type NetworkProtocol uint16

const (
	UDP_IPv4   NetworkProtocol = 1
	UDP_IPv6   NetworkProtocol = 2
	IEEE_802_3 NetworkProtocol = 3
	DeviceNet  NetworkProtocol = 4
	ControlNet NetworkProtocol = 5
	PROFINET   NetworkProtocol = 6
)

var netProtoNames = map[NetworkProtocol]string{
	UDP_IPv4:   "UDP_IPv4",
	UDP_IPv6:   "UDP_IPv6",
	IEEE_802_3: "IEEE_802_3",
	DeviceNet:  "DeviceNet",
	ControlNet: "ControlNet",
	PROFINET:   "PROFINET",
}

func (p NetworkProtocol) String() string {
	if s, ok := netProtoNames[p]; ok {
		return s
	}
	return "UNKNOWN_PROTOCOL"
}

// ClockAccuracy is a discrete accuracy code; only the values below are legal.
type ClockAccuracy uint8

const (
	Accurate_within_1ps   ClockAccuracy = 0x17
	Accurate_within_2_5ps ClockAccuracy = 0x18
	Accurate_within_10ps  ClockAccuracy = 0x19
	Accurate_within_25ps  ClockAccuracy = 0x1a
	Accurate_within_100ps ClockAccuracy = 0x1b
	Accurate_within_250ps ClockAccuracy = 0x1c
	Accurate_within_1ns   ClockAccuracy = 0x1d
	Accurate_within_2_5ns ClockAccuracy = 0x1e
	Accurate_within_10ns  ClockAccuracy = 0x1f
	Accurate_within_25ns  ClockAccuracy = 0x20
	Accurate_within_100ns ClockAccuracy = 0x21
	Accurate_within_250ns ClockAccuracy = 0x22
	Accurate_within_1us   ClockAccuracy = 0x23
	Accurate_within_2_5us ClockAccuracy = 0x24
	Accurate_within_10us  ClockAccuracy = 0x25
	Accurate_within_25us  ClockAccuracy = 0x26
	Accurate_within_100us ClockAccuracy = 0x27
	Accurate_within_250us ClockAccuracy = 0x28
	Accurate_within_1ms   ClockAccuracy = 0x29
	Accurate_within_2_5ms ClockAccuracy = 0x2a
	Accurate_within_10ms  ClockAccuracy = 0x2b
	Accurate_within_25ms  ClockAccuracy = 0x2c
	Accurate_within_100ms ClockAccuracy = 0x2d
	Accurate_within_250ms ClockAccuracy = 0x2e
	Accurate_within_1s    ClockAccuracy = 0x2f
	Accurate_within_10s   ClockAccuracy = 0x30
	Accurate_more_10s     ClockAccuracy = 0x31
	Accurate_Unknown      ClockAccuracy = 0xef
)

// Valid reports whether a is one of the discrete codes the standard defines.
func (a ClockAccuracy) Valid() bool {
	if a == Accurate_Unknown {
		return true
	}
	return a >= Accurate_within_1ps && a <= Accurate_more_10s
}

var clockAccNames = map[ClockAccuracy]string{
	Accurate_within_1ps: "Accurate_within_1ps", Accurate_within_2_5ps: "Accurate_within_2_5ps",
	Accurate_within_10ps: "Accurate_within_10ps", Accurate_within_25ps: "Accurate_within_25ps",
	Accurate_within_100ps: "Accurate_within_100ps", Accurate_within_250ps: "Accurate_within_250ps",
	Accurate_within_1ns: "Accurate_within_1ns", Accurate_within_2_5ns: "Accurate_within_2_5ns",
	Accurate_within_10ns: "Accurate_within_10ns", Accurate_within_25ns: "Accurate_within_25ns",
	Accurate_within_100ns: "Accurate_within_100ns", Accurate_within_250ns: "Accurate_within_250ns",
	Accurate_within_1us: "Accurate_within_1us", Accurate_within_2_5us: "Accurate_within_2_5us",
	Accurate_within_10us: "Accurate_within_10us", Accurate_within_25us: "Accurate_within_25us",
	Accurate_within_100us: "Accurate_within_100us", Accurate_within_250us: "Accurate_within_250us",
	Accurate_within_1ms: "Accurate_within_1ms", Accurate_within_2_5ms: "Accurate_within_2_5ms",
	Accurate_within_10ms: "Accurate_within_10ms", Accurate_within_25ms: "Accurate_within_25ms",
	Accurate_within_100ms: "Accurate_within_100ms", Accurate_within_250ms: "Accurate_within_250ms",
	Accurate_within_1s: "Accurate_within_1s", Accurate_within_10s: "Accurate_within_10s",
	Accurate_more_10s: "Accurate_more_10s", Accurate_Unknown: "Accurate_Unknown",
}

func (a ClockAccuracy) String() string {
	if s, ok := clockAccNames[a]; ok {
		return s
	}
	return "UNKNOWN_ACCURACY"
}

// FaultRecordSeverity is the severityCode field of a FaultRecord.
type FaultRecordSeverity uint8

const (
	Emergency     FaultRecordSeverity = 0
	Alert         FaultRecordSeverity = 1
	Critical      FaultRecordSeverity = 2
	Error         FaultRecordSeverity = 3
	Warning       FaultRecordSeverity = 4
	Notice        FaultRecordSeverity = 5
	Informational FaultRecordSeverity = 6
	Debug         FaultRecordSeverity = 7
)

var faultSevNames = map[FaultRecordSeverity]string{
	Emergency: "Emergency", Alert: "Alert", Critical: "Critical", Error: "Error",
	Warning: "Warning", Notice: "Notice", Informational: "Informational", Debug: "Debug",
}

func (s FaultRecordSeverity) String() string {
	if v, ok := faultSevNames[s]; ok {
		return v
	}
	return "UNKNOWN_SEVERITY"
}

// TimeSource identifies the origin of a grandmaster's time.
type TimeSource uint8

const (
	ATOMIC_CLOCK        TimeSource = 0x10
	GNSS                TimeSource = 0x20
	TERRESTRIAL_RADIO   TimeSource = 0x30
	SERIAL_TIME_CODE    TimeSource = 0x39
	PTP                 TimeSource = 0x40
	NTP                 TimeSource = 0x50
	HAND_SET            TimeSource = 0x60
	OTHER               TimeSource = 0x90
	INTERNAL_OSCILLATOR TimeSource = 0xA0
)

// GPS is the "IEEE Std 1588-2008" keyword for GNSS, kept as a documented alias.
const GPS = GNSS

var timeSourceNames = map[TimeSource]string{
	ATOMIC_CLOCK: "ATOMIC_CLOCK", GNSS: "GNSS", TERRESTRIAL_RADIO: "TERRESTRIAL_RADIO",
	SERIAL_TIME_CODE: "SERIAL_TIME_CODE", PTP: "PTP", NTP: "NTP", HAND_SET: "HAND_SET",
	OTHER: "OTHER", INTERNAL_OSCILLATOR: "INTERNAL_OSCILLATOR",
}

func (t TimeSource) String() string {
	if s, ok := timeSourceNames[t]; ok {
		return s
	}
	return "UNKNOWN_TIME_SOURCE"
}

// PortState is the portState field of a PortDataSet / PORT_DATA_SET_NP.
type PortState uint8

const (
	PS_INITIALIZING PortState = 1 + iota
	PS_FAULTY
	PS_DISABLED
	PS_LISTENING
	PS_PRE_MASTER
	PS_MASTER
	PS_PASSIVE
	PS_UNCALIBRATED
	PS_SLAVE
)

// PS_CLIENT is the linuxptp terminology alias for PS_SLAVE.
const PS_CLIENT = PS_SLAVE

var portStateNames = map[PortState]string{
	PS_INITIALIZING: "INITIALIZING", PS_FAULTY: "FAULTY", PS_DISABLED: "DISABLED",
	PS_LISTENING: "LISTENING", PS_PRE_MASTER: "PRE_MASTER", PS_MASTER: "MASTER",
	PS_PASSIVE: "PASSIVE", PS_UNCALIBRATED: "UNCALIBRATED", PS_SLAVE: "SLAVE",
}

func (p PortState) String() string {
	if s, ok := portStateNames[p]; ok {
		return s
	}
	return "UNKNOWN_STATE"
}

// TimestampKind is linuxptp's timestamping-mode enum (not on the wire as a
// standalone value; it is the low byte of PORT_PROPERTIES_NP.Timestamping).
type TimestampKind uint8

const (
	TS_SOFTWARE TimestampKind = iota
	TS_HARDWARE
	TS_LEGACY_HW
	TS_ONESTEP
	TS_P2P1STEP
)

var tsKindNames = map[TimestampKind]string{
	TS_SOFTWARE: "SOFTWARE", TS_HARDWARE: "HARDWARE", TS_LEGACY_HW: "LEGACY_HW",
	TS_ONESTEP: "ONESTEP", TS_P2P1STEP: "P2P1STEP",
}

func (t TimestampKind) String() string {
	if s, ok := tsKindNames[t]; ok {
		return s
	}
	return "UNKNOWN_TS_KIND"
}

// ClockType is a bitmask describing which roles a clockDescription belongs to.
type ClockType uint16

const (
	OrdinaryClock       ClockType = 0x8000
	BoundaryClock       ClockType = 0x4000
	P2pTransparentClock ClockType = 0x2000
	E2eTransparentClock ClockType = 0x1000
	ManagementClock     ClockType = 0x0800
)

// TLV types carried in the management message's TLV envelope.
const (
	TLV_MANAGEMENT               uint16 = 0x0001
	TLV_MANAGEMENT_ERROR_STATUS  uint16 = 0x0002
	TLV_ORGANIZATION_EXTENSION   uint16 = 0x0003
	TLV_PATH_TRACE               uint16 = 0x0008
)

// Flags bits, byte index 1 of the two-byte flagField.
const (
	FLAG_LEAP_61        = 1 << 0
	FLAG_LEAP_59        = 1 << 1
	FLAG_UTC_OFF_VALID  = 1 << 2
	FLAG_PTP_TIMESCALE  = 1 << 3
	FLAG_TIME_TRACEABLE = 1 << 4
	FLAG_FREQ_TRACEABLE = 1 << 5

	FLAG_UNICAST = 1 << 2 // flagField byte index 0
)

// linuxptp SUBSCRIBE_EVENTS_NP notification bitmask (notification.h).
const (
	NOTIFY_PORT_STATE      = 1 << 0
	NOTIFY_TIME_SYNC       = 1 << 1
	NOTIFY_PARENT_DATA_SET = 1 << 2
)

func isLI61(flags uint8) bool  { return flags&FLAG_LEAP_61 != 0 }
func isLI59(flags uint8) bool  { return flags&FLAG_LEAP_59 != 0 }
func isUTCV(flags uint8) bool  { return flags&FLAG_UTC_OFF_VALID != 0 }
func isPTPts(flags uint8) bool { return flags&FLAG_PTP_TIMESCALE != 0 }
func isTTRA(flags uint8) bool  { return flags&FLAG_TIME_TRACEABLE != 0 }
func isFTRA(flags uint8) bool  { return flags&FLAG_FREQ_TRACEABLE != 0 }
