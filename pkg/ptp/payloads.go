package ptp

// This file declares one exported Go type per management-ID payload shape
// (spec.md §4.4 "per-ID procs"). Scalar shapes that repeat across many
// IDs (a single value plus the generic odd-length pad byte) share a
// handful of small wrapper types instead of one struct apiece, mirroring
// linuxptp's own reuse of `struct management_tlv_datum` across PRIORITY1,
// PRIORITY2, DOMAIN, and friends.

// Uint8Value wraps a single unsigned byte payload (PRIORITY1, PRIORITY2,
// DOMAIN, VERSION_NUMBER, PRIMARY_DOMAIN, DELAY_MECHANISM,
// ANNOUNCE_RECEIPT_TIMEOUT, ALTERNATE_TIME_OFFSET_MAX_KEY,
// SYNCHRONIZATION_UNCERTAIN_NP).
type Uint8Value struct{ Value uint8 }

// Int8Value wraps a single signed byte payload (LOG_ANNOUNCE_INTERVAL,
// LOG_SYNC_INTERVAL, LOG_MIN_PDELAY_REQ_INTERVAL).
type Int8Value struct{ Value int8 }

// BoolValue wraps a single boolean-as-byte payload (SLAVE_ONLY,
// UNICAST_NEGOTIATION_ENABLE, PATH_TRACE_ENABLE,
// ACCEPTABLE_MASTER_TABLE_ENABLED).
type BoolValue struct{ Value bool }

// ClockAccuracyValue wraps CLOCK_ACCURACY's payload.
type ClockAccuracyValue struct{ Value ClockAccuracy }

// Uint16Value wraps an exact 2-byte unsigned payload
// (UNICAST_MASTER_MAX_TABLE_SIZE, ACCEPTABLE_MASTER_MAX_TABLE_SIZE,
// INITIALIZE's initializationKey).
type Uint16Value struct{ Value uint16 }

// TextValue wraps a lone PTPText payload (USER_DESCRIPTION).
type TextValue struct{ Text PTPText }

// TimestampValue wraps a lone Timestamp payload (TIME).
type TimestampValue struct{ Value Timestamp }

// DefaultDataSet is the DEFAULT_DATA_SET payload.
type DefaultDataSet struct {
	TwoStepFlag   bool
	SlaveOnly     bool
	NumberPorts   uint16
	Priority1     uint8
	ClockQuality  ClockQuality
	Priority2     uint8
	ClockIdentity ClockIdentity
	DomainNumber  uint8
}

// CurrentDataSet is the CURRENT_DATA_SET payload.
type CurrentDataSet struct {
	StepsRemoved     uint16
	OffsetFromMaster TimeInterval
	MeanPathDelay    TimeInterval
}

// ParentDataSet is the PARENT_DATA_SET payload.
type ParentDataSet struct {
	ParentPortIdentity                    PortIdentity
	ParentStats                           bool
	ObservedParentOffsetScaledLogVariance uint16
	ObservedParentClockPhaseChangeRate    int32
	GrandmasterPriority1                  uint8
	GrandmasterClockQuality               ClockQuality
	GrandmasterPriority2                  uint8
	GrandmasterIdentity                   ClockIdentity
}

// TimePropertiesDataSet is the TIME_PROPERTIES_DATA_SET payload.
type TimePropertiesDataSet struct {
	CurrentUtcOffset      int16
	CurrentUtcOffsetValid bool
	Leap59                bool
	Leap61                bool
	TimeTraceable         bool
	FrequencyTraceable    bool
	PtpTimescale          bool
	TimeSource            TimeSource
}

// PortDataSet is the PORT_DATA_SET payload.
type PortDataSet struct {
	PortIdentity            PortIdentity
	PortState               PortState
	LogMinDelayReqInterval  int8
	PeerMeanPathDelay       TimeInterval
	LogAnnounceInterval     int8
	AnnounceReceiptTimeout  uint8
	LogSyncInterval         int8
	DelayMechanism          uint8
	LogMinPdelayReqInterval int8
	VersionNumber           uint8
}

// ClockDescription is the CLOCK_DESCRIPTION payload.
type ClockDescription struct {
	ClockType              ClockType
	PhysicalLayerProtocol  PTPText
	PhysicalAddress        []byte
	ProtocolAddress        PortAddress
	ManufacturerIdentity   [3]byte
	ProductDescription     PTPText
	RevisionData           PTPText
	UserDescription        PTPText
	ProfileIdentity        [6]byte
}

// FaultLog is the FAULT_LOG payload.
type FaultLog struct {
	FaultRecords []FaultRecord
}

// PathTraceList is the PATH_TRACE_LIST payload: the standard defines no
// explicit count field, the array simply fills the TLV.
type PathTraceList struct {
	PathSequence []ClockIdentity
}

// AcceptableMasterTable is the ACCEPTABLE_MASTER_TABLE payload.
type AcceptableMasterTable struct {
	Entries []AcceptableMaster
}

// UnicastMasterTable is the UNICAST_MASTER_TABLE payload.
type UnicastMasterTable struct {
	LogQueryInterval uint8
	PortAddresses    []PortAddress
}

// GrandmasterClusterTable is the GRANDMASTER_CLUSTER_TABLE payload.
type GrandmasterClusterTable struct {
	LogQueryInterval uint8
	PortAddresses    []PortAddress
}

// AlternateMaster is the ALTERNATE_MASTER payload.
type AlternateMaster struct {
	TransportSpecific              uint8
	LogAlternateMulticastSyncInterval int8
	NumberOfAlternateMasters       uint8
}

// AlternateTimeOffsetEnable is the ALTERNATE_TIME_OFFSET_ENABLE payload.
type AlternateTimeOffsetEnable struct {
	KeyField uint8
	Enable   bool
}

// AlternateTimeOffsetName is the ALTERNATE_TIME_OFFSET_NAME payload.
type AlternateTimeOffsetName struct {
	KeyField    uint8
	DisplayName PTPText
}

// AlternateTimeOffsetProperties is the ALTERNATE_TIME_OFFSET_PROPERTIES payload.
type AlternateTimeOffsetProperties struct {
	KeyField      uint8
	CurrentOffset int32
	JumpSeconds   int32
	TimeOfNextJump int64 // low 48 bits significant
}

// UtcProperties is the UTC_PROPERTIES payload.
type UtcProperties struct {
	CurrentUtcOffset      int16
	CurrentUtcOffsetValid bool
	Leap59                bool
	Leap61                bool
}

// TransparentClockDefaultDataSet is the TRANSPARENT_CLOCK_DEFAULT_DATA_SET payload.
type TransparentClockDefaultDataSet struct {
	ClockIdentity  ClockIdentity
	NumberPorts    uint16
	DelayMechanism uint8
	PrimaryDomain  uint8
}

// TransparentClockPortDataSet is the TRANSPARENT_CLOCK_PORT_DATA_SET payload.
type TransparentClockPortDataSet struct {
	PortIdentity            PortIdentity
	LogMinPdelayReqInterval int8
	PeerMeanPathDelay       TimeInterval
}

// TimeStatusNP is the linuxptp TIME_STATUS_NP payload.
type TimeStatusNP struct {
	MasterOffset               int64
	IngressTime                int64
	CumulativeScaledRateOffset int32
	ScaledLastGmPhaseChange    int32
	GmTimeBaseIndicator        uint16
	LastGmPhaseChange          [8]byte
	GmPresent                  bool
	GmIdentity                 ClockIdentity
}

// GrandmasterSettingsNP is the linuxptp GRANDMASTER_SETTINGS_NP payload.
type GrandmasterSettingsNP struct {
	ClockQuality ClockQuality
	UtcOffset    int16
	TimeFlags    uint8
	TimeSource   TimeSource
}

// PortDataSetNP is the linuxptp PORT_DATA_SET_NP payload.
type PortDataSetNP struct {
	NeighborPropDelayThresh uint32
	AsCapable               int32
}

// SubscribeEventsNP is the linuxptp SUBSCRIBE_EVENTS_NP payload.
type SubscribeEventsNP struct {
	Duration uint16
	Bitmask  [64]byte
}

// PortPropertiesNP is the linuxptp PORT_PROPERTIES_NP payload.
type PortPropertiesNP struct {
	PortIdentity PortIdentity
	PortState    PortState
	Timestamping TimestampKind
	Interface    PTPText
}

// PortStats is the per-message-type counter vector of PORT_STATS_NP, on the
// wire in little-endian order (spec.md §4.4 "special cases").
type PortStats struct {
	RxMsgType [16]uint64
	TxMsgType [16]uint64
}

// PortStatsNP is the linuxptp PORT_STATS_NP payload.
type PortStatsNP struct {
	PortIdentity PortIdentity
	PortStats    PortStats
}

// PortServiceStatsNP is the linuxptp PORT_SERVICE_STATS_NP payload.
type PortServiceStatsNP struct {
	PortIdentity           PortIdentity
	AnnounceTimeout        uint64
	SyncTimeout            uint64
	DelayTimeout           uint64
	UnicastServiceTimeout  uint64
	UnicastRequestTimeout  uint64
	PortDisableTimeout     uint64
}

// UnicastMasterEntryNP is one entry of UNICAST_MASTER_TABLE_NP.
type UnicastMasterEntryNP struct {
	PortIdentity PortIdentity
	ClockQuality ClockQuality
	Selected     bool
}

// UnicastMasterTableNP is the linuxptp UNICAST_MASTER_TABLE_NP payload.
type UnicastMasterTableNP struct {
	Entries []UnicastMasterEntryNP
}

// PortHardwareClockNP is the linuxptp PORT_HWCLOCK_NP payload.
type PortHardwareClockNP struct {
	PortIdentity PortIdentity
	PhcIndex     int32
}

// PowerProfileSettingsNP is the linuxptp POWER_PROFILE_SETTINGS_NP payload.
type PowerProfileSettingsNP struct {
	Version                    uint16
	GrandmasterID              uint16
	GrandmasterTimeInaccuracy  uint32
	NetworkTimeInaccuracy      uint32
	TotalTimeInaccuracy        uint32
}

// CmldsInfoNP is the linuxptp CMLDS_INFO_NP payload.
type CmldsInfoNP struct {
	MeanLinkDelay          TimeInterval
	ScaledNeighborRateRatio int32
	AsCapable              bool
}

// ExternalGrandmasterPropertiesNP is the linuxptp
// EXTERNAL_GRANDMASTER_PROPERTIES_NP payload.
type ExternalGrandmasterPropertiesNP struct {
	GmIdentity   ClockIdentity
	StepsRemoved uint16
}
