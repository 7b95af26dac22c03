package ptp

// idProc is the per-ID codec pair described in spec.md §4.4: encode writes
// a typed payload into the cursor, decode reads dataLen bytes back out of
// it. size reports the logical (pre-pad) byte count of a payload for IDs
// whose registry entry is variableSize; fixed-size IDs never call it.
type idProc struct {
	encode func(w *cursor, payload any) MNGError
	decode func(r *cursor, dataLen int) (any, MNGError)
	size   func(payload any) int
}

var procTable = map[ManagementId]idProc{}

func registerProc(id ManagementId, p idProc) { procTable[id] = p }

func procFor(id ManagementId) (idProc, bool) {
	p, ok := procTable[id]
	return p, ok
}

// ---- shared scalar shapes ----

func uint8Proc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*Uint8Value)
			if !ok {
				return ErrVal
			}
			return w.writeU8(v.Value)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			v, e := r.readU8()
			if e != ErrOK {
				return nil, e
			}
			return &Uint8Value{Value: v}, ErrOK
		},
	}
}

func int8Proc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*Int8Value)
			if !ok {
				return ErrVal
			}
			return w.writeI8(v.Value)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			v, e := r.readI8()
			if e != ErrOK {
				return nil, e
			}
			return &Int8Value{Value: v}, ErrOK
		},
	}
}

func boolProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*BoolValue)
			if !ok {
				return ErrVal
			}
			var b uint8
			if v.Value {
				b = 1
			}
			return w.writeU8(b)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			v, e := r.readU8()
			if e != ErrOK {
				return nil, e
			}
			return &BoolValue{Value: v != 0}, ErrOK
		},
	}
}

func clockAccuracyProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*ClockAccuracyValue)
			if !ok || !v.Value.Valid() {
				return ErrVal
			}
			return w.writeU8(uint8(v.Value))
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			v, e := r.readU8()
			if e != ErrOK {
				return nil, e
			}
			acc := ClockAccuracy(v)
			if !acc.Valid() {
				return nil, ErrVal
			}
			return &ClockAccuracyValue{Value: acc}, ErrOK
		},
	}
}

func uint16Proc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*Uint16Value)
			if !ok {
				return ErrVal
			}
			return w.writeU16(v.Value)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			v, e := r.readU16()
			if e != ErrOK {
				return nil, e
			}
			return &Uint16Value{Value: v}, ErrOK
		},
	}
}

func textProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*TextValue)
			if !ok {
				return ErrVal
			}
			return v.Text.encode(w)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			t, e := decodePTPText(r)
			if e != ErrOK {
				return nil, e
			}
			return &TextValue{Text: t}, ErrOK
		},
		size: func(payload any) int {
			v, ok := payload.(*TextValue)
			if !ok {
				return 0
			}
			return v.Text.wireLen()
		},
	}
}

func timestampProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*TimestampValue)
			if !ok {
				return ErrVal
			}
			return v.Value.encode(w)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			t, e := decodeTimestamp(r)
			if e != ErrOK {
				return nil, e
			}
			return &TimestampValue{Value: t}, ErrOK
		},
	}
}

func emptyProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError { return ErrOK },
		decode: func(r *cursor, dataLen int) (any, MNGError) { return nil, ErrOK },
	}
}

func init() {
	registerProc(PRIORITY1, uint8Proc())
	registerProc(PRIORITY2, uint8Proc())
	registerProc(DOMAIN, uint8Proc())
	registerProc(VERSION_NUMBER, uint8Proc())
	registerProc(PRIMARY_DOMAIN, uint8Proc())
	registerProc(DELAY_MECHANISM, uint8Proc())
	registerProc(ANNOUNCE_RECEIPT_TIMEOUT, uint8Proc())
	registerProc(ALTERNATE_TIME_OFFSET_MAX_KEY, uint8Proc())
	registerProc(SYNCHRONIZATION_UNCERTAIN_NP, uint8Proc())

	registerProc(LOG_ANNOUNCE_INTERVAL, int8Proc())
	registerProc(LOG_SYNC_INTERVAL, int8Proc())
	registerProc(LOG_MIN_PDELAY_REQ_INTERVAL, int8Proc())

	registerProc(SLAVE_ONLY, boolProc())
	registerProc(UNICAST_NEGOTIATION_ENABLE, boolProc())
	registerProc(PATH_TRACE_ENABLE, boolProc())
	registerProc(ACCEPTABLE_MASTER_TABLE_ENABLED, boolProc())

	registerProc(CLOCK_ACCURACY, clockAccuracyProc())

	registerProc(UNICAST_MASTER_MAX_TABLE_SIZE, uint16Proc())
	registerProc(ACCEPTABLE_MASTER_MAX_TABLE_SIZE, uint16Proc())
	registerProc(INITIALIZE, uint16Proc())

	registerProc(USER_DESCRIPTION, textProc())

	registerProc(TIME, timestampProc())

	registerProc(NULL_MANAGEMENT, emptyProc())
	registerProc(SAVE_IN_NON_VOLATILE_STORAGE, emptyProc())
	registerProc(RESET_NON_VOLATILE_STORAGE, emptyProc())
	registerProc(FAULT_LOG_RESET, emptyProc())
	registerProc(ENABLE_PORT, emptyProc())
	registerProc(DISABLE_PORT, emptyProc())

	registerProc(DEFAULT_DATA_SET, defaultDataSetProc())
	registerProc(CURRENT_DATA_SET, currentDataSetProc())
	registerProc(PARENT_DATA_SET, parentDataSetProc())
	registerProc(TIME_PROPERTIES_DATA_SET, timePropertiesDataSetProc())
	registerProc(PORT_DATA_SET, portDataSetProc())
	registerProc(CLOCK_DESCRIPTION, clockDescriptionProc())
	registerProc(FAULT_LOG, faultLogProc())
	registerProc(PATH_TRACE_LIST, pathTraceListProc())
	registerProc(ACCEPTABLE_MASTER_TABLE, acceptableMasterTableProc())
	registerProc(UNICAST_MASTER_TABLE, unicastMasterTableProc())
	registerProc(GRANDMASTER_CLUSTER_TABLE, grandmasterClusterTableProc())
	registerProc(ALTERNATE_MASTER, alternateMasterProc())
	registerProc(ALTERNATE_TIME_OFFSET_ENABLE, alternateTimeOffsetEnableProc())
	registerProc(ALTERNATE_TIME_OFFSET_NAME, alternateTimeOffsetNameProc())
	registerProc(ALTERNATE_TIME_OFFSET_PROPERTIES, alternateTimeOffsetPropertiesProc())
	registerProc(UTC_PROPERTIES, utcPropertiesProc())
	registerProc(TRANSPARENT_CLOCK_DEFAULT_DATA_SET, transparentClockDefaultDataSetProc())
	registerProc(TRANSPARENT_CLOCK_PORT_DATA_SET, transparentClockPortDataSetProc())

	registerProc(TIME_STATUS_NP, timeStatusNPProc())
	registerProc(GRANDMASTER_SETTINGS_NP, grandmasterSettingsNPProc())
	registerProc(PORT_DATA_SET_NP, portDataSetNPProc())
	registerProc(SUBSCRIBE_EVENTS_NP, subscribeEventsNPProc())
	registerProc(PORT_PROPERTIES_NP, portPropertiesNPProc())
	registerProc(PORT_STATS_NP, portStatsNPProc())
	registerProc(PORT_SERVICE_STATS_NP, portServiceStatsNPProc())
	registerProc(UNICAST_MASTER_TABLE_NP, unicastMasterTableNPProc())
	registerProc(PORT_HWCLOCK_NP, portHardwareClockNPProc())
	registerProc(POWER_PROFILE_SETTINGS_NP, powerProfileSettingsNPProc())
	registerProc(CMLDS_INFO_NP, cmldsInfoNPProc())
	registerProc(EXTERNAL_GRANDMASTER_PROPERTIES_NP, externalGrandmasterPropertiesNPProc())
}

// ---- DEFAULT_DATA_SET ----

func defaultDataSetProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*DefaultDataSet)
			if !ok {
				return ErrVal
			}
			var flags uint16
			if v.TwoStepFlag {
				flags |= 0x0200
			}
			if v.SlaveOnly {
				flags |= 0x0100
			}
			if e := w.writeU16(flags); e != ErrOK {
				return e
			}
			if e := w.writeU16(v.NumberPorts); e != ErrOK {
				return e
			}
			if e := w.writeU8(v.Priority1); e != ErrOK {
				return e
			}
			if e := v.ClockQuality.encode(w); e != ErrOK {
				return e
			}
			if e := w.writeU8(v.Priority2); e != ErrOK {
				return e
			}
			if e := v.ClockIdentity.encode(w); e != ErrOK {
				return e
			}
			if e := w.writeU8(v.DomainNumber); e != ErrOK {
				return e
			}
			return w.writeU8(0)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v DefaultDataSet
			flags, e := r.readU16()
			if e != ErrOK {
				return nil, e
			}
			v.TwoStepFlag = flags&0x0200 != 0
			v.SlaveOnly = flags&0x0100 != 0
			if v.NumberPorts, e = r.readU16(); e != ErrOK {
				return nil, e
			}
			if v.Priority1, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			if v.ClockQuality, e = decodeClockQuality(r); e != ErrOK {
				return nil, e
			}
			if v.Priority2, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			if v.ClockIdentity, e = decodeClockIdentity(r); e != ErrOK {
				return nil, e
			}
			if v.DomainNumber, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			if _, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			return &v, ErrOK
		},
	}
}

// ---- CURRENT_DATA_SET ----

func currentDataSetProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*CurrentDataSet)
			if !ok {
				return ErrVal
			}
			if e := w.writeU16(v.StepsRemoved); e != ErrOK {
				return e
			}
			if e := v.OffsetFromMaster.encode(w); e != ErrOK {
				return e
			}
			return v.MeanPathDelay.encode(w)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v CurrentDataSet
			var e MNGError
			if v.StepsRemoved, e = r.readU16(); e != ErrOK {
				return nil, e
			}
			if v.OffsetFromMaster, e = decodeTimeInterval(r); e != ErrOK {
				return nil, e
			}
			if v.MeanPathDelay, e = decodeTimeInterval(r); e != ErrOK {
				return nil, e
			}
			return &v, ErrOK
		},
	}
}

// ---- PARENT_DATA_SET ----

func parentDataSetProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*ParentDataSet)
			if !ok {
				return ErrVal
			}
			if e := v.ParentPortIdentity.encode(w); e != ErrOK {
				return e
			}
			var b uint8
			if v.ParentStats {
				b = 1
			}
			if e := w.writeU8(b); e != ErrOK {
				return e
			}
			if e := w.writeU8(0); e != ErrOK {
				return e
			}
			if e := w.writeU16(v.ObservedParentOffsetScaledLogVariance); e != ErrOK {
				return e
			}
			if e := w.writeI32(v.ObservedParentClockPhaseChangeRate); e != ErrOK {
				return e
			}
			if e := w.writeU8(v.GrandmasterPriority1); e != ErrOK {
				return e
			}
			if e := v.GrandmasterClockQuality.encode(w); e != ErrOK {
				return e
			}
			if e := w.writeU8(v.GrandmasterPriority2); e != ErrOK {
				return e
			}
			return v.GrandmasterIdentity.encode(w)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v ParentDataSet
			var e MNGError
			if v.ParentPortIdentity, e = decodePortIdentity(r); e != ErrOK {
				return nil, e
			}
			b, e := r.readU8()
			if e != ErrOK {
				return nil, e
			}
			v.ParentStats = b&0x01 != 0
			if _, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			if v.ObservedParentOffsetScaledLogVariance, e = r.readU16(); e != ErrOK {
				return nil, e
			}
			if v.ObservedParentClockPhaseChangeRate, e = r.readI32(); e != ErrOK {
				return nil, e
			}
			if v.GrandmasterPriority1, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			if v.GrandmasterClockQuality, e = decodeClockQuality(r); e != ErrOK {
				return nil, e
			}
			if v.GrandmasterPriority2, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			if v.GrandmasterIdentity, e = decodeClockIdentity(r); e != ErrOK {
				return nil, e
			}
			return &v, ErrOK
		},
	}
}

// ---- TIME_PROPERTIES_DATA_SET ----

func timePropertiesDataSetProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*TimePropertiesDataSet)
			if !ok {
				return ErrVal
			}
			if e := w.writeI16(v.CurrentUtcOffset); e != ErrOK {
				return e
			}
			var flags uint8
			if v.CurrentUtcOffsetValid {
				flags |= FLAG_UTC_OFF_VALID
			}
			if v.Leap59 {
				flags |= FLAG_LEAP_59
			}
			if v.Leap61 {
				flags |= FLAG_LEAP_61
			}
			if v.TimeTraceable {
				flags |= FLAG_TIME_TRACEABLE
			}
			if v.FrequencyTraceable {
				flags |= FLAG_FREQ_TRACEABLE
			}
			if v.PtpTimescale {
				flags |= FLAG_PTP_TIMESCALE
			}
			if e := w.writeU8(flags); e != ErrOK {
				return e
			}
			return w.writeU8(uint8(v.TimeSource))
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v TimePropertiesDataSet
			off, e := r.readI16()
			if e != ErrOK {
				return nil, e
			}
			v.CurrentUtcOffset = off
			flags, e := r.readU8()
			if e != ErrOK {
				return nil, e
			}
			v.CurrentUtcOffsetValid = isUTCV(flags)
			v.Leap59 = isLI59(flags)
			v.Leap61 = isLI61(flags)
			v.TimeTraceable = isTTRA(flags)
			v.FrequencyTraceable = isFTRA(flags)
			v.PtpTimescale = isPTPts(flags)
			src, e := r.readU8()
			if e != ErrOK {
				return nil, e
			}
			v.TimeSource = TimeSource(src)
			return &v, ErrOK
		},
	}
}

// ---- PORT_DATA_SET ----

func portDataSetProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*PortDataSet)
			if !ok {
				return ErrVal
			}
			if e := v.PortIdentity.encode(w); e != ErrOK {
				return e
			}
			if e := w.writeU8(uint8(v.PortState)); e != ErrOK {
				return e
			}
			if e := w.writeI8(v.LogMinDelayReqInterval); e != ErrOK {
				return e
			}
			if e := v.PeerMeanPathDelay.encode(w); e != ErrOK {
				return e
			}
			if e := w.writeI8(v.LogAnnounceInterval); e != ErrOK {
				return e
			}
			if e := w.writeU8(v.AnnounceReceiptTimeout); e != ErrOK {
				return e
			}
			if e := w.writeI8(v.LogSyncInterval); e != ErrOK {
				return e
			}
			if e := w.writeU8(v.DelayMechanism); e != ErrOK {
				return e
			}
			if e := w.writeI8(v.LogMinPdelayReqInterval); e != ErrOK {
				return e
			}
			return w.writeU8(v.VersionNumber)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v PortDataSet
			var e MNGError
			var st uint8
			if v.PortIdentity, e = decodePortIdentity(r); e != ErrOK {
				return nil, e
			}
			if st, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			v.PortState = PortState(st)
			if v.LogMinDelayReqInterval, e = r.readI8(); e != ErrOK {
				return nil, e
			}
			if v.PeerMeanPathDelay, e = decodeTimeInterval(r); e != ErrOK {
				return nil, e
			}
			if v.LogAnnounceInterval, e = r.readI8(); e != ErrOK {
				return nil, e
			}
			if v.AnnounceReceiptTimeout, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			if v.LogSyncInterval, e = r.readI8(); e != ErrOK {
				return nil, e
			}
			if v.DelayMechanism, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			if v.LogMinPdelayReqInterval, e = r.readI8(); e != ErrOK {
				return nil, e
			}
			if v.VersionNumber, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			return &v, ErrOK
		},
	}
}

// ---- CLOCK_DESCRIPTION ----

func clockDescriptionSize(v *ClockDescription) int {
	return 2 + v.PhysicalLayerProtocol.wireLen() + 2 + len(v.PhysicalAddress) +
		v.ProtocolAddress.wireLen() + 4 + v.ProductDescription.wireLen() +
		v.RevisionData.wireLen() + v.UserDescription.wireLen() + 6
}

func clockDescriptionProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*ClockDescription)
			if !ok {
				return ErrVal
			}
			if e := w.writeU16(uint16(v.ClockType)); e != ErrOK {
				return e
			}
			if e := v.PhysicalLayerProtocol.encode(w); e != ErrOK {
				return e
			}
			if len(v.PhysicalAddress) > 0xffff {
				return ErrVal
			}
			if e := w.writeU16(uint16(len(v.PhysicalAddress))); e != ErrOK {
				return e
			}
			if e := w.writeBytes(v.PhysicalAddress); e != ErrOK {
				return e
			}
			if e := v.ProtocolAddress.encode(w); e != ErrOK {
				return e
			}
			if e := w.writeBytes(v.ManufacturerIdentity[:]); e != ErrOK {
				return e
			}
			if e := w.writeU8(0); e != ErrOK {
				return e
			}
			if e := v.ProductDescription.encode(w); e != ErrOK {
				return e
			}
			if e := v.RevisionData.encode(w); e != ErrOK {
				return e
			}
			if e := v.UserDescription.encode(w); e != ErrOK {
				return e
			}
			return w.writeBytes(v.ProfileIdentity[:])
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v ClockDescription
			var e MNGError
			ct, e := r.readU16()
			if e != ErrOK {
				return nil, e
			}
			v.ClockType = ClockType(ct)
			if v.PhysicalLayerProtocol, e = decodePTPText(r); e != ErrOK {
				return nil, e
			}
			n, e := r.readU16()
			if e != ErrOK {
				return nil, e
			}
			if v.PhysicalAddress, e = r.readBytes(int(n)); e != ErrOK {
				return nil, e
			}
			if v.ProtocolAddress, e = decodePortAddress(r); e != ErrOK {
				return nil, e
			}
			mid, e := r.readBytes(3)
			if e != ErrOK {
				return nil, e
			}
			copy(v.ManufacturerIdentity[:], mid)
			if _, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			if v.ProductDescription, e = decodePTPText(r); e != ErrOK {
				return nil, e
			}
			if v.RevisionData, e = decodePTPText(r); e != ErrOK {
				return nil, e
			}
			if v.UserDescription, e = decodePTPText(r); e != ErrOK {
				return nil, e
			}
			pid, e := r.readBytes(6)
			if e != ErrOK {
				return nil, e
			}
			copy(v.ProfileIdentity[:], pid)
			return &v, ErrOK
		},
		size: func(payload any) int {
			v, ok := payload.(*ClockDescription)
			if !ok {
				return 0
			}
			return clockDescriptionSize(v)
		},
	}
}

// ---- FAULT_LOG ----

// minFaultRecordSize is a FaultRecord's wire size with every PTPText empty
// (faultRecordLength(2) + Timestamp(10) + severityCode(1) + three
// zero-length PTPText fields), the smallest a declared count can bound to.
const minFaultRecordSize = 16

func faultLogProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*FaultLog)
			if !ok {
				return ErrVal
			}
			if len(v.FaultRecords) > 0xffff {
				return ErrVal
			}
			if e := w.writeU16(uint16(len(v.FaultRecords))); e != ErrOK {
				return e
			}
			for _, rec := range v.FaultRecords {
				if e := rec.encode(w); e != ErrOK {
					return e
				}
			}
			return ErrOK
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v FaultLog
			n, e := r.readU16()
			if e != ErrOK {
				return nil, e
			}
			if int(n)*minFaultRecordSize > dataLen-2 {
				return nil, ErrSizeMiss
			}
			v.FaultRecords = make([]FaultRecord, 0, n)
			for i := 0; i < int(n); i++ {
				rec, e := decodeFaultRecord(r)
				if e != ErrOK {
					return nil, e
				}
				v.FaultRecords = append(v.FaultRecords, rec)
			}
			return &v, ErrOK
		},
		size: func(payload any) int {
			v, ok := payload.(*FaultLog)
			if !ok {
				return 0
			}
			n := 2
			for _, rec := range v.FaultRecords {
				n += rec.wireLen()
			}
			return n
		},
	}
}

// ---- PATH_TRACE_LIST ----

func pathTraceListProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*PathTraceList)
			if !ok {
				return ErrVal
			}
			for _, ci := range v.PathSequence {
				if e := ci.encode(w); e != ErrOK {
					return e
				}
			}
			return ErrOK
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			if dataLen%8 != 0 {
				return nil, ErrSizeMiss
			}
			var v PathTraceList
			for n := dataLen / 8; n > 0; n-- {
				ci, e := decodeClockIdentity(r)
				if e != ErrOK {
					return nil, e
				}
				v.PathSequence = append(v.PathSequence, ci)
			}
			return &v, ErrOK
		},
		size: func(payload any) int {
			v, ok := payload.(*PathTraceList)
			if !ok {
				return 0
			}
			return 8 * len(v.PathSequence)
		},
	}
}

// ---- ACCEPTABLE_MASTER_TABLE ----

func acceptableMasterTableProc() idProc {
	const entrySize = 11
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*AcceptableMasterTable)
			if !ok {
				return ErrVal
			}
			if len(v.Entries) > 0xffff {
				return ErrVal
			}
			if e := w.writeU16(uint16(len(v.Entries))); e != ErrOK {
				return e
			}
			for _, m := range v.Entries {
				if e := m.encode(w); e != ErrOK {
					return e
				}
			}
			return ErrOK
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			n, e := r.readU16()
			if e != ErrOK {
				return nil, e
			}
			if int(n)*entrySize > dataLen-2 {
				return nil, ErrSizeMiss
			}
			var v AcceptableMasterTable
			for i := 0; i < int(n); i++ {
				m, e := decodeAcceptableMaster(r)
				if e != ErrOK {
					return nil, e
				}
				v.Entries = append(v.Entries, m)
			}
			return &v, ErrOK
		},
		size: func(payload any) int {
			v, ok := payload.(*AcceptableMasterTable)
			if !ok {
				return 0
			}
			return 2 + entrySize*len(v.Entries)
		},
	}
}

// ---- UNICAST_MASTER_TABLE / GRANDMASTER_CLUSTER_TABLE ----

func portAddressTableProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			logQ, addrs, ok := unwrapPortAddressTable(payload)
			if !ok {
				return ErrVal
			}
			if e := w.writeU8(logQ); e != ErrOK {
				return e
			}
			if len(addrs) > 0xffff {
				return ErrVal
			}
			if e := w.writeU16(uint16(len(addrs))); e != ErrOK {
				return e
			}
			for _, a := range addrs {
				if e := a.encode(w); e != ErrOK {
					return e
				}
			}
			return ErrOK
		},
		size: func(payload any) int {
			_, addrs, ok := unwrapPortAddressTable(payload)
			if !ok {
				return 0
			}
			n := 1 + 2
			for _, a := range addrs {
				n += a.wireLen()
			}
			return n
		},
	}
}

func unwrapPortAddressTable(payload any) (uint8, []PortAddress, bool) {
	switch v := payload.(type) {
	case *UnicastMasterTable:
		return v.LogQueryInterval, v.PortAddresses, true
	case *GrandmasterClusterTable:
		return v.LogQueryInterval, v.PortAddresses, true
	default:
		return 0, nil, false
	}
}

// minPortAddressSize is a PortAddress's wire size with a zero-length
// addressField (networkProtocol(2) + addressLength(2)).
const minPortAddressSize = 4

func decodePortAddressTable(r *cursor, dataLen int) (uint8, []PortAddress, MNGError) {
	logQ, e := r.readU8()
	if e != ErrOK {
		return 0, nil, e
	}
	n, e := r.readU16()
	if e != ErrOK {
		return 0, nil, e
	}
	if int(n)*minPortAddressSize > dataLen-3 {
		return 0, nil, ErrSizeMiss
	}
	addrs := make([]PortAddress, 0, n)
	for i := 0; i < int(n); i++ {
		a, e := decodePortAddress(r)
		if e != ErrOK {
			return 0, nil, e
		}
		addrs = append(addrs, a)
	}
	return logQ, addrs, ErrOK
}

func unicastMasterTableProc() idProc {
	p := portAddressTableProc()
	p.decode = func(r *cursor, dataLen int) (any, MNGError) {
		logQ, addrs, e := decodePortAddressTable(r, dataLen)
		if e != ErrOK {
			return nil, e
		}
		return &UnicastMasterTable{LogQueryInterval: logQ, PortAddresses: addrs}, ErrOK
	}
	return p
}

func grandmasterClusterTableProc() idProc {
	p := portAddressTableProc()
	p.decode = func(r *cursor, dataLen int) (any, MNGError) {
		logQ, addrs, e := decodePortAddressTable(r, dataLen)
		if e != ErrOK {
			return nil, e
		}
		return &GrandmasterClusterTable{LogQueryInterval: logQ, PortAddresses: addrs}, ErrOK
	}
	return p
}

// ---- ALTERNATE_MASTER family ----

func alternateMasterProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*AlternateMaster)
			if !ok {
				return ErrVal
			}
			if e := w.writeU8(v.TransportSpecific); e != ErrOK {
				return e
			}
			if e := w.writeI8(v.LogAlternateMulticastSyncInterval); e != ErrOK {
				return e
			}
			if e := w.writeU8(v.NumberOfAlternateMasters); e != ErrOK {
				return e
			}
			return w.writeU8(0)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v AlternateMaster
			var e MNGError
			if v.TransportSpecific, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			if v.LogAlternateMulticastSyncInterval, e = r.readI8(); e != ErrOK {
				return nil, e
			}
			if v.NumberOfAlternateMasters, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			if _, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			return &v, ErrOK
		},
	}
}

func alternateTimeOffsetEnableProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*AlternateTimeOffsetEnable)
			if !ok {
				return ErrVal
			}
			if e := w.writeU8(v.KeyField); e != ErrOK {
				return e
			}
			var b uint8
			if v.Enable {
				b = 1
			}
			return w.writeU8(b)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v AlternateTimeOffsetEnable
			var e MNGError
			if v.KeyField, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			b, e := r.readU8()
			if e != ErrOK {
				return nil, e
			}
			v.Enable = b != 0
			return &v, ErrOK
		},
	}
}

func alternateTimeOffsetNameProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*AlternateTimeOffsetName)
			if !ok {
				return ErrVal
			}
			if e := w.writeU8(v.KeyField); e != ErrOK {
				return e
			}
			if e := w.writeU8(0); e != ErrOK {
				return e
			}
			return v.DisplayName.encode(w)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v AlternateTimeOffsetName
			var e MNGError
			if v.KeyField, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			if _, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			if v.DisplayName, e = decodePTPText(r); e != ErrOK {
				return nil, e
			}
			return &v, ErrOK
		},
		size: func(payload any) int {
			v, ok := payload.(*AlternateTimeOffsetName)
			if !ok {
				return 0
			}
			return 2 + v.DisplayName.wireLen()
		},
	}
}

func alternateTimeOffsetPropertiesProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*AlternateTimeOffsetProperties)
			if !ok {
				return ErrVal
			}
			if e := w.writeU8(v.KeyField); e != ErrOK {
				return e
			}
			if e := w.writeI32(v.CurrentOffset); e != ErrOK {
				return e
			}
			if e := w.writeI32(v.JumpSeconds); e != ErrOK {
				return e
			}
			return w.writeU48(uint64(v.TimeOfNextJump) & uint48Max)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v AlternateTimeOffsetProperties
			var e MNGError
			if v.KeyField, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			if v.CurrentOffset, e = r.readI32(); e != ErrOK {
				return nil, e
			}
			if v.JumpSeconds, e = r.readI32(); e != ErrOK {
				return nil, e
			}
			jump, e := r.readU48()
			if e != ErrOK {
				return nil, e
			}
			v.TimeOfNextJump = int64(jump)
			return &v, ErrOK
		},
		size: func(payload any) int { return 15 },
	}
}

// ---- UTC_PROPERTIES ----

func utcPropertiesProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*UtcProperties)
			if !ok {
				return ErrVal
			}
			if e := w.writeI16(v.CurrentUtcOffset); e != ErrOK {
				return e
			}
			var flags uint8
			if v.CurrentUtcOffsetValid {
				flags |= FLAG_UTC_OFF_VALID
			}
			if v.Leap59 {
				flags |= FLAG_LEAP_59
			}
			if v.Leap61 {
				flags |= FLAG_LEAP_61
			}
			return w.writeU8(flags)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v UtcProperties
			off, e := r.readI16()
			if e != ErrOK {
				return nil, e
			}
			v.CurrentUtcOffset = off
			flags, e := r.readU8()
			if e != ErrOK {
				return nil, e
			}
			v.CurrentUtcOffsetValid = isUTCV(flags)
			v.Leap59 = isLI59(flags)
			v.Leap61 = isLI61(flags)
			return &v, ErrOK
		},
	}
}

// ---- TRANSPARENT_CLOCK family ----

func transparentClockDefaultDataSetProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*TransparentClockDefaultDataSet)
			if !ok {
				return ErrVal
			}
			if e := v.ClockIdentity.encode(w); e != ErrOK {
				return e
			}
			if e := w.writeU16(v.NumberPorts); e != ErrOK {
				return e
			}
			if e := w.writeU8(v.DelayMechanism); e != ErrOK {
				return e
			}
			return w.writeU8(v.PrimaryDomain)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v TransparentClockDefaultDataSet
			var e MNGError
			if v.ClockIdentity, e = decodeClockIdentity(r); e != ErrOK {
				return nil, e
			}
			if v.NumberPorts, e = r.readU16(); e != ErrOK {
				return nil, e
			}
			if v.DelayMechanism, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			if v.PrimaryDomain, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			return &v, ErrOK
		},
	}
}

func transparentClockPortDataSetProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*TransparentClockPortDataSet)
			if !ok {
				return ErrVal
			}
			if e := v.PortIdentity.encode(w); e != ErrOK {
				return e
			}
			if e := w.writeI8(v.LogMinPdelayReqInterval); e != ErrOK {
				return e
			}
			return v.PeerMeanPathDelay.encode(w)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v TransparentClockPortDataSet
			var e MNGError
			if v.PortIdentity, e = decodePortIdentity(r); e != ErrOK {
				return nil, e
			}
			if v.LogMinPdelayReqInterval, e = r.readI8(); e != ErrOK {
				return nil, e
			}
			if v.PeerMeanPathDelay, e = decodeTimeInterval(r); e != ErrOK {
				return nil, e
			}
			return &v, ErrOK
		},
	}
}

// ---- linuxptp _NP extensions ----

func timeStatusNPProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*TimeStatusNP)
			if !ok {
				return ErrVal
			}
			if e := w.writeI64(v.MasterOffset); e != ErrOK {
				return e
			}
			if e := w.writeI64(v.IngressTime); e != ErrOK {
				return e
			}
			if e := w.writeI32(v.CumulativeScaledRateOffset); e != ErrOK {
				return e
			}
			if e := w.writeI32(v.ScaledLastGmPhaseChange); e != ErrOK {
				return e
			}
			if e := w.writeU16(v.GmTimeBaseIndicator); e != ErrOK {
				return e
			}
			if e := w.writeBytes(v.LastGmPhaseChange[:]); e != ErrOK {
				return e
			}
			var b uint8
			if v.GmPresent {
				b = 1
			}
			if e := w.writeU8(b); e != ErrOK {
				return e
			}
			if e := w.writeU8(0); e != ErrOK {
				return e
			}
			return v.GmIdentity.encode(w)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v TimeStatusNP
			var e MNGError
			if v.MasterOffset, e = r.readI64(); e != ErrOK {
				return nil, e
			}
			if v.IngressTime, e = r.readI64(); e != ErrOK {
				return nil, e
			}
			if v.CumulativeScaledRateOffset, e = r.readI32(); e != ErrOK {
				return nil, e
			}
			if v.ScaledLastGmPhaseChange, e = r.readI32(); e != ErrOK {
				return nil, e
			}
			if v.GmTimeBaseIndicator, e = r.readU16(); e != ErrOK {
				return nil, e
			}
			b, e := r.readBytes(8)
			if e != ErrOK {
				return nil, e
			}
			copy(v.LastGmPhaseChange[:], b)
			p, e := r.readU8()
			if e != ErrOK {
				return nil, e
			}
			v.GmPresent = p != 0
			if _, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			if v.GmIdentity, e = decodeClockIdentity(r); e != ErrOK {
				return nil, e
			}
			return &v, ErrOK
		},
	}
}

func grandmasterSettingsNPProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*GrandmasterSettingsNP)
			if !ok {
				return ErrVal
			}
			if e := v.ClockQuality.encode(w); e != ErrOK {
				return e
			}
			if e := w.writeI16(v.UtcOffset); e != ErrOK {
				return e
			}
			if e := w.writeU8(v.TimeFlags); e != ErrOK {
				return e
			}
			return w.writeU8(uint8(v.TimeSource))
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v GrandmasterSettingsNP
			var e MNGError
			if v.ClockQuality, e = decodeClockQuality(r); e != ErrOK {
				return nil, e
			}
			if v.UtcOffset, e = r.readI16(); e != ErrOK {
				return nil, e
			}
			if v.TimeFlags, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			ts, e := r.readU8()
			if e != ErrOK {
				return nil, e
			}
			v.TimeSource = TimeSource(ts)
			return &v, ErrOK
		},
	}
}

func portDataSetNPProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*PortDataSetNP)
			if !ok {
				return ErrVal
			}
			if e := w.writeU32(v.NeighborPropDelayThresh); e != ErrOK {
				return e
			}
			return w.writeI32(v.AsCapable)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v PortDataSetNP
			var e MNGError
			if v.NeighborPropDelayThresh, e = r.readU32(); e != ErrOK {
				return nil, e
			}
			if v.AsCapable, e = r.readI32(); e != ErrOK {
				return nil, e
			}
			return &v, ErrOK
		},
	}
}

func subscribeEventsNPProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*SubscribeEventsNP)
			if !ok {
				return ErrVal
			}
			if e := w.writeU16(v.Duration); e != ErrOK {
				return e
			}
			return w.writeBytes(v.Bitmask[:])
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v SubscribeEventsNP
			var e MNGError
			if v.Duration, e = r.readU16(); e != ErrOK {
				return nil, e
			}
			b, e := r.readBytes(64)
			if e != ErrOK {
				return nil, e
			}
			copy(v.Bitmask[:], b)
			return &v, ErrOK
		},
	}
}

func portPropertiesNPProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*PortPropertiesNP)
			if !ok {
				return ErrVal
			}
			if e := v.PortIdentity.encode(w); e != ErrOK {
				return e
			}
			if e := w.writeU8(uint8(v.PortState)); e != ErrOK {
				return e
			}
			if e := w.writeU8(uint8(v.Timestamping)); e != ErrOK {
				return e
			}
			return v.Interface.encode(w)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v PortPropertiesNP
			var e MNGError
			var st, ts uint8
			if v.PortIdentity, e = decodePortIdentity(r); e != ErrOK {
				return nil, e
			}
			if st, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			v.PortState = PortState(st)
			if ts, e = r.readU8(); e != ErrOK {
				return nil, e
			}
			v.Timestamping = TimestampKind(ts)
			if v.Interface, e = decodePTPText(r); e != ErrOK {
				return nil, e
			}
			return &v, ErrOK
		},
		size: func(payload any) int {
			v, ok := payload.(*PortPropertiesNP)
			if !ok {
				return 0
			}
			return 12 + v.Interface.wireLen()
		},
	}
}

func portStatsNPProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*PortStatsNP)
			if !ok {
				return ErrVal
			}
			if e := v.PortIdentity.encode(w); e != ErrOK {
				return e
			}
			for _, c := range v.PortStats.RxMsgType {
				if e := w.writeU64LE(c); e != ErrOK {
					return e
				}
			}
			for _, c := range v.PortStats.TxMsgType {
				if e := w.writeU64LE(c); e != ErrOK {
					return e
				}
			}
			return ErrOK
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v PortStatsNP
			var e MNGError
			if v.PortIdentity, e = decodePortIdentity(r); e != ErrOK {
				return nil, e
			}
			for i := range v.PortStats.RxMsgType {
				if v.PortStats.RxMsgType[i], e = r.readU64LE(); e != ErrOK {
					return nil, e
				}
			}
			for i := range v.PortStats.TxMsgType {
				if v.PortStats.TxMsgType[i], e = r.readU64LE(); e != ErrOK {
					return nil, e
				}
			}
			return &v, ErrOK
		},
	}
}

func portServiceStatsNPProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*PortServiceStatsNP)
			if !ok {
				return ErrVal
			}
			if e := v.PortIdentity.encode(w); e != ErrOK {
				return e
			}
			for _, c := range []uint64{
				v.AnnounceTimeout, v.SyncTimeout, v.DelayTimeout,
				v.UnicastServiceTimeout, v.UnicastRequestTimeout, v.PortDisableTimeout,
			} {
				if e := w.writeU64LE(c); e != ErrOK {
					return e
				}
			}
			return ErrOK
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v PortServiceStatsNP
			var e MNGError
			if v.PortIdentity, e = decodePortIdentity(r); e != ErrOK {
				return nil, e
			}
			vals := make([]*uint64, 6)
			vals[0], vals[1], vals[2] = &v.AnnounceTimeout, &v.SyncTimeout, &v.DelayTimeout
			vals[3], vals[4], vals[5] = &v.UnicastServiceTimeout, &v.UnicastRequestTimeout, &v.PortDisableTimeout
			for _, p := range vals {
				if *p, e = r.readU64LE(); e != ErrOK {
					return nil, e
				}
			}
			return &v, ErrOK
		},
	}
}

func unicastMasterTableNPProc() idProc {
	const entrySize = 16
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*UnicastMasterTableNP)
			if !ok {
				return ErrVal
			}
			if len(v.Entries) > 0xffff {
				return ErrVal
			}
			if e := w.writeU16(uint16(len(v.Entries))); e != ErrOK {
				return e
			}
			for _, ent := range v.Entries {
				if e := ent.PortIdentity.encode(w); e != ErrOK {
					return e
				}
				if e := ent.ClockQuality.encode(w); e != ErrOK {
					return e
				}
				var b uint8
				if ent.Selected {
					b = 1
				}
				if e := w.writeU8(b); e != ErrOK {
					return e
				}
				if e := w.writeU8(0); e != ErrOK {
					return e
				}
			}
			return ErrOK
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			n, e := r.readU16()
			if e != ErrOK {
				return nil, e
			}
			if int(n)*entrySize > dataLen-2 {
				return nil, ErrSizeMiss
			}
			var v UnicastMasterTableNP
			for i := 0; i < int(n); i++ {
				var ent UnicastMasterEntryNP
				if ent.PortIdentity, e = decodePortIdentity(r); e != ErrOK {
					return nil, e
				}
				if ent.ClockQuality, e = decodeClockQuality(r); e != ErrOK {
					return nil, e
				}
				sel, e := r.readU8()
				if e != ErrOK {
					return nil, e
				}
				ent.Selected = sel != 0
				if _, e = r.readU8(); e != ErrOK {
					return nil, e
				}
				v.Entries = append(v.Entries, ent)
			}
			return &v, ErrOK
		},
		size: func(payload any) int {
			v, ok := payload.(*UnicastMasterTableNP)
			if !ok {
				return 0
			}
			return 2 + entrySize*len(v.Entries)
		},
	}
}

func portHardwareClockNPProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*PortHardwareClockNP)
			if !ok {
				return ErrVal
			}
			if e := v.PortIdentity.encode(w); e != ErrOK {
				return e
			}
			return w.writeI32(v.PhcIndex)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v PortHardwareClockNP
			var e MNGError
			if v.PortIdentity, e = decodePortIdentity(r); e != ErrOK {
				return nil, e
			}
			if v.PhcIndex, e = r.readI32(); e != ErrOK {
				return nil, e
			}
			return &v, ErrOK
		},
	}
}

func powerProfileSettingsNPProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*PowerProfileSettingsNP)
			if !ok {
				return ErrVal
			}
			if e := w.writeU16(v.Version); e != ErrOK {
				return e
			}
			if e := w.writeU16(v.GrandmasterID); e != ErrOK {
				return e
			}
			if e := w.writeU32(v.GrandmasterTimeInaccuracy); e != ErrOK {
				return e
			}
			if e := w.writeU32(v.NetworkTimeInaccuracy); e != ErrOK {
				return e
			}
			return w.writeU32(v.TotalTimeInaccuracy)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v PowerProfileSettingsNP
			var e MNGError
			if v.Version, e = r.readU16(); e != ErrOK {
				return nil, e
			}
			if v.GrandmasterID, e = r.readU16(); e != ErrOK {
				return nil, e
			}
			if v.GrandmasterTimeInaccuracy, e = r.readU32(); e != ErrOK {
				return nil, e
			}
			if v.NetworkTimeInaccuracy, e = r.readU32(); e != ErrOK {
				return nil, e
			}
			if v.TotalTimeInaccuracy, e = r.readU32(); e != ErrOK {
				return nil, e
			}
			return &v, ErrOK
		},
	}
}

func cmldsInfoNPProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*CmldsInfoNP)
			if !ok {
				return ErrVal
			}
			if e := v.MeanLinkDelay.encode(w); e != ErrOK {
				return e
			}
			if e := w.writeI32(v.ScaledNeighborRateRatio); e != ErrOK {
				return e
			}
			var b uint8
			if v.AsCapable {
				b = 1
			}
			if e := w.writeU8(b); e != ErrOK {
				return e
			}
			if e := w.writeU8(0); e != ErrOK {
				return e
			}
			if e := w.writeU8(0); e != ErrOK {
				return e
			}
			return w.writeU8(0)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v CmldsInfoNP
			var e MNGError
			if v.MeanLinkDelay, e = decodeTimeInterval(r); e != ErrOK {
				return nil, e
			}
			if v.ScaledNeighborRateRatio, e = r.readI32(); e != ErrOK {
				return nil, e
			}
			b, e := r.readU8()
			if e != ErrOK {
				return nil, e
			}
			v.AsCapable = b != 0
			if _, e = r.readBytes(3); e != ErrOK {
				return nil, e
			}
			return &v, ErrOK
		},
	}
}

func externalGrandmasterPropertiesNPProc() idProc {
	return idProc{
		encode: func(w *cursor, payload any) MNGError {
			v, ok := payload.(*ExternalGrandmasterPropertiesNP)
			if !ok {
				return ErrVal
			}
			if e := v.GmIdentity.encode(w); e != ErrOK {
				return e
			}
			return w.writeU16(v.StepsRemoved)
		},
		decode: func(r *cursor, dataLen int) (any, MNGError) {
			var v ExternalGrandmasterPropertiesNP
			var e MNGError
			if v.GmIdentity, e = decodeClockIdentity(r); e != ErrOK {
				return nil, e
			}
			if v.StepsRemoved, e = r.readU16(); e != ErrOK {
				return nil, e
			}
			return &v, ErrOK
		},
	}
}
