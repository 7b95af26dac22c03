package ptp

import "strings"

// idNames is the canonical management-ID name table, grounded on
// linuxptp's mng_all_vals[] (original_source/msg.h): every ID string pmc
// accepts on its command line and prints in its output.
var idNames = map[ManagementId]string{
	NULL_MANAGEMENT:              "NULL_MANAGEMENT",
	CLOCK_DESCRIPTION:            "CLOCK_DESCRIPTION",
	USER_DESCRIPTION:             "USER_DESCRIPTION",
	SAVE_IN_NON_VOLATILE_STORAGE: "SAVE_IN_NON_VOLATILE_STORAGE",
	RESET_NON_VOLATILE_STORAGE:   "RESET_NON_VOLATILE_STORAGE",
	INITIALIZE:                   "INITIALIZE",
	FAULT_LOG:                    "FAULT_LOG",
	FAULT_LOG_RESET:              "FAULT_LOG_RESET",

	DEFAULT_DATA_SET:         "DEFAULT_DATA_SET",
	CURRENT_DATA_SET:         "CURRENT_DATA_SET",
	PARENT_DATA_SET:          "PARENT_DATA_SET",
	TIME_PROPERTIES_DATA_SET: "TIME_PROPERTIES_DATA_SET",
	PORT_DATA_SET:            "PORT_DATA_SET",
	PRIORITY1:                "PRIORITY1",
	PRIORITY2:                "PRIORITY2",
	DOMAIN:                   "DOMAIN",
	SLAVE_ONLY:               "SLAVE_ONLY",
	LOG_ANNOUNCE_INTERVAL:    "LOG_ANNOUNCE_INTERVAL",
	ANNOUNCE_RECEIPT_TIMEOUT: "ANNOUNCE_RECEIPT_TIMEOUT",
	LOG_SYNC_INTERVAL:        "LOG_SYNC_INTERVAL",
	VERSION_NUMBER:           "VERSION_NUMBER",
	ENABLE_PORT:              "ENABLE_PORT",
	DISABLE_PORT:             "DISABLE_PORT",
	TIME:                     "TIME",
	CLOCK_ACCURACY:           "CLOCK_ACCURACY",
	UTC_PROPERTIES:           "UTC_PROPERTIES",
	TRACEABILITY_PROPERTIES:  "TRACEABILITY_PROPERTIES",
	TIMESCALE_PROPERTIES:     "TIMESCALE_PROPERTIES",
	UNICAST_NEGOTIATION_ENABLE:         "UNICAST_NEGOTIATION_ENABLE",
	PATH_TRACE_LIST:                    "PATH_TRACE_LIST",
	PATH_TRACE_ENABLE:                  "PATH_TRACE_ENABLE",
	GRANDMASTER_CLUSTER_TABLE:          "GRANDMASTER_CLUSTER_TABLE",
	UNICAST_MASTER_TABLE:               "UNICAST_MASTER_TABLE",
	UNICAST_MASTER_MAX_TABLE_SIZE:      "UNICAST_MASTER_MAX_TABLE_SIZE",
	ACCEPTABLE_MASTER_TABLE:            "ACCEPTABLE_MASTER_TABLE",
	ACCEPTABLE_MASTER_TABLE_ENABLED:    "ACCEPTABLE_MASTER_TABLE_ENABLED",
	ACCEPTABLE_MASTER_MAX_TABLE_SIZE:   "ACCEPTABLE_MASTER_MAX_TABLE_SIZE",
	ALTERNATE_MASTER:                   "ALTERNATE_MASTER",
	ALTERNATE_TIME_OFFSET_ENABLE:       "ALTERNATE_TIME_OFFSET_ENABLE",
	ALTERNATE_TIME_OFFSET_NAME:         "ALTERNATE_TIME_OFFSET_NAME",
	ALTERNATE_TIME_OFFSET_MAX_KEY:      "ALTERNATE_TIME_OFFSET_MAX_KEY",
	ALTERNATE_TIME_OFFSET_PROPERTIES:   "ALTERNATE_TIME_OFFSET_PROPERTIES",
	TRANSPARENT_CLOCK_DEFAULT_DATA_SET: "TRANSPARENT_CLOCK_DEFAULT_DATA_SET",
	TRANSPARENT_CLOCK_PORT_DATA_SET:    "TRANSPARENT_CLOCK_PORT_DATA_SET",
	PRIMARY_DOMAIN:                     "PRIMARY_DOMAIN",
	DELAY_MECHANISM:                    "DELAY_MECHANISM",
	LOG_MIN_PDELAY_REQ_INTERVAL:        "LOG_MIN_PDELAY_REQ_INTERVAL",

	TIME_STATUS_NP:                     "TIME_STATUS_NP",
	GRANDMASTER_SETTINGS_NP:            "GRANDMASTER_SETTINGS_NP",
	PORT_DATA_SET_NP:                   "PORT_DATA_SET_NP",
	SUBSCRIBE_EVENTS_NP:                "SUBSCRIBE_EVENTS_NP",
	PORT_PROPERTIES_NP:                 "PORT_PROPERTIES_NP",
	PORT_STATS_NP:                      "PORT_STATS_NP",
	SYNCHRONIZATION_UNCERTAIN_NP:       "SYNCHRONIZATION_UNCERTAIN_NP",
	PORT_SERVICE_STATS_NP:              "PORT_SERVICE_STATS_NP",
	UNICAST_MASTER_TABLE_NP:            "UNICAST_MASTER_TABLE_NP",
	PORT_HWCLOCK_NP:                    "PORT_HWCLOCK_NP",
	POWER_PROFILE_SETTINGS_NP:          "POWER_PROFILE_SETTINGS_NP",
	CMLDS_INFO_NP:                      "CMLDS_INFO_NP",
	EXTERNAL_GRANDMASTER_PROPERTIES_NP: "EXTERNAL_GRANDMASTER_PROPERTIES_NP",
}

// idAliases holds alternate spellings accepted on input beyond the
// canonical name. linuxptp's CLIENT/GPS terminology update (msg.h:
// `#define CLIENT SLAVE`, `#define GPS GNSS`) aliases two enumerated
// values, not a management ID, so PortState/TimeSource carry the
// case-insensitive reverse maps below instead; no management ID has a
// documented alternate name in the original source, so this map stays
// empty rather than invent one.
var idAliases = map[string]ManagementId{}

var nameToID map[string]ManagementId

func init() {
	nameToID = make(map[string]ManagementId, len(idNames))
	for id, name := range idNames {
		nameToID[strings.ToUpper(name)] = id
	}
	for alias, id := range idAliases {
		nameToID[strings.ToUpper(alias)] = id
	}
}

// IDString returns id's canonical name, or "UNKNOWN_ID" for IDs the
// registry does not recognize.
func IDString(id ManagementId) string {
	if s, ok := idNames[id]; ok {
		return s
	}
	return "UNKNOWN_ID"
}

// ParseID looks up a management ID by name, case-insensitively.
func ParseID(name string) (ManagementId, bool) {
	id, ok := nameToID[strings.ToUpper(strings.TrimSpace(name))]
	return id, ok
}

// ParseAction mirrors pmc's tolerant action-name parsing (GET/get,
// SET/set, and so on).
func ParseAction(name string) (Action, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "GET":
		return GET, true
	case "SET":
		return SET, true
	case "CMD", "COMMAND":
		return COMMAND, true
	default:
		return 0, false
	}
}

// portStateAliases holds linuxptp's CLIENT/SLAVE terminology alias
// (msg.h: `#define CLIENT SLAVE`) on top of the canonical portStateNames.
var portStateAliases = map[string]PortState{
	"CLIENT": PS_CLIENT,
}

var nameToPortState map[string]PortState

func init() {
	nameToPortState = make(map[string]PortState, len(portStateNames)+len(portStateAliases))
	for state, name := range portStateNames {
		nameToPortState[strings.ToUpper(name)] = state
	}
	for alias, state := range portStateAliases {
		nameToPortState[strings.ToUpper(alias)] = state
	}
}

// ParsePortState looks up a PortState by name, case-insensitively,
// accepting the CLIENT/SLAVE alias alongside the canonical name.
func ParsePortState(name string) (PortState, bool) {
	s, ok := nameToPortState[strings.ToUpper(strings.TrimSpace(name))]
	return s, ok
}

// timeSourceAliases holds linuxptp's GPS/GNSS terminology alias (msg.h:
// `#define GPS GNSS`) on top of the canonical timeSourceNames.
var timeSourceAliases = map[string]TimeSource{
	"GPS": GPS,
}

var nameToTimeSource map[string]TimeSource

func init() {
	nameToTimeSource = make(map[string]TimeSource, len(timeSourceNames)+len(timeSourceAliases))
	for ts, name := range timeSourceNames {
		nameToTimeSource[strings.ToUpper(name)] = ts
	}
	for alias, ts := range timeSourceAliases {
		nameToTimeSource[strings.ToUpper(alias)] = ts
	}
}

// ParseTimeSource looks up a TimeSource by name, case-insensitively,
// accepting the GPS/GNSS alias alongside the canonical name.
func ParseTimeSource(name string) (TimeSource, bool) {
	ts, ok := nameToTimeSource[strings.ToUpper(strings.TrimSpace(name))]
	return ts, ok
}
