package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/openptp/pmcgo/pkg/ptp"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	udsPath        string
	domain         int
	targetPort     int
	verbose        bool
	requestTimeout int
	logFile        string
	configPath     string

	subscribePortState     bool
	subscribeTimeSync      bool
	subscribeParentDataSet bool
	subscribeAll           bool

	logger *log.Logger
)

func main() {
	root := &cobra.Command{
		Use:   "pmc",
		Short: "PTP management client (PMC-compatible)",
		Long: `pmc talks to ptp4l over its Unix domain management socket using the
IEEE 1588 management-message protocol, plus linuxptp's implementation-
specific extensions.

Examples:
  pmc get DEFAULT_DATA_SET
  pmc get PORT_DATA_SET --port 1
  pmc set GRANDMASTER_SETTINGS_NP 248 254 65535 37 0 0 0 1 0 0 160
  pmc subscribe --all-events
  pmc decode capture.bin`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger()
		},
	}

	root.PersistentFlags().StringVarP(&udsPath, "uds", "s", "/var/run/ptp4l", "path to ptp4l UDS management socket")
	root.PersistentFlags().IntVarP(&domain, "domain", "d", 0, "PTP domain number")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose per-request tracing")
	root.PersistentFlags().IntVarP(&requestTimeout, "timeout", "t", 30, "subscription request timeout in seconds")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "rotate verbose logs to this file instead of stderr")
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file overriding transport-specific/domain/boundary-hops defaults")

	getCmd.Flags().IntVarP(&targetPort, "port", "p", 0, "target port number (0 = all ports)")
	subscribeCmd.Flags().BoolVar(&subscribePortState, "port-events", true, "subscribe to port state changes")
	subscribeCmd.Flags().BoolVar(&subscribeTimeSync, "time-events", false, "subscribe to time synchronization events")
	subscribeCmd.Flags().BoolVar(&subscribeParentDataSet, "parent-events", false, "subscribe to parent data set changes")
	subscribeCmd.Flags().BoolVar(&subscribeAll, "all-events", false, "subscribe to every notification class")

	root.AddCommand(getCmd, setCmd, subscribeCmd, decodeCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger returns the verbose tracer used by client.Request. --log-file
// routes it through lumberjack for rotation, matching the teacher's plain
// log.SetFlags(LstdFlags|Lshortfile) behavior when unset.
func newLogger() *log.Logger {
	flags := 0
	if verbose {
		flags = log.LstdFlags | log.Lshortfile
	}
	if logFile != "" {
		return log.New(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		}, "", flags)
	}
	if !verbose {
		return log.New(os.Stderr, "", flags)
	}
	l := log.New(os.Stderr, "", flags)
	return l
}

func newClient() *ptp.Client {
	client, err := ptp.NewClient(udsPath, uint8(domain), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect to %s: %v\n", udsPath, err)
		os.Exit(1)
	}
	if configPath != "" {
		cfg, err := ptp.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config %s: %v\n", configPath, err)
			os.Exit(1)
		}
		if err := client.UseConfig(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "apply config %s: %v\n", configPath, err)
			os.Exit(1)
		}
	}
	return client
}

var getCmd = &cobra.Command{
	Use:   "get MANAGEMENT_ID",
	Short: "GET a management data set from ptp4l",
	Args:  cobra.ExactArgs(1),
	Run:   runGet,
}

var setCmd = &cobra.Command{
	Use:   "set MANAGEMENT_ID VALUE...",
	Short: "SET a management data set on ptp4l",
	Args:  cobra.MinimumNArgs(2),
	Run:   runSet,
}

var subscribeCmd = &cobra.Command{
	Use:   "subscribe",
	Short: "subscribe to real-time ptp4l notifications",
	Run:   runSubscribe,
}

var decodeCmd = &cobra.Command{
	Use:   "decode FILE",
	Short: "decode a captured raw management frame from a file (offline, no socket)",
	Args:  cobra.ExactArgs(1),
	Run:   runDecode,
}

func runGet(cmd *cobra.Command, args []string) {
	id, ok := ptp.ParseID(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown management ID %q\n", args[0])
		os.Exit(1)
	}

	client := newClient()
	defer client.Close()

	port := uint16(targetPort)
	if port == 0 {
		port = ptp.AllPortsPortIdentity.PortNumber
	}
	resp, err := client.Request(id, ptp.GET, port, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "GET %s: %v\n", ptp.IDString(id), err)
		os.Exit(1)
	}
	printPayload(id, resp)
}

func printPayload(id ptp.ManagementId, resp *ptp.Message) {
	fmt.Println(ptp.IDString(id))
	switch id {
	case ptp.DEFAULT_DATA_SET:
		v, _ := ptp.Payload[*ptp.DefaultDataSet](resp)
		fmt.Printf("  twoStepFlag             %t\n", v.TwoStepFlag)
		fmt.Printf("  slaveOnly               %t\n", v.SlaveOnly)
		fmt.Printf("  numberPorts             %d\n", v.NumberPorts)
		fmt.Printf("  priority1               %d\n", v.Priority1)
		fmt.Printf("  clockClass              %d\n", v.ClockQuality.ClockClass)
		fmt.Printf("  clockAccuracy           0x%02x\n", v.ClockQuality.ClockAccuracy)
		fmt.Printf("  offsetScaledLogVariance 0x%04x\n", v.ClockQuality.OffsetScaledLogVariance)
		fmt.Printf("  priority2               %d\n", v.Priority2)
		fmt.Printf("  clockIdentity           %s\n", v.ClockIdentity)
		fmt.Printf("  domainNumber            %d\n", v.DomainNumber)
	case ptp.CURRENT_DATA_SET:
		v, _ := ptp.Payload[*ptp.CurrentDataSet](resp)
		fmt.Printf("  stepsRemoved     %d\n", v.StepsRemoved)
		fmt.Printf("  offsetFromMaster %.0f ns\n", v.OffsetFromMaster.Nanoseconds())
		fmt.Printf("  meanPathDelay    %.0f ns\n", v.MeanPathDelay.Nanoseconds())
	case ptp.PARENT_DATA_SET:
		v, _ := ptp.Payload[*ptp.ParentDataSet](resp)
		fmt.Printf("  parentPortIdentity                    %s\n", v.ParentPortIdentity)
		fmt.Printf("  parentStats                           %t\n", v.ParentStats)
		fmt.Printf("  observedParentOffsetScaledLogVariance %d\n", v.ObservedParentOffsetScaledLogVariance)
		fmt.Printf("  observedParentClockPhaseChangeRate    %d\n", v.ObservedParentClockPhaseChangeRate)
		fmt.Printf("  grandmasterIdentity                   %s\n", v.GrandmasterIdentity)
		fmt.Printf("  grandmasterClockClass                 %d\n", v.GrandmasterClockQuality.ClockClass)
		fmt.Printf("  grandmasterPriority1                  %d\n", v.GrandmasterPriority1)
		fmt.Printf("  grandmasterPriority2                  %d\n", v.GrandmasterPriority2)
	case ptp.TIME_PROPERTIES_DATA_SET:
		v, _ := ptp.Payload[*ptp.TimePropertiesDataSet](resp)
		fmt.Printf("  currentUtcOffset      %d\n", v.CurrentUtcOffset)
		fmt.Printf("  leap61                %t\n", v.Leap61)
		fmt.Printf("  leap59                %t\n", v.Leap59)
		fmt.Printf("  currentUtcOffsetValid %t\n", v.CurrentUtcOffsetValid)
		fmt.Printf("  ptpTimescale          %t\n", v.PtpTimescale)
		fmt.Printf("  timeTraceable         %t\n", v.TimeTraceable)
		fmt.Printf("  frequencyTraceable    %t\n", v.FrequencyTraceable)
		fmt.Printf("  timeSource            0x%02x\n", uint8(v.TimeSource))
	case ptp.PORT_DATA_SET:
		v, _ := ptp.Payload[*ptp.PortDataSet](resp)
		fmt.Printf("  portIdentity            %s\n", v.PortIdentity)
		fmt.Printf("  portState               %s\n", v.PortState)
		fmt.Printf("  logMinDelayReqInterval  %d\n", v.LogMinDelayReqInterval)
		fmt.Printf("  logAnnounceInterval     %d\n", v.LogAnnounceInterval)
		fmt.Printf("  logSyncInterval         %d\n", v.LogSyncInterval)
		fmt.Printf("  delayMechanism          %d\n", v.DelayMechanism)
		fmt.Printf("  versionNumber           %d\n", v.VersionNumber)
	case ptp.GRANDMASTER_SETTINGS_NP:
		v, _ := ptp.Payload[*ptp.GrandmasterSettingsNP](resp)
		fmt.Printf("  clockClass              %d\n", v.ClockQuality.ClockClass)
		fmt.Printf("  clockAccuracy           0x%02x\n", v.ClockQuality.ClockAccuracy)
		fmt.Printf("  offsetScaledLogVariance 0x%04x\n", v.ClockQuality.OffsetScaledLogVariance)
		fmt.Printf("  currentUtcOffset        %d\n", v.UtcOffset)
		fmt.Printf("  timeFlags               0x%02x\n", v.TimeFlags)
		fmt.Printf("  timeSource              0x%02x\n", uint8(v.TimeSource))
	case ptp.EXTERNAL_GRANDMASTER_PROPERTIES_NP:
		v, _ := ptp.Payload[*ptp.ExternalGrandmasterPropertiesNP](resp)
		fmt.Printf("  gmIdentity   %s\n", v.GmIdentity)
		fmt.Printf("  stepsRemoved %d\n", v.StepsRemoved)
	case ptp.PORT_STATS_NP:
		v, _ := ptp.Payload[*ptp.PortStatsNP](resp)
		fmt.Printf("  portIdentity %s\n", v.PortIdentity)
		fmt.Printf("  rxMsgType    %v\n", v.PortStats.RxMsgType)
		fmt.Printf("  txMsgType    %v\n", v.PortStats.TxMsgType)
	default:
		printScalarPayload(id, resp)
	}
}

// printScalarPayload covers the management IDs whose payload is one of the
// shared scalar wrapper types (Uint8Value, Int8Value, ...), so a plain GET
// of e.g. PRIORITY1 or LOG_SYNC_INTERVAL prints a value instead of a raw
// struct dump.
func printScalarPayload(id ptp.ManagementId, resp *ptp.Message) {
	if v, e := ptp.Payload[*ptp.Uint8Value](resp); e == ptp.ErrOK {
		fmt.Printf("  %d\n", v.Value)
		return
	}
	if v, e := ptp.Payload[*ptp.Int8Value](resp); e == ptp.ErrOK {
		fmt.Printf("  %d\n", v.Value)
		return
	}
	if v, e := ptp.Payload[*ptp.BoolValue](resp); e == ptp.ErrOK {
		fmt.Printf("  %t\n", v.Value)
		return
	}
	if v, e := ptp.Payload[*ptp.ClockAccuracyValue](resp); e == ptp.ErrOK {
		fmt.Printf("  %s (0x%02x)\n", v.Value, uint8(v.Value))
		return
	}
	if v, e := ptp.Payload[*ptp.Uint16Value](resp); e == ptp.ErrOK {
		fmt.Printf("  %d\n", v.Value)
		return
	}
	if v, e := ptp.Payload[*ptp.TextValue](resp); e == ptp.ErrOK {
		fmt.Printf("  %q\n", v.Text.Text)
		return
	}
	if v, e := ptp.Payload[*ptp.TimestampValue](resp); e == ptp.ErrOK {
		fmt.Printf("  %s\n", v.Value)
		return
	}
	fmt.Printf("  %+v\n", resp)
}

func runSet(cmd *cobra.Command, args []string) {
	name := strings.ToUpper(args[0])
	client := newClient()
	defer client.Close()

	switch name {
	case "GRANDMASTER_SETTINGS_NP":
		setGrandmasterSettingsNP(client, args[1:])
	case "EXTERNAL_GRANDMASTER_PROPERTIES_NP":
		setExternalGrandmasterPropertiesNP(client, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "SET not supported for %s\n", name)
		os.Exit(1)
	}
}

func setGrandmasterSettingsNP(client *ptp.Client, args []string) {
	if len(args) < 11 {
		fmt.Fprintln(os.Stderr, "GRANDMASTER_SETTINGS_NP requires 11 fields: clockClass clockAccuracy offsetScaledLogVariance currentUtcOffset leap61 leap59 currentUtcOffsetValid ptpTimescale timeTraceable frequencyTraceable timeSource")
		os.Exit(1)
	}
	nums := parseUints(args[:11], []int{8, 8, 16, 16, 1, 1, 1, 1, 1, 1, 8})

	var flags uint8
	if nums[4] != 0 {
		flags |= 0x01
	}
	if nums[5] != 0 {
		flags |= 0x02
	}
	if nums[6] != 0 {
		flags |= 0x04
	}
	if nums[7] != 0 {
		flags |= 0x08
	}
	if nums[8] != 0 {
		flags |= 0x10
	}
	if nums[9] != 0 {
		flags |= 0x20
	}

	gs := &ptp.GrandmasterSettingsNP{
		ClockQuality: ptp.ClockQuality{
			ClockClass:              uint8(nums[0]),
			ClockAccuracy:           ptp.ClockAccuracy(nums[1]),
			OffsetScaledLogVariance: uint16(nums[2]),
		},
		UtcOffset:  int16(nums[3]),
		TimeFlags:  flags,
		TimeSource: ptp.TimeSource(nums[10]),
	}
	if err := client.SetGrandmasterSettingsNP(gs); err != nil {
		fmt.Fprintf(os.Stderr, "SET GRANDMASTER_SETTINGS_NP: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("GRANDMASTER_SETTINGS_NP set successfully")
}

func setExternalGrandmasterPropertiesNP(client *ptp.Client, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "EXTERNAL_GRANDMASTER_PROPERTIES_NP requires 2 fields: gmIdentity stepsRemoved")
		os.Exit(1)
	}
	var id ptp.ClockIdentity
	if err := parseClockIdentity(args[0], &id); err != nil {
		fmt.Fprintf(os.Stderr, "invalid gmIdentity: %v\n", err)
		os.Exit(1)
	}
	steps, err := strconv.ParseUint(args[1], 10, 16)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid stepsRemoved: %v\n", err)
		os.Exit(1)
	}
	egp := &ptp.ExternalGrandmasterPropertiesNP{GmIdentity: id, StepsRemoved: uint16(steps)}
	if err := client.SetExternalGrandmasterPropertiesNP(egp); err != nil {
		fmt.Fprintf(os.Stderr, "SET EXTERNAL_GRANDMASTER_PROPERTIES_NP: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("EXTERNAL_GRANDMASTER_PROPERTIES_NP set successfully")
}

func parseUints(args []string, bits []int) []uint64 {
	out := make([]uint64, len(args))
	for i, a := range args {
		v, err := strconv.ParseUint(a, 10, bits[i])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid field %d (%q): %v\n", i, a, err)
			os.Exit(1)
		}
		out[i] = v
	}
	return out
}

func parseClockIdentity(s string, ci *ptp.ClockIdentity) error {
	parts := strings.Split(s, ":")
	if len(parts) != 8 {
		return fmt.Errorf("clock identity needs 8 colon-separated hex octets")
	}
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return fmt.Errorf("octet %d: %w", i, err)
		}
		ci[i] = uint8(v)
	}
	return nil
}

func runSubscribe(cmd *cobra.Command, args []string) {
	var events []uint8
	switch {
	case subscribeAll:
		events = []uint8{ptp.NOTIFY_PORT_STATE, ptp.NOTIFY_TIME_SYNC, ptp.NOTIFY_PARENT_DATA_SET}
	default:
		if subscribePortState {
			events = append(events, ptp.NOTIFY_PORT_STATE)
		}
		if subscribeTimeSync {
			events = append(events, ptp.NOTIFY_TIME_SYNC)
		}
		if subscribeParentDataSet {
			events = append(events, ptp.NOTIFY_PARENT_DATA_SET)
		}
		if len(events) == 0 {
			events = append(events, ptp.NOTIFY_PORT_STATE)
		}
	}

	client := newClient()
	defer client.Close()

	sm := ptp.NewSubscriptionManager(client, verbose)
	if requestTimeout > 0 {
		sm.SetRequestTimeout(time.Duration(requestTimeout) * time.Second)
	}

	sm.OnPortStateChange(func(event ptp.PortStateChangeEvent) {
		fmt.Printf("[%s] port %s: %s -> %s\n", time.Now().Format(time.RFC3339),
			event.PortIdentity, event.OldState, event.NewState)
	})
	sm.OnParentDataSetChange(func(event ptp.ParentDataSetChangeEvent) {
		fmt.Printf("[%s] new parent %s, grandmaster %s (class %d)\n", time.Now().Format(time.RFC3339),
			event.ParentPortIdentity, event.GrandmasterIdentity, event.GrandmasterClockQuality.ClockClass)
	})
	sm.OnTimeStatusChange(func(event ptp.TimeStatusChangeEvent) {
		fmt.Printf("[%s] master offset %d ns, gmPresent=%t\n", time.Now().Format(time.RFC3339),
			event.MasterOffset, event.GmPresent)
	})

	if err := sm.SubscribeToEvents(10*time.Second, events...); err != nil {
		fmt.Fprintf(os.Stderr, "subscribe: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	fmt.Println("subscribed, press Ctrl+C to stop")
	<-ctx.Done()

	sm.Unsubscribe()
	fmt.Println("subscription stopped")
}

// runDecode parses a raw captured management frame from disk without
// opening any socket, for offline debugging of pmc traffic dumps.
func runDecode(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", args[0], err)
		os.Exit(1)
	}
	if isHexText(data) {
		decoded, err := hex.DecodeString(strings.TrimSpace(string(data)))
		if err == nil {
			data = decoded
		}
	}

	msg := ptp.NewMessage()
	switch e := msg.Parse(data); e {
	case ptp.ErrOK, ptp.ErrMSG:
		// ErrMSG means a decoded MANAGEMENT_ERROR_STATUS TLV, reported below.
	default:
		fmt.Fprintf(os.Stderr, "decode: %v\n", e)
		os.Exit(1)
	}
	if errID, display := msg.ErrDisplay(); errID != 0 {
		fmt.Printf("MANAGEMENT_ERROR_STATUS for %s: %s%s\n", ptp.IDString(msg.ID()), errID, formatDisplay(display))
		return
	}
	printPayload(msg.ID(), msg)
}

func formatDisplay(s string) string {
	if s == "" {
		return ""
	}
	return ": " + s
}

func isHexText(data []byte) bool {
	for _, b := range data {
		switch {
		case b >= '0' && b <= '9', b >= 'a' && b <= 'f', b >= 'A' && b <= 'F', b == '\n', b == '\r', b == ' ':
			continue
		default:
			return false
		}
	}
	return len(data) > 0
}
