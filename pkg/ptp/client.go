package ptp

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
)

// maxPMCMessage is generous relative to any single management TLV pmc
// exchanges over a UDS socket; linuxptp itself sizes its receive buffer
// the same way.
const maxPMCMessage = 1500

var tempPathCounter int64

// Client is a PMC-style management client talking to ptp4l over its Unix
// datagram management socket.
type Client struct {
	conn              net.Conn
	udsPath           string
	domain            uint8
	transportSpecific uint8
	boundaryHops      uint8
	clockID           ClockIdentity
	portNum           uint16
	seqID             uint16
	mu                sync.Mutex
	tempPath          string
	logger            *log.Logger
}

// NewClient dials ptp4l's management socket at udsPath. logger receives
// verbose per-request tracing; pass log.New(io.Discard, "", 0) to silence
// it entirely.
func NewClient(udsPath string, domain uint8, logger *log.Logger) (*Client, error) {
	if logger == nil {
		logger = log.Default()
	}
	c := &Client{udsPath: udsPath, domain: domain, boundaryHops: 1, seqID: 1, logger: logger}

	pid := uint32(os.Getpid())
	c.clockID = ClockIdentity{0, 0, 0, 0, 0, 0, uint8(pid >> 24), uint8(pid >> 16)}
	c.portNum = uint16(pid)

	if err := c.connect(); err != nil {
		return nil, fmt.Errorf("connect to ptp4l at %s: %w", udsPath, err)
	}
	return c, nil
}

func (c *Client) connect() error {
	fd, err := syscall.Socket(syscall.AF_UNIX, syscall.SOCK_DGRAM, 0)
	if err != nil {
		return fmt.Errorf("socket: %w", err)
	}
	tempPath := fmt.Sprintf("/var/run/pmc-go.%d.%d", os.Getpid(), atomic.AddInt64(&tempPathCounter, 1))
	if err := syscall.Bind(fd, &syscall.SockaddrUnix{Name: tempPath}); err != nil {
		syscall.Close(fd)
		return fmt.Errorf("bind %s: %w", tempPath, err)
	}
	file := os.NewFile(uintptr(fd), "unix-dgram")
	conn, err := net.FileConn(file)
	file.Close()
	if err != nil {
		syscall.Close(fd)
		os.Remove(tempPath)
		return fmt.Errorf("FileConn: %w", err)
	}
	c.conn = conn
	c.tempPath = tempPath
	c.logger.Printf("bound management socket at %s", tempPath)
	return nil
}

// UseConfig applies cfg's transport-specific/domain/boundary-hops fields to
// every subsequent Request, overriding the constructor's domain argument.
// section names the sub-section to read ("" for the top-level/global
// section); an unknown section or a malformed value is reported without
// mutating c (spec.md §6.2).
func (c *Client) UseConfig(cfg ConfigSource, section ...string) error {
	name := ""
	if len(section) > 0 {
		name = section[0]
	}
	sec, ok := cfg.Section(name)
	if !ok {
		return fmt.Errorf("useConfig: no section %q", name)
	}
	if e := validateConfig(sec); e != ErrOK {
		return fmt.Errorf("useConfig: %w", e)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transportSpecific = sec.TransportSpecific
	c.domain = sec.DomainNumber
	c.boundaryHops = sec.BoundaryHops
	return nil
}

// Close releases the client's UDS binding.
func (c *Client) Close() error {
	var err error
	if c.conn != nil {
		err = c.conn.Close()
	}
	if c.tempPath != "" {
		os.Remove(c.tempPath)
	}
	return err
}

// Request sends a management message for id/action to targetPort (use
// AllPortsPortIdentity.PortNumber for the wildcard target) and returns the
// decoded response. A GET carries no payload; SET/COMMAND encode payload
// per the ID's registered proc.
func (c *Client) Request(id ManagementId, action Action, targetPort uint16, payload any) (*Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fd, err := syscall.Socket(syscall.AF_UNIX, syscall.SOCK_DGRAM, 0)
	if err != nil {
		return nil, fmt.Errorf("socket: %w", err)
	}
	defer syscall.Close(fd)

	tempPath := fmt.Sprintf("/var/run/pmc-go.%d.%d", os.Getpid(), atomic.AddInt64(&tempPathCounter, 1))
	if err := syscall.Bind(fd, &syscall.SockaddrUnix{Name: tempPath}); err != nil {
		return nil, fmt.Errorf("bind %s: %w", tempPath, err)
	}
	defer os.Remove(tempPath)

	req := NewMessage()
	req.TransportSpecific = c.transportSpecific
	req.DomainNumber = c.domain
	req.BoundaryHops = c.boundaryHops
	req.SourcePortIdentity = PortIdentity{ClockIdentity: c.clockID, PortNumber: c.portNum}
	req.SequenceID = c.seqID
	c.seqID++
	req.TargetPortIdentity = PortIdentity{ClockIdentity: AllOnesClockIdentity, PortNumber: targetPort}

	n, mngErr := req.Build(id, action, payload)
	if mngErr != ErrOK {
		return nil, fmt.Errorf("build %s: %w", IDString(id), mngErr)
	}
	c.logger.Printf("-> %s %s seq=%d (%d bytes)", action, IDString(id), req.SequenceID, n)

	if err := syscall.Sendto(fd, req.GetSendBuf(), 0, &syscall.SockaddrUnix{Name: c.udsPath}); err != nil {
		return nil, fmt.Errorf("sendto %s: %w", c.udsPath, err)
	}

	respBuf := make([]byte, maxPMCMessage)
	rn, _, err := syscall.Recvfrom(fd, respBuf, 0)
	if err != nil {
		return nil, fmt.Errorf("recvfrom: %w", err)
	}

	resp := NewMessage()
	switch mngErr := resp.Parse(respBuf[:rn]); mngErr {
	case ErrOK:
	case ErrMSG:
		// a decoded MANAGEMENT_ERROR_STATUS TLV; reported via ErrDisplay below.
	default:
		return nil, fmt.Errorf("parse response: %w", mngErr)
	}
	if errID, display := resp.ErrDisplay(); errID != 0 {
		return resp, fmt.Errorf("%s: %s%s", IDString(resp.id), errID, formatDisplay(display))
	}
	return resp, nil
}

func formatDisplay(s string) string {
	if s == "" {
		return ""
	}
	return ": " + s
}

// GetDefaultDataSet retrieves DEFAULT_DATA_SET from the connected clock.
func (c *Client) GetDefaultDataSet() (*DefaultDataSet, error) {
	resp, err := c.Request(DEFAULT_DATA_SET, GET, AllPortsPortIdentity.PortNumber, nil)
	if err != nil {
		return nil, err
	}
	return payloadOrErr[*DefaultDataSet](resp)
}

// GetCurrentDataSet retrieves CURRENT_DATA_SET.
func (c *Client) GetCurrentDataSet() (*CurrentDataSet, error) {
	resp, err := c.Request(CURRENT_DATA_SET, GET, AllPortsPortIdentity.PortNumber, nil)
	if err != nil {
		return nil, err
	}
	return payloadOrErr[*CurrentDataSet](resp)
}

// GetParentDataSet retrieves PARENT_DATA_SET.
func (c *Client) GetParentDataSet() (*ParentDataSet, error) {
	resp, err := c.Request(PARENT_DATA_SET, GET, AllPortsPortIdentity.PortNumber, nil)
	if err != nil {
		return nil, err
	}
	return payloadOrErr[*ParentDataSet](resp)
}

// GetTimePropertiesDataSet retrieves TIME_PROPERTIES_DATA_SET.
func (c *Client) GetTimePropertiesDataSet() (*TimePropertiesDataSet, error) {
	resp, err := c.Request(TIME_PROPERTIES_DATA_SET, GET, AllPortsPortIdentity.PortNumber, nil)
	if err != nil {
		return nil, err
	}
	return payloadOrErr[*TimePropertiesDataSet](resp)
}

// GetPortDataSet retrieves PORT_DATA_SET for one port number.
func (c *Client) GetPortDataSet(portNum uint16) (*PortDataSet, error) {
	resp, err := c.Request(PORT_DATA_SET, GET, portNum, nil)
	if err != nil {
		return nil, err
	}
	return payloadOrErr[*PortDataSet](resp)
}

// GetGrandmasterSettingsNP retrieves the linuxptp GRANDMASTER_SETTINGS_NP.
func (c *Client) GetGrandmasterSettingsNP() (*GrandmasterSettingsNP, error) {
	resp, err := c.Request(GRANDMASTER_SETTINGS_NP, GET, AllPortsPortIdentity.PortNumber, nil)
	if err != nil {
		return nil, err
	}
	return payloadOrErr[*GrandmasterSettingsNP](resp)
}

// SetGrandmasterSettingsNP pushes a new GRANDMASTER_SETTINGS_NP.
func (c *Client) SetGrandmasterSettingsNP(gs *GrandmasterSettingsNP) error {
	_, err := c.Request(GRANDMASTER_SETTINGS_NP, SET, AllPortsPortIdentity.PortNumber, gs)
	return err
}

// GetExternalGrandmasterPropertiesNP retrieves EXTERNAL_GRANDMASTER_PROPERTIES_NP.
func (c *Client) GetExternalGrandmasterPropertiesNP() (*ExternalGrandmasterPropertiesNP, error) {
	resp, err := c.Request(EXTERNAL_GRANDMASTER_PROPERTIES_NP, GET, AllPortsPortIdentity.PortNumber, nil)
	if err != nil {
		return nil, err
	}
	return payloadOrErr[*ExternalGrandmasterPropertiesNP](resp)
}

// SetExternalGrandmasterPropertiesNP pushes a new EXTERNAL_GRANDMASTER_PROPERTIES_NP.
func (c *Client) SetExternalGrandmasterPropertiesNP(egp *ExternalGrandmasterPropertiesNP) error {
	_, err := c.Request(EXTERNAL_GRANDMASTER_PROPERTIES_NP, SET, AllPortsPortIdentity.PortNumber, egp)
	return err
}

// GetPortStatsNP retrieves the linuxptp PORT_STATS_NP counter vector.
func (c *Client) GetPortStatsNP(portNum uint16) (*PortStatsNP, error) {
	resp, err := c.Request(PORT_STATS_NP, GET, portNum, nil)
	if err != nil {
		return nil, err
	}
	return payloadOrErr[*PortStatsNP](resp)
}

func payloadOrErr[T any](m *Message) (T, error) {
	v, e := Payload[T](m)
	if e != ErrOK {
		return v, fmt.Errorf("unexpected reply payload for %s: %w", IDString(m.id), e)
	}
	return v, nil
}

// Monitor polls or subscribes to a Client for ongoing status reporting.
type Monitor struct {
	client              *Client
	interval            time.Duration
	subscription        *SubscriptionManager
	portStates          map[uint16]PortState
	subscriptionTimeout time.Duration
	mu                  sync.RWMutex
}

// NewMonitor wraps client with linuxptp-typical polling/subscription
// defaults (2s poll interval, 30s subscription request timeout).
func NewMonitor(client *Client) *Monitor {
	return &Monitor{
		client:              client,
		interval:            2 * time.Second,
		subscriptionTimeout: 30 * time.Second,
		portStates:          make(map[uint16]PortState),
	}
}

// SetInterval changes the polling cadence used by Start.
func (m *Monitor) SetInterval(d time.Duration) { m.interval = d }

// SetSubscriptionTimeout changes the request timeout StartSubscriptionMonitoring's
// subscription manager waits for each subscription acknowledgement.
func (m *Monitor) SetSubscriptionTimeout(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscriptionTimeout = d
	if m.subscription != nil {
		m.subscription.SetRequestTimeout(d)
	}
}

// Start polls PORT_DATA_SET for every port named in portNums at m.interval
// until ctx is cancelled, printing each observed port-state transition.
func (m *Monitor) Start(ctx context.Context, portNums []uint16) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for _, port := range portNums {
				pds, err := m.client.GetPortDataSet(port)
				if err != nil {
					m.client.logger.Printf("poll port %d: %v", port, err)
					continue
				}
				m.printStatus(pds)
			}
		}
	}
}

func (m *Monitor) printStatus(pds *PortDataSet) {
	m.mu.Lock()
	old, seen := m.portStates[pds.PortIdentity.PortNumber]
	m.portStates[pds.PortIdentity.PortNumber] = pds.PortState
	m.mu.Unlock()

	if !seen || old != pds.PortState {
		m.client.logger.Printf("port %d: %s -> %s", pds.PortIdentity.PortNumber, portStateNames[old], portStateNames[pds.PortState])
	}
}

// StartSubscriptionMonitoring subscribes to every notification class and
// reports port-state transitions as they arrive, instead of polling.
func (m *Monitor) StartSubscriptionMonitoring(ctx context.Context, verbose bool) error {
	m.mu.Lock()
	if m.subscription == nil {
		m.subscription = NewSubscriptionManager(m.client, verbose)
		m.subscription.SetRequestTimeout(m.subscriptionTimeout)
	}
	sub := m.subscription
	m.mu.Unlock()

	sub.OnPortStateChange(m.handlePortStateChange)
	if err := sub.SubscribeToAll(m.interval); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	<-ctx.Done()
	sub.Unsubscribe()
	return ctx.Err()
}

func (m *Monitor) handlePortStateChange(event PortStateChangeEvent) {
	m.client.logger.Printf("port %d: %s -> %s",
		event.PortIdentity.PortNumber, portStateNames[event.OldState], portStateNames[event.NewState])
}
