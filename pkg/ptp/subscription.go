package ptp

import (
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
)

// Subscription constants, matching linuxptp's pmc_agent subscription model.
const (
	UpdatesPerSubscription = 3
	MinUpdateInterval      = 10 * time.Second
	DefaultUpdateInterval  = 60 * time.Second
)

// NotificationCallback is invoked with a decoded notification message.
type NotificationCallback func(msg *Message) error

// PortStateChangeCallback is invoked on a parsed PORT_DATA_SET notification.
type PortStateChangeCallback func(event PortStateChangeEvent)

// ParentDataSetChangeCallback is invoked on a parsed PARENT_DATA_SET notification.
type ParentDataSetChangeCallback func(event ParentDataSetChangeEvent)

// TimeStatusChangeCallback is invoked on a parsed TIME_STATUS_NP notification.
type TimeStatusChangeCallback func(event TimeStatusChangeEvent)

// PortStateChangeEvent reports a port's new operational state.
type PortStateChangeEvent struct {
	PortIdentity PortIdentity
	OldState     PortState
	NewState     PortState
}

// ParentDataSetChangeEvent mirrors the fields of a PARENT_DATA_SET notification.
type ParentDataSetChangeEvent struct {
	ParentPortIdentity                    PortIdentity
	GrandmasterIdentity                   ClockIdentity
	GrandmasterClockQuality               ClockQuality
	GrandmasterPriority1                  uint8
	GrandmasterPriority2                  uint8
	ObservedParentOffsetScaledLogVariance uint16
	ObservedParentClockPhaseChangeRate    int32
}

// TimeStatusChangeEvent mirrors the fields of a TIME_STATUS_NP notification.
type TimeStatusChangeEvent struct {
	MasterOffset               int64
	IngressTime                int64
	CumulativeScaledRateOffset int32
	ScaledLastGmPhaseChange    int32
	GmTimeBaseIndicator        uint16
	LastGmPhaseChange          ClockIdentity
	GmPresent                  bool
	GmIdentity                 ClockIdentity
}

// SubscriptionManager keeps a persistent UDS socket bound so that ptp4l can
// deliver unsolicited notifications, and renews the SUBSCRIBE_EVENTS_NP
// subscription before it lapses (original_source/msg.h's pmc_agent
// subscription-renewal model).
type SubscriptionManager struct {
	client           *Client
	updateInterval   time.Duration
	lastUpdate       time.Time
	isSubscribed     bool
	staySubscribed   bool
	mu               sync.RWMutex
	stop             chan struct{}
	stopped          sync.Once
	callbacks        map[ManagementId]NotificationCallback
	catchAll         NotificationCallback
	verbose          bool
	requestTimeout   time.Duration
	sock             int
	tempPath         string
	subscribedEvents []uint8
	portStates       map[uint16]PortState
}

// NewSubscriptionManager returns a manager bound to client. Nothing is sent
// until one of the SubscribeTo* methods is called.
func NewSubscriptionManager(client *Client, verbose bool) *SubscriptionManager {
	return &SubscriptionManager{
		client:         client,
		updateInterval: DefaultUpdateInterval,
		stop:           make(chan struct{}),
		callbacks:      make(map[ManagementId]NotificationCallback),
		verbose:        verbose,
		requestTimeout: 30 * time.Second,
		portStates:     make(map[uint16]PortState),
	}
}

// OnPortStateChange registers a callback fired for every PORT_DATA_SET
// notification, tracking the previous state per port so OldState is
// populated on the second and later events for a given port.
func (sm *SubscriptionManager) OnPortStateChange(callback PortStateChangeCallback) {
	sm.callbacks[PORT_DATA_SET] = func(msg *Message) error {
		pds, e := Payload[*PortDataSet](msg)
		if e != ErrOK {
			return fmt.Errorf("decode PORT_DATA_SET notification: %w", e)
		}
		sm.mu.Lock()
		old := sm.portStates[pds.PortIdentity.PortNumber]
		sm.portStates[pds.PortIdentity.PortNumber] = pds.PortState
		sm.mu.Unlock()
		callback(PortStateChangeEvent{PortIdentity: pds.PortIdentity, OldState: old, NewState: pds.PortState})
		return nil
	}
}

// OnParentDataSetChange registers a callback fired for every PARENT_DATA_SET
// notification.
func (sm *SubscriptionManager) OnParentDataSetChange(callback ParentDataSetChangeCallback) {
	sm.callbacks[PARENT_DATA_SET] = func(msg *Message) error {
		pd, e := Payload[*ParentDataSet](msg)
		if e != ErrOK {
			return fmt.Errorf("decode PARENT_DATA_SET notification: %w", e)
		}
		callback(ParentDataSetChangeEvent{
			ParentPortIdentity:                    pd.ParentPortIdentity,
			GrandmasterIdentity:                    pd.GrandmasterIdentity,
			GrandmasterClockQuality:                pd.GrandmasterClockQuality,
			GrandmasterPriority1:                   pd.GrandmasterPriority1,
			GrandmasterPriority2:                   pd.GrandmasterPriority2,
			ObservedParentOffsetScaledLogVariance:  pd.ObservedParentOffsetScaledLogVariance,
			ObservedParentClockPhaseChangeRate:     pd.ObservedParentClockPhaseChangeRate,
		})
		return nil
	}
}

// OnTimeStatusChange registers a callback fired for every TIME_STATUS_NP
// notification.
func (sm *SubscriptionManager) OnTimeStatusChange(callback TimeStatusChangeCallback) {
	sm.callbacks[TIME_STATUS_NP] = func(msg *Message) error {
		ts, e := Payload[*TimeStatusNP](msg)
		if e != ErrOK {
			return fmt.Errorf("decode TIME_STATUS_NP notification: %w", e)
		}
		callback(TimeStatusChangeEvent{
			MasterOffset:               ts.MasterOffset,
			IngressTime:                ts.IngressTime,
			CumulativeScaledRateOffset: ts.CumulativeScaledRateOffset,
			ScaledLastGmPhaseChange:    ts.ScaledLastGmPhaseChange,
			GmTimeBaseIndicator:        ts.GmTimeBaseIndicator,
			LastGmPhaseChange:          ClockIdentity(ts.LastGmPhaseChange),
			GmPresent:                  ts.GmPresent,
			GmIdentity:                 ts.GmIdentity,
		})
		return nil
	}
}

// OnNotification registers a raw callback for a given management ID,
// overriding any typed handler previously registered for it.
func (sm *SubscriptionManager) OnNotification(id ManagementId, callback NotificationCallback) {
	sm.callbacks[id] = callback
}

// OnUnhandled registers a callback invoked for notifications with no
// registered handler, useful for tracing.
func (sm *SubscriptionManager) OnUnhandled(callback NotificationCallback) {
	sm.catchAll = callback
}

// IsSubscribed reports whether the subscription was renewed recently enough
// to still be considered live by ptp4l (pmc_agent_is_subscribed's
// UpdatesPerSubscription*interval window).
func (sm *SubscriptionManager) IsSubscribed() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	if !sm.isSubscribed {
		return false
	}
	return time.Since(sm.lastUpdate) <= UpdatesPerSubscription*sm.updateInterval
}

// SetRequestTimeout changes how long each SUBSCRIBE_EVENTS_NP SET waits
// for its acknowledgement; the listener's own read timeout is fixed.
func (sm *SubscriptionManager) SetRequestTimeout(timeout time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.requestTimeout = timeout
}

// SubscribeToPortStateChanges subscribes to NOTIFY_PORT_STATE only.
func (sm *SubscriptionManager) SubscribeToPortStateChanges(interval time.Duration) error {
	return sm.SubscribeToEvents(interval, NOTIFY_PORT_STATE)
}

// SubscribeToTimeSync subscribes to NOTIFY_TIME_SYNC only.
func (sm *SubscriptionManager) SubscribeToTimeSync(interval time.Duration) error {
	return sm.SubscribeToEvents(interval, NOTIFY_TIME_SYNC)
}

// SubscribeToParentDataSetChanges subscribes to NOTIFY_PARENT_DATA_SET only.
func (sm *SubscriptionManager) SubscribeToParentDataSetChanges(interval time.Duration) error {
	return sm.SubscribeToEvents(interval, NOTIFY_PARENT_DATA_SET)
}

// SubscribeToAll subscribes to every notification class linuxptp exposes.
func (sm *SubscriptionManager) SubscribeToAll(interval time.Duration) error {
	return sm.SubscribeToEvents(interval, NOTIFY_PORT_STATE, NOTIFY_TIME_SYNC, NOTIFY_PARENT_DATA_SET)
}

// SubscribeToEvents opens a persistent socket, sends the initial
// SUBSCRIBE_EVENTS_NP SET, and starts the background listener and renewal
// loop. interval is clamped to MinUpdateInterval as ptp4l itself does.
func (sm *SubscriptionManager) SubscribeToEvents(interval time.Duration, events ...uint8) error {
	sm.mu.Lock()
	if interval < MinUpdateInterval {
		interval = MinUpdateInterval
	}
	sm.updateInterval = interval
	sm.staySubscribed = true
	sm.mu.Unlock()

	if err := sm.openSocket(); err != nil {
		return err
	}

	sm.mu.Lock()
	sm.subscribedEvents = append([]uint8(nil), events...)
	sm.mu.Unlock()

	if err := sm.sendSubscriptionWithEvents(events...); err != nil {
		sm.cleanup()
		return fmt.Errorf("send SUBSCRIBE_EVENTS_NP: %w", err)
	}

	sm.mu.Lock()
	sm.isSubscribed = true
	sm.lastUpdate = time.Now()
	sm.mu.Unlock()

	go sm.listen()
	go sm.renewalLoop()

	if sm.verbose {
		log.Printf("subscribed: interval=%v events=%v", interval, events)
	}
	return nil
}

// Unsubscribe stops renewal, stops the listener, and releases the socket.
func (sm *SubscriptionManager) Unsubscribe() {
	sm.mu.Lock()
	sm.staySubscribed = false
	sm.isSubscribed = false
	sm.mu.Unlock()
	sm.stopped.Do(func() { close(sm.stop) })
	sm.cleanup()
}

func (sm *SubscriptionManager) openSocket() error {
	fd, err := syscall.Socket(syscall.AF_UNIX, syscall.SOCK_DGRAM, 0)
	if err != nil {
		return fmt.Errorf("socket: %w", err)
	}
	tempPath := fmt.Sprintf("/var/run/pmc-sub.%d.%d", os.Getpid(), atomic.AddInt64(&tempPathCounter, 1))
	if err := syscall.Bind(fd, &syscall.SockaddrUnix{Name: tempPath}); err != nil {
		syscall.Close(fd)
		return fmt.Errorf("bind %s: %w", tempPath, err)
	}
	sm.sock = fd
	sm.tempPath = tempPath
	if sm.verbose {
		log.Printf("subscription socket bound at %s (fd=%d)", tempPath, fd)
	}
	return nil
}

func (sm *SubscriptionManager) cleanup() {
	if sm.sock > 0 {
		syscall.Close(sm.sock)
		sm.sock = 0
	}
	if sm.tempPath != "" {
		os.Remove(sm.tempPath)
		sm.tempPath = ""
	}
}

// renewalLoop resends the subscription every updateInterval until Unsubscribe.
func (sm *SubscriptionManager) renewalLoop() {
	ticker := time.NewTicker(sm.updateInterval)
	defer ticker.Stop()
	for {
		select {
		case <-sm.stop:
			return
		case <-ticker.C:
			sm.mu.RLock()
			stay := sm.staySubscribed
			events := sm.subscribedEvents
			sm.mu.RUnlock()
			if !stay {
				return
			}
			if err := sm.sendSubscriptionWithEvents(events...); err != nil {
				if sm.verbose {
					log.Printf("subscription renewal failed: %v", err)
				}
				continue
			}
			sm.mu.Lock()
			sm.lastUpdate = time.Now()
			sm.mu.Unlock()
			if sm.verbose {
				log.Println("subscription renewed")
			}
		}
	}
}

// listen reads notifications off the persistent socket until Unsubscribe.
func (sm *SubscriptionManager) listen() {
	buf := make([]byte, maxPMCMessage)
	for {
		select {
		case <-sm.stop:
			return
		default:
		}
		timeout := syscall.Timeval{Sec: 1, Usec: 0}
		if err := syscall.SetsockoptTimeval(sm.sock, syscall.SOL_SOCKET, syscall.SO_RCVTIMEO, &timeout); err != nil {
			if sm.verbose {
				log.Printf("set recv timeout: %v", err)
			}
			return
		}
		n, _, err := syscall.Recvfrom(sm.sock, buf, 0)
		if err != nil {
			if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
				continue
			}
			if sm.verbose {
				log.Printf("recvfrom: %v", err)
			}
			continue
		}
		sm.handleNotification(buf[:n])
	}
}

func (sm *SubscriptionManager) handleNotification(data []byte) {
	msg := NewMessage()
	switch e := msg.Parse(data); e {
	case ErrOK:
	case ErrMSG:
		// a decoded MANAGEMENT_ERROR_STATUS TLV; still dispatched below so a
		// subscriber can see the errID/errDisplay pmc reported.
		if sm.verbose {
			errID, display := msg.ErrDisplay()
			log.Printf("notification carried a management error: %s%s", errID, formatDisplay(display))
		}
	default:
		if sm.verbose {
			log.Printf("failed to parse notification: %v", e)
		}
		return
	}
	sm.mu.RLock()
	callback, ok := sm.callbacks[msg.id]
	catchAll := sm.catchAll
	sm.mu.RUnlock()

	if ok {
		if err := callback(msg); err != nil && sm.verbose {
			log.Printf("callback error for %s: %v", IDString(msg.id), err)
		}
		return
	}
	if catchAll != nil {
		catchAll(msg)
	} else if sm.verbose {
		log.Printf("no callback registered for %s", IDString(msg.id))
	}
}

// sendSubscriptionWithEvents builds and sends a SUBSCRIBE_EVENTS_NP SET,
// then drains the immediate acknowledgement.
func (sm *SubscriptionManager) sendSubscriptionWithEvents(events ...uint8) error {
	sm.mu.RLock()
	duration := uint16(UpdatesPerSubscription * sm.updateInterval / time.Second)
	timeout := sm.requestTimeout
	sm.mu.RUnlock()

	var mask uint8
	for _, e := range events {
		mask |= e
	}
	payload := &SubscribeEventsNP{Duration: duration}
	payload.Bitmask[0] = mask

	req := NewMessage()
	sm.client.mu.Lock()
	req.DomainNumber = sm.client.domain
	req.SourcePortIdentity = PortIdentity{ClockIdentity: sm.client.clockID, PortNumber: sm.client.portNum}
	req.SequenceID = sm.client.seqID
	sm.client.seqID++
	udsPath := sm.client.udsPath
	sm.client.mu.Unlock()
	req.TargetPortIdentity = PortIdentity{ClockIdentity: AllOnesClockIdentity, PortNumber: AllPortsPortIdentity.PortNumber}

	if _, e := req.Build(SUBSCRIBE_EVENTS_NP, SET, payload); e != ErrOK {
		return fmt.Errorf("build SUBSCRIBE_EVENTS_NP: %w", e)
	}

	if err := syscall.Sendto(sm.sock, req.GetSendBuf(), 0, &syscall.SockaddrUnix{Name: udsPath}); err != nil {
		return fmt.Errorf("sendto: %w", err)
	}

	respBuf := make([]byte, maxPMCMessage)
	tv := syscall.NsecToTimeval(timeout.Nanoseconds())
	syscall.SetsockoptTimeval(sm.sock, syscall.SOL_SOCKET, syscall.SO_RCVTIMEO, &tv)
	rn, _, err := syscall.Recvfrom(sm.sock, respBuf, 0)
	if err != nil {
		return fmt.Errorf("recvfrom ack: %w", err)
	}
	if sm.verbose {
		log.Printf("subscription ack: %d bytes", rn)
	}
	return nil
}
