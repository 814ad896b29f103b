package testing

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/opd-ai/toxbind/interfaces"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/curve25519"
)

// Network is an in-memory Tox network. Engines created from the same
// Network can befriend each other, chat, transfer files, share
// conferences and place calls without any real I/O.
//
// All engine state lives behind the single network lock. Events for an
// engine are queued in its inbox and fire on that engine's next Iterate.
type Network struct {
	mu     sync.Mutex
	config interfaces.EngineConfig

	engines     map[[32]byte]*Engine
	conferences map[[32]byte]*conference

	deliveryLog []DeliveryRecord
	now         func() time.Time
}

// DeliveryRecord represents a routed packet for test verification.
type DeliveryRecord struct {
	Kind      string
	From      [32]byte
	To        [32]byte
	Size      int
	Timestamp int64
	Success   bool
}

// NetworkStats summarizes the state of a Network.
type NetworkStats struct {
	Engines              int
	Conferences          int
	TotalDeliveries      int
	SuccessfulDeliveries int
	FailedDeliveries     int
	IterationInterval    int
	AVIterationInterval  int
}

// NewNetwork creates an empty network. A nil config selects 50ms core and
// 20ms AV iteration intervals.
func NewNetwork(config *interfaces.EngineConfig) *Network {
	logrus.Warn("SIMULATION FUNCTION - NOT A REAL OPERATION")

	cfg := interfaces.EngineConfig{
		UseSimulation:       true,
		IterationInterval:   50,
		AVIterationInterval: 20,
	}
	if config != nil {
		if err := config.Validate(); err == nil {
			cfg = *config
		} else {
			logrus.WithFields(logrus.Fields{
				"function": "NewNetwork",
				"error":    err.Error(),
			}).Warn("Invalid simulation config, using defaults")
		}
	}

	logrus.WithFields(logrus.Fields{
		"function":              "NewNetwork",
		"iteration_interval":    cfg.IterationInterval,
		"av_iteration_interval": cfg.AVIterationInterval,
	}).Info("Creating simulated Tox network")

	return &Network{
		config:      cfg,
		engines:     make(map[[32]byte]*Engine),
		conferences: make(map[[32]byte]*conference),
		now:         time.Now,
	}
}

// NewEngine creates an engine attached to the network. It has the
// signature of interfaces.EngineFunc.
func (n *Network) NewEngine(opts *interfaces.EngineOptions) (interfaces.Engine, uint32) {
	logrus.Warn("SIMULATION FUNCTION - NOT A REAL OPERATION")

	if opts == nil {
		return nil, interfaces.NewNull
	}
	if code := validateOptions(opts); code != interfaces.OK {
		logrus.WithFields(logrus.Fields{
			"function": "Network.NewEngine",
			"code":     code,
		}).Warn("Rejected engine options")
		return nil, code
	}

	e := &Engine{
		net:     n,
		udp:     opts.UDPEnabled,
		friends: make([]*friend, 0),
		status:  interfaces.UserStatusNone,
	}

	switch opts.SavedataType {
	case interfaces.SavedataNone:
		if err := e.generateKeys(); err != nil {
			return nil, interfaces.NewMalloc
		}
	case interfaces.SavedataSecretKey:
		if len(opts.Savedata) != 32 {
			return nil, interfaces.NewNull
		}
		if err := e.setSecretKey([32]byte(opts.Savedata)); err != nil {
			return nil, interfaces.NewLoadBadFormat
		}
		e.nospam = randomNospam()
	case interfaces.SavedataToxSave:
		if code := e.load(opts.Savedata); code != interfaces.OK {
			return nil, code
		}
	default:
		return nil, interfaces.NewNull
	}

	n.mu.Lock()
	if _, taken := n.engines[e.publicKey]; taken {
		logrus.WithFields(logrus.Fields{
			"function":   "Network.NewEngine",
			"public_key": shortKey(e.publicKey),
		}).Warn("Public key already on the network, replacing route")
	}
	n.engines[e.publicKey] = e
	n.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function":   "Network.NewEngine",
		"public_key": shortKey(e.publicKey),
		"friends":    len(e.friendList()),
	}).Info("Simulated engine created")

	return e, interfaces.OK
}

// Engine returns the engine whose public key is pk, if it is on the
// network.
func (n *Network) Engine(pk [32]byte) (*Engine, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	e, ok := n.engines[pk]
	return e, ok
}

// GetDeliveryLog returns a copy of the delivery log.
func (n *Network) GetDeliveryLog() []DeliveryRecord {
	n.mu.Lock()
	defer n.mu.Unlock()

	log := make([]DeliveryRecord, len(n.deliveryLog))
	copy(log, n.deliveryLog)
	return log
}

// ClearDeliveryLog empties the delivery log.
func (n *Network) ClearDeliveryLog() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.deliveryLog = n.deliveryLog[:0]
}

// GetStats returns statistics about the network.
func (n *Network) GetStats() NetworkStats {
	n.mu.Lock()
	defer n.mu.Unlock()

	stats := NetworkStats{
		Engines:             len(n.engines),
		Conferences:         len(n.conferences),
		TotalDeliveries:     len(n.deliveryLog),
		IterationInterval:   n.config.IterationInterval,
		AVIterationInterval: n.config.AVIterationInterval,
	}
	for _, r := range n.deliveryLog {
		if r.Success {
			stats.SuccessfulDeliveries++
		} else {
			stats.FailedDeliveries++
		}
	}
	return stats
}

// record appends to the delivery log. Caller holds n.mu.
func (n *Network) record(kind string, from, to [32]byte, size int, ok bool) {
	n.deliveryLog = append(n.deliveryLog, DeliveryRecord{
		Kind:      kind,
		From:      from,
		To:        to,
		Size:      size,
		Timestamp: n.now().UnixNano(),
		Success:   ok,
	})
}

// reachable returns the online engine with the given key. Caller holds
// n.mu.
func (n *Network) reachable(pk [32]byte) *Engine {
	e := n.engines[pk]
	if e == nil || e.killed || !e.online {
		return nil
	}
	return e
}

// refreshLinks recomputes the connection state of every friendship of e
// and queues connection events on both ends. Caller holds n.mu.
func (n *Network) refreshLinks(e *Engine) {
	for num, f := range e.friends {
		if f == nil {
			continue
		}
		peer := n.reachable(f.publicKey)
		var back *friend
		var backNum uint32
		if peer != nil && e.online && !e.killed {
			backNum, back = peer.friendByKey(e.publicKey)
		}

		if back == nil {
			e.setFriendConnection(uint32(num), f, interfaces.ConnectionNone)
			if peer != nil {
				if pn, pf := peer.friendByKey(e.publicKey); pf != nil {
					peer.setFriendConnection(pn, pf, interfaces.ConnectionNone)
				}
			}
			continue
		}

		conn := interfaces.ConnectionTCP
		if e.udp && peer.udp {
			conn = interfaces.ConnectionUDP
		}
		wasOnline := f.connection != interfaces.ConnectionNone
		e.setFriendConnection(uint32(num), f, conn)
		peer.setFriendConnection(backNum, back, conn)
		if !wasOnline {
			e.announceTo(peer, backNum, back)
			peer.announceTo(e, uint32(num), f)
		}
	}
}

// deliverRequests sends pending friend requests whose target is now
// reachable. Caller holds n.mu.
func (n *Network) deliverRequests() {
	for _, sender := range n.engines {
		if sender.killed || !sender.online {
			continue
		}
		for _, f := range sender.friends {
			if f == nil || f.request == nil {
				continue
			}
			target := n.reachable(f.publicKey)
			if target == nil {
				continue
			}
			req := f.request
			f.request = nil
			if target.nospam != req.nospam {
				n.record("friend_request", sender.publicKey, target.publicKey, len(req.message), false)
				continue
			}
			n.record("friend_request", sender.publicKey, target.publicKey, len(req.message), true)
			if _, known := target.friendByKey(sender.publicKey); known != nil {
				n.refreshLinks(target)
				continue
			}
			pk := sender.publicKey
			msg := req.message
			target.post(func(cb interfaces.CoreCallbacks) {
				cb.OnFriendRequest(pk[:], msg)
			})
		}
	}
}

func validateOptions(opts *interfaces.EngineOptions) uint32 {
	if opts.ProxyType > interfaces.ProxySOCKS5 {
		return interfaces.NewProxyBadType
	}
	if opts.ProxyType != interfaces.ProxyNone {
		if opts.ProxyHost == "" {
			return interfaces.NewProxyBadHost
		}
		if opts.ProxyPort == 0 {
			return interfaces.NewProxyBadPort
		}
	}
	return interfaces.OK
}

func randomNospam() uint32 {
	var b [4]byte
	_, _ = rand.Read(b[:])
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func publicKeyOf(secret [32]byte) ([32]byte, error) {
	var pk [32]byte
	out, err := curve25519.X25519(secret[:], curve25519.Basepoint)
	if err != nil {
		return pk, err
	}
	copy(pk[:], out)
	return pk, nil
}

func shortKey(pk [32]byte) string {
	return strings.ToUpper(hex.EncodeToString(pk[:4]))
}
