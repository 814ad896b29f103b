package toxbind

import (
	"sync"
	"time"

	"github.com/opd-ai/toxbind/interfaces"
	"github.com/opd-ai/toxbind/limits"
	"github.com/opd-ai/toxbind/queue"
	"github.com/sirupsen/logrus"
)

// defaultIterationInterval is returned once the engine is gone.
const defaultIterationInterval = 50 * time.Millisecond

// Tox is a handle to one core engine instance.
//
// A Tox is Live from New until Kill. Every engine call is serialized by an
// internal mutex, so Kill never runs concurrently with a Tick. Events raised
// during a Tick are queued and read with Iter or Events; events still queued
// when Kill runs are discarded.
type Tox struct {
	mu     sync.Mutex
	engine interfaces.Engine
	bridge *eventBridge
	tx     *queue.Sender[Event]
	rx     *queue.Receiver[Event]

	// av is the AV instance bound to this Tox, killed before the engine.
	av *ToxAV
}

// New creates a Tox instance. savedata is the output of an earlier Save, or
// nil for a fresh identity.
func New(options *Options, savedata []byte) (*Tox, error) {
	if options == nil {
		options = NewOptions()
	}

	engine, code := options.engineFunc()(options.engineOptions(savedata))
	if err := check[InitError](code); err != nil {
		logrus.WithFields(logrus.Fields{
			"function":      "New",
			"savedata_size": len(savedata),
			"error":         err.Error(),
		}).Error("Failed to create Tox instance")
		return nil, err
	}
	if engine == nil {
		return nil, InitNull
	}

	tx, rx := queue.New[Event]()
	t := &Tox{
		engine: engine,
		bridge: newEventBridge(tx),
		tx:     tx,
		rx:     rx,
	}

	logrus.WithFields(logrus.Fields{
		"function":   "New",
		"public_key": t.PublicKey().String(),
	}).Info("Tox instance created")

	return t, nil
}

// withEngine runs fn while holding the engine lock. It fails with
// ErrToxClosed after Kill.
func (t *Tox) withEngine(fn func(e interfaces.Engine) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.engine == nil {
		return ErrToxClosed
	}
	return fn(t.engine)
}

// Tick runs one engine iteration. Callbacks fired during the iteration are
// queued as events. Tick does nothing after Kill.
func (t *Tox) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.engine == nil {
		return
	}
	t.engine.Iterate(t.bridge)
}

// IterationInterval is how long the driver should wait before the next
// Tick. It is a throttling hint, not a deadline.
func (t *Tox) IterationInterval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.engine == nil {
		return defaultIterationInterval
	}
	return time.Duration(t.engine.IterationInterval()) * time.Millisecond
}

// Wait sleeps for IterationInterval.
func (t *Tox) Wait() {
	time.Sleep(t.IterationInterval())
}

// IsAlive reports whether Kill has not been called yet.
func (t *Tox) IsAlive() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.engine != nil
}

// Kill tears the instance down. A bound ToxAV is killed first. Queued events
// are discarded. Calling Kill more than once is harmless.
func (t *Tox) Kill() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.engine == nil {
		return
	}

	if t.av != nil {
		t.av.killEngine()
		t.av = nil
	}

	t.engine.Kill()
	t.engine = nil
	dropped := t.tx.Close()

	logrus.WithFields(logrus.Fields{
		"function":       "Kill",
		"dropped_events": dropped,
	}).Info("Tox instance killed")
}

// Save returns the engine state for a later New. It returns nil after Kill.
func (t *Tox) Save() []byte {
	var data []byte
	_ = t.withEngine(func(e interfaces.Engine) error {
		data = e.Savedata()
		return nil
	})
	return data
}

// Bootstrap connects to a DHT node.
func (t *Tox) Bootstrap(host string, port uint16, publicKey PublicKey) error {
	return t.bootstrap("Bootstrap", host, port, publicKey, interfaces.Engine.Bootstrap)
}

// AddTCPRelay adds a TCP relay the engine may route through.
func (t *Tox) AddTCPRelay(host string, port uint16, publicKey PublicKey) error {
	return t.bootstrap("AddTCPRelay", host, port, publicKey, interfaces.Engine.AddTCPRelay)
}

func (t *Tox) bootstrap(op, host string, port uint16, publicKey PublicKey,
	call func(interfaces.Engine, string, uint16, [32]byte) uint32,
) error {
	if len(host) > limits.MaxHostnameLength {
		return BootstrapBadHost
	}

	err := t.withEngine(func(e interfaces.Engine) error {
		return check[BootstrapError](call(e, host, port, publicKey))
	})

	fields := logrus.Fields{
		"function":   op,
		"host":       host,
		"port":       port,
		"public_key": publicKey.String(),
	}
	if err != nil {
		fields["error"] = err.Error()
		logrus.WithFields(fields).Warn("Bootstrap node rejected")
		return err
	}
	logrus.WithFields(fields).Info("Bootstrap node added")
	return nil
}

// SelfConnectionStatus returns this instance's network connection.
func (t *Tox) SelfConnectionStatus() Connection {
	status := ConnectionNone
	_ = t.withEngine(func(e interfaces.Engine) error {
		if c, ok := parseConnection(e.SelfConnectionStatus()); ok {
			status = c
		}
		return nil
	})
	return status
}

// Address returns the address others use to add this instance.
func (t *Tox) Address() Address {
	var a Address
	_ = t.withEngine(func(e interfaces.Engine) error {
		a = e.SelfAddress()
		return nil
	})
	return a
}

// Nospam returns the nospam part of the address.
func (t *Tox) Nospam() uint32 {
	var n uint32
	_ = t.withEngine(func(e interfaces.Engine) error {
		n = e.SelfNospam()
		return nil
	})
	return n
}

// SetNospam changes the nospam part of the address. Pending requests sent to
// the old address are refused afterwards.
func (t *Tox) SetNospam(nospam uint32) error {
	return t.withEngine(func(e interfaces.Engine) error {
		e.SelfSetNospam(nospam)
		return nil
	})
}

// PublicKey returns this instance's long-term public key.
func (t *Tox) PublicKey() PublicKey {
	var pk PublicKey
	_ = t.withEngine(func(e interfaces.Engine) error {
		pk = e.SelfPublicKey()
		return nil
	})
	return pk
}

// SecretKey returns this instance's long-term secret key.
func (t *Tox) SecretKey() SecretKey {
	var sk SecretKey
	_ = t.withEngine(func(e interfaces.Engine) error {
		sk = e.SelfSecretKey()
		return nil
	})
	return sk
}

// SetName sets the nickname shown to friends.
func (t *Tox) SetName(name string) error {
	if !limits.FitsField([]byte(name), limits.MaxNameLength) {
		return SetInfoTooLong
	}
	return t.withEngine(func(e interfaces.Engine) error {
		return check[SetInfoError](e.SelfSetName([]byte(name)))
	})
}

// Name returns the nickname.
func (t *Tox) Name() string {
	var name string
	_ = t.withEngine(func(e interfaces.Engine) error {
		name = decodeLossy(e.SelfName())
		return nil
	})
	return name
}

// SetStatusMessage sets the status message shown to friends.
func (t *Tox) SetStatusMessage(message string) error {
	if !limits.FitsField([]byte(message), limits.MaxStatusMessageLength) {
		return SetInfoTooLong
	}
	return t.withEngine(func(e interfaces.Engine) error {
		return check[SetInfoError](e.SelfSetStatusMessage([]byte(message)))
	})
}

// StatusMessage returns the status message.
func (t *Tox) StatusMessage() string {
	var msg string
	_ = t.withEngine(func(e interfaces.Engine) error {
		msg = decodeLossy(e.SelfStatusMessage())
		return nil
	})
	return msg
}

// SetStatus sets the presence shown to friends.
func (t *Tox) SetStatus(status UserStatus) error {
	return t.withEngine(func(e interfaces.Engine) error {
		e.SelfSetStatus(uint32(status))
		return nil
	})
}

// Status returns the presence.
func (t *Tox) Status() UserStatus {
	status := UserStatusNone
	_ = t.withEngine(func(e interfaces.Engine) error {
		if s, ok := parseUserStatus(e.SelfStatus()); ok {
			status = s
		}
		return nil
	})
	return status
}

// SendLossyPacket sends a custom lossy packet. The first byte must be in
// the range 200-254.
func (t *Tox) SendLossyPacket(friend uint32, data []byte) error {
	return t.withEngine(func(e interfaces.Engine) error {
		return check[FriendCustomPacketError](e.FriendSendLossyPacket(friend, data))
	})
}

// SendLosslessPacket sends a custom lossless packet. The first byte must be
// in the range 160-191.
func (t *Tox) SendLosslessPacket(friend uint32, data []byte) error {
	return t.withEngine(func(e interfaces.Engine) error {
		return check[FriendCustomPacketError](e.FriendSendLosslessPacket(friend, data))
	})
}
