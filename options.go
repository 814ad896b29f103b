package toxbind

import (
	"sync"

	"github.com/opd-ai/toxbind/factory"
	"github.com/opd-ai/toxbind/interfaces"
)

// Options contains the configuration for a new Tox instance.
type Options struct {
	UDPEnabled     bool
	IPv6Enabled    bool
	LocalDiscovery bool
	HolePunching   bool
	Proxy          *ProxyOptions
	StartPort      uint16
	EndPort        uint16
	TCPPort        uint16

	// SecretKey creates the instance from an existing key instead of a
	// random one. It is ignored when savedata is passed to New.
	SecretKey *SecretKey

	// Engine overrides engine selection. When nil the default
	// factory.EngineFactory decides, honoring TOX_USE_SIMULATION.
	Engine interfaces.EngineFunc
}

// ProxyOptions contains proxy configuration.
type ProxyOptions struct {
	Type ProxyType
	Host string
	Port uint16
}

// NewOptions returns the default options.
func NewOptions() *Options {
	return &Options{
		UDPEnabled:     true,
		IPv6Enabled:    true,
		LocalDiscovery: true,
		HolePunching:   true,
		StartPort:      33445,
		EndPort:        33545,
		TCPPort:        0, // Disabled by default
	}
}

func (o *Options) engineOptions(savedata []byte) *interfaces.EngineOptions {
	eo := &interfaces.EngineOptions{
		IPv6Enabled:           o.IPv6Enabled,
		UDPEnabled:            o.UDPEnabled,
		LocalDiscoveryEnabled: o.LocalDiscovery,
		HolePunchingEnabled:   o.HolePunching,
		StartPort:             o.StartPort,
		EndPort:               o.EndPort,
		TCPPort:               o.TCPPort,
		SavedataType:          interfaces.SavedataNone,
	}
	if o.Proxy != nil {
		eo.ProxyType = uint32(o.Proxy.Type)
		eo.ProxyHost = o.Proxy.Host
		eo.ProxyPort = o.Proxy.Port
	}

	switch {
	case len(savedata) > 0:
		eo.SavedataType = interfaces.SavedataToxSave
		eo.Savedata = savedata
	case o.SecretKey != nil:
		eo.SavedataType = interfaces.SavedataSecretKey
		eo.Savedata = append([]byte(nil), o.SecretKey[:]...)
	}
	return eo
}

func (o *Options) engineFunc() interfaces.EngineFunc {
	if o.Engine != nil {
		return o.Engine
	}
	return defaultFactory().CreateEngine
}

var (
	factoryOnce sync.Once
	engines     *factory.EngineFactory
)

func defaultFactory() *factory.EngineFactory {
	factoryOnce.Do(func() {
		engines = factory.NewEngineFactory()
	})
	return engines
}
