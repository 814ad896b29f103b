package interfaces

import "fmt"

// EngineOptions are the construction options handed to an engine, the
// equivalent of struct Tox_Options.
type EngineOptions struct {
	IPv6Enabled           bool
	UDPEnabled            bool
	LocalDiscoveryEnabled bool
	HolePunchingEnabled   bool

	ProxyType uint32
	ProxyHost string
	ProxyPort uint16

	StartPort uint16
	EndPort   uint16
	TCPPort   uint16

	SavedataType uint32
	Savedata     []byte
}

// EngineConfig selects and tunes the engine implementation.
type EngineConfig struct {
	// UseSimulation selects the in-memory engine instead of libtoxcore.
	UseSimulation bool
	// IterationInterval is the simulated core iteration interval in
	// milliseconds.
	IterationInterval int
	// AVIterationInterval is the simulated AV iteration interval in
	// milliseconds.
	AVIterationInterval int
}

// Validate checks the configuration for out-of-range values.
func (c *EngineConfig) Validate() error {
	if c.IterationInterval <= 0 {
		return fmt.Errorf("iteration interval must be positive, got %d", c.IterationInterval)
	}
	if c.AVIterationInterval <= 0 {
		return fmt.Errorf("AV iteration interval must be positive, got %d", c.AVIterationInterval)
	}
	return nil
}
