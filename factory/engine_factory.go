package factory

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/opd-ai/toxbind/interfaces"
	"github.com/opd-ai/toxbind/real"
	"github.com/opd-ai/toxbind/testing"
	"github.com/sirupsen/logrus"
)

// Validation constants for configuration bounds checking.
const (
	// MinIterationInterval is the smallest simulated iteration interval in
	// milliseconds.
	MinIterationInterval = 1
	// MaxIterationInterval is the largest simulated iteration interval in
	// milliseconds.
	MaxIterationInterval = 1000
)

// EngineFactory creates engine implementations based on configuration.
// It is safe for concurrent use; all methods are protected by an internal mutex.
type EngineFactory struct {
	mu            sync.RWMutex
	defaultConfig *interfaces.EngineConfig

	// network is shared by every simulated engine this factory creates,
	// so they can reach each other.
	network *testing.Network
}

// TestConfigOption is a functional option for customizing test simulation configuration.
type TestConfigOption func(*interfaces.EngineConfig)

// NewEngineFactory creates a new factory with default configuration
func NewEngineFactory() *EngineFactory {
	defaultConfig := createDefaultConfig()
	applyEnvironmentOverrides(defaultConfig)
	logConfigurationInfo(defaultConfig)

	return &EngineFactory{
		defaultConfig: defaultConfig,
	}
}

// createDefaultConfig initializes the default engine configuration.
//
// Default Value Rationale:
//   - UseSimulation: false - libtoxcore by default; simulation must be explicitly enabled
//   - IterationInterval: 50ms - the native library's usual tox_iteration_interval
//   - AVIterationInterval: 20ms - one 20ms audio frame per AV iteration
func createDefaultConfig() *interfaces.EngineConfig {
	return &interfaces.EngineConfig{
		UseSimulation:       false,
		IterationInterval:   50,
		AVIterationInterval: 20,
	}
}

// applyEnvironmentOverrides updates configuration based on environment variables.
// It checks for TOX_* environment variables and overrides defaults if valid values are found.
func applyEnvironmentOverrides(config *interfaces.EngineConfig) {
	parseSimulationSetting(config)
	parseIntervalSetting("TOX_SIM_ITERATION_INTERVAL", &config.IterationInterval)
	parseIntervalSetting("TOX_SIM_AV_ITERATION_INTERVAL", &config.AVIterationInterval)
}

// parseSimulationSetting updates the UseSimulation config from TOX_USE_SIMULATION environment variable.
// It safely parses the boolean value, logs a warning if parsing fails, and only updates config if parsing succeeds.
func parseSimulationSetting(config *interfaces.EngineConfig) {
	if useSimStr := os.Getenv("TOX_USE_SIMULATION"); useSimStr != "" {
		useSim, err := strconv.ParseBool(useSimStr)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"function":    "parseSimulationSetting",
				"env_var":     "TOX_USE_SIMULATION",
				"value":       useSimStr,
				"error":       err.Error(),
				"using_value": config.UseSimulation,
			}).Warn("Failed to parse TOX_USE_SIMULATION environment variable, using default")
			return
		}
		config.UseSimulation = useSim
	}
}

// parseIntervalSetting updates *target from the named environment variable.
// The value must be within [MinIterationInterval, MaxIterationInterval].
func parseIntervalSetting(envVar string, target *int) {
	str := os.Getenv(envVar)
	if str == "" {
		return
	}
	interval, err := strconv.Atoi(str)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function":    "parseIntervalSetting",
			"env_var":     envVar,
			"value":       str,
			"error":       err.Error(),
			"using_value": *target,
		}).Warn("Failed to parse interval environment variable, using default")
		return
	}
	if interval < MinIterationInterval || interval > MaxIterationInterval {
		logrus.WithFields(logrus.Fields{
			"function":    "parseIntervalSetting",
			"env_var":     envVar,
			"value":       interval,
			"min":         MinIterationInterval,
			"max":         MaxIterationInterval,
			"using_value": *target,
		}).Warn("Interval environment variable out of bounds, using default")
		return
	}
	*target = interval
}

// logConfigurationInfo logs the final configuration settings for debugging purposes.
func logConfigurationInfo(config *interfaces.EngineConfig) {
	logrus.WithFields(logrus.Fields{
		"function":              "NewEngineFactory",
		"use_simulation":        config.UseSimulation,
		"iteration_interval":    config.IterationInterval,
		"av_iteration_interval": config.AVIterationInterval,
		"native_available":      real.Available,
	}).Info("Created engine factory with configuration")
}

// CreateEngine creates an engine with the factory's default configuration.
// It has the signature of interfaces.EngineFunc.
func (f *EngineFactory) CreateEngine(opts *interfaces.EngineOptions) (interfaces.Engine, uint32) {
	f.mu.RLock()
	config := *f.defaultConfig
	f.mu.RUnlock()
	return f.CreateEngineWithConfig(opts, &config)
}

// CreateEngineWithConfig creates an engine with a custom configuration.
// Simulated engines join the factory's shared network, which takes its
// intervals from the first configuration it is created with.
func (f *EngineFactory) CreateEngineWithConfig(opts *interfaces.EngineOptions, config *interfaces.EngineConfig) (interfaces.Engine, uint32) {
	if config == nil {
		f.mu.RLock()
		c := *f.defaultConfig
		f.mu.RUnlock()
		config = &c
	}

	logrus.WithFields(logrus.Fields{
		"function":       "CreateEngineWithConfig",
		"use_simulation": config.UseSimulation,
	}).Info("Creating engine implementation")

	if config.UseSimulation {
		return f.simulationNetwork(config).NewEngine(opts)
	}

	if !real.Available {
		logrus.WithFields(logrus.Fields{
			"function": "CreateEngineWithConfig",
			"type":     "real",
		}).Error("libtoxcore support is not compiled in; build with -tags libtoxcore or enable simulation")
	}
	return real.NewEngine(opts)
}

func (f *EngineFactory) simulationNetwork(config *interfaces.EngineConfig) *testing.Network {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.network == nil {
		f.network = testing.NewNetwork(config)
	}
	return f.network
}

// WithIterationInterval sets the simulated core iteration interval in milliseconds.
func WithIterationInterval(ms int) TestConfigOption {
	return func(c *interfaces.EngineConfig) {
		c.IterationInterval = ms
	}
}

// WithAVIterationInterval sets the simulated AV iteration interval in milliseconds.
func WithAVIterationInterval(ms int) TestConfigOption {
	return func(c *interfaces.EngineConfig) {
		c.AVIterationInterval = ms
	}
}

// CreateSimulationForTesting creates a fresh, isolated simulated network.
// Pass its NewEngine method as Options.Engine. Default test configuration
// uses 1ms intervals.
func (f *EngineFactory) CreateSimulationForTesting(opts ...TestConfigOption) *testing.Network {
	testConfig := &interfaces.EngineConfig{
		UseSimulation:       true,
		IterationInterval:   1,
		AVIterationInterval: 1,
	}

	for _, opt := range opts {
		opt(testConfig)
	}

	logrus.WithFields(logrus.Fields{
		"function":              "CreateSimulationForTesting",
		"iteration_interval":    testConfig.IterationInterval,
		"av_iteration_interval": testConfig.AVIterationInterval,
	}).Info("Creating simulation network for testing")

	return testing.NewNetwork(testConfig)
}

// SwitchToSimulation switches the configuration to use simulation
func (f *EngineFactory) SwitchToSimulation() {
	f.mu.Lock()
	defer f.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function": "SwitchToSimulation",
		"previous": f.defaultConfig.UseSimulation,
	}).Info("Switching factory to simulation mode")

	f.defaultConfig.UseSimulation = true
}

// SwitchToReal switches the configuration to use libtoxcore
func (f *EngineFactory) SwitchToReal() {
	f.mu.Lock()
	defer f.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function": "SwitchToReal",
		"previous": f.defaultConfig.UseSimulation,
	}).Info("Switching factory to real mode")

	f.defaultConfig.UseSimulation = false
}

// GetCurrentConfig returns a copy of the current default configuration
func (f *EngineFactory) GetCurrentConfig() *interfaces.EngineConfig {
	f.mu.RLock()
	defer f.mu.RUnlock()

	c := *f.defaultConfig
	return &c
}

// IsUsingSimulation returns true if the factory is configured for simulation
func (f *EngineFactory) IsUsingSimulation() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.defaultConfig.UseSimulation
}

// UpdateConfig updates the factory's default configuration
func (f *EngineFactory) UpdateConfig(config *interfaces.EngineConfig) error {
	if config == nil {
		return fmt.Errorf("config cannot be nil")
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid engine config: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function":       "UpdateConfig",
		"old_simulation": f.defaultConfig.UseSimulation,
		"new_simulation": config.UseSimulation,
		"old_interval":   f.defaultConfig.IterationInterval,
		"new_interval":   config.IterationInterval,
	}).Info("Updating factory configuration")

	c := *config
	f.defaultConfig = &c
	return nil
}
