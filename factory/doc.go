// Package factory creates the engine behind a Tox instance.
//
// The factory abstracts the choice between libtoxcore (package real) and the
// in-memory network (package testing), allowing the binding to run against
// either without changing consuming code.
//
// # Configuration
//
// The factory supports configuration via environment variables:
//   - TOX_USE_SIMULATION: "true" or "false" to enable simulation mode
//   - TOX_SIM_ITERATION_INTERVAL: simulated core iteration interval in ms (1-1000)
//   - TOX_SIM_AV_ITERATION_INTERVAL: simulated AV iteration interval in ms (1-1000)
//
// Invalid values are logged and ignored.
//
// # Usage
//
//	f := factory.NewEngineFactory()
//	engine, code := f.CreateEngine(opts)
//
// For tests, CreateSimulationForTesting returns an isolated network whose
// NewEngine method can be handed to toxbind.Options.Engine:
//
//	network := f.CreateSimulationForTesting(factory.WithIterationInterval(5))
//	opts := toxbind.NewOptions()
//	opts.Engine = network.NewEngine
//
// # Thread Safety
//
// EngineFactory is safe for concurrent use.
package factory
