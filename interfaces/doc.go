// Package interfaces defines the boundary between toxbind and the engine
// that does the actual protocol work.
//
// # Core Interfaces
//
// [Engine] and [AVEngine] mirror the native tox_* and toxav_* calls one to
// one. They take and return plain values, and report failures through the
// uint32 status codes declared in abi.go, numbered exactly like the native
// TOX_ERR_* and TOXAV_ERR_* enums. Translating those codes into Go errors is
// the binding's job, not the engine's.
//
// [CoreCallbacks], [AVCallbacks] and [GroupAudioCallbacks] are the sinks the
// engines report notifications to. The core engine receives its sink per
// Iterate call, the same way tox_iterate receives user data. The AV engine
// receives its sink once, at registration time.
//
//	engine.Iterate(sink)           // core callbacks fire inside
//	av.RegisterCallbacks(sink)     // AV callbacks fire inside av.Iterate
//
// # Buffer Lifetime
//
// Slices passed to callbacks belong to the engine and must be copied if they
// are kept after the callback returns.
//
// # Implementation Selection
//
// The factory package creates implementations based on [EngineConfig]:
//   - UseSimulation=true: the in-memory engine from the testing package
//   - UseSimulation=false: the libtoxcore engine from the real package
package interfaces
