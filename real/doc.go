// Package real binds libtoxcore through cgo.
//
// # Build
//
// The native engine is only compiled with the libtoxcore build tag:
//
//	go build -tags libtoxcore ./...
//
// pkg-config must be able to find toxcore. Without the tag the package
// still builds; Available is false and NewEngine reports
// interfaces.NewBackendUnavailable.
//
// # Callbacks
//
// Every native callback is a static C trampoline that forwards to an
// exported Go function. The user_data pointer carries a cgo.Handle stored
// in C memory, which resolves back to the Engine or AVEngine. Core
// callbacks are forwarded to the interfaces.CoreCallbacks passed to the
// Iterate call in progress; AV callbacks go to the sink given to
// RegisterCallbacks. Byte and sample buffers are copied before they leave
// the trampoline.
//
// # Thread Safety
//
// Engine and AVEngine are not safe for concurrent use. toxbind serializes
// every call into them.
package real
