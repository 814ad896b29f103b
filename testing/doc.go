// Package testing provides an in-memory Tox network for deterministic
// testing of toxbind.
//
// # Overview
//
// A Network routes everything a pair of real Tox instances would exchange:
// friend requests, presence, messages with read receipts, file transfers,
// conferences, custom packets, calls and group audio. Engines created from
// the same Network implement interfaces.Engine and interfaces.AVEngine, so
// the binding cannot tell them apart from libtoxcore.
//
// # Usage
//
//	network := testing.NewNetwork(&interfaces.EngineConfig{
//	    UseSimulation:       true,
//	    IterationInterval:   5,
//	    AVIterationInterval: 5,
//	})
//
//	opts := toxbind.NewOptions()
//	opts.Engine = network.NewEngine
//	alice, err := toxbind.New(opts, nil)
//
// An engine goes online once Bootstrap or AddTCPRelay succeeds with any
// non-empty host and non-zero port. Friends are connected while both
// sides are online and have each other in their friend lists.
//
// # Delivery
//
// Every event for an engine is queued in its inbox and fires on its next
// Iterate, in the order it was produced. Group audio is delivered from the
// core Iterate. Inject queues arbitrary callback invocations, which lets
// tests feed the binding out-of-range values.
//
// Every routed packet is recorded; GetDeliveryLog and GetStats expose the
// log for verification.
//
// # Savedata
//
// Savedata is JSON holding keys, profile and friends. Encrypted savedata is
// rejected with the tox_new LoadEncrypted code.
//
// # Thread Safety
//
// All engines of a Network share one lock, so every method is safe for
// concurrent use. Callbacks fire outside the lock.
package testing
