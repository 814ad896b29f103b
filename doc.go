// Package toxbind is a safe Go binding over a Tox engine.
//
// Tox is a peer-to-peer, encrypted messaging protocol designed for secure
// communications without relying on centralized infrastructure. toxbind
// does not implement the protocol. It drives an engine (libtoxcore through
// cgo, or an in-memory simulation) and turns its callbacks into a queue of
// owned, typed events that the caller polls.
//
// # Getting Started
//
// Create a Tox, connect it to the network and poll it in a loop:
//
//	tox, err := toxbind.New(toxbind.NewOptions(), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tox.Kill()
//
//	pk, _ := toxbind.ParsePublicKey("F404ABAA1C99A9D37D61AB54898F56793E1DEF8BD46B1038B9D822E8460FAB67")
//	if err := tox.Bootstrap("node.tox.biribiri.org", 33445, pk); err != nil {
//	    log.Fatal(err)
//	}
//
//	for tox.IsAlive() {
//	    for ev := range tox.Events() {
//	        switch ev := ev.(type) {
//	        case *toxbind.FriendRequestEvent:
//	            tox.AddFriendNoRequest(ev.PublicKey)
//	        case *toxbind.FriendMessageEvent:
//	            tox.SendFriendMessage(ev.Friend, ev.Kind, ev.Message)
//	        }
//	    }
//	    tox.Wait()
//	}
//
// # Events
//
// Callbacks fire only inside Tick. Each one is converted into an Event and
// queued in the order the engine produced it; Iter and Events run one Tick
// and then drain the queue without blocking. Text is decoded lossily, so
// invalid UTF-8 from the network becomes U+FFFD instead of an error. An
// event carrying a discriminant the binding does not know is skipped and
// logged; it never fails the Tick.
//
// # Errors
//
// Every operation returns a per-operation error enum such as
// FriendAddError or FileSendError, mirroring the engine's status codes.
// After Kill every operation returns ErrToxClosed. Use errors.Is to test
// for a specific value:
//
//	if errors.Is(err, toxbind.FriendSendMessageFriendNotConnected) {
//	    // retry later
//	}
//
// # Long Messages
//
// SendFriendMessageSplit and SendConferenceMessageSplit cut text that does
// not fit into one message with the messaging package. Cuts prefer
// whitespace and never split a UTF-8 code point.
//
// # Audio and Video
//
// ToxAV needs the same Tox as the core loop, but usually runs in its own
// goroutine. Wrap the Tox in a SharedTox, create the ToxAV from it and
// drive each side from its own loop:
//
//	shared := toxbind.NewSharedTox(tox)
//	av, err := toxbind.NewToxAV(shared)
//
//	go func() {
//	    for av.IsAlive() {
//	        av.Tick()
//	        av.Wait()
//	    }
//	}()
//
//	for shared.Refs() > 0 {
//	    for _, ev := range shared.Events() {
//	        handle(ev)
//	    }
//	    time.Sleep(shared.IterationInterval())
//	}
//
// AV events are delivered through the same queue as core events. Audio
// conferences created with AddAVConference stay usable until the ToxAV is
// killed; afterwards their methods return ErrAVClosed.
//
// # Engine Selection
//
// Options.Engine picks the engine. When it is nil, factory.EngineFactory
// decides: the simulation when TOX_USE_SIMULATION is true, libtoxcore
// otherwise. libtoxcore is only linked with the libtoxcore build tag;
// without it New fails with InitBackendUnavailable.
//
// Tests usually build a testing.Network and pass its NewEngine:
//
//	network := testing.NewNetwork(nil)
//	opts := toxbind.NewOptions()
//	opts.Engine = network.NewEngine
//
// # Persistence
//
// Save returns the engine state; pass it to New to restore the identity
// and the friend list. The encryptsave package encrypts savedata with a
// passphrase.
//
// # Thread Safety
//
// All methods of Tox, SharedTox, ToxAV and GroupAudio are safe for
// concurrent use. Locks are always taken in the order SharedTox, Tox,
// ToxAV.
package toxbind
