// Package messaging splits long text into chunks that each fit one message
// frame of the native engine.
//
// # Splitting Rules
//
// A [Splitter] walks the text with a byte offset and emits chunks of at most
// the configured budget:
//
//   - If the rest of the text fits, it is emitted whole.
//   - Otherwise the text is cut at the budget, moved back so no UTF-8 code
//     point is split.
//   - From that cut, up to half a budget is searched backward for a space,
//     tab or newline. When one is found the chunk ends before it and the
//     whitespace byte is dropped. When none is found the chunk is a hard
//     break at the cut.
//
// Empty text yields no chunks. No chunk is ever empty.
//
// # Usage
//
//	for chunk := range messaging.FriendSplit(text).All() {
//	    if _, err := tox.SendFriendMessage(friend, toxbind.MessageNormal, chunk); err != nil {
//	        return err
//	    }
//	}
//
// The two presets use limits.FriendSplitLength and
// limits.ConferenceSplitLength.
package messaging
