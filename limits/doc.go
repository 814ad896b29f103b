// Package limits provides centralized size constants and validation
// functions for toxbind.
//
// # Protocol Limits
//
// The constants mirror the native library's TOX_MAX_* values:
//
//   - MaxMessageLength (1372 bytes): one friend or conference message frame.
//   - MaxNameLength (128 bytes) and MaxStatusMessageLength (1007 bytes):
//     self and friend profile fields.
//   - MaxFriendRequestLength (1016 bytes): the text sent with a friend request.
//   - MaxCustomPacketSize (1373 bytes): lossy and lossless custom packets.
//
// # Split Budgets
//
// FriendSplitLength (1368) and ConferenceSplitLength (1300) are the chunk
// budgets used by the messaging package when a long text has to be sent as
// several consecutive messages.
//
// # Validation Functions
//
//	err := limits.ValidateFriendMessage(message)
//	if errors.Is(err, limits.ErrMessageTooLarge) {
//	    // split it first
//	}
//
// For custom size limits, use the generic ValidateMessageSize function:
//
//	err := limits.ValidateMessageSize(data, limits.MaxNameLength)
package limits
