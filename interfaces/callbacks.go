package interfaces

// CoreCallbacks receives core engine notifications. Byte slices passed to
// these methods belong to the engine and are only valid until the method
// returns. Enum-typed arguments are raw native discriminants and may be out
// of range.
type CoreCallbacks interface {
	OnSelfConnectionStatus(status uint32)
	OnFriendRequest(publicKey []byte, message []byte)
	OnFriendMessage(friend uint32, kind uint32, message []byte)
	OnFriendName(friend uint32, name []byte)
	OnFriendStatusMessage(friend uint32, message []byte)
	OnFriendStatus(friend uint32, status uint32)
	OnFriendConnectionStatus(friend uint32, status uint32)
	OnFriendTyping(friend uint32, typing bool)
	OnFriendReadReceipt(friend uint32, messageID uint32)
	OnFileRecvControl(friend, file uint32, control uint32)
	OnFileChunkRequest(friend, file uint32, position uint64, length uint64)
	OnFileRecv(friend, file uint32, kind uint32, size uint64, name []byte)
	OnFileRecvChunk(friend, file uint32, position uint64, data []byte)
	OnConferenceInvite(friend uint32, kind uint32, cookie []byte)
	OnConferenceConnected(conference uint32)
	OnConferenceMessage(conference, peer uint32, kind uint32, message []byte)
	OnConferenceTitle(conference, peer uint32, title []byte)
	OnConferencePeerName(conference, peer uint32, name []byte)
	OnConferencePeerListChanged(conference uint32)
	OnFriendLossyPacket(friend uint32, data []byte)
	OnFriendLosslessPacket(friend uint32, data []byte)
}

// AVCallbacks receives audio/video engine notifications. The same buffer
// lifetime rules as CoreCallbacks apply.
type AVCallbacks interface {
	OnCall(friend uint32, audioEnabled, videoEnabled bool)
	OnCallState(friend uint32, state uint32)
	OnAudioBitRate(friend uint32, bitRate uint32)
	OnVideoBitRate(friend uint32, bitRate uint32)
	OnAudioReceiveFrame(friend uint32, pcm []int16, sampleCount uint64, channels uint8, samplingRate uint32)
	OnVideoReceiveFrame(friend uint32, width, height uint16, y, u, v []byte, yStride, uStride, vStride int32)
}

// GroupAudioCallbacks receives audio from audio conferences.
type GroupAudioCallbacks interface {
	OnGroupAudio(conference, peer uint32, pcm []int16, samples uint32, channels uint8, sampleRate uint32)
}
