package interfaces

// Engine is the core engine surface. Every method maps onto one native
// call: values go in and out as plain bytes and integers, and failures are
// reported as the native uint32 status codes declared in abi.go.
//
// Implementations are not required to be safe for concurrent use; the
// binding serializes all calls into one Engine.
type Engine interface {
	// Iterate runs one step of the engine. Callbacks on cb fire
	// synchronously before Iterate returns.
	Iterate(cb CoreCallbacks)
	// IterationInterval is the suggested wait before the next Iterate, in
	// milliseconds.
	IterationInterval() uint32
	// Kill releases the engine. No method may be called afterwards.
	Kill()
	// Savedata serializes the engine state for a later EngineOptions.Savedata.
	Savedata() []byte

	Bootstrap(host string, port uint16, publicKey [32]byte) uint32
	AddTCPRelay(host string, port uint16, publicKey [32]byte) uint32
	SelfConnectionStatus() uint32

	SelfAddress() [38]byte
	SelfNospam() uint32
	SelfSetNospam(nospam uint32)
	SelfPublicKey() [32]byte
	SelfSecretKey() [32]byte
	SelfSetName(name []byte) uint32
	SelfName() []byte
	SelfSetStatusMessage(message []byte) uint32
	SelfStatusMessage() []byte
	SelfSetStatus(status uint32)
	SelfStatus() uint32

	FriendAdd(address [38]byte, message []byte) (uint32, uint32)
	FriendAddNorequest(publicKey [32]byte) (uint32, uint32)
	FriendDelete(friend uint32) uint32
	FriendByPublicKey(publicKey [32]byte) (uint32, uint32)
	FriendExists(friend uint32) bool
	FriendList() []uint32
	FriendPublicKey(friend uint32) ([32]byte, uint32)
	FriendLastOnline(friend uint32) (uint64, uint32)
	FriendName(friend uint32) ([]byte, uint32)
	FriendStatusMessage(friend uint32) ([]byte, uint32)
	FriendStatus(friend uint32) (uint32, uint32)
	FriendConnectionStatus(friend uint32) (uint32, uint32)
	FriendTyping(friend uint32) (bool, uint32)
	SelfSetTyping(friend uint32, typing bool) uint32
	FriendSendMessage(friend uint32, kind uint32, message []byte) (uint32, uint32)

	FileControl(friend, file uint32, control uint32) uint32
	FileSeek(friend, file uint32, position uint64) uint32
	FileID(friend, file uint32) ([32]byte, uint32)
	FileSend(friend uint32, kind uint32, size uint64, fileID *[32]byte, name []byte) (uint32, uint32)
	FileSendChunk(friend, file uint32, position uint64, data []byte) uint32

	ConferenceNew() (uint32, uint32)
	ConferenceDelete(conference uint32) uint32
	ConferencePeerCount(conference uint32) (uint32, uint32)
	ConferencePeerName(conference, peer uint32) ([]byte, uint32)
	ConferencePeerPublicKey(conference, peer uint32) ([32]byte, uint32)
	ConferencePeerNumberIsOurs(conference, peer uint32) (bool, uint32)
	ConferenceInvite(friend, conference uint32) uint32
	ConferenceJoin(friend uint32, cookie []byte) (uint32, uint32)
	ConferenceSendMessage(conference uint32, kind uint32, message []byte) uint32
	ConferenceTitle(conference uint32) ([]byte, uint32)
	ConferenceSetTitle(conference uint32, title []byte) uint32
	ConferenceChatlist() []uint32
	ConferenceType(conference uint32) (uint32, uint32)
	ConferenceID(conference uint32) ([32]byte, bool)
	ConferenceByID(id [32]byte) (uint32, uint32)

	FriendSendLossyPacket(friend uint32, data []byte) uint32
	FriendSendLosslessPacket(friend uint32, data []byte) uint32

	// NewAV creates the audio/video engine bound to this engine.
	NewAV() (AVEngine, uint32)
}

// AVEngine is the audio/video engine surface.
type AVEngine interface {
	// RegisterCallbacks installs the sink used for every later callback.
	// It is called once, before the first Iterate.
	RegisterCallbacks(cb AVCallbacks)
	Iterate()
	IterationInterval() uint32
	Kill()

	Call(friend uint32, audioBitRate, videoBitRate uint32) uint32
	Answer(friend uint32, audioBitRate, videoBitRate uint32) uint32
	CallControl(friend uint32, control uint32) uint32
	AudioSetBitRate(friend uint32, bitRate uint32) uint32
	VideoSetBitRate(friend uint32, bitRate uint32) uint32
	AudioSendFrame(friend uint32, pcm []int16, sampleCount uint64, channels uint8, samplingRate uint32) uint32
	VideoSendFrame(friend uint32, width, height uint16, y, u, v []byte) uint32

	// AddAVGroupchat creates an audio conference. Received group audio is
	// delivered to cb.
	AddAVGroupchat(cb GroupAudioCallbacks) (uint32, bool)
	// JoinAVGroupchat joins an audio conference from an invite cookie.
	JoinAVGroupchat(friend uint32, cookie []byte, cb GroupAudioCallbacks) (uint32, bool)
	GroupSendAudio(conference uint32, pcm []int16, samples uint32, channels uint8, sampleRate uint32) bool
}

// EngineFunc creates a core engine from options. The second result is a
// tox_new status code.
type EngineFunc func(opts *EngineOptions) (Engine, uint32)
