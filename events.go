package toxbind

// Event is one notification raised by the engine. The set of events is
// closed: every implementation is declared in this file. Use a type switch
// to handle them:
//
//	for ev := range tox.Events() {
//	    switch ev := ev.(type) {
//	    case *toxbind.FriendMessageEvent:
//	        ...
//	    }
//	}
//
// Payloads are owned copies and stay valid after the next Tick.
type Event interface {
	event()
}

// ConnectionStatusEvent reports a change of this instance's network
// connection.
type ConnectionStatusEvent struct {
	Status Connection
}

// FriendRequestEvent is an incoming friend request.
type FriendRequestEvent struct {
	PublicKey PublicKey
	Message   string
}

// FriendMessageEvent is a message from a friend.
type FriendMessageEvent struct {
	Friend  uint32
	Kind    MessageType
	Message string
}

// FriendNameEvent reports a friend's new name.
type FriendNameEvent struct {
	Friend uint32
	Name   string
}

// FriendStatusMessageEvent reports a friend's new status message.
type FriendStatusMessageEvent struct {
	Friend  uint32
	Message string
}

// FriendStatusEvent reports a friend's new presence.
type FriendStatusEvent struct {
	Friend uint32
	Status UserStatus
}

// FriendConnectionStatusEvent reports a friend going online or offline.
type FriendConnectionStatusEvent struct {
	Friend uint32
	Status Connection
}

// FriendTypingEvent reports a change of a friend's typing state.
type FriendTypingEvent struct {
	Friend uint32
	Typing bool
}

// FriendReadReceiptEvent confirms a message previously sent to a friend.
type FriendReadReceiptEvent struct {
	Friend    uint32
	MessageID uint32
}

// FileControlEvent is a control command the friend applied to a transfer.
type FileControlEvent struct {
	Friend  uint32
	File    uint32
	Control FileControl
}

// FileChunkRequestEvent asks for the next chunk of an outgoing transfer. A
// Length of zero means the transfer is complete.
type FileChunkRequestEvent struct {
	Friend   uint32
	File     uint32
	Position uint64
	Length   uint64
}

// FileReceiveEvent offers an incoming transfer.
type FileReceiveEvent struct {
	Friend uint32
	File   uint32
	Kind   FileKind
	Size   uint64
	Name   string
}

// FileChunkEvent carries a chunk of an incoming transfer. An empty Data
// means the transfer is complete.
type FileChunkEvent struct {
	Friend   uint32
	File     uint32
	Position uint64
	Data     []byte
}

// ConferenceInviteEvent is an invitation to a conference.
type ConferenceInviteEvent struct {
	Friend uint32
	Kind   ConferenceType
	Cookie Cookie
}

// ConferenceConnectedEvent reports that a joined conference is connected.
type ConferenceConnectedEvent struct {
	Conference uint32
}

// ConferenceMessageEvent is a message in a conference.
type ConferenceMessageEvent struct {
	Conference uint32
	Peer       uint32
	Kind       MessageType
	Message    string
}

// ConferenceTitleEvent reports a conference title change.
type ConferenceTitleEvent struct {
	Conference uint32
	Peer       uint32
	Title      string
}

// ConferencePeerNameEvent reports a conference peer's new name.
type ConferencePeerNameEvent struct {
	Conference uint32
	Peer       uint32
	Name       string
}

// ConferencePeerListChangedEvent reports peers joining or leaving.
type ConferencePeerListChangedEvent struct {
	Conference uint32
}

// LossyPacketEvent is a custom lossy packet from a friend.
type LossyPacketEvent struct {
	Friend uint32
	Data   []byte
}

// LosslessPacketEvent is a custom lossless packet from a friend.
type LosslessPacketEvent struct {
	Friend uint32
	Data   []byte
}

// CallEvent is an incoming call.
type CallEvent struct {
	Friend uint32
	Audio  bool
	Video  bool
}

// CallStateEvent reports a change of a friend's call state.
type CallStateEvent struct {
	Friend uint32
	State  CallState
}

// AudioBitRateEvent is the engine's suggested audio bit rate for a call.
type AudioBitRateEvent struct {
	Friend  uint32
	BitRate uint32
}

// VideoBitRateEvent is the engine's suggested video bit rate for a call.
type VideoBitRateEvent struct {
	Friend  uint32
	BitRate uint32
}

// AudioFrameEvent carries decoded PCM from a call.
type AudioFrameEvent struct {
	Friend       uint32
	PCM          []int16
	SampleCount  uint64
	Channels     uint8
	SamplingRate uint32
}

// VideoFrameEvent carries a decoded YUV420 frame from a call.
type VideoFrameEvent struct {
	Friend  uint32
	Width   uint16
	Height  uint16
	Y, U, V []byte
	YStride int32
	UStride int32
	VStride int32
}

// GroupAudioEvent carries PCM from a peer in an audio conference.
type GroupAudioEvent struct {
	Conference uint32
	Peer       uint32
	PCM        []int16
	Samples    uint32
	Channels   uint8
	SampleRate uint32
}

func (*ConnectionStatusEvent) event()          {}
func (*FriendRequestEvent) event()             {}
func (*FriendMessageEvent) event()             {}
func (*FriendNameEvent) event()                {}
func (*FriendStatusMessageEvent) event()       {}
func (*FriendStatusEvent) event()              {}
func (*FriendConnectionStatusEvent) event()    {}
func (*FriendTypingEvent) event()              {}
func (*FriendReadReceiptEvent) event()         {}
func (*FileControlEvent) event()               {}
func (*FileChunkRequestEvent) event()          {}
func (*FileReceiveEvent) event()               {}
func (*FileChunkEvent) event()                 {}
func (*ConferenceInviteEvent) event()          {}
func (*ConferenceConnectedEvent) event()       {}
func (*ConferenceMessageEvent) event()         {}
func (*ConferenceTitleEvent) event()           {}
func (*ConferencePeerNameEvent) event()        {}
func (*ConferencePeerListChangedEvent) event() {}
func (*LossyPacketEvent) event()               {}
func (*LosslessPacketEvent) event()            {}
func (*CallEvent) event()                      {}
func (*CallStateEvent) event()                 {}
func (*AudioBitRateEvent) event()              {}
func (*VideoBitRateEvent) event()              {}
func (*AudioFrameEvent) event()                {}
func (*VideoFrameEvent) event()                {}
func (*GroupAudioEvent) event()                {}
