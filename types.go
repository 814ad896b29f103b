package toxbind

import (
	"fmt"

	"github.com/opd-ai/toxbind/interfaces"
)

// Connection is the kind of connection to the network or to a friend.
type Connection uint32

const (
	ConnectionNone Connection = Connection(interfaces.ConnectionNone)
	ConnectionTCP  Connection = Connection(interfaces.ConnectionTCP)
	ConnectionUDP  Connection = Connection(interfaces.ConnectionUDP)
)

func (c Connection) String() string {
	switch c {
	case ConnectionNone:
		return "none"
	case ConnectionTCP:
		return "tcp"
	case ConnectionUDP:
		return "udp"
	default:
		return fmt.Sprintf("Connection(%d)", uint32(c))
	}
}

func parseConnection(v uint32) (Connection, bool) {
	return Connection(v), v <= interfaces.ConnectionUDP
}

// UserStatus is the presence a user advertises.
type UserStatus uint32

const (
	UserStatusNone UserStatus = UserStatus(interfaces.UserStatusNone)
	UserStatusAway UserStatus = UserStatus(interfaces.UserStatusAway)
	UserStatusBusy UserStatus = UserStatus(interfaces.UserStatusBusy)
)

func (s UserStatus) String() string {
	switch s {
	case UserStatusNone:
		return "online"
	case UserStatusAway:
		return "away"
	case UserStatusBusy:
		return "busy"
	default:
		return fmt.Sprintf("UserStatus(%d)", uint32(s))
	}
}

func parseUserStatus(v uint32) (UserStatus, bool) {
	return UserStatus(v), v <= interfaces.UserStatusBusy
}

// MessageType distinguishes normal messages from /me actions.
type MessageType uint32

const (
	MessageNormal MessageType = MessageType(interfaces.MessageNormal)
	MessageAction MessageType = MessageType(interfaces.MessageAction)
)

func (m MessageType) String() string {
	switch m {
	case MessageNormal:
		return "normal"
	case MessageAction:
		return "action"
	default:
		return fmt.Sprintf("MessageType(%d)", uint32(m))
	}
}

func parseMessageType(v uint32) (MessageType, bool) {
	return MessageType(v), v <= interfaces.MessageAction
}

// ProxyType selects the proxy used for outgoing TCP connections.
type ProxyType uint32

const (
	ProxyNone   ProxyType = ProxyType(interfaces.ProxyNone)
	ProxyHTTP   ProxyType = ProxyType(interfaces.ProxyHTTP)
	ProxySOCKS5 ProxyType = ProxyType(interfaces.ProxySOCKS5)
)

func (p ProxyType) String() string {
	switch p {
	case ProxyNone:
		return "none"
	case ProxyHTTP:
		return "http"
	case ProxySOCKS5:
		return "socks5"
	default:
		return fmt.Sprintf("ProxyType(%d)", uint32(p))
	}
}

// FileKind tells regular file transfers apart from avatar transfers.
type FileKind uint32

const (
	FileKindData   FileKind = FileKind(interfaces.FileKindData)
	FileKindAvatar FileKind = FileKind(interfaces.FileKindAvatar)
)

func (k FileKind) String() string {
	switch k {
	case FileKindData:
		return "data"
	case FileKindAvatar:
		return "avatar"
	default:
		return fmt.Sprintf("FileKind(%d)", uint32(k))
	}
}

// FileControl is a command applied to a running file transfer.
type FileControl uint32

const (
	FileResume FileControl = FileControl(interfaces.FileControlResume)
	FilePause  FileControl = FileControl(interfaces.FileControlPause)
	FileCancel FileControl = FileControl(interfaces.FileControlCancel)
)

func (c FileControl) String() string {
	switch c {
	case FileResume:
		return "resume"
	case FilePause:
		return "pause"
	case FileCancel:
		return "cancel"
	default:
		return fmt.Sprintf("FileControl(%d)", uint32(c))
	}
}

func parseFileControl(v uint32) (FileControl, bool) {
	return FileControl(v), v <= interfaces.FileControlCancel
}

// ConferenceType is the kind of a conference.
type ConferenceType uint32

const (
	ConferenceText ConferenceType = ConferenceType(interfaces.ConferenceText)
	ConferenceAV   ConferenceType = ConferenceType(interfaces.ConferenceAV)
)

func (c ConferenceType) String() string {
	switch c {
	case ConferenceText:
		return "text"
	case ConferenceAV:
		return "av"
	default:
		return fmt.Sprintf("ConferenceType(%d)", uint32(c))
	}
}

func parseConferenceType(v uint32) (ConferenceType, bool) {
	return ConferenceType(v), v <= interfaces.ConferenceAV
}

// CallControl is a command applied to a running call.
type CallControl uint32

const (
	CallResume      CallControl = CallControl(interfaces.CallControlResume)
	CallPause       CallControl = CallControl(interfaces.CallControlPause)
	CallCancel      CallControl = CallControl(interfaces.CallControlCancel)
	CallMuteAudio   CallControl = CallControl(interfaces.CallControlMuteAudio)
	CallUnmuteAudio CallControl = CallControl(interfaces.CallControlUnmuteAudio)
	CallHideVideo   CallControl = CallControl(interfaces.CallControlHideVideo)
	CallShowVideo   CallControl = CallControl(interfaces.CallControlShowVideo)
)

func (c CallControl) String() string {
	switch c {
	case CallResume:
		return "resume"
	case CallPause:
		return "pause"
	case CallCancel:
		return "cancel"
	case CallMuteAudio:
		return "mute_audio"
	case CallUnmuteAudio:
		return "unmute_audio"
	case CallHideVideo:
		return "hide_video"
	case CallShowVideo:
		return "show_video"
	default:
		return fmt.Sprintf("CallControl(%d)", uint32(c))
	}
}

// CallState is a set of flags describing a friend's side of a call.
type CallState uint32

const (
	CallStateError          CallState = CallState(interfaces.CallStateError)
	CallStateFinished       CallState = CallState(interfaces.CallStateFinished)
	CallStateSendingAudio   CallState = CallState(interfaces.CallStateSendingAudio)
	CallStateSendingVideo   CallState = CallState(interfaces.CallStateSendingVideo)
	CallStateAcceptingAudio CallState = CallState(interfaces.CallStateAcceptingAudio)
	CallStateAcceptingVideo CallState = CallState(interfaces.CallStateAcceptingVideo)

	callStateMask = CallStateError | CallStateFinished | CallStateSendingAudio |
		CallStateSendingVideo | CallStateAcceptingAudio | CallStateAcceptingVideo
)

// Has reports whether all flags in f are set.
func (s CallState) Has(f CallState) bool {
	return s&f == f
}

// Unknown bits from the engine are dropped.
func parseCallState(v uint32) CallState {
	return CallState(v) & callStateMask
}
