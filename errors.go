package toxbind

import (
	"errors"
	"fmt"

	"github.com/opd-ai/toxbind/interfaces"
)

// Handle state errors.
var (
	// ErrToxClosed is returned by every operation on a killed Tox.
	ErrToxClosed = errors.New("tox instance has been killed")

	// ErrAVClosed is returned by every operation on a killed ToxAV, and by
	// group audio handles that outlived their ToxAV.
	ErrAVClosed = errors.New("toxav instance has been killed")

	// ErrGroupAudio is returned when the engine refuses to create, join or
	// send to an audio conference.
	ErrGroupAudio = errors.New("group audio operation failed")
)

// statusError is implemented by every per-operation error enum.
type statusError interface {
	~uint32
	error
}

// check translates a native status code into the error enum E. OK becomes
// nil. Unknown codes stay representable and print as such.
func check[E statusError](code uint32) error {
	if code == interfaces.OK {
		return nil
	}
	return E(code)
}

func describe(op string, reasons []string, code uint32) string {
	if int(code) < len(reasons) && reasons[code] != "" {
		return op + ": " + reasons[code]
	}
	return fmt.Sprintf("%s: unknown error (%d)", op, code)
}

// InitError is returned by New.
type InitError uint32

const (
	InitNull               = InitError(interfaces.NewNull)
	InitMalloc             = InitError(interfaces.NewMalloc)
	InitPortAlloc          = InitError(interfaces.NewPortAlloc)
	InitProxyBadType       = InitError(interfaces.NewProxyBadType)
	InitProxyBadHost       = InitError(interfaces.NewProxyBadHost)
	InitProxyBadPort       = InitError(interfaces.NewProxyBadPort)
	InitProxyNotFound      = InitError(interfaces.NewProxyNotFound)
	InitLoadEncrypted      = InitError(interfaces.NewLoadEncrypted)
	InitLoadBadFormat      = InitError(interfaces.NewLoadBadFormat)
	InitBackendUnavailable = InitError(interfaces.NewBackendUnavailable)
)

var initReasons = []string{
	InitNull:               "a required argument was missing",
	InitMalloc:             "memory allocation failed",
	InitPortAlloc:          "could not bind to a port",
	InitProxyBadType:       "invalid proxy type",
	InitProxyBadHost:       "proxy host could not be resolved",
	InitProxyBadPort:       "proxy port is invalid",
	InitProxyNotFound:      "proxy address could not be resolved",
	InitLoadEncrypted:      "savedata is encrypted",
	InitLoadBadFormat:      "savedata format is invalid",
	InitBackendUnavailable: "no engine backend is available",
}

func (e InitError) Error() string { return describe("tox new", initReasons, uint32(e)) }

// BootstrapError is returned by Bootstrap and AddTCPRelay.
type BootstrapError uint32

const (
	BootstrapNull    = BootstrapError(interfaces.BootstrapNull)
	BootstrapBadHost = BootstrapError(interfaces.BootstrapBadHost)
	BootstrapBadPort = BootstrapError(interfaces.BootstrapBadPort)
)

var bootstrapReasons = []string{
	BootstrapNull:    "a required argument was missing",
	BootstrapBadHost: "host could not be resolved",
	BootstrapBadPort: "port is invalid",
}

func (e BootstrapError) Error() string { return describe("bootstrap", bootstrapReasons, uint32(e)) }

// SetInfoError is returned by SetName and SetStatusMessage.
type SetInfoError uint32

const (
	SetInfoNull    = SetInfoError(interfaces.SetInfoNull)
	SetInfoTooLong = SetInfoError(interfaces.SetInfoTooLong)
)

var setInfoReasons = []string{
	SetInfoNull:    "a required argument was missing",
	SetInfoTooLong: "value is too long",
}

func (e SetInfoError) Error() string { return describe("set info", setInfoReasons, uint32(e)) }

// FriendAddError is returned by AddFriend and AddFriendNoRequest.
type FriendAddError uint32

const (
	FriendAddNull         = FriendAddError(interfaces.FriendAddNull)
	FriendAddTooLong      = FriendAddError(interfaces.FriendAddTooLong)
	FriendAddNoMessage    = FriendAddError(interfaces.FriendAddNoMessage)
	FriendAddOwnKey       = FriendAddError(interfaces.FriendAddOwnKey)
	FriendAddAlreadySent  = FriendAddError(interfaces.FriendAddAlreadySent)
	FriendAddBadChecksum  = FriendAddError(interfaces.FriendAddBadChecksum)
	FriendAddSetNewNospam = FriendAddError(interfaces.FriendAddSetNewNospam)
	FriendAddMalloc       = FriendAddError(interfaces.FriendAddMalloc)
)

var friendAddReasons = []string{
	FriendAddNull:         "a required argument was missing",
	FriendAddTooLong:      "request message is too long",
	FriendAddNoMessage:    "request message is empty",
	FriendAddOwnKey:       "address belongs to this instance",
	FriendAddAlreadySent:  "friend request already sent or friend already added",
	FriendAddBadChecksum:  "address checksum is invalid",
	FriendAddSetNewNospam: "friend is already added with a different nospam",
	FriendAddMalloc:       "memory allocation failed",
}

func (e FriendAddError) Error() string { return describe("friend add", friendAddReasons, uint32(e)) }

// FriendDeleteError is returned by DeleteFriend.
type FriendDeleteError uint32

const FriendDeleteNotFound = FriendDeleteError(interfaces.FriendDeleteFriendNotFound)

var friendDeleteReasons = []string{
	FriendDeleteNotFound: "no friend with the given friend number",
}

func (e FriendDeleteError) Error() string {
	return describe("friend delete", friendDeleteReasons, uint32(e))
}

// FriendByPublicKeyError is returned by FriendByPublicKey.
type FriendByPublicKeyError uint32

const (
	FriendByPublicKeyNull     = FriendByPublicKeyError(interfaces.FriendByPublicKeyNull)
	FriendByPublicKeyNotFound = FriendByPublicKeyError(interfaces.FriendByPublicKeyNotFound)
)

var friendByPublicKeyReasons = []string{
	FriendByPublicKeyNull:     "a required argument was missing",
	FriendByPublicKeyNotFound: "no friend with the given public key",
}

func (e FriendByPublicKeyError) Error() string {
	return describe("friend by public key", friendByPublicKeyReasons, uint32(e))
}

// FriendGetError is returned by FriendPublicKey and FriendLastOnline.
type FriendGetError uint32

const FriendGetNotFound = FriendGetError(interfaces.FriendGetFriendNotFound)

var friendGetReasons = []string{
	FriendGetNotFound: "no friend with the given friend number",
}

func (e FriendGetError) Error() string { return describe("friend get", friendGetReasons, uint32(e)) }

// FriendQueryError is returned by the friend field getters.
type FriendQueryError uint32

const (
	FriendQueryNull           = FriendQueryError(interfaces.FriendQueryNull)
	FriendQueryFriendNotFound = FriendQueryError(interfaces.FriendQueryFriendNotFound)
)

var friendQueryReasons = []string{
	FriendQueryNull:           "a required argument was missing",
	FriendQueryFriendNotFound: "no friend with the given friend number",
}

func (e FriendQueryError) Error() string {
	return describe("friend query", friendQueryReasons, uint32(e))
}

// SetTypingError is returned by SetTyping.
type SetTypingError uint32

const SetTypingFriendNotFound = SetTypingError(interfaces.SetTypingFriendNotFound)

var setTypingReasons = []string{
	SetTypingFriendNotFound: "no friend with the given friend number",
}

func (e SetTypingError) Error() string { return describe("set typing", setTypingReasons, uint32(e)) }

// FriendSendMessageError is returned by SendFriendMessage.
type FriendSendMessageError uint32

const (
	FriendSendMessageNull               = FriendSendMessageError(interfaces.FriendSendMessageNull)
	FriendSendMessageFriendNotFound     = FriendSendMessageError(interfaces.FriendSendMessageFriendNotFound)
	FriendSendMessageFriendNotConnected = FriendSendMessageError(interfaces.FriendSendMessageFriendNotConnected)
	FriendSendMessageSendQ              = FriendSendMessageError(interfaces.FriendSendMessageSendQ)
	FriendSendMessageTooLong            = FriendSendMessageError(interfaces.FriendSendMessageTooLong)
	FriendSendMessageEmpty              = FriendSendMessageError(interfaces.FriendSendMessageEmpty)
)

var friendSendMessageReasons = []string{
	FriendSendMessageNull:               "a required argument was missing",
	FriendSendMessageFriendNotFound:     "no friend with the given friend number",
	FriendSendMessageFriendNotConnected: "friend is not connected",
	FriendSendMessageSendQ:              "send queue is full",
	FriendSendMessageTooLong:            "message is too long",
	FriendSendMessageEmpty:              "message is empty",
}

func (e FriendSendMessageError) Error() string {
	return describe("send message", friendSendMessageReasons, uint32(e))
}

// FileControlError is returned by FileControl.
type FileControlError uint32

const (
	FileControlFriendNotFound     = FileControlError(interfaces.FileControlFriendNotFound)
	FileControlFriendNotConnected = FileControlError(interfaces.FileControlFriendNotConnected)
	FileControlNotFound           = FileControlError(interfaces.FileControlNotFound)
	FileControlNotPaused          = FileControlError(interfaces.FileControlNotPaused)
	FileControlDenied             = FileControlError(interfaces.FileControlDenied)
	FileControlAlreadyPaused      = FileControlError(interfaces.FileControlAlreadyPaused)
	FileControlSendQ              = FileControlError(interfaces.FileControlSendQ)
)

var fileControlReasons = []string{
	FileControlFriendNotFound:     "no friend with the given friend number",
	FileControlFriendNotConnected: "friend is not connected",
	FileControlNotFound:           "no transfer with the given file number",
	FileControlNotPaused:          "transfer is not paused",
	FileControlDenied:             "transfer was paused by the other side",
	FileControlAlreadyPaused:      "transfer is already paused",
	FileControlSendQ:              "send queue is full",
}

func (e FileControlError) Error() string {
	return describe("file control", fileControlReasons, uint32(e))
}

// FileSeekError is returned by FileSeek.
type FileSeekError uint32

const (
	FileSeekFriendNotFound     = FileSeekError(interfaces.FileSeekFriendNotFound)
	FileSeekFriendNotConnected = FileSeekError(interfaces.FileSeekFriendNotConnected)
	FileSeekNotFound           = FileSeekError(interfaces.FileSeekNotFound)
	FileSeekDenied             = FileSeekError(interfaces.FileSeekDenied)
	FileSeekInvalidPosition    = FileSeekError(interfaces.FileSeekInvalidPosition)
	FileSeekSendQ              = FileSeekError(interfaces.FileSeekSendQ)
)

var fileSeekReasons = []string{
	FileSeekFriendNotFound:     "no friend with the given friend number",
	FileSeekFriendNotConnected: "friend is not connected",
	FileSeekNotFound:           "no transfer with the given file number",
	FileSeekDenied:             "transfer has already started",
	FileSeekInvalidPosition:    "position is beyond the end of the file",
	FileSeekSendQ:              "send queue is full",
}

func (e FileSeekError) Error() string { return describe("file seek", fileSeekReasons, uint32(e)) }

// FileGetError is returned by FileID.
type FileGetError uint32

const (
	FileGetNull           = FileGetError(interfaces.FileGetNull)
	FileGetFriendNotFound = FileGetError(interfaces.FileGetFriendNotFound)
	FileGetNotFound       = FileGetError(interfaces.FileGetNotFound)
)

var fileGetReasons = []string{
	FileGetNull:           "a required argument was missing",
	FileGetFriendNotFound: "no friend with the given friend number",
	FileGetNotFound:       "no transfer with the given file number",
}

func (e FileGetError) Error() string { return describe("file get", fileGetReasons, uint32(e)) }

// FileSendError is returned by FileSend.
type FileSendError uint32

const (
	FileSendNull               = FileSendError(interfaces.FileSendNull)
	FileSendFriendNotFound     = FileSendError(interfaces.FileSendFriendNotFound)
	FileSendFriendNotConnected = FileSendError(interfaces.FileSendFriendNotConnected)
	FileSendNameTooLong        = FileSendError(interfaces.FileSendNameTooLong)
	FileSendTooMany            = FileSendError(interfaces.FileSendTooMany)
)

var fileSendReasons = []string{
	FileSendNull:               "a required argument was missing",
	FileSendFriendNotFound:     "no friend with the given friend number",
	FileSendFriendNotConnected: "friend is not connected",
	FileSendNameTooLong:        "file name is too long",
	FileSendTooMany:            "too many concurrent transfers with this friend",
}

func (e FileSendError) Error() string { return describe("file send", fileSendReasons, uint32(e)) }

// FileSendChunkError is returned by FileSendChunk.
type FileSendChunkError uint32

const (
	FileSendChunkNull               = FileSendChunkError(interfaces.FileSendChunkNull)
	FileSendChunkFriendNotFound     = FileSendChunkError(interfaces.FileSendChunkFriendNotFound)
	FileSendChunkFriendNotConnected = FileSendChunkError(interfaces.FileSendChunkFriendNotConnected)
	FileSendChunkNotFound           = FileSendChunkError(interfaces.FileSendChunkNotFound)
	FileSendChunkNotTransferring    = FileSendChunkError(interfaces.FileSendChunkNotTransferring)
	FileSendChunkInvalidLength      = FileSendChunkError(interfaces.FileSendChunkInvalidLength)
	FileSendChunkSendQ              = FileSendChunkError(interfaces.FileSendChunkSendQ)
	FileSendChunkWrongPosition      = FileSendChunkError(interfaces.FileSendChunkWrongPosition)
)

var fileSendChunkReasons = []string{
	FileSendChunkNull:               "a required argument was missing",
	FileSendChunkFriendNotFound:     "no friend with the given friend number",
	FileSendChunkFriendNotConnected: "friend is not connected",
	FileSendChunkNotFound:           "no transfer with the given file number",
	FileSendChunkNotTransferring:    "transfer is not in progress",
	FileSendChunkInvalidLength:      "chunk length does not match the request",
	FileSendChunkSendQ:              "send queue is full",
	FileSendChunkWrongPosition:      "chunk position does not match the request",
}

func (e FileSendChunkError) Error() string {
	return describe("file send chunk", fileSendChunkReasons, uint32(e))
}

// ConferenceNewError is returned by NewConference.
type ConferenceNewError uint32

const ConferenceNewInit = ConferenceNewError(interfaces.ConferenceNewInit)

var conferenceNewReasons = []string{
	ConferenceNewInit: "conference instance could not be initialized",
}

func (e ConferenceNewError) Error() string {
	return describe("conference new", conferenceNewReasons, uint32(e))
}

// ConferenceDeleteError is returned by DeleteConference.
type ConferenceDeleteError uint32

const ConferenceDeleteNotFound = ConferenceDeleteError(interfaces.ConferenceDeleteConferenceNotFound)

var conferenceDeleteReasons = []string{
	ConferenceDeleteNotFound: "no conference with the given conference number",
}

func (e ConferenceDeleteError) Error() string {
	return describe("conference delete", conferenceDeleteReasons, uint32(e))
}

// ConferencePeerQueryError is returned by the conference peer getters.
type ConferencePeerQueryError uint32

const (
	ConferencePeerQueryConferenceNotFound = ConferencePeerQueryError(interfaces.ConferencePeerQueryConferenceNotFound)
	ConferencePeerQueryPeerNotFound       = ConferencePeerQueryError(interfaces.ConferencePeerQueryPeerNotFound)
	ConferencePeerQueryNoConnection       = ConferencePeerQueryError(interfaces.ConferencePeerQueryNoConnection)
)

var conferencePeerQueryReasons = []string{
	ConferencePeerQueryConferenceNotFound: "no conference with the given conference number",
	ConferencePeerQueryPeerNotFound:       "no peer with the given peer number",
	ConferencePeerQueryNoConnection:       "client is not connected to the conference",
}

func (e ConferencePeerQueryError) Error() string {
	return describe("conference peer query", conferencePeerQueryReasons, uint32(e))
}

// ConferenceInviteError is returned by InviteToConference.
type ConferenceInviteError uint32

const (
	ConferenceInviteConferenceNotFound = ConferenceInviteError(interfaces.ConferenceInviteConferenceNotFound)
	ConferenceInviteFailSend           = ConferenceInviteError(interfaces.ConferenceInviteFailSend)
	ConferenceInviteNoConnection       = ConferenceInviteError(interfaces.ConferenceInviteNoConnection)
)

var conferenceInviteReasons = []string{
	ConferenceInviteConferenceNotFound: "no conference with the given conference number",
	ConferenceInviteFailSend:           "invite packet failed to send",
	ConferenceInviteNoConnection:       "client is not connected to the conference",
}

func (e ConferenceInviteError) Error() string {
	return describe("conference invite", conferenceInviteReasons, uint32(e))
}

// ConferenceJoinError is returned by JoinConference.
type ConferenceJoinError uint32

const (
	ConferenceJoinInvalidLength  = ConferenceJoinError(interfaces.ConferenceJoinInvalidLength)
	ConferenceJoinWrongType      = ConferenceJoinError(interfaces.ConferenceJoinWrongType)
	ConferenceJoinFriendNotFound = ConferenceJoinError(interfaces.ConferenceJoinFriendNotFound)
	ConferenceJoinDuplicate      = ConferenceJoinError(interfaces.ConferenceJoinDuplicate)
	ConferenceJoinInitFail       = ConferenceJoinError(interfaces.ConferenceJoinInitFail)
	ConferenceJoinFailSend       = ConferenceJoinError(interfaces.ConferenceJoinFailSend)
)

var conferenceJoinReasons = []string{
	ConferenceJoinInvalidLength:  "cookie has an invalid length",
	ConferenceJoinWrongType:      "conference is not the expected type",
	ConferenceJoinFriendNotFound: "no friend with the given friend number",
	ConferenceJoinDuplicate:      "client is already in this conference",
	ConferenceJoinInitFail:       "conference instance could not be created",
	ConferenceJoinFailSend:       "join packet failed to send",
}

func (e ConferenceJoinError) Error() string {
	return describe("conference join", conferenceJoinReasons, uint32(e))
}

// ConferenceSendMessageError is returned by SendConferenceMessage.
type ConferenceSendMessageError uint32

const (
	ConferenceSendMessageConferenceNotFound = ConferenceSendMessageError(interfaces.ConferenceSendMessageConferenceNotFound)
	ConferenceSendMessageTooLong            = ConferenceSendMessageError(interfaces.ConferenceSendMessageTooLong)
	ConferenceSendMessageNoConnection       = ConferenceSendMessageError(interfaces.ConferenceSendMessageNoConnection)
	ConferenceSendMessageFailSend           = ConferenceSendMessageError(interfaces.ConferenceSendMessageFailSend)
)

var conferenceSendMessageReasons = []string{
	ConferenceSendMessageConferenceNotFound: "no conference with the given conference number",
	ConferenceSendMessageTooLong:            "message is too long",
	ConferenceSendMessageNoConnection:       "client is not connected to the conference",
	ConferenceSendMessageFailSend:           "message packet failed to send",
}

func (e ConferenceSendMessageError) Error() string {
	return describe("conference send message", conferenceSendMessageReasons, uint32(e))
}

// ConferenceTitleError is returned by ConferenceTitle and SetConferenceTitle.
type ConferenceTitleError uint32

const (
	ConferenceTitleConferenceNotFound = ConferenceTitleError(interfaces.ConferenceTitleConferenceNotFound)
	ConferenceTitleInvalidLength      = ConferenceTitleError(interfaces.ConferenceTitleInvalidLength)
	ConferenceTitleFailSend           = ConferenceTitleError(interfaces.ConferenceTitleFailSend)
)

var conferenceTitleReasons = []string{
	ConferenceTitleConferenceNotFound: "no conference with the given conference number",
	ConferenceTitleInvalidLength:      "title is too long or empty",
	ConferenceTitleFailSend:           "title packet failed to send",
}

func (e ConferenceTitleError) Error() string {
	return describe("conference title", conferenceTitleReasons, uint32(e))
}

// ConferenceGetTypeError is returned by ConferenceType.
type ConferenceGetTypeError uint32

const ConferenceGetTypeNotFound = ConferenceGetTypeError(interfaces.ConferenceGetTypeConferenceNotFound)

var conferenceGetTypeReasons = []string{
	ConferenceGetTypeNotFound: "no conference with the given conference number",
}

func (e ConferenceGetTypeError) Error() string {
	return describe("conference get type", conferenceGetTypeReasons, uint32(e))
}

// ConferenceByIDError is returned by ConferenceByID.
type ConferenceByIDError uint32

const (
	ConferenceByIDNull     = ConferenceByIDError(interfaces.ConferenceByIDNull)
	ConferenceByIDNotFound = ConferenceByIDError(interfaces.ConferenceByIDNotFound)
)

var conferenceByIDReasons = []string{
	ConferenceByIDNull:     "a required argument was missing",
	ConferenceByIDNotFound: "no conference with the given id",
}

func (e ConferenceByIDError) Error() string {
	return describe("conference by id", conferenceByIDReasons, uint32(e))
}

// FriendCustomPacketError is returned by SendLossyPacket and
// SendLosslessPacket.
type FriendCustomPacketError uint32

const (
	FriendCustomPacketNull               = FriendCustomPacketError(interfaces.FriendCustomPacketNull)
	FriendCustomPacketFriendNotFound     = FriendCustomPacketError(interfaces.FriendCustomPacketFriendNotFound)
	FriendCustomPacketFriendNotConnected = FriendCustomPacketError(interfaces.FriendCustomPacketFriendNotConnected)
	FriendCustomPacketInvalid            = FriendCustomPacketError(interfaces.FriendCustomPacketInvalid)
	FriendCustomPacketEmpty              = FriendCustomPacketError(interfaces.FriendCustomPacketEmpty)
	FriendCustomPacketTooLong            = FriendCustomPacketError(interfaces.FriendCustomPacketTooLong)
	FriendCustomPacketSendQ              = FriendCustomPacketError(interfaces.FriendCustomPacketSendQ)
)

var friendCustomPacketReasons = []string{
	FriendCustomPacketNull:               "a required argument was missing",
	FriendCustomPacketFriendNotFound:     "no friend with the given friend number",
	FriendCustomPacketFriendNotConnected: "friend is not connected",
	FriendCustomPacketInvalid:            "first byte is outside the custom packet range",
	FriendCustomPacketEmpty:              "packet is empty",
	FriendCustomPacketTooLong:            "packet is too long",
	FriendCustomPacketSendQ:              "send queue is full",
}

func (e FriendCustomPacketError) Error() string {
	return describe("custom packet", friendCustomPacketReasons, uint32(e))
}

// AVNewError is returned by NewToxAV.
type AVNewError uint32

const (
	AVNewNull     = AVNewError(interfaces.AVNewNull)
	AVNewMalloc   = AVNewError(interfaces.AVNewMalloc)
	AVNewMultiple = AVNewError(interfaces.AVNewMultiple)
)

var avNewReasons = []string{
	AVNewNull:     "a required argument was missing",
	AVNewMalloc:   "memory allocation failed",
	AVNewMultiple: "an AV instance already exists for this tox instance",
}

func (e AVNewError) Error() string { return describe("toxav new", avNewReasons, uint32(e)) }

// CallError is returned by Call.
type CallError uint32

const (
	CallMalloc              = CallError(interfaces.CallMalloc)
	CallSync                = CallError(interfaces.CallSync)
	CallFriendNotFound      = CallError(interfaces.CallFriendNotFound)
	CallFriendNotConnected  = CallError(interfaces.CallFriendNotConnected)
	CallFriendAlreadyInCall = CallError(interfaces.CallFriendAlreadyInCall)
	CallInvalidBitRate      = CallError(interfaces.CallInvalidBitRate)
)

var callReasons = []string{
	CallMalloc:              "memory allocation failed",
	CallSync:                "synchronization error",
	CallFriendNotFound:      "no friend with the given friend number",
	CallFriendNotConnected:  "friend is not connected",
	CallFriendAlreadyInCall: "a call with this friend is already running",
	CallInvalidBitRate:      "invalid bit rate",
}

func (e CallError) Error() string { return describe("call", callReasons, uint32(e)) }

// AnswerError is returned by Answer.
type AnswerError uint32

const (
	AnswerSync                = AnswerError(interfaces.AnswerSync)
	AnswerCodecInitialization = AnswerError(interfaces.AnswerCodecInitialization)
	AnswerFriendNotFound      = AnswerError(interfaces.AnswerFriendNotFound)
	AnswerFriendNotCalling    = AnswerError(interfaces.AnswerFriendNotCalling)
	AnswerInvalidBitRate      = AnswerError(interfaces.AnswerInvalidBitRate)
)

var answerReasons = []string{
	AnswerSync:                "synchronization error",
	AnswerCodecInitialization: "codec initialization failed",
	AnswerFriendNotFound:      "no friend with the given friend number",
	AnswerFriendNotCalling:    "friend is not calling",
	AnswerInvalidBitRate:      "invalid bit rate",
}

func (e AnswerError) Error() string { return describe("answer", answerReasons, uint32(e)) }

// CallControlError is returned by Control.
type CallControlError uint32

const (
	CallControlSync              = CallControlError(interfaces.CallControlErrSync)
	CallControlFriendNotFound    = CallControlError(interfaces.CallControlErrFriendNotFound)
	CallControlFriendNotInCall   = CallControlError(interfaces.CallControlErrFriendNotInCall)
	CallControlInvalidTransition = CallControlError(interfaces.CallControlErrInvalidTransition)
)

var callControlReasons = []string{
	CallControlSync:              "synchronization error",
	CallControlFriendNotFound:    "no friend with the given friend number",
	CallControlFriendNotInCall:   "no call with this friend",
	CallControlInvalidTransition: "invalid call state transition",
}

func (e CallControlError) Error() string {
	return describe("call control", callControlReasons, uint32(e))
}

// BitRateSetError is returned by SetAudioBitRate and SetVideoBitRate.
type BitRateSetError uint32

const (
	BitRateSetSync            = BitRateSetError(interfaces.BitRateSetSync)
	BitRateSetInvalidBitRate  = BitRateSetError(interfaces.BitRateSetInvalidBitRate)
	BitRateSetFriendNotFound  = BitRateSetError(interfaces.BitRateSetFriendNotFound)
	BitRateSetFriendNotInCall = BitRateSetError(interfaces.BitRateSetFriendNotInCall)
)

var bitRateSetReasons = []string{
	BitRateSetSync:            "synchronization error",
	BitRateSetInvalidBitRate:  "invalid bit rate",
	BitRateSetFriendNotFound:  "no friend with the given friend number",
	BitRateSetFriendNotInCall: "no call with this friend",
}

func (e BitRateSetError) Error() string {
	return describe("set bit rate", bitRateSetReasons, uint32(e))
}

// SendFrameError is returned by SendAudioFrame and SendVideoFrame.
type SendFrameError uint32

const (
	SendFrameNull                = SendFrameError(interfaces.SendFrameNull)
	SendFrameFriendNotFound      = SendFrameError(interfaces.SendFrameFriendNotFound)
	SendFrameFriendNotInCall     = SendFrameError(interfaces.SendFrameFriendNotInCall)
	SendFrameSync                = SendFrameError(interfaces.SendFrameSync)
	SendFrameInvalid             = SendFrameError(interfaces.SendFrameInvalid)
	SendFramePayloadTypeDisabled = SendFrameError(interfaces.SendFramePayloadTypeDisabled)
	SendFrameRTPFailed           = SendFrameError(interfaces.SendFrameRTPFailed)
)

var sendFrameReasons = []string{
	SendFrameNull:                "frame data is missing",
	SendFrameFriendNotFound:      "no friend with the given friend number",
	SendFrameFriendNotInCall:     "no call with this friend",
	SendFrameSync:                "synchronization error",
	SendFrameInvalid:             "frame parameters are invalid",
	SendFramePayloadTypeDisabled: "audio or video is disabled for this call",
	SendFrameRTPFailed:           "rtp transmission failed",
}

func (e SendFrameError) Error() string { return describe("send frame", sendFrameReasons, uint32(e)) }
