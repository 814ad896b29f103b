package interfaces

// OK is the status code every engine call returns on success.
const OK uint32 = 0

// Connection states, TOX_CONNECTION.
const (
	ConnectionNone uint32 = iota
	ConnectionTCP
	ConnectionUDP
)

// User presence, TOX_USER_STATUS.
const (
	UserStatusNone uint32 = iota
	UserStatusAway
	UserStatusBusy
)

// Message kinds, TOX_MESSAGE_TYPE.
const (
	MessageNormal uint32 = iota
	MessageAction
)

// Proxy kinds, TOX_PROXY_TYPE.
const (
	ProxyNone uint32 = iota
	ProxyHTTP
	ProxySOCKS5
)

// Savedata kinds, TOX_SAVEDATA_TYPE.
const (
	SavedataNone uint32 = iota
	SavedataToxSave
	SavedataSecretKey
)

// File kinds, TOX_FILE_KIND.
const (
	FileKindData uint32 = iota
	FileKindAvatar
)

// File controls, TOX_FILE_CONTROL.
const (
	FileControlResume uint32 = iota
	FileControlPause
	FileControlCancel
)

// Conference kinds, TOX_CONFERENCE_TYPE.
const (
	ConferenceText uint32 = iota
	ConferenceAV
)

// Call controls, TOXAV_CALL_CONTROL.
const (
	CallControlResume uint32 = iota
	CallControlPause
	CallControlCancel
	CallControlMuteAudio
	CallControlUnmuteAudio
	CallControlHideVideo
	CallControlShowVideo
)

// Call state flags, TOXAV_FRIEND_CALL_STATE.
const (
	CallStateError          uint32 = 1
	CallStateFinished       uint32 = 2
	CallStateSendingAudio   uint32 = 4
	CallStateSendingVideo   uint32 = 8
	CallStateAcceptingAudio uint32 = 16
	CallStateAcceptingVideo uint32 = 32
)

// tox_new
const (
	NewNull uint32 = iota + 1
	NewMalloc
	NewPortAlloc
	NewProxyBadType
	NewProxyBadHost
	NewProxyBadPort
	NewProxyNotFound
	NewLoadEncrypted
	NewLoadBadFormat

	// NewBackendUnavailable is not a native code. It is reported when no
	// engine implementation is compiled in.
	NewBackendUnavailable uint32 = 100
)

// tox_bootstrap, tox_add_tcp_relay
const (
	BootstrapNull uint32 = iota + 1
	BootstrapBadHost
	BootstrapBadPort
)

// tox_self_set_name, tox_self_set_status_message
const (
	SetInfoNull uint32 = iota + 1
	SetInfoTooLong
)

// tox_friend_add, tox_friend_add_norequest
const (
	FriendAddNull uint32 = iota + 1
	FriendAddTooLong
	FriendAddNoMessage
	FriendAddOwnKey
	FriendAddAlreadySent
	FriendAddBadChecksum
	FriendAddSetNewNospam
	FriendAddMalloc
)

// tox_friend_delete
const (
	FriendDeleteFriendNotFound uint32 = iota + 1
)

// tox_friend_by_public_key
const (
	FriendByPublicKeyNull uint32 = iota + 1
	FriendByPublicKeyNotFound
)

// tox_friend_get_public_key, tox_friend_get_last_online
const (
	FriendGetFriendNotFound uint32 = iota + 1
)

// tox_friend_get_name and the other friend field queries
const (
	FriendQueryNull uint32 = iota + 1
	FriendQueryFriendNotFound
)

// tox_self_set_typing
const (
	SetTypingFriendNotFound uint32 = iota + 1
)

// tox_friend_send_message
const (
	FriendSendMessageNull uint32 = iota + 1
	FriendSendMessageFriendNotFound
	FriendSendMessageFriendNotConnected
	FriendSendMessageSendQ
	FriendSendMessageTooLong
	FriendSendMessageEmpty
)

// tox_file_control
const (
	FileControlFriendNotFound uint32 = iota + 1
	FileControlFriendNotConnected
	FileControlNotFound
	FileControlNotPaused
	FileControlDenied
	FileControlAlreadyPaused
	FileControlSendQ
)

// tox_file_seek
const (
	FileSeekFriendNotFound uint32 = iota + 1
	FileSeekFriendNotConnected
	FileSeekNotFound
	FileSeekDenied
	FileSeekInvalidPosition
	FileSeekSendQ
)

// tox_file_get_file_id
const (
	FileGetNull uint32 = iota + 1
	FileGetFriendNotFound
	FileGetNotFound
)

// tox_file_send
const (
	FileSendNull uint32 = iota + 1
	FileSendFriendNotFound
	FileSendFriendNotConnected
	FileSendNameTooLong
	FileSendTooMany
)

// tox_file_send_chunk
const (
	FileSendChunkNull uint32 = iota + 1
	FileSendChunkFriendNotFound
	FileSendChunkFriendNotConnected
	FileSendChunkNotFound
	FileSendChunkNotTransferring
	FileSendChunkInvalidLength
	FileSendChunkSendQ
	FileSendChunkWrongPosition
)

// tox_conference_new
const (
	ConferenceNewInit uint32 = iota + 1
)

// tox_conference_delete
const (
	ConferenceDeleteConferenceNotFound uint32 = iota + 1
)

// tox_conference_peer_* queries
const (
	ConferencePeerQueryConferenceNotFound uint32 = iota + 1
	ConferencePeerQueryPeerNotFound
	ConferencePeerQueryNoConnection
)

// tox_conference_invite
const (
	ConferenceInviteConferenceNotFound uint32 = iota + 1
	ConferenceInviteFailSend
	ConferenceInviteNoConnection
)

// tox_conference_join
const (
	ConferenceJoinInvalidLength uint32 = iota + 1
	ConferenceJoinWrongType
	ConferenceJoinFriendNotFound
	ConferenceJoinDuplicate
	ConferenceJoinInitFail
	ConferenceJoinFailSend
)

// tox_conference_send_message
const (
	ConferenceSendMessageConferenceNotFound uint32 = iota + 1
	ConferenceSendMessageTooLong
	ConferenceSendMessageNoConnection
	ConferenceSendMessageFailSend
)

// tox_conference_get_title, tox_conference_set_title
const (
	ConferenceTitleConferenceNotFound uint32 = iota + 1
	ConferenceTitleInvalidLength
	ConferenceTitleFailSend
)

// tox_conference_get_type
const (
	ConferenceGetTypeConferenceNotFound uint32 = iota + 1
)

// tox_conference_by_id
const (
	ConferenceByIDNull uint32 = iota + 1
	ConferenceByIDNotFound
)

// tox_friend_send_lossy_packet, tox_friend_send_lossless_packet
const (
	FriendCustomPacketNull uint32 = iota + 1
	FriendCustomPacketFriendNotFound
	FriendCustomPacketFriendNotConnected
	FriendCustomPacketInvalid
	FriendCustomPacketEmpty
	FriendCustomPacketTooLong
	FriendCustomPacketSendQ
)

// toxav_new
const (
	AVNewNull uint32 = iota + 1
	AVNewMalloc
	AVNewMultiple
)

// toxav_call
const (
	CallMalloc uint32 = iota + 1
	CallSync
	CallFriendNotFound
	CallFriendNotConnected
	CallFriendAlreadyInCall
	CallInvalidBitRate
)

// toxav_answer
const (
	AnswerSync uint32 = iota + 1
	AnswerCodecInitialization
	AnswerFriendNotFound
	AnswerFriendNotCalling
	AnswerInvalidBitRate
)

// toxav_call_control
const (
	CallControlErrSync uint32 = iota + 1
	CallControlErrFriendNotFound
	CallControlErrFriendNotInCall
	CallControlErrInvalidTransition
)

// toxav_audio_set_bit_rate, toxav_video_set_bit_rate
const (
	BitRateSetSync uint32 = iota + 1
	BitRateSetInvalidBitRate
	BitRateSetFriendNotFound
	BitRateSetFriendNotInCall
)

// toxav_audio_send_frame, toxav_video_send_frame
const (
	SendFrameNull uint32 = iota + 1
	SendFrameFriendNotFound
	SendFrameFriendNotInCall
	SendFrameSync
	SendFrameInvalid
	SendFramePayloadTypeDisabled
	SendFrameRTPFailed
)
