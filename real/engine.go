//go:build libtoxcore

package real

/*
#cgo pkg-config: toxcore
#include <stdlib.h>
#include <tox/tox.h>

extern void goSelfConnectionStatus(Tox*, uint32_t, void*);
extern void goFriendRequest(Tox*, uint8_t*, uint8_t*, size_t, void*);
extern void goFriendMessage(Tox*, uint32_t, uint32_t, uint8_t*, size_t, void*);
extern void goFriendName(Tox*, uint32_t, uint8_t*, size_t, void*);
extern void goFriendStatusMessage(Tox*, uint32_t, uint8_t*, size_t, void*);
extern void goFriendStatus(Tox*, uint32_t, uint32_t, void*);
extern void goFriendConnectionStatus(Tox*, uint32_t, uint32_t, void*);
extern void goFriendTyping(Tox*, uint32_t, bool, void*);
extern void goFriendReadReceipt(Tox*, uint32_t, uint32_t, void*);
extern void goFileRecvControl(Tox*, uint32_t, uint32_t, uint32_t, void*);
extern void goFileChunkRequest(Tox*, uint32_t, uint32_t, uint64_t, size_t, void*);
extern void goFileRecv(Tox*, uint32_t, uint32_t, uint32_t, uint64_t, uint8_t*, size_t, void*);
extern void goFileRecvChunk(Tox*, uint32_t, uint32_t, uint64_t, uint8_t*, size_t, void*);
extern void goConferenceInvite(Tox*, uint32_t, uint32_t, uint8_t*, size_t, void*);
extern void goConferenceConnected(Tox*, uint32_t, void*);
extern void goConferenceMessage(Tox*, uint32_t, uint32_t, uint32_t, uint8_t*, size_t, void*);
extern void goConferenceTitle(Tox*, uint32_t, uint32_t, uint8_t*, size_t, void*);
extern void goConferencePeerName(Tox*, uint32_t, uint32_t, uint8_t*, size_t, void*);
extern void goConferencePeerListChanged(Tox*, uint32_t, void*);
extern void goFriendLossyPacket(Tox*, uint32_t, uint8_t*, size_t, void*);
extern void goFriendLosslessPacket(Tox*, uint32_t, uint8_t*, size_t, void*);

static void cb_self_connection_status(Tox *t, TOX_CONNECTION s, void *ud) { goSelfConnectionStatus(t, s, ud); }
static void cb_friend_request(Tox *t, const uint8_t *pk, const uint8_t *m, size_t n, void *ud) { goFriendRequest(t, (uint8_t*)pk, (uint8_t*)m, n, ud); }
static void cb_friend_message(Tox *t, uint32_t f, TOX_MESSAGE_TYPE k, const uint8_t *m, size_t n, void *ud) { goFriendMessage(t, f, k, (uint8_t*)m, n, ud); }
static void cb_friend_name(Tox *t, uint32_t f, const uint8_t *m, size_t n, void *ud) { goFriendName(t, f, (uint8_t*)m, n, ud); }
static void cb_friend_status_message(Tox *t, uint32_t f, const uint8_t *m, size_t n, void *ud) { goFriendStatusMessage(t, f, (uint8_t*)m, n, ud); }
static void cb_friend_status(Tox *t, uint32_t f, TOX_USER_STATUS s, void *ud) { goFriendStatus(t, f, s, ud); }
static void cb_friend_connection_status(Tox *t, uint32_t f, TOX_CONNECTION s, void *ud) { goFriendConnectionStatus(t, f, s, ud); }
static void cb_friend_typing(Tox *t, uint32_t f, bool typing, void *ud) { goFriendTyping(t, f, typing, ud); }
static void cb_friend_read_receipt(Tox *t, uint32_t f, uint32_t id, void *ud) { goFriendReadReceipt(t, f, id, ud); }
static void cb_file_recv_control(Tox *t, uint32_t f, uint32_t file, TOX_FILE_CONTROL c, void *ud) { goFileRecvControl(t, f, file, c, ud); }
static void cb_file_chunk_request(Tox *t, uint32_t f, uint32_t file, uint64_t pos, size_t n, void *ud) { goFileChunkRequest(t, f, file, pos, n, ud); }
static void cb_file_recv(Tox *t, uint32_t f, uint32_t file, uint32_t kind, uint64_t size, const uint8_t *m, size_t n, void *ud) { goFileRecv(t, f, file, kind, size, (uint8_t*)m, n, ud); }
static void cb_file_recv_chunk(Tox *t, uint32_t f, uint32_t file, uint64_t pos, const uint8_t *m, size_t n, void *ud) { goFileRecvChunk(t, f, file, pos, (uint8_t*)m, n, ud); }
static void cb_conference_invite(Tox *t, uint32_t f, TOX_CONFERENCE_TYPE k, const uint8_t *m, size_t n, void *ud) { goConferenceInvite(t, f, k, (uint8_t*)m, n, ud); }
static void cb_conference_connected(Tox *t, uint32_t c, void *ud) { goConferenceConnected(t, c, ud); }
static void cb_conference_message(Tox *t, uint32_t c, uint32_t p, TOX_MESSAGE_TYPE k, const uint8_t *m, size_t n, void *ud) { goConferenceMessage(t, c, p, k, (uint8_t*)m, n, ud); }
static void cb_conference_title(Tox *t, uint32_t c, uint32_t p, const uint8_t *m, size_t n, void *ud) { goConferenceTitle(t, c, p, (uint8_t*)m, n, ud); }
static void cb_conference_peer_name(Tox *t, uint32_t c, uint32_t p, const uint8_t *m, size_t n, void *ud) { goConferencePeerName(t, c, p, (uint8_t*)m, n, ud); }
static void cb_conference_peer_list_changed(Tox *t, uint32_t c, void *ud) { goConferencePeerListChanged(t, c, ud); }
static void cb_friend_lossy_packet(Tox *t, uint32_t f, const uint8_t *m, size_t n, void *ud) { goFriendLossyPacket(t, f, (uint8_t*)m, n, ud); }
static void cb_friend_lossless_packet(Tox *t, uint32_t f, const uint8_t *m, size_t n, void *ud) { goFriendLosslessPacket(t, f, (uint8_t*)m, n, ud); }

static void install_core_callbacks(Tox *t) {
	tox_callback_self_connection_status(t, cb_self_connection_status);
	tox_callback_friend_request(t, cb_friend_request);
	tox_callback_friend_message(t, cb_friend_message);
	tox_callback_friend_name(t, cb_friend_name);
	tox_callback_friend_status_message(t, cb_friend_status_message);
	tox_callback_friend_status(t, cb_friend_status);
	tox_callback_friend_connection_status(t, cb_friend_connection_status);
	tox_callback_friend_typing(t, cb_friend_typing);
	tox_callback_friend_read_receipt(t, cb_friend_read_receipt);
	tox_callback_file_recv_control(t, cb_file_recv_control);
	tox_callback_file_chunk_request(t, cb_file_chunk_request);
	tox_callback_file_recv(t, cb_file_recv);
	tox_callback_file_recv_chunk(t, cb_file_recv_chunk);
	tox_callback_conference_invite(t, cb_conference_invite);
	tox_callback_conference_connected(t, cb_conference_connected);
	tox_callback_conference_message(t, cb_conference_message);
	tox_callback_conference_title(t, cb_conference_title);
	tox_callback_conference_peer_name(t, cb_conference_peer_name);
	tox_callback_conference_peer_list_changed(t, cb_conference_peer_list_changed);
	tox_callback_friend_lossy_packet(t, cb_friend_lossy_packet);
	tox_callback_friend_lossless_packet(t, cb_friend_lossless_packet);
}
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/opd-ai/toxbind/interfaces"
	"github.com/sirupsen/logrus"
)

// Available reports whether libtoxcore is compiled in.
const Available = true

// Engine drives one libtoxcore instance. It implements interfaces.Engine.
type Engine struct {
	tox *C.Tox

	// userData is C memory holding a cgo.Handle to the Engine. It is the
	// user_data of every core callback.
	handle   cgo.Handle
	userData unsafe.Pointer

	// cb is the sink for the Iterate call in progress.
	cb interfaces.CoreCallbacks

	av *AVEngine

	// groups owns the user_data of audio conferences.
	groups groupRegistry
}

var _ interfaces.Engine = (*Engine)(nil)

// NewEngine creates a libtoxcore instance. It has the signature of
// interfaces.EngineFunc.
func NewEngine(opts *interfaces.EngineOptions) (interfaces.Engine, uint32) {
	if opts == nil {
		return nil, interfaces.NewNull
	}

	var optErr C.TOX_ERR_OPTIONS_NEW
	copts := C.tox_options_new(&optErr)
	if copts == nil {
		return nil, interfaces.NewMalloc
	}
	defer C.tox_options_free(copts)

	C.tox_options_set_ipv6_enabled(copts, C.bool(opts.IPv6Enabled))
	C.tox_options_set_udp_enabled(copts, C.bool(opts.UDPEnabled))
	C.tox_options_set_local_discovery_enabled(copts, C.bool(opts.LocalDiscoveryEnabled))
	C.tox_options_set_hole_punching_enabled(copts, C.bool(opts.HolePunchingEnabled))
	C.tox_options_set_proxy_type(copts, C.TOX_PROXY_TYPE(opts.ProxyType))
	C.tox_options_set_proxy_port(copts, C.uint16_t(opts.ProxyPort))
	C.tox_options_set_start_port(copts, C.uint16_t(opts.StartPort))
	C.tox_options_set_end_port(copts, C.uint16_t(opts.EndPort))
	C.tox_options_set_tcp_port(copts, C.uint16_t(opts.TCPPort))

	if opts.ProxyHost != "" {
		host := C.CString(opts.ProxyHost)
		defer C.free(unsafe.Pointer(host))
		C.tox_options_set_proxy_host(copts, host)
	}
	if opts.SavedataType != interfaces.SavedataNone && len(opts.Savedata) > 0 {
		data := C.CBytes(opts.Savedata)
		defer C.free(data)
		C.tox_options_set_savedata_type(copts, C.TOX_SAVEDATA_TYPE(opts.SavedataType))
		C.tox_options_set_savedata_data(copts, (*C.uint8_t)(data), C.size_t(len(opts.Savedata)))
	}

	var err C.TOX_ERR_NEW
	tox := C.tox_new(copts, &err)
	if tox == nil {
		logrus.WithFields(logrus.Fields{
			"function": "NewEngine",
			"code":     uint32(err),
		}).Error("tox_new failed")
		return nil, uint32(err)
	}

	e := &Engine{tox: tox}
	e.handle = cgo.NewHandle(e)
	e.userData = C.malloc(C.size_t(unsafe.Sizeof(e.handle)))
	*(*cgo.Handle)(e.userData) = e.handle
	C.install_core_callbacks(tox)

	logrus.WithFields(logrus.Fields{
		"function": "NewEngine",
	}).Info("libtoxcore instance created")
	return e, interfaces.OK
}

func ptr(b []byte) *C.uint8_t {
	if len(b) == 0 {
		return nil
	}
	return (*C.uint8_t)(unsafe.Pointer(&b[0]))
}

func (e *Engine) Iterate(cb interfaces.CoreCallbacks) {
	e.cb = cb
	C.tox_iterate(e.tox, e.userData)
	e.cb = nil
}

func (e *Engine) IterationInterval() uint32 {
	return uint32(C.tox_iteration_interval(e.tox))
}

func (e *Engine) Kill() {
	if e.tox == nil {
		return
	}
	if e.av != nil {
		e.av.Kill()
	}
	C.tox_kill(e.tox)
	e.tox = nil
	e.groups.releaseAll()
	e.handle.Delete()
	C.free(e.userData)
	e.userData = nil
}

func (e *Engine) Savedata() []byte {
	size := C.tox_get_savedata_size(e.tox)
	buf := make([]byte, int(size))
	if size > 0 {
		C.tox_get_savedata(e.tox, ptr(buf))
	}
	return buf
}

func (e *Engine) Bootstrap(host string, port uint16, publicKey [32]byte) uint32 {
	chost := C.CString(host)
	defer C.free(unsafe.Pointer(chost))
	var err C.TOX_ERR_BOOTSTRAP
	C.tox_bootstrap(e.tox, chost, C.uint16_t(port), ptr(publicKey[:]), &err)
	return uint32(err)
}

func (e *Engine) AddTCPRelay(host string, port uint16, publicKey [32]byte) uint32 {
	chost := C.CString(host)
	defer C.free(unsafe.Pointer(chost))
	var err C.TOX_ERR_BOOTSTRAP
	C.tox_add_tcp_relay(e.tox, chost, C.uint16_t(port), ptr(publicKey[:]), &err)
	return uint32(err)
}

func (e *Engine) SelfConnectionStatus() uint32 {
	return uint32(C.tox_self_get_connection_status(e.tox))
}

func (e *Engine) SelfAddress() [38]byte {
	var addr [38]byte
	C.tox_self_get_address(e.tox, ptr(addr[:]))
	return addr
}

func (e *Engine) SelfNospam() uint32 {
	return uint32(C.tox_self_get_nospam(e.tox))
}

func (e *Engine) SelfSetNospam(nospam uint32) {
	C.tox_self_set_nospam(e.tox, C.uint32_t(nospam))
}

func (e *Engine) SelfPublicKey() [32]byte {
	var pk [32]byte
	C.tox_self_get_public_key(e.tox, ptr(pk[:]))
	return pk
}

func (e *Engine) SelfSecretKey() [32]byte {
	var sk [32]byte
	C.tox_self_get_secret_key(e.tox, ptr(sk[:]))
	return sk
}

func (e *Engine) SelfSetName(name []byte) uint32 {
	var err C.TOX_ERR_SET_INFO
	C.tox_self_set_name(e.tox, ptr(name), C.size_t(len(name)), &err)
	return uint32(err)
}

func (e *Engine) SelfName() []byte {
	buf := make([]byte, int(C.tox_self_get_name_size(e.tox)))
	if len(buf) > 0 {
		C.tox_self_get_name(e.tox, ptr(buf))
	}
	return buf
}

func (e *Engine) SelfSetStatusMessage(message []byte) uint32 {
	var err C.TOX_ERR_SET_INFO
	C.tox_self_set_status_message(e.tox, ptr(message), C.size_t(len(message)), &err)
	return uint32(err)
}

func (e *Engine) SelfStatusMessage() []byte {
	buf := make([]byte, int(C.tox_self_get_status_message_size(e.tox)))
	if len(buf) > 0 {
		C.tox_self_get_status_message(e.tox, ptr(buf))
	}
	return buf
}

func (e *Engine) SelfSetStatus(status uint32) {
	C.tox_self_set_status(e.tox, C.TOX_USER_STATUS(status))
}

func (e *Engine) SelfStatus() uint32 {
	return uint32(C.tox_self_get_status(e.tox))
}

func (e *Engine) FriendAdd(address [38]byte, message []byte) (uint32, uint32) {
	var err C.TOX_ERR_FRIEND_ADD
	num := C.tox_friend_add(e.tox, ptr(address[:]), ptr(message), C.size_t(len(message)), &err)
	return uint32(num), uint32(err)
}

func (e *Engine) FriendAddNorequest(publicKey [32]byte) (uint32, uint32) {
	var err C.TOX_ERR_FRIEND_ADD
	num := C.tox_friend_add_norequest(e.tox, ptr(publicKey[:]), &err)
	return uint32(num), uint32(err)
}

func (e *Engine) FriendDelete(friend uint32) uint32 {
	var err C.TOX_ERR_FRIEND_DELETE
	C.tox_friend_delete(e.tox, C.uint32_t(friend), &err)
	return uint32(err)
}

func (e *Engine) FriendByPublicKey(publicKey [32]byte) (uint32, uint32) {
	var err C.TOX_ERR_FRIEND_BY_PUBLIC_KEY
	num := C.tox_friend_by_public_key(e.tox, ptr(publicKey[:]), &err)
	return uint32(num), uint32(err)
}

func (e *Engine) FriendExists(friend uint32) bool {
	return bool(C.tox_friend_exists(e.tox, C.uint32_t(friend)))
}

func (e *Engine) FriendList() []uint32 {
	list := make([]uint32, int(C.tox_self_get_friend_list_size(e.tox)))
	if len(list) > 0 {
		C.tox_self_get_friend_list(e.tox, (*C.uint32_t)(unsafe.Pointer(&list[0])))
	}
	return list
}

func (e *Engine) FriendPublicKey(friend uint32) ([32]byte, uint32) {
	var pk [32]byte
	var err C.TOX_ERR_FRIEND_GET_PUBLIC_KEY
	C.tox_friend_get_public_key(e.tox, C.uint32_t(friend), ptr(pk[:]), &err)
	return pk, uint32(err)
}

func (e *Engine) FriendLastOnline(friend uint32) (uint64, uint32) {
	var err C.TOX_ERR_FRIEND_GET_LAST_ONLINE
	ts := C.tox_friend_get_last_online(e.tox, C.uint32_t(friend), &err)
	return uint64(ts), uint32(err)
}

func (e *Engine) FriendName(friend uint32) ([]byte, uint32) {
	var err C.TOX_ERR_FRIEND_QUERY
	size := C.tox_friend_get_name_size(e.tox, C.uint32_t(friend), &err)
	if err != C.TOX_ERR_FRIEND_QUERY_OK {
		return nil, uint32(err)
	}
	buf := make([]byte, int(size))
	if size > 0 {
		C.tox_friend_get_name(e.tox, C.uint32_t(friend), ptr(buf), &err)
	}
	return buf, uint32(err)
}

func (e *Engine) FriendStatusMessage(friend uint32) ([]byte, uint32) {
	var err C.TOX_ERR_FRIEND_QUERY
	size := C.tox_friend_get_status_message_size(e.tox, C.uint32_t(friend), &err)
	if err != C.TOX_ERR_FRIEND_QUERY_OK {
		return nil, uint32(err)
	}
	buf := make([]byte, int(size))
	if size > 0 {
		C.tox_friend_get_status_message(e.tox, C.uint32_t(friend), ptr(buf), &err)
	}
	return buf, uint32(err)
}

func (e *Engine) FriendStatus(friend uint32) (uint32, uint32) {
	var err C.TOX_ERR_FRIEND_QUERY
	status := C.tox_friend_get_status(e.tox, C.uint32_t(friend), &err)
	return uint32(status), uint32(err)
}

func (e *Engine) FriendConnectionStatus(friend uint32) (uint32, uint32) {
	var err C.TOX_ERR_FRIEND_QUERY
	status := C.tox_friend_get_connection_status(e.tox, C.uint32_t(friend), &err)
	return uint32(status), uint32(err)
}

func (e *Engine) FriendTyping(friend uint32) (bool, uint32) {
	var err C.TOX_ERR_FRIEND_QUERY
	typing := C.tox_friend_get_typing(e.tox, C.uint32_t(friend), &err)
	return bool(typing), uint32(err)
}

func (e *Engine) SelfSetTyping(friend uint32, typing bool) uint32 {
	var err C.TOX_ERR_SET_TYPING
	C.tox_self_set_typing(e.tox, C.uint32_t(friend), C.bool(typing), &err)
	return uint32(err)
}

func (e *Engine) FriendSendMessage(friend uint32, kind uint32, message []byte) (uint32, uint32) {
	var err C.TOX_ERR_FRIEND_SEND_MESSAGE
	id := C.tox_friend_send_message(e.tox, C.uint32_t(friend), C.TOX_MESSAGE_TYPE(kind),
		ptr(message), C.size_t(len(message)), &err)
	return uint32(id), uint32(err)
}

func (e *Engine) FileControl(friend, file uint32, control uint32) uint32 {
	var err C.TOX_ERR_FILE_CONTROL
	C.tox_file_control(e.tox, C.uint32_t(friend), C.uint32_t(file), C.TOX_FILE_CONTROL(control), &err)
	return uint32(err)
}

func (e *Engine) FileSeek(friend, file uint32, position uint64) uint32 {
	var err C.TOX_ERR_FILE_SEEK
	C.tox_file_seek(e.tox, C.uint32_t(friend), C.uint32_t(file), C.uint64_t(position), &err)
	return uint32(err)
}

func (e *Engine) FileID(friend, file uint32) ([32]byte, uint32) {
	var id [32]byte
	var err C.TOX_ERR_FILE_GET
	C.tox_file_get_file_id(e.tox, C.uint32_t(friend), C.uint32_t(file), ptr(id[:]), &err)
	return id, uint32(err)
}

func (e *Engine) FileSend(friend uint32, kind uint32, size uint64, fileID *[32]byte, name []byte) (uint32, uint32) {
	var id *C.uint8_t
	if fileID != nil {
		id = ptr(fileID[:])
	}
	var err C.TOX_ERR_FILE_SEND
	num := C.tox_file_send(e.tox, C.uint32_t(friend), C.uint32_t(kind), C.uint64_t(size),
		id, ptr(name), C.size_t(len(name)), &err)
	return uint32(num), uint32(err)
}

func (e *Engine) FileSendChunk(friend, file uint32, position uint64, data []byte) uint32 {
	var err C.TOX_ERR_FILE_SEND_CHUNK
	C.tox_file_send_chunk(e.tox, C.uint32_t(friend), C.uint32_t(file), C.uint64_t(position),
		ptr(data), C.size_t(len(data)), &err)
	return uint32(err)
}

func (e *Engine) ConferenceNew() (uint32, uint32) {
	var err C.TOX_ERR_CONFERENCE_NEW
	num := C.tox_conference_new(e.tox, &err)
	return uint32(num), uint32(err)
}

func (e *Engine) ConferenceDelete(conference uint32) uint32 {
	var err C.TOX_ERR_CONFERENCE_DELETE
	C.tox_conference_delete(e.tox, C.uint32_t(conference), &err)
	if err == C.TOX_ERR_CONFERENCE_DELETE_OK {
		e.groups.remove(conference)
	}
	return uint32(err)
}

func (e *Engine) ConferencePeerCount(conference uint32) (uint32, uint32) {
	var err C.TOX_ERR_CONFERENCE_PEER_QUERY
	n := C.tox_conference_peer_count(e.tox, C.uint32_t(conference), &err)
	return uint32(n), uint32(err)
}

func (e *Engine) ConferencePeerName(conference, peer uint32) ([]byte, uint32) {
	var err C.TOX_ERR_CONFERENCE_PEER_QUERY
	size := C.tox_conference_peer_get_name_size(e.tox, C.uint32_t(conference), C.uint32_t(peer), &err)
	if err != C.TOX_ERR_CONFERENCE_PEER_QUERY_OK {
		return nil, uint32(err)
	}
	buf := make([]byte, int(size))
	if size > 0 {
		C.tox_conference_peer_get_name(e.tox, C.uint32_t(conference), C.uint32_t(peer), ptr(buf), &err)
	}
	return buf, uint32(err)
}

func (e *Engine) ConferencePeerPublicKey(conference, peer uint32) ([32]byte, uint32) {
	var pk [32]byte
	var err C.TOX_ERR_CONFERENCE_PEER_QUERY
	C.tox_conference_peer_get_public_key(e.tox, C.uint32_t(conference), C.uint32_t(peer), ptr(pk[:]), &err)
	return pk, uint32(err)
}

func (e *Engine) ConferencePeerNumberIsOurs(conference, peer uint32) (bool, uint32) {
	var err C.TOX_ERR_CONFERENCE_PEER_QUERY
	ours := C.tox_conference_peer_number_is_ours(e.tox, C.uint32_t(conference), C.uint32_t(peer), &err)
	return bool(ours), uint32(err)
}

func (e *Engine) ConferenceInvite(friend, conference uint32) uint32 {
	var err C.TOX_ERR_CONFERENCE_INVITE
	C.tox_conference_invite(e.tox, C.uint32_t(friend), C.uint32_t(conference), &err)
	return uint32(err)
}

func (e *Engine) ConferenceJoin(friend uint32, cookie []byte) (uint32, uint32) {
	var err C.TOX_ERR_CONFERENCE_JOIN
	num := C.tox_conference_join(e.tox, C.uint32_t(friend), ptr(cookie), C.size_t(len(cookie)), &err)
	return uint32(num), uint32(err)
}

func (e *Engine) ConferenceSendMessage(conference uint32, kind uint32, message []byte) uint32 {
	var err C.TOX_ERR_CONFERENCE_SEND_MESSAGE
	C.tox_conference_send_message(e.tox, C.uint32_t(conference), C.TOX_MESSAGE_TYPE(kind),
		ptr(message), C.size_t(len(message)), &err)
	return uint32(err)
}

func (e *Engine) ConferenceTitle(conference uint32) ([]byte, uint32) {
	var err C.TOX_ERR_CONFERENCE_TITLE
	size := C.tox_conference_get_title_size(e.tox, C.uint32_t(conference), &err)
	if err != C.TOX_ERR_CONFERENCE_TITLE_OK {
		return nil, uint32(err)
	}
	buf := make([]byte, int(size))
	if size > 0 {
		C.tox_conference_get_title(e.tox, C.uint32_t(conference), ptr(buf), &err)
	}
	return buf, uint32(err)
}

func (e *Engine) ConferenceSetTitle(conference uint32, title []byte) uint32 {
	var err C.TOX_ERR_CONFERENCE_TITLE
	C.tox_conference_set_title(e.tox, C.uint32_t(conference), ptr(title), C.size_t(len(title)), &err)
	return uint32(err)
}

func (e *Engine) ConferenceChatlist() []uint32 {
	list := make([]uint32, int(C.tox_conference_get_chatlist_size(e.tox)))
	if len(list) > 0 {
		C.tox_conference_get_chatlist(e.tox, (*C.uint32_t)(unsafe.Pointer(&list[0])))
	}
	return list
}

func (e *Engine) ConferenceType(conference uint32) (uint32, uint32) {
	var err C.TOX_ERR_CONFERENCE_GET_TYPE
	kind := C.tox_conference_get_type(e.tox, C.uint32_t(conference), &err)
	return uint32(kind), uint32(err)
}

func (e *Engine) ConferenceID(conference uint32) ([32]byte, bool) {
	var id [32]byte
	ok := C.tox_conference_get_id(e.tox, C.uint32_t(conference), ptr(id[:]))
	return id, bool(ok)
}

func (e *Engine) ConferenceByID(id [32]byte) (uint32, uint32) {
	var err C.TOX_ERR_CONFERENCE_BY_ID
	num := C.tox_conference_by_id(e.tox, ptr(id[:]), &err)
	return uint32(num), uint32(err)
}

func (e *Engine) FriendSendLossyPacket(friend uint32, data []byte) uint32 {
	var err C.TOX_ERR_FRIEND_CUSTOM_PACKET
	C.tox_friend_send_lossy_packet(e.tox, C.uint32_t(friend), ptr(data), C.size_t(len(data)), &err)
	return uint32(err)
}

func (e *Engine) FriendSendLosslessPacket(friend uint32, data []byte) uint32 {
	var err C.TOX_ERR_FRIEND_CUSTOM_PACKET
	C.tox_friend_send_lossless_packet(e.tox, C.uint32_t(friend), ptr(data), C.size_t(len(data)), &err)
	return uint32(err)
}

func (e *Engine) NewAV() (interfaces.AVEngine, uint32) {
	av, code := newAVEngine(e)
	if av == nil {
		return nil, code
	}
	e.av = av
	return av, code
}
