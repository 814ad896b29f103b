package testing

import (
	"bytes"
	"crypto/rand"
	"math"

	"github.com/opd-ai/toxbind/interfaces"
	"github.com/opd-ai/toxbind/limits"
)

const (
	// chunkSize is the largest chunk requested from a sender.
	chunkSize = 1371
	// maxTransfers is the per-direction transfer limit of one friend.
	maxTransfers = 256
	// unknownSize marks a stream of unknown length.
	unknownSize = math.MaxUint64
)

// transfer is one side of a file transfer. Both ends keep their own
// record and point at each other's file number.
type transfer struct {
	number     uint32
	peerNumber uint32
	kind       uint32
	size       uint64
	id         [32]byte
	name       []byte
	position   uint64

	accepted     bool
	pausedByUs   bool
	pausedByPeer bool

	requested  bool
	requestLen uint64
}

func (t *transfer) transferring() bool {
	return t.accepted && !t.pausedByUs && !t.pausedByPeer
}

func freeNumber(m map[uint32]*transfer, receiving bool) (uint32, bool) {
	for i := uint32(0); i < maxTransfers; i++ {
		num := i
		if receiving {
			num = (i + 1) << 16
		}
		if _, used := m[num]; !used {
			return num, true
		}
	}
	return 0, false
}

// lookupTransfer finds file on friend f and the matching record on the
// peer side.
func (e *Engine) lookupTransfer(f *friend, back *friend, file uint32) (t, other *transfer, sending bool) {
	if t = f.sending[file]; t != nil {
		if back != nil {
			other = back.receiving[t.peerNumber]
		}
		return t, other, true
	}
	if t = f.receiving[file]; t != nil {
		if back != nil {
			other = back.sending[t.peerNumber]
		}
		return t, other, false
	}
	return nil, nil, false
}

func (e *Engine) FileSend(num uint32, kind uint32, size uint64, fileID *[32]byte, name []byte) (uint32, uint32) {
	n := e.net
	n.mu.Lock()
	defer n.mu.Unlock()

	f := e.friendAt(num)
	if f == nil {
		return 0, interfaces.FileSendFriendNotFound
	}
	peer, pn, back := e.peerOf(f)
	if peer == nil {
		return 0, interfaces.FileSendFriendNotConnected
	}
	if len(name) > limits.MaxFilenameLength {
		return 0, interfaces.FileSendNameTooLong
	}
	if f.sending == nil {
		f.sending = make(map[uint32]*transfer)
	}
	if back.receiving == nil {
		back.receiving = make(map[uint32]*transfer)
	}
	file, ok := freeNumber(f.sending, false)
	if !ok {
		return 0, interfaces.FileSendTooMany
	}
	peerFile, ok := freeNumber(back.receiving, true)
	if !ok {
		return 0, interfaces.FileSendTooMany
	}

	var id [32]byte
	if fileID != nil {
		id = *fileID
	} else {
		_, _ = rand.Read(id[:])
	}

	f.sending[file] = &transfer{
		number: file, peerNumber: peerFile, kind: kind, size: size, id: id, name: bytes.Clone(name),
	}
	back.receiving[peerFile] = &transfer{
		number: peerFile, peerNumber: file, kind: kind, size: size, id: id, name: bytes.Clone(name),
	}

	v := bytes.Clone(name)
	peer.post(func(cb interfaces.CoreCallbacks) { cb.OnFileRecv(pn, peerFile, kind, size, v) })
	n.record("file_send", e.publicKey, peer.publicKey, len(name), true)
	return file, interfaces.OK
}

func (e *Engine) FileControl(num, file uint32, control uint32) uint32 {
	n := e.net
	n.mu.Lock()
	defer n.mu.Unlock()

	f := e.friendAt(num)
	if f == nil {
		return interfaces.FileControlFriendNotFound
	}
	peer, pn, back := e.peerOf(f)
	if peer == nil {
		return interfaces.FileControlFriendNotConnected
	}
	t, other, sending := e.lookupTransfer(f, back, file)
	if t == nil || other == nil {
		return interfaces.FileControlNotFound
	}

	switch control {
	case interfaces.FileControlResume:
		switch {
		case t.pausedByUs:
			t.pausedByUs = false
			other.pausedByPeer = false
		case !sending && !t.accepted:
			t.accepted = true
			other.accepted = true
		case t.pausedByPeer:
			return interfaces.FileControlDenied
		default:
			return interfaces.FileControlNotPaused
		}
	case interfaces.FileControlPause:
		if t.pausedByUs {
			return interfaces.FileControlAlreadyPaused
		}
		t.pausedByUs = true
		other.pausedByPeer = true
	case interfaces.FileControlCancel:
		if sending {
			delete(f.sending, file)
			delete(back.receiving, t.peerNumber)
		} else {
			delete(f.receiving, file)
			delete(back.sending, t.peerNumber)
		}
	default:
		return interfaces.FileControlNotFound
	}

	peerFile := t.peerNumber
	peer.post(func(cb interfaces.CoreCallbacks) { cb.OnFileRecvControl(pn, peerFile, control) })
	return interfaces.OK
}

func (e *Engine) FileSeek(num, file uint32, position uint64) uint32 {
	n := e.net
	n.mu.Lock()
	defer n.mu.Unlock()

	f := e.friendAt(num)
	if f == nil {
		return interfaces.FileSeekFriendNotFound
	}
	peer, _, back := e.peerOf(f)
	if peer == nil {
		return interfaces.FileSeekFriendNotConnected
	}
	t := f.receiving[file]
	if t == nil {
		return interfaces.FileSeekNotFound
	}
	if t.accepted {
		return interfaces.FileSeekDenied
	}
	if position >= t.size {
		return interfaces.FileSeekInvalidPosition
	}
	t.position = position
	if other := back.sending[t.peerNumber]; other != nil {
		other.position = position
	}
	return interfaces.OK
}

func (e *Engine) FileID(num, file uint32) ([32]byte, uint32) {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()

	f := e.friendAt(num)
	if f == nil {
		return [32]byte{}, interfaces.FileGetFriendNotFound
	}
	t, _, _ := e.lookupTransfer(f, nil, file)
	if t == nil {
		return [32]byte{}, interfaces.FileGetNotFound
	}
	return t.id, interfaces.OK
}

func (e *Engine) FileSendChunk(num, file uint32, position uint64, data []byte) uint32 {
	n := e.net
	n.mu.Lock()
	defer n.mu.Unlock()

	f := e.friendAt(num)
	if f == nil {
		return interfaces.FileSendChunkFriendNotFound
	}
	peer, pn, back := e.peerOf(f)
	if peer == nil {
		return interfaces.FileSendChunkFriendNotConnected
	}
	t := f.sending[file]
	if t == nil {
		return interfaces.FileSendChunkNotFound
	}
	other := back.receiving[t.peerNumber]
	if other == nil {
		return interfaces.FileSendChunkNotFound
	}
	if !t.transferring() {
		return interfaces.FileSendChunkNotTransferring
	}
	if !t.requested || position != t.position {
		return interfaces.FileSendChunkWrongPosition
	}
	if t.size == unknownSize {
		if uint64(len(data)) > t.requestLen {
			return interfaces.FileSendChunkInvalidLength
		}
	} else if uint64(len(data)) != t.requestLen {
		return interfaces.FileSendChunkInvalidLength
	}

	t.position += uint64(len(data))
	t.requested = false
	if t.size == unknownSize && uint64(len(data)) < t.requestLen {
		t.size = t.position
		other.size = t.position
	}
	other.position = t.position

	if len(data) > 0 {
		peerFile := t.peerNumber
		chunk := bytes.Clone(data)
		peer.post(func(cb interfaces.CoreCallbacks) { cb.OnFileRecvChunk(pn, peerFile, position, chunk) })
	}
	n.record("file_chunk", e.publicKey, peer.publicKey, len(data), true)
	return interfaces.OK
}

// requestChunks asks the application for the next chunk of every running
// outgoing transfer. A zero length request ends the transfer on both
// sides. Caller holds the network lock.
func (e *Engine) requestChunks() {
	for i, f := range e.friends {
		if f == nil || len(f.sending) == 0 {
			continue
		}
		num := uint32(i)
		peer, pn, back := e.peerOf(f)
		if peer == nil {
			continue
		}
		for file, t := range f.sending {
			if !t.transferring() || t.requested {
				continue
			}
			length := uint64(chunkSize)
			if t.size != unknownSize {
				length = min(length, t.size-t.position)
			}
			position := t.position

			if length == 0 {
				delete(f.sending, file)
				e.post(func(cb interfaces.CoreCallbacks) { cb.OnFileChunkRequest(num, file, position, 0) })
				if other := back.receiving[t.peerNumber]; other != nil {
					delete(back.receiving, t.peerNumber)
					peerFile := t.peerNumber
					peer.post(func(cb interfaces.CoreCallbacks) { cb.OnFileRecvChunk(pn, peerFile, position, nil) })
				}
				continue
			}

			t.requested = true
			t.requestLen = length
			e.post(func(cb interfaces.CoreCallbacks) { cb.OnFileChunkRequest(num, file, position, length) })
		}
	}
}
