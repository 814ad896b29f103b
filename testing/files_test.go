package testing

import (
	"bytes"
	"testing"

	"github.com/opd-ai/toxbind/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTransfer(t *testing.T) {
	n := testNetwork()
	alice, bob := newEngine(t, n), newEngine(t, n)
	aNum, bNum := befriend(t, alice, bob)

	payload := bytes.Repeat([]byte("0123456789"), 300)
	file, code := alice.FileSend(aNum, interfaces.FileKindData, uint64(len(payload)), nil, []byte("digits.txt"))
	require.Equal(t, interfaces.OK, code)

	rb := &recorder{}
	bob.Iterate(rb)
	recv := rb.named("file_recv")
	require.Len(t, recv, 1)
	incoming := recv[0].args[1].(uint32)
	assert.Equal(t, []any{bNum, incoming, interfaces.FileKindData, uint64(len(payload)), "digits.txt"}, recv[0].args)

	sentID, code := alice.FileID(aNum, file)
	require.Equal(t, interfaces.OK, code)
	recvID, code := bob.FileID(bNum, incoming)
	require.Equal(t, interfaces.OK, code)
	assert.Equal(t, sentID, recvID)

	// Nothing is requested before the receiver accepts.
	ra := &recorder{}
	alice.Iterate(ra)
	assert.Empty(t, ra.named("chunk_request"))

	require.Equal(t, interfaces.OK, bob.FileControl(bNum, incoming, interfaces.FileControlResume))
	assert.Equal(t, interfaces.FileSeekDenied, bob.FileSeek(bNum, incoming, 10))

	var received []byte
	done := false
	for i := 0; i < 10 && !done; i++ {
		ra.reset()
		alice.Iterate(ra)
		for _, req := range ra.named("chunk_request") {
			pos, length := req.args[2].(uint64), req.args[3].(uint64)
			if length == 0 {
				continue
			}
			require.Equal(t, interfaces.OK, alice.FileSendChunk(aNum, file, pos, payload[pos:pos+length]))
		}
		rb.reset()
		bob.Iterate(rb)
		for _, ch := range rb.named("file_chunk") {
			data := ch.args[3].([]byte)
			if len(data) == 0 {
				done = true
				continue
			}
			received = append(received, data...)
		}
	}
	assert.True(t, done)
	assert.Equal(t, payload, received)

	_, code = alice.FileID(aNum, file)
	assert.Equal(t, interfaces.FileGetNotFound, code)
}

func TestFileSendChunkChecks(t *testing.T) {
	n := testNetwork()
	alice, bob := newEngine(t, n), newEngine(t, n)
	aNum, bNum := befriend(t, alice, bob)

	file, code := alice.FileSend(aNum, interfaces.FileKindData, 100, nil, []byte("f"))
	require.Equal(t, interfaces.OK, code)
	assert.Equal(t, interfaces.FileSendChunkNotTransferring, alice.FileSendChunk(aNum, file, 0, make([]byte, 100)))

	rb := &recorder{}
	bob.Iterate(rb)
	incoming := rb.named("file_recv")[0].args[1].(uint32)
	require.Equal(t, interfaces.OK, bob.FileControl(bNum, incoming, interfaces.FileControlResume))

	alice.Iterate(&recorder{})
	assert.Equal(t, interfaces.FileSendChunkWrongPosition, alice.FileSendChunk(aNum, file, 5, make([]byte, 100)))
	assert.Equal(t, interfaces.FileSendChunkInvalidLength, alice.FileSendChunk(aNum, file, 0, make([]byte, 10)))
	assert.Equal(t, interfaces.FileSendChunkNotFound, alice.FileSendChunk(aNum, file+1, 0, nil))
	assert.Equal(t, interfaces.OK, alice.FileSendChunk(aNum, file, 0, make([]byte, 100)))

	_, code = alice.FileSend(aNum, interfaces.FileKindData, 1, nil, bytes.Repeat([]byte("n"), 256))
	assert.Equal(t, interfaces.FileSendNameTooLong, code)
}

func TestFilePauseResumeCancel(t *testing.T) {
	n := testNetwork()
	alice, bob := newEngine(t, n), newEngine(t, n)
	aNum, bNum := befriend(t, alice, bob)

	file, code := alice.FileSend(aNum, interfaces.FileKindAvatar, 10, nil, nil)
	require.Equal(t, interfaces.OK, code)
	rb := &recorder{}
	bob.Iterate(rb)
	incoming := rb.named("file_recv")[0].args[1].(uint32)

	assert.Equal(t, interfaces.FileControlNotPaused, alice.FileControl(aNum, file, interfaces.FileControlResume))
	require.Equal(t, interfaces.OK, bob.FileControl(bNum, incoming, interfaces.FileControlResume))
	require.Equal(t, interfaces.OK, alice.FileControl(aNum, file, interfaces.FileControlPause))
	assert.Equal(t, interfaces.FileControlAlreadyPaused, alice.FileControl(aNum, file, interfaces.FileControlPause))
	assert.Equal(t, interfaces.FileControlDenied, bob.FileControl(bNum, incoming, interfaces.FileControlResume))

	ra := &recorder{}
	alice.Iterate(ra)
	assert.Equal(t, []event{{"file_control", []any{aNum, file, interfaces.FileControlResume}}}, ra.named("file_control"))
	assert.Empty(t, ra.named("chunk_request"))

	require.Equal(t, interfaces.OK, bob.FileControl(bNum, incoming, interfaces.FileControlCancel))
	ra.reset()
	alice.Iterate(ra)
	assert.Equal(t, []event{{"file_control", []any{aNum, file, interfaces.FileControlCancel}}}, ra.events)
	assert.Equal(t, interfaces.FileControlNotFound, alice.FileControl(aNum, file, interfaces.FileControlCancel))
}

func TestFileSeek(t *testing.T) {
	n := testNetwork()
	alice, bob := newEngine(t, n), newEngine(t, n)
	aNum, bNum := befriend(t, alice, bob)

	file, code := alice.FileSend(aNum, interfaces.FileKindData, 4000, nil, []byte("resume.bin"))
	require.Equal(t, interfaces.OK, code)
	rb := &recorder{}
	bob.Iterate(rb)
	incoming := rb.named("file_recv")[0].args[1].(uint32)

	assert.Equal(t, interfaces.FileSeekInvalidPosition, bob.FileSeek(bNum, incoming, 4000))
	assert.Equal(t, interfaces.FileSeekNotFound, bob.FileSeek(bNum, incoming+1, 0))
	require.Equal(t, interfaces.OK, bob.FileSeek(bNum, incoming, 3000))
	require.Equal(t, interfaces.OK, bob.FileControl(bNum, incoming, interfaces.FileControlResume))

	ra := &recorder{}
	alice.Iterate(ra)
	reqs := ra.named("chunk_request")
	require.Len(t, reqs, 1)
	assert.Equal(t, []any{aNum, file, uint64(3000), uint64(1000)}, reqs[0].args)
}

func TestFileTransfersDropOnDisconnect(t *testing.T) {
	n := testNetwork()
	alice, bob := newEngine(t, n), newEngine(t, n)
	aNum, _ := befriend(t, alice, bob)

	file, code := alice.FileSend(aNum, interfaces.FileKindData, 10, nil, nil)
	require.Equal(t, interfaces.OK, code)
	bob.Kill()

	_, code = alice.FileID(aNum, file)
	assert.Equal(t, interfaces.FileGetNotFound, code)
	_, code = alice.FileSend(aNum, interfaces.FileKindData, 10, nil, nil)
	assert.Equal(t, interfaces.FileSendFriendNotConnected, code)
}
