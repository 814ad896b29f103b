package toxbind

import (
	"math"
	"strings"
	"testing"

	"github.com/opd-ai/toxbind/limits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTransfer(t *testing.T) {
	network := newNetwork()
	alice := newTox(t, network)
	bob := newTox(t, network)
	bNum, aNum := connect(t, alice, bob)

	payload := []byte("the quick brown fox jumps over the lazy dog")
	id := FileID{1, 2, 3}
	file, err := alice.FileSend(bNum, FileKindData, uint64(len(payload)), &id, "fox.txt")
	require.NoError(t, err)

	offers := eventsOf[*FileReceiveEvent](drain(bob))
	require.Len(t, offers, 1)
	offer := offers[0]
	assert.Equal(t, aNum, offer.Friend)
	assert.Equal(t, FileKindData, offer.Kind)
	assert.Equal(t, uint64(len(payload)), offer.Size)
	assert.Equal(t, "fox.txt", offer.Name)

	got, err := bob.FileID(aNum, offer.File)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	require.NoError(t, bob.FileControl(aNum, offer.File, FileResume))

	events := drain(alice)
	assert.Equal(t, []*FileControlEvent{{Friend: bNum, File: file, Control: FileResume}}, eventsOf[*FileControlEvent](events))
	requests := eventsOf[*FileChunkRequestEvent](events)
	require.Len(t, requests, 1)
	req := requests[0]
	assert.Equal(t, uint64(0), req.Position)
	assert.Equal(t, uint64(len(payload)), req.Length)

	chunk := payload[req.Position : req.Position+req.Length]
	assert.ErrorIs(t, alice.FileSendChunk(bNum, file, 5, chunk), FileSendChunkWrongPosition)
	require.NoError(t, alice.FileSendChunk(bNum, file, req.Position, chunk))

	chunks := eventsOf[*FileChunkEvent](drain(bob))
	require.Len(t, chunks, 1)
	assert.Equal(t, payload, chunks[0].Data)

	// The next request has length zero and ends the transfer.
	requests = eventsOf[*FileChunkRequestEvent](drain(alice))
	require.Len(t, requests, 1)
	assert.Equal(t, uint64(0), requests[0].Length)

	chunks = eventsOf[*FileChunkEvent](drain(bob))
	require.Len(t, chunks, 1)
	assert.Empty(t, chunks[0].Data)

	_, err = alice.FileID(bNum, file)
	assert.ErrorIs(t, err, FileGetNotFound)
}

func TestFileControlErrors(t *testing.T) {
	network := newNetwork()
	alice := newTox(t, network)
	bob := newTox(t, network)
	bNum, aNum := connect(t, alice, bob)

	file, err := alice.FileSend(bNum, FileKindAvatar, 100, nil, "avatar.png")
	require.NoError(t, err)
	offer := eventsOf[*FileReceiveEvent](drain(bob))[0]
	assert.Equal(t, FileKindAvatar, offer.Kind)

	assert.ErrorIs(t, alice.FileControl(bNum, 99, FileResume), FileControlNotFound)
	assert.ErrorIs(t, alice.FileControl(42, file, FileResume), FileControlFriendNotFound)
	assert.ErrorIs(t, alice.FileControl(bNum, file, FileResume), FileControlNotPaused)

	require.NoError(t, alice.FileControl(bNum, file, FilePause))
	assert.ErrorIs(t, alice.FileControl(bNum, file, FilePause), FileControlAlreadyPaused)

	// Accepting works while the sender is paused, resuming past its pause
	// does not.
	require.NoError(t, bob.FileControl(aNum, offer.File, FileResume))
	assert.ErrorIs(t, bob.FileControl(aNum, offer.File, FileResume), FileControlDenied)
	assert.ErrorIs(t, bob.FileSeek(aNum, offer.File, 0), FileSeekDenied)
}

func TestFileSeekAndCancel(t *testing.T) {
	network := newNetwork()
	alice := newTox(t, network)
	bob := newTox(t, network)
	bNum, aNum := connect(t, alice, bob)

	file, err := alice.FileSend(bNum, FileKindData, 4096, nil, "resume.bin")
	require.NoError(t, err)
	offer := eventsOf[*FileReceiveEvent](drain(bob))[0]

	assert.ErrorIs(t, bob.FileSeek(aNum, offer.File, 4096), FileSeekInvalidPosition)
	require.NoError(t, bob.FileSeek(aNum, offer.File, 1024))
	require.NoError(t, bob.FileControl(aNum, offer.File, FileResume))
	assert.ErrorIs(t, bob.FileSeek(aNum, offer.File, 0), FileSeekDenied)

	requests := eventsOf[*FileChunkRequestEvent](drain(alice))
	require.Len(t, requests, 1)
	assert.Equal(t, uint64(1024), requests[0].Position)

	require.NoError(t, bob.FileControl(aNum, offer.File, FileCancel))
	controls := eventsOf[*FileControlEvent](drain(alice))
	require.Len(t, controls, 1)
	assert.Equal(t, FileCancel, controls[0].Control)
	assert.ErrorIs(t, alice.FileSendChunk(bNum, file, 1024, make([]byte, 1371)), FileSendChunkNotFound)
}

func TestFileSendValidation(t *testing.T) {
	network := newNetwork()
	alice := newTox(t, network)
	bob := newTox(t, network)
	bNum, _ := connect(t, alice, bob)

	_, err := alice.FileSend(bNum, FileKindData, 1, nil, strings.Repeat("n", limits.MaxFilenameLength+1))
	assert.ErrorIs(t, err, FileSendNameTooLong)

	_, err = alice.FileSend(42, FileKindData, 1, nil, "x")
	assert.ErrorIs(t, err, FileSendFriendNotFound)

	file, err := alice.FileSend(bNum, FileKindData, math.MaxUint64, nil, "stream")
	require.NoError(t, err)
	assert.ErrorIs(t, alice.FileSendChunk(bNum, file, 0, []byte("early")), FileSendChunkNotTransferring)

	bob.Kill()
	_, err = alice.FileSend(bNum, FileKindData, 1, nil, "x")
	assert.ErrorIs(t, err, FileSendFriendNotConnected)
}
