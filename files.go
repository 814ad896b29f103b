package toxbind

import (
	"github.com/opd-ai/toxbind/interfaces"
	"github.com/opd-ai/toxbind/limits"
	"github.com/sirupsen/logrus"
)

// FileControl applies a control command to a transfer.
func (t *Tox) FileControl(friend, file uint32, control FileControl) error {
	return t.withEngine(func(e interfaces.Engine) error {
		return check[FileControlError](e.FileControl(friend, file, uint32(control)))
	})
}

// FileSeek moves an incoming transfer that has not started yet to position.
func (t *Tox) FileSeek(friend, file uint32, position uint64) error {
	return t.withEngine(func(e interfaces.Engine) error {
		return check[FileSeekError](e.FileSeek(friend, file, position))
	})
}

// FileID returns the identifier of a transfer.
func (t *Tox) FileID(friend, file uint32) (FileID, error) {
	var id FileID
	err := t.withEngine(func(e interfaces.Engine) error {
		v, code := e.FileID(friend, file)
		id = v
		return check[FileGetError](code)
	})
	return id, err
}

// FileSend offers a file to a friend and returns the file number. fileID
// may be nil to let the engine pick a random one. A size of
// math.MaxUint64 means the size is unknown.
func (t *Tox) FileSend(friend uint32, kind FileKind, size uint64, fileID *FileID, name string) (uint32, error) {
	if len(name) > limits.MaxFilenameLength {
		return 0, FileSendNameTooLong
	}

	var id *[32]byte
	if fileID != nil {
		raw := [32]byte(*fileID)
		id = &raw
	}

	var file uint32
	err := t.withEngine(func(e interfaces.Engine) error {
		n, code := e.FileSend(friend, uint32(kind), size, id, []byte(name))
		file = n
		return check[FileSendError](code)
	})
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"function":  "FileSend",
		"friend_id": friend,
		"file_id":   file,
		"file_name": name,
		"file_size": size,
	}).Info("File transfer offered")
	return file, nil
}

// FileSendChunk sends the chunk requested by a FileChunkRequestEvent.
func (t *Tox) FileSendChunk(friend, file uint32, position uint64, data []byte) error {
	return t.withEngine(func(e interfaces.Engine) error {
		return check[FileSendChunkError](e.FileSendChunk(friend, file, position, data))
	})
}
