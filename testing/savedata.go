package testing

import (
	"bytes"
	"encoding/hex"
	"encoding/json"

	"github.com/opd-ai/toxbind/encryptsave"
	"github.com/opd-ai/toxbind/interfaces"
	"github.com/sirupsen/logrus"
)

const saveFormat = "toxbind-sim/1"

type saveState struct {
	Format        string        `json:"format"`
	SecretKey     string        `json:"secret_key"`
	Nospam        uint32        `json:"nospam"`
	Name          []byte        `json:"name,omitempty"`
	StatusMessage []byte        `json:"status_message,omitempty"`
	Status        uint32        `json:"status"`
	Friends       []savedFriend `json:"friends,omitempty"`
}

type savedFriend struct {
	PublicKey      string  `json:"public_key"`
	Name           []byte  `json:"name,omitempty"`
	StatusMessage  []byte  `json:"status_message,omitempty"`
	Status         uint32  `json:"status"`
	LastOnline     uint64  `json:"last_online"`
	RequestNospam  *uint32 `json:"request_nospam,omitempty"`
	RequestMessage []byte  `json:"request_message,omitempty"`
}

// Savedata serializes keys, profile and friend list as JSON. Conferences
// and transfers are not persisted.
func (e *Engine) Savedata() []byte {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()

	state := saveState{
		Format:        saveFormat,
		SecretKey:     hex.EncodeToString(e.secretKey[:]),
		Nospam:        e.nospam,
		Name:          e.name,
		StatusMessage: e.statusMessage,
		Status:        e.status,
	}
	for _, f := range e.friends {
		if f == nil {
			continue
		}
		sf := savedFriend{
			PublicKey:     hex.EncodeToString(f.publicKey[:]),
			Name:          f.name,
			StatusMessage: f.statusMessage,
			Status:        f.status,
			LastOnline:    f.lastOnline,
		}
		if f.request != nil {
			nospam := f.request.nospam
			sf.RequestNospam = &nospam
			sf.RequestMessage = f.request.message
		}
		state.Friends = append(state.Friends, sf)
	}

	data, err := json.Marshal(state)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Engine.Savedata",
			"error":    err.Error(),
		}).Error("Failed to serialize simulated engine state")
		return nil
	}
	return data
}

// load restores an engine from Savedata output.
func (e *Engine) load(data []byte) uint32 {
	if encryptsave.IsEncrypted(data) {
		return interfaces.NewLoadEncrypted
	}

	var state saveState
	if err := json.Unmarshal(data, &state); err != nil || state.Format != saveFormat {
		logrus.WithFields(logrus.Fields{
			"function": "Engine.load",
			"size":     len(data),
		}).Warn("Savedata is not in the simulation format")
		return interfaces.NewLoadBadFormat
	}

	sk, ok := decodeKey(state.SecretKey)
	if !ok {
		return interfaces.NewLoadBadFormat
	}
	if err := e.setSecretKey(sk); err != nil {
		return interfaces.NewLoadBadFormat
	}
	e.nospam = state.Nospam
	e.name = bytes.Clone(state.Name)
	e.statusMessage = bytes.Clone(state.StatusMessage)
	e.status = state.Status

	for _, sf := range state.Friends {
		pk, ok := decodeKey(sf.PublicKey)
		if !ok {
			return interfaces.NewLoadBadFormat
		}
		f := &friend{
			publicKey:     pk,
			name:          bytes.Clone(sf.Name),
			statusMessage: bytes.Clone(sf.StatusMessage),
			status:        sf.Status,
			lastOnline:    sf.LastOnline,
		}
		if sf.RequestNospam != nil {
			f.request = &friendRequest{nospam: *sf.RequestNospam, message: bytes.Clone(sf.RequestMessage)}
		}
		e.addFriend(f)
	}
	return interfaces.OK
}

func decodeKey(s string) ([32]byte, bool) {
	var key [32]byte
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != len(key) {
		return key, false
	}
	copy(key[:], b)
	return key, true
}
