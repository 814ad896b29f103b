package toxbind

import (
	"github.com/opd-ai/toxbind/interfaces"
	"github.com/sirupsen/logrus"
)

// GroupAudio is a handle to an audio conference created or joined through
// a ToxAV. It stays usable only while its ToxAV is alive; afterwards every
// call fails with ErrAVClosed.
type GroupAudio struct {
	av         *ToxAV
	conference uint32
}

// AddAVConference creates an audio conference. Received audio arrives as
// GroupAudioEvent.
func (av *ToxAV) AddAVConference() (*GroupAudio, error) {
	var conference uint32
	err := av.withCore(func(e interfaces.AVEngine) error {
		n, ok := e.AddAVGroupchat(av.tox.bridge)
		if !ok {
			return ErrGroupAudio
		}
		conference = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"function":      "AddAVConference",
		"conference_id": conference,
	}).Info("Audio conference created")
	return &GroupAudio{av: av, conference: conference}, nil
}

// JoinAVConference joins an audio conference with the cookie from a
// ConferenceInviteEvent whose Kind is ConferenceAV.
func (av *ToxAV) JoinAVConference(friend uint32, cookie Cookie) (*GroupAudio, error) {
	var conference uint32
	err := av.withCore(func(e interfaces.AVEngine) error {
		n, ok := e.JoinAVGroupchat(friend, cookie, av.tox.bridge)
		if !ok {
			return ErrGroupAudio
		}
		conference = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &GroupAudio{av: av, conference: conference}, nil
}

// Conference returns the conference number, usable with the Tox conference
// methods.
func (g *GroupAudio) Conference() uint32 {
	return g.conference
}

// Valid reports whether the owning ToxAV is still alive.
func (g *GroupAudio) Valid() bool {
	return g.av.IsAlive()
}

// SendAudio sends interleaved PCM to the conference.
func (g *GroupAudio) SendAudio(pcm []int16, samples uint32, channels uint8, sampleRate uint32) error {
	if uint64(len(pcm)) < uint64(samples)*uint64(channels) {
		return ErrGroupAudio
	}
	return g.av.withCore(func(e interfaces.AVEngine) error {
		if !e.GroupSendAudio(g.conference, pcm, samples, channels, sampleRate) {
			return ErrGroupAudio
		}
		return nil
	})
}
