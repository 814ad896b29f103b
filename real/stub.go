//go:build !libtoxcore

package real

import (
	"github.com/opd-ai/toxbind/interfaces"
	"github.com/sirupsen/logrus"
)

// Available reports whether libtoxcore is compiled in.
const Available = false

// NewEngine always fails with interfaces.NewBackendUnavailable. Build with
// -tags libtoxcore to link the native library.
func NewEngine(opts *interfaces.EngineOptions) (interfaces.Engine, uint32) {
	logrus.WithFields(logrus.Fields{
		"function": "NewEngine",
	}).Warn("libtoxcore backend not compiled in, build with -tags libtoxcore")
	return nil, interfaces.NewBackendUnavailable
}
