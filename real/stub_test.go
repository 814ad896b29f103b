//go:build !libtoxcore

package real

import (
	"testing"

	"github.com/opd-ai/toxbind/interfaces"
	"github.com/stretchr/testify/assert"
)

func TestNewEngineUnavailable(t *testing.T) {
	assert.False(t, Available)

	engine, code := NewEngine(&interfaces.EngineOptions{UDPEnabled: true})
	assert.Nil(t, engine)
	assert.Equal(t, interfaces.NewBackendUnavailable, code)

	var f interfaces.EngineFunc = NewEngine
	_, code = f(nil)
	assert.Equal(t, interfaces.NewBackendUnavailable, code)
}
