package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFOOrder(t *testing.T) {
	tx, rx := New[int]()
	for i := 0; i < 100; i++ {
		require.NoError(t, tx.Send(i))
	}
	assert.Equal(t, 100, rx.Len())

	for i := 0; i < 100; i++ {
		v, ok := rx.TryRecv()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	_, ok := rx.TryRecv()
	assert.False(t, ok)
}

func TestTryRecvEmptyDoesNotBlock(t *testing.T) {
	_, rx := New[string]()
	v, ok := rx.TryRecv()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestSenderCloseDiscards(t *testing.T) {
	tx, rx := New[int]()
	_ = tx.Send(1)
	_ = tx.Send(2)

	assert.Equal(t, 2, tx.Close())
	assert.Equal(t, 0, tx.Close())
	assert.True(t, rx.Closed())

	_, ok := rx.TryRecv()
	assert.False(t, ok)
	assert.ErrorIs(t, tx.Send(3), ErrClosed)
}

func TestReceiverCloseRejectsSends(t *testing.T) {
	tx, rx := New[int]()
	rx.Close()
	assert.ErrorIs(t, tx.Send(1), ErrClosed)
}

func TestConcurrentSenders(t *testing.T) {
	tx, rx := New[int]()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				_ = tx.Send(i)
			}
		}()
	}
	wg.Wait()

	count := 0
	for {
		if _, ok := rx.TryRecv(); !ok {
			break
		}
		count++
	}
	assert.Equal(t, 8*500, count)
}
