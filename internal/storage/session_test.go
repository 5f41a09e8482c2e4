package storage

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStorage_StoreGetDelete(t *testing.T) {
	s := NewSessionStorage[string]()

	_, ok := s.Get(1)
	assert.False(t, ok)

	s.Store(1, "first")
	s.Store(1, "second")
	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "second", got)
	assert.Equal(t, 1, s.Len())

	s.Delete(1)
	_, ok = s.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestSessionStorage_ConcurrentAccess(t *testing.T) {
	s := NewSessionStorage[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(chatID int64) {
			defer wg.Done()
			s.Store(chatID, int(chatID))
			_, _ = s.Get(chatID)
		}(int64(i))
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
