package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kings-valley/internal/room"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	_, ok := s.GetRoom("ABCD")
	assert.False(t, ok)

	now := time.Now()
	s.SaveRoom(room.NewRoom("WXYZ", now))
	s.SaveRoom(room.NewRoom("ABCD", now))

	r, ok := s.GetRoom("ABCD")
	require.True(t, ok)
	assert.Equal(t, "ABCD", r.Code)

	rooms := s.Rooms()
	require.Len(t, rooms, 2)
	assert.Equal(t, "ABCD", rooms[0].Code)
	assert.Equal(t, "WXYZ", rooms[1].Code)

	s.DeleteRoom("ABCD")
	s.DeleteRoom("ABCD")
	_, ok = s.GetRoom("ABCD")
	assert.False(t, ok)
	assert.Len(t, s.Rooms(), 1)
}

func TestMemoryStore_SatisfiesRoomStore(t *testing.T) {
	var _ room.Store = NewMemoryStore()
}
