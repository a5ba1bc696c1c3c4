package session

import (
	"sync"
	"testing"

	"github.com/MKhiriev/go-skladischer/models"
	"github.com/stretchr/testify/assert"
)

func TestStore_Lifecycle(t *testing.T) {
	s := NewStore()

	_, ok := s.Current()
	assert.False(t, ok)
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())

	s.Set(models.Session{Username: "alice", Token: "T1", TokenType: "bearer"})
	current, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, "alice", current.Username)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "T1", s.Token())

	s.Set(models.Session{Username: "bob", Token: "T2"})
	assert.Equal(t, "T2", s.Token())

	s.Clear()
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
}

func TestStore_EmptyTokenIsNotAuthenticated(t *testing.T) {
	s := NewStore()
	s.Set(models.Session{Username: "alice"})

	_, ok := s.Current()
	assert.True(t, ok)
	assert.False(t, s.IsAuthenticated())
}

func TestStore_CurrentReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Set(models.Session{Username: "alice", Token: "T1"})

	current, _ := s.Current()
	current.Token = "mutated"

	assert.Equal(t, "T1", s.Token())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Set(models.Session{Username: "alice", Token: "T"})
		}()
		go func() {
			defer wg.Done()
			if current, ok := s.Current(); ok {
				assert.Equal(t, "T", current.Token)
			}
		}()
	}
	wg.Wait()

	assert.True(t, s.IsAuthenticated())
}
