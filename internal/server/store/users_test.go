package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/gqltodo/internal/common"
)

func TestUsers_Create_AssignsDistinctIDs(t *testing.T) {
	t.Parallel()

	s := NewUsers()

	u1, err := s.Create("John", "john@x.com", "pw")
	require.NoError(t, err)
	u2, err := s.Create("Jane", "jane@x.com", "pw")
	require.NoError(t, err)

	assert.NotEmpty(t, u1.ID)
	assert.NotEmpty(t, u2.ID)
	assert.NotEqual(t, u1.ID, u2.ID)
	assert.False(t, u1.CreatedAt.IsZero())
}

func TestUsers_Create_DuplicateEmail(t *testing.T) {
	t.Parallel()

	s := NewUsers()

	first, err := s.Create("John", "john@x.com", "pw")
	require.NoError(t, err)

	_, err = s.Create("Impostor", "john@x.com", "other")
	require.ErrorIs(t, err, common.ErrEmailTaken)

	// the failed signup must not have touched the store
	assert.Equal(t, 1, s.Count())
	got, ok := s.FindByEmail("john@x.com")
	require.True(t, ok)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "John", got.Name)
}

func TestUsers_FindByEmail_CaseSensitive(t *testing.T) {
	t.Parallel()

	s := NewUsers()
	_, err := s.Create("John", "john@x.com", "pw")
	require.NoError(t, err)

	_, ok := s.FindByEmail("John@x.com")
	assert.False(t, ok, "email lookup must be an exact, case-sensitive match")

	_, ok = s.FindByEmail("john@x.com")
	assert.True(t, ok)
}

func TestUsers_FindByID_Absent(t *testing.T) {
	t.Parallel()

	s := NewUsers()
	_, ok := s.FindByID("nope")
	assert.False(t, ok)
}

func TestUsers_Create_ConcurrentUniqueEmails(t *testing.T) {
	t.Parallel()

	s := NewUsers()

	const n = 50
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// all goroutines race on the same email
			_, errs[i] = s.Create("John", "john@x.com", fmt.Sprintf("pw-%d", i))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, common.ErrEmailTaken)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent signup may win")
	assert.Equal(t, 1, s.Count())
}
