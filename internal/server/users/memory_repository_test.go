package users

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/dashauth/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	u, err := r.Create(ctx, &User{Name: "A", Email: " A@X.com "})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "a@x.com", u.Email)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := r.GetUserByEmail(ctx, "a@x.COM")
	require.NoError(t, err)
	assert.Equal(t, u, got)

	got, err = r.GetUserByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	// returned copies do not alias storage
	got.Name = "changed"
	again, _ := r.GetUserByID(ctx, 1)
	assert.Equal(t, "A", again.Name)
}

func TestMemoryRepository_Errors(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	_, err := r.Create(ctx, &User{Email: "a@x.com"})
	require.NoError(t, err)

	_, err = r.Create(ctx, &User{Email: "A@x.com"})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = r.GetUserByEmail(ctx, "b@x.com")
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = r.GetUserByID(ctx, 7)
	require.ErrorIs(t, err, common.ErrorNotFound)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = r.GetUserByEmail(cancelled, "a@x.com")
	require.ErrorIs(t, err, context.Canceled)
}

func TestMemoryRepository_ConcurrentCreateAssignsUniqueIDs(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make(chan int64, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, err := r.Create(ctx, &User{Email: string(rune('a'+i)) + "@x.com"})
			if err == nil {
				ids <- u.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.Len(t, seen, 20)
}
