package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/employee"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (employee.EmployeeCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisEmployeeCache(client, ttl), mr
}

func TestRedisEmployeeCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t, time.Minute)

	_, ok := c.Get(ctx, "alcina@ajusteponto.local")
	assert.False(t, ok)

	uid := "1001"
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c.Set(ctx, "alcina@ajusteponto.local", []employee.Employee{
		{ID: "e1", Name: "Maria Silva", UserID: &uid, ManagerName: "Alcina", ManagerEmail: "alcina@ajusteponto.local", CreatedAt: created},
	})

	got, ok := c.Get(ctx, "alcina@ajusteponto.local")
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "Maria Silva", got[0].Name)
	require.NotNil(t, got[0].UserID)
	assert.Equal(t, "1001", *got[0].UserID)
	assert.True(t, created.Equal(got[0].CreatedAt))

	_, ok = c.Get(ctx, "other@ajusteponto.local")
	assert.False(t, ok)
}

func TestRedisEmployeeCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t, time.Minute)

	c.Set(ctx, "a@x.local", []employee.Employee{{ID: "e1", Name: "Ana"}})
	c.Invalidate(ctx, "a@x.local")

	_, ok := c.Get(ctx, "a@x.local")
	assert.False(t, ok)
}

func TestRedisEmployeeCache_Expires(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t, time.Minute)

	c.Set(ctx, "a@x.local", []employee.Employee{{ID: "e1", Name: "Ana"}})
	mr.FastForward(2 * time.Minute)

	_, ok := c.Get(ctx, "a@x.local")
	assert.False(t, ok)
}

func TestRedisEmployeeCache_Disabled(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t, 0)

	c.Set(ctx, "a@x.local", []employee.Employee{{ID: "e1"}})
	_, ok := c.Get(ctx, "a@x.local")
	assert.False(t, ok)
}
