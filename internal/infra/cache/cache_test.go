//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"villa-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithoutAddrIsNoop(t *testing.T) {
	c := New(config.RedisConfig{TTL: time.Minute})
	require.IsType(t, Noop{}, c)

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "villas:slug:x", map[string]string{"a": "b"}, time.Minute))

	var dst map[string]string
	hit, err := c.Get(ctx, "villas:slug:x", &dst)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, dst)
	assert.NoError(t, c.DeletePrefix(ctx, "villas:"))
}

func TestNew_WithAddrIsRedis(t *testing.T) {
	c := New(config.RedisConfig{Addr: "localhost:6379"})
	rc, ok := c.(*RedisCache)
	require.True(t, ok)
	assert.NoError(t, rc.Close())
}
