package cache

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandvault/brandvault/internal/shared/config"
)

func TestNewRedisClient_Disabled(t *testing.T) {
	client, err := NewRedisClient(t.Context(), config.RedisConfig{Enabled: false})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedisClient_Connects(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(t.Context(), config.RedisConfig{
		Enabled: true,
		Host:    mr.Host(),
		Port:    mustPort(t, mr.Port()),
	})
	require.NoError(t, err)
	require.NotNil(t, client)
	defer client.Close()

	require.NoError(t, client.Set(t.Context(), "k", "v", 0).Err())
	assert.Equal(t, "v", client.Get(t.Context(), "k").Val())
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	port := mustPort(t, mr.Port())
	mr.Close()

	_, err := NewRedisClient(t.Context(), config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: port})
	assert.Error(t, err)
}
