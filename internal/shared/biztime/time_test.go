package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUnix(t *testing.T) {
	assert.Nil(t, FromUnix(0))

	got := FromUnix(1700000000)
	require.NotNil(t, got)
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, int64(1700000000), got.Unix())
}

func TestFixedClock(t *testing.T) {
	loc := time.FixedZone("X", 3600)
	c := FixedClock{At: time.Date(2024, 1, 2, 3, 4, 5, 0, loc)}
	assert.Equal(t, time.UTC, c.Now().Location())
	assert.Equal(t, 2, c.Now().Hour())
}

func TestSystemClockIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, SystemClock.Now().Location())
	assert.Equal(t, time.UTC, NowUTC().Location())
}
