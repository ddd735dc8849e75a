package email

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeduper(t *testing.T, ttl time.Duration) (Deduper, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisDeduper(client, ttl), mr
}

func TestSeen_FirstDeliveryWins(t *testing.T) {
	d, _ := newTestDeduper(t, time.Hour)

	seen, _, err := d.Seen(context.Background(), "msg-1@provider")
	require.NoError(t, err)
	assert.False(t, seen)

	seen, _, err = d.Seen(context.Background(), "msg-1@provider")
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestSeen_ReplayReportsRecordedReferral(t *testing.T) {
	d, _ := newTestDeduper(t, time.Hour)

	_, _, err := d.Seen(context.Background(), "msg-1@provider")
	require.NoError(t, err)
	require.NoError(t, d.Record(context.Background(), "msg-1@provider", "ref-123"))

	seen, referralID, err := d.Seen(context.Background(), "msg-1@provider")
	require.NoError(t, err)
	assert.True(t, seen)
	assert.Equal(t, "ref-123", referralID)
}

func TestSeen_DistinctMessagesIndependent(t *testing.T) {
	d, _ := newTestDeduper(t, time.Hour)

	seen, _, err := d.Seen(context.Background(), "msg-1@provider")
	require.NoError(t, err)
	assert.False(t, seen)

	seen, _, err = d.Seen(context.Background(), "msg-2@provider")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestSeen_ExpiresAfterTTL(t *testing.T) {
	d, mr := newTestDeduper(t, time.Minute)

	_, _, err := d.Seen(context.Background(), "msg-1@provider")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	seen, _, err := d.Seen(context.Background(), "msg-1@provider")
	require.NoError(t, err)
	assert.False(t, seen)
}
