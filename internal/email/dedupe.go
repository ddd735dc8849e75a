// Package email turns inbound referral emails into stored referrals: dedupe
// by message id, pick the PDF attachment, convert it to text and hand the
// text to field extraction. Conversion failure is not a dead end; the
// referral is stored for manual review instead.
package email

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Deduper guards against providers redelivering the same inbound email.
type Deduper interface {
	// Seen marks the message id and reports whether it was already marked,
	// along with the referral id recorded for the first delivery (empty
	// until Record has run).
	Seen(ctx context.Context, messageID string) (seen bool, referralID string, err error)
	// Record stores the referral created for this message so replays can
	// report it.
	Record(ctx context.Context, messageID, referralID string) error
}

type redisDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDeduper(client *redis.Client, ttl time.Duration) Deduper {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &redisDeduper{client: client, ttl: ttl}
}

func dedupeKey(messageID string) string {
	return "fostermatch:email:" + messageID
}

// Seen is a single SETNX: the first caller wins, every redelivery within the
// TTL is reported as seen.
func (d *redisDeduper) Seen(ctx context.Context, messageID string) (bool, string, error) {
	key := dedupeKey(messageID)
	set, err := d.client.SetNX(ctx, key, "", d.ttl).Result()
	if err != nil {
		return false, "", fmt.Errorf("dedupe check: %w", err)
	}
	if set {
		return false, "", nil
	}
	referralID, err := d.client.Get(ctx, key).Result()
	if err != nil && err != redis.Nil {
		return true, "", fmt.Errorf("dedupe lookup: %w", err)
	}
	return true, referralID, nil
}

// Record overwrites the placeholder with the created referral id, keeping
// the original TTL.
func (d *redisDeduper) Record(ctx context.Context, messageID, referralID string) error {
	if err := d.client.Set(ctx, dedupeKey(messageID), referralID, redis.KeepTTL).Err(); err != nil {
		return fmt.Errorf("dedupe record: %w", err)
	}
	return nil
}
