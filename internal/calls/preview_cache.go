package calls

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const previewTTL = 24 * time.Hour

// PreviewCache caches synthesized voice preview audio in Redis. A nil
// cache is valid and caches nothing.
type PreviewCache struct {
	rdb *redis.Client
}

// NewPreviewCache connects a preview cache, or returns nil when no Redis
// address is configured.
func NewPreviewCache(addr, password string) *PreviewCache {
	if addr == "" {
		return nil
	}
	return &PreviewCache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func previewKey(voiceID string) string {
	return "voice_preview:" + voiceID
}

// Get returns cached preview audio for the voice, if present.
func (c *PreviewCache) Get(ctx context.Context, voiceID string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	audio, err := c.rdb.Get(ctx, previewKey(voiceID)).Bytes()
	if err != nil {
		return nil, false
	}
	return audio, true
}

// Set stores preview audio for the voice. Failures are silent; the cache
// is an optimization, not a dependency.
func (c *PreviewCache) Set(ctx context.Context, voiceID string, audio []byte) {
	if c == nil {
		return
	}
	c.rdb.Set(ctx, previewKey(voiceID), audio, previewTTL)
}

// Close releases the Redis connection.
func (c *PreviewCache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
