package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"echoparse-be/internal/pkg/logger"
)

const cacheKeyPrefix = "echoparse:emb:"

// CachedProvider caches query embeddings in Redis so repeated questions skip
// the embedding call. Any cache failure degrades to a direct call.
type CachedProvider struct {
	inner  EmbeddingProvider
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.ILogger
}

func NewCachedProvider(inner EmbeddingProvider, rdb *redis.Client, ttl time.Duration, log logger.ILogger) EmbeddingProvider {
	return &CachedProvider{
		inner:  inner,
		rdb:    rdb,
		ttl:    ttl,
		logger: log,
	}
}

func (c *CachedProvider) Generate(ctx context.Context, text string) ([]float32, error) {
	key := cacheKey(text)

	if raw, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var vector []float32
		if json.Unmarshal(raw, &vector) == nil && len(vector) > 0 {
			return vector, nil
		}
	}

	vector, err := c.inner.Generate(ctx, text)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(vector); err == nil {
		if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.logger.Warn("embedding.cache", "Failed to store embedding in cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return vector, nil
}

func cacheKey(text string) string {
	h := sha256.Sum256([]byte(text))
	return cacheKeyPrefix + hex.EncodeToString(h[:])
}
