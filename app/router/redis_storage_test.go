package router

import (
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gongguscout/gonggu-scout/config"
	"github.com/stretchr/testify/assert"
)

var _ fiber.Storage = (*RedisStorage)(nil)

func TestRedisStorageKeyNamespacing(t *testing.T) {
	t.Run("PrefixesEveryKey", func(t *testing.T) {
		s := NewRedisStorage(nil, "gongguscout:ratelimit:")
		assert.Equal(t, "gongguscout:ratelimit:1.2.3.4", s.key("1.2.3.4"))
	})

	t.Run("LimiterPrefixFollowsConfig", func(t *testing.T) {
		cfg := config.CacheConfig{RedisPrefix: "staging:"}
		s := NewRedisStorage(nil, cfg.RedisPrefix+"ratelimit:")
		assert.Equal(t, "staging:ratelimit:1.2.3.4", s.key("1.2.3.4"))
	})
}
