package redis

import (
	goredis "github.com/redis/go-redis/v9"
)

// NewClient builds a lazily connecting client; connectivity problems
// surface on first use, not at startup.
func NewClient(addr, password string, db int) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
