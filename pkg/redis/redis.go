package redis

import (
	"sync"

	goredis "github.com/redis/go-redis/v9"

	"github.com/tsel-ticketmaster/tm-catalog/config"
)

var (
	client *goredis.Client
	once   sync.Once
)

// GetClient returns the shared Redis client.
func GetClient() *goredis.Client {
	once.Do(func() {
		c := config.Get()

		client = goredis.NewClient(&goredis.Options{
			Addr:     c.Redis.Address,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
		})
	})

	return client
}
