package redis_client

import (
	"stateful-stream/pkg/env_config"

	"github.com/go-redis/redis/v9"
)

func GetRedisClients() []*redis.Client {
	addrArr := env_config.GetRedisAddr()
	rdbArr := make([]*redis.Client, len(addrArr))
	for i := 0; i < len(addrArr); i++ {
		rdbArr[i] = redis.NewClient(&redis.Options{
			Addr:     addrArr[i],
			Password: "", // no password set
			DB:       0,  // use default DB
		})
	}
	return rdbArr
}
