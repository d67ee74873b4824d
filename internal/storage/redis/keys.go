package redis

import (
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Key prefix for all game-related data
const keyPrefix = "vocify"

// highScoreKey returns the Redis key for a named high score
func highScoreKey(name string) string {
	return fmt.Sprintf("%s:highscore:%s", keyPrefix, name)
}

// dictionaryKey returns the Redis key for the dictionary word set
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}

// wordPoolKey returns the Redis key for the JSON-encoded root word pool
func wordPoolKey() string {
	return fmt.Sprintf("%s:wordpool", keyPrefix)
}

// raiseHighScore sets KEYS[1] to ARGV[1] only when it is higher than the
// current value. High scores never expire.
var raiseHighScore = redis.NewScript(`
local cur = tonumber(redis.call("GET", KEYS[1]) or "0")
local val = tonumber(ARGV[1])
if val > cur then
	redis.call("SET", KEYS[1], ARGV[1])
	return 1
end
return 0
`)
