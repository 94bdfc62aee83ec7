package redis

import "fmt"

// Key prefix for all portal data
const keyPrefix = "gameportal"

// recordKey returns the Redis key for a portal record within a namespace
func recordKey(namespace, key string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, namespace, key)
}
