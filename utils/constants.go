// File: utils/constants.go
package utils

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// SessionEventsChannel is the Redis pub/sub channel carrying session changes.
const SessionEventsChannel = "session:events"
