package constants

import "time"

const (
	CacheKeyRecord = "seed:data:%s" // %s -> record id
)

const (
	CacheExpireRecord = 1 * time.Hour
)
