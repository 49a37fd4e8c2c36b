package config

import "time"

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	DatabaseName() string
	PartsCollection() string
	DSN() string
	Bootstrap() bool
}

type Cache interface {
	Backend() string
	TTL() time.Duration
	Size() int
	RedisAddr() string
	RedisPassword() string
	RedisDB() int
	Prefix() string
}

type Blob interface {
	NATSURL() string
	Bucket() string
	PublicBaseURL() string
	MaxPhotoBytes() int64
}

type Auth interface {
	Issuer() string
	IDTokenSecret() []byte
	SessionSecret() []byte
	SessionTTL() time.Duration
	SecureCookie() bool
}

type Business interface {
	Phone() string
	Staff() []string
	BulkConcurrency() int
}
