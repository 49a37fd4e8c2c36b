package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type cacheEnv struct {
	Backend string        `env:"CACHE_BACKEND" envDefault:"memory"`
	TTL     time.Duration `env:"CACHE_TTL" envDefault:"60s"`
	Size    int           `env:"CACHE_SIZE" envDefault:"1024"`
	Prefix  string        `env:"CACHE_PREFIX" envDefault:"partsyard:"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

type cache struct {
	raw cacheEnv
}

func NewCacheConfig() (*cache, error) {
	var raw cacheEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &cache{raw: raw}, nil
}

func (cfg *cache) Backend() string       { return cfg.raw.Backend }
func (cfg *cache) TTL() time.Duration    { return cfg.raw.TTL }
func (cfg *cache) Size() int             { return cfg.raw.Size }
func (cfg *cache) Prefix() string        { return cfg.raw.Prefix }
func (cfg *cache) RedisAddr() string     { return cfg.raw.RedisAddr }
func (cfg *cache) RedisPassword() string { return cfg.raw.RedisPassword }
func (cfg *cache) RedisDB() int          { return cfg.raw.RedisDB }
