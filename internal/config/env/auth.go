package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type authEnv struct {
	Issuer        string        `env:"AUTH_ISSUER,required"`
	IDTokenSecret string        `env:"AUTH_ID_TOKEN_SECRET,required"`
	SessionSecret string        `env:"AUTH_SESSION_SECRET,required"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"120h"`
	SecureCookie  bool          `env:"SESSION_SECURE_COOKIE" envDefault:"true"`
}

type auth struct {
	raw authEnv
}

func NewAuthConfig() (*auth, error) {
	var raw authEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &auth{raw: raw}, nil
}

func (cfg *auth) Issuer() string            { return cfg.raw.Issuer }
func (cfg *auth) IDTokenSecret() []byte     { return []byte(cfg.raw.IDTokenSecret) }
func (cfg *auth) SessionSecret() []byte     { return []byte(cfg.raw.SessionSecret) }
func (cfg *auth) SessionTTL() time.Duration { return cfg.raw.SessionTTL }
func (cfg *auth) SecureCookie() bool        { return cfg.raw.SecureCookie }
