package envconfig

import "github.com/caarlos0/env/v11"

type businessEnv struct {
	Phone           string   `env:"BUSINESS_PHONE,required"`
	Staff           []string `env:"BUSINESS_STAFF" envDefault:"Greg,Rodney,Dustin" envSeparator:","`
	BulkConcurrency int      `env:"BULK_CONCURRENCY" envDefault:"8"`
}

type business struct {
	raw businessEnv
}

func NewBusinessConfig() (*business, error) {
	var raw businessEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &business{raw: raw}, nil
}

func (cfg *business) Phone() string        { return cfg.raw.Phone }
func (cfg *business) Staff() []string      { return cfg.raw.Staff }
func (cfg *business) BulkConcurrency() int { return cfg.raw.BulkConcurrency }
