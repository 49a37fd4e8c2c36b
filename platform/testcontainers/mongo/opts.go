package mongo

type Option func(*Config)

func WithNetworkName(network string) Option {
	return func(c *Config) { c.NetworkName = network }
}

func WithContainerName(name string) Option {
	return func(c *Config) { c.ContainerName = name }
}

func WithImageName(image string) Option {
	return func(c *Config) {
		if image != "" {
			c.ImageName = image
		}
	}
}

func WithDatabase(database string) Option {
	return func(c *Config) {
		if database != "" {
			c.Database = database
		}
	}
}

func WithAuth(username, password string) Option {
	return func(c *Config) {
		if username != "" && password != "" {
			c.Username = username
			c.Password = password
		}
	}
}

func WithLogger(l Logger) Option {
	return func(c *Config) { c.Logger = l }
}
