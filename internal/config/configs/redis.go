package configs

import "time"

// Redis configures the optional eligibility cache. Address is empty by
// default, which disables caching entirely; the serve path then queries
// PostgreSQL on every request.
type Redis struct {
	// Address is the host:port of the Redis server. Empty disables the
	// cache.
	Address string `env:"ADDRESS" envDefault:""`
	// Password authenticates against the server when set.
	Password string `env:"PASSWORD" envDefault:""`
	// DB selects the logical Redis database.
	DB int `env:"DB" envDefault:"0"`
	// TTL is how long a cached eligible set stays valid. Short on purpose:
	// the cache sheds read load, it does not own freshness.
	TTL time.Duration `env:"TTL" envDefault:"5m"`
}

// Enabled reports whether a cache address was configured.
func (c Redis) Enabled() bool {
	return c.Address != ""
}
