package boot

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env    string `env:"ENV,default=dev"`
	Server struct {
		Port        string `env:"PORT,default=8080"`
		MetricsPort string `env:"METRICS_PORT,default=8081"`
		Origins     string `env:"ALLOWED_ORIGINS,default=*"`
	}
	Database struct {
		Path string `env:"DATABASE_PATH,default=tandem.db"`
	}
	Session struct {
		// SigningKey is a base64-encoded JWK document holding the ES256
		// private key. Use cmd/keygen to mint one.
		SigningKey string        `env:"SESSION_SIGNING_KEY,required"`
		TTL        time.Duration `env:"SESSION_TTL,default=168h"`
	}
	Stream struct {
		APIKey    string        `env:"STREAM_API_KEY,required"`
		APISecret string        `env:"STREAM_API_SECRET,required"`
		Timeout   time.Duration `env:"STREAM_TIMEOUT,default=10s"`
		TokenTTL  time.Duration `env:"STREAM_TOKEN_TTL,default=24h"`
	}
}

// Load reads configuration from the environment. Required values missing
// here abort startup before anything is served.
func Load() (*Config, error) {
	config := &Config{}
	if err := envconfig.Process(context.Background(), config); err != nil {
		return nil, fmt.Errorf("parsing env vars: %w", err)
	}
	return config, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "prod"
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "dev"
}
