package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env       string `envconfig:"APP_ENV" default:"development"`
	Port      int    `envconfig:"APP_PORT" default:"8080"`
	Mongo     MongoConfig
	Redis     RedisConfig
	Limiter   RateLimiterConfig
	CORS      CORSConfig
	JWT       JWTConfig
	Gemini    GeminiConfig
	Interview InterviewConfig
}

// MongoDB configuration
type MongoConfig struct {
	URI            string        `envconfig:"MONGO_URI" required:"true"`
	Database       string        `envconfig:"MONGO_DB" default:"aivisionhire"`
	ConnectTimeout time.Duration `envconfig:"MONGO_CONNECT_TIMEOUT" default:"10s"`
}

// Redis configuration (rate limiter backend)
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// rate limiting configuration
type RateLimiterConfig struct {
	Enabled  bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Requests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"30"`
	Window   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigin string `envconfig:"CORS_TRUSTED_ORIGIN" default:"http://localhost:5173"`
}

// JWT configuration. Tokens are issued by the auth service; this service only
// verifies them.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

// Gemini AI configuration
type GeminiConfig struct {
	APIKey        string        `envconfig:"GEMINI_API_KEY" required:"true"`
	PrimaryModel  string        `envconfig:"GEMINI_PRIMARY_MODEL" default:"gemini-2.5-flash"`
	FallbackModel string        `envconfig:"GEMINI_FALLBACK_MODEL" default:"gemini-2.0-flash"`
	Timeout       time.Duration `envconfig:"GEMINI_TIMEOUT" default:"60s"`
	MaxAttempts   int           `envconfig:"GEMINI_MAX_ATTEMPTS" default:"3"`
	RetryDelay    time.Duration `envconfig:"GEMINI_RETRY_DELAY" default:"2s"`
}

// Interview time budgets in seconds, keyed by difficulty
type InterviewConfig struct {
	QuestionCount int `envconfig:"INTERVIEW_QUESTION_COUNT" default:"5"`
	JuniorSeconds int `envconfig:"INTERVIEW_JUNIOR_SECONDS" default:"1200"`
	MidSeconds    int `envconfig:"INTERVIEW_MID_SECONDS" default:"1800"`
	SeniorSeconds int `envconfig:"INTERVIEW_SENIOR_SECONDS" default:"2400"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if c.Gemini.MaxAttempts < 1 {
		return fmt.Errorf("GEMINI_MAX_ATTEMPTS must be at least 1")
	}
	if c.Interview.QuestionCount < 1 {
		return fmt.Errorf("INTERVIEW_QUESTION_COUNT must be at least 1")
	}
	for name, secs := range map[string]int{
		"INTERVIEW_JUNIOR_SECONDS": c.Interview.JuniorSeconds,
		"INTERVIEW_MID_SECONDS":    c.Interview.MidSeconds,
		"INTERVIEW_SENIOR_SECONDS": c.Interview.SeniorSeconds,
	} {
		if secs < 60 {
			return fmt.Errorf("%s must be at least 60", name)
		}
	}
	if c.Limiter.Enabled {
		if c.Limiter.Requests < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
		}
		if c.Limiter.Window < time.Second {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s")
		}
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
