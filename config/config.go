// Package config loads service configuration with Viper: defaults first,
// then an optional YAML file, then LOAN_AUDITOR_-prefixed environment
// variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Server struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type Redis struct {
	Enabled bool
	Addr    string
}

type RateLimit struct {
	Requests int
	Window   time.Duration
}

type Audit struct {
	// ReportSchedule is a cron expression (with seconds) for logging the
	// audit report periodically. Empty disables the job.
	ReportSchedule string
}

// ThresholdOverrides optionally replaces the engine's default cutoffs.
// Zero values mean "keep the default".
type ThresholdOverrides struct {
	DTIApprovalMax    float64
	DTIConditionalMax float64
	MinCreditScore    int
	ConditionalScore  int
	ExtremeDTI        float64
}

type Config struct {
	Server     Server
	Redis      Redis
	RateLimit  RateLimit
	Audit      Audit
	Thresholds ThresholdOverrides
}

// Load reads configuration from the given file path (optional) and the
// environment. Priority: environment variables > config file > defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("LOAN_AUDITOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	cfg := &Config{
		Server: Server{
			Addr:         v.GetString("server.addr"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			IdleTimeout:  v.GetDuration("server.idle_timeout"),
		},
		Redis: Redis{
			Enabled: v.GetBool("redis.enabled"),
			Addr:    v.GetString("redis.addr"),
		},
		RateLimit: RateLimit{
			Requests: v.GetInt("rate_limit.requests"),
			Window:   v.GetDuration("rate_limit.window"),
		},
		Audit: Audit{
			ReportSchedule: v.GetString("audit.report_schedule"),
		},
		Thresholds: ThresholdOverrides{
			DTIApprovalMax:    v.GetFloat64("thresholds.dti_approval_max"),
			DTIConditionalMax: v.GetFloat64("thresholds.dti_conditional_max"),
			MinCreditScore:    v.GetInt("thresholds.min_credit_score"),
			ConditionalScore:  v.GetInt("thresholds.conditional_score"),
			ExtremeDTI:        v.GetFloat64("thresholds.extreme_dti"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")

	v.SetDefault("rate_limit.requests", 5)
	v.SetDefault("rate_limit.window", time.Minute)

	// Cada hora, en punto
	v.SetDefault("audit.report_schedule", "0 0 * * * *")
}

func validate(cfg *Config) error {
	if cfg.Server.Addr == "" {
		return fmt.Errorf("server.addr cannot be empty")
	}
	if cfg.RateLimit.Requests <= 0 {
		return fmt.Errorf("rate_limit.requests must be positive, got %d", cfg.RateLimit.Requests)
	}
	if cfg.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be positive, got %s", cfg.RateLimit.Window)
	}
	if cfg.Redis.Enabled && cfg.Redis.Addr == "" {
		return fmt.Errorf("redis.addr cannot be empty when redis is enabled")
	}
	return nil
}
