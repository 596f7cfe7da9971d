package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// ErrNoDatabaseURL is returned alongside an otherwise usable Config when the
// postgres store is selected without a DATABASE_URL. Callers decide whether it
// is fatal.
var ErrNoDatabaseURL = errors.New("DATABASE_URL not set")

type Config struct {
	Env              string
	ListenAddr       string
	DatabaseURL      string
	Store            string
	DBMaxConns       int32
	DBConnectTimeout time.Duration

	LogLevel string
	LogFile  string

	Timezone string
	Location *time.Location

	SchedulerEnabled  bool
	BatchSize         int
	Concurrency       int
	PruneTechnologies bool
	JobRunRetention   int // days; 0 keeps every run

	HTTPTimeout time.Duration

	SSLLabsURL          string
	SSLLabsTimeout      time.Duration
	SSLLabsPollAttempts int
	SSLLabsPollInterval time.Duration
	SSLLabsRPS          float64

	TLSDialTimeout time.Duration

	WhoisAPIURL     string
	WhoisAPIKey     string
	WhoisAPITimeout time.Duration
	WhoisAPIRPS     float64
	WhoisCommand    string
	WhoisTimeout    time.Duration

	LookupCacheTTL time.Duration
	CORSOrigins    []string

	Schedules map[string]string
}

// Default cadence per scheduled job.
var scheduleDefaults = map[string]string{
	"domain-status": "1h",
	"ssl":           "03:00",
	"technologies":  "01:00",
	"contracts":     "00:00",
	"domain-expiry": "02:00",
}

func scheduleKey(job string) string {
	return "schedule_" + strings.ReplaceAll(job, "-", "_")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("database_url", "")
	v.SetDefault("store", StorePostgres)
	v.SetDefault("db_max_conns", 10)
	v.SetDefault("db_connect_timeout", 30*time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "console")
	v.SetDefault("timezone", "UTC")
	v.SetDefault("scheduler_enabled", true)
	v.SetDefault("batch_size", 50)
	v.SetDefault("concurrency", 4)
	v.SetDefault("prune_technologies", false)
	v.SetDefault("job_run_retention_days", 90)
	v.SetDefault("http_timeout", 10*time.Second)
	v.SetDefault("ssllabs_url", "https://api.ssllabs.com/api/v3/analyze")
	v.SetDefault("ssllabs_timeout", 15*time.Second)
	v.SetDefault("ssllabs_poll_attempts", 3)
	v.SetDefault("ssllabs_poll_interval", 5*time.Second)
	v.SetDefault("ssllabs_rps", 1.0)
	v.SetDefault("tls_dial_timeout", 30*time.Second)
	v.SetDefault("whois_api_url", "")
	v.SetDefault("whois_api_key", "")
	v.SetDefault("whois_api_timeout", 8*time.Second)
	v.SetDefault("whois_api_rps", 2.0)
	v.SetDefault("whois_command", "whois")
	v.SetDefault("whois_timeout", 20*time.Second)
	v.SetDefault("lookup_cache_ttl", 6*time.Hour)
	v.SetDefault("cors_origins", []string{})
	for job, spec := range scheduleDefaults {
		v.SetDefault(scheduleKey(job), spec)
	}
}

// Load reads defaults, then the optional file at path, then the environment
// (DATABASE_URL, LISTEN_ADDR, ...). The returned Config is usable even when
// err is ErrNoDatabaseURL.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{
		Env:                 v.GetString("env"),
		ListenAddr:          v.GetString("listen_addr"),
		DatabaseURL:         v.GetString("database_url"),
		Store:               strings.ToLower(v.GetString("store")),
		DBMaxConns:          v.GetInt32("db_max_conns"),
		DBConnectTimeout:    v.GetDuration("db_connect_timeout"),
		LogLevel:            v.GetString("log_level"),
		LogFile:             v.GetString("log_file"),
		Timezone:            v.GetString("timezone"),
		SchedulerEnabled:    v.GetBool("scheduler_enabled"),
		BatchSize:           v.GetInt("batch_size"),
		Concurrency:         v.GetInt("concurrency"),
		PruneTechnologies:   v.GetBool("prune_technologies"),
		JobRunRetention:     v.GetInt("job_run_retention_days"),
		HTTPTimeout:         v.GetDuration("http_timeout"),
		SSLLabsURL:          v.GetString("ssllabs_url"),
		SSLLabsTimeout:      v.GetDuration("ssllabs_timeout"),
		SSLLabsPollAttempts: v.GetInt("ssllabs_poll_attempts"),
		SSLLabsPollInterval: v.GetDuration("ssllabs_poll_interval"),
		SSLLabsRPS:          v.GetFloat64("ssllabs_rps"),
		TLSDialTimeout:      v.GetDuration("tls_dial_timeout"),
		WhoisAPIURL:         v.GetString("whois_api_url"),
		WhoisAPIKey:         v.GetString("whois_api_key"),
		WhoisAPITimeout:     v.GetDuration("whois_api_timeout"),
		WhoisAPIRPS:         v.GetFloat64("whois_api_rps"),
		WhoisCommand:        v.GetString("whois_command"),
		WhoisTimeout:        v.GetDuration("whois_timeout"),
		LookupCacheTTL:      v.GetDuration("lookup_cache_ttl"),
		CORSOrigins:         splitList(v.GetStringSlice("cors_origins")),
		Schedules:           make(map[string]string, len(scheduleDefaults)),
	}
	for job := range scheduleDefaults {
		cfg.Schedules[job] = v.GetString(scheduleKey(job))
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return Config{}, fmt.Errorf("timezone %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	switch cfg.Store {
	case StorePostgres, StoreMemory:
	default:
		return Config{}, fmt.Errorf("store %q: want %s or %s", cfg.Store, StorePostgres, StoreMemory)
	}
	if cfg.BatchSize < 1 {
		return Config{}, fmt.Errorf("batch_size must be positive, got %d", cfg.BatchSize)
	}
	if cfg.Store == StorePostgres && cfg.DatabaseURL == "" {
		return cfg, ErrNoDatabaseURL
	}
	return cfg, nil
}

// splitList accepts both a list and a single comma separated value, so that
// CORS_ORIGINS="https://a,https://b" works from the environment.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
