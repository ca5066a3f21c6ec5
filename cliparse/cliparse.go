// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabasePgx      = "pgx"
)

// Defaults
const (
	DefaultPort         = 3318
	DefaultDatabaseURL  = "file:polls.db?_pragma=foreign_keys(1)&_time_format=sqlite"
	DefaultRecentWindow = 24 * time.Hour
	DefaultIndexLimit   = 5
	DefaultVoteBurst    = 5
)

type Config struct {
	Port         int           `yaml:"port"`
	DatabaseURL  string        `yaml:"database_url"`
	DatabaseType string        `yaml:"database_type"`
	AdminKey     string        `yaml:"admin_key"`
	RecentWindow time.Duration `yaml:"recent_window"`
	IndexLimit   int           `yaml:"index_limit"`

	// VoteRate limits votes per second from one client; 0 disables the limit
	VoteRate  float64 `yaml:"vote_rate"`
	VoteBurst int     `yaml:"vote_burst"`

	// GenAdminKey prints a fresh admin key and exits
	GenAdminKey bool `yaml:"-"`
}

// ParseFlags builds the configuration from CLI flags, environment variables
// (optionally seeded from a .env file) and an optional YAML file, in that order.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var configPath string

	fs := flag.NewFlagSet("polls", flag.ContinueOnError)

	fs.StringVar(&configPath, "c", "", "Path to a YAML config file")
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or pgx)")
	fs.StringVar(&cfg.AdminKey, "admin-key", "", "Admin API key (prefer env)")
	fs.DurationVar(&cfg.RecentWindow, "recent-window", 0, "How long a question counts as recently published")
	fs.IntVar(&cfg.IndexLimit, "index-limit", 0, "Number of questions listed on the index page")
	fs.Float64Var(&cfg.VoteRate, "vote-rate", 0, "Votes per second allowed from one client (0 = unlimited)")
	fs.IntVar(&cfg.VoteBurst, "vote-burst", 0, "Votes one client may cast in a burst")
	fs.BoolVar(&cfg.GenAdminKey, "gen-admin-key", false, "Print a new random admin key and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// A missing .env is fine; existing env vars are never overwritten
	_ = godotenv.Load()

	if configPath == "" {
		configPath = os.Getenv("CONFIG_FILE")
	}
	var file Config
	if configPath != "" {
		var err error
		file, err = LoadFile(configPath)
		if err != nil {
			return Config{}, err
		}
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else if file.Port != 0 {
			cfg.Port = file.Port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	cfg.DatabaseURL = firstNonEmpty(cfg.DatabaseURL, os.Getenv("DATABASE_URL"), file.DatabaseURL, DefaultDatabaseURL)

	cfg.DatabaseType = firstNonEmpty(cfg.DatabaseType, os.Getenv("DATABASE_TYPE"), file.DatabaseType, DatabaseSQLite)
	switch cfg.DatabaseType {
	case DatabaseSQLite, DatabasePostgres, DatabasePgx:
	default:
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	// Admin API stays disabled without a key
	cfg.AdminKey = firstNonEmpty(cfg.AdminKey, os.Getenv("ADMIN_KEY"), file.AdminKey)

	if cfg.RecentWindow == 0 {
		if s := os.Getenv("RECENT_WINDOW"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, fmt.Errorf("invalid RECENT_WINDOW env variable: %w", err)
			}
			cfg.RecentWindow = d
		} else if file.RecentWindow != 0 {
			cfg.RecentWindow = file.RecentWindow
		} else {
			cfg.RecentWindow = DefaultRecentWindow
		}
	}
	if cfg.RecentWindow < 0 {
		return Config{}, errors.New("recent window must not be negative")
	}

	if cfg.IndexLimit == 0 {
		if s := os.Getenv("INDEX_LIMIT"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid INDEX_LIMIT env variable")
			}
			cfg.IndexLimit = n
		} else if file.IndexLimit != 0 {
			cfg.IndexLimit = file.IndexLimit
		} else {
			cfg.IndexLimit = DefaultIndexLimit
		}
	}
	if cfg.IndexLimit < 1 {
		return Config{}, errors.New("index limit must be at least 1")
	}

	if cfg.VoteRate == 0 {
		if s := os.Getenv("VOTE_RATE"); s != "" {
			r, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return Config{}, errors.New("invalid VOTE_RATE env variable")
			}
			cfg.VoteRate = r
		} else {
			cfg.VoteRate = file.VoteRate
		}
	}
	if cfg.VoteRate < 0 {
		return Config{}, errors.New("vote rate must not be negative")
	}

	if cfg.VoteBurst == 0 {
		if s := os.Getenv("VOTE_BURST"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid VOTE_BURST env variable")
			}
			cfg.VoteBurst = n
		} else if file.VoteBurst != 0 {
			cfg.VoteBurst = file.VoteBurst
		} else {
			cfg.VoteBurst = DefaultVoteBurst
		}
	}
	if cfg.VoteBurst < 1 {
		return Config{}, errors.New("vote burst must be at least 1")
	}

	return cfg, nil
}

// LoadFile reads a YAML config file. Zero fields are left for ParseFlags to fill.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
