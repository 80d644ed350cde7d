// Package config loads server settings from .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvHost     = "SKIFREE_HOST"
	EnvPort     = "SKIFREE_PORT"
	EnvLogFile  = "SKIFREE_LOG_FILE"
	EnvLogLevel = "SKIFREE_LOG_LEVEL"
	EnvSeed     = "SKIFREE_SEED"
)

// Defaults.
const (
	DefaultHost     = "localhost"
	DefaultPort     = 8765
	DefaultLogLevel = "debug"
)

// ErrInvalidPort is returned when the port is not a number in 1..65535.
var ErrInvalidPort = errors.New("invalid port")

// Config holds the server settings.
type Config struct {
	Host     string
	Port     int
	LogFile  string // empty disables the warning log file
	LogLevel string
	Seed     uint64 // 0 picks a random seed
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{Host: DefaultHost, Port: DefaultPort, LogLevel: DefaultLogLevel}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment, then builds a Config from it. Missing files are
// skipped; variables already set in the environment win.
func Load(paths ...string) (Config, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", p, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the environment alone.
func FromEnv() (Config, error) {
	cfg := Default()
	if v, ok := os.LookupEnv(EnvHost); ok {
		cfg.Host = v
	}
	if v, ok := os.LookupEnv(EnvPort); ok {
		port, err := ParsePort(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	return cfg, nil
}

// ParsePort parses a TCP port number.
func ParsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPort, s)
	}
	return port, nil
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
