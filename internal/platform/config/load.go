package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "APP_"

// Option changes where Load reads from.
type Option func(*sources)

type sources struct {
	dir string
}

// WithDir reads base.yaml and the profile file from dir instead of ./configs.
func WithDir(dir string) Option {
	return func(s *sources) { s.dir = dir }
}

// Load layers the configuration, later layers winning: built-in defaults,
// base.yaml, <profile>.yaml, then APP_ environment variables. Missing files
// are skipped. Load does not validate; call Validate on the result.
func Load(profile string, opts ...Option) (*Config, error) {
	src := sources{dir: "configs"}
	for _, opt := range opts {
		opt(&src)
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	layers := []string{"base"}
	if profile != "" {
		layers = append(layers, profile)
	}

	for _, name := range layers {
		if err := src.loadYAML(k, name); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKeyMapper(k.Keys())), nil); err != nil {
		return nil, fmt.Errorf("loading %s environment: %w", envPrefix, err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return &cfg, nil
}

func (s sources) loadYAML(k *koanf.Koanf, name string) error {
	path := filepath.Join(s.dir, name+".yaml")

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	return nil
}

// envKeyMapper turns APP_RATE_LIMIT_BURST into rate_limit.burst. Underscores
// are ambiguous, so names of known keys resolve exactly and anything else
// has every underscore read as a dot.
func envKeyMapper(known []string) func(string) string {
	byName := make(map[string]string, len(known))
	for _, key := range known {
		byName[strings.ToUpper(strings.ReplaceAll(key, ".", "_"))] = key
	}

	return func(name string) string {
		name = strings.TrimPrefix(name, envPrefix)
		if key, ok := byName[name]; ok {
			return key
		}

		return strings.ReplaceAll(strings.ToLower(name), "_", ".")
	}
}

// defaults is the bottom layer. Every key the service reads appears here so
// the environment can reach it.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "recipe-service",
		"app.version":     "dev",
		"app.environment": "local",

		"server.host":             "0.0.0.0",
		"server.port":             8080,
		"server.read_timeout":     30 * time.Second,
		"server.write_timeout":    30 * time.Second,
		"server.idle_timeout":     2 * time.Minute,
		"server.shutdown_timeout": 10 * time.Second,
		"server.max_request_size": 1 << 20,
		"server.request_timeout":  30 * time.Second,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/app.log",
		"log.file.level":       "",
		"log.file.max_size":    100,
		"log.file.max_backups": 3,
		"log.file.max_age":     28,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "recipe-service",
		"telemetry.sampling_rate": 1.0,

		"client.timeout":                           30 * time.Second,
		"client.retry.max_attempts":                3,
		"client.retry.initial_interval":            100 * time.Millisecond,
		"client.retry.max_interval":                5 * time.Second,
		"client.retry.multiplier":                  2.0,
		"client.retry.jitter_factor":               0.25,
		"client.circuit_breaker.max_failures":      5,
		"client.circuit_breaker.timeout":           30 * time.Second,
		"client.circuit_breaker.half_open_limit":   3,
		"client.transport.max_idle_conns":          100,
		"client.transport.max_idle_conns_per_host": 10,
		"client.transport.idle_conn_timeout":       90 * time.Second,

		"services.recipe_feed.enabled":  false,
		"services.recipe_feed.base_url": "",
		"services.recipe_feed.name":     "recipe-feed",
		"services.recipe_feed.path":     "/recipes",
		"services.recipe_feed.api_key":  "",

		"catalog.page_size":     DefaultCatalogPageSize,
		"catalog.max_page_size": DefaultCatalogMaxPageSize,
		"catalog.seed_sample":   true,
		"catalog.seed_file":     "",
		"catalog.id_strategy":   "uuid",

		"rate_limit.enabled":             false,
		"rate_limit.requests_per_second": 20.0,
		"rate_limit.burst":               40,
	}
}
