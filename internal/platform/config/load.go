package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir points Load at a directory other than ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// layer is one koanf source; a nil parser means the provider yields keys
// directly.
type layer struct {
	name     string
	provider koanf.Provider
	parser   koanf.Parser
}

// Load builds the service configuration for profile. Sources are applied in
// order, each overriding the last: built-in defaults, {configDir}/base.yaml,
// {configDir}/{profile}.yaml, then APP_ environment variables.
//
// Environment variables resolve against keys the earlier sources produced,
// falling back to envTransform's board field split:
//
//	APP_SERVER_READ_TIMEOUT       -> server.read_timeout
//	APP_CLIENT_RETRY_MAX_ATTEMPTS -> client.retry.max_attempts
//	APP_BOARDS_KANBAN_PATH        -> boards.kanban.path
//	APP_BOARDS_ROADMAP_LAYOUT     -> boards.roadmap.layout
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	files := []layer{
		{name: "base config", provider: file.Provider(filepath.Join(o.configDir, "base.yaml")), parser: yaml.Parser()},
		{name: "profile config", provider: file.Provider(filepath.Join(o.configDir, profile+".yaml")), parser: yaml.Parser()},
	}
	for _, l := range files {
		if err := k.Load(l.provider, l.parser); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	// The env layer needs the file keys to resolve underscores.
	environ := layer{name: "env vars", provider: env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envTransform(k.Keys()),
	})}
	if err := k.Load(environ.provider, environ.parser); err != nil {
		return nil, fmt.Errorf("loading %s: %w", environ.name, err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// validateProfile rejects names that could escape configDir.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile %q contains a path separator", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q contains a parent reference", profile)
	}
	return nil
}

// boardFields are the leaf keys of a BoardConfig, longest first so that
// "redis_addr" wins over a shorter suffix.
var boardFields = []string{"max_workers", "redis_addr", "strategy", "backend", "layout", "seed", "path", "key"}

// envTransform maps APP_-prefixed variables onto koanf keys. Keys already
// present in the loaded config are matched exactly, so APP_SERVER_READ_TIMEOUT
// resolves to "server.read_timeout" rather than "server.read.timeout". A
// board that only exists in the environment is split on its field suffix:
// APP_BOARDS_ROADMAP_REDIS_ADDR becomes "boards.roadmap.redis_addr".
func envTransform(keys []string) func(key, value string) (string, any) {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
		if koanfKey, ok := lookup[key]; ok {
			return koanfKey, value
		}
		if koanfKey, ok := boardEnvKey(key); ok {
			return koanfKey, value
		}
		return strings.ReplaceAll(key, "_", "."), value
	}
}

func boardEnvKey(key string) (string, bool) {
	rest, ok := strings.CutPrefix(key, "boards_")
	if !ok {
		return "", false
	}
	for _, field := range boardFields {
		name, ok := strings.CutSuffix(rest, "_"+field)
		if ok && name != "" {
			return "boards." + name + "." + field, true
		}
	}
	return "", false
}
