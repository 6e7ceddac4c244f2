package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dshills/easylog/internal/config/loader"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "EASYLOG_"

// DefaultFileNames are the config files searched for when no path is given.
var DefaultFileNames = []string{".easylog.toml", ".easylog.yaml", ".easylog.yml"}

// Config holds merged settings.
type Config struct {
	mu   sync.RWMutex
	data map[string]any

	// source is the config file that was loaded, if any.
	source string

	// configErrors stores errors encountered during section access.
	configErrors map[string]error
}

// Options control Load.
type Options struct {
	// Path is an explicit config file. A missing explicit file is an error.
	Path string

	// SearchDirs are searched for DefaultFileNames when Path is empty.
	SearchDirs []string

	// Environ replaces os.Environ for the environment layer.
	Environ []string

	// SkipEnv disables the environment layer.
	SkipEnv bool

	// FS replaces the OS file system.
	FS loader.FileSystem
}

// Default returns a Config holding only the built-in defaults.
func Default() *Config {
	return &Config{data: defaults()}
}

func defaults() map[string]any {
	langs := make(map[string]any, len(defaultLanguages))
	for ext, id := range defaultLanguages {
		langs[ext] = id
	}
	return map[string]any{
		"logging": map[string]any{
			"level": "info",
		},
		"notify": map[string]any{
			"color": "auto",
		},
		"languages": langs,
		"plugins": map[string]any{
			"scripts":          []any{},
			"instructionLimit": int64(DefaultInstructionLimit),
		},
	}
}

// Load builds a Config from defaults, the config file and the environment.
func Load(opts Options) (*Config, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = loader.DefaultFS()
	}

	cfg := Default()

	path, err := findConfigFile(fsys, opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		l, err := loader.ForPath(fsys, path)
		if err != nil {
			return nil, err
		}
		data, err := l.Load()
		if err != nil {
			return nil, err
		}
		cfg.merge(data)
		cfg.source = path
	}

	if !opts.SkipEnv {
		environ := opts.Environ
		if environ == nil {
			environ = os.Environ()
		}
		data, err := loader.NewEnvLoaderFrom(EnvPrefix, environ).Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		cfg.merge(data)
	}

	return cfg, nil
}

func findConfigFile(fsys loader.FileSystem, opts Options) (string, error) {
	if opts.Path != "" {
		if _, err := fsys.Stat(opts.Path); err != nil {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, opts.Path)
		}
		return opts.Path, nil
	}
	for _, dir := range opts.SearchDirs {
		for _, name := range DefaultFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := fsys.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
	}
	return "", nil
}

func (c *Config) merge(data map[string]any) {
	if data == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = loader.DeepMerge(c.data, data)
}

// Source returns the path of the loaded config file, or "".
func (c *Config) Source() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.source
}

// Get returns the raw value at path.
func (c *Config) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return loader.GetByPath(c.data, path)
}

// Set overrides the value at path. Used for the command line layer.
func (c *Config) Set(path string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	loader.SetByPath(c.data, path, value)
}

// GetString returns the string at path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &SettingError{Path: path, Value: v, Err: ErrTypeMismatch}
	}
	return s, nil
}

// GetInt returns the integer at path.
func (c *Config) GetInt(path string) (int64, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		if n == float64(int64(n)) {
			return int64(n), nil
		}
	}
	return 0, &SettingError{Path: path, Value: v, Err: ErrTypeMismatch}
}

// GetStringSlice returns the string list at path. A single string is
// treated as a one-element list.
func (c *Config) GetStringSlice(path string) ([]string, error) {
	v, ok := c.Get(path)
	if !ok {
		return nil, ErrSettingNotFound
	}
	switch list := v.(type) {
	case string:
		if list == "" {
			return nil, nil
		}
		return []string{list}, nil
	case []string:
		return append([]string(nil), list...), nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, &SettingError{Path: path, Value: v, Err: ErrTypeMismatch}
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, &SettingError{Path: path, Value: v, Err: ErrTypeMismatch}
}

// GetStringMap returns the string-valued map at path.
func (c *Config) GetStringMap(path string) (map[string]string, error) {
	v, ok := c.Get(path)
	if !ok {
		return nil, ErrSettingNotFound
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &SettingError{Path: path, Value: v, Err: ErrTypeMismatch}
	}
	out := make(map[string]string, len(m))
	for k, item := range m {
		s, ok := item.(string)
		if !ok {
			return nil, &SettingError{Path: path + "." + k, Value: item, Err: ErrTypeMismatch}
		}
		out[k] = s
	}
	return out, nil
}

// Validate checks every known setting and returns the first problem found.
func (c *Config) Validate() error {
	_ = c.Logging()
	_ = c.Notify()
	_ = c.Plugins()
	_ = c.Languages()

	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.configErrors) == 0 {
		return nil
	}
	paths := make([]string, 0, len(c.configErrors))
	for p := range c.configErrors {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return c.configErrors[paths[0]]
}

// recordConfigError stores the first error seen for path.
func (c *Config) recordConfigError(path string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.configErrors == nil {
		c.configErrors = make(map[string]error)
	}
	if _, exists := c.configErrors[path]; !exists {
		c.configErrors[path] = err
	}
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return true
		}
	}
	return false
}
