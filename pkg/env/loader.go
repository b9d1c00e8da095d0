// Package env loads runtime settings from the process environment
// and optional .env files.
package env

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// ReportPortVar names the variable holding the report server port.
const ReportPortVar = "REPORT_PORT"

// Loader defines the interface for environment variable lookup.
type Loader interface {
	// Load reads environment variables from a .env file.
	Load(path string) error
	// Get retrieves an environment variable value.
	Get(key string) string
	// GetRequired retrieves a required environment variable or returns error.
	GetRequired(key string) (string, error)
	// GetWithDefault retrieves an environment variable with a default fallback.
	GetWithDefault(key, defaultValue string) string
	// GetInt parses an integer variable. ok is false when unset.
	GetInt(key string) (value int, ok bool, err error)
}

// DefaultLoader implements Loader with .env file support. Process
// environment values take precedence over file values.
type DefaultLoader struct {
	mu     sync.RWMutex
	vars   map[string]string
	lookup func(string) (string, bool)
}

// NewLoader creates a loader backed by os.LookupEnv.
func NewLoader() *DefaultLoader {
	return NewLoaderWithLookup(os.LookupEnv)
}

// NewLoaderWithLookup creates a loader that consults lookup
// instead of the process environment.
func NewLoaderWithLookup(lookup func(string) (string, bool)) *DefaultLoader {
	return &DefaultLoader{
		vars:   make(map[string]string),
		lookup: lookup,
	}
}

func (l *DefaultLoader) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open env file %s: %w", path, err)
	}
	defer file.Close()

	l.mu.Lock()
	defer l.mu.Unlock()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		l.vars[strings.TrimSpace(key)] = value
	}
	return scanner.Err()
}

func (l *DefaultLoader) Get(key string) string {
	if l.lookup != nil {
		if v, ok := l.lookup(key); ok && v != "" {
			return v
		}
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.vars[key]
}

func (l *DefaultLoader) GetRequired(key string) (string, error) {
	v := l.Get(key)
	if v == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return v, nil
}

func (l *DefaultLoader) GetWithDefault(key, defaultValue string) string {
	if v := l.Get(key); v != "" {
		return v
	}
	return defaultValue
}

func (l *DefaultLoader) GetInt(key string) (int, bool, error) {
	v := l.Get(key)
	if v == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, true, fmt.Errorf("environment variable %s: %w", key, err)
	}
	return n, true, nil
}
