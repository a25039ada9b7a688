// Package ci adapts CI-provider environments to build-parameter requests.
// Each provider publishes its settings through environment variables; a
// missing or unrecognized value is a fatal error, reported before any
// download or build step runs.
package ci

import (
	"errors"
	"fmt"
	"os"

	"github.com/ccbuild/ccbuild/boost"
	"github.com/ccbuild/ccbuild/target"
)

// Provider exposes the directories and build settings a CI provider
// advertises. Accessors validate lazily, so a provider that can't answer a
// question only fails when that question is actually asked.
type Provider interface {
	Name() string

	BuildDir() (string, error)
	BoostDir() (string, error)
	SourceDir() (string, error)
	CMakeDir() (string, error)
	InstallDir() (string, error)

	Platform() (target.Platform, error)
	Configuration() (target.Configuration, error)
	BoostVersion() (boost.Version, error)

	// CMakeArgs are provider-specific extra cmake arguments (e.g. the
	// generator matching the worker image).
	CMakeArgs() ([]string, error)
}

// ErrNoProvider is returned by Detect when no supported CI environment is
// recognized.
var ErrNoProvider = errors.New("not running under a supported CI provider (Travis, AppVeyor)")

// Detect picks the provider whose sentinel variable is present.
func Detect() (Provider, error) {
	if _, ok := os.LookupEnv("TRAVIS"); ok {
		return travis{}, nil
	}
	if _, ok := os.LookupEnv("APPVEYOR"); ok {
		return appveyor{}, nil
	}
	return nil, ErrNoProvider
}

// requireEnv returns the value of the variable, failing loudly when it's
// absent or empty.
func requireEnv(name string) (string, error) {
	if value := os.Getenv(name); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("undefined environment variable: %s", name)
}

// anyEnv returns the first of the named variables that is set.
func anyEnv(names ...string) (string, error) {
	for _, name := range names {
		if value := os.Getenv(name); value != "" {
			return value, nil
		}
	}
	return "", fmt.Errorf("undefined environment variable: %s", names[0])
}
