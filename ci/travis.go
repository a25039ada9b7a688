package ci

import (
	"fmt"
	"path/filepath"

	"github.com/ccbuild/ccbuild/boost"
	"github.com/ccbuild/ccbuild/target"
)

// travis reads the Travis CI environment. Boost goes to $HOME/boost; the
// version and the target platform/configuration come from matrix variables.
type travis struct{}

func (travis) Name() string { return "Travis" }

func (travis) BuildDir() (string, error) {
	return requireEnv("HOME")
}

func (t travis) BoostDir() (string, error) {
	buildDir, err := t.BuildDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(buildDir, "boost"), nil
}

func (travis) SourceDir() (string, error) {
	return requireEnv("TRAVIS_BUILD_DIR")
}

func (t travis) CMakeDir() (string, error) {
	buildDir, err := t.BuildDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(buildDir, "build"), nil
}

func (t travis) InstallDir() (string, error) {
	buildDir, err := t.BuildDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(buildDir, "install"), nil
}

func (travis) Platform() (target.Platform, error) {
	// Matrix variables are conventionally lowercase on Travis.
	value, err := anyEnv("platform", "PLATFORM")
	if err != nil {
		return 0, err
	}
	platform, err := target.ParsePlatform(value)
	if err != nil {
		return 0, fmt.Errorf("unsupported Travis platform: %w", err)
	}
	return platform, nil
}

func (travis) Configuration() (target.Configuration, error) {
	value, err := anyEnv("configuration", "CONFIGURATION")
	if err != nil {
		return 0, err
	}
	configuration, err := target.ParseConfiguration(value)
	if err != nil {
		return 0, fmt.Errorf("unsupported Travis configuration: %w", err)
	}
	return configuration, nil
}

func (travis) BoostVersion() (boost.Version, error) {
	value, err := anyEnv("travis_boost_version", "TRAVIS_BOOST_VERSION")
	if err != nil {
		return boost.Version{}, err
	}
	return boost.ParseVersion(value)
}

func (travis) CMakeArgs() ([]string, error) { return nil, nil }
