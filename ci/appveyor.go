package ci

import (
	"fmt"

	"github.com/ccbuild/ccbuild/boost"
	"github.com/ccbuild/ccbuild/target"
)

// generatorByImage maps an AppVeyor worker image to the Visual Studio
// generator cmake must use on it. Identifiers outside this table are a
// fatal error: guessing a generator wastes a whole CI run.
var generatorByImage = map[string]string{
	"Visual Studio 2013": "Visual Studio 12 2013",
	"Visual Studio 2015": "Visual Studio 14 2015",
	"Visual Studio 2017": "Visual Studio 15 2017",
	"Visual Studio 2019": "Visual Studio 16 2019",
}

// appveyor reads the AppVeyor environment. Builds go to C:\Projects, which
// the worker images keep on the fast disk.
type appveyor struct{}

func (appveyor) Name() string { return "AppVeyor" }

func (appveyor) BuildDir() (string, error) {
	return `C:\Projects\build`, nil
}

func (appveyor) BoostDir() (string, error) {
	return `C:\Projects\boost`, nil
}

func (appveyor) SourceDir() (string, error) {
	return requireEnv("APPVEYOR_BUILD_FOLDER")
}

func (a appveyor) CMakeDir() (string, error) {
	return a.BuildDir()
}

func (appveyor) InstallDir() (string, error) {
	return `C:\Projects\install`, nil
}

func (appveyor) Platform() (target.Platform, error) {
	value, err := requireEnv("PLATFORM")
	if err != nil {
		return 0, err
	}
	platform, err := target.ParsePlatform(value)
	if err != nil {
		return 0, fmt.Errorf("unsupported AppVeyor platform: %w", err)
	}
	return platform, nil
}

func (appveyor) Configuration() (target.Configuration, error) {
	value, err := requireEnv("CONFIGURATION")
	if err != nil {
		return 0, err
	}
	configuration, err := target.ParseConfiguration(value)
	if err != nil {
		return 0, fmt.Errorf("unsupported AppVeyor configuration: %w", err)
	}
	return configuration, nil
}

func (appveyor) BoostVersion() (boost.Version, error) {
	value, err := anyEnv("appveyor_boost_version", "BOOST_VERSION")
	if err != nil {
		return boost.Version{}, err
	}
	return boost.ParseVersion(value)
}

func (appveyor) CMakeArgs() ([]string, error) {
	image, err := requireEnv("APPVEYOR_BUILD_WORKER_IMAGE")
	if err != nil {
		return nil, err
	}
	generator, ok := generatorByImage[image]
	if !ok {
		return nil, fmt.Errorf("unsupported AppVeyor image: %q", image)
	}
	return []string{"-G", generator}, nil
}
