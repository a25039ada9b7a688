package cmake

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/renameio"

	"github.com/ccbuild/ccbuild/internal/mingw"
	"github.com/ccbuild/ccbuild/internal/osinfo"
	"github.com/ccbuild/ccbuild/target"
)

// toolchainFileName is the generated toolchain file, written into the build
// directory so it disappears together with the build tree.
const toolchainFileName = "custom_toolchain.cmake"

// Toolchain supplies the generator- and compiler-selection arguments for a
// cmake invocation.
type Toolchain interface {
	// ConfigureArgs are passed to the configure step.
	ConfigureArgs() []string
	// BuildArgs are passed to the underlying build tool after "--".
	BuildArgs() []string
}

// DetectToolchain maps a toolset hint to the cmake strategy. platform may be
// zero, meaning "let cmake pick"; a generated toolchain file, when one is
// needed, is written into buildDir.
func DetectToolchain(hint target.ToolchainType, platform target.Platform, buildDir string) (Toolchain, error) {
	if hint == 0 || hint == target.Auto {
		if platform == 0 {
			// Nothing was pinned down, so there's nothing to emit: no -A,
			// no -m flags.
			return autoToolchain{}, nil
		}
		// A specific platform still needs explicit architecture flags,
		// which are compiler-specific.
		if osinfo.OnWindows() {
			hint = target.MSVC
		} else {
			hint = target.GCC
		}
	}
	switch hint {
	case target.MSVC:
		return msvcToolchain{platform: platform}, nil
	case target.GCC:
		return writeToolchainFile(buildDir, gccFile(platform), defaultMakefileGenerator())
	case target.MinGW:
		return writeToolchainFile(buildDir, mingwFile(platform), defaultMakefileGenerator())
	case target.Clang:
		return writeToolchainFile(buildDir, clangFile(platform), clangMakefileGenerator())
	case target.ClangCL:
		return writeToolchainFile(buildDir, clangCLFile(platform), clangMakefileGenerator())
	}
	return nil, fmt.Errorf("unrecognized toolset: %v", hint)
}

type autoToolchain struct{}

func (autoToolchain) ConfigureArgs() []string { return nil }
func (autoToolchain) BuildArgs() []string     { return nil }

type msvcToolchain struct {
	platform target.Platform
}

func (t msvcToolchain) ConfigureArgs() []string {
	if t.platform == 0 {
		return nil
	}
	// -A picks the target architecture; actual Visual Studio detection is
	// left to cmake.
	return []string{"-A", t.platform.CMakeArch()}
}

func (t msvcToolchain) BuildArgs() []string { return []string{"/m"} }

// makefileToolchain drives one of the Makefile generators with a generated
// toolchain file.
type makefileToolchain struct {
	path      string
	generator string
}

func writeToolchainFile(buildDir, contents, generator string) (*makefileToolchain, error) {
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return nil, fmt.Errorf("create build directory: %w", err)
	}
	path := filepath.Join(buildDir, toolchainFileName)
	if err := renameio.WriteFile(path, []byte(contents), 0o644); err != nil {
		return nil, fmt.Errorf("write toolchain file: %w", err)
	}
	return &makefileToolchain{path: path, generator: generator}, nil
}

func (t *makefileToolchain) ConfigureArgs() []string {
	return []string{
		"-D", "CMAKE_TOOLCHAIN_FILE=" + t.path,
		// The Visual Studio generator is the default on Windows;
		// override it.
		"-G", t.generator,
	}
}

func (t *makefileToolchain) BuildArgs() []string { return nil }

func defaultMakefileGenerator() string {
	if osinfo.OnWindows() {
		if _, err := exec.LookPath("mingw32-make"); err == nil {
			return "MinGW Makefiles"
		}
	}
	return "Unix Makefiles"
}

// clangMakefileGenerator prefers NMake on Windows: MinGW make may well be
// absent on a box that has clang installed.
func clangMakefileGenerator() string {
	if osinfo.OnWindows() {
		if _, err := exec.LookPath("nmake"); err == nil {
			return "NMake Makefiles"
		}
	}
	return defaultMakefileGenerator()
}

// platformFlags emits the -m32/-m64 compiler flags, or nothing when no
// platform was requested.
func platformFlags(platform target.Platform) string {
	if platform == 0 {
		return ""
	}
	return fmt.Sprintf(`
set(CMAKE_C_FLAGS   -m%d)
set(CMAKE_CXX_FLAGS -m%d)
`, platform.AddressModel(), platform.AddressModel())
}

func gccFile(platform target.Platform) string {
	return `
set(CMAKE_C_COMPILER   gcc)
set(CMAKE_CXX_COMPILER g++)
` + platformFlags(platform)
}

func mingwFile(platform target.Platform) string {
	// MinGW only does x86/x64 and the platform is baked into the tool
	// names, so default to x64 when unspecified.
	if platform == 0 {
		platform = target.X64
	}
	paths := mingw.New(platform)
	return fmt.Sprintf(`
set(CMAKE_C_COMPILER   %s)
set(CMAKE_CXX_COMPILER %s)
set(CMAKE_AR           %s)
set(CMAKE_RANLIB       %s)
set(CMAKE_RC_COMPILER  %s)
set(CMAKE_SYSTEM_NAME  Windows)
`, paths.GCC(), paths.GXX(), paths.AR(), paths.Ranlib(), paths.Windres())
}

func clangFile(platform target.Platform) string {
	// Old cmake couldn't drive clang.exe on Windows, only clang-cl.
	return `
if(CMAKE_VERSION VERSION_LESS "3.15" AND WIN32)
    set(CMAKE_C_COMPILER   clang-cl)
    set(CMAKE_CXX_COMPILER clang-cl)
else()
    set(CMAKE_C_COMPILER   clang)
    set(CMAKE_CXX_COMPILER clang++)
endif()
` + platformFlags(platform)
}

func clangCLFile(platform target.Platform) string {
	return `
set(CMAKE_C_COMPILER   clang-cl)
set(CMAKE_CXX_COMPILER clang-cl)
set(CMAKE_SYSTEM_NAME  Windows)
` + platformFlags(platform)
}
