package boost

import (
	"fmt"
	"log"
	"os"
	"os/exec"

	"github.com/ccbuild/ccbuild/internal/mingw"
	"github.com/ccbuild/ccbuild/internal/osinfo"
	"github.com/ccbuild/ccbuild/target"
)

// BootstrapToolchain yields the extra arguments for the bootstrap.bat /
// bootstrap.sh scripts that build b2 itself.
type BootstrapToolchain interface {
	BatArgs() []string
	ShArgs() []string
}

// DetectBootstrap maps a toolset hint to the bootstrap strategy.
func DetectBootstrap(hint target.ToolchainType) (BootstrapToolchain, error) {
	switch hint {
	case 0, target.Auto, target.MSVC:
		// Let the bootstrap script pick; bootstrap.bat defaults to MSVC
		// anyway.
		return bootstrapAuto{}, nil
	case target.GCC:
		return bootstrapGCC{}, nil
	case target.MinGW:
		return bootstrapMinGW{}, nil
	case target.Clang, target.ClangCL:
		// There's no point in building b2 with clang-cl; plain clang,
		// presumably installed alongside it, does fine.
		return bootstrapClang{}, nil
	}
	return nil, fmt.Errorf("unrecognized toolset: %v", hint)
}

type bootstrapAuto struct{}

func (bootstrapAuto) BatArgs() []string { return nil }
func (bootstrapAuto) ShArgs() []string  { return nil }

type bootstrapGCC struct{}

func (bootstrapGCC) BatArgs() []string { return []string{"gcc"} }
func (bootstrapGCC) ShArgs() []string  { return []string{"--with-toolset=gcc"} }

// gccOrAuto prefers GCC on Windows when it's actually installed.
func gccOrAuto() []string {
	if _, err := exec.LookPath("gcc"); err == nil {
		return []string{"gcc"}
	}
	return nil
}

type bootstrapMinGW struct{}

func (bootstrapMinGW) BatArgs() []string { return gccOrAuto() }
func (bootstrapMinGW) ShArgs() []string  { return nil }

type bootstrapClang struct{}

// bootstrap.bat isn't aware of Clang as of 1.74.0, so try GCC, then
// auto-detect. bootstrap.sh very much is.
func (bootstrapClang) BatArgs() []string { return gccOrAuto() }
func (bootstrapClang) ShArgs() []string  { return []string{"--with-toolset=clang"} }

// Toolchain contributes the b2 arguments that select and configure a
// compiler for the library build itself.
type Toolchain interface {
	B2Args() []string
}

// DetectToolchain maps a toolset hint to the b2 strategy for one target
// platform. The returned cleanup removes any generated configuration file
// and must be called once the build is done, on every exit path.
func DetectToolchain(hint target.ToolchainType, platform target.Platform) (Toolchain, func(), error) {
	noop := func() {}
	switch hint {
	case 0, target.Auto:
		// Boost.Build does the detection: most commonly GCC on
		// Linux-likes and MSVC on Windows.
		return autoToolchain{}, noop, nil
	case target.MSVC:
		return msvcToolchain{}, noop, nil
	case target.GCC:
		toolset, err := gccToolset()
		if err != nil {
			return nil, nil, err
		}
		return newConfigFile(toolset, toolset.Using())
	case target.MinGW:
		toolset, err := mingwToolset(platform)
		if err != nil {
			return nil, nil, err
		}
		return newConfigFile(toolset, toolset.Using())
	case target.Clang:
		toolset, err := clangToolset()
		if err != nil {
			return nil, nil, err
		}
		return newConfigFile(toolset, clangRequirements+toolset.Using())
	case target.ClangCL:
		return clangCLToolchain{}, noop, nil
	}
	return nil, nil, fmt.Errorf("unrecognized toolset: %v", hint)
}

type autoToolchain struct{}

func (autoToolchain) B2Args() []string { return nil }

type msvcToolchain struct{}

func (msvcToolchain) B2Args() []string { return []string{"toolset=msvc"} }

type clangCLToolchain struct{}

func (clangCLToolchain) B2Args() []string {
	return []string{"toolset=clang-win", "define=BOOST_USE_WINDOWS_H"}
}

// configFile is a toolchain whose toolset definition and options live in a
// generated user-config.jam.
type configFile struct {
	path    string
	toolset *B2Toolset
}

func newConfigFile(toolset *B2Toolset, config string) (*configFile, func(), error) {
	log.Printf("using user config:\n%s", config)
	f, err := os.CreateTemp("", "user_config_*.jam")
	if err != nil {
		return nil, nil, fmt.Errorf("create user config: %w", err)
	}
	path := f.Name()
	cleanup := func() { os.Remove(path) }
	if _, err := f.WriteString(config); err != nil {
		f.Close()
		cleanup()
		return nil, nil, fmt.Errorf("write user config: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("write user config: %w", err)
	}
	return &configFile{path: path, toolset: toolset}, cleanup, nil
}

func (c *configFile) B2Args() []string {
	// Everything else (compiler path, options) lives in the config file.
	return []string{"--user-config=" + c.path, c.toolset.B2Arg()}
}

// gccOptions suppresses the warnings older Boost versions are known to
// trip over.
func gccOptions() []Option {
	return []Option{
		// 'template<class> class std::auto_ptr' is deprecated
		{"cxxflags", "-Wno-deprecated-declarations"},
		// unnecessary parentheses in declaration of 'assert_arg'
		{"cxxflags", "-Wno-parentheses"},
	}
}

// gccToolset forces GCC, whether a native Linux one or a MinGW-flavoured
// one on Windows.
func gccToolset() (*B2Toolset, error) {
	return NewB2Toolset("gcc", "g++", gccOptions())
}

// mingwToolset forces the cross GCC for the platform. Boost.Build is smart
// enough to derive the binutils names from the compiler prefix.
func mingwToolset(platform target.Platform) (*B2Toolset, error) {
	return NewB2Toolset("gcc", mingw.New(platform).GXX(), gccOptions())
}

func clangToolset() (*B2Toolset, error) {
	options := append([]Option{
		{"cxxflags", "-DBOOST_USE_WINDOWS_H"},
		// unused typedef 'boost_concept_check464'
		{"cxxflags", "-Wno-unused-local-typedef"},
		// constant expression evaluates to -105 which cannot be narrowed
		{"cxxflags", "-Wno-c++11-narrowing"},
	}, gccOptions()...)
	if osinfo.OnWindows() {
		// Prefer LLVM binutils when they're installed.
		if _, err := exec.LookPath("llvm-ar"); err == nil {
			options = append(options, Option{"archiver", "llvm-ar"})
		}
		if _, err := exec.LookPath("llvm-ranlib"); err == nil {
			options = append(options, Option{"ranlib", "llvm-ranlib"})
		}
	}
	return NewB2Toolset("clang", "clang++", options)
}

// clangRequirements makes clang++.exe usable on Windows. The flags mirror
// CMake's Windows-Clang.cmake: the runtime library has to be picked
// explicitly, and it differs across every debug/release x static/shared
// combination.
const clangRequirements = `project : requirements
    <target-os>windows:<define>_MT
    <target-os>windows,<variant>debug:<define>_DEBUG
    <target-os>windows,<runtime-link>static,<variant>debug:<cxxflags>"-Xclang -flto-visibility-public-std -Xclang --dependent-lib=libcmtd"
    <target-os>windows,<runtime-link>static,<variant>release:<cxxflags>"-Xclang -flto-visibility-public-std -Xclang --dependent-lib=libcmt"
    <target-os>windows,<runtime-link>shared,<variant>debug:<cxxflags>"-D_DLL -Xclang --dependent-lib=msvcrtd"
    <target-os>windows,<runtime-link>shared,<variant>release:<cxxflags>"-D_DLL -Xclang --dependent-lib=msvcrt"
;
`
