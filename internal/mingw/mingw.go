// Package mingw names the tools of a MinGW-w64 cross toolchain for a given
// target platform. The names are logical; PATH resolution is left to the
// caller, since b2 and CMake want different spellings.
package mingw

import "github.com/ccbuild/ccbuild/target"

// Paths names the tools of a MinGW-w64 toolchain targeting one platform.
type Paths struct {
	prefix string
}

// New returns the tool names for the given target platform.
func New(platform target.Platform) Paths {
	prefix := "x86_64-w64-mingw32"
	if platform == target.X86 {
		prefix = "i686-w64-mingw32"
	}
	return Paths{prefix: prefix}
}

func (p Paths) tool(name string) string { return p.prefix + "-" + name }

// GCC returns the C compiler name.
func (p Paths) GCC() string { return p.tool("gcc") }

// GXX returns the C++ compiler name.
func (p Paths) GXX() string { return p.tool("g++") }

// AR returns the archiver name.
func (p Paths) AR() string { return p.tool("ar") }

// Ranlib returns the archive indexer name.
func (p Paths) Ranlib() string { return p.tool("ranlib") }

// Windres returns the resource compiler name.
func (p Paths) Windres() string { return p.tool("windres") }
