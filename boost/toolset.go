package boost

import (
	"errors"
	"strings"

	"github.com/ccbuild/ccbuild/internal/pathsearch"
)

// customVersion tags our toolset declarations so they never collide with
// whatever toolsets Boost.Build detects on its own.
const customVersion = "custom"

// Option is a single feature of a user-config.jam `using` directive,
// e.g. {"cxxflags", "-Wno-parentheses"}.
type Option struct {
	Name  string
	Value string
}

// B2Toolset is a custom toolset declaration for a generated user-config.jam.
type B2Toolset struct {
	Compiler string // toolset family: gcc, clang
	Version  string
	Path     string // compiler executable, resolved for this OS
	Options  []Option
}

// NewB2Toolset resolves the compiler executable and builds the declaration.
func NewB2Toolset(compiler, path string, options []Option) (*B2Toolset, error) {
	if compiler == "" {
		return nil, errors.New("compiler type is required (like gcc, clang, etc.)")
	}
	if path != "" {
		resolved, err := pathsearch.FullExeName(path)
		if err != nil {
			return nil, err
		}
		path = resolved
	}
	return &B2Toolset{
		Compiler: compiler,
		Version:  customVersion,
		Path:     path,
		Options:  options,
	}, nil
}

// Name returns the qualified toolset name, e.g. "gcc-custom".
func (t *B2Toolset) Name() string {
	if t.Version == "" {
		return t.Compiler
	}
	return t.Compiler + "-" + t.Version
}

// B2Arg returns the toolset= argument selecting this toolset.
func (t *B2Toolset) B2Arg() string {
	return "toolset=" + t.Name()
}

// Using formats the user-config.jam `using` directive declaring the toolset.
func (t *B2Toolset) Using() string {
	var b strings.Builder
	b.WriteString("using " + t.Compiler + " : ")
	if t.Version != "" {
		b.WriteString(t.Version + " ")
	}
	b.WriteString(": ")
	if t.Path != "" {
		b.WriteString(t.Path + " ")
	}
	b.WriteString(":")
	for _, opt := range t.Options {
		b.WriteString("\n    <" + opt.Name + ">" + opt.Value)
	}
	b.WriteString("\n;\n")
	return b.String()
}
