// Package policy holds the linkage-legality policy: which operating systems
// are assumed to ship a C runtime that cannot be linked statically. glibc is
// the canonical example, so "linux" is in the default set, but the set is
// data rather than code — musl-based systems can override it from a file.
package policy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Linkage is the linkage-legality policy.
type Linkage struct {
	// StaticRuntimeForbidden lists GOOS names whose C runtime must not be
	// linked statically.
	StaticRuntimeForbidden []string `yaml:"static-runtime-forbidden"`
}

// Default returns the policy used when no file is given: assume glibc on
// Linux, everything else permits a static runtime.
func Default() *Linkage {
	return &Linkage{StaticRuntimeForbidden: []string{"linux"}}
}

// Load reads a policy file.
func Load(path string) (*Linkage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy: %w", err)
	}
	var p Linkage
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse policy %s: %w", path, err)
	}
	return &p, nil
}

// StaticRuntimeAllowed reports whether the given OS permits linking the C
// runtime statically.
func (p *Linkage) StaticRuntimeAllowed(goos string) bool {
	for _, name := range p.StaticRuntimeForbidden {
		if name == goos {
			return false
		}
	}
	return true
}
