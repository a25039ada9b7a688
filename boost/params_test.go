package boost

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ccbuild/ccbuild/policy"
	"github.com/ccbuild/ccbuild/target"
)

func TestResolveRuntimeLinkSharedLibrary(t *testing.T) {
	// A shared library can never link the runtime statically, on any OS.
	for _, goos := range []string{"linux", "windows", "darwin"} {
		got := resolveRuntimeLink(target.Shared, target.Static, policy.Default(), goos)
		if got != target.Shared {
			t.Errorf("resolveRuntimeLink(shared, static, %s) = %v, want shared", goos, got)
		}
	}
}

func TestResolveRuntimeLinkPolicy(t *testing.T) {
	pol := policy.Default()
	if got := resolveRuntimeLink(target.Static, target.Static, pol, "linux"); got != target.Shared {
		t.Errorf("static runtime on linux = %v, want shared (glibc assumed)", got)
	}
	if got := resolveRuntimeLink(target.Static, target.Static, pol, "windows"); got != target.Static {
		t.Errorf("static runtime on windows = %v, want static", got)
	}

	// A permissive policy (say, musl) keeps the static runtime on linux.
	musl := &policy.Linkage{}
	if got := resolveRuntimeLink(target.Static, target.Static, musl, "linux"); got != target.Static {
		t.Errorf("static runtime under empty policy = %v, want static", got)
	}
}

func TestResolveRuntimeLinkSharedRuntimeUntouched(t *testing.T) {
	for _, link := range target.AllLinkages() {
		got := resolveRuntimeLink(link, target.Shared, policy.Default(), "linux")
		if got != target.Shared {
			t.Errorf("resolveRuntimeLink(%v, shared) = %v, want shared", link, got)
		}
	}
}

func TestEnumB2ArgsCrossProduct(t *testing.T) {
	boostDir := filepath.Join(t.TempDir(), "boost_1_72_0")
	if err := os.MkdirAll(boostDir, 0o755); err != nil {
		t.Fatal(err)
	}
	p := NewBuildParameters(boostDir)
	p.RuntimeLink = target.Shared // keep the resolver out of the way
	p.B2Args = []string{"--with-filesystem"}

	var all [][]string
	err := p.EnumB2Args(func(args []string) error {
		all = append(all, args)
		return nil
	})
	if err != nil {
		t.Fatalf("EnumB2Args: %v", err)
	}

	// 2 platforms x 2 configurations x 2 linkages.
	if len(all) != 8 {
		t.Fatalf("got %d combinations, want 8", len(all))
	}

	// Pass-through arguments come last so they can override anything.
	for _, args := range all {
		if args[len(args)-1] != "--with-filesystem" {
			t.Errorf("pass-through argument is not last: %v", args)
		}
	}

	// Deterministic order: platforms outer, configurations middle,
	// linkages inner.
	var order []string
	for _, args := range all {
		var platform, variant, link string
		for _, a := range args {
			switch {
			case strings.HasPrefix(a, "address-model="):
				platform = a
			case strings.HasPrefix(a, "variant="):
				variant = a
			case strings.HasPrefix(a, "link="):
				link = a
			}
		}
		order = append(order, platform+" "+variant+" "+link)
	}
	want := []string{
		"address-model=32 variant=debug link=static",
		"address-model=32 variant=debug link=shared",
		"address-model=32 variant=release link=static",
		"address-model=32 variant=release link=shared",
		"address-model=64 variant=debug link=static",
		"address-model=64 variant=debug link=shared",
		"address-model=64 variant=release link=static",
		"address-model=64 variant=release link=shared",
	}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("combination order mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumB2ArgsStagedirsUnique(t *testing.T) {
	boostDir := filepath.Join(t.TempDir(), "boost_1_72_0")
	if err := os.MkdirAll(boostDir, 0o755); err != nil {
		t.Fatal(err)
	}
	p := NewBuildParameters(boostDir)
	p.Link = []target.Linkage{target.Static} // one stagedir per (platform, configuration)

	seen := make(map[string]bool)
	err := p.EnumB2Args(func(args []string) error {
		for _, a := range args {
			if strings.HasPrefix(a, "--stagedir=") {
				if seen[a] {
					t.Errorf("duplicate stagedir: %s", a)
				}
				seen[a] = true
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("EnumB2Args: %v", err)
	}
	if len(seen) != 4 {
		t.Errorf("got %d distinct stagedirs, want 4", len(seen))
	}
}

func TestEnumB2ArgsTempBuildDirRemoved(t *testing.T) {
	boostDir := filepath.Join(t.TempDir(), "boost_1_72_0")
	if err := os.MkdirAll(boostDir, 0o755); err != nil {
		t.Fatal(err)
	}

	extractBuildDir := func(args []string) string {
		for _, a := range args {
			if dir, ok := strings.CutPrefix(a, "--build-dir="); ok {
				return dir
			}
		}
		return ""
	}

	t.Run("success", func(t *testing.T) {
		p := NewBuildParameters(boostDir)
		var buildDir string
		err := p.EnumB2Args(func(args []string) error {
			buildDir = extractBuildDir(args)
			return nil
		})
		if err != nil {
			t.Fatalf("EnumB2Args: %v", err)
		}
		if buildDir == "" {
			t.Fatal("no --build-dir argument produced")
		}
		if _, err := os.Stat(buildDir); !os.IsNotExist(err) {
			t.Errorf("temporary build dir %s still exists", buildDir)
		}
	})

	t.Run("failure", func(t *testing.T) {
		p := NewBuildParameters(boostDir)
		fail := errors.New("b2 blew up")
		var buildDir string
		err := p.EnumB2Args(func(args []string) error {
			buildDir = extractBuildDir(args)
			return fail
		})
		if !errors.Is(err, fail) {
			t.Fatalf("EnumB2Args error = %v, want %v", err, fail)
		}
		if _, err := os.Stat(buildDir); !os.IsNotExist(err) {
			t.Errorf("temporary build dir %s still exists after failure", buildDir)
		}
	})
}

func TestEnumB2ArgsExplicitBuildDirKept(t *testing.T) {
	boostDir := filepath.Join(t.TempDir(), "boost_1_72_0")
	buildDir := filepath.Join(t.TempDir(), "build")
	for _, d := range []string{boostDir, buildDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	p := NewBuildParameters(boostDir)
	p.BuildDir = buildDir
	err := p.EnumB2Args(func(args []string) error {
		if args[0] != "--build-dir="+buildDir {
			t.Errorf("args[0] = %q, want --build-dir=%s", args[0], buildDir)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("EnumB2Args: %v", err)
	}
	if _, err := os.Stat(buildDir); err != nil {
		t.Errorf("explicit build dir was removed: %v", err)
	}
}
