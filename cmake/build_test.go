package cmake

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ccbuild/ccbuild/target"
)

func TestConfigureArgsOrdering(t *testing.T) {
	p := NewBuildParameters("/src/project")
	p.Configuration = target.Release
	p.BoostDir = "/opt/boost"
	p.InstallDir = "/opt/out"
	p.CMakeArgs = []string{"-D", "FOO=bar"}

	toolchain, err := DetectToolchain(target.MSVC, target.X64, t.TempDir())
	if err != nil {
		t.Fatalf("DetectToolchain: %v", err)
	}
	got := p.ConfigureArgs(toolchain, "/scratch/build")
	want := []string{
		"-S", "/src/project",
		"-B", "/scratch/build",
		"-D", "CMAKE_BUILD_TYPE=Release",
		"-D", "CMAKE_INSTALL_PREFIX=/opt/out",
		"-D", "BOOST_ROOT=/opt/boost",
		"-A", "x64",
		"-D", "FOO=bar",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ConfigureArgs mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildArgsNativeToolArgs(t *testing.T) {
	p := NewBuildParameters("/src/project")
	toolchain, err := DetectToolchain(target.MSVC, target.X64, t.TempDir())
	if err != nil {
		t.Fatalf("DetectToolchain: %v", err)
	}
	got := p.BuildArgs(toolchain, "/scratch/build")
	want := []string{"--build", "/scratch/build", "--config", "Debug", "--", "/m"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildArgs mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildArgsNoNativeArgs(t *testing.T) {
	p := NewBuildParameters("/src/project")
	p.Configuration = target.Release
	toolchain, err := DetectToolchain(target.Auto, 0, t.TempDir())
	if err != nil {
		t.Fatalf("DetectToolchain: %v", err)
	}
	got := p.BuildArgs(toolchain, "/scratch/build")
	want := []string{"--build", "/scratch/build", "--config", "Release"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildArgs mismatch (-want +got):\n%s", diff)
	}
}

func TestInstallArgs(t *testing.T) {
	p := NewBuildParameters("/src/project")
	p.InstallDir = "/opt/out"
	got := p.InstallArgs("/scratch/build")
	want := []string{"--install", "/scratch/build", "--prefix", "/opt/out", "--config", "Debug"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("InstallArgs mismatch (-want +got):\n%s", diff)
	}
}
