package pathsearch

import (
	"runtime"
	"testing"
)

func TestFullExeNameUnix(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no PATHEXT handling to bypass on Windows")
	}
	// Off Windows the name passes through even when the executable does
	// not exist; b2 resolves it itself.
	for _, exe := range []string{"g++", "clang++", "/opt/weird/bin/g++"} {
		got, err := FullExeName(exe)
		if err != nil {
			t.Fatalf("FullExeName(%q): %v", exe, err)
		}
		if got != exe {
			t.Errorf("FullExeName(%q) = %q, want unchanged", exe, got)
		}
	}
}

func TestFullExeNameWindowsMissing(t *testing.T) {
	if runtime.GOOS != "windows" {
		t.Skip("PATH resolution only happens on Windows")
	}
	if _, err := FullExeName("definitely-not-a-compiler-7f3a"); err == nil {
		t.Error("FullExeName succeeded for a missing executable, want error")
	}
}
