package env

import (
	"os"
	"testing"
)

func TestCacheDirCreated(t *testing.T) {
	// Point the user cache dir at a scratch location.
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("LocalAppData", t.TempDir())

	dir, err := CacheDir()
	if err != nil {
		t.Fatalf("CacheDir(): %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat %s: %v", dir, err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", dir)
	}
}
