package env

import (
	"os"
	"path/filepath"
)

// CacheDir returns the directory downloaded release archives are kept in.
// It creates the directory if it doesn't exist.
func CacheDir() (string, error) {
	userCacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(userCacheDir, "ccbuild")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
