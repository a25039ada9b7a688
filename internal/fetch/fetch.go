// Package fetch is the fetch-and-unpack collaborator: it downloads a Boost
// release archive and unpacks it. Nothing here is smart; failures simply
// propagate.
package fetch

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/pgzip"

	"github.com/ccbuild/ccbuild/boost"
	"github.com/ccbuild/ccbuild/internal/env"
)

// Boost downloads the release archive for v (or reuses a cached copy) and
// unpacks it under destDir, returning the unpacked source directory.
func Boost(v boost.Version, destDir string) (string, error) {
	unpacked := filepath.Join(destDir, v.DirName())
	if _, err := os.Stat(unpacked); err == nil {
		log.Printf("%s already exists, skipping download", unpacked)
		return unpacked, nil
	}

	archive, err := download(v)
	if err != nil {
		return "", err
	}
	f, err := os.Open(archive)
	if err != nil {
		return "", err
	}
	defer f.Close()

	log.Printf("unpacking %s to %s", archive, destDir)
	if err := untarGz(f, destDir); err != nil {
		return "", fmt.Errorf("unpack %s: %w", archive, err)
	}
	if _, err := os.Stat(unpacked); err != nil {
		return "", fmt.Errorf("archive did not contain %s: %w", v.DirName(), err)
	}
	return unpacked, nil
}

// download fetches the release archive into the cache directory, reusing a
// previously downloaded copy when there is one.
func download(v boost.Version) (string, error) {
	cacheDir, err := env.CacheDir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(cacheDir, v.ArchiveName())
	if _, err := os.Stat(path); err == nil {
		log.Printf("using cached archive %s", path)
		return path, nil
	}

	url := v.URL()
	log.Printf("downloading %s", url)
	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: %s", url, resp.Status)
	}

	tmp, err := os.CreateTemp(cacheDir, v.ArchiveName()+".*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("download %s: %w", url, err)
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", err
	}
	return path, nil
}

// untarGz unpacks a gzip-compressed tarball under destDir.
func untarGz(r io.Reader, destDir string) error {
	gz, err := pgzip.NewReader(r)
	if err != nil {
		return err
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		path, err := securePath(destDir, hdr.Name)
		if err != nil {
			return err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(path, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(hdr.Mode)&0o777)
			if err != nil {
				return err
			}
			if _, err := io.Copy(f, tr); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := os.Symlink(hdr.Linkname, path); err != nil && !errors.Is(err, os.ErrExist) {
				return err
			}
		default:
			// Boost archives only carry dirs, files and symlinks.
		}
	}
}

// securePath joins name onto destDir, rejecting entries that would escape it.
func securePath(destDir, name string) (string, error) {
	path := filepath.Join(destDir, filepath.FromSlash(name))
	if !strings.HasPrefix(path, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry escapes destination: %q", name)
	}
	return path, nil
}
