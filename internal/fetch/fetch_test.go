package fetch

import (
	"archive/tar"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/pgzip"
)

func makeArchive(t *testing.T, entries map[string]string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	gz := pgzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, content := range entries {
		hdr := &tar.Header{Name: name, Mode: 0o644, Size: int64(len(content)), Typeflag: tar.TypeReg}
		if content == "" && name[len(name)-1] == '/' {
			hdr.Typeflag = tar.TypeDir
			hdr.Mode = 0o755
			hdr.Size = 0
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatal(err)
		}
		if hdr.Typeflag == tar.TypeReg {
			if _, err := tw.Write([]byte(content)); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func TestUntarGz(t *testing.T) {
	buf := makeArchive(t, map[string]string{
		"boost_1_72_0/":             "",
		"boost_1_72_0/bootstrap.sh": "#!/bin/sh\n",
		"boost_1_72_0/Jamroot":      "project boost ;\n",
	})
	destDir := t.TempDir()
	if err := untarGz(buf, destDir); err != nil {
		t.Fatalf("untarGz: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(destDir, "boost_1_72_0", "Jamroot"))
	if err != nil {
		t.Fatalf("read unpacked file: %v", err)
	}
	if string(data) != "project boost ;\n" {
		t.Errorf("unpacked content = %q", data)
	}
}

func TestUntarGzRejectsEscape(t *testing.T) {
	buf := makeArchive(t, map[string]string{
		"../evil.txt": "gotcha",
	})
	if err := untarGz(buf, t.TempDir()); err == nil {
		t.Error("untarGz accepted a path-traversal entry")
	}
}

func TestUntarGzRejectsGarbage(t *testing.T) {
	if err := untarGz(bytes.NewBufferString("not a gzip stream"), t.TempDir()); err == nil {
		t.Error("untarGz accepted a non-gzip stream")
	}
}
