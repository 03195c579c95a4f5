package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetFor(t *testing.T) {
	tests := []struct {
		goos, goarch string
		wantName     string
		wantBinary   string
	}{
		{"darwin", "arm64", "tendril_Darwin_all.tar.gz", "tendril"},
		{"darwin", "amd64", "tendril_Darwin_all.tar.gz", "tendril"},
		{"linux", "amd64", "tendril_Linux_x86_64.tar.gz", "tendril"},
		{"linux", "386", "tendril_Linux_i386.tar.gz", "tendril"},
		{"windows", "arm64", "tendril_Windows_arm64.zip", "tendril.exe"},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			a, err := assetFor(tt.goos, tt.goarch)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, a.name)
			assert.Equal(t, tt.wantBinary, a.binary)
		})
	}

	t.Run("unpublished platforms", func(t *testing.T) {
		_, err := assetFor("freebsd", "amd64")
		assert.Error(t, err)
		_, err = assetFor("linux", "mips")
		assert.Error(t, err)
	})
}

func TestChecksumFor(t *testing.T) {
	manifest := []byte("abc123  tendril_Darwin_all.tar.gz\n" +
		"not a digest line at all\n" +
		"\n" +
		"def456  tendril_Linux_x86_64.tar.gz\n")

	got, ok := checksumFor(manifest, "tendril_Linux_x86_64.tar.gz")
	require.True(t, ok)
	assert.Equal(t, "def456", got)

	_, ok = checksumFor(manifest, "tendril_Windows_arm64.zip")
	assert.False(t, ok)
}

func TestVerifyDigest(t *testing.T) {
	data := []byte("hello world")
	sum := sha256.Sum256(data)

	assert.NoError(t, verifyDigest(data, hex.EncodeToString(sum[:])))

	err := verifyDigest(data, "0000000000000000000000000000000000000000000000000000000000000000")
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestUnpack(t *testing.T) {
	content := []byte("#!/bin/sh\necho tendril")

	t.Run("tar.gz", func(t *testing.T) {
		a := releaseAsset{name: "tendril_Darwin_all.tar.gz", binary: "tendril"}
		got, err := a.unpack(buildTarGz(t, "tendril", content))
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("binary missing from archive", func(t *testing.T) {
		a := releaseAsset{name: "tendril_Darwin_all.tar.gz", binary: "tendril"}
		_, err := a.unpack(buildTarGz(t, "README.md", content))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "carries no")
	})
}

func TestSwapBinary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "tendril")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newData := []byte("new-binary-content")
	require.NoError(t, swapBinary(target, newData))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	// No staging leftovers.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// releaseServer serves a fake GitHub release with one asset and its
// checksums manifest.
func releaseServer(t *testing.T, tag, asset string, archive, checksums []byte) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/ivelina/tendril/releases/latest", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
	})
	mux.HandleFunc(fmt.Sprintf("/ivelina/tendril/releases/download/%s/%s", tag, asset), func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(archive)
	})
	mux.HandleFunc(fmt.Sprintf("/ivelina/tendril/releases/download/%s/checksums.txt", tag), func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(checksums)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestUpdate(t *testing.T) {
	content := []byte("new-tendril-binary")
	archive := buildTarGz(t, "tendril", content)
	sum := sha256.Sum256(archive)

	// One archive stands in for every published asset name so the happy
	// path works on whatever platform runs the tests.
	var manifest bytes.Buffer
	for _, name := range []string{
		"tendril_Darwin_all.tar.gz",
		"tendril_Linux_x86_64.tar.gz",
		"tendril_Linux_arm64.tar.gz",
		"tendril_Linux_i386.tar.gz",
	} {
		fmt.Fprintf(&manifest, "%s  %s\n", hex.EncodeToString(sum[:]), name)
	}
	checksums := manifest.String()

	t.Run("happy path", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "tendril")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		current, err := assetFor(runtime.GOOS, runtime.GOARCH)
		require.NoError(t, err)
		srv := releaseServer(t, "v2.0.0", current.name, archive, []byte(checksums))

		checker := NewChecker(
			WithBaseURL(srv.URL),
			WithDownloadBaseURL(srv.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []Stage
		err = checker.Update(context.Background(), "v1.0.0", func(p Progress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, content, got)
		assert.Equal(t, []Stage{StageCheck, StageDownload, StageVerify, StageExtract, StageApply, StageDone}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), "(devel)", nil)
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		srv := releaseServer(t, "v1.0.0", "unused", nil, nil)
		checker := NewChecker(WithBaseURL(srv.URL))
		err := checker.Update(context.Background(), "v1.0.0", nil)
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		current, err := assetFor(runtime.GOOS, runtime.GOARCH)
		require.NoError(t, err)
		bad := fmt.Sprintf("%064d  %s\n", 0, current.name)
		srv := releaseServer(t, "v2.0.0", current.name, archive, []byte(bad))

		checker := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL))
		err = checker.Update(context.Background(), "v1.0.0", nil)
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/ivelina/tendril/releases/latest" {
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		t.Cleanup(srv.Close)

		checker := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL))
		err := checker.Update(context.Background(), "v1.0.0", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download")
	})
}

// buildTarGz packs one file into a gzip'd tarball.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
