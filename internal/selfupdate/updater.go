package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// Stage identifies one step of an in-flight update.
type Stage string

const (
	StageCheck    Stage = "check"
	StageDownload Stage = "download"
	StageVerify   Stage = "verify"
	StageExtract  Stage = "extract"
	StageApply    Stage = "apply"
	StageDone     Stage = "done"
)

// Progress is one report from a running update.
type Progress struct {
	Stage  Stage
	Detail string
}

// ProgressFunc receives progress reports during Update.
type ProgressFunc func(Progress)

// Update finds the latest release, verifies the platform archive against
// the published checksums and swaps the running binary in place.
func (c *Checker) Update(ctx context.Context, currentVersion string, report ProgressFunc) error {
	if report == nil {
		report = func(Progress) {}
	}
	if currentVersion == "(devel)" {
		return ErrDevBuild
	}

	report(Progress{Stage: StageCheck, Detail: "Looking for a newer release"})
	res, err := c.Check(ctx, &CheckInput{Version: currentVersion})
	if err != nil {
		return fmt.Errorf("check releases: %w", err)
	}
	if !res.UpdateAvailable {
		return ErrAlreadyLatest
	}
	tag := res.LatestVersion

	asset, err := assetFor(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	report(Progress{Stage: StageDownload, Detail: "Downloading " + tag})
	archive, err := c.fetch(ctx, c.releaseFileURL(tag, asset.name))
	if err != nil {
		return fmt.Errorf("download %s: %w", asset.name, err)
	}

	report(Progress{Stage: StageVerify, Detail: "Verifying the download"})
	manifest, err := c.fetch(ctx, c.releaseFileURL(tag, "checksums.txt"))
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	want, ok := checksumFor(manifest, asset.name)
	if !ok {
		return fmt.Errorf("checksums.txt lists no entry for %s", asset.name)
	}
	if err := verifyDigest(archive, want); err != nil {
		return err
	}

	report(Progress{Stage: StageExtract, Detail: "Unpacking " + asset.binary})
	binary, err := asset.unpack(archive)
	if err != nil {
		return fmt.Errorf("unpack %s: %w", asset.name, err)
	}

	report(Progress{Stage: StageApply, Detail: "Swapping the binary"})
	path, err := c.execPath()
	if err != nil {
		return fmt.Errorf("locate running binary: %w", err)
	}
	if err := swapBinary(path, binary); err != nil {
		return err
	}

	report(Progress{Stage: StageDone, Detail: "Now on " + tag})
	return nil
}

// releaseAsset names the archive published for one platform and the binary
// inside it. Names follow the goreleaser defaults.
type releaseAsset struct {
	name   string
	binary string
}

var releaseArches = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

func assetFor(goos, goarch string) (releaseAsset, error) {
	if goos == "darwin" {
		return releaseAsset{name: "tendril_Darwin_all.tar.gz", binary: "tendril"}, nil
	}
	arch, ok := releaseArches[goarch]
	if !ok {
		return releaseAsset{}, fmt.Errorf("no release is published for %s/%s", goos, goarch)
	}
	switch goos {
	case "linux":
		return releaseAsset{name: "tendril_Linux_" + arch + ".tar.gz", binary: "tendril"}, nil
	case "windows":
		return releaseAsset{name: "tendril_Windows_" + arch + ".zip", binary: "tendril.exe"}, nil
	default:
		return releaseAsset{}, fmt.Errorf("no release is published for %s/%s", goos, goarch)
	}
}

func (a releaseAsset) unpack(archive []byte) ([]byte, error) {
	if strings.HasSuffix(a.name, ".zip") {
		return unzipOne(archive, a.binary)
	}
	return untarOne(archive, a.binary)
}

func (c *Checker) releaseFileURL(tag, file string) string {
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, tag, file)
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// checksumFor finds the digest published for one asset in a checksums.txt
// manifest. Lines that do not look like "<hex>  <name>" are skipped.
func checksumFor(manifest []byte, asset string) (string, bool) {
	sc := bufio.NewScanner(bytes.NewReader(manifest))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 && fields[1] == asset {
			return fields[0], true
		}
	}
	return "", false
}

func verifyDigest(data []byte, wantHex string) error {
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); got != wantHex {
		return fmt.Errorf("%w: want %s, got %s", ErrChecksum, wantHex, got)
	}
	return nil
}

func untarOne(archive []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("archive carries no %q", name)
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
}

func unzipOne(archive []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range zr.File {
		if filepath.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("archive carries no %q", name)
}

// swapBinary stages the new binary next to the current one, carries the
// current file mode over and renames it into place. The sibling staging
// file keeps the rename on one filesystem so it stays atomic.
func swapBinary(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat current binary: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tendril-swap-*")
	if err != nil {
		return fmt.Errorf("stage new binary: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write new binary: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("flush new binary: %w", err)
	}
	if err := os.Chmod(tmpPath, info.Mode()); err != nil {
		return fmt.Errorf("carry permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("swap binary: %w", err)
	}
	return nil
}
