// Package archive implements the SourceRepository interface by downloading
// and extracting pinned release archives over HTTPS.
package archive

import (
	"archive/tar"
	"archive/zip"
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
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
	domainRepos "github.com/fieldrobotics/cvsetup/internal/domain/repositories"
)

const (
	downloadTimeout = 30 * time.Minute
	dirMode         = 0o755
)

// SourceRepository downloads release archives, verifies them when a digest
// is configured, extracts them, and renames each extracted tree to its fixed
// target name.
type SourceRepository struct {
	client *http.Client
}

// NewSourceRepository creates an archive source repository.
func NewSourceRepository() *SourceRepository {
	return &SourceRepository{
		client: &http.Client{Timeout: downloadTimeout},
	}
}

var _ domainRepos.SourceRepository = (*SourceRepository)(nil)

func (r *SourceRepository) Name() string { return entities.MethodArchive }

// Acquire fetches every configured archive into workDir and returns the path
// of the main source tree. When the target directory already exists the
// acquisition is skipped entirely, so re-runs resume at the build phase.
func (r *SourceRepository) Acquire(
	ctx context.Context,
	spec entities.SourceSpec,
	workDir string,
) (string, error) {
	target := filepath.Join(workDir, spec.Name)
	if _, err := os.Stat(target); err == nil {
		logger.Infof("Source directory %q already exists, skipping download", target)
		return target, nil
	}

	archives := pendingArchives(spec, workDir)

	// Independent archives download concurrently; extraction below stays
	// sequential because renames touch the shared work directory.
	group, groupCtx := errgroup.WithContext(ctx)
	for _, pending := range archives {
		pending := pending
		group.Go(func() error {
			return r.download(groupCtx, pending.url, pending.file)
		})
	}
	if err := group.Wait(); err != nil {
		return "", err
	}

	for _, pending := range archives {
		if verifyErr := verifyDigest(pending.file, pending.sha256); verifyErr != nil {
			return "", verifyErr
		}
		if extractErr := extract(pending.file, workDir); extractErr != nil {
			return "", fmt.Errorf("failed to extract %q: %w", pending.file, extractErr)
		}
		extracted := filepath.Join(workDir, pending.extractedDir)
		renamed := filepath.Join(workDir, pending.targetDir)
		if renameErr := os.Rename(extracted, renamed); renameErr != nil {
			return "", fmt.Errorf("failed to rename extracted directory: %w", renameErr)
		}
		if removeErr := os.Remove(pending.file); removeErr != nil {
			logger.Warnf("Failed to remove archive %q: %v", pending.file, removeErr)
		}
		logger.Infof("Extracted %q", renamed)
	}

	return target, nil
}

// Plan returns the download/extract/rename steps Acquire would perform.
func (r *SourceRepository) Plan(spec entities.SourceSpec, workDir string) entities.Plan {
	var plan entities.Plan
	for _, pending := range pendingArchives(spec, workDir) {
		plan.Add("source", fmt.Sprintf("download %s", pending.url))
		if pending.sha256 != "" {
			plan.Add("source", fmt.Sprintf("verify sha256 of %s", filepath.Base(pending.file)))
		}
		plan.Add("source", fmt.Sprintf(
			"extract %s and rename %s to %s",
			filepath.Base(pending.file), pending.extractedDir, pending.targetDir,
		))
	}
	return plan
}

// pendingArchive is one archive resolved against the version pin.
type pendingArchive struct {
	url          string
	file         string
	sha256       string
	extractedDir string
	targetDir    string
}

func pendingArchives(spec entities.SourceSpec, workDir string) []pendingArchive {
	var pending []pendingArchive
	for _, archiveSpec := range spec.Archives() {
		url := archiveSpec.ResolveURL(spec.Version)
		pending = append(pending, pendingArchive{
			url:          url,
			file:         filepath.Join(workDir, archiveSpec.TargetDir(spec.Name)+archiveExtension(url)),
			sha256:       archiveSpec.SHA256,
			extractedDir: archiveSpec.ExtractedDir(spec.Name, spec.Version),
			targetDir:    archiveSpec.TargetDir(spec.Name),
		})
	}
	return pending
}

func archiveExtension(url string) string {
	switch {
	case strings.HasSuffix(url, ".tar.gz"), strings.HasSuffix(url, ".tgz"):
		return ".tar.gz"
	default:
		return ".zip"
	}
}

// download fetches the URL into the given file.
func (r *SourceRepository) download(ctx context.Context, url, file string) error {
	logger.Infof("Downloading %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %q: %w", url, err)
	}

	resp, doErr := r.client.Do(req)
	if doErr != nil {
		return fmt.Errorf("failed to download %q: %w", url, doErr)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s downloading %q", resp.Status, url)
	}

	out, createErr := os.Create(file)
	if createErr != nil {
		return fmt.Errorf("failed to create %q: %w", file, createErr)
	}
	defer out.Close()

	if _, copyErr := io.Copy(out, resp.Body); copyErr != nil {
		return fmt.Errorf("failed to write %q: %w", file, copyErr)
	}

	return nil
}

// verifyDigest checks the file against the expected hex-encoded sha256.
// An empty digest skips verification, matching the reference behavior.
func verifyDigest(file, expected string) error {
	if expected == "" {
		return nil
	}

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open %q for verification: %w", file, err)
	}
	defer f.Close()

	hash := sha256.New()
	if _, copyErr := io.Copy(hash, f); copyErr != nil {
		return fmt.Errorf("failed to hash %q: %w", file, copyErr)
	}

	actual := hex.EncodeToString(hash.Sum(nil))
	if !strings.EqualFold(actual, expected) {
		return fmt.Errorf(
			"sha256 mismatch for %q: expected %s, got %s",
			file, expected, actual,
		)
	}

	return nil
}

// extract unpacks a zip or tar.gz archive into destDir.
func extract(file, destDir string) error {
	if strings.HasSuffix(file, ".tar.gz") {
		return extractTarGz(file, destDir)
	}
	return extractZip(file, destDir)
}

func extractZip(file, destDir string) error {
	reader, err := zip.OpenReader(file)
	if err != nil {
		return err
	}
	defer reader.Close()

	for _, entry := range reader.File {
		path, pathErr := securePath(destDir, entry.Name)
		if pathErr != nil {
			return pathErr
		}

		if entry.FileInfo().IsDir() {
			if mkErr := os.MkdirAll(path, dirMode); mkErr != nil {
				return mkErr
			}
			continue
		}

		if writeErr := writeZipEntry(entry, path); writeErr != nil {
			return writeErr
		}
	}

	return nil
}

func writeZipEntry(entry *zip.File, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return err
	}

	in, err := entry.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, createErr := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, entry.Mode())
	if createErr != nil {
		return createErr
	}
	defer out.Close()

	_, copyErr := io.Copy(out, in)
	return copyErr
}

func extractTarGz(file, destDir string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	gz, gzErr := gzip.NewReader(f)
	if gzErr != nil {
		return gzErr
	}
	defer gz.Close()

	reader := tar.NewReader(gz)
	for {
		header, nextErr := reader.Next()
		if errors.Is(nextErr, io.EOF) {
			return nil
		}
		if nextErr != nil {
			return nextErr
		}

		path, pathErr := securePath(destDir, header.Name)
		if pathErr != nil {
			return pathErr
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if mkErr := os.MkdirAll(path, dirMode); mkErr != nil {
				return mkErr
			}
		case tar.TypeReg:
			if writeErr := writeTarEntry(reader, header, path); writeErr != nil {
				return writeErr
			}
		default:
			// Symlinks and special files are not expected in release archives.
			logger.Debugf("Skipping archive entry %q (type %d)", header.Name, header.Typeflag)
		}
	}
}

func writeTarEntry(reader *tar.Reader, header *tar.Header, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return err
	}

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, header.FileInfo().Mode())
	if err != nil {
		return err
	}
	defer out.Close()

	_, copyErr := io.Copy(out, reader)
	return copyErr
}

// securePath joins an archive entry name onto destDir, rejecting entries
// that would escape it.
func securePath(destDir, name string) (string, error) {
	path := filepath.Join(destDir, filepath.Clean(name))
	if !strings.HasPrefix(path, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q escapes the destination directory", name)
	}
	return path, nil
}
