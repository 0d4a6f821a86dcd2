package dataset

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/selivandex/stock-sentiment/pkg/logger"
	"github.com/selivandex/stock-sentiment/pkg/models"
)

// ExtractZip unpacks archive into dest and returns the extracted file paths.
// Entries that would land outside dest are rejected.
func ExtractZip(archive, dest string) ([]string, error) {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", archive, err)
	}
	defer r.Close()

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dest, err)
	}

	root, err := filepath.Abs(dest)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dest, err)
	}

	extracted := make([]string, 0, len(r.File))
	for _, f := range r.File {
		target := filepath.Join(root, f.Name)
		if target != root && !strings.HasPrefix(target, root+string(os.PathSeparator)) {
			return nil, fmt.Errorf("archive %s: illegal entry path %q", archive, f.Name)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create %s: %w", target, err)
			}
			continue
		}

		if err := extractFile(f, target); err != nil {
			return nil, fmt.Errorf("archive %s: %w", archive, err)
		}
		extracted = append(extracted, target)
	}

	logger.Info("archive extracted",
		zap.String("archive", archive),
		zap.String("dest", dest),
		zap.Int("files", len(extracted)),
	)

	return extracted, nil
}

func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(target), err)
	}

	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open entry %s: %w", f.Name, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("failed to extract %s: %w", f.Name, err)
	}
	return dst.Close()
}

// LoadHeadlinesFromZip extracts archive into dest and loads the named headline file
func LoadHeadlinesFromZip(archive, dest, name string) ([]models.HeadlineRecord, LoadStats, error) {
	if _, err := ExtractZip(archive, dest); err != nil {
		return nil, LoadStats{File: name}, err
	}
	return LoadHeadlines(filepath.Join(dest, name))
}
