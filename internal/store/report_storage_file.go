// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/models"
)

const reportMetaSuffix = ".meta.json"

// fileReportStorage keeps each report under <dir>/<key> with a JSON sidecar
// holding its content type.
type fileReportStorage struct {
	dir    string
	logger *logger.Logger
}

// NewFileReportStorage constructs a [ReportStorage] rooted at dir, creating
// the directory when needed.
func NewFileReportStorage(dir string, log *logger.Logger) (ReportStorage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("error creating reports dir: %w", err)
	}

	log.Debug().Str("dir", dir).Msg("creating file report storage")
	return &fileReportStorage{dir: dir, logger: log}, nil
}

func (s *fileReportStorage) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("invalid report key %q", key)
	}
	return filepath.Join(s.dir, clean), nil
}

func (s *fileReportStorage) PutReport(ctx context.Context, key, contentType string, body io.Reader, _ int64) (models.ReportObject, error) {
	log := logger.FromContext(ctx)

	path, err := s.path(key)
	if err != nil {
		return models.ReportObject{}, err
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return models.ReportObject{}, fmt.Errorf("error creating report dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return models.ReportObject{}, fmt.Errorf("error creating temp report: %w", err)
	}
	defer os.Remove(tmp.Name())

	size, err := io.Copy(tmp, body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		log.Err(err).Str("func", "*fileReportStorage.PutReport").Str("key", key).Msg("failed to write report")
		return models.ReportObject{}, fmt.Errorf("error writing report: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return models.ReportObject{}, fmt.Errorf("error storing report: %w", err)
	}

	obj := models.ReportObject{
		Key:         key,
		ContentType: contentType,
		Size:        size,
		UpdatedAt:   time.Now().UTC(),
	}

	meta, err := json.Marshal(obj)
	if err != nil {
		return models.ReportObject{}, err
	}
	if err = os.WriteFile(path+reportMetaSuffix, meta, 0o600); err != nil {
		return models.ReportObject{}, fmt.Errorf("error writing report metadata: %w", err)
	}

	return obj, nil
}

func (s *fileReportStorage) GetReport(_ context.Context, key string) (io.ReadCloser, models.ReportObject, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, models.ReportObject{}, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, models.ReportObject{}, ErrReportNotFound
	}
	if err != nil {
		return nil, models.ReportObject{}, fmt.Errorf("error opening report: %w", err)
	}

	obj := models.ReportObject{Key: key, ContentType: "application/octet-stream"}
	if meta, readErr := os.ReadFile(path + reportMetaSuffix); readErr == nil {
		_ = json.Unmarshal(meta, &obj)
	}
	if info, statErr := f.Stat(); statErr == nil {
		obj.Size = info.Size()
		if obj.UpdatedAt.IsZero() {
			obj.UpdatedAt = info.ModTime().UTC()
		}
	}

	return f, obj, nil
}

// DeleteReport removes the report of key. A missing report is not an error.
func (s *fileReportStorage) DeleteReport(_ context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	for _, p := range []string{path, path + reportMetaSuffix} {
		if err = os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error deleting report: %w", err)
		}
	}

	return nil
}
