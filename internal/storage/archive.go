package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ArchiveConfig selects the archive destination. Bucket names the bucket
// (a subdirectory for local archives); archival is disabled while it is
// empty. LocalDir switches from S3 to a directory store rooted there.
type ArchiveConfig struct {
	Bucket   string
	LocalDir string
	S3       S3ClientConfig
}

func (c ArchiveConfig) Enabled() bool { return c.Bucket != "" }

// NewArchive returns the configured archive store.
func NewArchive(cfg ArchiveConfig) (ObjectStore, error) {
	if cfg.LocalDir != "" {
		return NewLocalObjectStore(cfg.LocalDir)
	}
	return NewS3ObjectStore(cfg.S3)
}

// ArchiveFiles uploads individual artifact files under prefix, keyed by their
// base names. Missing paths are an error; archival should never silently skip
// a result file.
func ArchiveFiles(ctx context.Context, store ObjectStore, bucket, prefix string, paths ...string) error {
	if err := store.CreateBucket(ctx, bucket); err != nil {
		return err
	}

	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open artifact %s: %w", path, err)
		}

		key := filepath.Join(prefix, filepath.Base(path))
		err = store.PutObject(ctx, bucket, key, file)
		file.Close()
		if err != nil {
			return err
		}
	}

	return nil
}
