package storage

import (
	"context"
	"time"
)

// StorageService defines the interface for image storage operations.
type StorageService interface {
	// UploadFile uploads a local file into the destination folder and returns the
	// permanent public identifier.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a file by its public identifier.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL returns a display URL for a stored image.
	GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error)
}
