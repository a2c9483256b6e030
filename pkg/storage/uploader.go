package storage

import (
	"context"
	"io"
)

// Uploader converts an uploaded file into a durable public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}
