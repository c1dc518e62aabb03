package shared

import (
	"context"
	"io"
	"time"

	"villa-booking/internal/pkg/errs"
)

// ErrStorageDisabled is returned by ImageStorage when no image host is configured.
var ErrStorageDisabled = errs.New("image storage is not configured")

// Cache stores JSON-encodable read models. A miss is (false, nil).
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type UploadedImage struct {
	URL      string
	PublicID string
	Width    int
	Height   int
	Format   string
	Bytes    int
}

type ImageStorage interface {
	Upload(ctx context.Context, in UploadInput) (*UploadedImage, error)
	Delete(ctx context.Context, publicID string) error
}

// VillaCachePrefix namespaces every cached villa read model. Writes to villas drop the whole prefix.
const VillaCachePrefix = "villas:"
