// Package storage uploads villa and gallery images to Cloudinary.
package storage

import (
	"context"
	"log/slog"

	"villa-booking/internal/pkg/config"
	"villa-booking/internal/pkg/errs"
	"villa-booking/internal/usecase/shared"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var ErrStorageDisabled = shared.ErrStorageDisabled

type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// New returns a Cloudinary-backed storage, or Disabled when CLOUDINARY_URL is empty.
func New(cfg config.CloudinaryConfig) (shared.ImageStorage, error) {
	if cfg.URL == "" {
		slog.Info("Image uploads disabled: CLOUDINARY_URL not set")
		return Disabled{}, nil
	}
	cld, err := cloudinary.NewFromURL(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to configure cloudinary")
	}
	return &CloudinaryStorage{cld: cld, folder: cfg.Folder}, nil
}

func (s *CloudinaryStorage) Upload(ctx context.Context, in shared.UploadInput) (*shared.UploadedImage, error) {
	res, err := s.cld.Upload.Upload(ctx, in.Body, uploader.UploadParams{
		Folder:       s.folder,
		ResourceType: "image",
	})
	if err != nil {
		return nil, errs.Wrap(err, "cloudinary upload")
	}
	if res.Error.Message != "" {
		return nil, errs.Newf("cloudinary upload rejected: %s", res.Error.Message)
	}

	slog.InfoContext(ctx, "Image uploaded",
		slog.String("public_id", res.PublicID),
		slog.String("filename", in.Filename),
		slog.Int("bytes", res.Bytes))

	return &shared.UploadedImage{
		URL:      res.SecureURL,
		PublicID: res.PublicID,
		Width:    res.Width,
		Height:   res.Height,
		Format:   res.Format,
		Bytes:    res.Bytes,
	}, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, publicID string) error {
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return errs.Wrap(err, "cloudinary destroy")
	}
	if res.Error.Message != "" {
		return errs.Newf("cloudinary destroy rejected: %s", res.Error.Message)
	}
	return nil
}

// Disabled rejects every call. It stands in when no Cloudinary account is configured.
type Disabled struct{}

func (Disabled) Upload(context.Context, shared.UploadInput) (*shared.UploadedImage, error) {
	return nil, ErrStorageDisabled
}

func (Disabled) Delete(context.Context, string) error {
	return ErrStorageDisabled
}
