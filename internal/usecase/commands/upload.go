package commands

import (
	"context"
	"log/slog"

	"villa-booking/internal/domain/villa"
	"villa-booking/internal/pkg/errs"
	"villa-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedImageType = errs.New("only jpeg, png and webp images are accepted")
	ErrImageTooLarge        = errs.New("image exceeds the upload size limit")
	ErrUploadFailed         = errs.New("image upload failed")
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type UploadImageCommand struct {
	File shared.UploadInput
	// VillaID attaches the uploaded image to a villa when set.
	VillaID *uuid.UUID
	AltText string
}

type UploadCommands interface {
	UploadImage(ctx context.Context, cmd UploadImageCommand) (*shared.UploadedImage, error)
}

type uploadCommandsImpl struct {
	storage  shared.ImageStorage
	villas   VillaCommands
	maxBytes int64
}

func NewUploadCommands(storage shared.ImageStorage, villas VillaCommands, maxBytes int64) UploadCommands {
	return &uploadCommandsImpl{storage: storage, villas: villas, maxBytes: maxBytes}
}

func (u *uploadCommandsImpl) UploadImage(ctx context.Context, cmd UploadImageCommand) (*shared.UploadedImage, error) {
	if !allowedImageTypes[cmd.File.ContentType] {
		return nil, ErrUnsupportedImageType
	}
	if u.maxBytes > 0 && cmd.File.Size > u.maxBytes {
		return nil, ErrImageTooLarge
	}

	uploaded, err := u.storage.Upload(ctx, cmd.File)
	if err != nil {
		return nil, errs.Mark(err, ErrUploadFailed)
	}

	if cmd.VillaID == nil {
		return uploaded, nil
	}

	err = u.villas.AddImage(ctx, *cmd.VillaID, villa.Image{URL: uploaded.URL, AltText: cmd.AltText})
	if err != nil {
		if delErr := u.storage.Delete(ctx, uploaded.PublicID); delErr != nil {
			slog.WarnContext(ctx, "failed to remove orphaned upload",
				"public_id", uploaded.PublicID, "error", delErr.Error())
		}
		return nil, err
	}
	return uploaded, nil
}
