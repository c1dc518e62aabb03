//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"villa-booking/internal/domain/villa"
	"villa-booking/internal/pkg/errs"
	"villa-booking/internal/usecase/commands"
	"villa-booking/internal/usecase/shared"
	commandsmock "villa-booking/tests/mock/commands"
	sharedmock "villa-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const maxUpload = 5 << 20

func uploadInput(contentType string, size int64) shared.UploadInput {
	return shared.UploadInput{
		Filename:    "pool.jpg",
		ContentType: contentType,
		Size:        size,
		Body:        strings.NewReader("image-bytes"),
	}
}

func TestUploadCommands_UploadImage(t *testing.T) {
	ctx := context.Background()
	uploaded := &shared.UploadedImage{
		URL:      "https://res.cloudinary.com/demo/image/upload/villa-luxury/villas/pool.jpg",
		PublicID: "villa-luxury/villas/pool",
		Format:   "jpg",
	}

	setup := func(t *testing.T) (*sharedmock.MockImageStorage, *commandsmock.MockVillaCommands, commands.UploadCommands) {
		ctrl := gomock.NewController(t)
		storage := sharedmock.NewMockImageStorage(ctrl)
		villas := commandsmock.NewMockVillaCommands(ctrl)
		return storage, villas, commands.NewUploadCommands(storage, villas, maxUpload)
	}

	t.Run("upload without villa", func(t *testing.T) {
		storage, _, cmds := setup(t)
		storage.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(uploaded, nil)

		got, err := cmds.UploadImage(ctx, commands.UploadImageCommand{File: uploadInput("image/jpeg", 1024)})
		require.NoError(t, err)
		assert.Equal(t, uploaded.URL, got.URL)
	})

	t.Run("attaches to villa", func(t *testing.T) {
		storage, villas, cmds := setup(t)
		villaID := uuid.New()
		storage.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(uploaded, nil)
		villas.EXPECT().AddImage(gomock.Any(), villaID, villa.Image{URL: uploaded.URL, AltText: "Pool"}).Return(nil)

		_, err := cmds.UploadImage(ctx, commands.UploadImageCommand{
			File:    uploadInput("image/webp", 1024),
			VillaID: &villaID,
			AltText: "Pool",
		})
		assert.NoError(t, err)
	})

	t.Run("removes the upload when attaching fails", func(t *testing.T) {
		storage, villas, cmds := setup(t)
		villaID := uuid.New()
		storage.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(uploaded, nil)
		villas.EXPECT().AddImage(gomock.Any(), villaID, gomock.Any()).Return(commands.ErrVillaNotFound)
		storage.EXPECT().Delete(gomock.Any(), uploaded.PublicID).Return(nil)

		_, err := cmds.UploadImage(ctx, commands.UploadImageCommand{File: uploadInput("image/png", 1024), VillaID: &villaID})
		assert.True(t, errs.Is(err, commands.ErrVillaNotFound))
	})

	t.Run("rejects other types", func(t *testing.T) {
		_, _, cmds := setup(t)
		_, err := cmds.UploadImage(ctx, commands.UploadImageCommand{File: uploadInput("image/gif", 1024)})
		assert.True(t, errs.Is(err, commands.ErrUnsupportedImageType))
	})

	t.Run("rejects oversized files", func(t *testing.T) {
		_, _, cmds := setup(t)
		_, err := cmds.UploadImage(ctx, commands.UploadImageCommand{File: uploadInput("image/jpeg", maxUpload+1)})
		assert.True(t, errs.Is(err, commands.ErrImageTooLarge))
	})

	t.Run("storage failure", func(t *testing.T) {
		storage, _, cmds := setup(t)
		storage.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(nil, errors.New("cloudinary: 500"))

		_, err := cmds.UploadImage(ctx, commands.UploadImageCommand{File: uploadInput("image/jpeg", 1024)})
		assert.True(t, errs.Is(err, commands.ErrUploadFailed))
	})
}
