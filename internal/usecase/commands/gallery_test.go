//go:build unit

package commands_test

import (
	"context"
	"testing"

	"villa-booking/internal/infra/memstore"
	"villa-booking/internal/pkg/clock"
	"villa-booking/internal/pkg/errs"
	"villa-booking/internal/usecase/commands"
	"villa-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryCommands(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	cmds := commands.NewGalleryCommands(memstore.NewUoW(store), clock.NewMockClock(builder.FixedNow))
	reads := memstore.NewGalleryReadStore(store)

	id, err := cmds.Create(ctx, builder.NewGalleryBuilder().BuildRequest())
	require.NoError(t, err)

	active, err := cmds.Toggle(ctx, id)
	require.NoError(t, err)
	assert.False(t, active)

	items, err := reads.List(ctx, true, 20)
	require.NoError(t, err)
	assert.Empty(t, items)

	req := builder.NewGalleryBuilder().With(func(g *builder.GalleryBuilder) { g.Title = "Garden" }).BuildRequest()
	require.NoError(t, cmds.Update(ctx, id, req))
	view, err := reads.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Garden", view.Title)
	assert.True(t, view.IsActive)

	require.NoError(t, cmds.Delete(ctx, id))
	err = cmds.Delete(ctx, id)
	assert.True(t, errs.Is(err, commands.ErrGalleryItemNotFound))

	_, err = cmds.Toggle(ctx, uuid.New())
	assert.True(t, errs.Is(err, commands.ErrGalleryItemNotFound))

	_, err = cmds.Create(ctx, builder.NewGalleryBuilder().With(func(g *builder.GalleryBuilder) { g.Title = " " }).BuildRequest())
	assert.True(t, errs.Is(err, commands.ErrInvalidGalleryItem))
}
