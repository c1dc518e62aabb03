package commands

import (
	"context"

	"villa-booking/internal/domain/gallery"
	reqdto "villa-booking/internal/handler/dto/request"
	"villa-booking/internal/infra"
	"villa-booking/internal/pkg/clock"
	"villa-booking/internal/pkg/errs"
	"villa-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrGalleryItemNotFound = errs.New("gallery item not found")
	ErrInvalidGalleryItem  = errs.New("invalid gallery item")
)

type GalleryCommands interface {
	Create(ctx context.Context, req reqdto.GalleryRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.GalleryRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	Toggle(ctx context.Context, id uuid.UUID) (bool, error)
}

type galleryCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewGalleryCommands(uow shared.UnitOfWork, clk clock.Clock) GalleryCommands {
	return &galleryCommandsImpl{uow: uow, clock: clk}
}

func (g *galleryCommandsImpl) Create(ctx context.Context, req reqdto.GalleryRequest) (uuid.UUID, error) {
	item, err := gallery.NewItem(req.ToAttributes(), g.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidGalleryItem)
	}
	err = g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapGalleryWriteErr(tx.Gallery().Create(ctx, item))
	})
	if err != nil {
		return uuid.Nil, err
	}
	return item.ID(), nil
}

func (g *galleryCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.GalleryRequest) error {
	return g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := g.find(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := item.Update(req.ToAttributes(), g.clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidGalleryItem)
		}
		return mapGalleryWriteErr(tx.Gallery().Update(ctx, item))
	})
}

func (g *galleryCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapGalleryWriteErr(tx.Gallery().Delete(ctx, id))
	})
}

// Toggle flips visibility and returns the new value.
func (g *galleryCommandsImpl) Toggle(ctx context.Context, id uuid.UUID) (bool, error) {
	var active bool
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := g.find(ctx, tx, id)
		if err != nil {
			return err
		}
		active = item.Toggle(g.clock.Now())
		return mapGalleryWriteErr(tx.Gallery().Update(ctx, item))
	})
	return active, err
}

func (g *galleryCommandsImpl) find(ctx context.Context, tx shared.Tx, id uuid.UUID) (*gallery.Item, error) {
	item, err := tx.Gallery().FindByID(ctx, id)
	if err != nil {
		return nil, mapGalleryWriteErr(err)
	}
	return item, nil
}

func mapGalleryWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return ErrGalleryItemNotFound
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
