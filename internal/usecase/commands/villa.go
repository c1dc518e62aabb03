package commands

import (
	"context"
	"log/slog"

	"villa-booking/internal/domain/villa"
	reqdto "villa-booking/internal/handler/dto/request"
	"villa-booking/internal/infra"
	"villa-booking/internal/pkg/clock"
	"villa-booking/internal/pkg/errs"
	"villa-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVillaNotFound    = errs.New("villa not found")
	ErrInvalidVilla     = errs.New("invalid villa")
	ErrSlugTaken        = errs.New("slug already in use")
	ErrVillaHasBookings = errs.New("villa still has bookings")
)

type VillaCommands interface {
	Create(ctx context.Context, req reqdto.VillaRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.VillaRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleStatus(ctx context.Context, id uuid.UUID) (villa.Status, error)
	AddImage(ctx context.Context, id uuid.UUID, img villa.Image) error
}

type villaCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.Cache
	clock clock.Clock
}

func NewVillaCommands(uow shared.UnitOfWork, cache shared.Cache, clk clock.Clock) VillaCommands {
	return &villaCommandsImpl{uow: uow, cache: cache, clock: clk}
}

func (v *villaCommandsImpl) Create(ctx context.Context, req reqdto.VillaRequest) (uuid.UUID, error) {
	entity, err := villa.NewVilla(req.ToAttributes(), v.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidVilla)
	}

	err = v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapVillaWriteErr(tx.Villas().Create(ctx, entity))
	})
	if err != nil {
		return uuid.Nil, err
	}

	v.invalidate(ctx)
	slog.InfoContext(ctx, "Villa created", "villa_id", entity.ID(), "slug", entity.Slug().String())
	return entity.ID(), nil
}

func (v *villaCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.VillaRequest) error {
	err := v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := v.find(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := entity.Update(req.ToAttributes(), v.clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidVilla)
		}
		return mapVillaWriteErr(tx.Villas().Update(ctx, entity))
	})
	if err != nil {
		return err
	}
	v.invalidate(ctx)
	return nil
}

// Delete refuses while any booking references the villa, whatever its status.
func (v *villaCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapVillaWriteErr(tx.Villas().Delete(ctx, id))
	})
	if err != nil {
		return err
	}
	v.invalidate(ctx)
	slog.InfoContext(ctx, "Villa deleted", "villa_id", id)
	return nil
}

func (v *villaCommandsImpl) ToggleStatus(ctx context.Context, id uuid.UUID) (villa.Status, error) {
	var next villa.Status
	err := v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := v.find(ctx, tx, id)
		if err != nil {
			return err
		}
		next = entity.ToggleStatus(v.clock.Now())
		return mapVillaWriteErr(tx.Villas().UpdateStatus(ctx, id, next, entity.UpdatedAt()))
	})
	if err != nil {
		return "", err
	}
	v.invalidate(ctx)
	return next, nil
}

func (v *villaCommandsImpl) AddImage(ctx context.Context, id uuid.UUID, img villa.Image) error {
	err := v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := v.find(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := entity.AddImage(img, v.clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidVilla)
		}
		return mapVillaWriteErr(tx.Villas().Update(ctx, entity))
	})
	if err != nil {
		return err
	}
	v.invalidate(ctx)
	return nil
}

func (v *villaCommandsImpl) find(ctx context.Context, tx shared.Tx, id uuid.UUID) (*villa.Villa, error) {
	entity, err := tx.Villas().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVillaNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

// invalidate drops every cached villa read model. A failure only leaves entries to expire by TTL.
func (v *villaCommandsImpl) invalidate(ctx context.Context) {
	if err := v.cache.DeletePrefix(ctx, shared.VillaCachePrefix); err != nil {
		slog.WarnContext(ctx, "villa cache invalidation failed", "error", err.Error())
	}
}

func mapVillaWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return ErrVillaNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, ErrSlugTaken)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, ErrVillaHasBookings)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
