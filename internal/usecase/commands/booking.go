package commands

import (
	"context"
	"log/slog"
	"time"

	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/domain/reservation"
	"villa-booking/internal/domain/villa"
	reqdto "villa-booking/internal/handler/dto/request"
	"villa-booking/internal/infra"
	"villa-booking/internal/pkg/errs"
	"villa-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidBooking          = errs.New("invalid booking")
	ErrVillaNotBookable        = errs.New("villa not found or not available")
	ErrUnavailable             = errs.New("villa is not available for the selected dates")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBookingDeleteBlocked    = errs.New("pending or confirmed bookings cannot be deleted")
	ErrNothingToUpdate         = errs.New("no fields to update")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const notificationKindEmail = "email"

// Origin tells public website bookings apart from bookings entered by staff.
type Origin int

const (
	OriginPublic Origin = iota
	OriginAdmin
)

type CreateBookingResult struct {
	BookingID   uuid.UUID
	VillaName   string
	TotalNights int
	TotalPrice  int64
	Status      string
}

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest, origin Origin) (*CreateBookingResult, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest) error
	ChangeStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow               shared.UnitOfWork
	services          *reservation.Services
	notificationTopic string
}

func NewBookingCommands(uow shared.UnitOfWork, services *reservation.Services, notificationTopic string) BookingCommands {
	return &bookingCommandsImpl{
		uow:               uow,
		services:          services,
		notificationTopic: notificationTopic,
	}
}

type bookingCreatedPayload struct {
	BookingID  uuid.UUID `json:"booking_id"`
	VillaID    uuid.UUID `json:"villa_id"`
	VillaName  string    `json:"villa_name"`
	GuestName  string    `json:"guest_name"`
	GuestEmail string    `json:"guest_email"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	TotalPrice int64     `json:"total_price"`
	Source     string    `json:"booking_source"`
}

// Create prices the stay and reserves it. The villa row stays locked from the availability
// check until the insert commits, so two overlapping requests cannot both succeed.
func (b *bookingCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest, origin Origin) (*CreateBookingResult, error) {
	if origin == OriginPublic {
		req.BookingSource = reservation.SourceWebsite.String()
		req.Status = ""
		req.ExtraBedCount = 0
		req.ExtraBedPrice = 0
	} else if req.BookingSource == "" {
		req.BookingSource = reservation.SourceAdmin.String()
	}

	draft, err := req.ToDraft()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}

	var (
		res       *reservation.Reservation
		villaName string
	)
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := tx.Villas().LockForBooking(ctx, req.VillaID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVillaNotBookable
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		villaName = v.Title()

		res, err = reservation.NewReservation(b.services, villaSpecOf(v), draft)
		if err != nil {
			if errs.Is(err, reservation.ErrVillaInactive) {
				return errs.Mark(err, ErrVillaNotBookable)
			}
			return errs.Mark(err, ErrInvalidBooking)
		}

		if err := b.ensureAvailable(ctx, tx, res, uuid.Nil); err != nil {
			return err
		}

		if err := tx.Reservations().Create(ctx, res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrUnavailable
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return b.enqueueCreated(ctx, tx, res, villaName)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Booking created",
		slog.String("booking_id", res.ID().String()),
		slog.String("villa_id", res.VillaID().String()),
		slog.String("stay", res.Stay().String()),
		slog.Int64("total_price", res.TotalPrice()),
		slog.String("source", res.Source().String()))

	return &CreateBookingResult{
		BookingID:   res.ID(),
		VillaName:   villaName,
		TotalNights: res.Nights(),
		TotalPrice:  res.TotalPrice(),
		Status:      res.Status().String(),
	}, nil
}

func (b *bookingCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest) error {
	if req.IsEmpty() {
		return ErrNothingToUpdate
	}

	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := b.findBooking(ctx, tx, id)
		if err != nil {
			return err
		}

		v, err := tx.Villas().LockForBooking(ctx, res.VillaID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		changes, err := req.ToChanges(res)
		if err != nil {
			return errs.Mark(err, ErrInvalidBooking)
		}
		before := res.Stay()
		if err := res.Apply(b.services, villaSpecOf(v), changes); err != nil {
			return errs.Mark(err, ErrInvalidBooking)
		}

		if !res.Stay().Equal(before) {
			if err := b.ensureAvailable(ctx, tx, res, res.ID()); err != nil {
				return err
			}
		}

		if err := tx.Reservations().Update(ctx, res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrUnavailable
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (b *bookingCommandsImpl) ChangeStatus(ctx context.Context, id uuid.UUID, status string) error {
	next, err := reservation.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrInvalidBooking)
	}

	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := b.findBooking(ctx, tx, id)
		if err != nil {
			return err
		}
		prev := res.Status()
		if err := res.TransitionTo(next, b.services.Clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidBooking)
		}
		if err := tx.Reservations().UpdateStatus(ctx, id, res.Status(), res.UpdatedAt()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		slog.InfoContext(ctx, "Booking status changed",
			slog.String("booking_id", id.String()),
			slog.String("from", prev.String()),
			slog.String("to", next.String()))
		return nil
	})
}

// Delete removes a booking that no longer holds its dates.
func (b *bookingCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := b.findBooking(ctx, tx, id)
		if err != nil {
			return err
		}
		if res.Status().Blocks() {
			return ErrBookingDeleteBlocked
		}
		if err := tx.Reservations().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (b *bookingCommandsImpl) findBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := tx.Reservations().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return res, nil
}

// ensureAvailable must run while the villa's booking lock is held. self is excluded from the
// check when an existing booking is being moved.
func (b *bookingCommandsImpl) ensureAvailable(ctx context.Context, tx shared.Tx, res *reservation.Reservation, self uuid.UUID) error {
	existing, err := tx.Reservations().FindActiveByVilla(ctx, res.VillaID(), res.Stay())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if self != uuid.Nil {
		existing = reservation.Without(existing, self)
	}
	if conflict, found := reservation.FirstConflict(res.Stay(), existing); found {
		slog.InfoContext(ctx, "Booking rejected: dates taken",
			slog.String("villa_id", res.VillaID().String()),
			slog.String("requested", res.Stay().String()),
			slog.String("conflicts_with", conflict.ReservationID.String()),
			slog.String("conflicting_stay", conflict.Stay.String()))
		return ErrUnavailable
	}
	return nil
}

func (b *bookingCommandsImpl) enqueueCreated(ctx context.Context, tx shared.Tx, res *reservation.Reservation, villaName string) error {
	job, err := shared.NewNotificationJob(notificationKindEmail, b.notificationTopic, bookingCreatedPayload{
		BookingID:  res.ID(),
		VillaID:    res.VillaID(),
		VillaName:  villaName,
		GuestName:  res.Guest().Name(),
		GuestEmail: res.Guest().Email(),
		CheckIn:    pricing.FormatDate(res.Stay().CheckIn()),
		CheckOut:   pricing.FormatDate(res.Stay().CheckOut()),
		TotalPrice: res.TotalPrice(),
		Source:     res.Source().String(),
	}, b.now())
	if err != nil {
		return err
	}
	if err := tx.Notifications().Enqueue(ctx, job); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (b *bookingCommandsImpl) now() time.Time {
	return b.services.Clock.Now()
}

func villaSpecOf(v *villa.Villa) reservation.VillaSpec {
	return reservation.VillaSpec{
		ID:        v.ID(),
		Title:     v.Title(),
		MaxGuests: v.MaxGuests(),
		Active:    v.IsActive(),
		Pricing:   v.Pricing(),
	}
}
