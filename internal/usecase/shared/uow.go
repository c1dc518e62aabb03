package shared

import (
	"context"
	"encoding/json"
	"time"

	"villa-booking/internal/domain/gallery"
	"villa-booking/internal/domain/reservation"
	"villa-booking/internal/domain/user"
	"villa-booking/internal/domain/villa"
	"villa-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: write transaction; repositories taken from tx are bound to it and
	// every change is discarded when fn returns an error
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Villas() VillaRepository
	Reservations() ReservationRepository
	Gallery() GalleryRepository
	Notifications() NotificationRepository
	Users() UserRepository
}

type VillaRepository interface {
	Create(ctx context.Context, v *villa.Villa) error
	Update(ctx context.Context, v *villa.Villa) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status villa.Status, updatedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*villa.Villa, error)
	// LockForBooking loads the villa and holds its booking lock until the transaction ends.
	// Concurrent bookings for the same villa queue up behind it.
	LockForBooking(ctx context.Context, id uuid.UUID) (*villa.Villa, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	Update(ctx context.Context, res *reservation.Reservation) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status, updatedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// FindActiveByVilla returns pending and confirmed stays overlapping window.
	FindActiveByVilla(ctx context.Context, villaID uuid.UUID, window reservation.Stay) ([]reservation.Occupancy, error)
}

type GalleryRepository interface {
	Create(ctx context.Context, item *gallery.Item) error
	Update(ctx context.Context, item *gallery.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*gallery.Item, error)
}

// NotificationJob is an outbox entry: a message that a delivery worker sends once
// the transaction that enqueued it has committed.
type NotificationJob struct {
	Kind    string
	Topic   string
	Payload json.RawMessage
	RunAt   time.Time
}

// NewNotificationJob encodes payload as the job's JSON body.
func NewNotificationJob(kind, topic string, payload any, runAt time.Time) (NotificationJob, error) {
	if kind == "" || topic == "" {
		return NotificationJob{}, errs.New("notification job needs a kind and a topic")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return NotificationJob{}, errs.Wrap(err, "encode notification payload")
	}
	return NotificationJob{Kind: kind, Topic: topic, Payload: body, RunAt: runAt}, nil
}

type NotificationRepository interface {
	Enqueue(ctx context.Context, job NotificationJob) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
	Count(ctx context.Context) (int64, error)
}
