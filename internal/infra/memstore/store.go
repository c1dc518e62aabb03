// Package memstore keeps every aggregate in process memory. It implements the same
// repository and read store contracts as the Postgres backend and is selected with
// STORE_BACKEND=memory.
package memstore

import (
	"sync"
	"time"

	"villa-booking/internal/domain/gallery"
	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/domain/reservation"
	"villa-booking/internal/domain/villa"
	"villa-booking/internal/pkg/keylock"
	"villa-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type villaRecord struct {
	id        uuid.UUID
	attrs     villa.Attributes
	createdAt time.Time
	updatedAt time.Time
}

type reservationRecord struct {
	id              uuid.UUID
	villaID         uuid.UUID
	guestName       string
	guestEmail      string
	guestPhone      string
	stay            reservation.Stay
	guestsCount     int
	extraBedCount   int
	extraBedPrice   int64
	extraBedTotal   int64
	totalPrice      int64
	specialRequests string
	source          string
	status          reservation.Status
	createdAt       time.Time
	updatedAt       time.Time
}

type galleryRecord struct {
	id        uuid.UUID
	attrs     gallery.Attributes
	createdAt time.Time
	updatedAt time.Time
}

type userRecord struct {
	id           uuid.UUID
	username     string
	email        string
	passwordHash string
	role         string
	isActive     bool
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// Store is safe for concurrent use. Writers take mu briefly per statement; booking
// attempts for one villa are serialised by bookingLocks for a whole unit of work.
type Store struct {
	mu           sync.RWMutex
	villas       map[uuid.UUID]villaRecord
	reservations map[uuid.UUID]reservationRecord
	gallery      map[uuid.UUID]galleryRecord
	users        map[uuid.UUID]userRecord
	jobs         []shared.NotificationJob

	bookingLocks *keylock.Locker[uuid.UUID]
}

func New() *Store {
	return &Store{
		villas:       make(map[uuid.UUID]villaRecord),
		reservations: make(map[uuid.UUID]reservationRecord),
		gallery:      make(map[uuid.UUID]galleryRecord),
		users:        make(map[uuid.UUID]userRecord),
		bookingLocks: keylock.New[uuid.UUID](),
	}
}

// Jobs returns a copy of the queued notification jobs.
func (s *Store) Jobs() []shared.NotificationJob {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]shared.NotificationJob, len(s.jobs))
	copy(out, s.jobs)
	return out
}

func cloneAttrs(a villa.Attributes) villa.Attributes {
	a.Amenities = append([]villa.Amenity(nil), a.Amenities...)
	a.Features = append([]string(nil), a.Features...)
	a.Images = append([]villa.Image(nil), a.Images...)
	a.Pricing = clonePricing(a.Pricing)
	return a
}

func clonePricing(p pricing.Profile) pricing.Profile {
	return pricing.Profile{
		WeekdayRate:    cloneInt64(p.WeekdayRate),
		WeekendRate:    cloneInt64(p.WeekendRate),
		HighSeasonRate: cloneInt64(p.HighSeasonRate),
	}
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
