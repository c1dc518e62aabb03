package memstore

import (
	"bytes"
	"context"
	"sort"
	"time"

	"villa-booking/internal/domain/reservation"
	"villa-booking/internal/infra"
	"villa-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type reservationRepo struct {
	tx *memTx
}

func (r *reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	rec := reservationRecordOf(res)
	return r.tx.write(func(s *Store) (func(*Store), error) {
		if _, ok := s.reservations[rec.id]; ok {
			return nil, infra.NewRepoErr(infra.KindDuplicateKey, "reservation id already exists")
		}
		if _, ok := s.villas[rec.villaID]; !ok {
			return nil, infra.NewRepoErr(infra.KindForeignKeyViolated, "villa does not exist")
		}
		if s.overlapsBlocking(rec) {
			return nil, infra.NewRepoErr(infra.KindConflict, "stay overlaps an active reservation")
		}
		s.reservations[rec.id] = rec
		return func(s *Store) { delete(s.reservations, rec.id) }, nil
	})
}

func (r *reservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	rec := reservationRecordOf(res)
	return r.tx.write(func(s *Store) (func(*Store), error) {
		prev, ok := s.reservations[rec.id]
		if !ok {
			return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
		}
		// status and source only change through their own statements
		rec.status = prev.status
		rec.source = prev.source
		rec.createdAt = prev.createdAt
		if s.overlapsBlocking(rec) {
			return nil, infra.NewRepoErr(infra.KindConflict, "stay overlaps an active reservation")
		}
		s.reservations[rec.id] = rec
		return func(s *Store) { s.reservations[prev.id] = prev }, nil
	})
}

func (r *reservationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status reservation.Status, updatedAt time.Time) error {
	return r.tx.write(func(s *Store) (func(*Store), error) {
		prev, ok := s.reservations[id]
		if !ok {
			return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
		}
		next := prev
		next.status = status
		next.updatedAt = updatedAt
		if s.overlapsBlocking(next) {
			return nil, infra.NewRepoErr(infra.KindConflict, "stay overlaps an active reservation")
		}
		s.reservations[id] = next
		return func(s *Store) { s.reservations[id] = prev }, nil
	})
}

func (r *reservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.tx.write(func(s *Store) (func(*Store), error) {
		prev, ok := s.reservations[id]
		if !ok {
			return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
		}
		delete(s.reservations, id)
		return func(s *Store) { s.reservations[id] = prev }, nil
	})
}

func (r *reservationRepo) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	var (
		rec reservationRecord
		ok  bool
	)
	r.tx.read(func(s *Store) { rec, ok = s.reservations[id] })
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return rec.toDomain()
}

func (r *reservationRepo) FindActiveByVilla(_ context.Context, villaID uuid.UUID, window reservation.Stay) ([]reservation.Occupancy, error) {
	var out []reservation.Occupancy
	r.tx.read(func(s *Store) {
		for _, rec := range s.activeByVilla(villaID, window) {
			out = append(out, reservation.Occupancy{ReservationID: rec.id, Stay: rec.stay, Status: rec.status})
		}
	})
	return out, nil
}

// overlapsBlocking mirrors the reservations_no_overlap exclusion constraint. Caller holds s.mu.
func (s *Store) overlapsBlocking(rec reservationRecord) bool {
	if !rec.status.Blocks() {
		return false
	}
	for id, other := range s.reservations {
		if id == rec.id || other.villaID != rec.villaID || !other.status.Blocks() {
			continue
		}
		if other.stay.Overlaps(rec.stay) {
			return true
		}
	}
	return false
}

// activeByVilla returns blocking reservations overlapping window, ordered by check-in then id.
// Caller holds s.mu.
func (s *Store) activeByVilla(villaID uuid.UUID, window reservation.Stay) []reservationRecord {
	var out []reservationRecord
	for _, rec := range s.reservations {
		if rec.villaID == villaID && rec.status.Blocks() && rec.stay.Overlaps(window) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].stay.CheckIn().Equal(out[j].stay.CheckIn()) {
			return out[i].stay.CheckIn().Before(out[j].stay.CheckIn())
		}
		return bytes.Compare(out[i].id[:], out[j].id[:]) < 0
	})
	return out
}

func reservationRecordOf(res *reservation.Reservation) reservationRecord {
	guest := res.Guest()
	beds := res.ExtraBeds()
	return reservationRecord{
		id:              res.ID(),
		villaID:         res.VillaID(),
		guestName:       guest.Name(),
		guestEmail:      guest.Email(),
		guestPhone:      guest.Phone(),
		stay:            res.Stay(),
		guestsCount:     res.GuestsCount(),
		extraBedCount:   beds.Count(),
		extraBedPrice:   beds.Price(),
		extraBedTotal:   res.ExtraBedTotal(),
		totalPrice:      res.TotalPrice(),
		specialRequests: res.SpecialRequests().String(),
		source:          res.Source().String(),
		status:          res.Status(),
		createdAt:       res.CreatedAt(),
		updatedAt:       res.UpdatedAt(),
	}
}

func (rec reservationRecord) toDomain() (*reservation.Reservation, error) {
	beds, err := reservation.NewExtraBeds(rec.extraBedCount, rec.extraBedPrice)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		rec.id,
		rec.villaID,
		reservation.ReconstructGuest(rec.guestName, rec.guestEmail, rec.guestPhone),
		rec.stay,
		rec.guestsCount,
		beds,
		rec.extraBedTotal,
		rec.totalPrice,
		reservation.ReconstructSpecialRequests(rec.specialRequests),
		reservation.Source(rec.source),
		rec.status,
		rec.createdAt,
		rec.updatedAt,
	), nil
}

type ReservationReadStore struct {
	store *Store
}

func NewReservationReadStore(store *Store) *ReservationReadStore {
	return &ReservationReadStore{store: store}
}

func (r *ReservationReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.reservations[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return r.store.bookingView(rec), nil
}

func (r *ReservationReadStore) List(_ context.Context, filter queries.BookingFilter) ([]*queries.BookingView, int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]reservationRecord, 0, len(r.store.reservations))
	for _, rec := range r.store.reservations {
		if filter.Status != nil && rec.status.String() != *filter.Status {
			continue
		}
		if filter.VillaID != nil && rec.villaID != *filter.VillaID {
			continue
		}
		matched = append(matched, rec)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].createdAt.Equal(matched[j].createdAt) {
			return matched[i].createdAt.After(matched[j].createdAt)
		}
		return bytes.Compare(matched[i].id[:], matched[j].id[:]) > 0
	})

	total := int64(len(matched))
	start, err := queries.RowOffset(filter.Page, filter.Limit)
	if err != nil {
		return nil, 0, err
	}
	if start >= len(matched) {
		return []*queries.BookingView{}, total, nil
	}
	end := min(start+filter.Limit, len(matched))

	out := make([]*queries.BookingView, 0, end-start)
	for _, rec := range matched[start:end] {
		out = append(out, r.store.bookingView(rec))
	}
	return out, total, nil
}

func (r *ReservationReadStore) ListBookedRanges(_ context.Context, villaID uuid.UUID, from, to time.Time) ([]queries.BookedRange, error) {
	window, err := reservation.NewStay(from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booked range window", err)
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	recs := r.store.activeByVilla(villaID, window)
	out := make([]queries.BookedRange, 0, len(recs))
	for _, rec := range recs {
		out = append(out, queries.BookedRange{
			ReservationID: rec.id,
			CheckIn:       rec.stay.CheckIn(),
			CheckOut:      rec.stay.CheckOut(),
			Status:        rec.status.String(),
		})
	}
	return out, nil
}

// caller holds s.mu
func (s *Store) bookingView(rec reservationRecord) *queries.BookingView {
	v := s.villas[rec.villaID]
	return &queries.BookingView{
		ID:              rec.id,
		VillaID:         rec.villaID,
		VillaTitle:      v.attrs.Title,
		VillaSlug:       v.attrs.Slug,
		GuestName:       rec.guestName,
		GuestEmail:      rec.guestEmail,
		GuestPhone:      rec.guestPhone,
		CheckIn:         rec.stay.CheckIn(),
		CheckOut:        rec.stay.CheckOut(),
		GuestsCount:     int32(rec.guestsCount),   // #nosec G115
		ExtraBedCount:   int32(rec.extraBedCount), // #nosec G115
		ExtraBedPrice:   rec.extraBedPrice,
		ExtraBedTotal:   rec.extraBedTotal,
		TotalNights:     int32(rec.stay.Nights()), // #nosec G115
		TotalPrice:      rec.totalPrice,
		SpecialRequests: rec.specialRequests,
		BookingSource:   rec.source,
		Status:          rec.status.String(),
		CreatedAt:       rec.createdAt,
		UpdatedAt:       rec.updatedAt,
	}
}
