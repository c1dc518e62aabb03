package readstore

import (
	"context"
	"time"

	"villa-booking/internal/infra"
	sqlc "villa-booking/internal/infra/sqlc/generated"
	"villa-booking/internal/pkg/pgconv"
	"villa-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	ListReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsParams) ([]sqlc.ListReservationsRow, error)
	CountReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.CountReservationsParams) (int64, error)
	ListActiveReservationsByVilla(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveReservationsByVillaParams) ([]sqlc.ListActiveReservationsByVillaRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	view := toBookingView(sqlc.ListReservationsRow(row))
	return &view, nil
}

func (r *ReservationReadStore) List(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingView, int64, error) {
	offset, err := queries.RowOffset(filter.Page, filter.Limit)
	if err != nil {
		return nil, 0, err
	}
	status := pgconv.StringPtrToPgtype(filter.Status)
	villaID := pgconv.UUIDPtrToPgtype(filter.VillaID)

	total, err := r.queries.CountReservations(ctx, r.db, sqlc.CountReservationsParams{
		Status:  status,
		VillaID: villaID,
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count reservations", err)
	}

	rows, err := r.queries.ListReservations(ctx, r.db, sqlc.ListReservationsParams{
		Status:    status,
		VillaID:   villaID,
		RowLimit:  int32(filter.Limit), // #nosec G115 -- clamped by queries.ValidateLimit
		RowOffset: int32(offset),       // #nosec G115 -- bounded by queries.MaxRowOffset
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list reservations", err)
	}

	out := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		view := toBookingView(row)
		out = append(out, &view)
	}
	return out, total, nil
}

func (r *ReservationReadStore) ListBookedRanges(ctx context.Context, villaID uuid.UUID, from, to time.Time) ([]queries.BookedRange, error) {
	rows, err := r.queries.ListActiveReservationsByVilla(ctx, r.db, sqlc.ListActiveReservationsByVillaParams{
		VillaID:  villaID,
		FromDate: pgconv.DateToPgtype(from),
		ToDate:   pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked ranges", err)
	}

	out := make([]queries.BookedRange, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.BookedRange{
			ReservationID: row.ID,
			CheckIn:       pgconv.DateFromPgtype(row.CheckIn),
			CheckOut:      pgconv.DateFromPgtype(row.CheckOut),
			Status:        row.Status,
		})
	}
	return out, nil
}

func toBookingView(row sqlc.ListReservationsRow) queries.BookingView {
	return queries.BookingView{
		ID:              row.ID,
		VillaID:         row.VillaID,
		VillaTitle:      row.VillaTitle,
		VillaSlug:       row.VillaSlug,
		GuestName:       row.GuestName,
		GuestEmail:      row.GuestEmail,
		GuestPhone:      row.GuestPhone,
		CheckIn:         pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:        pgconv.DateFromPgtype(row.CheckOut),
		GuestsCount:     row.GuestsCount,
		ExtraBedCount:   row.ExtraBedCount,
		ExtraBedPrice:   row.ExtraBedPrice,
		ExtraBedTotal:   row.ExtraBedTotal,
		TotalNights:     row.TotalNights.Int32,
		TotalPrice:      row.TotalPrice,
		SpecialRequests: row.SpecialRequests,
		BookingSource:   row.BookingSource,
		Status:          row.Status,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
