package converter

import (
	"villa-booking/internal/domain/reservation"
	sqlc "villa-booking/internal/infra/sqlc/generated"
	"villa-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	guest := res.Guest()
	stay := res.Stay()
	beds := res.ExtraBeds()
	return sqlc.CreateReservationParams{
		ID:              res.ID(),
		VillaID:         res.VillaID(),
		GuestName:       guest.Name(),
		GuestEmail:      guest.Email(),
		GuestPhone:      guest.Phone(),
		CheckIn:         pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut:        pgconv.DateToPgtype(stay.CheckOut()),
		GuestsCount:     int32(res.GuestsCount()), // #nosec G115 -- bounded by villa capacity
		ExtraBedCount:   int32(beds.Count()),      // #nosec G115
		ExtraBedPrice:   beds.Price(),
		ExtraBedTotal:   res.ExtraBedTotal(),
		TotalPrice:      res.TotalPrice(),
		SpecialRequests: res.SpecialRequests().String(),
		BookingSource:   res.Source().String(),
		Status:          res.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) sqlc.UpdateReservationParams {
	c := ReservationToCreateParams(res)
	return sqlc.UpdateReservationParams{
		GuestName:       c.GuestName,
		GuestEmail:      c.GuestEmail,
		GuestPhone:      c.GuestPhone,
		CheckIn:         c.CheckIn,
		CheckOut:        c.CheckOut,
		GuestsCount:     c.GuestsCount,
		ExtraBedCount:   c.ExtraBedCount,
		ExtraBedPrice:   c.ExtraBedPrice,
		ExtraBedTotal:   c.ExtraBedTotal,
		TotalPrice:      c.TotalPrice,
		SpecialRequests: c.SpecialRequests,
		UpdatedAt:       c.UpdatedAt,
		ID:              c.ID,
	}
}

func StayFromPgtype(checkIn, checkOut pgtype.Date) (reservation.Stay, error) {
	return reservation.NewStay(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut))
}

func ReservationFromRow(row sqlc.GetReservationByIDRow) (*reservation.Reservation, error) {
	stay, err := StayFromPgtype(row.CheckIn, row.CheckOut)
	if err != nil {
		return nil, err
	}
	beds, err := reservation.NewExtraBeds(int(row.ExtraBedCount), row.ExtraBedPrice)
	if err != nil {
		return nil, err
	}
	status, err := reservation.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	source, err := reservation.NewSource(row.BookingSource)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		row.ID,
		row.VillaID,
		reservation.ReconstructGuest(row.GuestName, row.GuestEmail, row.GuestPhone),
		stay,
		int(row.GuestsCount),
		beds,
		row.ExtraBedTotal,
		row.TotalPrice,
		reservation.ReconstructSpecialRequests(row.SpecialRequests),
		source,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func OccupancyFromRow(id uuid.UUID, checkIn, checkOut pgtype.Date, status string) (reservation.Occupancy, error) {
	stay, err := StayFromPgtype(checkIn, checkOut)
	if err != nil {
		return reservation.Occupancy{}, err
	}
	st, err := reservation.NewStatus(status)
	if err != nil {
		return reservation.Occupancy{}, err
	}
	return reservation.Occupancy{ReservationID: id, Stay: stay, Status: st}, nil
}
