package reservation

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
)

// Occupancy is the minimal view of an existing reservation needed for conflict checks.
type Occupancy struct {
	ReservationID uuid.UUID
	Stay          Stay
	Status        Status
}

func HasConflict(candidate Stay, existing []Occupancy) bool {
	for _, o := range existing {
		if o.Status.Blocks() && o.Stay.Overlaps(candidate) {
			return true
		}
	}
	return false
}

// FindConflicts returns blocking reservations overlapping candidate, earliest check-in first.
func FindConflicts(candidate Stay, existing []Occupancy) []Occupancy {
	var out []Occupancy
	for _, o := range existing {
		if o.Status.Blocks() && o.Stay.Overlaps(candidate) {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.Stay.CheckIn().Equal(b.Stay.CheckIn()) {
			return a.Stay.CheckIn().Before(b.Stay.CheckIn())
		}
		return bytes.Compare(a.ReservationID[:], b.ReservationID[:]) < 0
	})
	return out
}

func FirstConflict(candidate Stay, existing []Occupancy) (Occupancy, bool) {
	conflicts := FindConflicts(candidate, existing)
	if len(conflicts) == 0 {
		return Occupancy{}, false
	}
	return conflicts[0], true
}

// Without drops the reservation being edited so it does not conflict with itself.
func Without(existing []Occupancy, id uuid.UUID) []Occupancy {
	out := make([]Occupancy, 0, len(existing))
	for _, o := range existing {
		if o.ReservationID != id {
			out = append(out, o)
		}
	}
	return out
}
