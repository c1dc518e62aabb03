package memstore

import (
	"context"
	"slices"

	"villa-booking/internal/usecase/shared"
)

type notificationRepo struct {
	tx *memTx
}

func (r *notificationRepo) Enqueue(_ context.Context, job shared.NotificationJob) error {
	job.Payload = slices.Clone(job.Payload)
	return r.tx.write(func(s *Store) (func(*Store), error) {
		n := len(s.jobs)
		s.jobs = append(s.jobs, job)
		return func(s *Store) { s.jobs = s.jobs[:n] }, nil
	})
}
