package memstore

import (
	"context"
	"log/slog"

	"villa-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type UoW struct {
	store *Store
}

func NewUoW(store *Store) shared.UnitOfWork {
	return &UoW{store: store}
}

// Within applies writes as they happen and keeps an undo log; when fn fails or panics the
// log is replayed in reverse before any booking lock is released.
func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{store: u.store, locked: make(map[uuid.UUID]struct{})}
	defer tx.unlockAll()
	defer func() {
		if p := recover(); p != nil {
			tx.rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

type memTx struct {
	store   *Store
	undo    []func()
	locked  map[uuid.UUID]struct{}
	release []func()
}

func (t *memTx) Villas() shared.VillaRepository {
	return &villaRepo{tx: t}
}

func (t *memTx) Reservations() shared.ReservationRepository {
	return &reservationRepo{tx: t}
}

func (t *memTx) Gallery() shared.GalleryRepository {
	return &galleryRepo{tx: t}
}

func (t *memTx) Notifications() shared.NotificationRepository {
	return &notificationRepo{tx: t}
}

func (t *memTx) Users() shared.UserRepository {
	return &userRepo{tx: t}
}

// write runs fn under the store lock; fn returns the undo step for its change.
func (t *memTx) write(fn func(s *Store) (func(s *Store), error)) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	undo, err := fn(t.store)
	if err != nil {
		return err
	}
	if undo != nil {
		t.undo = append(t.undo, func() { undo(t.store) })
	}
	return nil
}

func (t *memTx) read(fn func(s *Store)) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	fn(t.store)
}

func (t *memTx) lockVilla(ctx context.Context, id uuid.UUID) error {
	if _, ok := t.locked[id]; ok {
		return nil
	}
	unlock, err := t.store.bookingLocks.Lock(ctx, id)
	if err != nil {
		return err
	}
	t.locked[id] = struct{}{}
	t.release = append(t.release, unlock)
	return nil
}

func (t *memTx) rollback() {
	if len(t.undo) == 0 {
		return
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	slog.Debug("memstore transaction rolled back", slog.Int("steps", len(t.undo)))
	t.undo = nil
}

func (t *memTx) unlockAll() {
	for i := len(t.release) - 1; i >= 0; i-- {
		t.release[i]()
	}
	t.release = nil
}
