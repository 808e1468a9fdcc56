package usecase

import (
	"log/slog"
	"sync"

	"hotel-reservations/internal/domain/customer"
	"hotel-reservations/internal/domain/hotel"
	"hotel-reservations/internal/domain/reservation"
	"hotel-reservations/internal/infra/converter"
	"hotel-reservations/internal/infra/jsonstore"
	"hotel-reservations/internal/infra/record"
	"hotel-reservations/internal/pkg/clock"
	"hotel-reservations/internal/pkg/errs"

	"github.com/google/uuid"
)

// ReserveRoomParams lists every input of the reservation workflow
// explicitly; all fields are required.
type ReserveRoomParams struct {
	Hotel    *hotel.Hotel
	Room     *hotel.Room
	Customer *customer.Customer
	CheckIn  string
	CheckOut string
}

// ReservationsManager owns the reservation collection and coordinates the
// room-status flip with record creation. Cancelling removes the record only;
// releasing the room is a separate HotelsManager.CancelReservation call.
// The two steps are deliberately uncoupled.
type ReservationsManager interface {
	ReserveRoom(p ReserveRoomParams) (*reservation.Reservation, error)
	CancelReservation(id uuid.UUID) error
	ListReservations() []*reservation.Reservation
}

type reservationsManagerImpl struct {
	mu           sync.Mutex
	doc          *jsonstore.Document
	reservations []*reservation.Reservation
	clock        clock.Clock
	logger       *slog.Logger
}

func NewReservationsManager(doc *jsonstore.Document, clk clock.Clock, logger *slog.Logger) (ReservationsManager, error) {
	m := &reservationsManagerImpl{
		doc:    doc,
		clock:  clk,
		logger: logger,
	}
	if err := m.load(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *reservationsManagerImpl) load() error {
	var recs []record.Reservation
	if err := m.doc.Load(&recs); err != nil {
		return errs.Wrap(err, "failed to load reservations document")
	}
	reservations, err := converter.ReservationsFromRecords(recs)
	if err != nil {
		return errs.Wrap(err, "failed to rebuild reservations from document")
	}
	m.reservations = reservations
	return nil
}

func (m *reservationsManagerImpl) save() error {
	recs, err := converter.ReservationsToRecords(m.reservations)
	if err != nil {
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if err := m.doc.Store(recs); err != nil {
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return nil
}

// ReserveRoom proceeds only when the passed room is available: it flips the
// caller's room to reserved, snapshots hotel/customer/room, appends and
// persists. A non-available room returns ErrRoomNotAvailable and leaves the
// room untouched. The room is mutated directly; the manager does not look
// it up inside the hotel.
func (m *reservationsManagerImpl) ReserveRoom(p ReserveRoomParams) (*reservation.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := p.Room.Reserve(); err != nil {
		return nil, errs.Mark(err, errs.ErrRoomNotAvailable)
	}

	res := reservation.NewReservation(p.Hotel, p.Customer, p.Room, p.CheckIn, p.CheckOut, m.clock.Now())
	m.reservations = append(m.reservations, res)
	if err := m.save(); err != nil {
		return nil, err
	}

	m.logger.Info("room reserved",
		"reservation_id", res.ID(),
		"hotel", p.Hotel.Name(),
		"room", p.Room.Number(),
		"customer", p.Customer.Email(),
	)
	return res, nil
}

// CancelReservation removes every reservation with the given id (ids are
// unique by construction, so at most one) and persists. The snapshot room's
// status is NOT reverted here; see the interface note.
func (m *reservationsManagerImpl) CancelReservation(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.reservations[:0]
	for _, res := range m.reservations {
		if res.ID() != id {
			kept = append(kept, res)
		}
	}
	m.reservations = kept
	return m.save()
}

func (m *reservationsManagerImpl) ListReservations() []*reservation.Reservation {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*reservation.Reservation, len(m.reservations))
	copy(out, m.reservations)
	return out
}
