package usecase

import (
	"log/slog"
	"sync"

	"hotel-reservations/internal/domain/hotel"
	"hotel-reservations/internal/infra/converter"
	"hotel-reservations/internal/infra/jsonstore"
	"hotel-reservations/internal/infra/record"
	"hotel-reservations/internal/pkg/errs"
)

// HotelsManager owns the authoritative hotel collection (and transitively
// every room) and is the only component that flips room status directly.
// Its ReserveRoom/CancelReservation pair is the hotel-side status path: it
// never creates or removes a reservation record and must stay distinct from
// the ReservationsManager workflow.
type HotelsManager interface {
	AddHotel(h *hotel.Hotel) error
	GetHotel(name string) (*hotel.Hotel, error)
	RemoveHotel(name string) error
	EditHotel(name, newName, newLocation string) error
	AddRoom(hotelName string, room *hotel.Room) error
	ReserveRoom(h *hotel.Hotel, room *hotel.Room) error
	CancelReservation(h *hotel.Hotel, room *hotel.Room) error
	ListHotels() []*hotel.Hotel
	DisplayHotel(name string)
}

type hotelsManagerImpl struct {
	mu     sync.Mutex
	doc    *jsonstore.Document
	hotels []*hotel.Hotel
	logger *slog.Logger
}

func NewHotelsManager(doc *jsonstore.Document, logger *slog.Logger) (HotelsManager, error) {
	m := &hotelsManagerImpl{
		doc:    doc,
		logger: logger,
	}
	if err := m.load(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *hotelsManagerImpl) load() error {
	var recs []record.Hotel
	if err := m.doc.Load(&recs); err != nil {
		return errs.Wrap(err, "failed to load hotels document")
	}
	hotels, err := converter.HotelsFromRecords(recs)
	if err != nil {
		return errs.Wrap(err, "failed to rebuild hotels from document")
	}
	m.hotels = hotels
	return nil
}

func (m *hotelsManagerImpl) save() error {
	if err := m.doc.Store(converter.HotelsToRecords(m.hotels)); err != nil {
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return nil
}

// AddHotel is a silent no-op when a hotel with the same name already exists
// (first-match check). Nothing is persisted in that case.
func (m *hotelsManagerImpl) AddHotel(h *hotel.Hotel) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.hotels {
		if existing.Name() == h.Name() {
			return nil
		}
	}

	m.hotels = append(m.hotels, h)
	return m.save()
}

func (m *hotelsManagerImpl) GetHotel(name string) (*hotel.Hotel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.findHotel(name)
}

func (m *hotelsManagerImpl) findHotel(name string) (*hotel.Hotel, error) {
	for _, h := range m.hotels {
		if h.Name() == name {
			return h, nil
		}
	}
	return nil, errs.ErrHotelNotFound
}

// RemoveHotel drops every hotel whose name matches.
func (m *hotelsManagerImpl) RemoveHotel(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.hotels[:0]
	for _, h := range m.hotels {
		if h.Name() != name {
			kept = append(kept, h)
		}
	}
	m.hotels = kept
	return m.save()
}

// EditHotel updates name and location on every match; rooms are untouched.
func (m *hotelsManagerImpl) EditHotel(name, newName, newLocation string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, h := range m.hotels {
		if h.Name() == name {
			h.Update(newName, newLocation)
		}
	}
	return m.save()
}

// AddRoom appends a room to the first hotel matching name and persists.
func (m *hotelsManagerImpl) AddRoom(hotelName string, room *hotel.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, err := m.findHotel(hotelName)
	if err != nil {
		return err
	}
	h.AddRoom(room)
	return m.save()
}

// ReserveRoom locates the hotel by name and the room by number within it,
// and flips the status only when the room is currently available. No match,
// or a non-available room, is a silent no-op: no error, no reservation
// record. The passed entities are only used as lookup keys; the manager
// mutates its own copies.
func (m *hotelsManagerImpl) ReserveRoom(h *hotel.Hotel, room *hotel.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, owned := range m.hotels {
		if owned.Name() != h.Name() {
			continue
		}
		for _, r := range owned.Rooms() {
			if r.Number() == room.Number() && r.IsAvailable() {
				if err := r.Reserve(); err != nil {
					return err
				}
			}
		}
	}
	return m.save()
}

// CancelReservation releases the matching rooms unconditionally, regardless
// of their current status.
func (m *hotelsManagerImpl) CancelReservation(h *hotel.Hotel, room *hotel.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, owned := range m.hotels {
		if owned.Name() != h.Name() {
			continue
		}
		for _, r := range owned.Rooms() {
			if r.Number() == room.Number() {
				r.Release()
			}
		}
	}
	return m.save()
}

func (m *hotelsManagerImpl) ListHotels() []*hotel.Hotel {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*hotel.Hotel, len(m.hotels))
	copy(out, m.hotels)
	return out
}

func (m *hotelsManagerImpl) DisplayHotel(name string) {
	h, err := m.GetHotel(name)
	if err != nil {
		m.logger.Info("hotel not found", "name", name)
		return
	}
	m.logger.Info("hotel", "details", h.String(), "rooms", len(h.Rooms()))
}
