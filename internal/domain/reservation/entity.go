package reservation

import (
	"fmt"
	"time"

	"hotel-reservations/internal/domain/customer"
	"hotel-reservations/internal/domain/hotel"

	"github.com/google/uuid"
)

// Snapshot types capture the related entities as they were when the
// reservation was made. They are plain copies, not live references: later
// mutations of the manager-owned entities do not show through.

type RoomSnapshot struct {
	ID     uuid.UUID
	Number string
	Type   hotel.RoomType
	Status hotel.RoomStatus
	Price  float64
}

type HotelSnapshot struct {
	ID       uuid.UUID
	Name     string
	Location string
	Rooms    []RoomSnapshot
}

type CustomerSnapshot struct {
	Name  string
	Email string
}

func SnapshotRoom(r *hotel.Room) RoomSnapshot {
	return RoomSnapshot{
		ID:     r.ID(),
		Number: r.Number(),
		Type:   r.Type(),
		Status: r.Status(),
		Price:  r.Price(),
	}
}

func SnapshotHotel(h *hotel.Hotel) HotelSnapshot {
	rooms := make([]RoomSnapshot, 0, len(h.Rooms()))
	for _, r := range h.Rooms() {
		rooms = append(rooms, SnapshotRoom(r))
	}
	return HotelSnapshot{
		ID:       h.ID(),
		Name:     h.Name(),
		Location: h.Location(),
		Rooms:    rooms,
	}
}

func SnapshotCustomer(c *customer.Customer) CustomerSnapshot {
	return CustomerSnapshot{
		Name:  c.Name(),
		Email: c.Email(),
	}
}

// Reservation references its hotel, customer and room by snapshot. The stay
// interval is carried as opaque strings; no parsing or range validation.
type Reservation struct {
	id        uuid.UUID
	hotel     HotelSnapshot
	customer  CustomerSnapshot
	room      RoomSnapshot
	checkIn   string
	checkOut  string
	createdAt time.Time
}

func NewReservation(h *hotel.Hotel, c *customer.Customer, r *hotel.Room, checkIn, checkOut string, now time.Time) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		hotel:     SnapshotHotel(h),
		customer:  SnapshotCustomer(c),
		room:      SnapshotRoom(r),
		checkIn:   checkIn,
		checkOut:  checkOut,
		createdAt: now,
	}
}

// ReconstructReservation rebuilds a reservation from its persisted snapshot
// form, keeping the stored id.
func ReconstructReservation(
	id uuid.UUID,
	h HotelSnapshot,
	c CustomerSnapshot,
	r RoomSnapshot,
	checkIn, checkOut string,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		hotel:     h,
		customer:  c,
		room:      r,
		checkIn:   checkIn,
		checkOut:  checkOut,
		createdAt: createdAt,
	}
}

func (r *Reservation) String() string {
	return fmt.Sprintf("Reservation for %s at %s from %s to %s",
		r.customer.Name, r.hotel.Name, r.checkIn, r.checkOut)
}

func (r *Reservation) ID() uuid.UUID              { return r.id }
func (r *Reservation) Hotel() HotelSnapshot       { return r.hotel }
func (r *Reservation) Customer() CustomerSnapshot { return r.customer }
func (r *Reservation) Room() RoomSnapshot         { return r.room }
func (r *Reservation) CheckIn() string            { return r.checkIn }
func (r *Reservation) CheckOut() string           { return r.checkOut }
func (r *Reservation) CreatedAt() time.Time       { return r.createdAt }
