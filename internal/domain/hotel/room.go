package hotel

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrNegativeRoomPrice = errors.New("room price cannot be negative")
	ErrRoomNotAvailable  = errors.New("room is not available")
	ErrUnknownRoomType   = errors.New("unknown room type")
	ErrUnknownRoomStatus = errors.New("unknown room status")
)

// Room is owned by exactly one Hotel and has no backing document of its own.
type Room struct {
	id     uuid.UUID
	number string
	typ    RoomType
	status RoomStatus
	price  float64
}

func NewRoom(number string, typ RoomType, status RoomStatus, price float64) (*Room, error) {
	if price < 0 {
		return nil, ErrNegativeRoomPrice
	}

	return &Room{
		id:     uuid.New(),
		number: number,
		typ:    typ,
		status: status,
		price:  price,
	}, nil
}

// ReconstructRoom rebuilds a room from its persisted form. The backing
// document is trusted, so the price is not re-validated here.
func ReconstructRoom(id uuid.UUID, number string, typ RoomType, status RoomStatus, price float64) *Room {
	return &Room{
		id:     id,
		number: number,
		typ:    typ,
		status: status,
		price:  price,
	}
}

// Reserve flips an available room to reserved. Any other current status is
// rejected and the room is left untouched.
func (r *Room) Reserve() error {
	if r.status != StatusAvailable {
		return ErrRoomNotAvailable
	}
	r.status = StatusReserved
	return nil
}

// Release marks the room available regardless of its current status.
func (r *Room) Release() {
	r.status = StatusAvailable
}

func (r *Room) IsAvailable() bool {
	return r.status == StatusAvailable
}

func (r *Room) String() string {
	return fmt.Sprintf("Room %s - %s - %s", r.number, r.typ, r.status)
}

func (r *Room) ID() uuid.UUID      { return r.id }
func (r *Room) Number() string     { return r.number }
func (r *Room) Type() RoomType     { return r.typ }
func (r *Room) Status() RoomStatus { return r.status }
func (r *Room) Price() float64     { return r.price }
