package hotel

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrRoomNotFound = errors.New("room not found in hotel")

// Hotel owns an ordered collection of rooms. Neither the hotel name nor the
// room numbers are unique; lookups return the first match in insertion order.
type Hotel struct {
	id       uuid.UUID
	name     string
	location string
	rooms    []*Room
}

func NewHotel(name, location string, rooms []*Room) *Hotel {
	return &Hotel{
		id:       uuid.New(),
		name:     name,
		location: location,
		rooms:    rooms,
	}
}

func ReconstructHotel(id uuid.UUID, name, location string, rooms []*Room) *Hotel {
	return &Hotel{
		id:       id,
		name:     name,
		location: location,
		rooms:    rooms,
	}
}

// AddRoom appends unconditionally. Duplicate room numbers are tolerated;
// GetRoom resolves them first-match-wins.
func (h *Hotel) AddRoom(room *Room) {
	h.rooms = append(h.rooms, room)
}

func (h *Hotel) GetRoom(number string) (*Room, error) {
	for _, room := range h.rooms {
		if room.Number() == number {
			return room, nil
		}
	}
	return nil, ErrRoomNotFound
}

// Update replaces name and location. Rooms are untouched.
func (h *Hotel) Update(name, location string) {
	h.name = name
	h.location = location
}

func (h *Hotel) String() string {
	return fmt.Sprintf("%s in %s", h.name, h.location)
}

func (h *Hotel) ID() uuid.UUID    { return h.id }
func (h *Hotel) Name() string     { return h.name }
func (h *Hotel) Location() string { return h.location }
func (h *Hotel) Rooms() []*Room   { return h.rooms }
