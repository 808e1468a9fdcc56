// Package record defines the persisted shapes of the three backing
// documents. Field names mirror the domain snapshot types so the converter
// layer can map between them mechanically; json tags fix the wire names.
package record

import (
	"time"

	"hotel-reservations/internal/domain/hotel"

	"github.com/google/uuid"
)

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Room struct {
	ID     uuid.UUID        `json:"id"`
	Number string           `json:"room_number"`
	Type   hotel.RoomType   `json:"room_type"`
	Status hotel.RoomStatus `json:"room_status"`
	Price  float64          `json:"room_price"`
}

type Hotel struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
	Rooms    []Room    `json:"rooms"`
}

// Reservation embeds full snapshots rather than id references, matching the
// document contract.
type Reservation struct {
	ID        uuid.UUID `json:"id"`
	Hotel     Hotel     `json:"hotel"`
	Customer  Customer  `json:"customer"`
	Room      Room      `json:"room"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	CreatedAt time.Time `json:"created_at"`
}
