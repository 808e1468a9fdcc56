package response

import (
	"hotel-reservations/internal/domain/hotel"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID     uuid.UUID `json:"id"`
	Number string    `json:"roomNumber"`
	Type   string    `json:"roomType"`
	Status string    `json:"roomStatus"`
	Price  float64   `json:"roomPrice"`
}

type HotelResponse struct {
	ID       uuid.UUID      `json:"id"`
	Name     string         `json:"name"`
	Location string         `json:"location"`
	Rooms    []RoomResponse `json:"rooms"`
}

func FromRoom(r *hotel.Room) *RoomResponse {
	return &RoomResponse{
		ID:     r.ID(),
		Number: r.Number(),
		Type:   r.Type().String(),
		Status: r.Status().String(),
		Price:  r.Price(),
	}
}

func FromHotel(h *hotel.Hotel) *HotelResponse {
	rooms := make([]RoomResponse, 0, len(h.Rooms()))
	for _, r := range h.Rooms() {
		rooms = append(rooms, *FromRoom(r))
	}
	return &HotelResponse{
		ID:       h.ID(),
		Name:     h.Name(),
		Location: h.Location(),
		Rooms:    rooms,
	}
}
