package response

import (
	"time"

	"hotel-reservations/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID        uuid.UUID        `json:"id"`
	Hotel     HotelResponse    `json:"hotel"`
	Customer  CustomerResponse `json:"customer"`
	Room      RoomResponse     `json:"room"`
	CheckIn   string           `json:"checkIn"`
	CheckOut  string           `json:"checkOut"`
	CreatedAt time.Time        `json:"createdAt"`
}

func FromReservation(res *reservation.Reservation) *ReservationResponse {
	h := res.Hotel()
	rooms := make([]RoomResponse, 0, len(h.Rooms))
	for _, r := range h.Rooms {
		rooms = append(rooms, roomFromSnapshot(r))
	}

	return &ReservationResponse{
		ID: res.ID(),
		Hotel: HotelResponse{
			ID:       h.ID,
			Name:     h.Name,
			Location: h.Location,
			Rooms:    rooms,
		},
		Customer: CustomerResponse{
			Name:  res.Customer().Name,
			Email: res.Customer().Email,
		},
		Room:      roomFromSnapshot(res.Room()),
		CheckIn:   res.CheckIn(),
		CheckOut:  res.CheckOut(),
		CreatedAt: res.CreatedAt(),
	}
}

func roomFromSnapshot(r reservation.RoomSnapshot) RoomResponse {
	return RoomResponse{
		ID:     r.ID,
		Number: r.Number,
		Type:   r.Type.String(),
		Status: r.Status.String(),
		Price:  r.Price,
	}
}
