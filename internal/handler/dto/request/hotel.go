package request

import (
	"hotel-reservations/internal/domain/hotel"
)

type CreateRoomRequest struct {
	Number string  `json:"room_number" binding:"required"`
	Type   string  `json:"room_type" binding:"required"`
	Status string  `json:"room_status" binding:"required"`
	Price  float64 `json:"room_price"`
}

type CreateHotelRequest struct {
	Name     string              `json:"name" binding:"required"`
	Location string              `json:"location" binding:"required"`
	Rooms    []CreateRoomRequest `json:"rooms"`
}

type UpdateHotelRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
}

func (r CreateRoomRequest) ToDomain() (*hotel.Room, error) {
	typ, err := hotel.ParseRoomType(r.Type)
	if err != nil {
		return nil, err
	}
	status, err := hotel.ParseRoomStatus(r.Status)
	if err != nil {
		return nil, err
	}
	return hotel.NewRoom(r.Number, typ, status, r.Price)
}

func (r CreateHotelRequest) ToDomain() (*hotel.Hotel, error) {
	rooms := make([]*hotel.Room, 0, len(r.Rooms))
	for _, rr := range r.Rooms {
		room, err := rr.ToDomain()
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return hotel.NewHotel(r.Name, r.Location, rooms), nil
}
